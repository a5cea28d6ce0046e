package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resale_ops_v1_202609/internal/api/dto"
	"resale_ops_v1_202609/internal/service"
	"resale_ops_v1_202609/internal/store"
)

// ==================== 控制器 ====================

// ItemController 库存控制器
// 读取直接走 Store，动作走 Service
type ItemController struct {
	store   *store.ItemStore
	itemSvc *service.ItemService
}

func NewItemController(st *store.ItemStore, svc *service.ItemService) *ItemController {
	return &ItemController{store: st, itemSvc: svc}
}

// ==================== API 方法 ====================

// GetItems 获取库存列表（按当前筛选条件）
// GET /api/items
func (ctrl *ItemController) GetItems(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data": gin.H{
			"items":   ctrl.store.Filtered(),
			"total":   len(ctrl.store.All()),
			"loading": ctrl.store.Loading(),
			"error":   ctrl.store.Error(),
			"filters": ctrl.store.Filters(),
		},
	})
}

// GetItem 获取单条库存
// GET /api/items/:id
func (ctrl *ItemController) GetItem(c *gin.Context) {
	item, ok := ctrl.store.ByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"code":    404,
			"message": "条目不存在",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data":    item,
	})
}

// GetStats 获取库存聚合统计
// GET /api/items/stats
func (ctrl *ItemController) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data": dto.ItemStatsResponse{
			TotalBuyValue:        ctrl.store.TotalBuyValue(),
			TotalPotentialProfit: ctrl.store.TotalPotentialProfit(),
			CountsByStatus:       ctrl.store.CountsByStatus(),
			Brands:               ctrl.store.Brands(),
			Locations:            ctrl.store.Locations(),
		},
	})
}

// RefreshItems 重新拉取库存
// POST /api/items/refresh
func (ctrl *ItemController) RefreshItems(c *gin.Context) {
	items, err := ctrl.itemSvc.FetchItems(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": "拉取失败: " + err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data":    gin.H{"count": len(items)},
	})
}

// CreateItem 新建库存条目
// POST /api/items
func (ctrl *ItemController) CreateItem(c *gin.Context) {
	var req dto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "参数错误: " + err.Error(),
		})
		return
	}

	item := ctrl.itemSvc.CreateItem(req.ToModel())
	c.JSON(http.StatusCreated, gin.H{
		"code":    0,
		"message": "success",
		"data":    item,
	})
}

// UpdateItem 部分更新库存条目
// PATCH /api/items/:id
func (ctrl *ItemController) UpdateItem(c *gin.Context) {
	var req dto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "参数错误: " + err.Error(),
		})
		return
	}

	item, ok := ctrl.itemSvc.UpdateItem(c.Param("id"), req.ToPatch())
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"code":    404,
			"message": "条目不存在",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data":    item,
	})
}

// DeleteItem 删除库存条目（幂等）
// DELETE /api/items/:id
func (ctrl *ItemController) DeleteItem(c *gin.Context) {
	ctrl.itemSvc.DeleteItem(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
	})
}

// SetFilters 浅合并筛选条件
// PATCH /api/items/filters
func (ctrl *ItemController) SetFilters(c *gin.Context) {
	var req dto.ItemFiltersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "参数错误: " + err.Error(),
		})
		return
	}

	ctrl.store.SetFilters(req.ToPatch())
	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data":    ctrl.store.Filters(),
	})
}

// SetSelection 整体替换勾选集
// PUT /api/items/selection
func (ctrl *ItemController) SetSelection(c *gin.Context) {
	var req dto.SelectItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "参数错误: " + err.Error(),
		})
		return
	}

	ctrl.store.SetSelected(req.IDs)
	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data":    ctrl.store.Selected(),
	})
}

// ToggleSelection 切换单条勾选
// POST /api/items/:id/toggle-selection
func (ctrl *ItemController) ToggleSelection(c *gin.Context) {
	ctrl.store.ToggleSelected(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data":    ctrl.store.Selected(),
	})
}
