package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resale_ops_v1_202609/internal/api/dto"
	"resale_ops_v1_202609/internal/model"
	"resale_ops_v1_202609/internal/service"
	"resale_ops_v1_202609/internal/store"
)

// ==================== 控制器 ====================

// BuyingController 采购控制器：监控搜索 + 采购单
type BuyingController struct {
	store   *store.BuyingStore
	dealSvc *service.DealService
}

func NewBuyingController(st *store.BuyingStore, dealSvc *service.DealService) *BuyingController {
	return &BuyingController{store: st, dealSvc: dealSvc}
}

// ==================== 监控搜索 ====================

// GetQueries 获取监控搜索列表
// GET /api/buying/queries
func (ctrl *BuyingController) GetQueries(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data":    ctrl.store.Queries(),
	})
}

// CreateQuery 新建监控搜索
// POST /api/buying/queries
func (ctrl *BuyingController) CreateQuery(c *gin.Context) {
	var req dto.CreateQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "参数错误: " + err.Error(),
		})
		return
	}

	q := ctrl.store.AddQuery(req.ToModel())
	c.JSON(http.StatusCreated, gin.H{
		"code":    0,
		"message": "success",
		"data":    q,
	})
}

// UpdateQuery 部分更新监控搜索
// PATCH /api/buying/queries/:id
func (ctrl *BuyingController) UpdateQuery(c *gin.Context) {
	var req dto.UpdateQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "参数错误: " + err.Error(),
		})
		return
	}

	q, ok := ctrl.store.UpdateQuery(c.Param("id"), req.ToPatch())
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"code":    404,
			"message": "监控搜索不存在",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data":    q,
	})
}

// DeleteQuery 删除监控搜索（幂等）
// DELETE /api/buying/queries/:id
func (ctrl *BuyingController) DeleteQuery(c *gin.Context) {
	ctrl.store.RemoveQuery(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
	})
}

// ==================== 采购单 ====================

// GetPurchases 获取采购单列表
// GET /api/buying/purchases
func (ctrl *BuyingController) GetPurchases(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data": gin.H{
			"purchases": ctrl.store.Purchases(),
			"active":    ctrl.store.ActivePurchases(),
		},
	})
}

// UpdatePurchaseStatus 更新采购状态，可顺带写入运单号
// PUT /api/buying/purchases/:id/status
func (ctrl *BuyingController) UpdatePurchaseStatus(c *gin.Context) {
	var req dto.PurchaseStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "参数错误: " + err.Error(),
		})
		return
	}

	if !ctrl.dealSvc.MarkPurchase(c.Param("id"), model.PurchaseStatus(req.Status), req.Tracking) {
		c.JSON(http.StatusNotFound, gin.H{
			"code":    404,
			"message": "采购单不存在",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
	})
}
