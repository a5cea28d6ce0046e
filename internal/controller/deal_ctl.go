package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resale_ops_v1_202609/internal/api/dto"
	"resale_ops_v1_202609/internal/service"
	"resale_ops_v1_202609/internal/store"
)

// ==================== 控制器 ====================

// DealController 捡漏控制器
type DealController struct {
	store   *store.DealStore
	dealSvc *service.DealService
}

func NewDealController(st *store.DealStore, svc *service.DealService) *DealController {
	return &DealController{store: st, dealSvc: svc}
}

// ==================== API 方法 ====================

// GetDeals 获取捡漏列表（按筛选条件过滤，评分从优到劣）
// GET /api/deals
func (ctrl *DealController) GetDeals(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data": gin.H{
			"deals":    dto.NewDealVOs(ctrl.store.Filtered()),
			"total":    len(ctrl.store.All()),
			"loading":  ctrl.store.Loading(),
			"error":    ctrl.store.Error(),
			"filters":  ctrl.store.Filters(),
			"viewMode": ctrl.store.ViewMode(),
		},
	})
}

// GetPendingDeals 获取待审核捡漏
// GET /api/deals/pending
func (ctrl *DealController) GetPendingDeals(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data":    dto.NewDealVOs(ctrl.store.PendingReview()),
	})
}

// RefreshDeals 重新拉取捡漏源
// POST /api/deals/refresh
func (ctrl *DealController) RefreshDeals(c *gin.Context) {
	deals, err := ctrl.dealSvc.FetchDeals(c.Request.Context())
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
		"data":    gin.H{"count": len(deals)},
	})
}

// ApproveDeal 批准捡漏并创建采购单
// POST /api/deals/:id/approve
func (ctrl *DealController) ApproveDeal(c *gin.Context) {
	result, err := ctrl.dealSvc.Approve(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"code":    404,
			"message": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data":    result,
	})
}

// RejectDeal 否决捡漏
// POST /api/deals/:id/reject
func (ctrl *DealController) RejectDeal(c *gin.Context) {
	if !ctrl.dealSvc.Reject(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{
			"code":    404,
			"message": "捡漏不存在",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
	})
}

// SetFilters 浅合并筛选条件
// PATCH /api/deals/filters
func (ctrl *DealController) SetFilters(c *gin.Context) {
	var req dto.DealFiltersRequest
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

// SetViewMode 切换卡片/表格视图
// PUT /api/deals/view-mode
func (ctrl *DealController) SetViewMode(c *gin.Context) {
	var req dto.ViewModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "参数错误: " + err.Error(),
		})
		return
	}

	ctrl.store.SetViewMode(req.Mode)
	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data":    gin.H{"viewMode": ctrl.store.ViewMode()},
	})
}
