package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resale_ops_v1_202609/internal/api/dto"
	"resale_ops_v1_202609/internal/service"
	"resale_ops_v1_202609/internal/store"
)

// ==================== 控制器 ====================

// ListingController 上架控制器：在售列表 + 草稿箱
type ListingController struct {
	store      *store.ListingStore
	listingSvc *service.ListingService
}

func NewListingController(st *store.ListingStore, svc *service.ListingService) *ListingController {
	return &ListingController{store: st, listingSvc: svc}
}

// ==================== API 方法 ====================

// GetListings 获取在售列表与草稿箱
// GET /api/listings
func (ctrl *ListingController) GetListings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data": gin.H{
			"listings": ctrl.store.Listings(),
			"drafts":   ctrl.store.Drafts(),
			"loading":  ctrl.store.Loading(),
			"error":    ctrl.store.Error(),
		},
	})
}

// RefreshListings 重新拉取在售列表
// POST /api/listings/refresh
func (ctrl *ListingController) RefreshListings(c *gin.Context) {
	listings, err := ctrl.listingSvc.FetchListings(c.Request.Context())
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
		"data":    gin.H{"count": len(listings)},
	})
}

// SaveDraft 新建上架草稿
// POST /api/listings/drafts
func (ctrl *ListingController) SaveDraft(c *gin.Context) {
	var req dto.SaveDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "参数错误: " + err.Error(),
		})
		return
	}

	d := ctrl.listingSvc.SaveDraft(req.ToModel())
	c.JSON(http.StatusCreated, gin.H{
		"code":    0,
		"message": "success",
		"data":    d,
	})
}

// UpdateDraft 部分更新草稿
// PATCH /api/listings/drafts/:id
func (ctrl *ListingController) UpdateDraft(c *gin.Context) {
	var req dto.UpdateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "参数错误: " + err.Error(),
		})
		return
	}

	d, ok := ctrl.listingSvc.UpdateDraft(c.Param("id"), req.ToPatch())
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"code":    404,
			"message": "草稿不存在",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data":    d,
	})
}

// PublishDraft 发布草稿
// POST /api/listings/drafts/:id/publish
func (ctrl *ListingController) PublishDraft(c *gin.Context) {
	d, ok := ctrl.listingSvc.Publish(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"code":    404,
			"message": "草稿不存在",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data":    d,
	})
}

// DeleteDraft 删除草稿（幂等）
// DELETE /api/listings/drafts/:id
func (ctrl *ListingController) DeleteDraft(c *gin.Context) {
	ctrl.listingSvc.DeleteDraft(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
	})
}
