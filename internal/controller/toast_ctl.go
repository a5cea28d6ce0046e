package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resale_ops_v1_202609/internal/api/dto"
	"resale_ops_v1_202609/internal/store"
)

// ==================== 控制器 ====================

// ToastController 通知控制器
type ToastController struct {
	store *store.ToastStore
}

func NewToastController(st *store.ToastStore) *ToastController {
	return &ToastController{store: st}
}

// ==================== API 方法 ====================

// GetToasts 获取当前通知队列
// GET /api/toasts
func (ctrl *ToastController) GetToasts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data":    ctrl.store.Active(),
	})
}

// ShowToast 入队通知
// POST /api/toasts
func (ctrl *ToastController) ShowToast(c *gin.Context) {
	var req dto.ShowToastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "参数错误: " + err.Error(),
		})
		return
	}

	t := ctrl.store.Show(req.ToModel())
	c.JSON(http.StatusCreated, gin.H{
		"code":    0,
		"message": "success",
		"data":    t,
	})
}

// DismissToast 出队通知（幂等）
// DELETE /api/toasts/:id
func (ctrl *ToastController) DismissToast(c *gin.Context) {
	ctrl.store.Remove(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
	})
}

// ClearToasts 清空通知队列
// DELETE /api/toasts
func (ctrl *ToastController) ClearToasts(c *gin.Context) {
	ctrl.store.Clear()
	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
	})
}
