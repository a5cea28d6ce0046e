package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resale_ops_v1_202609/internal/api/dto"
	"resale_ops_v1_202609/internal/service"
	"resale_ops_v1_202609/internal/store"
)

// ==================== 控制器 ====================

// SettingsController 偏好控制器
type SettingsController struct {
	settingsSvc *service.SettingsService
	menus       *store.MenuStore
}

func NewSettingsController(svc *service.SettingsService, menus *store.MenuStore) *SettingsController {
	return &SettingsController{settingsSvc: svc, menus: menus}
}

// ==================== 偏好 ====================

// GetSettings 获取偏好快照
// GET /api/settings
func (ctrl *SettingsController) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data":    ctrl.settingsSvc.Get(),
	})
}

// SetDarkMode 设置暗色模式（持久化）
// PUT /api/settings/dark-mode
func (ctrl *SettingsController) SetDarkMode(c *gin.Context) {
	var req dto.DarkModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "参数错误: " + err.Error(),
		})
		return
	}

	if err := ctrl.settingsSvc.SetDarkMode(c.Request.Context(), *req.DarkMode); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": "保存失败: " + err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data":    gin.H{"darkMode": *req.DarkMode},
	})
}

// ToggleDarkMode 翻转暗色模式
// POST /api/settings/dark-mode/toggle
func (ctrl *SettingsController) ToggleDarkMode(c *gin.Context) {
	dark, err := ctrl.settingsSvc.ToggleDarkMode(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": "保存失败: " + err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data":    gin.H{"darkMode": dark},
	})
}

// SetSidebar 设置侧栏折叠（持久化）
// PUT /api/settings/sidebar
func (ctrl *SettingsController) SetSidebar(c *gin.Context) {
	var req dto.SidebarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "参数错误: " + err.Error(),
		})
		return
	}

	if err := ctrl.settingsSvc.SetSidebarCollapsed(c.Request.Context(), *req.Collapsed); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": "保存失败: " + err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data":    gin.H{"sidebarCollapsed": *req.Collapsed},
	})
}

// SetPrintSettings 更新打印相关偏好（仅驻内存）
// PATCH /api/settings/print
func (ctrl *SettingsController) SetPrintSettings(c *gin.Context) {
	var req dto.PrintSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "参数错误: " + err.Error(),
		})
		return
	}

	if req.DefaultPrinter != nil {
		ctrl.settingsSvc.SetDefaultPrinter(*req.DefaultPrinter)
	}
	if req.DefaultCarrier != nil {
		ctrl.settingsSvc.SetDefaultCarrier(*req.DefaultCarrier)
	}
	if req.LabelSize != nil {
		ctrl.settingsSvc.SetLabelSize(*req.LabelSize)
	}
	if req.AutoPrint != nil {
		ctrl.settingsSvc.SetAutoPrint(*req.AutoPrint)
	}
	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data":    ctrl.settingsSvc.Get(),
	})
}

// ==================== 保存的视图 ====================

// SaveView 保存视图
// POST /api/settings/views
func (ctrl *SettingsController) SaveView(c *gin.Context) {
	var req dto.SavedViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "参数错误: " + err.Error(),
		})
		return
	}

	v, err := ctrl.settingsSvc.SaveView(c.Request.Context(), req.ToModel())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": "保存失败: " + err.Error(),
		})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"code":    0,
		"message": "success",
		"data":    v,
	})
}

// UpdateView 整体替换视图
// PUT /api/settings/views/:id
func (ctrl *SettingsController) UpdateView(c *gin.Context) {
	var req dto.SavedViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "参数错误: " + err.Error(),
		})
		return
	}

	view := req.ToModel()
	view.ID = c.Param("id")
	ok, err := ctrl.settingsSvc.UpdateView(c.Request.Context(), view)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": "保存失败: " + err.Error(),
		})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"code":    404,
			"message": "视图不存在",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data":    view,
	})
}

// DeleteView 删除视图（幂等）
// DELETE /api/settings/views/:id
func (ctrl *SettingsController) DeleteView(c *gin.Context) {
	if err := ctrl.settingsSvc.DeleteView(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": "删除失败: " + err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
	})
}

// ==================== 菜单 ====================

// GetActiveMenu 获取当前激活菜单
// GET /api/menus/active
func (ctrl *SettingsController) GetActiveMenu(c *gin.Context) {
	main, sub := ctrl.menus.Active()
	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data":    gin.H{"main": main, "sub": sub},
	})
}

// SetActiveMenu 设置激活菜单
// PUT /api/menus/active
func (ctrl *SettingsController) SetActiveMenu(c *gin.Context) {
	var req dto.ActiveMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "参数错误: " + err.Error(),
		})
		return
	}

	ctrl.menus.SetMain(req.Main)
	ctrl.menus.SetSub(req.Sub)
	main, sub := ctrl.menus.Active()
	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data":    gin.H{"main": main, "sub": sub},
	})
}
