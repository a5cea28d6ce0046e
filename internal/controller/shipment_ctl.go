package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resale_ops_v1_202609/internal/api/dto"
	"resale_ops_v1_202609/internal/service"
	"resale_ops_v1_202609/internal/store"
)

// ==================== 控制器 ====================

// ShipmentController 发货控制器
type ShipmentController struct {
	store       *store.ShipmentStore
	shipmentSvc *service.ShipmentService
}

func NewShipmentController(st *store.ShipmentStore, svc *service.ShipmentService) *ShipmentController {
	return &ShipmentController{store: st, shipmentSvc: svc}
}

// ==================== API 方法 ====================

// GetShipments 获取发货列表（按筛选条件过滤）
// GET /api/shipments
func (ctrl *ShipmentController) GetShipments(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data": gin.H{
			"shipments":       ctrl.store.Filtered(),
			"total":           len(ctrl.store.All()),
			"loading":         ctrl.store.Loading(),
			"error":           ctrl.store.Error(),
			"filters":         ctrl.store.Filters(),
			"printers":        ctrl.store.Printers(),
			"selectedPrinter": ctrl.store.SelectedPrinter(),
		},
	})
}

// RefreshShipments 重新拉取发货记录
// POST /api/shipments/refresh
func (ctrl *ShipmentController) RefreshShipments(c *gin.Context) {
	shipments, err := ctrl.shipmentSvc.FetchShipments(c.Request.Context())
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
		"data":    gin.H{"count": len(shipments)},
	})
}

// PrintLabel 为订单打印标签
// 接口立即返回 printing 状态的记录，打印完成后后台转为 printed
// POST /api/shipments/print
func (ctrl *ShipmentController) PrintLabel(c *gin.Context) {
	var req dto.PrintLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "参数错误: " + err.Error(),
		})
		return
	}

	sh := ctrl.shipmentSvc.PrintLabel(req.OrderID, req.Printer)
	c.JSON(http.StatusAccepted, gin.H{
		"code":    0,
		"message": "success",
		"data":    sh,
	})
}

// RetryPrint 重打标签
// POST /api/shipments/:id/retry
func (ctrl *ShipmentController) RetryPrint(c *gin.Context) {
	sh, ok := ctrl.shipmentSvc.RetryPrint(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"code":    404,
			"message": "发货记录不存在",
		})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{
		"code":    0,
		"message": "success",
		"data":    sh,
	})
}

// DeleteShipment 删除发货记录（幂等）
// DELETE /api/shipments/:id
func (ctrl *ShipmentController) DeleteShipment(c *gin.Context) {
	ctrl.store.Remove(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
	})
}

// SelectPrinter 选择打印机
// PUT /api/shipments/printer
func (ctrl *ShipmentController) SelectPrinter(c *gin.Context) {
	var req dto.SelectPrinterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "参数错误: " + err.Error(),
		})
		return
	}

	ctrl.store.SetSelectedPrinter(req.Printer)
	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data":    gin.H{"selectedPrinter": ctrl.store.SelectedPrinter()},
	})
}

// SetFilters 浅合并筛选条件
// PATCH /api/shipments/filters
func (ctrl *ShipmentController) SetFilters(c *gin.Context) {
	var req dto.ShipmentFiltersRequest
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
