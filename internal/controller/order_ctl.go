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

// OrderController 订单控制器
type OrderController struct {
	store    *store.OrderStore
	orderSvc *service.OrderService
}

func NewOrderController(st *store.OrderStore, svc *service.OrderService) *OrderController {
	return &OrderController{store: st, orderSvc: svc}
}

// ==================== API 方法 ====================

// GetOrders 获取订单列表（按筛选条件过滤，创建时间倒序）
// GET /api/orders
func (ctrl *OrderController) GetOrders(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data": gin.H{
			"orders":  dto.NewOrderVOs(ctrl.store.Filtered()),
			"total":   len(ctrl.store.All()),
			"loading": ctrl.store.Loading(),
			"error":   ctrl.store.Error(),
			"filters": ctrl.store.Filters(),
		},
	})
}

// GetOrder 获取单条订单
// GET /api/orders/:id
func (ctrl *OrderController) GetOrder(c *gin.Context) {
	o, ok := ctrl.store.ByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"code":    404,
			"message": "订单不存在",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data":    dto.NewOrderVO(o),
	})
}

// RefreshOrders 重新拉取订单
// POST /api/orders/refresh
func (ctrl *OrderController) RefreshOrders(c *gin.Context) {
	orders, err := ctrl.orderSvc.FetchOrders(c.Request.Context())
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
		"data":    gin.H{"count": len(orders)},
	})
}

// CreateOrder 新建订单
// POST /api/orders
func (ctrl *OrderController) CreateOrder(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "参数错误: " + err.Error(),
		})
		return
	}

	o := ctrl.orderSvc.CreateOrder(req.ToModel())
	c.JSON(http.StatusCreated, gin.H{
		"code":    0,
		"message": "success",
		"data":    o,
	})
}

// UpdateOrder 部分更新订单
// PATCH /api/orders/:id
func (ctrl *OrderController) UpdateOrder(c *gin.Context) {
	var req dto.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "参数错误: " + err.Error(),
		})
		return
	}

	o, ok := ctrl.orderSvc.UpdateOrder(c.Param("id"), req.ToPatch())
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"code":    404,
			"message": "订单不存在",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data":    o,
	})
}

// UpdateOrderStatus 更新订单状态
// PUT /api/orders/:id/status
func (ctrl *OrderController) UpdateOrderStatus(c *gin.Context) {
	var req dto.OrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "参数错误: " + err.Error(),
		})
		return
	}

	o, ok := ctrl.orderSvc.UpdateStatus(c.Param("id"), model.OrderStatus(req.Status))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"code":    404,
			"message": "订单不存在",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data":    o,
	})
}

// DeleteOrder 删除订单（幂等）
// DELETE /api/orders/:id
func (ctrl *OrderController) DeleteOrder(c *gin.Context) {
	ctrl.orderSvc.DeleteOrder(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
	})
}

// SetFilters 浅合并筛选条件
// PATCH /api/orders/filters
func (ctrl *OrderController) SetFilters(c *gin.Context) {
	var req dto.OrderFiltersRequest
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
