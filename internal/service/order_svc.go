package service

import (
	"context"
	"time"

	"resale_ops_v1_202609/internal/model"
	"resale_ops_v1_202609/internal/store"
)

// ==================== OrderService 订单服务 ====================

// OrderService 订单服务
type OrderService struct {
	store *store.OrderStore
	delay time.Duration
}

// NewOrderService 创建订单服务
func NewOrderService(st *store.OrderStore, delay time.Duration) *OrderService {
	return &OrderService{store: st, delay: delay}
}

// FetchOrders 拉取订单：延迟后整体替换集合，后提交者获胜
func (s *OrderService) FetchOrders(ctx context.Context) ([]model.Order, error) {
	s.store.SetLoading(true)
	defer s.store.SetLoading(false)

	if err := wait(ctx, s.delay); err != nil {
		s.store.SetError("Failed to fetch orders")
		return nil, err
	}

	orders := MockOrders(20)
	s.store.SetAll(orders)
	return orders, nil
}

// UpdateStatus 更新订单状态；ID 不存在时为无操作
func (s *OrderService) UpdateStatus(id string, status model.OrderStatus) (model.Order, bool) {
	return s.store.Update(id, model.OrderPatch{Status: &status})
}

// UpdateOrder 部分更新订单
func (s *OrderService) UpdateOrder(id string, patch model.OrderPatch) (model.Order, bool) {
	return s.store.Update(id, patch)
}

// CreateOrder 新建订单
func (s *OrderService) CreateOrder(o model.Order) model.Order {
	if o.Status == "" {
		o.Status = model.OrderStatusPendingPick
	}
	return s.store.Create(o)
}

// DeleteOrder 删除订单，幂等
func (s *OrderService) DeleteOrder(id string) {
	s.store.Remove(id)
}
