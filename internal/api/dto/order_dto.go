package dto

import (
	"resale_ops_v1_202609/internal/model"
	"resale_ops_v1_202609/internal/store"
)

// ==================== 请求 DTO ====================

// CreateOrderRequest 新建订单请求
type CreateOrderRequest struct {
	Platform     string  `json:"platform" binding:"required,oneof=vinted ebay"`
	ItemID       string  `json:"itemId" binding:"required"`
	Buyer        string  `json:"buyer" binding:"required"`
	SalePrice    float64 `json:"salePrice" binding:"required,gt=0"`
	ShippingPaid float64 `json:"shippingPaid"`
	FeesEst      float64 `json:"feesEst"`
	Status       string  `json:"status" binding:"omitempty,oneof=pending_pick label_pending label_ready dispatched"`
	BuyerRating  float64 `json:"buyerRating"`
	Notes        string  `json:"notes"`
}

// ToModel 转换为订单
func (r *CreateOrderRequest) ToModel() model.Order {
	return model.Order{
		Platform:     model.Channel(r.Platform),
		ItemID:       r.ItemID,
		Buyer:        r.Buyer,
		SalePrice:    r.SalePrice,
		ShippingPaid: r.ShippingPaid,
		FeesEst:      r.FeesEst,
		Status:       model.OrderStatus(r.Status),
		BuyerRating:  r.BuyerRating,
		Notes:        r.Notes,
	}
}

// UpdateOrderRequest 订单部分更新请求
type UpdateOrderRequest struct {
	Platform     *string  `json:"platform,omitempty" binding:"omitempty,oneof=vinted ebay"`
	ItemID       *string  `json:"itemId,omitempty"`
	Buyer        *string  `json:"buyer,omitempty"`
	SalePrice    *float64 `json:"salePrice,omitempty"`
	ShippingPaid *float64 `json:"shippingPaid,omitempty"`
	FeesEst      *float64 `json:"feesEst,omitempty"`
	Status       *string  `json:"status,omitempty" binding:"omitempty,oneof=pending_pick label_pending label_ready dispatched"`
	BuyerRating  *float64 `json:"buyerRating,omitempty"`
	Notes        *string  `json:"notes,omitempty"`
}

// ToPatch 转换为订单补丁
func (r *UpdateOrderRequest) ToPatch() model.OrderPatch {
	p := model.OrderPatch{
		ItemID:       r.ItemID,
		Buyer:        r.Buyer,
		SalePrice:    r.SalePrice,
		ShippingPaid: r.ShippingPaid,
		FeesEst:      r.FeesEst,
		BuyerRating:  r.BuyerRating,
		Notes:        r.Notes,
	}
	if r.Platform != nil {
		v := model.Channel(*r.Platform)
		p.Platform = &v
	}
	if r.Status != nil {
		v := model.OrderStatus(*r.Status)
		p.Status = &v
	}
	return p
}

// OrderStatusRequest 订单状态更新请求
type OrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending_pick label_pending label_ready dispatched"`
}

// OrderFiltersRequest 订单筛选条件部分更新请求
type OrderFiltersRequest struct {
	Search   *string `json:"search,omitempty"`
	Status   *string `json:"status,omitempty"`
	Platform *string `json:"platform,omitempty"`
}

// ToPatch 转换为筛选补丁
func (r *OrderFiltersRequest) ToPatch() store.OrderFiltersPatch {
	return store.OrderFiltersPatch{
		Search:   r.Search,
		Status:   r.Status,
		Platform: r.Platform,
	}
}

// ==================== 响应 DTO ====================

// OrderVO 订单视图对象，附带派生字段
type OrderVO struct {
	model.Order
	NetProceeds float64 `json:"netProceeds"`
}

// NewOrderVO 构造订单视图对象
func NewOrderVO(o model.Order) OrderVO {
	return OrderVO{Order: o, NetProceeds: o.NetProceeds()}
}

// NewOrderVOs 批量构造订单视图对象
func NewOrderVOs(orders []model.Order) []OrderVO {
	out := make([]OrderVO, len(orders))
	for i, o := range orders {
		out[i] = NewOrderVO(o)
	}
	return out
}
