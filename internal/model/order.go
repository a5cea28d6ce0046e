package model

import "time"

// ==================== 订单状态常量 ====================

// OrderStatus 销售订单状态
type OrderStatus string

const (
	OrderStatusPendingPick  OrderStatus = "pending_pick"  // 待拣货
	OrderStatusLabelPending OrderStatus = "label_pending" // 待打单
	OrderStatusLabelReady   OrderStatus = "label_ready"   // 标签就绪
	OrderStatusDispatched   OrderStatus = "dispatched"    // 已发出
)

// Valid 是否为已知订单状态
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPendingPick, OrderStatusLabelPending, OrderStatusLabelReady, OrderStatusDispatched:
		return true
	}
	return false
}

// ==================== Order 销售订单 ====================

// Order 销售订单
// ItemID 为软引用，不做外键校验，也不级联删除
type Order struct {
	ID           string      `json:"id"`
	Platform     Channel     `json:"platform"`
	ItemID       string      `json:"itemId"`
	Buyer        string      `json:"buyer"`
	SalePrice    float64     `json:"salePrice"`
	ShippingPaid float64     `json:"shippingPaid"`
	FeesEst      float64     `json:"feesEst"`
	CreatedAt    time.Time   `json:"createdAt"`
	Status       OrderStatus `json:"status"`
	BuyerRating  float64     `json:"buyerRating,omitempty"`
	Notes        string      `json:"notes,omitempty"`
}

// NetProceeds 预计净回款（售价 + 买家运费 - 预估费用）
func (o *Order) NetProceeds() float64 {
	return o.SalePrice + o.ShippingPaid - o.FeesEst
}

// ==================== OrderPatch 部分更新 ====================

// OrderPatch 订单部分更新
type OrderPatch struct {
	Platform     *Channel
	ItemID       *string
	Buyer        *string
	SalePrice    *float64
	ShippingPaid *float64
	FeesEst      *float64
	Status       *OrderStatus
	BuyerRating  *float64
	Notes        *string
}

// Apply 将补丁合并到订单
func (p OrderPatch) Apply(o *Order) {
	if p.Platform != nil {
		o.Platform = *p.Platform
	}
	if p.ItemID != nil {
		o.ItemID = *p.ItemID
	}
	if p.Buyer != nil {
		o.Buyer = *p.Buyer
	}
	if p.SalePrice != nil {
		o.SalePrice = *p.SalePrice
	}
	if p.ShippingPaid != nil {
		o.ShippingPaid = *p.ShippingPaid
	}
	if p.FeesEst != nil {
		o.FeesEst = *p.FeesEst
	}
	if p.Status != nil {
		o.Status = *p.Status
	}
	if p.BuyerRating != nil {
		o.BuyerRating = *p.BuyerRating
	}
	if p.Notes != nil {
		o.Notes = *p.Notes
	}
}
