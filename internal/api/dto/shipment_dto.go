package dto

import "resale_ops_v1_202609/internal/store"

// ==================== 请求 DTO ====================

// PrintLabelRequest 打印标签请求
// Printer 为空时使用当前选择的打印机
type PrintLabelRequest struct {
	OrderID string `json:"orderId" binding:"required"`
	Printer string `json:"printer"`
}

// SelectPrinterRequest 选择打印机请求
type SelectPrinterRequest struct {
	Printer string `json:"printer" binding:"required"`
}

// ShipmentFiltersRequest 发货筛选条件部分更新请求
type ShipmentFiltersRequest struct {
	Search  *string `json:"search,omitempty"`
	Status  *string `json:"status,omitempty"`
	Carrier *string `json:"carrier,omitempty"`
}

// ToPatch 转换为筛选补丁
func (r *ShipmentFiltersRequest) ToPatch() store.ShipmentFiltersPatch {
	return store.ShipmentFiltersPatch{
		Search:  r.Search,
		Status:  r.Status,
		Carrier: r.Carrier,
	}
}
