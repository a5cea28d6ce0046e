package dto

import (
	"resale_ops_v1_202609/internal/model"
	"resale_ops_v1_202609/internal/store"
)

// ==================== 请求 DTO ====================

// DealFiltersRequest 捡漏筛选条件部分更新请求
type DealFiltersRequest struct {
	Source          *string  `json:"source,omitempty"`
	MinMargin       *float64 `json:"minMargin,omitempty"`
	MaxPrice        *float64 `json:"maxPrice,omitempty"`
	MinSellerRating *float64 `json:"minSellerRating,omitempty"`
}

// ToPatch 转换为筛选补丁
func (r *DealFiltersRequest) ToPatch() store.DealFiltersPatch {
	return store.DealFiltersPatch{
		Source:          r.Source,
		MinMargin:       r.MinMargin,
		MaxPrice:        r.MaxPrice,
		MinSellerRating: r.MinSellerRating,
	}
}

// ViewModeRequest 捡漏视图模式切换请求
type ViewModeRequest struct {
	Mode string `json:"mode" binding:"required,oneof=cards table"`
}

// ==================== 响应 DTO ====================

// DealVO 捡漏视图对象，附带派生字段
type DealVO struct {
	model.Deal
	MarginPct       float64 `json:"marginPct"`
	EstimatedProfit float64 `json:"estimatedProfit"`
}

// NewDealVO 构造捡漏视图对象
func NewDealVO(d model.Deal) DealVO {
	return DealVO{
		Deal:            d,
		MarginPct:       d.MarginPct(),
		EstimatedProfit: d.EstimatedProfit(),
	}
}

// NewDealVOs 批量构造捡漏视图对象
func NewDealVOs(deals []model.Deal) []DealVO {
	out := make([]DealVO, len(deals))
	for i, d := range deals {
		out[i] = NewDealVO(d)
	}
	return out
}
