package dto

import "resale_ops_v1_202609/internal/model"

// ==================== 请求 DTO ====================

// CreateQueryRequest 新建监控搜索请求
type CreateQueryRequest struct {
	Query    string  `json:"query" binding:"required"`
	Category string  `json:"category"`
	MaxPrice float64 `json:"maxPrice"`
}

// ToModel 转换为监控搜索
func (r *CreateQueryRequest) ToModel() model.SearchQuery {
	return model.SearchQuery{
		Query:    r.Query,
		Category: r.Category,
		MaxPrice: r.MaxPrice,
	}
}

// UpdateQueryRequest 监控搜索部分更新请求
type UpdateQueryRequest struct {
	Query    *string  `json:"query,omitempty"`
	Category *string  `json:"category,omitempty"`
	MaxPrice *float64 `json:"maxPrice,omitempty"`
	Status   *string  `json:"status,omitempty" binding:"omitempty,oneof=active paused"`
}

// ToPatch 转换为监控搜索补丁
func (r *UpdateQueryRequest) ToPatch() model.SearchQueryPatch {
	p := model.SearchQueryPatch{
		Query:    r.Query,
		Category: r.Category,
		MaxPrice: r.MaxPrice,
	}
	if r.Status != nil {
		v := model.QueryStatus(*r.Status)
		p.Status = &v
	}
	return p
}

// PurchaseStatusRequest 采购状态更新请求
type PurchaseStatusRequest struct {
	Status   string `json:"status" binding:"required,oneof=pending_purchase purchased shipped received"`
	Tracking string `json:"tracking"`
}
