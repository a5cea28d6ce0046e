package dto

import (
	"time"

	"resale_ops_v1_202609/internal/model"
	"resale_ops_v1_202609/internal/store"
)

// ==================== 请求 DTO ====================

// CreateItemRequest 新建库存条目请求
type CreateItemRequest struct {
	SKU       string   `json:"sku"`
	Title     string   `json:"title" binding:"required"`
	Brand     string   `json:"brand"`
	Model     string   `json:"model"`
	StorageGB int      `json:"storageGb"`
	Condition string   `json:"condition" binding:"required,oneof=new like_new good fair for_parts"`
	Source    string   `json:"source" binding:"required,oneof=vinted facebook gumtree carboot charity other"`
	BuyPrice  float64  `json:"buyPrice" binding:"required,gt=0"`
	AskPrice  float64  `json:"askPrice"`
	EstResale float64  `json:"estResale"`
	Channels  []string `json:"channels" binding:"omitempty,dive,oneof=vinted ebay"`
	Location  string   `json:"location"`
	Status    string   `json:"status" binding:"omitempty,oneof=in_stock listed allocated sold archived"`
	Serial    string   `json:"serial"`
	Photos    []string `json:"photos"`
	Notes     string   `json:"notes"`
}

// ToModel 转换为库存条目
func (r *CreateItemRequest) ToModel() model.Item {
	channels := make([]model.Channel, len(r.Channels))
	for i, c := range r.Channels {
		channels[i] = model.Channel(c)
	}
	return model.Item{
		SKU:       r.SKU,
		Title:     r.Title,
		Brand:     r.Brand,
		Model:     r.Model,
		StorageGB: r.StorageGB,
		Condition: model.Condition(r.Condition),
		Source:    model.Source(r.Source),
		BuyPrice:  r.BuyPrice,
		AskPrice:  r.AskPrice,
		EstResale: r.EstResale,
		Channels:  channels,
		Location:  r.Location,
		Status:    model.ItemStatus(r.Status),
		Serial:    r.Serial,
		Photos:    r.Photos,
		Notes:     r.Notes,
	}
}

// UpdateItemRequest 库存条目部分更新请求
// 指针字段为 null 时不更新
type UpdateItemRequest struct {
	SKU       *string    `json:"sku,omitempty"`
	Title     *string    `json:"title,omitempty"`
	Brand     *string    `json:"brand,omitempty"`
	Model     *string    `json:"model,omitempty"`
	StorageGB *int       `json:"storageGb,omitempty"`
	Condition *string    `json:"condition,omitempty" binding:"omitempty,oneof=new like_new good fair for_parts"`
	Source    *string    `json:"source,omitempty" binding:"omitempty,oneof=vinted facebook gumtree carboot charity other"`
	BuyPrice  *float64   `json:"buyPrice,omitempty"`
	AskPrice  *float64   `json:"askPrice,omitempty"`
	EstResale *float64   `json:"estResale,omitempty"`
	Channels  []string   `json:"channels,omitempty" binding:"omitempty,dive,oneof=vinted ebay"`
	Location  *string    `json:"location,omitempty"`
	Status    *string    `json:"status,omitempty" binding:"omitempty,oneof=in_stock listed allocated sold archived"`
	Serial    *string    `json:"serial,omitempty"`
	Photos    []string   `json:"photos,omitempty"`
	ListedAt  *time.Time `json:"listedAt,omitempty"`
	Notes     *string    `json:"notes,omitempty"`
}

// ToPatch 转换为库存补丁
func (r *UpdateItemRequest) ToPatch() model.ItemPatch {
	p := model.ItemPatch{
		SKU:       r.SKU,
		Title:     r.Title,
		Brand:     r.Brand,
		Model:     r.Model,
		StorageGB: r.StorageGB,
		BuyPrice:  r.BuyPrice,
		AskPrice:  r.AskPrice,
		EstResale: r.EstResale,
		Location:  r.Location,
		Serial:    r.Serial,
		Photos:    r.Photos,
		ListedAt:  r.ListedAt,
		Notes:     r.Notes,
	}
	if r.Condition != nil {
		v := model.Condition(*r.Condition)
		p.Condition = &v
	}
	if r.Source != nil {
		v := model.Source(*r.Source)
		p.Source = &v
	}
	if r.Status != nil {
		v := model.ItemStatus(*r.Status)
		p.Status = &v
	}
	if r.Channels != nil {
		channels := make([]model.Channel, len(r.Channels))
		for i, c := range r.Channels {
			channels[i] = model.Channel(c)
		}
		p.Channels = channels
	}
	return p
}

// ItemFiltersRequest 库存筛选条件部分更新请求
type ItemFiltersRequest struct {
	Search    *string `json:"search,omitempty"`
	Condition *string `json:"condition,omitempty"`
	Source    *string `json:"source,omitempty"`
	Status    *string `json:"status,omitempty"`
	Location  *string `json:"location,omitempty"`
}

// ToPatch 转换为筛选补丁
func (r *ItemFiltersRequest) ToPatch() store.ItemFiltersPatch {
	return store.ItemFiltersPatch{
		Search:    r.Search,
		Condition: r.Condition,
		Source:    r.Source,
		Status:    r.Status,
		Location:  r.Location,
	}
}

// SelectItemsRequest 批量勾选请求
type SelectItemsRequest struct {
	IDs []string `json:"ids"`
}

// ==================== 响应 DTO ====================

// ItemStatsResponse 库存聚合统计
type ItemStatsResponse struct {
	TotalBuyValue        float64                  `json:"totalBuyValue"`
	TotalPotentialProfit float64                  `json:"totalPotentialProfit"`
	CountsByStatus       map[model.ItemStatus]int `json:"countsByStatus"`
	Brands               []string                 `json:"brands"`
	Locations            []string                 `json:"locations"`
}
