package model

import "time"

// ==================== 上架状态常量 ====================

// ListingStatus 上架状态
type ListingStatus string

const (
	ListingStatusDraft  ListingStatus = "draft"  // 草稿
	ListingStatusActive ListingStatus = "active" // 在售
	ListingStatusSold   ListingStatus = "sold"   // 已售
	ListingStatusEnded  ListingStatus = "ended"  // 已下架
)

// Valid 是否为已知上架状态
func (s ListingStatus) Valid() bool {
	switch s {
	case ListingStatusDraft, ListingStatusActive, ListingStatusSold, ListingStatusEnded:
		return true
	}
	return false
}

// ==================== Listing 上架信息 ====================

// Listing 渠道上架信息（含草稿）
type Listing struct {
	ID          string        `json:"id"`
	ItemID      string        `json:"itemId"`
	Platform    Channel       `json:"platform"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Price       float64       `json:"price"`
	Photos      []string      `json:"photos"`
	Status      ListingStatus `json:"status"`
	CreatedAt   time.Time     `json:"createdAt"`
	PublishedAt *time.Time    `json:"publishedAt,omitempty"`
}

// ==================== ListingPatch 部分更新 ====================

// ListingPatch 上架信息部分更新
type ListingPatch struct {
	ItemID      *string
	Platform    *Channel
	Title       *string
	Description *string
	Price       *float64
	Photos      []string
	Status      *ListingStatus
	PublishedAt *time.Time
}

// Apply 将补丁合并到上架信息
func (p ListingPatch) Apply(l *Listing) {
	if p.ItemID != nil {
		l.ItemID = *p.ItemID
	}
	if p.Platform != nil {
		l.Platform = *p.Platform
	}
	if p.Title != nil {
		l.Title = *p.Title
	}
	if p.Description != nil {
		l.Description = *p.Description
	}
	if p.Price != nil {
		l.Price = *p.Price
	}
	if p.Photos != nil {
		l.Photos = p.Photos
	}
	if p.Status != nil {
		l.Status = *p.Status
	}
	if p.PublishedAt != nil {
		l.PublishedAt = p.PublishedAt
	}
}
