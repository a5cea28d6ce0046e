package dto

import "resale_ops_v1_202609/internal/model"

// ==================== 请求 DTO ====================

// SaveDraftRequest 新建上架草稿请求
type SaveDraftRequest struct {
	ItemID      string   `json:"itemId"`
	Platform    string   `json:"platform" binding:"required,oneof=vinted ebay"`
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" binding:"required,gt=0"`
	Photos      []string `json:"photos"`
}

// ToModel 转换为上架草稿
func (r *SaveDraftRequest) ToModel() model.Listing {
	return model.Listing{
		ItemID:      r.ItemID,
		Platform:    model.Channel(r.Platform),
		Title:       r.Title,
		Description: r.Description,
		Price:       r.Price,
		Photos:      r.Photos,
	}
}

// UpdateDraftRequest 上架草稿部分更新请求
type UpdateDraftRequest struct {
	ItemID      *string  `json:"itemId,omitempty"`
	Platform    *string  `json:"platform,omitempty" binding:"omitempty,oneof=vinted ebay"`
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Photos      []string `json:"photos,omitempty"`
	Status      *string  `json:"status,omitempty" binding:"omitempty,oneof=draft active sold ended"`
}

// ToPatch 转换为草稿补丁
func (r *UpdateDraftRequest) ToPatch() model.ListingPatch {
	p := model.ListingPatch{
		ItemID:      r.ItemID,
		Title:       r.Title,
		Description: r.Description,
		Price:       r.Price,
		Photos:      r.Photos,
	}
	if r.Platform != nil {
		v := model.Channel(*r.Platform)
		p.Platform = &v
	}
	if r.Status != nil {
		v := model.ListingStatus(*r.Status)
		p.Status = &v
	}
	return p
}
