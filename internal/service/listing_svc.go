package service

import (
	"context"
	"time"

	"resale_ops_v1_202609/internal/model"
	"resale_ops_v1_202609/internal/store"
)

// ==================== ListingService 上架服务 ====================

// ListingService 上架服务
type ListingService struct {
	store *store.ListingStore
	delay time.Duration
}

// NewListingService 创建上架服务
func NewListingService(st *store.ListingStore, delay time.Duration) *ListingService {
	return &ListingService{store: st, delay: delay}
}

// FetchListings 拉取在售列表：延迟后整体替换集合，后提交者获胜
func (s *ListingService) FetchListings(ctx context.Context) ([]model.Listing, error) {
	s.store.SetLoading(true)
	defer s.store.SetLoading(false)

	if err := wait(ctx, s.delay); err != nil {
		s.store.SetError("Failed to fetch listings")
		return nil, err
	}

	listings := MockListings(15)
	s.store.SetListings(listings)
	return listings, nil
}

// ==================== 草稿箱 ====================

// SaveDraft 新建草稿
func (s *ListingService) SaveDraft(d model.Listing) model.Listing {
	return s.store.AddDraft(d)
}

// UpdateDraft 部分更新草稿；ID 不存在时返回 false
func (s *ListingService) UpdateDraft(id string, patch model.ListingPatch) (model.Listing, bool) {
	return s.store.UpdateDraft(id, patch)
}

// DeleteDraft 删除草稿，幂等
func (s *ListingService) DeleteDraft(id string) {
	s.store.RemoveDraft(id)
}

// Publish 发布草稿：状态转为 active 并记录发布时间
func (s *ListingService) Publish(id string) (model.Listing, bool) {
	status := model.ListingStatusActive
	now := time.Now()
	return s.store.UpdateDraft(id, model.ListingPatch{Status: &status, PublishedAt: &now})
}
