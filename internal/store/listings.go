package store

import (
	"sync"
	"time"

	"resale_ops_v1_202609/internal/model"
)

// ==================== ListingStore 上架 Store ====================

// ListingStore 上架命名空间：在售列表 + 草稿箱
type ListingStore struct {
	mu       sync.RWMutex
	listings []model.Listing
	drafts   []model.Listing
	loading  bool
	err      string
	seq      *idSeq
}

// NewListingStore 创建上架 Store
func NewListingStore() *ListingStore {
	return &ListingStore{seq: newIDSeq()}
}

// ==================== 集合变更 ====================

// SetListings 整体替换在售列表
func (s *ListingStore) SetListings(listings []model.Listing) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listings = listings
}

// SetDrafts 整体替换草稿箱
func (s *ListingStore) SetDrafts(drafts []model.Listing) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts = drafts
}

// AddDraft 新建草稿：分配 ID 与创建时间后追加
func (s *ListingStore) AddDraft(d model.Listing) model.Listing {
	s.mu.Lock()
	defer s.mu.Unlock()
	d.ID = s.seq.next("draft")
	d.CreatedAt = time.Now()
	if d.Status == "" {
		d.Status = model.ListingStatusDraft
	}
	s.drafts = append(s.drafts, d)
	return d
}

// UpdateDraft 按 ID 浅合并补丁；ID 不存在时为无操作
func (s *ListingStore) UpdateDraft(id string, patch model.ListingPatch) (model.Listing, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.drafts {
		if s.drafts[i].ID == id {
			patch.Apply(&s.drafts[i])
			return s.drafts[i], true
		}
	}
	return model.Listing{}, false
}

// RemoveDraft 按 ID 删除草稿，幂等
func (s *ListingStore) RemoveDraft(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.drafts[:0]
	for _, d := range s.drafts {
		if d.ID != id {
			out = append(out, d)
		}
	}
	s.drafts = out
}

// ==================== 瞬态 UI 状态 ====================

// SetLoading 设置加载标记
func (s *ListingStore) SetLoading(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = v
}

// Loading 当前是否加载中
func (s *ListingStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// SetError 记录最近一次错误信息
func (s *ListingStore) SetError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = msg
}

// Error 最近一次错误信息
func (s *ListingStore) Error() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// ==================== 派生读取 ====================

// Listings 在售列表副本
func (s *ListingStore) Listings() []model.Listing {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Listing(nil), s.listings...)
}

// Drafts 草稿箱副本
func (s *ListingStore) Drafts() []model.Listing {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Listing(nil), s.drafts...)
}

// DraftByID 按 ID 查找草稿
func (s *ListingStore) DraftByID(id string) (model.Listing, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.drafts {
		if d.ID == id {
			return d, true
		}
	}
	return model.Listing{}, false
}

// ActiveDrafts 仍处于草稿状态的草稿
func (s *ListingStore) ActiveDrafts() []model.Listing {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Listing, 0)
	for _, d := range s.drafts {
		if d.Status == model.ListingStatusDraft {
			out = append(out, d)
		}
	}
	return out
}
