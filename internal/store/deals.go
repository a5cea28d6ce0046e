package store

import (
	"sort"
	"sync"

	"resale_ops_v1_202609/internal/model"
)

// ==================== 筛选条件 ====================

// DealFilters 捡漏筛选条件
// 数值条件为 0 时表示不启用该条件
type DealFilters struct {
	Source          string  `json:"source"`
	MinMargin       float64 `json:"minMargin"`
	MaxPrice        float64 `json:"maxPrice"`
	MinSellerRating float64 `json:"minSellerRating"`
}

// DealFiltersPatch 筛选条件部分更新
type DealFiltersPatch struct {
	Source          *string
	MinMargin       *float64
	MaxPrice        *float64
	MinSellerRating *float64
}

// ==================== DealStore 捡漏 Store ====================

// DealStore 捡漏命名空间
type DealStore struct {
	mu       sync.RWMutex
	deals    []model.Deal
	loading  bool
	err      string
	filters  DealFilters
	viewMode string // cards / table
}

// NewDealStore 创建捡漏 Store，预置固定样例
func NewDealStore() *DealStore {
	return &DealStore{
		deals:    seedDeals(),
		viewMode: "cards",
	}
}

// seedDeals 启动时的固定样例（与监控搜索样例对应）
func seedDeals() []model.Deal {
	return []model.Deal{
		{
			ID: "1", Source: model.SourceVinted,
			Title: "Zara Black Blazer Size L", Price: 18.50, EstResale: 44.00,
			URL: "https://vinted.com/items/123456", SellerRating: 4.8,
			Score: model.ScoreA, AgeMinutes: 32,
			Photos: []string{"/api/placeholder/300/300"},
			Seller: "fashionista123", Location: "UK",
			Status: model.DealStatusPendingReview,
		},
		{
			ID: "2", Source: model.SourceVinted,
			Title: "Nike Air Max 90 Size 9", Price: 35.00, EstResale: 65.00,
			URL: "https://vinted.com/items/789012", SellerRating: 4.5,
			Score: model.ScoreB, AgeMinutes: 75,
			Photos: []string{"/api/placeholder/300/300"},
			Seller: "sneakerhead_uk", Location: "UK",
			Status: model.DealStatusPendingReview,
		},
		{
			ID: "3", Source: model.SourceVinted,
			Title: "Vintage Band T-Shirt", Price: 12.00, EstResale: 20.00,
			URL: "https://vinted.com/items/345678", SellerRating: 4.2,
			Score: model.ScoreC, AgeMinutes: 140,
			Photos: []string{"/api/placeholder/300/300"},
			Seller: "vintage_collector", Location: "UK",
			Status: model.DealStatusPendingReview,
		},
	}
}

// ==================== 集合变更 ====================

// SetAll 整体替换捡漏源
func (s *DealStore) SetAll(deals []model.Deal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deals = deals
}

// Append 追加新发现的捡漏（后台扫描用）
func (s *DealStore) Append(deal model.Deal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deals = append(s.deals, deal)
}

// UpdateStatus 更新审核状态；ID 不存在时为无操作
func (s *DealStore) UpdateStatus(id string, status model.DealStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.deals {
		if s.deals[i].ID == id {
			s.deals[i].Status = status
			return true
		}
	}
	return false
}

// AgeAll 将全部捡漏的发现时长推进 minutes 分钟（后台扫描用）
func (s *DealStore) AgeAll(minutes int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.deals {
		s.deals[i].AgeMinutes += minutes
	}
}

// ==================== 瞬态 UI 状态 ====================

// SetLoading 设置加载标记
func (s *DealStore) SetLoading(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = v
}

// Loading 当前是否加载中
func (s *DealStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// SetError 记录最近一次错误信息
func (s *DealStore) SetError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = msg
}

// Error 最近一次错误信息
func (s *DealStore) Error() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// SetFilters 浅合并筛选条件
func (s *DealStore) SetFilters(p DealFiltersPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.Source != nil {
		s.filters.Source = *p.Source
	}
	if p.MinMargin != nil {
		s.filters.MinMargin = *p.MinMargin
	}
	if p.MaxPrice != nil {
		s.filters.MaxPrice = *p.MaxPrice
	}
	if p.MinSellerRating != nil {
		s.filters.MinSellerRating = *p.MinSellerRating
	}
}

// Filters 当前筛选条件
func (s *DealStore) Filters() DealFilters {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filters
}

// SetViewMode 切换卡片/表格视图
func (s *DealStore) SetViewMode(mode string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewMode = mode
}

// ViewMode 当前视图模式
func (s *DealStore) ViewMode() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.viewMode
}

// ==================== 派生读取 ====================

// All 集合副本
func (s *DealStore) All() []model.Deal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Deal(nil), s.deals...)
}

// ByID 按 ID 查找
func (s *DealStore) ByID(id string) (model.Deal, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.deals {
		if d.ID == id {
			return d, true
		}
	}
	return model.Deal{}, false
}

// Filtered 按筛选条件过滤并按评分从优到劣排序
func (s *DealStore) Filtered() []model.Deal {
	s.mu.RLock()
	out := make([]model.Deal, 0, len(s.deals))
	for _, d := range s.deals {
		if s.filters.Source != "" && string(d.Source) != s.filters.Source {
			continue
		}
		if s.filters.MinMargin > 0 && d.MarginPct() < s.filters.MinMargin {
			continue
		}
		if s.filters.MaxPrice > 0 && d.Price > s.filters.MaxPrice {
			continue
		}
		if s.filters.MinSellerRating > 0 && d.SellerRating < s.filters.MinSellerRating {
			continue
		}
		out = append(out, d)
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score.Weight() > out[j].Score.Weight()
	})
	return out
}

// PendingReview 待审核捡漏
func (s *DealStore) PendingReview() []model.Deal {
	return s.byStatus(model.DealStatusPendingReview)
}

// Approved 已批准捡漏
func (s *DealStore) Approved() []model.Deal {
	return s.byStatus(model.DealStatusApproved)
}

func (s *DealStore) byStatus(status model.DealStatus) []model.Deal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Deal, 0)
	for _, d := range s.deals {
		if d.Status == status {
			out = append(out, d)
		}
	}
	return out
}

// TotalEstimatedProfit 未否决捡漏的预估利润合计
func (s *DealStore) TotalEstimatedProfit() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var total float64
	for _, d := range s.deals {
		if d.Status == model.DealStatusRejected {
			continue
		}
		total += d.EstimatedProfit()
	}
	return total
}
