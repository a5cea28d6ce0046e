package store

import (
	"sync"
	"time"

	"resale_ops_v1_202609/internal/model"
)

// ==================== BuyingStore 采购 Store ====================

// BuyingStore 采购命名空间：监控搜索 + 采购单
// 采购单由捡漏批准动作跨 Store 写入（见 service.DealService.Approve）
type BuyingStore struct {
	mu        sync.RWMutex
	queries   []model.SearchQuery
	purchases []model.Purchase
	seq       *idSeq
}

// NewBuyingStore 创建采购 Store，预置监控搜索样例
func NewBuyingStore() *BuyingStore {
	return &BuyingStore{
		queries: seedQueries(),
		seq:     newIDSeq(),
	}
}

// seedQueries 启动时的监控搜索样例
func seedQueries() []model.SearchQuery {
	now := time.Now()
	return []model.SearchQuery{
		{
			ID: "1", Query: "Zara jacket size L", Category: "Outerwear",
			MaxPrice: 25, Status: model.QueryStatusActive,
			LastChecked: now.Add(-30 * time.Minute), ResultsFound: 12,
		},
		{
			ID: "2", Query: "Nike sneakers size 9", Category: "Shoes",
			MaxPrice: 40, Status: model.QueryStatusActive,
			LastChecked: now.Add(-75 * time.Minute), ResultsFound: 8,
		},
		{
			ID: "3", Query: "Vintage band t-shirt", Category: "Tops",
			MaxPrice: 15, Status: model.QueryStatusPaused,
			LastChecked: now.Add(-18 * time.Hour), ResultsFound: 3,
		},
	}
}

// ==================== 监控搜索 ====================

// AddQuery 新建监控搜索：分配 ID，初始为监控中
func (s *BuyingStore) AddQuery(q model.SearchQuery) model.SearchQuery {
	s.mu.Lock()
	defer s.mu.Unlock()
	q.ID = s.seq.next("query")
	q.Status = model.QueryStatusActive
	q.LastChecked = time.Now()
	q.ResultsFound = 0
	s.queries = append(s.queries, q)
	return q
}

// UpdateQuery 按 ID 浅合并补丁；ID 不存在时为无操作
func (s *BuyingStore) UpdateQuery(id string, patch model.SearchQueryPatch) (model.SearchQuery, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.queries {
		if s.queries[i].ID == id {
			patch.Apply(&s.queries[i])
			return s.queries[i], true
		}
	}
	return model.SearchQuery{}, false
}

// RemoveQuery 按 ID 删除，幂等
func (s *BuyingStore) RemoveQuery(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.queries[:0]
	for _, q := range s.queries {
		if q.ID != id {
			out = append(out, q)
		}
	}
	s.queries = out
}

// Queries 全部监控搜索
func (s *BuyingStore) Queries() []model.SearchQuery {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.SearchQuery(nil), s.queries...)
}

// ActiveQueries 监控中的搜索
func (s *BuyingStore) ActiveQueries() []model.SearchQuery {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.SearchQuery, 0)
	for _, q := range s.queries {
		if q.Status == model.QueryStatusActive {
			out = append(out, q)
		}
	}
	return out
}

// TouchActiveQueries 刷新监控中搜索的检查时间并累计结果数（后台扫描用）
func (s *BuyingStore) TouchActiveQueries(found int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for i := range s.queries {
		if s.queries[i].Status != model.QueryStatusActive {
			continue
		}
		s.queries[i].LastChecked = now
		s.queries[i].ResultsFound += found
	}
}

// ==================== 采购单 ====================

// AddPurchase 新建采购单：分配 ID 与时间后追加
func (s *BuyingStore) AddPurchase(p model.Purchase) model.Purchase {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.seq.next("purchase")
	p.PurchasedAt = time.Now()
	s.purchases = append(s.purchases, p)
	return p
}

// UpdatePurchaseStatus 更新采购状态，可顺带写入运单号；ID 不存在时为无操作
func (s *BuyingStore) UpdatePurchaseStatus(id string, status model.PurchaseStatus, tracking string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.purchases {
		if s.purchases[i].ID == id {
			s.purchases[i].Status = status
			if tracking != "" {
				s.purchases[i].TrackingNumber = tracking
			}
			return true
		}
	}
	return false
}

// Purchases 全部采购单
func (s *BuyingStore) Purchases() []model.Purchase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Purchase(nil), s.purchases...)
}

// ActivePurchases 进行中的采购单（待下单/已下单/卖家已发出）
func (s *BuyingStore) ActivePurchases() []model.Purchase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Purchase, 0)
	for _, p := range s.purchases {
		switch p.Status {
		case model.PurchaseStatusPending, model.PurchaseStatusPurchased, model.PurchaseStatusShipped:
			out = append(out, p)
		}
	}
	return out
}
