package store

import (
	"sort"
	"strings"
	"sync"
	"time"

	"resale_ops_v1_202609/internal/model"
)

// ==================== 筛选条件 ====================

// OrderFilters 订单筛选条件
type OrderFilters struct {
	Search   string `json:"search"`
	Status   string `json:"status"`
	Platform string `json:"platform"`
}

// OrderFiltersPatch 筛选条件部分更新
type OrderFiltersPatch struct {
	Search   *string
	Status   *string
	Platform *string
}

// ==================== OrderStore 订单 Store ====================

// OrderStore 订单命名空间
type OrderStore struct {
	mu      sync.RWMutex
	orders  []model.Order
	loading bool
	err     string
	filters OrderFilters
	seq     *idSeq
}

// NewOrderStore 创建订单 Store
func NewOrderStore() *OrderStore {
	return &OrderStore{seq: newIDSeq()}
}

// ==================== 集合变更 ====================

// SetAll 整体替换集合
func (s *OrderStore) SetAll(orders []model.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = orders
}

// Create 新建订单：分配 ID 与创建时间后追加
func (s *OrderStore) Create(o model.Order) model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	o.ID = s.seq.next("order")
	o.CreatedAt = time.Now()
	s.orders = append(s.orders, o)
	return o
}

// Update 按 ID 浅合并补丁；ID 不存在时为无操作
func (s *OrderStore) Update(id string, patch model.OrderPatch) (model.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			patch.Apply(&s.orders[i])
			return s.orders[i], true
		}
	}
	return model.Order{}, false
}

// Remove 按 ID 删除，幂等
func (s *OrderStore) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.orders[:0]
	for _, o := range s.orders {
		if o.ID != id {
			out = append(out, o)
		}
	}
	s.orders = out
}

// ==================== 瞬态 UI 状态 ====================

// SetLoading 设置加载标记
func (s *OrderStore) SetLoading(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = v
}

// Loading 当前是否加载中
func (s *OrderStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// SetError 记录最近一次错误信息
func (s *OrderStore) SetError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = msg
}

// Error 最近一次错误信息
func (s *OrderStore) Error() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// SetFilters 浅合并筛选条件
func (s *OrderStore) SetFilters(p OrderFiltersPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.Search != nil {
		s.filters.Search = *p.Search
	}
	if p.Status != nil {
		s.filters.Status = *p.Status
	}
	if p.Platform != nil {
		s.filters.Platform = *p.Platform
	}
}

// Filters 当前筛选条件
func (s *OrderStore) Filters() OrderFilters {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filters
}

// ==================== 派生读取 ====================

// All 集合副本
func (s *OrderStore) All() []model.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Order(nil), s.orders...)
}

// ByID 按 ID 查找
func (s *OrderStore) ByID(id string) (model.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.ID == id {
			return o, true
		}
	}
	return model.Order{}, false
}

// Filtered 按筛选条件过滤后按创建时间倒序
// 搜索字段固定为 buyer / itemId
func (s *OrderStore) Filtered() []model.Order {
	s.mu.RLock()
	out := make([]model.Order, 0, len(s.orders))
	search := strings.ToLower(s.filters.Search)
	for _, o := range s.orders {
		if search != "" &&
			!strings.Contains(strings.ToLower(o.Buyer), search) &&
			!strings.Contains(strings.ToLower(o.ItemID), search) {
			continue
		}
		if s.filters.Status != "" && string(o.Status) != s.filters.Status {
			continue
		}
		if s.filters.Platform != "" && string(o.Platform) != s.filters.Platform {
			continue
		}
		out = append(out, o)
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// ByStatus 指定状态的订单
func (s *OrderStore) ByStatus(status model.OrderStatus) []model.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Order, 0)
	for _, o := range s.orders {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out
}

// PendingPick 待拣货订单
func (s *OrderStore) PendingPick() []model.Order {
	return s.ByStatus(model.OrderStatusPendingPick)
}
