package store

import (
	"sort"
	"strings"
	"sync"
	"time"

	"resale_ops_v1_202609/internal/model"
)

// ==================== 筛选条件 ====================

// ItemFilters 库存筛选条件
// 搜索为大小写不敏感的子串匹配，其余字段为精确匹配；全部条件取交集
type ItemFilters struct {
	Search    string `json:"search"`
	Condition string `json:"condition"`
	Source    string `json:"source"`
	Status    string `json:"status"`
	Location  string `json:"location"`
}

// ItemFiltersPatch 筛选条件部分更新，nil 字段保持不变
type ItemFiltersPatch struct {
	Search    *string
	Condition *string
	Source    *string
	Status    *string
	Location  *string
}

// ==================== ItemStore 库存 Store ====================

// ItemStore 库存命名空间
type ItemStore struct {
	mu       sync.RWMutex
	items    []model.Item
	loading  bool
	err      string
	filters  ItemFilters
	selected []string
	seq      *idSeq
}

// NewItemStore 创建库存 Store
func NewItemStore() *ItemStore {
	return &ItemStore{seq: newIDSeq()}
}

// ==================== 集合变更 ====================

// SetAll 整体替换集合（fetch 提交用，后提交者获胜）
func (s *ItemStore) SetAll(items []model.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items
}

// Create 新建条目：分配 ID 与创建时间后追加
func (s *ItemStore) Create(item model.Item) model.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	item.ID = s.seq.next("item")
	item.CreatedAt = time.Now()
	s.items = append(s.items, item)
	return item
}

// Update 按 ID 定位并浅合并补丁；ID 不存在时为无操作
func (s *ItemStore) Update(id string, patch model.ItemPatch) (model.Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			patch.Apply(&s.items[i])
			return s.items[i], true
		}
	}
	return model.Item{}, false
}

// Remove 按 ID 删除，幂等
func (s *ItemStore) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.items[:0]
	for _, it := range s.items {
		if it.ID != id {
			out = append(out, it)
		}
	}
	s.items = out
}

// ==================== 瞬态 UI 状态 ====================

// SetLoading 设置加载标记
func (s *ItemStore) SetLoading(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = v
}

// Loading 当前是否加载中
func (s *ItemStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// SetError 记录最近一次错误信息
func (s *ItemStore) SetError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = msg
}

// Error 最近一次错误信息，空串表示无错误
func (s *ItemStore) Error() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// SetFilters 浅合并筛选条件，不触发 fetch
func (s *ItemStore) SetFilters(p ItemFiltersPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.Search != nil {
		s.filters.Search = *p.Search
	}
	if p.Condition != nil {
		s.filters.Condition = *p.Condition
	}
	if p.Source != nil {
		s.filters.Source = *p.Source
	}
	if p.Status != nil {
		s.filters.Status = *p.Status
	}
	if p.Location != nil {
		s.filters.Location = *p.Location
	}
}

// Filters 当前筛选条件
func (s *ItemStore) Filters() ItemFilters {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filters
}

// SetSelected 整体替换勾选集
func (s *ItemStore) SetSelected(ids []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = append([]string(nil), ids...)
}

// ToggleSelected 切换单条勾选
func (s *ItemStore) ToggleSelected(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, sel := range s.selected {
		if sel == id {
			s.selected = append(s.selected[:i], s.selected[i+1:]...)
			return
		}
	}
	s.selected = append(s.selected, id)
}

// Selected 当前勾选的 ID 列表
func (s *ItemStore) Selected() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.selected...)
}

// ==================== 派生读取 ====================

// All 集合副本，保持原始顺序
func (s *ItemStore) All() []model.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Item(nil), s.items...)
}

// ByID 按 ID 查找
func (s *ItemStore) ByID(id string) (model.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.items {
		if it.ID == id {
			return it, true
		}
	}
	return model.Item{}, false
}

// Filtered 按当前搜索词与筛选条件过滤后的集合
// 搜索字段固定为 title / sku / brand；各条件相互独立、顺序无关
func (s *ItemStore) Filtered() []model.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Item, 0, len(s.items))
	search := strings.ToLower(s.filters.Search)
	for _, it := range s.items {
		if search != "" &&
			!strings.Contains(strings.ToLower(it.Title), search) &&
			!strings.Contains(strings.ToLower(it.SKU), search) &&
			!strings.Contains(strings.ToLower(it.Brand), search) {
			continue
		}
		if s.filters.Condition != "" && string(it.Condition) != s.filters.Condition {
			continue
		}
		if s.filters.Source != "" && string(it.Source) != s.filters.Source {
			continue
		}
		if s.filters.Status != "" && string(it.Status) != s.filters.Status {
			continue
		}
		if s.filters.Location != "" && it.Location != s.filters.Location {
			continue
		}
		out = append(out, it)
	}
	return out
}

// SelectedItems 勾选集对应的条目
func (s *ItemStore) SelectedItems() []model.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sel := make(map[string]struct{}, len(s.selected))
	for _, id := range s.selected {
		sel[id] = struct{}{}
	}
	out := make([]model.Item, 0, len(sel))
	for _, it := range s.items {
		if _, ok := sel[it.ID]; ok {
			out = append(out, it)
		}
	}
	return out
}

// ==================== 聚合读取 ====================

// TotalBuyValue 全部库存进价合计
func (s *ItemStore) TotalBuyValue() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var total float64
	for _, it := range s.items {
		total += it.BuyPrice
	}
	return total
}

// TotalPotentialProfit 全部库存预期利润合计
func (s *ItemStore) TotalPotentialProfit() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var total float64
	for _, it := range s.items {
		total += it.PotentialProfit()
	}
	return total
}

// CountsByStatus 按状态统计数量
func (s *ItemStore) CountsByStatus() map[model.ItemStatus]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counts := make(map[model.ItemStatus]int)
	for _, it := range s.items {
		counts[it.Status]++
	}
	return counts
}

// Brands 去重排序后的品牌列表
func (s *ItemStore) Brands() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return distinctSorted(s.items, func(it model.Item) string { return it.Brand })
}

// Locations 去重排序后的库位列表
func (s *ItemStore) Locations() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return distinctSorted(s.items, func(it model.Item) string { return it.Location })
}

func distinctSorted(items []model.Item, field func(model.Item) string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, it := range items {
		v := field(it)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
