package store

import (
	"strings"
	"sync"
	"time"

	"resale_ops_v1_202609/internal/model"
)

// ==================== 筛选条件 ====================

// ShipmentFilters 发货筛选条件
type ShipmentFilters struct {
	Search  string `json:"search"`
	Status  string `json:"status"`
	Carrier string `json:"carrier"`
}

// ShipmentFiltersPatch 筛选条件部分更新
type ShipmentFiltersPatch struct {
	Search  *string
	Status  *string
	Carrier *string
}

// ==================== ShipmentStore 发货 Store ====================

// ShipmentStore 发货命名空间
type ShipmentStore struct {
	mu              sync.RWMutex
	shipments       []model.Shipment
	loading         bool
	err             string
	filters         ShipmentFilters
	printers        []string
	selectedPrinter string
	seq             *idSeq
}

// NewShipmentStore 创建发货 Store
func NewShipmentStore() *ShipmentStore {
	return &ShipmentStore{
		printers:        []string{"Default Printer", "Label Printer", "Sunmi L2S"},
		selectedPrinter: "Default Printer",
		seq:             newIDSeq(),
	}
}

// ==================== 集合变更 ====================

// SetAll 整体替换集合
func (s *ShipmentStore) SetAll(shipments []model.Shipment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shipments = shipments
}

// Add 新建发货标签：分配 ID 与时间戳后追加
func (s *ShipmentStore) Add(sh model.Shipment) model.Shipment {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	sh.ID = s.seq.next("shipment")
	sh.CreatedAt = now
	sh.UpdatedAt = now
	s.shipments = append(s.shipments, sh)
	return sh
}

// Update 按 ID 浅合并补丁并刷新 UpdatedAt；ID 不存在时为无操作
// 延迟回调必须走这里按 ID 复核存在性，不能假定位置有效
func (s *ShipmentStore) Update(id string, patch model.ShipmentPatch) (model.Shipment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.shipments {
		if s.shipments[i].ID == id {
			patch.Apply(&s.shipments[i])
			s.shipments[i].UpdatedAt = time.Now()
			return s.shipments[i], true
		}
	}
	return model.Shipment{}, false
}

// Remove 按 ID 删除，幂等
func (s *ShipmentStore) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.shipments[:0]
	for _, sh := range s.shipments {
		if sh.ID != id {
			out = append(out, sh)
		}
	}
	s.shipments = out
}

// ==================== 瞬态 UI 状态 ====================

// SetLoading 设置加载标记
func (s *ShipmentStore) SetLoading(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = v
}

// Loading 当前是否加载中
func (s *ShipmentStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// SetError 记录最近一次错误信息
func (s *ShipmentStore) SetError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = msg
}

// Error 最近一次错误信息
func (s *ShipmentStore) Error() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// SetFilters 浅合并筛选条件
func (s *ShipmentStore) SetFilters(p ShipmentFiltersPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.Search != nil {
		s.filters.Search = *p.Search
	}
	if p.Status != nil {
		s.filters.Status = *p.Status
	}
	if p.Carrier != nil {
		s.filters.Carrier = *p.Carrier
	}
}

// Filters 当前筛选条件
func (s *ShipmentStore) Filters() ShipmentFilters {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filters
}

// Printers 可用打印机列表
func (s *ShipmentStore) Printers() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.printers...)
}

// SetSelectedPrinter 选择打印机
func (s *ShipmentStore) SetSelectedPrinter(p string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedPrinter = p
}

// SelectedPrinter 当前选择的打印机
func (s *ShipmentStore) SelectedPrinter() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedPrinter
}

// ==================== 派生读取 ====================

// All 集合副本
func (s *ShipmentStore) All() []model.Shipment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Shipment(nil), s.shipments...)
}

// ByID 按 ID 查找
func (s *ShipmentStore) ByID(id string) (model.Shipment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sh := range s.shipments {
		if sh.ID == id {
			return sh, true
		}
	}
	return model.Shipment{}, false
}

// Filtered 按筛选条件过滤后的集合
// 搜索字段固定为 tracking / carrier / orderId
func (s *ShipmentStore) Filtered() []model.Shipment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Shipment, 0, len(s.shipments))
	search := strings.ToLower(s.filters.Search)
	for _, sh := range s.shipments {
		if search != "" &&
			!strings.Contains(strings.ToLower(sh.Tracking), search) &&
			!strings.Contains(strings.ToLower(sh.Carrier), search) &&
			!strings.Contains(strings.ToLower(sh.OrderID), search) {
			continue
		}
		if s.filters.Status != "" && string(sh.Status) != s.filters.Status {
			continue
		}
		if s.filters.Carrier != "" && sh.Carrier != s.filters.Carrier {
			continue
		}
		out = append(out, sh)
	}
	return out
}

// ByStatus 指定状态的发货标签
func (s *ShipmentStore) ByStatus(status model.ShipmentStatus) []model.Shipment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Shipment, 0)
	for _, sh := range s.shipments {
		if sh.Status == status {
			out = append(out, sh)
		}
	}
	return out
}

// PendingLabels 待处理标签
func (s *ShipmentStore) PendingLabels() []model.Shipment {
	return s.ByStatus(model.ShipmentStatusPending)
}

// PrintedLabels 已打印标签
func (s *ShipmentStore) PrintedLabels() []model.Shipment {
	return s.ByStatus(model.ShipmentStatusPrinted)
}

// FailedLabels 打印失败标签
func (s *ShipmentStore) FailedLabels() []model.Shipment {
	return s.ByStatus(model.ShipmentStatusFailed)
}
