package store

import (
	"sync"

	"resale_ops_v1_202609/internal/model"
)

// ==================== SettingsStore 偏好 Store ====================

// SettingsStore 偏好命名空间
// 持久化与主题副作用由 service.SettingsService 负责，这里只持有内存状态
type SettingsStore struct {
	mu sync.RWMutex
	s  model.Settings
}

// NewSettingsStore 创建偏好 Store，带默认值
func NewSettingsStore() *SettingsStore {
	return &SettingsStore{
		s: model.Settings{
			DefaultPrinter: "Default Printer",
			DefaultCarrier: "Royal Mail",
			LabelSize:      "A6",
		},
	}
}

// Get 偏好快照（含视图列表副本）
func (s *SettingsStore) Get() model.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := s.s
	out.SavedViews = append([]model.SavedView(nil), s.s.SavedViews...)
	return out
}

// ==================== 开关与默认项 ====================

// SetDarkMode 设置暗色模式
func (s *SettingsStore) SetDarkMode(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.s.DarkMode = v
}

// DarkMode 当前暗色模式
func (s *SettingsStore) DarkMode() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.s.DarkMode
}

// SetSidebarCollapsed 设置侧栏折叠
func (s *SettingsStore) SetSidebarCollapsed(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.s.SidebarCollapsed = v
}

// SetDefaultPrinter 设置默认打印机
func (s *SettingsStore) SetDefaultPrinter(p string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.s.DefaultPrinter = p
}

// SetDefaultCarrier 设置默认承运商
func (s *SettingsStore) SetDefaultCarrier(c string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.s.DefaultCarrier = c
}

// SetLabelSize 设置标签纸规格
func (s *SettingsStore) SetLabelSize(size string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.s.LabelSize = size
}

// SetAutoPrint 设置自动打印
func (s *SettingsStore) SetAutoPrint(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.s.AutoPrint = v
}

// ==================== 保存的视图 ====================

// SetSavedViews 整体替换视图列表（启动回放用）
func (s *SettingsStore) SetSavedViews(views []model.SavedView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.s.SavedViews = views
}

// AddSavedView 追加视图
func (s *SettingsStore) AddSavedView(v model.SavedView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.s.SavedViews = append(s.s.SavedViews, v)
}

// UpdateSavedView 按 ID 整体替换视图；ID 不存在时为无操作
func (s *SettingsStore) UpdateSavedView(v model.SavedView) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.s.SavedViews {
		if s.s.SavedViews[i].ID == v.ID {
			s.s.SavedViews[i] = v
			return true
		}
	}
	return false
}

// RemoveSavedView 按 ID 删除视图，幂等
func (s *SettingsStore) RemoveSavedView(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.s.SavedViews[:0]
	for _, v := range s.s.SavedViews {
		if v.ID != id {
			out = append(out, v)
		}
	}
	s.s.SavedViews = out
}
