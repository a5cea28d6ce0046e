package service

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"resale_ops_v1_202609/internal/model"
	"resale_ops_v1_202609/internal/repository"
	"resale_ops_v1_202609/internal/store"
)

// ==================== ThemeApplier 主题副作用 ====================

// ThemeApplier 暗色模式切换的副作用出口（如通知前台换肤）
type ThemeApplier interface {
	ApplyDark(dark bool)
}

// NoopThemeApplier 空实现
type NoopThemeApplier struct{}

func (NoopThemeApplier) ApplyDark(bool) {}

// ==================== SettingsService 偏好服务 ====================

// SettingsService 偏好服务
// 内存态在 SettingsStore，偏好与视图落库由这里负责；
// 布尔偏好以 "true"/"false" 字符串持久化
type SettingsService struct {
	store *store.SettingsStore
	prefs repository.PreferenceRepository
	views repository.SavedViewRepository
	theme ThemeApplier
}

// NewSettingsService 创建偏好服务
func NewSettingsService(st *store.SettingsStore, prefs repository.PreferenceRepository, views repository.SavedViewRepository, theme ThemeApplier) *SettingsService {
	if theme == nil {
		theme = NoopThemeApplier{}
	}
	return &SettingsService{store: st, prefs: prefs, views: views, theme: theme}
}

// Initialize 启动回放：从库中恢复偏好与视图，并应用一次主题
func (s *SettingsService) Initialize(ctx context.Context) error {
	if v, ok, err := s.prefs.Get(ctx, repository.PrefKeyDarkMode); err != nil {
		return fmt.Errorf("load darkMode: %w", err)
	} else if ok {
		s.store.SetDarkMode(v == "true")
	}

	if v, ok, err := s.prefs.Get(ctx, repository.PrefKeySidebarCollapsed); err != nil {
		return fmt.Errorf("load sidebarCollapsed: %w", err)
	} else if ok {
		s.store.SetSidebarCollapsed(v == "true")
	}

	views, err := s.views.List(ctx)
	if err != nil {
		return fmt.Errorf("load saved views: %w", err)
	}
	s.store.SetSavedViews(views)

	s.theme.ApplyDark(s.store.DarkMode())
	log.Printf("[Settings] 偏好已恢复，视图 %d 个，darkMode=%v", len(views), s.store.DarkMode())
	return nil
}

// Get 偏好快照
func (s *SettingsService) Get() model.Settings {
	return s.store.Get()
}

// ==================== 开关与默认项 ====================

// SetDarkMode 设置暗色模式：先更新内存与主题，再落库
func (s *SettingsService) SetDarkMode(ctx context.Context, dark bool) error {
	s.store.SetDarkMode(dark)
	s.theme.ApplyDark(dark)
	return s.prefs.Set(ctx, repository.PrefKeyDarkMode, strconv.FormatBool(dark))
}

// ToggleDarkMode 翻转暗色模式，返回新值
func (s *SettingsService) ToggleDarkMode(ctx context.Context) (bool, error) {
	dark := !s.store.DarkMode()
	return dark, s.SetDarkMode(ctx, dark)
}

// SetSidebarCollapsed 设置侧栏折叠并落库
func (s *SettingsService) SetSidebarCollapsed(ctx context.Context, collapsed bool) error {
	s.store.SetSidebarCollapsed(collapsed)
	return s.prefs.Set(ctx, repository.PrefKeySidebarCollapsed, strconv.FormatBool(collapsed))
}

// SetDefaultPrinter 设置默认打印机
func (s *SettingsService) SetDefaultPrinter(p string) {
	s.store.SetDefaultPrinter(p)
}

// SetDefaultCarrier 设置默认承运商
func (s *SettingsService) SetDefaultCarrier(c string) {
	s.store.SetDefaultCarrier(c)
}

// SetLabelSize 设置标签纸规格
func (s *SettingsService) SetLabelSize(size string) {
	s.store.SetLabelSize(size)
}

// SetAutoPrint 设置自动打印
func (s *SettingsService) SetAutoPrint(v bool) {
	s.store.SetAutoPrint(v)
}

// ==================== 保存的视图 ====================

// SaveView 保存视图：ID 为空时分配，落库后写入内存
func (s *SettingsService) SaveView(ctx context.Context, v model.SavedView) (model.SavedView, error) {
	if v.ID == "" {
		v.ID = fmt.Sprintf("view-%d", time.Now().UnixMilli())
	}
	if err := s.views.Save(ctx, v); err != nil {
		return model.SavedView{}, err
	}
	s.store.AddSavedView(v)
	return v, nil
}

// UpdateView 整体替换视图；ID 不存在时返回 false
func (s *SettingsService) UpdateView(ctx context.Context, v model.SavedView) (bool, error) {
	if !s.store.UpdateSavedView(v) {
		return false, nil
	}
	return true, s.views.Save(ctx, v)
}

// DeleteView 删除视图，幂等
func (s *SettingsService) DeleteView(ctx context.Context, id string) error {
	s.store.RemoveSavedView(id)
	return s.views.Delete(ctx, id)
}
