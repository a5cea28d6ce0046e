package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"resale_ops_v1_202609/internal/model"
	"resale_ops_v1_202609/internal/repository"
	"resale_ops_v1_202609/internal/store"
)

// ==================== 测试辅助 ====================

func setupSettingsTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}

	if err := db.AutoMigrate(&repository.Preference{}, &repository.SavedViewRecord{}); err != nil {
		t.Fatalf("数据库迁移失败: %v", err)
	}
	return db
}

// recordingTheme 记录每次换肤调用
type recordingTheme struct {
	calls []bool
}

func (r *recordingTheme) ApplyDark(dark bool) {
	r.calls = append(r.calls, dark)
}

func newSettingsSvc(t *testing.T) (*SettingsService, *store.SettingsStore, *recordingTheme, *gorm.DB) {
	db := setupSettingsTestDB(t)
	st := store.NewSettingsStore()
	theme := &recordingTheme{}
	svc := NewSettingsService(
		st,
		repository.NewPreferenceRepository(db),
		repository.NewSavedViewRepository(db),
		theme,
	)
	return svc, st, theme, db
}

// ==================== 暗色模式 ====================

func TestSettingsServiceDarkModePersistsAsString(t *testing.T) {
	svc, st, theme, db := newSettingsSvc(t)
	ctx := context.Background()

	assert.NoError(t, svc.SetDarkMode(ctx, true))
	assert.True(t, st.DarkMode())
	assert.Equal(t, []bool{true}, theme.calls)

	// 布尔偏好以 "true"/"false" 字符串落库
	var pref repository.Preference
	assert.NoError(t, db.First(&pref, "key = ?", repository.PrefKeyDarkMode).Error)
	assert.Equal(t, "true", pref.Value)

	assert.NoError(t, svc.SetDarkMode(ctx, false))
	assert.NoError(t, db.First(&pref, "key = ?", repository.PrefKeyDarkMode).Error)
	assert.Equal(t, "false", pref.Value)
}

func TestSettingsServiceToggleDarkMode(t *testing.T) {
	svc, st, _, _ := newSettingsSvc(t)
	ctx := context.Background()

	dark, err := svc.ToggleDarkMode(ctx)
	assert.NoError(t, err)
	assert.True(t, dark)

	dark, err = svc.ToggleDarkMode(ctx)
	assert.NoError(t, err)
	assert.False(t, dark)
	assert.False(t, st.DarkMode())
}

// ==================== 启动回放 ====================

func TestSettingsServiceInitializeRestoresState(t *testing.T) {
	db := setupSettingsTestDB(t)
	ctx := context.Background()

	prefs := repository.NewPreferenceRepository(db)
	views := repository.NewSavedViewRepository(db)
	assert.NoError(t, prefs.Set(ctx, repository.PrefKeyDarkMode, "true"))
	assert.NoError(t, prefs.Set(ctx, repository.PrefKeySidebarCollapsed, "true"))
	assert.NoError(t, views.Save(ctx, model.SavedView{
		ID:      "view-1",
		Name:    "In stock only",
		Route:   "/items",
		Filters: map[string]any{"status": "in_stock"},
	}))

	st := store.NewSettingsStore()
	theme := &recordingTheme{}
	svc := NewSettingsService(st, prefs, views, theme)

	assert.NoError(t, svc.Initialize(ctx))

	settings := st.Get()
	assert.True(t, settings.DarkMode)
	assert.True(t, settings.SidebarCollapsed)
	assert.Len(t, settings.SavedViews, 1)
	assert.Equal(t, "In stock only", settings.SavedViews[0].Name)
	assert.Equal(t, "in_stock", settings.SavedViews[0].Filters["status"])

	// 回放后应用一次主题
	assert.Equal(t, []bool{true}, theme.calls)
}

func TestSettingsServiceInitializeEmptyDBKeepsDefaults(t *testing.T) {
	svc, st, _, _ := newSettingsSvc(t)

	assert.NoError(t, svc.Initialize(context.Background()))
	settings := st.Get()
	assert.False(t, settings.DarkMode)
	assert.Equal(t, "Default Printer", settings.DefaultPrinter)
	assert.Equal(t, "Royal Mail", settings.DefaultCarrier)
	assert.Equal(t, "A6", settings.LabelSize)
}

// ==================== 保存的视图 ====================

func TestSettingsServiceSavedViewLifecycle(t *testing.T) {
	svc, st, _, db := newSettingsSvc(t)
	ctx := context.Background()

	v, err := svc.SaveView(ctx, model.SavedView{
		Name:    "Cheap deals",
		Route:   "/deals",
		Filters: map[string]any{"maxPrice": 50.0},
		Columns: []string{"title", "price"},
		SortBy:  "price",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, v.ID)
	assert.Len(t, st.Get().SavedViews, 1)

	// 更新
	v.Name = "Cheap deals v2"
	ok, err := svc.UpdateView(ctx, v)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Cheap deals v2", st.Get().SavedViews[0].Name)

	// 落库验证
	fresh := repository.NewSavedViewRepository(db)
	stored, err := fresh.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, stored, 1)
	assert.Equal(t, "Cheap deals v2", stored[0].Name)
	assert.Equal(t, []string{"title", "price"}, stored[0].Columns)

	// 删除幂等
	assert.NoError(t, svc.DeleteView(ctx, v.ID))
	assert.NoError(t, svc.DeleteView(ctx, v.ID))
	assert.Empty(t, st.Get().SavedViews)
}

func TestSettingsServiceUpdateUnknownView(t *testing.T) {
	svc, _, _, _ := newSettingsSvc(t)

	ok, err := svc.UpdateView(context.Background(), model.SavedView{ID: "view-missing", Name: "x"})
	assert.NoError(t, err)
	assert.False(t, ok)
}
