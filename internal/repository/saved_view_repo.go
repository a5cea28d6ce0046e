package repository

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"resale_ops_v1_202609/internal/model"
)

// ==================== SavedViewRecord 视图持久化模型 ====================

// SavedViewRecord 保存的视图（持久化形态）
// 筛选快照与列配置以 JSON 存储
type SavedViewRecord struct {
	ID        string `gorm:"primaryKey;size:64"`
	Name      string `gorm:"size:128;not null"`
	Route     string `gorm:"size:255"`
	Filters   datatypes.JSONMap
	Columns   datatypes.JSON
	SortBy    string `gorm:"size:64"`
	SortOrder string `gorm:"size:8"`
	CreatedAt time.Time
}

func (*SavedViewRecord) TableName() string {
	return "saved_views"
}

// ==================== SavedViewRepository 视图仓库 ====================

// SavedViewRepository 保存的视图仓库接口
type SavedViewRepository interface {
	List(ctx context.Context) ([]model.SavedView, error)
	Save(ctx context.Context, view model.SavedView) error
	Delete(ctx context.Context, id string) error
}

type savedViewRepository struct {
	db *gorm.DB
}

// NewSavedViewRepository 创建视图仓库
func NewSavedViewRepository(db *gorm.DB) SavedViewRepository {
	return &savedViewRepository{db: db}
}

func (r *savedViewRepository) List(ctx context.Context) ([]model.SavedView, error) {
	var records []SavedViewRecord
	if err := r.db.WithContext(ctx).Order("created_at").Find(&records).Error; err != nil {
		return nil, err
	}
	views := make([]model.SavedView, len(records))
	for i, rec := range records {
		views[i] = toView(rec)
	}
	return views, nil
}

func (r *savedViewRepository) Save(ctx context.Context, view model.SavedView) error {
	rec, err := toRecord(view)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Save(&rec).Error
}

func (r *savedViewRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&SavedViewRecord{}, "id = ?", id).Error
}

// ==================== 转换 ====================

func toRecord(v model.SavedView) (SavedViewRecord, error) {
	rec := SavedViewRecord{
		ID:        v.ID,
		Name:      v.Name,
		Route:     v.Route,
		Filters:   datatypes.JSONMap(v.Filters),
		SortBy:    v.SortBy,
		SortOrder: v.SortOrder,
	}
	if v.Columns != nil {
		raw, err := json.Marshal(v.Columns)
		if err != nil {
			return rec, err
		}
		rec.Columns = datatypes.JSON(raw)
	}
	return rec, nil
}

func toView(rec SavedViewRecord) model.SavedView {
	view := model.SavedView{
		ID:        rec.ID,
		Name:      rec.Name,
		Route:     rec.Route,
		Filters:   map[string]any(rec.Filters),
		SortBy:    rec.SortBy,
		SortOrder: rec.SortOrder,
	}
	if len(rec.Columns) > 0 {
		// 列配置损坏时忽略，不影响视图本身
		_ = json.Unmarshal(rec.Columns, &view.Columns)
	}
	return view
}
