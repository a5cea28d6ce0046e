package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ==================== Preference 偏好键值 ====================

// Preference 本地偏好键值对
// 布尔偏好以 "true"/"false" 字符串存储，与前台约定保持一致
type Preference struct {
	Key       string `gorm:"primaryKey;size:64"`
	Value     string `gorm:"size:255"`
	UpdatedAt time.Time
}

func (*Preference) TableName() string {
	return "preferences"
}

// 偏好键
const (
	PrefKeyDarkMode         = "darkMode"
	PrefKeySidebarCollapsed = "sidebarCollapsed"
)

// ==================== PreferenceRepository 偏好仓库 ====================

// PreferenceRepository 偏好仓库接口
type PreferenceRepository interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

type preferenceRepository struct {
	db *gorm.DB
}

// NewPreferenceRepository 创建偏好仓库
func NewPreferenceRepository(db *gorm.DB) PreferenceRepository {
	return &preferenceRepository{db: db}
}

func (r *preferenceRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var pref Preference
	err := r.db.WithContext(ctx).First(&pref, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return pref.Value, true, nil
}

func (r *preferenceRepository) Set(ctx context.Context, key, value string) error {
	pref := Preference{Key: key, Value: value}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&pref).Error
}

func (r *preferenceRepository) Delete(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).Delete(&Preference{}, "key = ?", key).Error
}
