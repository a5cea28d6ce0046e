package dto

import "resale_ops_v1_202609/internal/model"

// ==================== 请求 DTO ====================

// DarkModeRequest 暗色模式设置请求
type DarkModeRequest struct {
	DarkMode *bool `json:"darkMode" binding:"required"`
}

// SidebarRequest 侧栏折叠设置请求
type SidebarRequest struct {
	Collapsed *bool `json:"collapsed" binding:"required"`
}

// PrintSettingsRequest 打印相关偏好请求
type PrintSettingsRequest struct {
	DefaultPrinter *string `json:"defaultPrinter,omitempty"`
	DefaultCarrier *string `json:"defaultCarrier,omitempty"`
	LabelSize      *string `json:"labelSize,omitempty" binding:"omitempty,oneof=A6 A7 4x6"`
	AutoPrint      *bool   `json:"autoPrint,omitempty"`
}

// SavedViewRequest 保存/更新视图请求
type SavedViewRequest struct {
	ID        string         `json:"id"`
	Name      string         `json:"name" binding:"required"`
	Route     string         `json:"route" binding:"required"`
	Filters   map[string]any `json:"filters"`
	Columns   []string       `json:"columns"`
	SortBy    string         `json:"sortBy"`
	SortOrder string         `json:"sortOrder" binding:"omitempty,oneof=asc desc"`
}

// ToModel 转换为保存的视图
func (r *SavedViewRequest) ToModel() model.SavedView {
	return model.SavedView{
		ID:        r.ID,
		Name:      r.Name,
		Route:     r.Route,
		Filters:   r.Filters,
		Columns:   r.Columns,
		SortBy:    r.SortBy,
		SortOrder: r.SortOrder,
	}
}

// ActiveMenuRequest 激活菜单请求
type ActiveMenuRequest struct {
	Main string `json:"main" binding:"required"`
	Sub  string `json:"sub"`
}
