package model

// ==================== SavedView 保存的视图 ====================

// SavedView 保存的列表视图（路由 + 筛选快照 + 可选列与排序）
type SavedView struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Route     string         `json:"route"`
	Filters   map[string]any `json:"filters"`
	Columns   []string       `json:"columns,omitempty"`
	SortBy    string         `json:"sortBy,omitempty"`
	SortOrder string         `json:"sortOrder,omitempty"` // asc / desc
}

// ==================== Settings UI 偏好 ====================

// Settings UI 偏好设置
// DarkMode 与 SidebarCollapsed 持久化到本地偏好库，其余仅驻内存
type Settings struct {
	DarkMode         bool        `json:"darkMode"`
	SidebarCollapsed bool        `json:"sidebarCollapsed"`
	DefaultPrinter   string      `json:"defaultPrinter,omitempty"`
	DefaultCarrier   string      `json:"defaultCarrier,omitempty"`
	LabelSize        string      `json:"labelSize,omitempty"`
	AutoPrint        bool        `json:"autoPrint"`
	SavedViews       []SavedView `json:"savedViews"`
}
