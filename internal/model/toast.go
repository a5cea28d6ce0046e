package model

// ==================== Toast 类型常量 ====================

// ToastType 通知类型
type ToastType string

const (
	ToastSuccess ToastType = "success"
	ToastInfo    ToastType = "info"
	ToastWarning ToastType = "warning"
	ToastError   ToastType = "error"
)

// Valid 是否为已知通知类型
func (t ToastType) Valid() bool {
	switch t {
	case ToastSuccess, ToastInfo, ToastWarning, ToastError:
		return true
	}
	return false
}

// DefaultToastDuration 默认展示时长（毫秒）
const DefaultToastDuration = 5000

// ==================== Toast 瞬态通知 ====================

// ToastAction 通知上的可点击动作
type ToastAction struct {
	Label  string `json:"label"`
	Action string `json:"action"`
}

// Toast 瞬态通知
// Duration 单位毫秒；为 0 时取默认值，负数表示常驻不自动消失
type Toast struct {
	ID       string        `json:"id"`
	Type     ToastType     `json:"type"`
	Title    string        `json:"title"`
	Message  string        `json:"message,omitempty"`
	Duration int           `json:"duration"`
	Actions  []ToastAction `json:"actions,omitempty"`
}
