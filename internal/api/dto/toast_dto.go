package dto

import "resale_ops_v1_202609/internal/model"

// ==================== 请求 DTO ====================

// ShowToastRequest 入队通知请求
// Duration 单位毫秒，0 取默认 5000，负数表示常驻
type ShowToastRequest struct {
	Type     string              `json:"type" binding:"required,oneof=success info warning error"`
	Title    string              `json:"title" binding:"required"`
	Message  string              `json:"message"`
	Duration int                 `json:"duration"`
	Actions  []model.ToastAction `json:"actions"`
}

// ToModel 转换为通知
func (r *ShowToastRequest) ToModel() model.Toast {
	return model.Toast{
		Type:     model.ToastType(r.Type),
		Title:    r.Title,
		Message:  r.Message,
		Duration: r.Duration,
		Actions:  r.Actions,
	}
}
