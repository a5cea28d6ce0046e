package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"resale_ops_v1_202609/internal/model"
)

// ==================== ToastStore 通知 Store ====================

// ToastStore 进程级瞬态通知队列
// 自动消失通过按 ID 登记的可取消定时器实现；定时器触发时按 ID 删除，
// 期间若通知已被手动移除，回调退化为无操作
type ToastStore struct {
	mu     sync.Mutex
	toasts []model.Toast
	timers map[string]*time.Timer
}

// NewToastStore 创建通知 Store
func NewToastStore() *ToastStore {
	return &ToastStore{timers: make(map[string]*time.Timer)}
}

// ==================== 队列操作 ====================

// Show 入队通知：分配 ID，Duration 为 0 时取默认 5000ms，
// 大于 0 时登记自动移除定时器，负数表示常驻
func (s *ToastStore) Show(t model.Toast) model.Toast {
	s.mu.Lock()
	defer s.mu.Unlock()

	t.ID = "toast-" + uuid.NewString()
	if t.Duration == 0 {
		t.Duration = model.DefaultToastDuration
	}
	s.toasts = append(s.toasts, t)

	if t.Duration > 0 {
		id := t.ID
		s.timers[id] = time.AfterFunc(time.Duration(t.Duration)*time.Millisecond, func() {
			s.Remove(id)
		})
	}
	return t
}

// Remove 按 ID 出队，幂等；同时注销对应定时器
func (s *ToastStore) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if timer, ok := s.timers[id]; ok {
		timer.Stop()
		delete(s.timers, id)
	}
	out := s.toasts[:0]
	for _, t := range s.toasts {
		if t.ID != id {
			out = append(out, t)
		}
	}
	s.toasts = out
}

// Clear 清空队列并注销全部定时器
func (s *ToastStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
	s.toasts = nil
}

// Active 当前队列副本
func (s *ToastStore) Active() []model.Toast {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Toast(nil), s.toasts...)
}

// ==================== 便捷入口 ====================

// Success 成功通知
func (s *ToastStore) Success(title, message string) model.Toast {
	return s.Show(model.Toast{Type: model.ToastSuccess, Title: title, Message: message})
}

// Error 错误通知
func (s *ToastStore) Error(title, message string) model.Toast {
	return s.Show(model.Toast{Type: model.ToastError, Title: title, Message: message})
}

// Warning 警告通知
func (s *ToastStore) Warning(title, message string) model.Toast {
	return s.Show(model.Toast{Type: model.ToastWarning, Title: title, Message: message})
}

// Info 提示通知
func (s *ToastStore) Info(title, message string) model.Toast {
	return s.Show(model.Toast{Type: model.ToastInfo, Title: title, Message: message})
}
