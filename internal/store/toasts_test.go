package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"resale_ops_v1_202609/internal/model"
)

// ==================== 入队 ====================

func TestToastStoreShowAssignsIDAndDefaultDuration(t *testing.T) {
	s := NewToastStore()
	defer s.Clear()

	shown := s.Show(model.Toast{Type: model.ToastInfo, Title: "hello"})
	assert.NotEmpty(t, shown.ID)
	assert.Equal(t, model.DefaultToastDuration, shown.Duration)
	assert.Len(t, s.Active(), 1)
}

func TestToastStoreAutoExpires(t *testing.T) {
	s := NewToastStore()
	defer s.Clear()

	s.Show(model.Toast{Type: model.ToastInfo, Title: "short", Duration: 20})

	assert.Len(t, s.Active(), 1)
	time.Sleep(100 * time.Millisecond)
	assert.Empty(t, s.Active())
}

func TestToastStoreNegativeDurationPersists(t *testing.T) {
	s := NewToastStore()
	defer s.Clear()

	s.Show(model.Toast{Type: model.ToastError, Title: "sticky", Duration: -1})

	time.Sleep(50 * time.Millisecond)
	assert.Len(t, s.Active(), 1)
}

// ==================== 出队 ====================

func TestToastStoreRemoveBeforeExpiryCancelsTimer(t *testing.T) {
	s := NewToastStore()
	defer s.Clear()

	shown := s.Show(model.Toast{Type: model.ToastInfo, Title: "bye", Duration: 30})
	s.Remove(shown.ID)
	assert.Empty(t, s.Active())

	// 定时器已注销，到点后无事发生
	time.Sleep(60 * time.Millisecond)
	assert.Empty(t, s.Active())
}

func TestToastStoreRemoveIsIdempotent(t *testing.T) {
	s := NewToastStore()
	defer s.Clear()

	shown := s.Show(model.Toast{Type: model.ToastInfo, Title: "once", Duration: -1})
	s.Remove(shown.ID)
	s.Remove(shown.ID)
	assert.Empty(t, s.Active())
}

func TestToastStoreClear(t *testing.T) {
	s := NewToastStore()

	s.Success("a", "")
	s.Error("b", "")
	s.Warning("c", "")
	assert.Len(t, s.Active(), 3)

	s.Clear()
	assert.Empty(t, s.Active())
}

// ==================== 便捷入口 ====================

func TestToastStoreConvenienceTypes(t *testing.T) {
	s := NewToastStore()
	defer s.Clear()

	assert.Equal(t, model.ToastSuccess, s.Success("t", "m").Type)
	assert.Equal(t, model.ToastError, s.Error("t", "m").Type)
	assert.Equal(t, model.ToastWarning, s.Warning("t", "m").Type)
	assert.Equal(t, model.ToastInfo, s.Info("t", "m").Type)
}
