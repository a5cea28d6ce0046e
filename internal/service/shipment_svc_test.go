package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"resale_ops_v1_202609/internal/model"
	"resale_ops_v1_202609/internal/store"
)

func newShipmentSvc(printDelay time.Duration) (*ShipmentService, *store.ShipmentStore) {
	st := store.NewShipmentStore()
	svc := NewShipmentService(st, nil, time.Millisecond, printDelay, printDelay)
	return svc, st
}

// ==================== 标签打印 ====================

func TestShipmentServicePrintLabelImmediateState(t *testing.T) {
	svc, st := newShipmentSvc(time.Hour) // 延迟足够长，不会触发
	defer svc.Close()

	sh := svc.PrintLabel("order-1", "")
	assert.Equal(t, model.ShipmentStatusPrinting, sh.Status)
	assert.Equal(t, "Royal Mail", sh.Carrier)
	assert.Equal(t, "Default Printer", sh.Printer) // 未指定时取当前选择
	assert.Empty(t, sh.Tracking)

	got, ok := st.ByID(sh.ID)
	assert.True(t, ok)
	assert.Equal(t, model.ShipmentStatusPrinting, got.Status)
}

func TestShipmentServicePrintLabelCompletes(t *testing.T) {
	svc, st := newShipmentSvc(10 * time.Millisecond)
	defer svc.Close()

	sh := svc.PrintLabel("order-1", "Label Printer")
	time.Sleep(100 * time.Millisecond)

	got, ok := st.ByID(sh.ID)
	assert.True(t, ok)
	assert.Equal(t, model.ShipmentStatusPrinted, got.Status)
	assert.Equal(t, "/api/placeholder/400/600", got.LabelURL)
	assert.True(t, strings.HasPrefix(got.Tracking, "RM"))
	assert.Len(t, got.Tracking, 11)
	assert.Equal(t, "Label Printer", got.Printer)
}

// 延迟期间记录被删除时，回调退化为无操作
func TestShipmentServiceDeletedDuringPrintIsNoop(t *testing.T) {
	svc, st := newShipmentSvc(20 * time.Millisecond)
	defer svc.Close()

	sh := svc.PrintLabel("order-1", "")
	st.Remove(sh.ID)

	time.Sleep(100 * time.Millisecond)
	assert.Empty(t, st.All())
}

// ==================== 重打 ====================

func TestShipmentServiceRetryPrint(t *testing.T) {
	svc, st := newShipmentSvc(10 * time.Millisecond)
	defer svc.Close()

	failed := st.Add(model.Shipment{OrderID: "order-9", Carrier: "DPD", Status: model.ShipmentStatusFailed})

	sh, ok := svc.RetryPrint(failed.ID)
	assert.True(t, ok)
	assert.Equal(t, model.ShipmentStatusPrinting, sh.Status)

	time.Sleep(100 * time.Millisecond)
	got, _ := st.ByID(failed.ID)
	assert.Equal(t, model.ShipmentStatusPrinted, got.Status)
	assert.NotEmpty(t, got.Tracking)
}

func TestShipmentServiceRetryPrintUnknownID(t *testing.T) {
	svc, _ := newShipmentSvc(time.Millisecond)
	defer svc.Close()

	_, ok := svc.RetryPrint("no-such-shipment")
	assert.False(t, ok)
}

// Close 之后不再有延迟迁移
func TestShipmentServiceCloseCancelsPending(t *testing.T) {
	svc, st := newShipmentSvc(20 * time.Millisecond)

	sh := svc.PrintLabel("order-1", "")
	svc.Close()

	time.Sleep(100 * time.Millisecond)
	got, _ := st.ByID(sh.ID)
	assert.Equal(t, model.ShipmentStatusPrinting, got.Status)
}
