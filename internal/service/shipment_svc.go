package service

import (
	"context"
	"sync"
	"time"

	"resale_ops_v1_202609/internal/model"
	"resale_ops_v1_202609/internal/store"
)

// ==================== ShipmentService 发货服务 ====================

// ShipmentService 发货服务
// 打印是模拟的：先落一条 printing 记录，延迟后由定时回调将其置为
// printed 并补上运单号。回调按 ID 走 Store 的 Update 复核存在性，
// 记录在延迟期间被删除时回调退化为无操作；定时器按 ID 登记，可取消
type ShipmentService struct {
	store      *store.ShipmentStore
	toasts     *store.ToastStore
	delay      time.Duration // 拉取延迟
	printDelay time.Duration // 打印模拟耗时
	retryDelay time.Duration // 重打模拟耗时

	mu     sync.Mutex
	timers map[string]*time.Timer
}

// NewShipmentService 创建发货服务
func NewShipmentService(st *store.ShipmentStore, toasts *store.ToastStore, delay, printDelay, retryDelay time.Duration) *ShipmentService {
	return &ShipmentService{
		store:      st,
		toasts:     toasts,
		delay:      delay,
		printDelay: printDelay,
		retryDelay: retryDelay,
		timers:     make(map[string]*time.Timer),
	}
}

// FetchShipments 拉取发货记录：延迟后整体替换集合，后提交者获胜
func (s *ShipmentService) FetchShipments(ctx context.Context) ([]model.Shipment, error) {
	s.store.SetLoading(true)
	defer s.store.SetLoading(false)

	if err := wait(ctx, s.delay); err != nil {
		s.store.SetError("Failed to fetch shipments")
		return nil, err
	}

	shipments := MockShipments(15)
	s.store.SetAll(shipments)
	return shipments, nil
}

// ==================== 标签打印 ====================

// PrintLabel 为订单打印标签：立即落一条 printing 记录并返回，
// printDelay 后转为 printed 并补上运单号与标签地址
func (s *ShipmentService) PrintLabel(orderID, printer string) model.Shipment {
	if printer == "" {
		printer = s.store.SelectedPrinter()
	}

	shipment := s.store.Add(model.Shipment{
		OrderID: orderID,
		Carrier: "Royal Mail",
		Printer: printer,
		Status:  model.ShipmentStatusPrinting,
	})

	s.scheduleTransition(shipment.ID, s.printDelay)
	return shipment
}

// RetryPrint 重打失败/卡住的标签；ID 不存在时返回 false
func (s *ShipmentService) RetryPrint(id string) (model.Shipment, bool) {
	status := model.ShipmentStatusPrinting
	shipment, ok := s.store.Update(id, model.ShipmentPatch{Status: &status})
	if !ok {
		return model.Shipment{}, false
	}

	s.scheduleTransition(id, s.retryDelay)
	return shipment, true
}

// scheduleTransition 登记按 ID 的延迟状态迁移，重复登记会先取消旧定时器
func (s *ShipmentService) scheduleTransition(id string, d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if old, ok := s.timers[id]; ok {
		old.Stop()
	}
	s.timers[id] = time.AfterFunc(d, func() {
		s.completePrint(id)
	})
}

// completePrint 延迟回调：标签打印完成
func (s *ShipmentService) completePrint(id string) {
	s.mu.Lock()
	delete(s.timers, id)
	s.mu.Unlock()

	status := model.ShipmentStatusPrinted
	labelURL := "/api/placeholder/400/600"
	tracking := randomTracking()
	shipment, ok := s.store.Update(id, model.ShipmentPatch{
		Status:   &status,
		LabelURL: &labelURL,
		Tracking: &tracking,
	})
	if !ok {
		// 延迟期间记录已被删除
		return
	}

	if s.toasts != nil {
		s.toasts.Success("Label printed", shipment.Tracking)
	}
}

// Close 取消全部待触发的状态迁移
func (s *ShipmentService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
}
