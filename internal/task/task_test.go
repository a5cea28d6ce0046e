package task

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"resale_ops_v1_202609/internal/model"
	"resale_ops_v1_202609/internal/store"
)

// ==================== 捡漏源扫描 ====================

func TestFeedScanTaskAgesDealsAndTouchesQueries(t *testing.T) {
	st := store.New()
	defer st.Close()

	task := NewFeedScanTask(st.Deals, st.Buying)
	task.newDealChance = 0 // 本轮不投放新捡漏，保持断言确定

	before, _ := st.Deals.ByID("1")
	beforeQueries := st.Buying.ActiveQueries()

	task.Execute()

	after, _ := st.Deals.ByID("1")
	assert.Equal(t, before.AgeMinutes+1, after.AgeMinutes)

	for i, q := range st.Buying.ActiveQueries() {
		assert.True(t, q.LastChecked.After(beforeQueries[i].LastChecked))
		assert.Equal(t, beforeQueries[i].ResultsFound, q.ResultsFound)
	}
}

func TestFeedScanTaskAppendsNewDeal(t *testing.T) {
	st := store.New()
	defer st.Close()

	task := NewFeedScanTask(st.Deals, st.Buying)
	task.newDealChance = 1 // 必定投放

	task.Execute()

	deals := st.Deals.All()
	assert.Len(t, deals, 4)
	// 新捡漏在推进之后投放，从 0 分钟起算
	newest := deals[len(deals)-1]
	assert.Equal(t, 0, newest.AgeMinutes)
	assert.Equal(t, model.DealStatusPendingReview, newest.Status)

	// 监控中的搜索累计了结果数
	for _, q := range st.Buying.ActiveQueries() {
		assert.Greater(t, q.ResultsFound, 0)
	}
}

func TestFeedScanTaskSkipsWhenNoActiveQueries(t *testing.T) {
	st := store.New()
	defer st.Close()

	// 全部暂停
	paused := model.QueryStatusPaused
	for _, q := range st.Buying.Queries() {
		st.Buying.UpdateQuery(q.ID, model.SearchQueryPatch{Status: &paused})
	}

	task := NewFeedScanTask(st.Deals, st.Buying)
	task.newDealChance = 1

	task.Execute()
	// 没有监控中的搜索时不投放新捡漏
	assert.Len(t, st.Deals.All(), 3)
}

// ==================== 标签巡检 ====================

func TestLabelSweepTaskMarksStalePrintingFailed(t *testing.T) {
	st := store.New()
	defer st.Close()

	stale := st.Shipments.Add(model.Shipment{OrderID: "order-1", Status: model.ShipmentStatusPrinting})
	fresh := st.Shipments.Add(model.Shipment{OrderID: "order-2", Status: model.ShipmentStatusPrinting})

	task := NewLabelSweepTask(st.Shipments, st.Toasts, 10*time.Millisecond)

	// 让第一条变"陈旧"，第二条通过 Update 刷新时间戳保持新鲜
	time.Sleep(30 * time.Millisecond)
	printer := "Label Printer"
	st.Shipments.Update(fresh.ID, model.ShipmentPatch{Printer: &printer})

	task.Execute()

	got, _ := st.Shipments.ByID(stale.ID)
	assert.Equal(t, model.ShipmentStatusFailed, got.Status)

	got, _ = st.Shipments.ByID(fresh.ID)
	assert.Equal(t, model.ShipmentStatusPrinting, got.Status)

	// 失败投放了错误通知
	toasts := st.Toasts.Active()
	assert.Len(t, toasts, 1)
	assert.Equal(t, model.ToastError, toasts[0].Type)
}

func TestLabelSweepTaskIgnoresOtherStatuses(t *testing.T) {
	st := store.New()
	defer st.Close()

	st.Shipments.Add(model.Shipment{OrderID: "order-1", Status: model.ShipmentStatusPrinted})
	st.Shipments.Add(model.Shipment{OrderID: "order-2", Status: model.ShipmentStatusPending})

	task := NewLabelSweepTask(st.Shipments, st.Toasts, time.Nanosecond)
	time.Sleep(time.Millisecond)
	task.Execute()

	assert.Empty(t, st.Shipments.ByStatus(model.ShipmentStatusFailed))
	assert.Empty(t, st.Toasts.Active())
}

// ==================== 任务管理器 ====================

func TestTaskManagerTriggers(t *testing.T) {
	st := store.New()
	defer st.Close()

	tm := NewTaskManager(&TaskManagerDeps{
		Deals:     st.Deals,
		Buying:    st.Buying,
		Shipments: st.Shipments,
		Toasts:    st.Toasts,
	}, nil)

	assert.NoError(t, tm.TriggerFeedScan())
	assert.NoError(t, tm.TriggerLabelSweep())
	assert.Equal(t, map[string]bool{"feed_scan": true, "label_sweep": true}, tm.Status())
}

func TestTaskManagerDisabledTasks(t *testing.T) {
	tm := NewTaskManager(&TaskManagerDeps{}, &TaskManagerConfig{})

	assert.ErrorIs(t, tm.TriggerFeedScan(), ErrTaskDisabled)
	assert.ErrorIs(t, tm.TriggerLabelSweep(), ErrTaskDisabled)
}
