package task

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"resale_ops_v1_202609/internal/model"
	"resale_ops_v1_202609/internal/store"
)

// ==================== LabelSweepTask 标签巡检任务 ====================

// LabelSweepTask 标签巡检任务
// 打印中状态超过 maxAge 仍未完成的标签视为打印失败，置为 failed
// 并投放一条错误通知
type LabelSweepTask struct {
	shipments *store.ShipmentStore
	toasts    *store.ToastStore
	Cron      *cron.Cron

	// 打印中状态允许停留的最长时间
	maxAge time.Duration
}

func NewLabelSweepTask(shipments *store.ShipmentStore, toasts *store.ToastStore, maxAge time.Duration) *LabelSweepTask {
	if maxAge <= 0 {
		maxAge = time.Minute
	}
	return &LabelSweepTask{
		shipments: shipments,
		toasts:    toasts,
		Cron:      cron.New(cron.WithSeconds()),
		maxAge:    maxAge,
	}
}

// Start 启动巡检任务
func (t *LabelSweepTask) Start() {
	// 策略：每 30 秒巡检一次
	// Cron: "0/30 * * * * *"
	_, err := t.Cron.AddFunc("0/30 * * * * *", func() {
		t.Execute()
	})
	if err != nil {
		log.Fatalf("无法启动 LabelSweepTask: %v", err)
	}

	t.Cron.Start()
	log.Println("[LabelSweepTask] 标签巡检任务已启动 (每30秒一次)")
}

// Stop 停止巡检任务
func (t *LabelSweepTask) Stop() {
	t.Cron.Stop()
	log.Println("[LabelSweepTask] 标签巡检任务已停止")
}

// Execute 执行一轮巡检 (由 Cron 定时触发)
func (t *LabelSweepTask) Execute() {
	cutoff := time.Now().Add(-t.maxAge)
	for _, sh := range t.shipments.ByStatus(model.ShipmentStatusPrinting) {
		if sh.UpdatedAt.After(cutoff) {
			continue
		}

		status := model.ShipmentStatusFailed
		if _, ok := t.shipments.Update(sh.ID, model.ShipmentPatch{Status: &status}); !ok {
			continue
		}

		log.Printf("[LabelSweepTask] 标签打印超时，已置为失败: %s (order %s)", sh.ID, sh.OrderID)
		if t.toasts != nil {
			t.toasts.Error("Label print failed", "Order "+sh.OrderID)
		}
	}
}
