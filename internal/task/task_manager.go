package task

import (
	"log"
	"time"

	"resale_ops_v1_202609/internal/store"
)

// ==================== TaskManager 后台任务管理器 ====================

// TaskManager 统一管理后台任务
// 管理范围：捡漏源扫描、标签巡检
type TaskManager struct {
	feedScanTask   *FeedScanTask
	labelSweepTask *LabelSweepTask
}

// TaskManagerDeps 任务管理器依赖
type TaskManagerDeps struct {
	Deals     *store.DealStore
	Buying    *store.BuyingStore
	Shipments *store.ShipmentStore
	Toasts    *store.ToastStore
}

// TaskManagerConfig 任务管理器配置
type TaskManagerConfig struct {
	// 捡漏源扫描
	FeedScanEnabled bool

	// 标签巡检
	LabelSweepEnabled bool
	LabelSweepMaxAge  time.Duration
}

// DefaultConfig 默认配置
func DefaultConfig() *TaskManagerConfig {
	return &TaskManagerConfig{
		FeedScanEnabled:   true,
		LabelSweepEnabled: true,
		LabelSweepMaxAge:  time.Minute,
	}
}

// NewTaskManager 创建任务管理器
func NewTaskManager(deps *TaskManagerDeps, cfg *TaskManagerConfig) *TaskManager {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	tm := &TaskManager{}

	if cfg.FeedScanEnabled && deps.Deals != nil && deps.Buying != nil {
		tm.feedScanTask = NewFeedScanTask(deps.Deals, deps.Buying)
	}

	if cfg.LabelSweepEnabled && deps.Shipments != nil {
		tm.labelSweepTask = NewLabelSweepTask(deps.Shipments, deps.Toasts, cfg.LabelSweepMaxAge)
	}

	return tm
}

// ==================== 生命周期管理 ====================

// Start 启动所有任务
func (tm *TaskManager) Start() {
	log.Println("[TaskManager] 正在启动后台任务...")

	if tm.feedScanTask != nil {
		tm.feedScanTask.Start()
	}
	if tm.labelSweepTask != nil {
		tm.labelSweepTask.Start()
	}

	log.Println("[TaskManager] 后台任务已全部启动")
}

// Stop 停止所有任务
func (tm *TaskManager) Stop() {
	log.Println("[TaskManager] 正在停止后台任务...")

	if tm.feedScanTask != nil {
		tm.feedScanTask.Stop()
	}
	if tm.labelSweepTask != nil {
		tm.labelSweepTask.Stop()
	}

	log.Println("[TaskManager] 后台任务已全部停止")
}

// ==================== 手动触发接口 ====================

// TriggerFeedScan 触发一轮捡漏源扫描
func (tm *TaskManager) TriggerFeedScan() error {
	if tm.feedScanTask == nil {
		return ErrTaskDisabled
	}
	tm.feedScanTask.Execute()
	return nil
}

// TriggerLabelSweep 触发一轮标签巡检
func (tm *TaskManager) TriggerLabelSweep() error {
	if tm.labelSweepTask == nil {
		return ErrTaskDisabled
	}
	tm.labelSweepTask.Execute()
	return nil
}

// ==================== 状态查询 ====================

// Status 获取任务状态
func (tm *TaskManager) Status() map[string]bool {
	return map[string]bool{
		"feed_scan":   tm.feedScanTask != nil,
		"label_sweep": tm.labelSweepTask != nil,
	}
}

// ==================== 错误定义 ====================

type TaskError string

func (e TaskError) Error() string { return string(e) }

const (
	ErrTaskDisabled TaskError = "task is disabled"
)
