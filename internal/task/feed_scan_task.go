package task

import (
	"log"
	"math/rand"

	"github.com/robfig/cron/v3"

	"resale_ops_v1_202609/internal/service"
	"resale_ops_v1_202609/internal/store"
)

// ==================== FeedScanTask 捡漏源扫描任务 ====================

// FeedScanTask 捡漏源扫描任务
// 模拟外部平台的持续发现：推进全部捡漏的发现时长、刷新监控搜索的
// 检查时间，并按概率投放一条新捡漏
type FeedScanTask struct {
	deals  *store.DealStore
	buying *store.BuyingStore
	Cron   *cron.Cron

	// 每轮投放新捡漏的概率（0-1）
	newDealChance float64
}

func NewFeedScanTask(deals *store.DealStore, buying *store.BuyingStore) *FeedScanTask {
	return &FeedScanTask{
		deals:         deals,
		buying:        buying,
		Cron:          cron.New(cron.WithSeconds()), // 支持秒级控制
		newDealChance: 0.3,
	}
}

// Start 启动扫描任务
func (t *FeedScanTask) Start() {
	// 策略：每分钟扫描一次
	// Cron: "0 * * * * *"
	_, err := t.Cron.AddFunc("0 * * * * *", func() {
		t.Execute()
	})
	if err != nil {
		log.Fatalf("无法启动 FeedScanTask: %v", err)
	}

	t.Cron.Start()
	log.Println("[FeedScanTask] 捡漏源扫描任务已启动 (每分钟一次)")
}

// Stop 停止扫描任务
func (t *FeedScanTask) Stop() {
	t.Cron.Stop()
	log.Println("[FeedScanTask] 捡漏源扫描任务已停止")
}

// Execute 执行一轮扫描 (由 Cron 定时触发)
func (t *FeedScanTask) Execute() {
	t.deals.AgeAll(1)

	active := t.buying.ActiveQueries()
	if len(active) > 0 {
		found := 0
		if rand.Float64() < t.newDealChance {
			deal := service.NewFeedDeal()
			t.deals.Append(deal)
			found = 1
			log.Printf("[FeedScanTask] 发现新捡漏: %s (%s)", deal.Title, deal.ID)
		}
		t.buying.TouchActiveQueries(found)
	}
}
