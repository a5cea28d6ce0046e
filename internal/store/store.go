// Package store 持有整个应用的内存状态树。
//
// 每个命名空间（items / deals / buying / orders / shipments / listings /
// toasts / settings / menus）独立持有一份集合与瞬态 UI 状态（搜索词、
// 筛选条件、加载标记、最近错误）。集合只能通过各 Store 的方法修改，
// 读取侧拿到的都是副本，保证单写入者纪律。
//
// 没有跨 Store 的并发协调：两次并发的整体替换不做串行化，后提交者获胜。
package store

import (
	"fmt"
	"sync/atomic"
	"time"
)

// ==================== 根状态树 ====================

// Store 根状态树，聚合全部命名空间
// 进程启动时构造一次，按引用传递给消费方，不使用隐式单例
type Store struct {
	Items     *ItemStore
	Deals     *DealStore
	Buying    *BuyingStore
	Orders    *OrderStore
	Shipments *ShipmentStore
	Listings  *ListingStore
	Toasts    *ToastStore
	Settings  *SettingsStore
	Menus     *MenuStore
}

// New 构造根状态树
func New() *Store {
	return &Store{
		Items:     NewItemStore(),
		Deals:     NewDealStore(),
		Buying:    NewBuyingStore(),
		Orders:    NewOrderStore(),
		Shipments: NewShipmentStore(),
		Listings:  NewListingStore(),
		Toasts:    NewToastStore(),
		Settings:  NewSettingsStore(),
		Menus:     NewMenuStore(),
	}
}

// Close 释放后台资源（目前只有 toast 定时器）
func (s *Store) Close() {
	s.Toasts.Clear()
}

// ==================== ID 序列 ====================

// idSeq 单调递增 ID 序列
// 以墙钟毫秒作为起点，之后只增不减，保证 ID 在集合生命周期内永不复用
type idSeq struct {
	counter int64
}

func newIDSeq() *idSeq {
	return &idSeq{counter: time.Now().UnixMilli()}
}

// next 生成下一个 ID，如 "item-1757000000123"
func (s *idSeq) next(prefix string) string {
	n := atomic.AddInt64(&s.counter, 1)
	return fmt.Sprintf("%s-%d", prefix, n)
}
