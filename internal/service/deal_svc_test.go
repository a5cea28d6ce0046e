package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"resale_ops_v1_202609/internal/model"
	"resale_ops_v1_202609/internal/store"
)

// ==================== 审核编排 ====================

func TestDealServiceApproveCreatesPurchase(t *testing.T) {
	st := store.New()
	defer st.Close()
	svc := NewDealService(st.Deals, st.Buying, st.Toasts, time.Millisecond)

	result, err := svc.Approve("3")
	assert.NoError(t, err)

	// 捡漏侧：状态置为 approved
	assert.Equal(t, model.DealStatusApproved, result.Deal.Status)
	deal, _ := st.Deals.ByID("3")
	assert.Equal(t, model.DealStatusApproved, deal.Status)

	// 采购侧：带上标题/价格/卖家的待下单采购
	purchases := st.Buying.Purchases()
	assert.Len(t, purchases, 1)
	assert.Equal(t, "3", purchases[0].DealID)
	assert.Equal(t, "Vintage Band T-Shirt", purchases[0].Title)
	assert.Equal(t, 12.0, purchases[0].Price)
	assert.Equal(t, "vintage_collector", purchases[0].Seller)
	assert.Equal(t, model.PurchaseStatusPending, purchases[0].Status)
	assert.Equal(t, purchases[0], result.Purchase)
}

func TestDealServiceApproveUnknownDeal(t *testing.T) {
	st := store.New()
	defer st.Close()
	svc := NewDealService(st.Deals, st.Buying, st.Toasts, time.Millisecond)

	_, err := svc.Approve("no-such-deal")
	assert.Error(t, err)
	assert.Empty(t, st.Buying.Purchases())
}

func TestDealServiceReject(t *testing.T) {
	st := store.New()
	defer st.Close()
	svc := NewDealService(st.Deals, st.Buying, st.Toasts, time.Millisecond)

	assert.True(t, svc.Reject("2"))
	deal, _ := st.Deals.ByID("2")
	assert.Equal(t, model.DealStatusRejected, deal.Status)

	// 否决不产生采购
	assert.Empty(t, st.Buying.Purchases())
	assert.False(t, svc.Reject("no-such-deal"))
}

func TestDealServiceMarkPurchase(t *testing.T) {
	st := store.New()
	defer st.Close()
	svc := NewDealService(st.Deals, st.Buying, st.Toasts, time.Millisecond)

	result, err := svc.Approve("1")
	assert.NoError(t, err)

	ok := svc.MarkPurchase(result.Purchase.ID, model.PurchaseStatusShipped, "RM123456789")
	assert.True(t, ok)

	purchases := st.Buying.Purchases()
	assert.Equal(t, model.PurchaseStatusShipped, purchases[0].Status)
	assert.Equal(t, "RM123456789", purchases[0].TrackingNumber)
}

// ==================== 拉取 ====================

func TestDealServiceFetchReplacesCollection(t *testing.T) {
	st := store.New()
	defer st.Close()
	svc := NewDealService(st.Deals, st.Buying, st.Toasts, time.Millisecond)

	deals, err := svc.FetchDeals(context.Background())
	assert.NoError(t, err)
	assert.Len(t, deals, 25)
	assert.Len(t, st.Deals.All(), 25)
	assert.False(t, st.Deals.Loading())
}

func TestDealServiceFetchCancelledSetsError(t *testing.T) {
	st := store.New()
	defer st.Close()
	svc := NewDealService(st.Deals, st.Buying, st.Toasts, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.FetchDeals(ctx)
	assert.Error(t, err)
	assert.Equal(t, "Failed to fetch deals", st.Deals.Error())
	// 失败时保留原集合（预置 3 条）
	assert.Len(t, st.Deals.All(), 3)
}
