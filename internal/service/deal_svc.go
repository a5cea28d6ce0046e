package service

import (
	"context"
	"fmt"
	"time"

	"resale_ops_v1_202609/internal/model"
	"resale_ops_v1_202609/internal/store"
)

// ==================== DealService 捡漏服务 ====================

// DealService 捡漏服务
// 批准动作跨 Store 写入采购命名空间，结果同时携带两步的产物
type DealService struct {
	deals  *store.DealStore
	buying *store.BuyingStore
	toasts *store.ToastStore
	delay  time.Duration
}

// NewDealService 创建捡漏服务
func NewDealService(deals *store.DealStore, buying *store.BuyingStore, toasts *store.ToastStore, delay time.Duration) *DealService {
	return &DealService{deals: deals, buying: buying, toasts: toasts, delay: delay}
}

// FetchDeals 拉取捡漏源：延迟后整体替换集合，后提交者获胜
func (s *DealService) FetchDeals(ctx context.Context) ([]model.Deal, error) {
	s.deals.SetLoading(true)
	defer s.deals.SetLoading(false)

	if err := wait(ctx, s.delay); err != nil {
		s.deals.SetError("Failed to fetch deals")
		return nil, err
	}

	deals := MockDeals(25)
	s.deals.SetAll(deals)
	return deals, nil
}

// ==================== 审核编排 ====================

// ApproveResult 批准结果：同时暴露捡漏更新与采购创建两步的产物
type ApproveResult struct {
	Deal     model.Deal     `json:"deal"`
	Purchase model.Purchase `json:"purchase"`
}

// Approve 批准捡漏：状态置为 approved，并在采购命名空间创建一条
// 待下单采购，带上标题/价格/卖家
func (s *DealService) Approve(dealID string) (*ApproveResult, error) {
	deal, ok := s.deals.ByID(dealID)
	if !ok {
		return nil, fmt.Errorf("deal %s not found", dealID)
	}

	s.deals.UpdateStatus(dealID, model.DealStatusApproved)
	deal.Status = model.DealStatusApproved

	purchase := s.buying.AddPurchase(model.Purchase{
		DealID: dealID,
		Title:  deal.Title,
		Price:  deal.Price,
		Seller: deal.Seller,
		Status: model.PurchaseStatusPending,
	})

	if s.toasts != nil {
		s.toasts.Success("Deal approved", deal.Title)
	}
	return &ApproveResult{Deal: deal, Purchase: purchase}, nil
}

// Reject 否决捡漏；ID 不存在时返回 false
func (s *DealService) Reject(dealID string) bool {
	return s.deals.UpdateStatus(dealID, model.DealStatusRejected)
}

// MarkPurchase 更新采购状态，可顺带写入运单号
func (s *DealService) MarkPurchase(id string, status model.PurchaseStatus, tracking string) bool {
	return s.buying.UpdatePurchaseStatus(id, status, tracking)
}
