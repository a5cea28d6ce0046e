package model

import "time"

// ==================== 采购状态常量 ====================

// PurchaseStatus 采购单状态
type PurchaseStatus string

const (
	PurchaseStatusPending   PurchaseStatus = "pending_purchase" // 待下单
	PurchaseStatusPurchased PurchaseStatus = "purchased"        // 已下单
	PurchaseStatusShipped   PurchaseStatus = "shipped"          // 卖家已发出
	PurchaseStatusReceived  PurchaseStatus = "received"         // 已收货
)

// Valid 是否为已知采购状态
func (s PurchaseStatus) Valid() bool {
	switch s {
	case PurchaseStatusPending, PurchaseStatusPurchased, PurchaseStatusShipped, PurchaseStatusReceived:
		return true
	}
	return false
}

// QueryStatus 监控搜索状态
type QueryStatus string

const (
	QueryStatusActive QueryStatus = "active" // 监控中
	QueryStatusPaused QueryStatus = "paused" // 已暂停
)

// ==================== Purchase 采购单 ====================

// Purchase 由批准捡漏产生的采购单
type Purchase struct {
	ID               string         `json:"id"`
	DealID           string         `json:"dealId"`
	Title            string         `json:"title"`
	Price            float64        `json:"price"`
	Seller           string         `json:"seller"`
	Status           PurchaseStatus `json:"status"`
	PurchasedAt      time.Time      `json:"purchasedAt"`
	ExpectedDelivery string         `json:"expectedDelivery,omitempty"`
	TrackingNumber   string         `json:"trackingNumber,omitempty"`
}

// ==================== SearchQuery 监控搜索 ====================

// SearchQuery 捡漏监控搜索条件
type SearchQuery struct {
	ID           string      `json:"id"`
	Query        string      `json:"query"`
	Category     string      `json:"category,omitempty"`
	MaxPrice     float64     `json:"maxPrice,omitempty"`
	Status       QueryStatus `json:"status"`
	LastChecked  time.Time   `json:"lastChecked"`
	ResultsFound int         `json:"resultsFound"`
}

// SearchQueryPatch 监控搜索部分更新
type SearchQueryPatch struct {
	Query        *string
	Category     *string
	MaxPrice     *float64
	Status       *QueryStatus
	LastChecked  *time.Time
	ResultsFound *int
}

// Apply 将补丁合并到监控搜索
func (p SearchQueryPatch) Apply(q *SearchQuery) {
	if p.Query != nil {
		q.Query = *p.Query
	}
	if p.Category != nil {
		q.Category = *p.Category
	}
	if p.MaxPrice != nil {
		q.MaxPrice = *p.MaxPrice
	}
	if p.Status != nil {
		q.Status = *p.Status
	}
	if p.LastChecked != nil {
		q.LastChecked = *p.LastChecked
	}
	if p.ResultsFound != nil {
		q.ResultsFound = *p.ResultsFound
	}
}
