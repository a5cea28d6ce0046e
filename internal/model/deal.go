package model

// ==================== 捡漏评分与状态常量 ====================

// Score 捡漏评分（A 最优）
type Score string

const (
	ScoreA Score = "A"
	ScoreB Score = "B"
	ScoreC Score = "C"
	ScoreD Score = "D"
)

// Weight 评分权重，用于排序（A=4 ... D=1）
func (s Score) Weight() int {
	switch s {
	case ScoreA:
		return 4
	case ScoreB:
		return 3
	case ScoreC:
		return 2
	case ScoreD:
		return 1
	}
	return 0
}

// DealStatus 捡漏审核状态
type DealStatus string

const (
	DealStatusPendingReview DealStatus = "pending_review" // 待审核
	DealStatusApproved      DealStatus = "approved"       // 已批准（进入采购）
	DealStatusRejected      DealStatus = "rejected"       // 已否决
)

// Valid 是否为已知审核状态
func (s DealStatus) Valid() bool {
	switch s {
	case DealStatusPendingReview, DealStatusApproved, DealStatusRejected:
		return true
	}
	return false
}

// ==================== Deal 外部捡漏机会 ====================

// Deal 外部平台发现的捡漏机会（尚未持有）
type Deal struct {
	ID           string     `json:"id"`
	Source       Source     `json:"source"`
	Title        string     `json:"title"`
	Price        float64    `json:"price"`
	URL          string     `json:"url"`
	SellerRating float64    `json:"sellerRating"`
	EstResale    float64    `json:"estResale"`
	Score        Score      `json:"score"`
	AgeMinutes   int        `json:"ageMinutes"`
	Photos       []string   `json:"photos"`
	Description  string     `json:"description,omitempty"`
	Seller       string     `json:"seller,omitempty"`
	Location     string     `json:"location,omitempty"`
	Status       DealStatus `json:"status"`
}

// MarginPct 利润率百分比
// 始终从 Price/EstResale 推导，不单独存储，保证单一数据来源
func (d *Deal) MarginPct() float64 {
	if d.Price <= 0 {
		return 0
	}
	return (d.EstResale - d.Price) / d.Price * 100
}

// EstimatedProfit 预估利润
func (d *Deal) EstimatedProfit() float64 {
	return d.EstResale - d.Price
}
