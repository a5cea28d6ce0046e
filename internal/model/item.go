package model

import "time"

// ==================== 库存枚举常量 ====================

// Condition 成色
type Condition string

const (
	ConditionNew      Condition = "new"       // 全新
	ConditionLikeNew  Condition = "like_new"  // 几乎全新
	ConditionGood     Condition = "good"      // 良好
	ConditionFair     Condition = "fair"      // 一般
	ConditionForParts Condition = "for_parts" // 配件机
)

// Valid 是否为已知成色
func (c Condition) Valid() bool {
	switch c {
	case ConditionNew, ConditionLikeNew, ConditionGood, ConditionFair, ConditionForParts:
		return true
	}
	return false
}

// Source 进货渠道
type Source string

const (
	SourceVinted   Source = "vinted"
	SourceFacebook Source = "facebook"
	SourceGumtree  Source = "gumtree"
	SourceCarboot  Source = "carboot"
	SourceCharity  Source = "charity"
	SourceOther    Source = "other"
)

// Valid 是否为已知进货渠道
func (s Source) Valid() bool {
	switch s {
	case SourceVinted, SourceFacebook, SourceGumtree, SourceCarboot, SourceCharity, SourceOther:
		return true
	}
	return false
}

// Channel 销售渠道
type Channel string

const (
	ChannelVinted Channel = "vinted"
	ChannelEbay   Channel = "ebay"
)

// Valid 是否为已知销售渠道
func (c Channel) Valid() bool {
	return c == ChannelVinted || c == ChannelEbay
}

// ItemStatus 库存状态
// 注意：状态之间没有强制流转图，任意状态可直接设置（与前台交互约定一致）
type ItemStatus string

const (
	ItemStatusInStock   ItemStatus = "in_stock"  // 在库
	ItemStatusListed    ItemStatus = "listed"    // 已上架
	ItemStatusAllocated ItemStatus = "allocated" // 已锁定（待发货）
	ItemStatusSold      ItemStatus = "sold"      // 已售出
	ItemStatusArchived  ItemStatus = "archived"  // 已归档
)

// Valid 是否为已知库存状态
func (s ItemStatus) Valid() bool {
	switch s {
	case ItemStatusInStock, ItemStatusListed, ItemStatusAllocated, ItemStatusSold, ItemStatusArchived:
		return true
	}
	return false
}

// ==================== Item 库存条目 ====================

// Item 库存条目
type Item struct {
	ID        string     `json:"id"`
	SKU       string     `json:"sku"`
	Title     string     `json:"title"`
	Brand     string     `json:"brand,omitempty"`
	Model     string     `json:"model,omitempty"`
	StorageGB int        `json:"storageGb,omitempty"`
	Condition Condition  `json:"condition"`
	Source    Source     `json:"source"`
	BuyPrice  float64    `json:"buyPrice"`
	AskPrice  float64    `json:"askPrice,omitempty"`
	EstResale float64    `json:"estResale,omitempty"`
	Channels  []Channel  `json:"channels"`
	Location  string     `json:"location,omitempty"`
	Status    ItemStatus `json:"status"`
	Serial    string     `json:"serial,omitempty"`
	Photos    []string   `json:"photos"`
	CreatedAt time.Time  `json:"createdAt"`
	ListedAt  *time.Time `json:"listedAt,omitempty"`
	Notes     string     `json:"notes,omitempty"`
}

// PotentialProfit 预期利润（预估转售价 - 进价）
func (i *Item) PotentialProfit() float64 {
	if i.EstResale <= 0 {
		return 0
	}
	return i.EstResale - i.BuyPrice
}

// ==================== ItemPatch 部分更新 ====================

// ItemPatch 库存条目部分更新
// 指针字段为 nil 表示不更新该字段
type ItemPatch struct {
	SKU       *string
	Title     *string
	Brand     *string
	Model     *string
	StorageGB *int
	Condition *Condition
	Source    *Source
	BuyPrice  *float64
	AskPrice  *float64
	EstResale *float64
	Channels  []Channel
	Location  *string
	Status    *ItemStatus
	Serial    *string
	Photos    []string
	ListedAt  *time.Time
	Notes     *string
}

// Apply 将补丁合并到条目（浅合并）
func (p ItemPatch) Apply(item *Item) {
	if p.SKU != nil {
		item.SKU = *p.SKU
	}
	if p.Title != nil {
		item.Title = *p.Title
	}
	if p.Brand != nil {
		item.Brand = *p.Brand
	}
	if p.Model != nil {
		item.Model = *p.Model
	}
	if p.StorageGB != nil {
		item.StorageGB = *p.StorageGB
	}
	if p.Condition != nil {
		item.Condition = *p.Condition
	}
	if p.Source != nil {
		item.Source = *p.Source
	}
	if p.BuyPrice != nil {
		item.BuyPrice = *p.BuyPrice
	}
	if p.AskPrice != nil {
		item.AskPrice = *p.AskPrice
	}
	if p.EstResale != nil {
		item.EstResale = *p.EstResale
	}
	if p.Channels != nil {
		item.Channels = p.Channels
	}
	if p.Location != nil {
		item.Location = *p.Location
	}
	if p.Status != nil {
		item.Status = *p.Status
	}
	if p.Serial != nil {
		item.Serial = *p.Serial
	}
	if p.Photos != nil {
		item.Photos = p.Photos
	}
	if p.ListedAt != nil {
		item.ListedAt = p.ListedAt
	}
	if p.Notes != nil {
		item.Notes = *p.Notes
	}
}
