package service

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"resale_ops_v1_202609/internal/model"
)

// 模拟数据生成器。所有"网络"数据均在本地生成，不访问任何外部接口。

// ==================== 库存 ====================

var (
	mockBrands     = []string{"Apple", "Samsung", "OnePlus", "Google", "Sony", "Nintendo", "Microsoft"}
	mockModels     = []string{"iPhone 13", "Galaxy S21", "9 Pro", "Pixel 6", "WH-1000XM4", "Switch", "Surface Pro"}
	mockConditions = []model.Condition{model.ConditionNew, model.ConditionLikeNew, model.ConditionGood, model.ConditionFair}
	mockSources    = []model.Source{model.SourceVinted, model.SourceFacebook, model.SourceGumtree, model.SourceCarboot, model.SourceCharity}
	mockStatuses   = []model.ItemStatus{model.ItemStatusInStock, model.ItemStatusListed, model.ItemStatusAllocated, model.ItemStatusSold}
	mockLocations  = []string{"A1-B2", "A2-C1", "B1-A3", "Storage", "Office"}
)

// MockItems 生成 n 条库存样例
func MockItems(n int) []model.Item {
	items := make([]model.Item, n)
	for i := 0; i < n; i++ {
		brand := mockBrands[rand.Intn(len(mockBrands))]
		mdl := mockModels[rand.Intn(len(mockModels))]
		buyPrice := float64(rand.Intn(500) + 50)
		askPrice := buyPrice + float64(rand.Intn(200)+50)

		item := model.Item{
			ID:        fmt.Sprintf("item-%d", i+1),
			SKU:       fmt.Sprintf("SKU%04d", i+1),
			Title:     brand + " " + mdl,
			Brand:     brand,
			Model:     mdl,
			Condition: mockConditions[rand.Intn(len(mockConditions))],
			Source:    mockSources[rand.Intn(len(mockSources))],
			BuyPrice:  buyPrice,
			AskPrice:  askPrice,
			EstResale: askPrice + float64(rand.Intn(100)),
			Channels:  []model.Channel{model.ChannelVinted},
			Location:  mockLocations[rand.Intn(len(mockLocations))],
			Status:    mockStatuses[rand.Intn(len(mockStatuses))],
			Photos:    []string{"/api/placeholder/300/300"},
			CreatedAt: time.Now().Add(-time.Duration(rand.Intn(30*24)) * time.Hour),
		}
		if rand.Float64() > 0.7 {
			item.Notes = "Good condition, minor scratches"
		}
		items[i] = item
	}
	return items
}

// ==================== 捡漏 ====================

var (
	mockDealTitles = []string{
		"iPhone 13 Pro 128GB", "Samsung Galaxy S21", "OnePlus 9 Pro", "Google Pixel 6",
		"iPad Air 4th Gen", "MacBook Air M1", "Nintendo Switch OLED", "Sony WH-1000XM4",
		"AirPods Pro 2nd Gen", "Apple Watch Series 8",
	}
	mockScores = []model.Score{model.ScoreA, model.ScoreB, model.ScoreC, model.ScoreD}
)

// MockDeals 生成 n 条捡漏样例
func MockDeals(n int) []model.Deal {
	deals := make([]model.Deal, n)
	for i := 0; i < n; i++ {
		deals[i] = randomDeal(fmt.Sprintf("deal-%d", i+1))
	}
	return deals
}

// NewFeedDeal 生成一条新发现的捡漏（后台扫描用）
func NewFeedDeal() model.Deal {
	d := randomDeal(fmt.Sprintf("deal-%d", time.Now().UnixMilli()))
	d.AgeMinutes = 0
	return d
}

func randomDeal(id string) model.Deal {
	price := float64(rand.Intn(400) + 50)
	return model.Deal{
		ID:           id,
		Source:       model.SourceVinted,
		Title:        mockDealTitles[rand.Intn(len(mockDealTitles))],
		Price:        price,
		URL:          fmt.Sprintf("https://vinted.com/items/%s", strings.TrimPrefix(id, "deal-")),
		SellerRating: float64(rand.Intn(5) + 1),
		EstResale:    price + float64(rand.Intn(300)+100),
		Score:        mockScores[rand.Intn(len(mockScores))],
		AgeMinutes:   rand.Intn(120),
		Photos:       []string{"/api/placeholder/300/300"},
		Description:  "Good condition, some wear",
		Seller:       fmt.Sprintf("seller%s", strings.TrimPrefix(id, "deal-")),
		Location:     "UK",
		Status:       model.DealStatusPendingReview,
	}
}

// ==================== 订单 ====================

var (
	mockPlatforms     = []model.Channel{model.ChannelVinted, model.ChannelEbay}
	mockOrderStatuses = []model.OrderStatus{
		model.OrderStatusPendingPick, model.OrderStatusLabelPending,
		model.OrderStatusLabelReady, model.OrderStatusDispatched,
	}
	mockBuyers = []string{"buyer1", "buyer2", "buyer3", "buyer4", "buyer5"}
)

// MockOrders 生成 n 条订单样例
func MockOrders(n int) []model.Order {
	orders := make([]model.Order, n)
	for i := 0; i < n; i++ {
		salePrice := float64(rand.Intn(300) + 100)
		orders[i] = model.Order{
			ID:           fmt.Sprintf("order-%d", i+1),
			Platform:     mockPlatforms[rand.Intn(len(mockPlatforms))],
			ItemID:       fmt.Sprintf("item-%d", rand.Intn(50)+1),
			Buyer:        mockBuyers[rand.Intn(len(mockBuyers))],
			SalePrice:    salePrice,
			ShippingPaid: float64(rand.Intn(15) + 5),
			FeesEst:      float64(int(salePrice * 0.1)),
			CreatedAt:    time.Now().Add(-time.Duration(rand.Intn(7*24)) * time.Hour),
			Status:       mockOrderStatuses[rand.Intn(len(mockOrderStatuses))],
			BuyerRating:  float64(rand.Intn(5) + 1),
		}
	}
	return orders
}

// ==================== 发货 ====================

var (
	mockCarriers         = []string{"Royal Mail", "DPD", "Hermes", "UPS"}
	mockShipmentStatuses = []model.ShipmentStatus{
		model.ShipmentStatusPending, model.ShipmentStatusPrinting,
		model.ShipmentStatusPrinted, model.ShipmentStatusFailed,
	}
)

// MockShipments 生成 n 条发货样例
func MockShipments(n int) []model.Shipment {
	shipments := make([]model.Shipment, n)
	for i := 0; i < n; i++ {
		sh := model.Shipment{
			ID:        fmt.Sprintf("shipment-%d", i+1),
			OrderID:   fmt.Sprintf("order-%d", i+1),
			Carrier:   mockCarriers[rand.Intn(len(mockCarriers))],
			Printer:   "Default Printer",
			Status:    mockShipmentStatuses[rand.Intn(len(mockShipmentStatuses))],
			CreatedAt: time.Now().Add(-time.Duration(rand.Intn(7*24)) * time.Hour),
			UpdatedAt: time.Now().Add(-time.Duration(rand.Intn(24)) * time.Hour),
		}
		if rand.Float64() > 0.3 {
			sh.LabelURL = "/api/placeholder/400/600"
			sh.Tracking = randomTracking()
		}
		shipments[i] = sh
	}
	return shipments
}

// randomTracking 生成 Royal Mail 风格的运单号，如 RM7K2P9QX4B
func randomTracking() string {
	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ0123456789"
	var b strings.Builder
	b.WriteString("RM")
	for i := 0; i < 9; i++ {
		b.WriteByte(alphabet[rand.Intn(len(alphabet))])
	}
	return b.String()
}

// ==================== 上架 ====================

var mockListingStatuses = []model.ListingStatus{
	model.ListingStatusDraft, model.ListingStatusActive,
	model.ListingStatusSold, model.ListingStatusEnded,
}

// MockListings 生成 n 条上架样例
func MockListings(n int) []model.Listing {
	listings := make([]model.Listing, n)
	for i := 0; i < n; i++ {
		l := model.Listing{
			ID:          fmt.Sprintf("listing-%d", i+1),
			ItemID:      fmt.Sprintf("item-%d", i+1),
			Platform:    mockPlatforms[rand.Intn(len(mockPlatforms))],
			Title:       fmt.Sprintf("Mock Listing %d", i+1),
			Description: "Mock description for listing",
			Price:       float64(rand.Intn(200) + 50),
			Photos:      []string{"/api/placeholder/300/300"},
			Status:      mockListingStatuses[rand.Intn(len(mockListingStatuses))],
			CreatedAt:   time.Now().Add(-time.Duration(rand.Intn(30*24)) * time.Hour),
		}
		if rand.Float64() > 0.5 {
			now := time.Now()
			l.PublishedAt = &now
		}
		listings[i] = l
	}
	return listings
}
