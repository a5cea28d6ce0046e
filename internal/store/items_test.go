package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"resale_ops_v1_202609/internal/model"
)

// ==================== 测试辅助 ====================

func testItem(title, brand, location string, status model.ItemStatus) model.Item {
	return model.Item{
		Title:     title,
		SKU:       "SKU-" + title,
		Brand:     brand,
		Condition: model.ConditionGood,
		Source:    model.SourceVinted,
		BuyPrice:  100,
		EstResale: 150,
		Location:  location,
		Status:    status,
	}
}

// ==================== ID 分配 ====================

func TestItemStoreCreateAssignsUniqueIDs(t *testing.T) {
	s := NewItemStore()

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		item := s.Create(testItem("a", "Apple", "A1", model.ItemStatusInStock))
		if _, dup := seen[item.ID]; dup {
			t.Fatalf("重复的 ID: %s", item.ID)
		}
		seen[item.ID] = struct{}{}
	}
}

func TestItemStoreIDNotReusedAfterDelete(t *testing.T) {
	s := NewItemStore()

	first := s.Create(testItem("a", "Apple", "A1", model.ItemStatusInStock))
	s.Remove(first.ID)

	second := s.Create(testItem("b", "Sony", "B2", model.ItemStatusInStock))
	assert.NotEqual(t, first.ID, second.ID)
}

// ==================== 部分更新 ====================

func TestItemStoreUpdateEmptyPatchIsNoop(t *testing.T) {
	s := NewItemStore()
	created := s.Create(testItem("iPhone 13", "Apple", "A1", model.ItemStatusInStock))

	updated, ok := s.Update(created.ID, model.ItemPatch{})
	assert.True(t, ok)
	assert.Equal(t, created, updated)
}

func TestItemStoreUpdateNonexistentLeavesStateUnchanged(t *testing.T) {
	s := NewItemStore()
	created := s.Create(testItem("iPhone 13", "Apple", "A1", model.ItemStatusInStock))

	title := "changed"
	_, ok := s.Update("item-does-not-exist", model.ItemPatch{Title: &title})
	assert.False(t, ok)

	got, _ := s.ByID(created.ID)
	assert.Equal(t, "iPhone 13", got.Title)
	assert.Len(t, s.All(), 1)
}

func TestItemStoreUpdateAppliesOnlyNonNilFields(t *testing.T) {
	s := NewItemStore()
	created := s.Create(testItem("iPhone 13", "Apple", "A1", model.ItemStatusInStock))

	price := 250.0
	status := model.ItemStatusListed
	updated, ok := s.Update(created.ID, model.ItemPatch{BuyPrice: &price, Status: &status})
	assert.True(t, ok)
	assert.Equal(t, 250.0, updated.BuyPrice)
	assert.Equal(t, model.ItemStatusListed, updated.Status)
	// 未出现在补丁里的字段保持原值
	assert.Equal(t, "iPhone 13", updated.Title)
	assert.Equal(t, "Apple", updated.Brand)
}

// ==================== 删除 ====================

func TestItemStoreRemoveIsIdempotent(t *testing.T) {
	s := NewItemStore()
	a := s.Create(testItem("a", "Apple", "A1", model.ItemStatusInStock))
	s.Create(testItem("b", "Sony", "B2", model.ItemStatusListed))

	s.Remove(a.ID)
	s.Remove(a.ID) // 第二次删除不报错
	assert.Len(t, s.All(), 1)
}

// ==================== 筛选 ====================

func TestItemStoreFilteredNoFiltersReturnsAllInOrder(t *testing.T) {
	s := NewItemStore()
	a := s.Create(testItem("a", "Apple", "A1", model.ItemStatusInStock))
	b := s.Create(testItem("b", "Sony", "B2", model.ItemStatusListed))
	c := s.Create(testItem("c", "Apple", "A1", model.ItemStatusSold))

	got := s.Filtered()
	assert.Equal(t, []string{a.ID, b.ID, c.ID}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func TestItemStoreFilteredSearchMatchesTitleSKUBrand(t *testing.T) {
	s := NewItemStore()
	s.Create(testItem("iPhone 13", "Apple", "A1", model.ItemStatusInStock))
	s.Create(testItem("Galaxy S21", "Samsung", "A1", model.ItemStatusInStock))

	search := "APPLE" // 大小写不敏感
	s.SetFilters(ItemFiltersPatch{Search: &search})
	got := s.Filtered()
	assert.Len(t, got, 1)
	assert.Equal(t, "iPhone 13", got[0].Title)
}

func TestItemStoreFiltersAreOrderIndependent(t *testing.T) {
	build := func() *ItemStore {
		s := NewItemStore()
		s.Create(testItem("a", "Apple", "A1", model.ItemStatusInStock))
		s.Create(testItem("b", "Apple", "A1", model.ItemStatusListed))
		s.Create(testItem("c", "Sony", "A1", model.ItemStatusInStock))
		return s
	}

	status := "in_stock"
	brandSearch := "apple"

	s1 := build()
	s1.SetFilters(ItemFiltersPatch{Status: &status})
	s1.SetFilters(ItemFiltersPatch{Search: &brandSearch})

	s2 := build()
	s2.SetFilters(ItemFiltersPatch{Search: &brandSearch})
	s2.SetFilters(ItemFiltersPatch{Status: &status})

	got1 := s1.Filtered()
	got2 := s2.Filtered()
	assert.Len(t, got1, 1)
	assert.Equal(t, got1[0].Title, got2[0].Title)
}

func TestItemStoreSetFiltersMergesShallow(t *testing.T) {
	s := NewItemStore()

	search := "iphone"
	s.SetFilters(ItemFiltersPatch{Search: &search})
	status := "listed"
	s.SetFilters(ItemFiltersPatch{Status: &status})

	f := s.Filters()
	assert.Equal(t, "iphone", f.Search) // 先前的条件保留
	assert.Equal(t, "listed", f.Status)
}

// ==================== 勾选 ====================

func TestItemStoreToggleSelected(t *testing.T) {
	s := NewItemStore()
	a := s.Create(testItem("a", "Apple", "A1", model.ItemStatusInStock))

	s.ToggleSelected(a.ID)
	assert.Equal(t, []string{a.ID}, s.Selected())

	s.ToggleSelected(a.ID)
	assert.Empty(t, s.Selected())
}

// ==================== 聚合 ====================

func TestItemStoreAggregates(t *testing.T) {
	s := NewItemStore()
	s.Create(testItem("a", "Apple", "A1", model.ItemStatusInStock))   // buy 100, est 150
	s.Create(testItem("b", "Sony", "Office", model.ItemStatusListed)) // buy 100, est 150

	assert.Equal(t, 200.0, s.TotalBuyValue())
	assert.Equal(t, 100.0, s.TotalPotentialProfit())

	counts := s.CountsByStatus()
	assert.Equal(t, 1, counts[model.ItemStatusInStock])
	assert.Equal(t, 1, counts[model.ItemStatusListed])

	assert.Equal(t, []string{"Apple", "Sony"}, s.Brands())
	assert.Equal(t, []string{"A1", "Office"}, s.Locations())
}
