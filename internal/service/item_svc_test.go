package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"resale_ops_v1_202609/internal/model"
	"resale_ops_v1_202609/internal/store"
)

// ==================== 拉取 ====================

func TestItemServiceFetchReplacesCollection(t *testing.T) {
	st := store.NewItemStore()
	svc := NewItemService(st, time.Millisecond)

	items, err := svc.FetchItems(context.Background())
	assert.NoError(t, err)
	assert.Len(t, items, 50)
	assert.Len(t, st.All(), 50)
	assert.False(t, st.Loading())
}

func TestItemServiceFetchCancelledSetsError(t *testing.T) {
	st := store.NewItemStore()
	svc := NewItemService(st, time.Second)
	st.Create(model.Item{Title: "existing"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.FetchItems(ctx)
	assert.Error(t, err)
	assert.Equal(t, "Failed to fetch items", st.Error())
	// 失败时保留原集合
	assert.Len(t, st.All(), 1)
}

// 并发拉取不做串行化：两次拉取全部完成后，集合是其中一次的完整提交
func TestItemServiceConcurrentFetchLastCommitWins(t *testing.T) {
	st := store.NewItemStore()
	svc := NewItemService(st, 5*time.Millisecond)

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = svc.FetchItems(context.Background())
		}()
	}
	wg.Wait()

	assert.Len(t, st.All(), 50)
}

// ==================== 写操作 ====================

func TestItemServiceCreateDefaults(t *testing.T) {
	st := store.NewItemStore()
	svc := NewItemService(st, time.Millisecond)

	item := svc.CreateItem(model.Item{Title: "bare"})
	assert.Equal(t, model.ItemStatusInStock, item.Status)
	assert.NotNil(t, item.Channels)
	assert.NotNil(t, item.Photos)
	assert.NotEmpty(t, item.ID)
}

func TestItemServiceUpdateAndDelete(t *testing.T) {
	st := store.NewItemStore()
	svc := NewItemService(st, time.Millisecond)

	item := svc.CreateItem(model.Item{Title: "before"})

	title := "after"
	updated, ok := svc.UpdateItem(item.ID, model.ItemPatch{Title: &title})
	assert.True(t, ok)
	assert.Equal(t, "after", updated.Title)

	svc.DeleteItem(item.ID)
	svc.DeleteItem(item.ID)
	assert.Empty(t, st.All())
}
