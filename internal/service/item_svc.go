package service

import (
	"context"
	"time"

	"resale_ops_v1_202609/internal/model"
	"resale_ops_v1_202609/internal/store"
)

// wait 模拟一次网络往返
// 延迟期间不持有任何锁；调用方取消时返回 ctx.Err()
func wait(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// ==================== ItemService 库存服务 ====================

// ItemService 库存服务
type ItemService struct {
	store *store.ItemStore
	delay time.Duration // 模拟网络延迟
}

// NewItemService 创建库存服务
func NewItemService(st *store.ItemStore, delay time.Duration) *ItemService {
	return &ItemService{store: st, delay: delay}
}

// FetchItems 拉取库存：延迟后整体替换集合
// 两次并发拉取不做串行化，后提交者获胜；失败时保留原集合并记录错误
func (s *ItemService) FetchItems(ctx context.Context) ([]model.Item, error) {
	s.store.SetLoading(true)
	defer s.store.SetLoading(false)

	if err := wait(ctx, s.delay); err != nil {
		s.store.SetError("Failed to fetch items")
		return nil, err
	}

	items := MockItems(50)
	s.store.SetAll(items)
	return items, nil
}

// CreateItem 新建库存条目
func (s *ItemService) CreateItem(item model.Item) model.Item {
	if item.Status == "" {
		item.Status = model.ItemStatusInStock
	}
	if item.Channels == nil {
		item.Channels = []model.Channel{}
	}
	if item.Photos == nil {
		item.Photos = []string{}
	}
	return s.store.Create(item)
}

// UpdateItem 部分更新；ID 不存在时返回 false 而不报错
func (s *ItemService) UpdateItem(id string, patch model.ItemPatch) (model.Item, bool) {
	return s.store.Update(id, patch)
}

// DeleteItem 删除，幂等
func (s *ItemService) DeleteItem(id string) {
	s.store.Remove(id)
}
