package store

import "sync"

// ==================== MenuStore 菜单 Store ====================

// MenuStore 菜单命名空间：当前激活的主/子菜单
type MenuStore struct {
	mu         sync.RWMutex
	activeMain string
	activeSub  string
}

// NewMenuStore 创建菜单 Store
func NewMenuStore() *MenuStore {
	return &MenuStore{}
}

// SetMain 激活主菜单
func (s *MenuStore) SetMain(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeMain = name
}

// SetSub 激活子菜单
func (s *MenuStore) SetSub(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeSub = name
}

// Active 当前激活的主/子菜单
func (s *MenuStore) Active() (main, sub string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeMain, s.activeSub
}
