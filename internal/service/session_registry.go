package service

import (
	"ai_edu_navigator/internal/repository"
	"ai_edu_navigator/internal/util"
	"ai_edu_navigator/pkg/logger"
	"ai_edu_navigator/pkg/monitoring"
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// SessionRegistry 按设备 ID 持有 SessionStore，首次访问时创建并从存储加载。
// 会话状态总是先写存储，因此被移出的 store 可以随时从存储重建
type SessionRegistry struct {
	factory repository.SessionStorageFactory

	// Now 在测试中可替换
	Now func() time.Time

	mu      sync.RWMutex
	latency Latency
	stores  map[string]*SessionStore
}

func NewSessionRegistry(factory repository.SessionStorageFactory, latency Latency) *SessionRegistry {
	if latency == nil {
		latency = NoLatency{}
	}
	return &SessionRegistry{
		factory: factory,
		Now:     time.Now,
		latency: latency,
		stores:  make(map[string]*SessionStore),
	}
}

func (r *SessionRegistry) Get(ctx context.Context, deviceID string) (*SessionStore, error) {
	if !util.ValidDeviceID(deviceID) {
		return nil, util.ErrInvalidDeviceID
	}

	r.mu.RLock()
	store, ok := r.stores[deviceID]
	r.mu.RUnlock()

	if !ok {
		r.mu.Lock()
		store, ok = r.stores[deviceID]
		if !ok {
			store = NewSessionStore(deviceID, r.factory(deviceID), r.latency)
			r.stores[deviceID] = store
			monitoring.ActiveDeviceSessions.Set(float64(len(r.stores)))
		}
		r.mu.Unlock()
	}
	store.touch(r.Now())

	// 存储读取可能较慢，不持有 map 锁
	if err := store.Init(ctx); err != nil {
		r.Release(store)
		return nil, err
	}
	return store, nil
}

// Release 会话没有登录用户时从注册表移除，例如退出或认证失败之后
func (r *SessionRegistry) Release(store *SessionStore) {
	if store == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stores[store.DeviceID] != store || !store.evictable() {
		return
	}
	delete(r.stores, store.DeviceID)
	monitoring.ActiveDeviceSessions.Set(float64(len(r.stores)))
}

// Sweep 移除超过 idle 未被访问且没有认证进行中的会话，返回移除数量
func (r *SessionRegistry) Sweep(idle time.Duration) int {
	cutoff := r.Now().Add(-idle)

	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, store := range r.stores {
		if store.lastUsedAt().Before(cutoff) && !store.busy() {
			delete(r.stores, id)
			removed++
		}
	}
	monitoring.ActiveDeviceSessions.Set(float64(len(r.stores)))
	return removed
}

// StartSweeper 后台定期清理空闲会话，ctx 结束时退出；idle 不大于 0 时不启动
func (r *SessionRegistry) StartSweeper(ctx context.Context, interval, idle time.Duration) {
	if interval <= 0 || idle <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := r.Sweep(idle); n > 0 {
					logger.Log.Debug("清理空闲会话", zap.Int("removed", n), zap.Int("remaining", r.Len()))
				}
			}
		}
	}()
}

// SetLatency 配置热更新时同步到所有已存在的会话
func (r *SessionRegistry) SetLatency(l Latency) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.latency = l
	for _, s := range r.stores {
		s.SetLatency(l)
	}
}

func (r *SessionRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.stores)
}
