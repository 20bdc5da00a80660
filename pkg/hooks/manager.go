package hooks

import (
	"fmt"
	"sort"
	"sync"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=manager.go -destination=mocks/manager.gen.go -package=mocks

// HookManager manages hook registration and execution.
type HookManager struct {
	preHooks   map[string][]PreHook
	postHooks  map[string][]PostHook
	errorHooks map[string][]ErrorHook
	mu         sync.RWMutex
}

// Manager defines the interface for hook management.
type Manager interface {
	// Hook registration.
	RegisterPreHook(operation string, hook PreHook) error
	RegisterPostHook(operation string, hook PostHook) error
	RegisterErrorHook(operation string, hook ErrorHook) error

	// Hook execution.
	ExecutePreHooks(operation string, ctx *HookContext) error
	ExecutePostHooks(operation string, ctx *HookContext) error
	ExecuteErrorHooks(operation string, ctx *HookContext) error
}

// NewHookManager creates a new HookManager instance.
func NewHookManager() Manager {
	return &HookManager{
		preHooks:   make(map[string][]PreHook),
		postHooks:  make(map[string][]PostHook),
		errorHooks: make(map[string][]ErrorHook),
	}
}

// RegisterPreHook registers a pre-hook for a specific operation.
func (hm *HookManager) RegisterPreHook(operation string, hook PreHook) error {
	if hook == nil {
		return ErrNilHook
	}

	hm.mu.Lock()
	defer hm.mu.Unlock()

	hm.preHooks[operation] = append(hm.preHooks[operation], hook)
	sort.SliceStable(hm.preHooks[operation], func(i, j int) bool {
		return hm.preHooks[operation][i].Priority() < hm.preHooks[operation][j].Priority()
	})
	return nil
}

// RegisterPostHook registers a post-hook for a specific operation.
func (hm *HookManager) RegisterPostHook(operation string, hook PostHook) error {
	if hook == nil {
		return ErrNilHook
	}

	hm.mu.Lock()
	defer hm.mu.Unlock()

	hm.postHooks[operation] = append(hm.postHooks[operation], hook)
	sort.SliceStable(hm.postHooks[operation], func(i, j int) bool {
		return hm.postHooks[operation][i].Priority() < hm.postHooks[operation][j].Priority()
	})
	return nil
}

// RegisterErrorHook registers an error-hook for a specific operation.
func (hm *HookManager) RegisterErrorHook(operation string, hook ErrorHook) error {
	if hook == nil {
		return ErrNilHook
	}

	hm.mu.Lock()
	defer hm.mu.Unlock()

	hm.errorHooks[operation] = append(hm.errorHooks[operation], hook)
	sort.SliceStable(hm.errorHooks[operation], func(i, j int) bool {
		return hm.errorHooks[operation][i].Priority() < hm.errorHooks[operation][j].Priority()
	})
	return nil
}

// ExecutePreHooks executes all pre-hooks for a specific operation.
func (hm *HookManager) ExecutePreHooks(operation string, ctx *HookContext) error {
	hm.mu.RLock()
	defer hm.mu.RUnlock()

	for _, hook := range hm.preHooks[operation] {
		if err := hook.PreExecute(ctx); err != nil {
			return fmt.Errorf("%w: pre-hook %s: %w", ErrHookFailed, hook.Name(), err)
		}
	}

	return nil
}

// ExecutePostHooks executes all post-hooks for a specific operation.
func (hm *HookManager) ExecutePostHooks(operation string, ctx *HookContext) error {
	hm.mu.RLock()
	defer hm.mu.RUnlock()

	for _, hook := range hm.postHooks[operation] {
		if err := hook.PostExecute(ctx); err != nil {
			return fmt.Errorf("%w: post-hook %s: %w", ErrHookFailed, hook.Name(), err)
		}
	}

	return nil
}

// ExecuteErrorHooks executes all error-hooks for a specific operation.
func (hm *HookManager) ExecuteErrorHooks(operation string, ctx *HookContext) error {
	hm.mu.RLock()
	defer hm.mu.RUnlock()

	for _, hook := range hm.errorHooks[operation] {
		if err := hook.OnError(ctx); err != nil {
			return fmt.Errorf("%w: error-hook %s: %w", ErrHookFailed, hook.Name(), err)
		}
	}

	return nil
}
