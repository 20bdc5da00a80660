//go:build unit

package hooks

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingHook struct {
	name     string
	priority int
	calls    *[]string
	err      error
}

func (h *recordingHook) Name() string  { return h.name }
func (h *recordingHook) Priority() int { return h.priority }

func (h *recordingHook) PreExecute(_ *HookContext) error {
	*h.calls = append(*h.calls, "pre:"+h.name)
	return h.err
}

func (h *recordingHook) PostExecute(_ *HookContext) error {
	*h.calls = append(*h.calls, "post:"+h.name)
	return h.err
}

func (h *recordingHook) OnError(_ *HookContext) error {
	*h.calls = append(*h.calls, "error:"+h.name)
	return h.err
}

func TestHookManager_ExecutesByPriority(t *testing.T) {
	hm := NewHookManager()
	var calls []string

	late := &recordingHook{name: "late", priority: 200, calls: &calls}
	early := &recordingHook{name: "early", priority: 50, calls: &calls}

	require.NoError(t, hm.RegisterPreHook("merge", late))
	require.NoError(t, hm.RegisterPreHook("merge", early))
	require.NoError(t, hm.RegisterPostHook("merge", late))
	require.NoError(t, hm.RegisterPostHook("merge", early))
	require.NoError(t, hm.RegisterErrorHook("merge", early))

	ctx := &HookContext{OperationName: "merge"}
	require.NoError(t, hm.ExecutePreHooks("merge", ctx))
	require.NoError(t, hm.ExecutePostHooks("merge", ctx))
	require.NoError(t, hm.ExecuteErrorHooks("merge", ctx))

	assert.Equal(t, []string{"pre:early", "pre:late", "post:early", "post:late", "error:early"}, calls)
}

func TestHookManager_OperationsAreIsolated(t *testing.T) {
	hm := NewHookManager()
	var calls []string

	require.NoError(t, hm.RegisterPreHook("init", &recordingHook{name: "only-init", calls: &calls}))
	require.NoError(t, hm.ExecutePreHooks("merge", &HookContext{OperationName: "merge"}))

	assert.Empty(t, calls)
}

func TestHookManager_FailureStopsChain(t *testing.T) {
	hm := NewHookManager()
	var calls []string
	boom := errors.New("boom")

	require.NoError(t, hm.RegisterPostHook("add", &recordingHook{name: "first", priority: 1, calls: &calls, err: boom}))
	require.NoError(t, hm.RegisterPostHook("add", &recordingHook{name: "second", priority: 2, calls: &calls}))

	err := hm.ExecutePostHooks("add", &HookContext{OperationName: "add"})
	assert.ErrorIs(t, err, ErrHookFailed)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "first")
	assert.Equal(t, []string{"post:first"}, calls)
}

func TestHookManager_RejectsNilHook(t *testing.T) {
	hm := NewHookManager()

	assert.ErrorIs(t, hm.RegisterPreHook("merge", nil), ErrNilHook)
	assert.ErrorIs(t, hm.RegisterPostHook("merge", nil), ErrNilHook)
	assert.ErrorIs(t, hm.RegisterErrorHook("merge", nil), ErrNilHook)
}
