//go:build unit

package propagate

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lerenn/repoconf/pkg/branch"
	fsmocks "github.com/lerenn/repoconf/pkg/fs/mocks"
	"github.com/lerenn/repoconf/pkg/logger"
	"github.com/lerenn/repoconf/pkg/merge"
	mergemocks "github.com/lerenn/repoconf/pkg/merge/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const testRoot = "/work"

var testRepos = []string{"/work", "/work/api", "/work/api/vendor/lib"}

func newTestPropagator(t *testing.T) (Propagator, *fsmocks.MockFS, *mergemocks.MockMerger) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockFS := fsmocks.NewMockFS(ctrl)
	mockMerger := mergemocks.NewMockMerger(ctrl)

	return NewPropagator(NewPropagatorParams{
		FS:     mockFS,
		Merger: mockMerger,
		Logger: logger.NewNoopLogger(),
	}), mockFS, mockMerger
}

func mergeParams(dir string) merge.Params {
	return merge.Params{
		Dir:          dir,
		LocalBranch:  branch.Auto(),
		RemoteBranch: branch.Exact("stable"),
	}
}

func TestPropagate_AllRepositoriesInOrder(t *testing.T) {
	p, mockFS, mockMerger := newTestPropagator(t)

	mockFS.EXPECT().WalkRepositories(testRoot).Return(testRepos, nil)
	gomock.InOrder(
		mockMerger.EXPECT().Merge(mergeParams("/work")).Return(nil),
		mockMerger.EXPECT().Merge(mergeParams("/work/api")).Return(nil),
		mockMerger.EXPECT().Merge(mergeParams("/work/api/vendor/lib")).Return(nil),
	)

	err := p.Propagate(Params{Root: testRoot, RemoteBranch: branch.Exact("stable")})
	assert.NoError(t, err)
}

func TestPropagate_FailFastStopsAtSecondRepository(t *testing.T) {
	p, mockFS, mockMerger := newTestPropagator(t)
	mergeErr := errors.New("conflict")

	mockFS.EXPECT().WalkRepositories(testRoot).Return(testRepos, nil)
	gomock.InOrder(
		mockMerger.EXPECT().Merge(mergeParams("/work")).Return(nil),
		mockMerger.EXPECT().Merge(mergeParams("/work/api")).Return(mergeErr),
	)

	err := p.Propagate(Params{Root: testRoot, RemoteBranch: branch.Exact("stable"), Policy: PolicyFailFast})
	assert.ErrorIs(t, err, ErrRepositoryMergeFailed)
	assert.ErrorIs(t, err, mergeErr)
	assert.Contains(t, err.Error(), "/work/api")
}

func TestPropagate_ContinueCollectsFailures(t *testing.T) {
	p, mockFS, mockMerger := newTestPropagator(t)
	first := errors.New("conflict in api")
	second := errors.New("dirty tree in lib")

	mockFS.EXPECT().WalkRepositories(testRoot).Return(testRepos, nil)
	gomock.InOrder(
		mockMerger.EXPECT().Merge(mergeParams("/work")).Return(nil),
		mockMerger.EXPECT().Merge(mergeParams("/work/api")).Return(first),
		mockMerger.EXPECT().Merge(mergeParams("/work/api/vendor/lib")).Return(second),
	)

	err := p.Propagate(Params{Root: testRoot, RemoteBranch: branch.Exact("stable"), Policy: PolicyContinue})
	assert.ErrorIs(t, err, first)
	assert.ErrorIs(t, err, second)
	assert.Contains(t, err.Error(), "/work/api/vendor/lib")
}

func TestPropagate_ForwardsMergeOptions(t *testing.T) {
	p, mockFS, mockMerger := newTestPropagator(t)

	mockFS.EXPECT().WalkRepositories(testRoot).Return([]string{"/work"}, nil)
	mockMerger.EXPECT().Merge(merge.Params{
		Dir:                     "/work",
		LocalBranch:             branch.Exact("develop"),
		RemoteBranch:            branch.Auto(),
		AllowDirty:              true,
		AllowUnrelatedHistories: true,
	}).Return(nil)

	err := p.Propagate(Params{
		Root:                    testRoot,
		LocalBranch:             branch.Exact("develop"),
		AllowDirty:              true,
		AllowUnrelatedHistories: true,
	})
	assert.NoError(t, err)
}

func TestPropagate_NoRepositories(t *testing.T) {
	p, mockFS, _ := newTestPropagator(t)

	mockFS.EXPECT().WalkRepositories(testRoot).Return(nil, nil)

	assert.NoError(t, p.Propagate(Params{Root: testRoot}))
}

func TestPropagate_WalkFailure(t *testing.T) {
	p, mockFS, _ := newTestPropagator(t)

	mockFS.EXPECT().WalkRepositories(testRoot).Return(nil, errors.New("permission denied"))

	err := p.Propagate(Params{Root: testRoot})
	assert.ErrorIs(t, err, ErrFindRepositories)
}

func TestPropagate_LogsEachRepository(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fsmocks.NewMockFS(ctrl)
	mockMerger := mergemocks.NewMockMerger(ctrl)
	var lines []string
	p := NewPropagator(NewPropagatorParams{
		FS:     mockFS,
		Merger: mockMerger,
		Logger: recordingLogger{lines: &lines},
	})

	mockFS.EXPECT().WalkRepositories(testRoot).Return([]string{"/work", "/work/api"}, nil)
	mockMerger.EXPECT().Merge(gomock.Any()).Return(nil).Times(2)

	assert.NoError(t, p.Propagate(Params{Root: testRoot}))
	assert.Equal(t, []string{"Entering /work", "Entering /work/api"}, lines)
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		value    string
		expected Policy
		wantErr  bool
	}{
		{value: "", expected: PolicyFailFast},
		{value: "fail-fast", expected: PolicyFailFast},
		{value: "continue", expected: PolicyContinue},
		{value: "retry", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			policy, err := ParsePolicy(tt.value)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownPolicy)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, policy)
		})
	}
}

type recordingLogger struct {
	lines *[]string
}

func (l recordingLogger) Logf(format string, args ...interface{}) {
	*l.lines = append(*l.lines, fmt.Sprintf(format, args...))
}

func (l recordingLogger) Command(_ string) {}
