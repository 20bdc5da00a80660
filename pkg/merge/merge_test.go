//go:build unit

package merge

import (
	"errors"
	"testing"

	"github.com/lerenn/repoconf/pkg/branch"
	fsmocks "github.com/lerenn/repoconf/pkg/fs/mocks"
	"github.com/lerenn/repoconf/pkg/git"
	gitmocks "github.com/lerenn/repoconf/pkg/git/mocks"
	remotemocks "github.com/lerenn/repoconf/pkg/remote/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const testRepo = "/work/app"

type testMocks struct {
	fs        *fsmocks.MockFS
	git       *gitmocks.MockGit
	discovery *remotemocks.MockDiscovery
}

func newTestMerger(t *testing.T) (Merger, testMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := testMocks{
		fs:        fsmocks.NewMockFS(ctrl),
		git:       gitmocks.NewMockGit(ctrl),
		discovery: remotemocks.NewMockDiscovery(ctrl),
	}

	merger := NewMerger(NewMergerParams{
		FS:        m.fs,
		Git:       m.git,
		Discovery: m.discovery,
	})
	return merger, m
}

func TestMerge_SingleRemote(t *testing.T) {
	merger, m := newTestMerger(t)

	refs := []string{"refs/heads/main", "refs/remotes/repoconf-foo/main", "refs/remotes/origin/main"}
	gomock.InOrder(
		m.discovery.EXPECT().ListManaged(testRepo).Return([]string{"repoconf-foo"}, nil),
		m.git.EXPECT().IsClean(testRepo).Return(true, nil),
		m.git.EXPECT().Refs(testRepo).Return(refs, nil),
		m.git.EXPECT().LocalBranchExists(testRepo, "main").Return(true, nil),
		m.git.EXPECT().CheckoutBranch(testRepo, "main").Return(nil),
		m.git.EXPECT().UpdateRemotes(testRepo, []string{"repoconf-foo"}).Return(nil),
		m.git.EXPECT().Merge(git.MergeParams{
			RepoPath:   testRepo,
			RemoteName: "repoconf-foo",
			Branch:     "main",
		}).Return(nil),
		m.git.EXPECT().Push(testRepo).Return(nil),
	)

	err := merger.Merge(Params{Dir: testRepo})
	assert.NoError(t, err)
}

func TestMerge_NoManagedRemotes(t *testing.T) {
	merger, m := newTestMerger(t)

	m.discovery.EXPECT().ListManaged(testRepo).Return(nil, nil)

	err := merger.Merge(Params{Dir: testRepo})
	assert.NoError(t, err)
}

func TestMerge_DirtyRepository(t *testing.T) {
	merger, m := newTestMerger(t)

	m.discovery.EXPECT().ListManaged(testRepo).Return([]string{"repoconf-foo"}, nil)
	m.git.EXPECT().IsClean(testRepo).Return(false, nil)

	err := merger.Merge(Params{Dir: testRepo})
	assert.ErrorIs(t, err, ErrRepositoryNotClean)
}

func TestMerge_AllowDirtySkipsCleanlinessCheck(t *testing.T) {
	merger, m := newTestMerger(t)

	refs := []string{"refs/heads/master", "refs/remotes/repoconf-foo/master"}
	m.discovery.EXPECT().ListManaged(testRepo).Return([]string{"repoconf-foo"}, nil)
	m.git.EXPECT().Refs(testRepo).Return(refs, nil)
	m.git.EXPECT().LocalBranchExists(testRepo, "master").Return(true, nil)
	m.git.EXPECT().CheckoutBranch(testRepo, "master").Return(nil)
	m.git.EXPECT().UpdateRemotes(testRepo, []string{"repoconf-foo"}).Return(nil)
	m.git.EXPECT().Merge(git.MergeParams{RepoPath: testRepo, RemoteName: "repoconf-foo", Branch: "master"}).Return(nil)
	m.git.EXPECT().Push(testRepo).Return(nil)

	err := merger.Merge(Params{Dir: testRepo, AllowDirty: true})
	assert.NoError(t, err)
}

func TestMerge_FirstRemoteFailureStopsBeforeSecond(t *testing.T) {
	merger, m := newTestMerger(t)

	remotes := []string{"repoconf-a", "repoconf-b"}
	refs := []string{"refs/heads/main", "refs/remotes/repoconf-a/main", "refs/remotes/repoconf-b/main"}
	mergeErr := errors.New("conflict")

	gomock.InOrder(
		m.discovery.EXPECT().ListManaged(testRepo).Return(remotes, nil),
		m.git.EXPECT().IsClean(testRepo).Return(true, nil),
		m.git.EXPECT().Refs(testRepo).Return(refs, nil),
		m.git.EXPECT().LocalBranchExists(testRepo, "main").Return(true, nil),
		m.git.EXPECT().CheckoutBranch(testRepo, "main").Return(nil),
		m.git.EXPECT().UpdateRemotes(testRepo, remotes).Return(nil),
		m.git.EXPECT().Merge(git.MergeParams{RepoPath: testRepo, RemoteName: "repoconf-a", Branch: "main"}).Return(mergeErr),
	)

	err := merger.Merge(Params{Dir: testRepo})
	assert.ErrorIs(t, err, ErrMergeRemote)
	assert.ErrorIs(t, err, mergeErr)
	assert.Contains(t, err.Error(), "repoconf-a/main")
}

func TestMerge_PushAfterEveryRemoteMerged(t *testing.T) {
	merger, m := newTestMerger(t)

	remotes := []string{"repoconf-b", "repoconf-a"}
	refs := []string{
		"refs/heads/develop",
		"refs/remotes/repoconf-a/master",
		"refs/remotes/repoconf-b/main",
		"refs/remotes/repoconf-b/master",
	}

	gomock.InOrder(
		m.discovery.EXPECT().ListManaged(testRepo).Return(remotes, nil),
		m.git.EXPECT().IsClean(testRepo).Return(true, nil),
		m.git.EXPECT().Refs(testRepo).Return(refs, nil),
		m.git.EXPECT().LocalBranchExists(testRepo, "develop").Return(true, nil),
		m.git.EXPECT().CheckoutBranch(testRepo, "develop").Return(nil),
		m.git.EXPECT().UpdateRemotes(testRepo, remotes).Return(nil),
		m.git.EXPECT().Merge(git.MergeParams{
			RepoPath: testRepo, RemoteName: "repoconf-b", Branch: "main", AllowUnrelatedHistories: true,
		}).Return(nil),
		m.git.EXPECT().Merge(git.MergeParams{
			RepoPath: testRepo, RemoteName: "repoconf-a", Branch: "master", AllowUnrelatedHistories: true,
		}).Return(nil),
		m.git.EXPECT().Push(testRepo).Return(nil),
	)

	err := merger.Merge(Params{
		Dir:                     testRepo,
		LocalBranch:             branch.Exact("develop"),
		RemoteBranch:            branch.Auto(),
		AllowUnrelatedHistories: true,
	})
	assert.NoError(t, err)
}

func TestMerge_LocalBranchNotDetected(t *testing.T) {
	merger, m := newTestMerger(t)

	m.discovery.EXPECT().ListManaged(testRepo).Return([]string{"repoconf-foo"}, nil)
	m.git.EXPECT().IsClean(testRepo).Return(true, nil)
	m.git.EXPECT().Refs(testRepo).Return([]string{"refs/heads/trunk"}, nil)

	err := merger.Merge(Params{Dir: testRepo})
	assert.ErrorIs(t, err, ErrResolveLocalBranch)
	assert.ErrorIs(t, err, branch.ErrBranchNotFound)
	assert.Contains(t, err.Error(), "refs/heads")
}

func TestMerge_ExactLocalBranchMissing(t *testing.T) {
	merger, m := newTestMerger(t)

	m.discovery.EXPECT().ListManaged(testRepo).Return([]string{"repoconf-foo"}, nil)
	m.git.EXPECT().IsClean(testRepo).Return(true, nil)
	m.git.EXPECT().Refs(testRepo).Return([]string{"refs/heads/main"}, nil)
	m.git.EXPECT().LocalBranchExists(testRepo, "release").Return(false, nil)

	err := merger.Merge(Params{Dir: testRepo, LocalBranch: branch.Exact("release")})
	assert.ErrorIs(t, err, ErrLocalBranchDoesNotExist)
	assert.Contains(t, err.Error(), "release")
}

func TestMerge_RemoteBranchNotDetected(t *testing.T) {
	merger, m := newTestMerger(t)

	refs := []string{"refs/heads/main", "refs/remotes/repoconf-foo/trunk"}
	m.discovery.EXPECT().ListManaged(testRepo).Return([]string{"repoconf-foo"}, nil)
	m.git.EXPECT().IsClean(testRepo).Return(true, nil)
	m.git.EXPECT().Refs(testRepo).Return(refs, nil)
	m.git.EXPECT().LocalBranchExists(testRepo, "main").Return(true, nil)
	m.git.EXPECT().CheckoutBranch(testRepo, "main").Return(nil)
	m.git.EXPECT().UpdateRemotes(testRepo, []string{"repoconf-foo"}).Return(nil)

	err := merger.Merge(Params{Dir: testRepo})
	assert.ErrorIs(t, err, ErrResolveRemoteBranch)
	assert.ErrorIs(t, err, branch.ErrBranchNotFound)
	assert.Contains(t, err.Error(), "refs/remotes/repoconf-foo")
}

func TestMerge_UpdateRemotesFailure(t *testing.T) {
	merger, m := newTestMerger(t)

	m.discovery.EXPECT().ListManaged(testRepo).Return([]string{"repoconf-foo"}, nil)
	m.git.EXPECT().IsClean(testRepo).Return(true, nil)
	m.git.EXPECT().Refs(testRepo).Return([]string{"refs/heads/main"}, nil)
	m.git.EXPECT().LocalBranchExists(testRepo, "main").Return(true, nil)
	m.git.EXPECT().CheckoutBranch(testRepo, "main").Return(nil)
	m.git.EXPECT().UpdateRemotes(testRepo, []string{"repoconf-foo"}).Return(errors.New("network down"))

	err := merger.Merge(Params{Dir: testRepo})
	assert.ErrorIs(t, err, ErrUpdateRemotes)
}

func TestMerge_PushFailure(t *testing.T) {
	merger, m := newTestMerger(t)

	refs := []string{"refs/heads/main", "refs/remotes/repoconf-foo/main"}
	m.discovery.EXPECT().ListManaged(testRepo).Return([]string{"repoconf-foo"}, nil)
	m.git.EXPECT().IsClean(testRepo).Return(true, nil)
	m.git.EXPECT().Refs(testRepo).Return(refs, nil)
	m.git.EXPECT().LocalBranchExists(testRepo, "main").Return(true, nil)
	m.git.EXPECT().CheckoutBranch(testRepo, "main").Return(nil)
	m.git.EXPECT().UpdateRemotes(testRepo, []string{"repoconf-foo"}).Return(nil)
	m.git.EXPECT().Merge(gomock.Any()).Return(nil)
	m.git.EXPECT().Push(testRepo).Return(errors.New("rejected"))

	err := merger.Merge(Params{Dir: testRepo})
	assert.ErrorIs(t, err, ErrPush)
}

func TestMerge_DefaultsToWorkingDirectory(t *testing.T) {
	merger, m := newTestMerger(t)

	m.fs.EXPECT().Getwd().Return(testRepo, nil)
	m.discovery.EXPECT().ListManaged(testRepo).Return(nil, nil)

	err := merger.Merge(Params{})
	assert.NoError(t, err)
}

func TestMerge_DiscoveryFailure(t *testing.T) {
	merger, m := newTestMerger(t)

	m.discovery.EXPECT().ListManaged(testRepo).Return(nil, errors.New("not a git repository"))

	err := merger.Merge(Params{Dir: testRepo})
	assert.ErrorIs(t, err, ErrDiscoverRemotes)
}
