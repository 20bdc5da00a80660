//go:build unit

package template

import (
	"errors"
	"testing"

	fsmocks "github.com/lerenn/repoconf/pkg/fs/mocks"
	"github.com/lerenn/repoconf/pkg/git"
	gitmocks "github.com/lerenn/repoconf/pkg/git/mocks"
	"github.com/lerenn/repoconf/pkg/hooks"
	hooksmocks "github.com/lerenn/repoconf/pkg/hooks/mocks"
	"github.com/lerenn/repoconf/pkg/remote"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const (
	testDir         = "/work/billing"
	testTemplateURL = "https://github.com/acme/go-service.git"
)

type testMocks struct {
	fs    *fsmocks.MockFS
	git   *gitmocks.MockGit
	hooks *hooksmocks.MockRunner
}

// newTestManager wires a real Discovery on top of the git mock so remote
// naming is exercised end to end.
func newTestManager(t *testing.T) (Manager, testMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := testMocks{
		fs:    fsmocks.NewMockFS(ctrl),
		git:   gitmocks.NewMockGit(ctrl),
		hooks: hooksmocks.NewMockRunner(ctrl),
	}

	manager := NewManager(NewManagerParams{
		FS:        m.fs,
		Git:       m.git,
		Discovery: remote.NewDiscovery(remote.NewDiscoveryParams{Git: m.git}),
		Hooks:     m.hooks,
	})
	return manager, m
}

func TestAdd(t *testing.T) {
	manager, m := newTestManager(t)

	gomock.InOrder(
		m.git.EXPECT().AddRemote(testDir, "repoconf-go-service", testTemplateURL).Return(nil),
		m.git.EXPECT().UpdateRemotes(testDir, []string{"repoconf-go-service"}).Return(nil),
	)

	err := manager.Add(AddParams{Dir: testDir, TemplateURL: testTemplateURL})
	assert.NoError(t, err)
}

func TestAdd_DefaultsToWorkingDirectory(t *testing.T) {
	manager, m := newTestManager(t)

	m.fs.EXPECT().Getwd().Return(testDir, nil)
	m.git.EXPECT().AddRemote(testDir, "repoconf-go-service", testTemplateURL).Return(nil)
	m.git.EXPECT().UpdateRemotes(testDir, []string{"repoconf-go-service"}).Return(nil)

	err := manager.Add(AddParams{TemplateURL: testTemplateURL})
	assert.NoError(t, err)
}

func TestAdd_RemoteAddFailure(t *testing.T) {
	manager, m := newTestManager(t)

	m.git.EXPECT().AddRemote(testDir, "repoconf-go-service", testTemplateURL).Return(errors.New("remote exists"))

	err := manager.Add(AddParams{Dir: testDir, TemplateURL: testTemplateURL})
	assert.ErrorIs(t, err, ErrAddRemote)
}

func TestAdd_EmptyURL(t *testing.T) {
	manager, _ := newTestManager(t)

	assert.ErrorIs(t, manager.Add(AddParams{Dir: testDir}), ErrTemplateURLEmpty)
}

func TestInit_NewBranchFromTemplate(t *testing.T) {
	manager, m := newTestManager(t)

	gomock.InOrder(
		m.git.EXPECT().Remotes(testDir).Return([]git.Remote{{Name: "origin", URL: "git@github.com:acme/billing.git"}}, nil),
		m.git.EXPECT().AddRemote(testDir, "repoconf-go", testTemplateURL).Return(nil),
		m.git.EXPECT().UpdateRemotes(testDir, []string{"repoconf-go"}).Return(nil),
		m.git.EXPECT().LocalBranchExists(testDir, "main").Return(false, nil),
		m.git.EXPECT().CheckoutNewBranch(git.CheckoutNewBranchParams{
			RepoPath: testDir, Branch: "main", RemoteName: "repoconf-go",
		}).Return(nil),
		m.git.EXPECT().UnsetUpstream(testDir, "main").Return(nil),
		m.git.EXPECT().PushSetUpstream(testDir, "origin", "main").Return(nil),
		m.hooks.EXPECT().RunPostInit(hooks.PostInitParams{
			Dir: testDir, Script: ".repoconf/hooks/post-init.sh", RepoName: "billing",
		}).Return(nil),
	)

	err := manager.Init(InitParams{Dir: testDir, TemplateName: "go", TemplateURL: testTemplateURL})
	assert.NoError(t, err)
}

func TestInit_ExistingBranchAndRemote(t *testing.T) {
	manager, m := newTestManager(t)

	gomock.InOrder(
		m.git.EXPECT().Remotes(testDir).Return([]git.Remote{{Name: "tpl", URL: testTemplateURL}}, nil),
		m.git.EXPECT().UpdateRemotes(testDir, []string{"tpl"}).Return(nil),
		m.git.EXPECT().LocalBranchExists(testDir, "trunk").Return(true, nil),
		m.git.EXPECT().CheckoutBranch(testDir, "trunk").Return(nil),
		m.git.EXPECT().PushSetUpstream(testDir, "upstream", "trunk").Return(nil),
	)

	err := manager.Init(InitParams{
		Dir:          testDir,
		TemplateName: "go",
		TemplateURL:  testTemplateURL,
		RemoteName:   "upstream",
		BranchName:   "trunk",
		SkipPostInit: true,
	})
	assert.NoError(t, err)
}

func TestInit_TemplateURLUnderAnotherRemoteName(t *testing.T) {
	manager, m := newTestManager(t)

	gomock.InOrder(
		m.git.EXPECT().Remotes(testDir).Return([]git.Remote{
			{Name: "origin", URL: "git@github.com:acme/billing.git"},
			{Name: "upstream-template", URL: testTemplateURL},
		}, nil),
		m.git.EXPECT().UpdateRemotes(testDir, []string{"upstream-template"}).Return(nil),
		m.git.EXPECT().LocalBranchExists(testDir, "main").Return(false, nil),
		m.git.EXPECT().CheckoutNewBranch(git.CheckoutNewBranchParams{
			RepoPath: testDir, Branch: "main", RemoteName: "upstream-template",
		}).Return(nil),
		m.git.EXPECT().UnsetUpstream(testDir, "main").Return(nil),
		m.git.EXPECT().PushSetUpstream(testDir, "origin", "main").Return(nil),
	)

	err := manager.Init(InitParams{
		Dir:          testDir,
		TemplateName: "go",
		TemplateURL:  testTemplateURL,
		SkipPostInit: true,
	})
	assert.NoError(t, err)
}

func TestInit_PushFailureSkipsHook(t *testing.T) {
	manager, m := newTestManager(t)

	m.git.EXPECT().Remotes(testDir).Return(nil, nil)
	m.git.EXPECT().AddRemote(testDir, "repoconf-go", testTemplateURL).Return(nil)
	m.git.EXPECT().UpdateRemotes(testDir, []string{"repoconf-go"}).Return(nil)
	m.git.EXPECT().LocalBranchExists(testDir, "main").Return(true, nil)
	m.git.EXPECT().CheckoutBranch(testDir, "main").Return(nil)
	m.git.EXPECT().PushSetUpstream(testDir, "origin", "main").Return(errors.New("permission denied"))

	err := manager.Init(InitParams{Dir: testDir, TemplateName: "go", TemplateURL: testTemplateURL})
	assert.ErrorIs(t, err, ErrPush)
}

func TestInit_HookFailure(t *testing.T) {
	manager, m := newTestManager(t)
	hookErr := errors.New("exit status 1")

	m.git.EXPECT().Remotes(testDir).Return(nil, nil)
	m.git.EXPECT().AddRemote(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	m.git.EXPECT().UpdateRemotes(gomock.Any(), gomock.Any()).Return(nil)
	m.git.EXPECT().LocalBranchExists(gomock.Any(), gomock.Any()).Return(true, nil)
	m.git.EXPECT().CheckoutBranch(gomock.Any(), gomock.Any()).Return(nil)
	m.git.EXPECT().PushSetUpstream(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	m.hooks.EXPECT().RunPostInit(gomock.Any()).Return(hookErr)

	err := manager.Init(InitParams{Dir: testDir, TemplateName: "go", TemplateURL: testTemplateURL, RepoName: "billing-api"})
	assert.ErrorIs(t, err, hookErr)
}

func TestInit_Validation(t *testing.T) {
	manager, _ := newTestManager(t)

	tests := []struct {
		name   string
		params InitParams
		err    error
	}{
		{"missing template name", InitParams{Dir: testDir, TemplateURL: testTemplateURL}, ErrTemplateNameEmpty},
		{"missing template url", InitParams{Dir: testDir, TemplateName: "go"}, ErrTemplateURLEmpty},
		{"missing dir", InitParams{TemplateName: "go", TemplateURL: testTemplateURL}, ErrDirEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, manager.Init(tt.params), tt.err)
		})
	}
}

func TestRepoNameFromDir(t *testing.T) {
	tests := []struct {
		dir      string
		expected string
	}{
		{"/work/billing", "billing"},
		{"/work/billing/", "billing"},
		{"/work/site.io", "site"},
		{"billing", "billing"},
	}

	for _, tt := range tests {
		t.Run(tt.dir, func(t *testing.T) {
			name, err := repoNameFromDir(tt.dir)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, name)
		})
	}

	_, err := repoNameFromDir("/")
	assert.ErrorIs(t, err, ErrRepoNameNotFound)
}
