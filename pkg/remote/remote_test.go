//go:build unit

package remote

import (
	"errors"
	"testing"

	"github.com/lerenn/repoconf/pkg/git"
	"github.com/lerenn/repoconf/pkg/git/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDiscovery_ListManaged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGit := mocks.NewMockGit(ctrl)
	mockGit.EXPECT().Remotes("/work/app").Return([]git.Remote{
		{Name: "repoconf-foo", URL: "url1"},
		{Name: "origin", URL: "url2"},
		{Name: "repoconf-bar", URL: "url3"},
		{Name: "upstream-repoconf", URL: "url4"},
	}, nil)

	discovery := NewDiscovery(NewDiscoveryParams{Git: mockGit})

	names, err := discovery.ListManaged("/work/app")
	require.NoError(t, err)
	assert.Equal(t, []string{"repoconf-foo", "repoconf-bar"}, names)
}

func TestDiscovery_ListManagedNone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGit := mocks.NewMockGit(ctrl)
	mockGit.EXPECT().Remotes("/work/app").Return([]git.Remote{{Name: "origin", URL: "url"}}, nil)

	discovery := NewDiscovery(NewDiscoveryParams{Git: mockGit})

	names, err := discovery.ListManaged("/work/app")
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestDiscovery_CustomPrefix(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGit := mocks.NewMockGit(ctrl)
	mockGit.EXPECT().Remotes("/work/app").Return([]git.Remote{
		{Name: "repoconf-foo", URL: "url1"},
		{Name: "tpl-base", URL: "url2"},
	}, nil)

	discovery := NewDiscovery(NewDiscoveryParams{Git: mockGit, Prefix: "tpl"})

	names, err := discovery.ListManaged("/work/app")
	require.NoError(t, err)
	assert.Equal(t, []string{"tpl-base"}, names)
	assert.Equal(t, "tpl-go", discovery.ManagedName("go"))
}

func TestDiscovery_ListFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	parseErr := git.ErrRemoteURLNotFound
	mockGit := mocks.NewMockGit(ctrl)
	mockGit.EXPECT().Remotes("/work/app").Return(nil, parseErr)

	discovery := NewDiscovery(NewDiscoveryParams{Git: mockGit})

	_, err := discovery.ListManaged("/work/app")
	assert.ErrorIs(t, err, ErrListRemotesFailed)
	assert.True(t, errors.Is(err, git.ErrRemoteURLNotFound))
}

func TestDiscovery_ManagedNameFromURL(t *testing.T) {
	discovery := NewDiscovery(NewDiscoveryParams{})

	tests := []struct {
		url      string
		expected string
	}{
		{"https://github.com/acme/go-service.git", "repoconf-go-service"},
		{"https://github.com/acme/go-service", "repoconf-go-service"},
		{"https://github.com/acme/go-service/", "repoconf-go-service"},
		{"git@github.com:acme/rust-lib.git", "repoconf-rust-lib"},
		{"ssh://git@example.com:2222/team/base.git", "repoconf-base"},
		{"/srv/templates/local", "repoconf-local"},
		{"https://example.com", "repoconf-template"},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.expected, discovery.ManagedNameFromURL(tt.url))
		})
	}
}
