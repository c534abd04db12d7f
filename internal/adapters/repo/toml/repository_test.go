package toml

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/gathering-relay/internal/domain"
)

func newTestRepository(t *testing.T, linksPath string) *LinkRepository {
	t.Helper()

	config := viper.New()
	config.Set("links.path", linksPath)

	repo, err := NewLinkRepository(config)
	require.NoError(t, err)
	return repo
}

func TestLinkRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "links.toml"))
	updated := time.Date(2026, 10, 1, 20, 0, 0, 0, time.UTC)

	first := domain.IdentityLink{UserID: "200", Identities: []string{"Rider", "Scout"}, UpdatedAt: updated}
	second := domain.IdentityLink{UserID: "100", Identities: []string{"Warden"}, UpdatedAt: updated}

	require.NoError(t, repo.Save(context.Background(), first))
	require.NoError(t, repo.Save(context.Background(), second))

	got, err := repo.GetByUserID(context.Background(), first.UserID)
	require.NoError(t, err)
	assert.Equal(t, first, got)

	links, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.IdentityLink{second, first}, links, "listed by user id")
}

func TestLinkRepositorySaveReplacesExistingLink(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "links.toml"))

	require.NoError(t, repo.Save(context.Background(), domain.IdentityLink{UserID: "100", Identities: []string{"Rider"}}))
	require.NoError(t, repo.Save(context.Background(), domain.IdentityLink{UserID: "100", Identities: []string{"Scout"}}))

	links, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, []string{"Scout"}, links[0].Identities)
}

func TestLinkRepositoryRemove(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "links.toml"))
	require.NoError(t, repo.Save(context.Background(), domain.IdentityLink{UserID: "100", Identities: []string{"Rider"}}))
	require.NoError(t, repo.Save(context.Background(), domain.IdentityLink{UserID: "200", Identities: []string{"Scout"}}))

	require.NoError(t, repo.Remove(context.Background(), "100"))
	_, err := repo.GetByUserID(context.Background(), "100")
	require.ErrorIs(t, err, domain.ErrIdentityLinkNotFound)

	err = repo.Remove(context.Background(), "100")
	require.ErrorIs(t, err, domain.ErrIdentityLinkNotFound)

	links, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, domain.UserID("200"), links[0].UserID)
}

func TestLinkRepositoryDefaultPathAndPermissions(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	repo, err := NewLinkRepository(viper.New())
	require.NoError(t, err)

	require.NoError(t, repo.Save(context.Background(), domain.IdentityLink{UserID: "100", Identities: []string{"Rider"}}))

	linksPath := filepath.Join(configHome, "gathering", "links.toml")
	assert.Equal(t, linksPath, repo.Path())
	info, err := os.Stat(linksPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestLinkRepositoryMissingFileBehaviors(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "missing", "links.toml"))

	links, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, links)

	_, err = repo.GetByUserID(context.Background(), "100")
	require.ErrorIs(t, err, domain.ErrIdentityLinkNotFound)
}

func TestLinkRepositoryMalformedTOMLReturnsError(t *testing.T) {
	t.Parallel()

	linksPath := filepath.Join(t.TempDir(), "links.toml")
	require.NoError(t, os.WriteFile(linksPath, []byte("links = ["), 0o600))

	_, err := newTestRepository(t, linksPath).List(context.Background())
	assert.ErrorContains(t, err, "decode links file")
}

func TestLinkRepositoryFutureSchemaVersionReturnsError(t *testing.T) {
	t.Parallel()

	linksPath := filepath.Join(t.TempDir(), "links.toml")
	require.NoError(t, os.WriteFile(linksPath, []byte(strings.Join([]string{
		"version = 999",
		"",
		"links = []",
		"",
	}, "\n")), 0o600))

	_, err := newTestRepository(t, linksPath).List(context.Background())
	assert.ErrorContains(t, err, "unsupported links schema version")
}

func TestLinkRepositorySerializedTOMLIncludesVersion(t *testing.T) {
	t.Parallel()

	linksPath := filepath.Join(t.TempDir(), "links.toml")
	repo := newTestRepository(t, linksPath)

	require.NoError(t, repo.Save(context.Background(), domain.IdentityLink{UserID: "100", Identities: []string{"Rider"}}))

	data, err := os.ReadFile(linksPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")
	assert.Contains(t, string(data), "user_id = '100'")
}

func TestLinkRepositorySaveCanceledContextReturnsContextError(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "links.toml"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.Save(ctx, domain.IdentityLink{UserID: "100", Identities: []string{"Rider"}})
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestLinkRepositoryConcurrentSavesAcrossInstances(t *testing.T) {
	t.Parallel()

	linksPath := filepath.Join(t.TempDir(), "links.toml")
	repoA := newTestRepository(t, linksPath)
	repoB := newTestRepository(t, linksPath)

	const perRepoWrites = 50
	start := make(chan struct{})
	errCh := make(chan error, perRepoWrites*2)
	var wg sync.WaitGroup
	wg.Add(2)

	write := func(repo *LinkRepository, prefix string) {
		defer wg.Done()
		<-start
		for i := 0; i < perRepoWrites; i++ {
			errCh <- repo.Save(context.Background(), domain.IdentityLink{
				UserID:     domain.UserID(prefix + strconv.Itoa(i)),
				Identities: []string{prefix},
			})
		}
	}
	go write(repoA, "a-")
	go write(repoB, "b-")

	close(start)
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	links, err := repoA.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, links, perRepoWrites*2)
}
