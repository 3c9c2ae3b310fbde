package serverapp

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rakhmonovquvonchbek/taskemon/internal/config"
	"github.com/rakhmonovquvonchbek/taskemon/internal/progression"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewHandler_RequiresConfig(t *testing.T) {
	_, err := NewHandler(Options{})
	assert.Error(t, err)
}

func TestNewHandler_ServesHealthAndAPI(t *testing.T) {
	h, err := NewHandler(Options{Config: config.Default(), Logger: discardLogger()})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"service":"taskemon"`)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/quests", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "daily_water")
}

func TestNewStore_UsesCatalogAndUnlockMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
quests:
  - id: stretch
    title: Stretch
    category: health
    xp_reward: 5
  - id: breathe
    title: Breathe
    category: personal
    xp_reward: 5
achievements:
  - id: limber
    requirements:
      - type: quest_complete
        value: 1
    rewards:
      xp: 1
`), 0o644))

	cfg := config.Default()
	cfg.Progression.CatalogPath = path
	cfg.Progression.UnlockMode = progression.UnlockModePerPlayer

	ctx := context.Background()
	store, err := NewStore(ctx, cfg, nil, discardLogger())
	require.NoError(t, err)

	quests := store.Quests(ctx)
	require.Len(t, quests, 2)
	assert.Equal(t, "breathe", quests[0].ID)

	a, err := store.CreatePlayer(ctx, progression.NewPlayer{Name: "A", Class: progression.ClassScholar})
	require.NoError(t, err)
	b, err := store.CreatePlayer(ctx, progression.NewPlayer{Name: "B", Class: progression.ClassScholar})
	require.NoError(t, err)

	assert.Equal(t, []string{"limber"}, store.CompleteQuest(ctx, a.ID, "stretch").UnlockedAchievements)
	assert.Equal(t, []string{"limber"}, store.CompleteQuest(ctx, b.ID, "breathe").UnlockedAchievements)
}

func TestNewStore_BadCatalog(t *testing.T) {
	cfg := config.Default()
	cfg.Progression.CatalogPath = filepath.Join(t.TempDir(), "missing.yaml")

	_, err := NewStore(context.Background(), cfg, nil, discardLogger())
	assert.Error(t, err)
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	h, err := NewHandler(Options{Config: config.Default(), Logger: discardLogger()})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Serve(ctx, ln, time.Second, h, discardLogger()) }()

	url := "http://" + ln.Addr().String() + "/healthz"
	require.Eventually(t, func() bool {
		res, err := http.Get(url)
		if err != nil {
			return false
		}
		defer res.Body.Close()
		body, _ := io.ReadAll(res.Body)
		return res.StatusCode == http.StatusOK && strings.Contains(string(body), `"ok":true`)
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
}
