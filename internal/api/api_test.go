package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warzonemc/mars/internal/api"
	"github.com/warzonemc/mars/internal/api/handler"
	"github.com/warzonemc/mars/internal/api/response"
	"github.com/warzonemc/mars/internal/leaderboard"
	"github.com/warzonemc/mars/internal/model"
	"github.com/warzonemc/mars/internal/services/identity"
	"github.com/warzonemc/mars/internal/storage/memory"
	"github.com/warzonemc/mars/internal/testutil"
)

// testServer wires the router against in-process backends
type testServer struct {
	handler     http.Handler
	store       *memory.Store
	leaderboard *leaderboard.Leaderboard
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := testutil.NopLogger()

	store := memory.New()

	mini := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mini.Addr()})
	lb := leaderboard.NewWithClient(client, logger)
	t.Cleanup(func() { _ = lb.Close() })

	router := api.NewRouter(api.RouterConfig{
		Logger:          logger,
		PlayerStore:     store,
		IdentityService: identity.New(store, 0, logger),
		Leaderboard:     lb,
		Stores:          []handler.Pinger{store, lb},
	})

	return &testServer{
		handler:     router,
		store:       store,
		leaderboard: lb,
	}
}

func (ts *testServer) request(method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func seedPlayer(ts *testServer, id, name string, ips ...string) *model.Player {
	player := &model.Player{
		ID:        id,
		Name:      name,
		NameLower: strings.ToLower(name),
		IPs:       ips,
	}
	ctx := context.Background()
	ts.store.SavePlayer(ctx, player)
	for _, ip := range ips {
		ts.store.RecordIPIdentity(ctx, id, ip)
	}
	return player
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(http.MethodGet, "/api/v1/health")
	require.Equal(t, http.StatusOK, rec.Code)

	health := decode[response.HealthResponse](t, rec)
	assert.Equal(t, "ok", health.Status)
}

func TestGetPlayer(t *testing.T) {
	ts := newTestServer(t)
	player := seedPlayer(ts, "p1", "steve", "10.0.0.1")
	player.Notes = []model.StaffNote{{ID: 1, Content: "watch this one"}}
	ts.store.SavePlayer(context.Background(), player)

	rec := ts.request(http.MethodGet, "/api/v1/players/p1")
	require.Equal(t, http.StatusOK, rec.Code)

	got := decode[model.Player](t, rec)
	assert.Equal(t, "p1", got.ID)
	assert.Equal(t, "steve", got.Name)

	// Sanitization strips IPs and notes.
	assert.Nil(t, got.IPs)
	assert.Nil(t, got.Notes)
}

func TestGetPlayerByName(t *testing.T) {
	ts := newTestServer(t)
	seedPlayer(ts, "p1", "steve")

	rec := ts.request(http.MethodGet, "/api/v1/players/STEVE")
	require.Equal(t, http.StatusOK, rec.Code)

	got := decode[model.Player](t, rec)
	assert.Equal(t, "p1", got.ID)
}

func TestGetPlayerNotFound(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(http.MethodGet, "/api/v1/players/nobody")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAlts(t *testing.T) {
	ts := newTestServer(t)
	seedPlayer(ts, "p1", "steve", "10.0.0.1")
	seedPlayer(ts, "p2", "alex", "10.0.0.1")

	rec := ts.request(http.MethodGet, "/api/v1/players/p1/alts")
	require.Equal(t, http.StatusOK, rec.Code)

	got := decode[response.AltsResponse](t, rec)
	require.Len(t, got.Alts, 2)
	assert.Equal(t, "p1", got.Alts[0].ID)
	assert.Equal(t, "p2", got.Alts[1].ID)
	for _, alt := range got.Alts {
		assert.Nil(t, alt.IPs)
	}
}

func TestPunishments(t *testing.T) {
	ts := newTestServer(t)
	player := seedPlayer(ts, "p1", "steve")

	punishment := model.NewPunishment(player.Simple(), nil, "spam", time.Hour)
	ts.store.InsertPunishment(context.Background(), punishment)

	rec := ts.request(http.MethodGet, "/api/v1/players/p1/punishments")
	require.Equal(t, http.StatusOK, rec.Code)

	got := decode[response.PunishmentsResponse](t, rec)
	require.Len(t, got.Punishments, 1)
	assert.Equal(t, "spam", got.Punishments[0].Reason)
}

func TestPunishmentsEmpty(t *testing.T) {
	ts := newTestServer(t)
	seedPlayer(ts, "p1", "steve")

	rec := ts.request(http.MethodGet, "/api/v1/players/p1/punishments")
	require.Equal(t, http.StatusOK, rec.Code)

	got := decode[response.PunishmentsResponse](t, rec)
	assert.NotNil(t, got.Punishments)
	assert.Empty(t, got.Punishments)
}

func TestActiveSession(t *testing.T) {
	ts := newTestServer(t)
	player := seedPlayer(ts, "p1", "steve")

	session := model.NewSession(player.Simple(), "10.0.0.1")
	ts.store.InsertSession(context.Background(), session)

	rec := ts.request(http.MethodGet, "/api/v1/players/p1/session")
	require.Equal(t, http.StatusOK, rec.Code)

	got := decode[model.Session](t, rec)
	assert.Equal(t, session.ID, got.ID)
	assert.Equal(t, "p1", got.Player.ID)
	assert.Nil(t, got.EndedAt)
}

func TestActiveSessionNotFound(t *testing.T) {
	ts := newTestServer(t)
	player := seedPlayer(ts, "p1", "steve")

	ended := model.NewSession(player.Simple(), "10.0.0.1")
	ended.End(time.Now())
	ts.store.InsertSession(context.Background(), ended)

	rec := ts.request(http.MethodGet, "/api/v1/players/p1/session")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeletePlayer(t *testing.T) {
	ts := newTestServer(t)
	seedPlayer(ts, "p1", "steve")

	rec := ts.request(http.MethodDelete, "/api/v1/players/p1")
	require.Equal(t, http.StatusOK, rec.Code)

	got := decode[response.DeleteResponse](t, rec)
	assert.Equal(t, int64(1), got.Deleted)

	rec = ts.request(http.MethodDelete, "/api/v1/players/p1")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLeaderboardTop(t *testing.T) {
	ts := newTestServer(t)
	ts.leaderboard.Increment(context.Background(), model.ScoreKills, "p1/steve", 10)
	ts.leaderboard.Increment(context.Background(), model.ScoreKills, "p2/alex", 25)

	rec := ts.request(http.MethodGet, "/api/v1/leaderboards/kills")
	require.Equal(t, http.StatusOK, rec.Code)

	got := decode[response.LeaderboardResponse](t, rec)
	assert.Equal(t, model.ScoreKills, got.Score)
	require.Len(t, got.Entries, 2)
	assert.Equal(t, "alex", got.Entries[0].Name)
	assert.Equal(t, uint64(25), got.Entries[0].Score)
}

func TestLeaderboardUnknownScore(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(http.MethodGet, "/api/v1/leaderboards/bogus")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLeaderboardBadLimit(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(http.MethodGet, "/api/v1/leaderboards/kills?limit=-3")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
