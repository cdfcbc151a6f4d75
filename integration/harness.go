package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apirest "github.com/junyi0906/immortal-cultivation-game/api/rest"
	"github.com/junyi0906/immortal-cultivation-game/audit"
	"github.com/junyi0906/immortal-cultivation-game/config"
	"github.com/junyi0906/immortal-cultivation-game/engine"
	"github.com/junyi0906/immortal-cultivation-game/game/battle"
	"github.com/junyi0906/immortal-cultivation-game/testutil"
	"gorm.io/gorm"
)

// TestServer wraps a real HTTP server with the whole game wired together.
type TestServer struct {
	DB     *gorm.DB
	Engine *engine.Engine
	Audit  *audit.Service
	Server *httptest.Server
	URL    string // http://127.0.0.1:<port>
}

// NewTestServer creates a fully wired game server for integration testing.
// It mirrors the dependency wiring in main.go.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	auditSvc := audit.New(db, logger)
	t.Cleanup(func() { auditSvc.Stop(nil) })

	// A fixed seed keeps monster behavior reproducible across runs.
	eng := engine.New(engine.Config{
		Store:  testutil.SetupTestStore(t),
		Logger: logger,
		RNG:    battle.NewSource(1),
	})

	cfg := &config.Config{}
	cfg.Server.Debug = true
	cfg.Security.RateLimitRPS = 1000
	cfg.Security.RateLimitBurst = 2000

	srv := httptest.NewServer(apirest.NewRouter(eng, cfg, logger, auditSvc))
	t.Cleanup(srv.Close)

	return &TestServer{
		DB:     db,
		Engine: eng,
		Audit:  auditSvc,
		Server: srv,
		URL:    srv.URL,
	}
}

// PostJSON sends a POST with a JSON body and decodes the JSON response.
func (ts *TestServer) PostJSON(t *testing.T, path string, body any) (int, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	resp, err := http.Post(ts.URL+path, "application/json", &buf)
	require.NoError(t, err)
	return decode(t, resp)
}

// PostRaw sends a POST with a prebuilt body.
func (ts *TestServer) PostRaw(t *testing.T, path string, raw []byte) (int, map[string]any) {
	t.Helper()
	resp, err := http.Post(ts.URL+path, "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	return decode(t, resp)
}

// GetJSON sends a GET and decodes the JSON response.
func (ts *TestServer) GetJSON(t *testing.T, path string) (int, map[string]any) {
	t.Helper()
	resp, err := http.Get(ts.URL + path)
	require.NoError(t, err)
	return decode(t, resp)
}

func decode(t *testing.T, resp *http.Response) (int, map[string]any) {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &body), "body: %s", raw)
	}
	return resp.StatusCode, body
}

// NewGame initializes a fresh game with a level-1 character.
func (ts *TestServer) NewGame(t *testing.T, name, class string) {
	t.Helper()
	code, _ := ts.PostJSON(t, "/api/game/init", map[string]any{"load_save": false})
	require.Equal(t, http.StatusOK, code)
	code, body := ts.PostJSON(t, "/api/game/character", map[string]any{"name": name, "class": class})
	require.Equal(t, http.StatusOK, code, "create character: %v", body)
}

// FightToVictory runs player and monster turns until the battle ends, failing
// the test if the player loses or the fight runs away.
func (ts *TestServer) FightToVictory(t *testing.T, monsterType string) {
	t.Helper()
	code, body := ts.PostJSON(t, "/api/battle/start", map[string]any{"monster_type": monsterType})
	require.Equal(t, http.StatusOK, code, "start battle: %v", body)

	for i := 0; i < 200; i++ {
		code, body = ts.PostJSON(t, "/api/battle/attack", nil)
		require.Equal(t, http.StatusOK, code, "attack: %v", body)
		result := body["result"].(map[string]any)
		switch result["state"].(string) {
		case "victory":
			return
		case "defeat":
			t.Fatalf("player was defeated by %s", monsterType)
		}

		code, body = ts.PostJSON(t, "/api/battle/monster-turn", nil)
		require.Equal(t, http.StatusOK, code, "monster turn: %v", body)
		result = body["result"].(map[string]any)
		if result["state"].(string) == "defeat" {
			t.Fatalf("player was defeated by %s", monsterType)
		}
	}
	t.Fatalf("battle against %s did not finish", monsterType)
}

// PlayerState fetches the player snapshot out of the game state.
func (ts *TestServer) PlayerState(t *testing.T) map[string]any {
	t.Helper()
	code, body := ts.GetJSON(t, "/api/game/state")
	require.Equal(t, http.StatusOK, code)
	state := body["state"].(map[string]any)
	player, _ := state["player"].(map[string]any)
	require.NotNil(t, player, "state: %v", state)
	return player
}

// Fint reads a JSON number field as int.
func Fint(m map[string]any, key string) int {
	v, ok := m[key].(float64)
	if !ok {
		return 0
	}
	return int(v)
}
