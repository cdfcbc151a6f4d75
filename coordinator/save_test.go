package coordinator

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/junyi0906/immortal-cultivation-game/errs"
	"github.com/junyi0906/immortal-cultivation-game/game/quest"
	"github.com/junyi0906/immortal-cultivation-game/game/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	c := newCoordinator(t)
	ctx := context.Background()

	state := newState(t)
	state.Player.Level = 4
	state.Player.Gold = 777
	state.Player.Skills = []string{"s1", "h1"}
	state.Player.Inventory = []string{"health_potion"}
	state.Tasks = []quest.Task{quest.Tasks[quest.TaskKillWolf]}
	state.Tasks[0].Progress = 3
	_, _, err := state.World.Unlock(world.MapForest)
	require.NoError(t, err)
	state.World.Current = world.MapForest
	state.BossDefeated = true

	require.NoError(t, c.SaveGame(ctx, state))
	assert.False(t, state.LastSaveTime.IsZero())

	loaded, err := c.LoadGame(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, loaded.Player.Level)
	assert.Equal(t, 777, loaded.Player.Gold)
	assert.Equal(t, []string{"s1", "h1"}, loaded.Player.Skills)
	assert.Equal(t, []string{"health_potion"}, loaded.Player.Inventory)
	assert.Equal(t, world.MapForest, loaded.World.Current)
	assert.True(t, loaded.World.IsUnlocked(world.MapForest))
	assert.Equal(t, 3, loaded.Tasks[0].Progress)
	assert.True(t, loaded.BossDefeated)
}

func TestSaveEnvelopeFormat(t *testing.T) {
	c := newCoordinator(t)
	ctx := context.Background()
	require.NoError(t, c.SaveGame(ctx, newState(t)))

	raw, err := c.store.Get(ctx, SaveKey)
	require.NoError(t, err)

	var env map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &env))
	assert.Contains(t, env, "gameState")
	assert.Contains(t, env, "saveTime")

	var version string
	require.NoError(t, json.Unmarshal(env["version"], &version))
	assert.Equal(t, "1.0.0", version)

	assert.True(t, ValidateSaveGame(env["gameState"]))
}

func TestLoadGameMissing(t *testing.T) {
	c := newCoordinator(t)
	_, err := c.LoadGame(context.Background())
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.KindNotFound))
}

func TestLoadGameCorrupted(t *testing.T) {
	c := newCoordinator(t)
	ctx := context.Background()

	require.NoError(t, c.store.Put(ctx, SaveKey, []byte(`{"gameState":{},"version":"1.0.0"}`), SaveVersion, time.Now()))
	_, err := c.LoadGame(ctx)
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.KindPersistence))
}

func TestHasSaveAndDelete(t *testing.T) {
	c := newCoordinator(t)
	ctx := context.Background()

	ok, err := c.HasSave(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.SaveGame(ctx, newState(t)))
	ok, err = c.HasSave(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, c.DeleteSave(ctx))
	ok, err = c.HasSave(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestInitFallsBackToNewGame(t *testing.T) {
	c := newCoordinator(t)
	ctx := context.Background()

	state, loaded := c.Init(ctx)
	assert.False(t, loaded)
	require.NotNil(t, state)
	assert.Nil(t, state.Player)
	assert.Equal(t, world.MapVillage, state.World.Current)

	// a corrupted save still starts a fresh game
	require.NoError(t, c.store.Put(ctx, SaveKey, []byte(`garbage`), SaveVersion, time.Now()))
	state, loaded = c.Init(ctx)
	assert.False(t, loaded)
	require.NotNil(t, state)
}

func TestInitRestoresSave(t *testing.T) {
	c := newCoordinator(t)
	ctx := context.Background()

	orig := newState(t)
	orig.Player.Gold = 4321
	require.NoError(t, c.SaveGame(ctx, orig))

	state, loaded := c.Init(ctx)
	assert.True(t, loaded)
	assert.Equal(t, 4321, state.Player.Gold)
}

func TestValidateSaveGame(t *testing.T) {
	valid := json.RawMessage(`{
		"player":{"id":"player1","name":"a","class":"mage","level":1,"exp":0,"hp":80,"attack":8,"defense":3,"gold":100},
		"currentMap":"village","inventory":[],"skills":[],"tasks":[],"equipment":{}
	}`)
	assert.True(t, ValidateSaveGame(valid))

	assert.False(t, ValidateSaveGame(json.RawMessage(`{}`)))
	assert.False(t, ValidateSaveGame(json.RawMessage(`null`)))
	assert.False(t, ValidateSaveGame(json.RawMessage(`"string"`)))
	assert.False(t, ValidateSaveGame(json.RawMessage(`{"player":null,"currentMap":"v","inventory":[],"skills":[],"tasks":[],"equipment":{}}`)))

	// dropping any one required field invalidates the save
	missingMap := json.RawMessage(`{
		"player":{"id":"p","name":"a","class":"mage","level":1,"exp":0,"hp":80,"attack":8,"defense":3,"gold":100},
		"inventory":[],"skills":[],"tasks":[],"equipment":{}
	}`)
	assert.False(t, ValidateSaveGame(missingMap))

	missingPlayerField := json.RawMessage(`{
		"player":{"id":"p","name":"a","class":"mage","level":1,"exp":0,"hp":80,"attack":8,"defense":3},
		"currentMap":"village","inventory":[],"skills":[],"tasks":[],"equipment":{}
	}`)
	assert.False(t, ValidateSaveGame(missingPlayerField))
}
