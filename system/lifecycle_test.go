package system

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/kataster/component"
	"github.com/lixenwraith/kataster/engine"
	"github.com/lixenwraith/kataster/parameter"
)

func uiTexts(w *engine.World) []component.UITextComponent {
	var out []component.UITextComponent
	for _, e := range w.Components.UIText.GetAllEntities() {
		t, _ := w.Components.UIText.GetComponent(e)
		out = append(out, t)
	}
	return out
}

func TestSetupArenaStartsRun(t *testing.T) {
	w, _ := engine.NewTestWorld(testWidth, testHeight)
	w.Resources.Run.Score = 500
	w.Resources.Run.Best = 900
	w.Resources.Enemies.Count = 3

	SetupArena(w)

	run := w.Resources.Run
	assert.Equal(t, 0, run.Score)
	assert.Equal(t, 3, run.Lives)
	assert.Equal(t, 1, run.Level)
	assert.Equal(t, 900, run.Best)
	assert.NotEmpty(t, run.RunID)
	assert.Zero(t, w.Resources.Enemies.Count)

	ships := w.Components.Player.GetAllEntities()
	require.Len(t, ships, 1)
	assert.True(t, w.Resources.Player.On)
	assert.False(t, w.Components.Blink.HasEntity(ships[0]), "first ship does not blink")

	kin, ok := w.Components.Kinetic.GetComponent(ships[0])
	require.True(t, ok)
	cx, cy := w.Resources.Arena.Center()
	assert.Equal(t, cx, kin.PreciseX)
	assert.Equal(t, cy, kin.PreciseY)
}

func TestDespawnForStateKeepsCurrentStateEntities(t *testing.T) {
	w, _ := engine.NewTestWorld(testWidth, testHeight)

	StartMenu(w)
	menuCount := w.Components.UIText.CountEntities()
	require.Greater(t, menuCount, 0)

	w.Resources.State.Set(engine.RegionApp, engine.AppGame)
	GameUISpawn(w)
	DespawnForState(w, engine.RegionApp)

	for _, text := range uiTexts(w) {
		assert.NotEqual(t, component.UIFieldStatic, text.Field, "menu text should be gone: %q", text.Text)
	}
	assert.Equal(t, 3, w.Components.UIText.CountEntities())

	// Game region entities are untouched by an app region despawn
	w.Resources.State.Set(engine.RegionGame, engine.GamePause)
	PauseMenu(w)
	w.Resources.State.Set(engine.RegionGame, engine.GameRunning)
	DespawnForState(w, engine.RegionApp)
	assert.Equal(t, 5, w.Components.UIText.CountEntities())

	DespawnForState(w, engine.RegionGame)
	assert.Equal(t, 3, w.Components.UIText.CountEntities())
}

func TestDespawnReleasesEnemySlots(t *testing.T) {
	w := newPlayingWorld(t)
	e := w.CreateEntity()
	w.Components.Enemy.SetComponent(e, component.EnemyComponent{})
	w.Components.ForState.SetComponent(e, gameplayTag())
	w.Resources.Enemies.Count = 1

	w.Resources.State.Set(engine.RegionApp, engine.AppStartMenu)
	DespawnForState(w, engine.RegionApp)

	assert.False(t, w.HasAnyComponent(e))
	assert.Zero(t, w.Resources.Enemies.Count)
}

func TestMenusShowScores(t *testing.T) {
	w, _ := engine.NewTestWorld(testWidth, testHeight)
	keeper := &recordingKeeper{best: 1234}
	w.Resources.Score.Keeper = keeper

	StartMenu(w)
	var found bool
	for _, text := range uiTexts(w) {
		if text.Text == "BEST 001234" {
			found = true
		}
	}
	assert.True(t, found, "start menu shows persisted best")

	w.Resources.Run.Score = 77
	w.Resources.Run.Level = 2
	GameOverMenu(w)
	found = false
	for _, text := range uiTexts(w) {
		if text.Text == "SCORE 000077  LEVEL 2" {
			found = true
		}
	}
	assert.True(t, found, "game over shows final score")
}

func TestStartMenuListsTopRuns(t *testing.T) {
	w, _ := engine.NewTestWorld(testWidth, testHeight)
	keeper := &recordingKeeper{best: 900}
	for i := 0; i < parameter.HighScoreRows+2; i++ {
		keeper.top = append(keeper.top, engine.ScoreEntry{Score: 900 - i*100, Level: 5 - i/2})
	}
	w.Resources.Score.Keeper = keeper

	StartMenu(w)

	var rows []string
	for _, text := range uiTexts(w) {
		if strings.Contains(text.Text, ". ") {
			rows = append(rows, text.Text)
		}
	}
	slices.Sort(rows)
	require.Len(t, rows, parameter.HighScoreRows)
	assert.Equal(t, "1. 000900  L5", rows[0])
	assert.Equal(t, "5. 000500  L3", rows[4])
}

func TestRecordScoreOncePerRun(t *testing.T) {
	w := newPlayingWorld(t)
	keeper := &recordingKeeper{}
	w.Resources.Score.Keeper = keeper
	w.Resources.Run.Score = 300

	RecordScore(w)
	RecordScore(w)

	assert.Equal(t, []string{"test-run"}, keeper.runs)
	assert.True(t, w.Resources.Run.Recorded)
	assert.Equal(t, 300, keeper.Best())
}
