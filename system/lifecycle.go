package system

import (
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/lixenwraith/kataster/component"
	"github.com/lixenwraith/kataster/engine"
	"github.com/lixenwraith/kataster/parameter"
)

// State entry routines, bound to FSM on_enter actions by the manifest

// StartMenu spawns the title screen
func StartMenu(w *engine.World) {
	tag := component.ForStateComponent{Region: engine.RegionApp, States: []string{engine.AppStartMenu}}
	h := w.Resources.Arena.Height

	best := w.Resources.Run.Best
	if kept := w.Resources.Score.Best(); kept > best {
		best = kept
		w.Resources.Run.Best = kept
	}

	spawnText(w, tag, component.UITextComponent{Text: "K A T A S T E R", Row: h / 3, Centered: true, Style: component.UIStyleTitle})
	spawnText(w, tag, component.UITextComponent{Text: "Press Enter to start", Row: h/3 + 3, Centered: true, Style: component.UIStylePrompt})
	spawnText(w, tag, component.UITextComponent{Text: fmt.Sprintf("BEST %06d", best), Row: h/3 + 5, Centered: true, Style: component.UIStyleInfo})
	for i, entry := range w.Resources.Score.Top(parameter.HighScoreRows) {
		spawnText(w, tag, component.UITextComponent{
			Text:     fmt.Sprintf("%d. %06d  L%d", i+1, entry.Score, entry.Level),
			Row:      h/3 + 7 + i,
			Centered: true,
			Style:    component.UIStyleHUD,
		})
	}
	spawnText(w, tag, component.UITextComponent{Text: "arrows/wasd move  space fire  p pause  m mute  q quit", Row: -2, Centered: true, Style: component.UIStyleInfo})
}

// PauseMenu spawns the pause overlay
func PauseMenu(w *engine.World) {
	tag := component.ForStateComponent{Region: engine.RegionGame, States: []string{engine.GamePause}}
	h := w.Resources.Arena.Height

	spawnText(w, tag, component.UITextComponent{Text: "PAUSED", Row: h / 2, Centered: true, Style: component.UIStyleTitle})
	spawnText(w, tag, component.UITextComponent{Text: "p resume  Enter menu", Row: h/2 + 2, Centered: true, Style: component.UIStylePrompt})
}

// GameOverMenu spawns the game over screen with the final score
func GameOverMenu(w *engine.World) {
	tag := component.ForStateComponent{Region: engine.RegionGame, States: []string{engine.GameGameOver}}
	h := w.Resources.Arena.Height
	run := w.Resources.Run

	spawnText(w, tag, component.UITextComponent{Text: "GAME OVER", Row: h / 2, Centered: true, Style: component.UIStyleTitle})
	spawnText(w, tag, component.UITextComponent{Text: fmt.Sprintf("SCORE %06d  LEVEL %d", run.Score, run.Level), Row: h/2 + 2, Centered: true, Style: component.UIStyleInfo})
	spawnText(w, tag, component.UITextComponent{Text: "Enter to return to menu", Row: h/2 + 4, Centered: true, Style: component.UIStylePrompt})
}

// GameUISpawn creates the HUD fields refreshed by HUDSystem
func GameUISpawn(w *engine.World) {
	tag := gameplayTag()
	spawnText(w, tag, component.UITextComponent{Row: 0, Col: 1, Style: component.UIStyleHUD, Field: component.UIFieldScore})
	spawnText(w, tag, component.UITextComponent{Row: 0, Centered: true, Style: component.UIStyleHUD, Field: component.UIFieldLevel})
	spawnText(w, tag, component.UITextComponent{Row: 0, Col: -1, Style: component.UIStyleHUD, Field: component.UIFieldLives})
}

// DespawnForState destroys entities tagged for region whose tag excludes the region's current state
func DespawnForState(w *engine.World, region string) {
	current := w.Resources.State.Get(region)
	for _, e := range w.Components.ForState.GetAllEntities() {
		tag, ok := w.Components.ForState.GetComponent(e)
		if !ok || tag.Region != region || tag.Alive(current) {
			continue
		}
		if w.Components.Enemy.HasEntity(e) && w.Resources.Enemies.Count > 0 {
			w.Resources.Enemies.Count--
		}
		w.DestroyEntity(e)
	}
}

// SetupArena starts a new run: fresh run state, ship at the centre, no enemies
func SetupArena(w *engine.World) {
	cfg := w.Resources.Config
	run := w.Resources.Run

	best := run.Best
	if kept := w.Resources.Score.Best(); kept > best {
		best = kept
	}
	run.Reset(uuid.NewString(), cfg.StartLives, w.Resources.Time.RealTime)
	run.Best = best

	w.Resources.Enemies.Count = 0
	w.Resources.Input.ReleaseAll()
	SpawnShip(w, false)

	log.Printf("run %s started, lives %d", run.RunID, run.Lives)
}

// RecordScore submits the finished run once
func RecordScore(w *engine.World) {
	run := w.Resources.Run
	if run.Recorded || run.RunID == "" {
		return
	}
	run.Recorded = true
	w.Resources.Score.Submit(run.RunID, run.Score, run.Level, run.StartedAt)
	log.Printf("run %s over, score %d level %d", run.RunID, run.Score, run.Level)
}

func spawnText(w *engine.World, tag component.ForStateComponent, text component.UITextComponent) {
	e := w.CreateEntity()
	w.Components.UIText.SetComponent(e, text)
	w.Components.ForState.SetComponent(e, tag)
}
