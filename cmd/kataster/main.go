package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/kataster/asset"
	"github.com/lixenwraith/kataster/audio"
	"github.com/lixenwraith/kataster/config"
	"github.com/lixenwraith/kataster/core"
	"github.com/lixenwraith/kataster/engine"
	"github.com/lixenwraith/kataster/engine/services"
	"github.com/lixenwraith/kataster/event"
	"github.com/lixenwraith/kataster/input"
	"github.com/lixenwraith/kataster/manifest"
	"github.com/lixenwraith/kataster/parameter"
	"github.com/lixenwraith/kataster/render"
	"github.com/lixenwraith/kataster/render/renderer"
	"github.com/lixenwraith/kataster/score"
	"github.com/lixenwraith/kataster/status"
)

var (
	configFlag  = flag.String("config", "", "YAML config file (default kataster.yaml when present)")
	statesFlag  = flag.String("states", "", "YAML state graph overriding the built-in one")
	debugFlag   = flag.Bool("debug", false, "write logs to logs/kataster.log")
	metricsFlag = flag.String("metrics-addr", "", "serve Prometheus metrics on this address, e.g. :2112")
	muteFlag    = flag.Bool("mute", false, "start with sound muted")
	dbFlag      = flag.String("db", "", "high score database path, empty value from config")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return 2
	}
	flag.Visit(func(f *flag.Flag) {
		applyFlag(cfg, f.Name)
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return 2
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	keys, err := input.BuildKeyTable(cfg.Keys)
	if err != nil {
		fmt.Fprintf(os.Stderr, "keys: %v\n", err)
		return 2
	}

	clock := engine.NewPausableClock()
	reg := status.NewRegistry()
	world := newWorld(cfg, clock, reg)

	hub := services.NewHub()
	for _, svc := range []services.Service{
		score.NewService(cfg.Score.Path),
		audio.NewService(cfg.Audio.Enabled, cfg.Audio.Muted, cfg.Audio.Volume),
		status.NewMetricsService(reg, cfg.Metrics.Addr),
	} {
		if err := hub.Register(svc); err != nil {
			fmt.Fprintf(os.Stderr, "services: %v\n", err)
			return 1
		}
	}
	if err := hub.InitAll(world); err != nil {
		fmt.Fprintf(os.Stderr, "services: %v\n", err)
		return 1
	}
	engine.BindResources(world)
	if err := hub.StartAll(); err != nil {
		fmt.Fprintf(os.Stderr, "services: %v\n", err)
		return 1
	}
	defer hub.StopAll()

	systems := manifest.RegisterSystems(world)

	frameReady := make(chan struct{}, 1)
	scheduler, updateDone := engine.NewClockScheduler(world, clock, cfg.TickInterval(), frameReady)
	scheduler.RegisterSystemHandlers()
	quit := newQuitHandler()
	scheduler.RegisterEventHandler(quit)
	if err := scheduler.LoadFSM(asset.DefaultStateConfig, cfg.States, manifest.RegisterFSMComponents(clock)); err != nil {
		fmt.Fprintf(os.Stderr, "states: %v\n", err)
		return 1
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "screen: %v\n", err)
		return 1
	}
	core.SetTerminalReset(screen.Fini)
	defer screen.Fini()
	screen.HideCursor()

	orchestrator := render.NewRenderOrchestrator(screen)
	orchestrator.Register(renderer.NewBackgroundRenderer(systems.Background), render.PriorityBackground)
	orchestrator.Register(renderer.NewBorderRenderer(), render.PriorityBorder)
	orchestrator.Register(renderer.NewSpriteRenderer(world), render.PriorityEntities)
	orchestrator.Register(renderer.NewExplosionRenderer(world), render.PriorityEffects)
	orchestrator.Register(renderer.NewTextRenderer(world), render.PriorityUI)
	orchestrator.Register(renderer.NewNoticeRenderer(), render.PriorityOverlay)

	router := input.NewRouter(world, keys, clock.RealTime)

	// PollEvent returns nil once the screen is finalized
	events := make(chan tcell.Event, 64)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	frameReady <- struct{}{}
	scheduler.Start()
	defer scheduler.Stop()
	log.Printf("kataster running, arena %dx%d, %d ticks/s", cfg.Arena.Width, cfg.Arena.Height, cfg.TickRate)

	frameTicker := time.NewTicker(parameter.FrameUpdateInterval)
	defer frameTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Printf("signal received, shutting down")
			return 0

		case <-quit.Done():
			log.Printf("quit requested")
			return 0

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				router.HandleKey(ev)
			case *tcell.EventResize:
				w, h := ev.Size()
				orchestrator.Resize(w, h)
			}

		case <-frameTicker.C:
			// Drain the completion signal so the next tick waits on this frame
			select {
			case <-updateDone:
			default:
			}

			orchestrator.RenderFrame(world)

			select {
			case frameReady <- struct{}{}:
			default:
			}
		}
	}
}

// applyFlag overlays an explicitly set command line flag onto cfg
func applyFlag(cfg *config.Config, name string) {
	switch name {
	case "states":
		cfg.States = *statesFlag
	case "debug":
		cfg.Debug = *debugFlag
	case "metrics-addr":
		cfg.Metrics.Addr = *metricsFlag
	case "mute":
		cfg.Audio.Muted = *muteFlag
	case "db":
		cfg.Score.Path = *dbFlag
	}
}

// quitHandler closes Done on the first quit request
type quitHandler struct {
	once sync.Once
	done chan struct{}
}

func newQuitHandler() *quitHandler {
	return &quitHandler{done: make(chan struct{})}
}

func (q *quitHandler) EventTypes() []event.EventType {
	return []event.EventType{event.EventQuitRequest}
}

func (q *quitHandler) HandleEvent(event.GameEvent) {
	q.once.Do(func() {
		close(q.done)
	})
}

func (q *quitHandler) Done() <-chan struct{} {
	return q.done
}
