package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/spaghettifunk/vecmath/engine/config"
	"github.com/spaghettifunk/vecmath/engine/core"
)

type EngineStage uint8

const (
	EngineStageUninitialized EngineStage = iota
	EngineStageInitialized
	EngineStageRunning
	EngineStageShuttingDown
)

type Engine struct {
	currentStage EngineStage
	gameInstance *Game
	config       *config.Config
	events       *core.EventSystem
	watcher      *config.Watcher
	clock        *core.Clock
	lastTime     float64

	mutex  sync.Mutex
	cancel context.CancelFunc
}

func New(g *Game) (*Engine, error) {
	if g == nil || g.ApplicationConfig == nil {
		return nil, errors.New("game and application config are required")
	}
	if g.FnInitialize == nil || g.FnUpdate == nil {
		return nil, errors.New("game must provide initialize and update functions")
	}
	queueSize := g.ApplicationConfig.EventQueueSize
	if queueSize <= 0 {
		queueSize = 16
	}
	return &Engine{
		currentStage: EngineStageUninitialized,
		gameInstance: g,
		events:       core.NewEventSystem(queueSize),
		clock:        core.NewClock(),
	}, nil
}

func (e *Engine) Initialize() error {
	cfg := config.Default()
	if path := e.gameInstance.ApplicationConfig.ConfigPath; path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			core.LogError(err.Error())
			return err
		}
		cfg = loaded
	}
	e.applyConfig(cfg)

	// register some events
	e.events.Register(core.EVENT_CODE_APPLICATION_QUIT, e.onEvent)
	e.events.Register(core.EVENT_CODE_CONFIG_RELOADED, e.onConfigReloaded)

	if e.gameInstance.ApplicationConfig.Watch {
		if e.gameInstance.ApplicationConfig.ConfigPath == "" {
			return fmt.Errorf("watch mode: %w", config.ErrEmptyPath)
		}
		w, err := config.NewWatcher(e.gameInstance.ApplicationConfig.ConfigPath, e.fireConfigReloaded)
		if err != nil {
			return err
		}
		e.watcher = w
	}

	if err := e.gameInstance.FnInitialize(e.config); err != nil {
		if e.watcher != nil {
			if cerr := e.watcher.Close(); cerr != nil {
				core.LogWarn("closing config watcher: %s", cerr.Error())
			}
		}
		return err
	}
	e.currentStage = EngineStageInitialized
	core.LogInfo("%s initialized", e.gameInstance.ApplicationConfig.Name)
	return nil
}

// Run performs one update. In watch mode it then blocks, updating again after
// every config reload, until ctx is cancelled or Quit is called.
func (e *Engine) Run(ctx context.Context) error {
	if e.currentStage != EngineStageInitialized {
		return errors.New("engine must be initialized before running")
	}
	e.currentStage = EngineStageRunning

	e.clock.Start()
	e.clock.Update()
	e.lastTime = e.clock.Elapsed().Seconds()

	if err := e.update(); err != nil {
		return err
	}
	if e.watcher == nil {
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	e.mutex.Lock()
	e.cancel = cancel
	e.mutex.Unlock()

	e.watcher.Start(ctx)
	core.LogInfo("watching %s for changes", e.watcher.Path())

	// process all the events around the engine
	e.events.Process(ctx)
	return nil
}

// Quit asks a running engine to return from Run.
func (e *Engine) Quit(ctx context.Context) error {
	return e.events.Fire(ctx, core.EventContext{Type: core.EVENT_CODE_APPLICATION_QUIT})
}

func (e *Engine) Shutdown() error {
	e.currentStage = EngineStageShuttingDown
	var errs []error
	if e.watcher != nil {
		if err := e.watcher.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := e.events.Shutdown(); err != nil {
		errs = append(errs, err)
	}
	if e.gameInstance.FnShutdown != nil {
		if err := e.gameInstance.FnShutdown(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (e *Engine) Config() *config.Config {
	return e.config
}

func (e *Engine) update() error {
	e.clock.Update()
	currentTime := e.clock.Elapsed().Seconds()
	delta := currentTime - e.lastTime

	if err := e.gameInstance.FnUpdate(delta); err != nil {
		core.LogError("game update failed: %s", err.Error())
		return err
	}

	e.lastTime = currentTime
	return nil
}

func (e *Engine) applyConfig(cfg *config.Config) {
	e.config = cfg
	if lvl, err := cfg.LogLevel(); err == nil {
		core.SetLogLevel(lvl)
	}
}

func (e *Engine) fireConfigReloaded(cfg *config.Config) {
	err := e.events.Fire(context.Background(), core.EventContext{
		Type: core.EVENT_CODE_CONFIG_RELOADED,
		Data: cfg,
	})
	if err != nil {
		core.LogWarn("config reload dropped: %s", err.Error())
	}
}

func (e *Engine) onEvent(context core.EventContext) {
	switch context.Type {
	case core.EVENT_CODE_APPLICATION_QUIT:
		{
			core.LogInfo("EVENT_CODE_APPLICATION_QUIT received, shutting down.")
			e.mutex.Lock()
			if e.cancel != nil {
				e.cancel()
			}
			e.mutex.Unlock()
		}
	}
}

func (e *Engine) onConfigReloaded(context core.EventContext) {
	cfg, ok := context.Data.(*config.Config)
	if !ok {
		core.LogError("wrong event associated with the event type `%d`", context.Type)
		return
	}
	e.applyConfig(cfg)

	if e.gameInstance.FnOnConfigReload != nil {
		if err := e.gameInstance.FnOnConfigReload(cfg); err != nil {
			core.LogError("config reload rejected: %s", err.Error())
			return
		}
	}
	// a failed update is logged and the engine keeps watching
	_ = e.update()
}
