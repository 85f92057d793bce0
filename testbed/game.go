package testbed

import (
	"errors"
	"sync"

	"github.com/spaghettifunk/vecmath/engine"
	"github.com/spaghettifunk/vecmath/engine/config"
	"github.com/spaghettifunk/vecmath/engine/containers"
	"github.com/spaghettifunk/vecmath/engine/core"
	"github.com/spaghettifunk/vecmath/engine/systems"
)

var ErrChecksFailed = errors.New("testbed checks failed")

type Testbed struct {
	*engine.Game
}

type testbedState struct {
	mutex   sync.Mutex
	config  *config.Config
	metrics *core.Metrics
	history *containers.RingQueue[Report]
	jobs    *systems.JobSystem
	sweep   []Report
	runs    int
}

func NewTestbed(app *engine.ApplicationConfig) *Testbed {
	tb := &Testbed{
		Game: &engine.Game{
			ApplicationConfig: app,
			State: &testbedState{
				metrics: core.NewMetrics(),
			},
		},
	}

	tb.FnInitialize = tb.Initialize
	tb.FnUpdate = tb.Update
	tb.FnOnConfigReload = tb.OnConfigReload
	tb.FnShutdown = tb.Shutdown

	return tb
}

func (tb *Testbed) state() *testbedState {
	return tb.State.(*testbedState)
}

func (tb *Testbed) Initialize(cfg *config.Config) error {
	core.LogDebug("Testbed Initialize fn....")

	if err := cfg.Validate(); err != nil {
		return err
	}
	js, err := systems.NewJobSystem(cfg.Testbed.Workers, cfg.Testbed.Workers)
	if err != nil {
		return err
	}

	state := tb.state()
	state.mutex.Lock()
	state.jobs = js
	state.history = containers.NewRingQueue[Report](cfg.Testbed.History)
	state.mutex.Unlock()

	return tb.OnConfigReload(cfg)
}

func (tb *Testbed) OnConfigReload(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	state := tb.state()
	state.mutex.Lock()
	defer state.mutex.Unlock()
	// resizing keeps the newest reports
	if state.history != nil && state.config != nil && cfg.Testbed.History != state.config.Testbed.History {
		resized := containers.NewRingQueue[Report](cfg.Testbed.History)
		for _, r := range state.history.Items() {
			resized.Push(r)
		}
		state.history = resized
	}
	if state.config != nil && cfg.Testbed.Workers != state.config.Testbed.Workers {
		core.LogWarn("testbed workers change takes effect on restart")
	}
	state.config = cfg
	return nil
}

// Update samples every interpolation family once and logs the report. It
// fails with ErrChecksFailed when any law does not hold.
func (tb *Testbed) Update(deltaTime float64) error {
	state := tb.state()
	state.mutex.Lock()
	cfg := state.config
	state.mutex.Unlock()

	report := Sample(cfg.Interpolation, state.metrics)
	var sweep []Report
	if cfg.Testbed.Sweep {
		sweep = Sweep(cfg.Interpolation, state.jobs, state.metrics)
	}

	state.mutex.Lock()
	state.history.Push(report)
	state.sweep = sweep
	state.runs++
	state.mutex.Unlock()

	core.LogInfo("sampled quality=%s direction=%s samples=%d in %s (%.1fs since last run)",
		report.Quality, report.Direction, report.Samples, report.Elapsed, deltaTime)
	for _, curve := range report.Curves {
		core.LogDebug("%-12s %v", curve.Family, curve.Points)
	}
	for _, c := range report.Checks {
		if c.Passed {
			core.LogDebug("ok   %s: %s", c.Name, c.Detail)
		} else {
			core.LogError("FAIL %s: %s", c.Name, c.Detail)
		}
	}
	for _, r := range sweep {
		core.LogInfo("sweep %s/%s: %d checks, %d failed, %s",
			r.Quality, r.Direction, len(r.Checks), len(r.Failed()), r.Elapsed)
	}
	if _, avgMS := state.metrics.Snapshot(); avgMS > 0 {
		core.LogInfo("average family time %.3fms", avgMS)
	}

	failed := report.Failed()
	for _, r := range sweep {
		failed = append(failed, r.Failed()...)
	}
	if len(failed) > 0 {
		return errors.Join(ErrChecksFailed, errors.New(failed[0].Name))
	}
	return nil
}

func (tb *Testbed) Shutdown() error {
	core.LogInfo("testbed shut down after %d runs", tb.Runs())
	state := tb.state()
	if state.jobs != nil {
		return state.jobs.Shutdown()
	}
	return nil
}

// LastReport returns the most recent report, or the zero Report before the
// first update.
func (tb *Testbed) LastReport() Report {
	history := tb.History()
	if len(history) == 0 {
		return Report{}
	}
	return history[len(history)-1]
}

// History returns the kept reports from oldest to newest.
func (tb *Testbed) History() []Report {
	state := tb.state()
	state.mutex.Lock()
	defer state.mutex.Unlock()
	if state.history == nil {
		return nil
	}
	return state.history.Items()
}

func (tb *Testbed) LastSweep() []Report {
	state := tb.state()
	state.mutex.Lock()
	defer state.mutex.Unlock()
	return state.sweep
}

func (tb *Testbed) Runs() int {
	state := tb.state()
	state.mutex.Lock()
	defer state.mutex.Unlock()
	return state.runs
}
