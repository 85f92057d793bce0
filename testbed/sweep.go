package testbed

import (
	"sync"

	"github.com/spaghettifunk/vecmath/engine/config"
	"github.com/spaghettifunk/vecmath/engine/core"
	"github.com/spaghettifunk/vecmath/engine/math"
	"github.com/spaghettifunk/vecmath/engine/systems"
)

var (
	sweepQualities  = []math.Quality{math.QualityLinear, math.QualityLow, math.QualityMedium, math.QualityHigh}
	sweepDirections = []math.LerpDirection{math.LerpShortest, math.LerpDirect}
)

// Sweep samples base with every quality and direction combination, one job
// per combination. Reports come back ordered by quality, then direction.
func Sweep(base config.Interpolation, js *systems.JobSystem, metrics *core.Metrics) []Report {
	reports := make([]Report, len(sweepQualities)*len(sweepDirections))

	var wg sync.WaitGroup
	for qi, q := range sweepQualities {
		for di, dir := range sweepDirections {
			idx := qi*len(sweepDirections) + di
			cfg := base
			cfg.Quality = q
			cfg.Direction = dir

			wg.Add(1)
			js.Submit(systems.JobTask{
				Name: q.String() + "/" + dir.String(),
				Run: func() error {
					reports[idx] = Sample(cfg, metrics)
					return nil
				},
				OnComplete: wg.Done,
				OnFailure:  func(error) { wg.Done() },
			})
		}
	}
	wg.Wait()
	return reports
}
