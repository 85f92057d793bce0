package testbed

import (
	"fmt"
	"time"

	"github.com/spaghettifunk/vecmath/engine/config"
	"github.com/spaghettifunk/vecmath/engine/core"
	"github.com/spaghettifunk/vecmath/engine/math"
)

const lawTolerance float32 = 1e-4

// Check is the outcome of one property evaluated by the testbed.
type Check struct {
	Name   string
	Passed bool
	Detail string
}

// Curve holds one interpolation family evaluated at evenly spaced t values.
type Curve struct {
	Family string
	Points []string
}

type Report struct {
	Quality   math.Quality
	Direction math.LerpDirection
	Samples   int
	Curves    []Curve
	Checks    []Check
	Elapsed   time.Duration
}

func (r Report) Failed() []Check {
	var failed []Check
	for _, c := range r.Checks {
		if !c.Passed {
			failed = append(failed, c)
		}
	}
	return failed
}

type sampler struct {
	cfg     config.Interpolation
	metrics *core.Metrics
	report  *Report
}

// Sample evaluates every interpolation family with the configured quality and
// direction, then checks the geometric laws on seeded random vectors. Each
// family's duration is fed to metrics when it is not nil.
func Sample(cfg config.Interpolation, metrics *core.Metrics) Report {
	clock := core.NewClock()
	clock.Start()

	report := Report{
		Quality:   cfg.Quality,
		Direction: cfg.Direction,
		Samples:   cfg.Samples,
	}
	s := &sampler{cfg: cfg, metrics: metrics, report: &report}

	s.timed(s.curves)
	s.timed(s.interpolationLaws)
	s.timed(s.vectorLaws)
	s.timed(s.angleLaws)
	s.timed(s.integerLaws)

	clock.Update()
	report.Elapsed = clock.Elapsed()
	return report
}

func (s *sampler) timed(fn func()) {
	clock := core.NewClock()
	clock.Start()
	fn()
	clock.Update()
	if s.metrics != nil {
		s.metrics.Update(clock.Elapsed())
	}
}

func (s *sampler) check(name string, passed bool, format string, args ...interface{}) {
	s.report.Checks = append(s.report.Checks, Check{
		Name:   name,
		Passed: passed,
		Detail: fmt.Sprintf(format, args...),
	})
}

func (s *sampler) steps() []float32 {
	n := max(s.cfg.Samples, 2)
	ts := make([]float32, n)
	for i := range ts {
		ts[i] = float32(i) / float32(n-1)
	}
	// the last step is exactly 1
	ts[n-1] = 1
	return ts
}

func (s *sampler) curves() {
	q, dir := s.cfg.Quality, s.cfg.Direction
	a2, b2 := math.NewVec2(-1, 0), math.NewVec2(3, 2)
	a3, b3 := math.NewVec3(0, 0, 0), math.NewVec3(1, 2, 3)
	a4, b4 := math.NewVec4(0, 0, 0, 1), math.NewVec4(1, 1, 1, 0)
	fromAngle, toAngle := math.AngleFromDegrees(350), math.AngleFromDegrees(10)
	p0, p1, p2, p3 := math.NewVec3(-1, 0, 0), math.NewVec3(0, 1, 0), math.NewVec3(1, 1, 0), math.NewVec3(2, 0, 0)

	families := []struct {
		name string
		eval func(t float32) string
	}{
		{"scalar", func(t float32) string { return fmt.Sprintf("%g", math.Lerp(0, 10, math.Smooth(q, t))) }},
		{"angle", func(t float32) string { return fromAngle.LerpSmooth(toAngle, t, q, dir).WrapUnsigned().String() }},
		{"vec2", func(t float32) string { return a2.LerpSmooth(b2, t, q).String() }},
		{"vec3", func(t float32) string { return a3.LerpSmooth(b3, t, q).String() }},
		{"vec4", func(t float32) string { return a4.LerpSmooth(b4, t, q).String() }},
		{"catmull-rom", func(t float32) string { return math.Vec3CatmullRom(p0, p1, p2, p3, t).String() }},
		{"hermite", func(t float32) string {
			return math.Vec3Hermite(p1, math.NewVec3Right(), p2, math.NewVec3Down(), t).String()
		}},
	}

	steps := s.steps()
	for _, f := range families {
		curve := Curve{Family: f.name, Points: make([]string, 0, len(steps))}
		for _, t := range steps {
			curve.Points = append(curve.Points, f.eval(t))
		}
		s.report.Curves = append(s.report.Curves, curve)
	}
}

func (s *sampler) interpolationLaws() {
	q := s.cfg.Quality
	steps := s.steps()

	monotonic := true
	prev := math.Smooth(q, 0)
	for _, t := range steps[1:] {
		cur := math.Smooth(q, t)
		if cur < prev {
			monotonic = false
		}
		prev = cur
	}
	s.check("smooth curve is monotonic", monotonic, "quality %s over %d samples", q, len(steps))

	a, b := math.NewVec3(1, -2, 3), math.NewVec3(-4, 5, 6)
	s.check("lerp boundaries", a.Lerp(b, 0) == a && a.Lerp(b, 1) == b,
		"lerp(a, b, 0) = %s, lerp(a, b, 1) = %s", a.Lerp(b, 0), a.Lerp(b, 1))

	from, to := math.AngleFromDegrees(30), math.AngleFromDegrees(300)
	end := from.Lerp(to, 1, s.cfg.Direction).WrapUnsigned()
	s.check("angle lerp reaches its target", end.Approximately(to),
		"%s towards %s (%s) ends at %s", from, to, s.cfg.Direction, end)
}

func (s *sampler) vectorLaws() {
	r := math.NewRandom(s.cfg.Seed)
	normalized, reflected, crossed := true, true, true
	for i := 0; i < s.cfg.Samples; i++ {
		v := math.RandomVec3InUnitSphere(r).MulScalar(5)
		w := math.RandomVec3InUnitSphere(r).MulScalar(5)
		n := math.RandomVec3OnUnitSphere(r)

		if !math.Approximately(v.LengthSquared(), 0) {
			u := v.Normalized()
			if math.Abs(u.Length()-1) > lawTolerance || !u.Compare(u.Normalized(), lawTolerance) {
				normalized = false
			}
		}
		rv := v.Reflect(n)
		if math.Abs(rv.Dot(n)+v.Dot(n)) > lawTolerance || math.Abs(rv.Length()-v.Length()) > lawTolerance {
			reflected = false
		}
		if !v.Cross(w).Compare(w.Cross(v).Neg(), lawTolerance) {
			crossed = false
		}
	}
	s.check("normalize is unit length and idempotent", normalized, "%d random vectors", s.cfg.Samples)
	s.check("reflection preserves length and flips the normal component", reflected, "%d random vectors", s.cfg.Samples)
	s.check("cross product is anticommutative", crossed, "%d random pairs", s.cfg.Samples)

	zero := math.NewVec3Zero()
	s.check("zero vector normalizes to itself", zero.Normalized() == zero, "got %s", zero.Normalized())

	grazing := math.NewVec3(1, -0.05, 0).Normalized()
	tir := grazing.Refract(math.NewVec3Up(), 1.5, 1)
	s.check("total internal reflection refracts to zero", tir == zero, "got %s", tir)
}

func (s *sampler) angleLaws() {
	r := math.NewRandom(s.cfg.Seed)
	inRange := true
	for i := 0; i < s.cfg.Samples; i++ {
		a := math.AngleFromRadians((r.Float32()*2 - 1) * 50)
		signed := a.WrapSigned().Radians()
		unsigned := a.WrapUnsigned().Radians()
		if signed < -math.K_PI || signed > math.K_PI || unsigned < 0 || unsigned > math.K_PI_2 {
			inRange = false
		}
	}
	s.check("wrapped angles stay in range", inRange, "%d random angles", s.cfg.Samples)
}

func (s *sampler) integerLaws() {
	r := math.NewRandom(s.cfg.Seed)
	roundTrip := true
	for i := 0; i < s.cfg.Samples; i++ {
		xy := math.RandomIVec2InRange(r, math.NewIVec2(-1000, -1000), math.NewIVec2(1000, 1000))
		v := math.NewIVec3(xy.X, xy.Y, xy.X-xy.Y)
		if v.ToVec3().RoundToInt() != v {
			roundTrip = false
		}
	}
	s.check("integer vectors survive a float round trip", roundTrip, "%d random vectors", s.cfg.Samples)

	v := math.NewIVec3(1, 2, 3)
	_, err := v.At(3)
	s.check("out of range component index fails", err != nil, "At(3) returned %v", err)
}
