package math

import (
	"fmt"
	"strings"
)

// Quality selects the polynomial used to ease interpolation amounts.
type Quality uint8

const (
	// t, no easing
	QualityLinear Quality = iota
	// cubic smoothstep, 3t^2 - 2t^3
	QualityLow
	// quintic smootherstep, 6t^5 - 15t^4 + 10t^3
	QualityMedium
	// septic, -20t^7 + 70t^6 - 84t^5 + 35t^4
	QualityHigh
)

var qualityNames = [...]string{
	QualityLinear: "linear",
	QualityLow:    "low",
	QualityMedium: "medium",
	QualityHigh:   "high",
}

func (q Quality) String() string {
	if int(q) < len(qualityNames) {
		return qualityNames[q]
	}
	return fmt.Sprintf("Quality(%d)", uint8(q))
}

func (q Quality) MarshalText() ([]byte, error) {
	if int(q) >= len(qualityNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownQuality, uint8(q))
	}
	return []byte(qualityNames[q]), nil
}

func (q *Quality) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	for i, n := range qualityNames {
		if n == name {
			*q = Quality(i)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownQuality, string(text))
}

/**
 * @brief Eases t with the curve selected by quality. Every curve maps 0 to 0
 * and 1 to 1; t is expected in [0, 1] and is not clamped here.
 *
 * @param quality The easing curve.
 * @param t The amount to ease.
 * @return The eased amount.
 */
func Smooth(quality Quality, t float32) float32 {
	switch quality {
	case QualityLow:
		return t * t * (3 - 2*t)
	case QualityMedium:
		return t * t * t * (t*(t*6-15) + 10)
	case QualityHigh:
		t2 := t * t
		return t2 * t2 * (35 + t*(-84+t*(70-20*t)))
	default:
		return t
	}
}

// LerpDirection selects the path an angle interpolation follows.
type LerpDirection uint8

const (
	// Interpolate along the shortest arc between the two angles.
	LerpShortest LerpDirection = iota
	// Interpolate along the plain numeric difference b - a.
	LerpDirect
)

var lerpDirectionNames = [...]string{
	LerpShortest: "shortest",
	LerpDirect:   "direct",
}

func (d LerpDirection) String() string {
	if int(d) < len(lerpDirectionNames) {
		return lerpDirectionNames[d]
	}
	return fmt.Sprintf("LerpDirection(%d)", uint8(d))
}

func (d LerpDirection) MarshalText() ([]byte, error) {
	if int(d) >= len(lerpDirectionNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLerpDirection, uint8(d))
	}
	return []byte(lerpDirectionNames[d]), nil
}

func (d *LerpDirection) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	for i, n := range lerpDirectionNames {
		if n == name {
			*d = LerpDirection(i)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownLerpDirection, string(text))
}
