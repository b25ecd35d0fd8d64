package tui

import (
	"fmt"
	"math"
	"os"
	"strings"
	"time"
)

// ShimmerConfig holds configuration for the banner shimmer
type ShimmerConfig struct {
	Enabled    bool
	SpeedMs    int     // tick interval
	WidthRatio float64 // highlight width relative to the text
	CycleMs    int     // time for one sweep across the text
	PauseMs    int     // pause between sweeps
}

// DefaultShimmerConfig returns the shimmer used by the filter wizard.
// NO_COLOR or BIKESHARE_REDUCE_MOTION turn it off.
func DefaultShimmerConfig() ShimmerConfig {
	_, noColor := os.LookupEnv("NO_COLOR")
	_, reduce := os.LookupEnv("BIKESHARE_REDUCE_MOTION")
	return ShimmerConfig{
		Enabled:    !noColor && !reduce,
		SpeedMs:    100,
		WidthRatio: 0.25,
		CycleMs:    1800,
		PauseMs:    700,
	}
}

// ShimmerState is the position of a sweeping highlight over a line of text
type ShimmerState struct {
	Config    ShimmerConfig
	Center    float64
	TrueColor bool

	paused     bool
	pauseStart time.Time
}

// NewShimmerState creates a new shimmer state
func NewShimmerState(config ShimmerConfig) *ShimmerState {
	return &ShimmerState{
		Config:    config,
		TrueColor: os.Getenv("COLORTERM") == "truecolor",
	}
}

// Active reports whether the shimmer needs ticks
func (s *ShimmerState) Active() bool {
	return s != nil && s.Config.Enabled && s.Config.SpeedMs > 0
}

// TickInterval returns the interval for tea.Tick commands
func (s *ShimmerState) TickInterval() time.Duration {
	return time.Duration(s.Config.SpeedMs) * time.Millisecond
}

// Advance moves the highlight one tick along text of length n
func (s *ShimmerState) Advance(n int, now time.Time) {
	if !s.Active() || n <= 0 {
		return
	}

	span := float64(n) * s.Config.WidthRatio
	if s.paused {
		if now.Sub(s.pauseStart) >= time.Duration(s.Config.PauseMs)*time.Millisecond {
			s.paused = false
			s.Center = -span
		}
		return
	}

	ticks := float64(s.Config.CycleMs) / float64(s.Config.SpeedMs)
	s.Center += (float64(n) + 2*span) / ticks

	if end := float64(n) + span; s.Center >= end {
		s.Center = end
		s.paused = true
		s.pauseStart = now
	}
}

// Render draws text with the highlight at its current position
func (s *ShimmerState) Render(text string) string {
	if !s.Active() || text == "" {
		return titleStyle.Render(text)
	}

	runes := []rune(text)
	sigma := math.Max(1, s.Config.WidthRatio*float64(len(runes))/2)

	// #9FB3C8 base blending into #CCFBF1
	baseR, baseG, baseB := 159.0, 179.0, 200.0
	hiR, hiG, hiB := 204.0, 251.0, 241.0

	var b strings.Builder
	for i, r := range runes {
		dx := float64(i) - s.Center
		w := math.Exp(-(dx * dx) / (2 * sigma * sigma))

		if s.TrueColor {
			fmt.Fprintf(&b, "\033[38;2;%d;%d;%dm%c",
				int(baseR+(hiR-baseR)*w), int(baseG+(hiG-baseG)*w), int(baseB+(hiB-baseB)*w), r)
			continue
		}
		// 256-color terminals get a two-tone approximation
		code := 250
		if w > 0.5 {
			code = 122
		}
		fmt.Fprintf(&b, "\033[38;5;%dm%c", code, r)
	}
	b.WriteString("\033[0m")
	return b.String()
}
