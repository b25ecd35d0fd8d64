package engine

import (
	"time"

	"golang.org/x/sync/errgroup"
)

// Result is the outcome of one report: either Report or Err is set
type Result[T any] struct {
	Report  *T
	Err     error
	Elapsed time.Duration
}

// Summary bundles the four reports computed over one filtered table
type Summary struct {
	City     string
	Filter   FilterSpec
	Columns  Columns
	Trips    int
	Time     Result[TimeReport]
	Stations Result[StationReport]
	Duration Result[DurationReport]
	Users    Result[UserReport]
}

// Analyze computes the four reports concurrently. The table is only read, so
// the workers share it without locking. A failing report does not stop the
// others; its error is kept in its Result.
func Analyze(t *TripTable, spec FilterSpec) *Summary {
	s := &Summary{
		City:    t.City,
		Filter:  spec,
		Columns: t.Columns,
		Trips:   t.Len(),
	}

	// Workers always return nil: report errors live in each Result, so one
	// failure never cancels the rest and Wait only joins the group.
	var g errgroup.Group
	g.Go(func() error {
		s.Time = timed(t, TimeStats)
		return nil
	})
	g.Go(func() error {
		s.Stations = timed(t, StationStats)
		return nil
	})
	g.Go(func() error {
		s.Duration = timed(t, DurationStats)
		return nil
	})
	g.Go(func() error {
		s.Users = timed(t, UserStats)
		return nil
	})
	_ = g.Wait()

	return s
}

func timed[T any](t *TripTable, report func(*TripTable) (*T, error)) Result[T] {
	start := time.Now()
	r, err := report(t)
	return Result[T]{Report: r, Err: err, Elapsed: time.Since(start)}
}
