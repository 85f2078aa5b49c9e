package config

import "time"

// Next returns the gravity interval after one accelerated step.
// The result never drops below MinInterval.
func (g GravityConfig) Next(d time.Duration) time.Duration {
	if g.AccelDen <= 0 {
		return d
	}
	next := time.Duration(int64(d) * g.AccelNum / g.AccelDen)
	if next < g.MinInterval {
		return g.MinInterval
	}
	return next
}

// After returns the interval once n accelerated steps have been applied.
func (g GravityConfig) After(n int) time.Duration {
	d := g.Interval
	for range n {
		next := g.Next(d)
		if next == d {
			break
		}
		d = next
	}
	return d
}
