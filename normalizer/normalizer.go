package normalizer

import (
	"time"

	"github.com/theoremus-urban-solutions/hafas-to-transit/profile"
	"github.com/theoremus-urban-solutions/hafas-to-transit/utils"
)

// Options control optional normalization detail.
type Options struct {
	// LinesOfStops expands a station's product-at-stop list into Line
	// records on the resulting Stop.
	LinesOfStops bool
}

// Normalizer turns raw HAFAS records into normalized transit entities
// using a provider profile. Safe for concurrent use.
type Normalizer struct {
	profile profile.Profile
	opts    Options
}

// New creates a Normalizer around the given profile.
func New(p profile.Profile, opts Options) *Normalizer {
	return &Normalizer{profile: p, opts: opts}
}

// resolve picks the realtime time-of-day over the scheduled one and
// resolves it against the given calendar day.
func (n *Normalizer) resolve(date, realtime, scheduled string) (time.Time, bool) {
	tod := realtime
	if tod == "" {
		tod = scheduled
	}
	if tod == "" {
		return time.Time{}, false
	}
	return n.profile.ParseDateTime(date, tod)
}

// delay computes the realtime-minus-scheduled delay in whole seconds.
// Both values must be present; otherwise the delay stays unknown (nil).
func (n *Normalizer) delay(date, realtime, scheduled string) *int {
	if realtime == "" || scheduled == "" {
		return nil
	}
	rt, okR := n.profile.ParseDateTime(date, realtime)
	st, okS := n.profile.ParseDateTime(date, scheduled)
	if !okR || !okS {
		return nil
	}
	d := utils.DelaySeconds(rt, st)
	return &d
}
