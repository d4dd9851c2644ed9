package normalizer

import (
	"errors"
	"fmt"

	"github.com/theoremus-urban-solutions/hafas-to-transit/hafas"
	"github.com/theoremus-urban-solutions/hafas-to-transit/transit"
	"github.com/theoremus-urban-solutions/hafas-to-transit/utils"
)

// ErrNoSections marks a connection without sections, which violates the
// journey precondition.
var ErrNoSections = errors.New("connection has no sections")

// Journey converts a raw connection into an ordered sequence of legs.
// The connection must carry at least one section; overall origin and
// departure come from the first leg, destination and arrival from the
// last.
func (n *Normalizer) Journey(t *Tables, c *hafas.RawConnection) (*transit.Journey, error) {
	if c == nil || len(c.SecL) == 0 {
		return nil, fmt.Errorf("normalize journey: %w", ErrNoSections)
	}
	legs := make([]transit.Leg, 0, len(c.SecL))
	for i := range c.SecL {
		leg, err := n.Leg(t, c, &c.SecL[i])
		if err != nil {
			return nil, fmt.Errorf("section %d: %w", i, err)
		}
		legs = append(legs, *leg)
	}
	first, last := &legs[0], &legs[len(legs)-1]
	return &transit.Journey{
		Type:        "journey",
		Legs:        legs,
		Origin:      first.Origin,
		Destination: last.Destination,
		Departure:   first.Departure,
		Arrival:     last.Arrival,
	}, nil
}

// Leg converts one raw section against the connection's base date.
// Origin and destination are copies of the station-table entries, so
// decorating a leg never mutates shared table state.
func (n *Normalizer) Leg(t *Tables, c *hafas.RawConnection, sec *hafas.RawSection) (*transit.Leg, error) {
	origin, err := t.PlaceCopy(sec.Dep.LocX.Int())
	if err != nil {
		return nil, err
	}
	destination, err := t.PlaceCopy(sec.Arr.LocX.Int())
	if err != nil {
		return nil, err
	}

	leg := &transit.Leg{Origin: origin, Destination: destination}
	if ts, ok := n.resolve(c.Date, sec.Dep.DTimeR, sec.Dep.DTimeS); ok {
		leg.Departure = utils.Iso8601(ts)
	}
	if ts, ok := n.resolve(c.Date, sec.Arr.ATimeR, sec.Arr.ATimeS); ok {
		leg.Arrival = utils.Iso8601(ts)
	}
	// Leg delay is omitted entirely without realtime data; departure
	// boards null it instead. Consumers rely on the difference.
	leg.Delay = n.delay(c.Date, sec.Dep.DTimeR, sec.Dep.DTimeS)

	switch sec.Type {
	case hafas.SectionWalk:
		leg.Mode = "walking"
	case hafas.SectionJourney:
		if sec.Jny == nil {
			break
		}
		leg.Mode = "train"
		leg.ID = sec.Jny.JID
		line, err := t.Line(sec.Jny.ProdX.Int())
		if err != nil {
			return nil, err
		}
		leg.Line = line
		leg.Direction = sec.Jny.DirTxt

		if sec.Dep.DPlatfS != "" {
			leg.DeparturePlatform = sec.Dep.DPlatfS
		}
		if sec.Arr.APlatfS != "" {
			leg.ArrivalPlatform = sec.Arr.APlatfS
		}

		for i := range sec.Jny.StopL {
			so, err := n.stopover(t, c.Date, &sec.Jny.StopL[i])
			if err != nil {
				return nil, err
			}
			leg.Passed = append(leg.Passed, so)
		}

		for _, ref := range sec.Jny.RemL {
			n.applyRemark(t, ref)
		}

		if sec.Jny.Freq != nil {
			alts, err := n.alternatives(t, c.Date, sec, sec.Jny.Freq)
			if err != nil {
				return nil, err
			}
			leg.Alternatives = alts
		}
	}
	return leg, nil
}

// stopover maps one passed intermediate stop, computing arrival and
// departure only when the raw record carries the corresponding time.
func (n *Normalizer) stopover(t *Tables, date string, st *hafas.RawStopover) (transit.Stopover, error) {
	station, err := t.Place(st.LocX.Int())
	if err != nil {
		return transit.Stopover{}, err
	}
	so := transit.Stopover{Station: station}
	if ts, ok := n.resolve(date, st.ATimeR, st.ATimeS); ok {
		so.Arrival = utils.Iso8601(ts)
	}
	if ts, ok := n.resolve(date, st.DTimeR, st.DTimeS); ok {
		so.Departure = utils.Iso8601(ts)
	}
	return so, nil
}

// applyRemark resolves a ride's remark reference against the remark
// table. Remark parsing is an open gap upstream, so resolution is a
// no-op beyond validating the reference.
func (n *Normalizer) applyRemark(t *Tables, ref hafas.RawRemarkRef) {
	_, _ = t.Remark(ref.RemX.Int())
}

// alternatives expands a ride's frequency block into schedule
// alternatives, keeping only entries departing from the same location as
// the section itself.
func (n *Normalizer) alternatives(t *Tables, date string, sec *hafas.RawSection, freq *hafas.RawFrequency) ([]transit.Alternative, error) {
	var alts []transit.Alternative
	for i := range freq.JnyL {
		alt := &freq.JnyL[i]
		if len(alt.StopL) == 0 || alt.StopL[0].LocX != sec.Dep.LocX {
			continue
		}
		line, err := t.Line(alt.ProdX.Int())
		if err != nil {
			return nil, err
		}
		a := transit.Alternative{Line: line}
		if ts, ok := n.profile.ParseDateTime(date, alt.StopL[0].DTimeS); ok {
			a.When = utils.Iso8601(ts)
		}
		alts = append(alts, a)
	}
	return alts, nil
}
