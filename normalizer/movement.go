package normalizer

import (
	"github.com/theoremus-urban-solutions/hafas-to-transit/hafas"
	"github.com/theoremus-urban-solutions/hafas-to-transit/transit"
	"github.com/theoremus-urban-solutions/hafas-to-transit/utils"
)

// Movement converts a raw live-vehicle record into a normalized
// movement: current position, upcoming-stop ETAs, and animation
// keyframes zipped pointwise from the parallel raw arrays.
func (n *Normalizer) Movement(t *Tables, m *hafas.RawMovement) (*transit.Movement, error) {
	if m == nil {
		return nil, nil
	}
	// The raw product index is used as delivered; the radar endpoint has
	// only ever been observed emitting plain numbers.
	line, err := t.Line(m.ProdX)
	if err != nil {
		return nil, err
	}

	mov := &transit.Movement{
		Direction: m.DirTxt,
		Line:      line,
		NextStops: []transit.NextStop{},
		Frames:    []transit.Frame{},
	}

	if m.Pos != nil {
		lat, lon := utils.FromCoordFixedPoint(m.Pos.X, m.Pos.Y)
		if lat != nil && lon != nil {
			mov.Coordinates = &transit.Coordinates{Latitude: *lat, Longitude: *lon}
		}
	}

	for i := range m.StopL {
		st := &m.StopL[i]
		station, err := t.Place(st.LocX.Int())
		if err != nil {
			return nil, err
		}
		ns := transit.NextStop{Station: station}
		if ts, ok := n.resolve(m.Date, st.ATimeR, st.ATimeS); ok {
			arrival := utils.Iso8601(ts)
			ns.Arrival = &arrival
		}
		if ts, ok := n.resolve(m.Date, st.DTimeR, st.DTimeS); ok {
			departure := utils.Iso8601(ts)
			ns.Departure = &departure
		}
		mov.NextStops = append(mov.NextStops, ns)
	}

	if m.Ani != nil {
		for i, msec := range m.Ani.MSec {
			if i >= len(m.Ani.FLocX) || i >= len(m.Ani.TLocX) {
				break
			}
			origin, err := t.Place(m.Ani.FLocX[i])
			if err != nil {
				return nil, err
			}
			destination, err := t.Place(m.Ani.TLocX[i])
			if err != nil {
				return nil, err
			}
			mov.Frames = append(mov.Frames, transit.Frame{
				Origin:      origin,
				Destination: destination,
				T:           msec,
			})
		}
	}
	return mov, nil
}
