package normalizer

import (
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/hafas-to-transit/hafas"
	"github.com/theoremus-urban-solutions/hafas-to-transit/transit"
	"github.com/theoremus-urban-solutions/hafas-to-transit/utils"
)

// Departure converts one raw board entry into a normalized departure.
// Remarks stay nil (JSON null) when the entry carries no remark list;
// delay is an explicit null when realtime data is unavailable.
func (n *Normalizer) Departure(t *Tables, d *hafas.RawBoardEntry) (*transit.Departure, error) {
	if d == nil {
		return nil, nil
	}
	station, err := t.Place(d.StbStop.LocX.Int())
	if err != nil {
		return nil, err
	}
	line, err := t.Line(d.ProdX.Int())
	if err != nil {
		return nil, err
	}

	dep := &transit.Departure{
		Ref:       d.JID,
		Station:   station,
		Direction: d.DirTxt,
		Line:      line,
		Trip:      tripFromJID(d.JID),
	}
	if ts, ok := n.resolve(d.Date, d.StbStop.DTimeR, d.StbStop.DTimeS); ok {
		dep.When = utils.Iso8601(ts)
	}
	if d.RemL != nil {
		dep.Remarks = []*transit.Remark{}
		for _, ref := range d.RemL {
			r, err := t.Remark(ref.RemX.Int())
			if err != nil {
				return nil, err
			}
			dep.Remarks = append(dep.Remarks, r)
		}
	}
	dep.Delay = n.delay(d.Date, d.StbStop.DTimeR, d.StbStop.DTimeS)
	return dep, nil
}

// tripFromJID extracts the numeric trip identifier from a composite
// reference like "1|12345|0|80|…": the second pipe-delimited field.
func tripFromJID(jid string) int {
	parts := strings.Split(jid, "|")
	if len(parts) < 2 {
		return 0
	}
	trip, _ := strconv.Atoi(parts[1])
	return trip
}
