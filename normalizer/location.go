package normalizer

import (
	"strconv"

	"github.com/theoremus-urban-solutions/hafas-to-transit/hafas"
	"github.com/theoremus-urban-solutions/hafas-to-transit/transit"
	"github.com/theoremus-urban-solutions/hafas-to-transit/utils"
)

// Place converts a raw location record into its normalized form. Station
// records (type S/ST) become stops; addresses, POIs, and unknown kinds
// stay plain locations. No field is required: anything missing degrades
// to an absent value.
func (n *Normalizer) Place(l *hafas.RawLocation) transit.Place {
	if l == nil {
		return nil
	}
	lid := hafas.ParseLID(l.ID)

	id := l.ExtID
	if id == "" {
		id = lid["L"]
	}
	if id == "" {
		id = lid["b"]
	}
	id = utils.StripLeadingZeros(id)

	lat, lon := locationCoordinates(l, lid)

	loc := &transit.Location{
		Type:      "location",
		ID:        id,
		Latitude:  lat,
		Longitude: lon,
	}
	if l.PCls != nil {
		loc.Products = n.profile.ParseProductsBitmask(*l.PCls)
	}

	switch l.Type {
	case hafas.LocationStation, hafas.LocationStationShort:
		return n.stop(l, lid, id, loc)
	case hafas.LocationAddress, hafas.LocationAddressLong:
		loc.Address = l.Name
	case hafas.LocationPOI:
		loc.Name = l.Name
		loc.POI = true
	default:
		loc.Name = l.Name
	}
	if l.Dist != nil {
		dist := *l.Dist
		loc.Distance = &dist
	}
	return loc
}

// stop builds the station-shaped result for S/ST records.
func (n *Normalizer) stop(l *hafas.RawLocation, lid map[string]string, id string, loc *transit.Location) *transit.Stop {
	stop := &transit.Stop{Type: "stop", ID: id}

	name := l.Name
	if name == "" {
		name = lid["O"]
	}
	if name != "" {
		stop.Name = n.profile.ParseStationName(name)
	}
	// The stop's own location is attached only when a latitude was
	// actually resolved.
	if loc.Latitude != nil {
		stop.Location = loc
	}

	if n.opts.LinesOfStops && len(l.ProductAtStop) > 0 {
		for i := range l.ProductAtStop {
			stop.Lines = append(stop.Lines, n.Line(&l.ProductAtStop[i]))
		}
	}

	if l.HasMainMast {
		parent := n.Place(&hafas.RawLocation{
			Type:  hafas.LocationStationShort,
			ID:    l.MainMastID,
			ExtID: l.MainMastExtID,
		})
		if ps, ok := parent.(*transit.Stop); ok {
			stop.SetStation(ps)
		}
	}

	if l.Dist != nil {
		dist := *l.Dist
		stop.Distance = &dist
	}
	return stop
}

// locationCoordinates extracts degrees from whichever coordinate shape
// the record carries: explicit decimal fields, the full-precision crd
// pair (1e6), or the composite identifier's X/Y fields (1e5). Latitude
// and longitude resolve jointly or not at all.
func locationCoordinates(l *hafas.RawLocation, lid map[string]string) (lat, lon *float64) {
	if l.Lat != nil && l.Lon != nil {
		la, lo := *l.Lat, *l.Lon
		return &la, &lo
	}
	if l.Crd != nil {
		return utils.FromCoordFixedPoint(l.Crd.X, l.Crd.Y)
	}
	x, okX := lid["X"]
	y, okY := lid["Y"]
	if okX && okY {
		xi, errX := strconv.ParseInt(x, 10, 64)
		yi, errY := strconv.ParseInt(y, 10, 64)
		if errX == nil && errY == nil {
			return utils.FromLIDFixedPoint(xi, yi)
		}
	}
	return nil, nil
}
