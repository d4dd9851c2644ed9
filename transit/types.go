package transit

// Place is a normalized point on the network: a *Stop for stations, a
// bare *Location for addresses, POIs, and unknown kinds.
type Place interface {
	isPlace()
}

func (*Stop) isPlace()     {}
func (*Location) isPlace() {}

// Location is a normalized address, POI, or unknown-kind record, and the
// coordinate part of a Stop. Latitude and longitude are both present or
// both nil.
type Location struct {
	Type      string   `json:"type"`
	ID        string   `json:"id,omitempty"`
	Name      string   `json:"name,omitempty"`
	Address   string   `json:"address,omitempty"`
	POI       bool     `json:"poi,omitempty"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Products  []string `json:"products,omitempty"`
	Distance  *int     `json:"distance,omitempty"`
}

// Stop is a normalized station record. Lines is populated only when
// line-level detail was requested. Station is the optional parent for
// sub-stops of a main station; the relation is one level deep.
type Stop struct {
	Type     string    `json:"type"`
	ID       string    `json:"id,omitempty"`
	Name     string    `json:"name,omitempty"`
	Location *Location `json:"location"`
	Lines    []*Line   `json:"lines,omitempty"`
	Station  *Stop     `json:"station,omitempty"`
	Distance *int      `json:"distance,omitempty"`
}

// SetStation attaches the parent station. The parent is retagged
// "station" and stripped of any parent of its own, keeping the relation
// acyclic and bounded.
func (s *Stop) SetStation(parent *Stop) {
	if parent == nil {
		s.Station = nil
		return
	}
	parent.Type = "station"
	parent.Station = nil
	s.Station = parent
}

// Line is a normalized line record. Class and ProductCode are nil when
// the raw record did not carry them.
type Line struct {
	Type        string `json:"type"`
	Name        string `json:"name,omitempty"`
	Class       *int   `json:"class,omitempty"`
	ProductCode *int   `json:"productCode,omitempty"`
	ProductName string `json:"productName,omitempty"`
}

// Operator identity, with the id derived deterministically from the name.
type Operator struct {
	Type string `json:"type"`
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Remark is a journey or departure annotation. Full remark parsing is an
// open gap upstream; the type gives reference resolution a stable shape.
type Remark struct {
	Type string `json:"type"`
}

// Icon is a warning icon descriptor.
type Icon struct {
	Type string `json:"type,omitempty"`
	Res  string `json:"res,omitempty"`
}

// Edge is a geographic segment affected by a warning.
type Edge struct {
	Icon    *Icon `json:"icon"`
	FromLoc Place `json:"fromLoc"`
	ToLoc   Place `json:"toLoc"`
	Dir     *int  `json:"dir,omitempty"`
}

// Event is a time-bounded impact window of a warning.
type Event struct {
	FromLoc  Place    `json:"fromLoc"`
	ToLoc    Place    `json:"toLoc"`
	Start    string   `json:"start,omitempty"`
	End      string   `json:"end,omitempty"`
	Sections []string `json:"sections"`
}

// Warning is a normalized service warning. Summary and text are
// newline-normalized; category is copied verbatim from upstream.
type Warning struct {
	ID         *string  `json:"id"`
	Type       string   `json:"type"`
	Summary    *string  `json:"summary"`
	Text       *string  `json:"text"`
	Icon       *Icon    `json:"icon"`
	Priority   int      `json:"priority"`
	Category   *int     `json:"category"`
	Products   []string `json:"products,omitempty"`
	Edges      []Edge   `json:"edges,omitempty"`
	Events     []Event  `json:"events,omitempty"`
	ValidFrom  string   `json:"validFrom,omitempty"`
	ValidUntil string   `json:"validUntil,omitempty"`
	Modified   string   `json:"modified,omitempty"`
}

// Stopover is one passed intermediate stop of a ride.
type Stopover struct {
	Station   Place  `json:"station"`
	Arrival   string `json:"arrival,omitempty"`
	Departure string `json:"departure,omitempty"`
}

// Alternative is one schedule-frequency departure sharing the leg's
// origin.
type Alternative struct {
	Line *Line  `json:"line"`
	When string `json:"when,omitempty"`
}

// Leg is one contiguous ride-or-walk segment of a journey. Delay is
// omitted entirely when no realtime data was available; this differs from
// Departure.Delay on purpose.
type Leg struct {
	Origin            Place         `json:"origin"`
	Destination       Place         `json:"destination"`
	Departure         string        `json:"departure,omitempty"`
	Arrival           string        `json:"arrival,omitempty"`
	Delay             *int          `json:"delay,omitempty"`
	Mode              string        `json:"mode,omitempty"`
	ID                string        `json:"id,omitempty"`
	Line              *Line         `json:"line,omitempty"`
	Direction         string        `json:"direction,omitempty"`
	DeparturePlatform string        `json:"departurePlatform,omitempty"`
	ArrivalPlatform   string        `json:"arrivalPlatform,omitempty"`
	Passed            []Stopover    `json:"passed,omitempty"`
	Alternatives      []Alternative `json:"alternatives,omitempty"`
}

// Journey is an ordered non-empty sequence of legs. Origin and departure
// come from the first leg, destination and arrival from the last.
type Journey struct {
	Type        string `json:"type"`
	Legs        []Leg  `json:"legs"`
	Origin      Place  `json:"origin"`
	Destination Place  `json:"destination"`
	Departure   string `json:"departure,omitempty"`
	Arrival     string `json:"arrival,omitempty"`
}

// Departure is one row of a live departure board. Delay serializes to an
// explicit null when no realtime data was available, unlike Leg.Delay
// which is omitted; consumers depend on the distinction.
type Departure struct {
	Ref       string    `json:"ref"`
	Station   Place     `json:"station"`
	When      string    `json:"when,omitempty"`
	Direction string    `json:"direction,omitempty"`
	Line      *Line     `json:"line"`
	Remarks   []*Remark `json:"remarks"`
	Trip      int       `json:"trip"`
	Delay     *int      `json:"delay"`
}

// Coordinates is a resolved geographic position.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NextStop is an upcoming stop of a moving vehicle. Arrival and departure
// are explicit nulls when the raw record carried no time.
type NextStop struct {
	Station   Place   `json:"station"`
	Arrival   *string `json:"arrival"`
	Departure *string `json:"departure"`
}

// Frame is one interpolation keyframe for animating a vehicle between two
// known fixes, T milliseconds into the animation.
type Frame struct {
	Origin      Place `json:"origin"`
	Destination Place `json:"destination"`
	T           int   `json:"t"`
}

// Movement is a normalized live vehicle record. Coordinates is nil when
// the vehicle reported no position; NextStops and Frames are always
// non-nil lists.
type Movement struct {
	Direction   string       `json:"direction"`
	Line        *Line        `json:"line"`
	Coordinates *Coordinates `json:"coordinates"`
	NextStops   []NextStop   `json:"nextStops"`
	Frames      []Frame      `json:"frames"`
}
