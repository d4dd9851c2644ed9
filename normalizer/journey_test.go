package normalizer

import (
	"errors"
	"testing"

	"github.com/theoremus-urban-solutions/hafas-to-transit/hafas"
	"github.com/theoremus-urban-solutions/hafas-to-transit/transit"
)

func testConnection() *hafas.RawConnection {
	return &hafas.RawConnection{
		Date: "20200610",
		SecL: []hafas.RawSection{
			{
				Type: "JNY",
				Dep: hafas.RawSectionStop{
					LocX:    0,
					DTimeS:  "110000",
					DTimeR:  "110130",
					DPlatfS: "U2",
				},
				Arr: hafas.RawSectionStop{
					LocX:    2,
					ATimeS:  "111000",
					ATimeR:  "111130",
					APlatfS: "4",
				},
				Jny: &hafas.RawJny{
					JID:    "1|1234|2|86|10062020",
					ProdX:  0,
					DirTxt: "Pankow",
					StopL: []hafas.RawStopover{
						{LocX: 0, DTimeS: "110000"},
						{LocX: 2, ATimeS: "111000"},
					},
				},
			},
			{
				Type: "WALK",
				Dep:  hafas.RawSectionStop{LocX: 2, DTimeS: "111200"},
				Arr:  hafas.RawSectionStop{LocX: 2, ATimeS: "111500"},
			},
			{
				Type: "JNY",
				Dep:  hafas.RawSectionStop{LocX: 2, DTimeS: "112000"},
				Arr:  hafas.RawSectionStop{LocX: 1, ATimeS: "114000"},
				Jny: &hafas.RawJny{
					JID:    "1|5678|0|86|10062020",
					ProdX:  1,
					DirTxt: "Sonnenallee",
				},
			},
		},
	}
}

func TestJourney(t *testing.T) {
	n := newTestNormalizer(t, Options{})
	tables := n.BuildTables(testCommon())

	j, err := n.Journey(tables, testConnection())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if j.Type != "journey" {
		t.Errorf("expected type journey, got %q", j.Type)
	}
	if len(j.Legs) != 3 {
		t.Fatalf("expected 3 legs, got %d", len(j.Legs))
	}

	// Journey endpoints come from the first and last leg.
	first, last := j.Legs[0], j.Legs[2]
	if j.Origin != first.Origin {
		t.Error("journey origin should be the first leg's origin")
	}
	if j.Destination != last.Destination {
		t.Error("journey destination should be the last leg's destination")
	}
	if j.Departure != first.Departure {
		t.Errorf("journey departure should be %q, got %q", first.Departure, j.Departure)
	}
	if j.Arrival != last.Arrival {
		t.Errorf("journey arrival should be %q, got %q", last.Arrival, j.Arrival)
	}

	origin, ok := j.Origin.(*transit.Stop)
	if !ok {
		t.Fatalf("expected a stop origin, got %T", j.Origin)
	}
	if origin.Name != "U Spichernstr." {
		t.Errorf("unexpected origin %q", origin.Name)
	}
}

func TestJourneyRideLeg(t *testing.T) {
	n := newTestNormalizer(t, Options{})
	tables := n.BuildTables(testCommon())

	j, err := n.Journey(tables, testConnection())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	leg := j.Legs[0]

	if leg.Mode != "train" {
		t.Errorf("expected mode train, got %q", leg.Mode)
	}
	if leg.ID != "1|1234|2|86|10062020" {
		t.Errorf("unexpected leg id %q", leg.ID)
	}
	if leg.Line == nil || leg.Line.Name != "U2" {
		t.Errorf("unexpected line: %+v", leg.Line)
	}
	if leg.Direction != "Pankow" {
		t.Errorf("unexpected direction %q", leg.Direction)
	}
	if leg.Departure != "2020-06-10T11:01:30+02:00" {
		t.Errorf("realtime departure expected, got %q", leg.Departure)
	}
	if leg.Arrival != "2020-06-10T11:11:30+02:00" {
		t.Errorf("realtime arrival expected, got %q", leg.Arrival)
	}
	if leg.Delay == nil || *leg.Delay != 90 {
		t.Errorf("expected 90s delay, got %v", leg.Delay)
	}
	if leg.DeparturePlatform != "U2" || leg.ArrivalPlatform != "4" {
		t.Errorf("unexpected platforms %q / %q", leg.DeparturePlatform, leg.ArrivalPlatform)
	}
	if len(leg.Passed) != 2 {
		t.Fatalf("expected 2 passed stops, got %d", len(leg.Passed))
	}
	if leg.Passed[0].Departure != "2020-06-10T11:00:00+02:00" {
		t.Errorf("unexpected stopover departure %q", leg.Passed[0].Departure)
	}
	if leg.Passed[1].Arrival != "2020-06-10T11:10:00+02:00" {
		t.Errorf("unexpected stopover arrival %q", leg.Passed[1].Arrival)
	}
}

func TestJourneyWalkingLeg(t *testing.T) {
	n := newTestNormalizer(t, Options{})
	tables := n.BuildTables(testCommon())

	j, err := n.Journey(tables, testConnection())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	leg := j.Legs[1]

	if leg.Mode != "walking" {
		t.Errorf("expected mode walking, got %q", leg.Mode)
	}
	if leg.Line != nil {
		t.Errorf("walking legs carry no line, got %+v", leg.Line)
	}
	if leg.ID != "" {
		t.Errorf("walking legs carry no id, got %q", leg.ID)
	}
	if leg.Passed != nil {
		t.Errorf("walking legs carry no passed stops, got %v", leg.Passed)
	}
	if leg.Direction != "" {
		t.Errorf("walking legs carry no direction, got %q", leg.Direction)
	}
}

func TestJourneyLegDelayOmittedWithoutRealtime(t *testing.T) {
	n := newTestNormalizer(t, Options{})
	tables := n.BuildTables(testCommon())

	j, err := n.Journey(tables, testConnection())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	leg := j.Legs[2]
	if leg.Delay != nil {
		t.Errorf("expected no delay without realtime data, got %v", leg.Delay)
	}
	if leg.Departure != "2020-06-10T11:20:00+02:00" {
		t.Errorf("scheduled departure expected, got %q", leg.Departure)
	}
}

func TestJourneyAlternatives(t *testing.T) {
	n := newTestNormalizer(t, Options{})
	tables := n.BuildTables(testCommon())

	c := testConnection()
	c.SecL[0].Jny.Freq = &hafas.RawFrequency{
		JnyL: []hafas.RawFrequencyJny{
			{
				ProdX: 0,
				StopL: []hafas.RawStopover{{LocX: 0, DTimeS: "111000"}},
			},
			{
				// Departs elsewhere, filtered out.
				ProdX: 0,
				StopL: []hafas.RawStopover{{LocX: 1, DTimeS: "111500"}},
			},
			{
				// No stops at all, filtered out.
				ProdX: 0,
			},
		},
	}

	j, err := n.Journey(tables, c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	alts := j.Legs[0].Alternatives
	if len(alts) != 1 {
		t.Fatalf("expected 1 alternative, got %d", len(alts))
	}
	if alts[0].Line == nil || alts[0].Line.Name != "U2" {
		t.Errorf("unexpected alternative line: %+v", alts[0].Line)
	}
	if alts[0].When != "2020-06-10T11:10:00+02:00" {
		t.Errorf("unexpected alternative departure %q", alts[0].When)
	}
}

func TestJourneyNoSections(t *testing.T) {
	n := newTestNormalizer(t, Options{})
	tables := n.BuildTables(testCommon())

	for _, c := range []*hafas.RawConnection{nil, {Date: "20200610"}} {
		_, err := n.Journey(tables, c)
		if err == nil {
			t.Fatal("expected an error for a section-less connection")
		}
		if !errors.Is(err, ErrNoSections) {
			t.Errorf("expected ErrNoSections, got %v", err)
		}
	}
}

func TestJourneyBadLocationIndex(t *testing.T) {
	n := newTestNormalizer(t, Options{})
	tables := n.BuildTables(testCommon())

	c := testConnection()
	c.SecL[0].Dep.LocX = 99

	_, err := n.Journey(tables, c)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestJourneyBadProductIndex(t *testing.T) {
	n := newTestNormalizer(t, Options{})
	tables := n.BuildTables(testCommon())

	c := testConnection()
	c.SecL[0].Jny.ProdX = 42

	if _, err := n.Journey(tables, c); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestJourneyLegOriginsAreCopies(t *testing.T) {
	n := newTestNormalizer(t, Options{})
	tables := n.BuildTables(testCommon())

	j, err := n.Journey(tables, testConnection())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stop := j.Legs[0].Origin.(*transit.Stop)
	stop.Name = "mutated"

	orig, _ := tables.Place(0)
	if orig.(*transit.Stop).Name == "mutated" {
		t.Error("leg origin aliased the shared station table")
	}
}
