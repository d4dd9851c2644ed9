package normalizer

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"

	"github.com/theoremus-urban-solutions/hafas-to-transit/hafas"
	"github.com/theoremus-urban-solutions/hafas-to-transit/transit"
)

// ErrIndexOutOfRange marks a lookup index pointing outside its table.
// Raw records referencing entries the caller never supplied indicate a
// contract violation, not an upstream data irregularity.
var ErrIndexOutOfRange = errors.New("lookup index out of range")

// Tables are the resolved flat lookup tables raw records reference by
// integer index. They are read-only for the duration of a normalization
// call; ownership stays with the caller.
type Tables struct {
	Stations  []transit.Place
	Lines     []*transit.Line
	Operators []*transit.Operator
	Remarks   []*transit.Remark
	Edges     []hafas.RawEdge
	Events    []hafas.RawEvent
}

// BuildTables normalizes a raw Common block into lookup tables, running
// the location, line, operator, and remark normalizers entry-wise.
func (n *Normalizer) BuildTables(c *hafas.Common) *Tables {
	t := &Tables{
		Edges:  c.HimMsgEdgeL,
		Events: c.HimMsgEventL,
	}
	for i := range c.LocL {
		t.Stations = append(t.Stations, n.Place(&c.LocL[i]))
	}
	for i := range c.ProdL {
		t.Lines = append(t.Lines, n.Line(&c.ProdL[i]))
	}
	for i := range c.OpL {
		t.Operators = append(t.Operators, n.Operator(&c.OpL[i]))
	}
	for i := range c.RemL {
		t.Remarks = append(t.Remarks, n.Remark(&c.RemL[i]))
	}
	return t
}

// Place resolves a station-table entry. Out-of-range access is a caller
// contract violation.
func (t *Tables) Place(i int) (transit.Place, error) {
	if i < 0 || i >= len(t.Stations) {
		return nil, fmt.Errorf("station %d of %d: %w", i, len(t.Stations), ErrIndexOutOfRange)
	}
	return t.Stations[i], nil
}

// PlaceCopy resolves a station-table entry into a fresh deep copy, so a
// caller decorating the result never aliases the shared table.
func (t *Tables) PlaceCopy(i int) (transit.Place, error) {
	p, err := t.Place(i)
	if err != nil {
		return nil, err
	}
	switch v := p.(type) {
	case *transit.Stop:
		out := &transit.Stop{}
		if err := copier.CopyWithOption(out, v, copier.Option{DeepCopy: true}); err != nil {
			return nil, err
		}
		return out, nil
	case *transit.Location:
		out := &transit.Location{}
		if err := copier.CopyWithOption(out, v, copier.Option{DeepCopy: true}); err != nil {
			return nil, err
		}
		return out, nil
	}
	return p, nil
}

// Line resolves a line-table entry.
func (t *Tables) Line(i int) (*transit.Line, error) {
	if i < 0 || i >= len(t.Lines) {
		return nil, fmt.Errorf("line %d of %d: %w", i, len(t.Lines), ErrIndexOutOfRange)
	}
	return t.Lines[i], nil
}

// Remark resolves a remark-table entry.
func (t *Tables) Remark(i int) (*transit.Remark, error) {
	if i < 0 || i >= len(t.Remarks) {
		return nil, fmt.Errorf("remark %d of %d: %w", i, len(t.Remarks), ErrIndexOutOfRange)
	}
	return t.Remarks[i], nil
}
