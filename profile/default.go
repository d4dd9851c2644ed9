package profile

import (
	"strconv"
	"time"

	"github.com/theoremus-urban-solutions/hafas-to-transit/hafas"
	"github.com/theoremus-urban-solutions/hafas-to-transit/transit"
	"github.com/theoremus-urban-solutions/hafas-to-transit/utils"
)

// Product maps a transport-mode flag to the bitmask values that encode
// it. A product may occupy several bits when the provider splits one mode
// across classes.
type Product struct {
	ID       string
	Bitmasks []int
}

// DefaultProducts is the product table used when a deployment configures
// none.
var DefaultProducts = []Product{
	{ID: "suburban", Bitmasks: []int{1}},
	{ID: "subway", Bitmasks: []int{2}},
	{ID: "tram", Bitmasks: []int{4}},
	{ID: "bus", Bitmasks: []int{8}},
	{ID: "ferry", Bitmasks: []int{16}},
	{ID: "express", Bitmasks: []int{32}},
	{ID: "regional", Bitmasks: []int{64}},
}

// Default is the generic profile: timezone-based date/time resolution,
// whitespace-collapsing station names, table-driven bitmask decoding, and
// the generic line algorithm.
type Default struct {
	loc      *time.Location
	products []Product
}

// NewDefault builds a Default profile for the given IANA timezone.
// An empty product table falls back to DefaultProducts.
func NewDefault(timezone string, products []Product) (*Default, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		products = DefaultProducts
	}
	return &Default{loc: loc, products: products}, nil
}

func (d *Default) ParseDateTime(date, tod string) (time.Time, bool) {
	return utils.ResolveDateTime(d.loc, date, tod)
}

func (d *Default) ParseStationName(name string) string {
	return utils.CollapseWhitespace(name)
}

func (d *Default) ParseProductsBitmask(bitmask int) []string {
	flags := []string{}
	for _, p := range d.products {
		for _, mask := range p.Bitmasks {
			if bitmask&mask != 0 {
				flags = append(flags, p.ID)
				break
			}
		}
	}
	return flags
}

// ParseLine implements the generic line algorithm: name falls back from
// the line field to the name field, the class code is copied when
// present, and the merged product context yields the numeric product code
// and display name.
func (d *Default) ParseLine(p *hafas.RawProduct) *transit.Line {
	if p == nil {
		return nil
	}
	line := &transit.Line{Type: "line", Name: p.Line}
	if line.Name == "" {
		line.Name = p.Name
	}
	if p.Cls != nil {
		cls := *p.Cls
		line.Class = &cls
	}
	if ctx := p.EffectiveContext(); ctx != nil {
		if code, err := strconv.Atoi(ctx.CatCode); err == nil {
			line.ProductCode = &code
		}
		line.ProductName = ctx.CatOutS
	}
	return line
}
