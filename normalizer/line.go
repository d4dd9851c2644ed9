package normalizer

import (
	"github.com/theoremus-urban-solutions/hafas-to-transit/hafas"
	"github.com/theoremus-urban-solutions/hafas-to-transit/transit"
	"github.com/theoremus-urban-solutions/hafas-to-transit/utils"
)

// Line normalizes a raw product record through the profile hook. Nil
// input yields nil output.
func (n *Normalizer) Line(p *hafas.RawProduct) *transit.Line {
	if p == nil {
		return nil
	}
	return n.profile.ParseLine(p)
}

// Operator derives operator identity from the operator name; the id is a
// deterministic slug. A nameless record yields nil.
func (n *Normalizer) Operator(op *hafas.RawOperator) *transit.Operator {
	if op == nil || op.Name == "" {
		return nil
	}
	return &transit.Operator{
		Type: "operator",
		ID:   utils.Slug(op.Name),
		Name: op.Name,
	}
}

// Remark is the resolution hook for remark-table entries. Full remark
// parsing is still unspecified upstream, so the hook yields nothing
// meaningful yet.
func (n *Normalizer) Remark(r *hafas.RawRemark) *transit.Remark {
	return nil
}
