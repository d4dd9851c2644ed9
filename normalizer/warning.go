package normalizer

import (
	"github.com/theoremus-urban-solutions/hafas-to-transit/hafas"
	"github.com/theoremus-urban-solutions/hafas-to-transit/transit"
	"github.com/theoremus-urban-solutions/hafas-to-transit/utils"
)

// warningTypesByIcon maps icon types to coarse warning categories.
var warningTypesByIcon = map[string]string{
	"HimWarn": "status",
}

// Warning normalizes a raw service-warning record, resolving edge and
// event references against the shared tables. Unresolvable references
// are silently dropped; every other missing field degrades to nil.
func (n *Normalizer) Warning(t *Tables, w *hafas.RawWarning) *transit.Warning {
	if w == nil {
		return nil
	}

	typ := "warning"
	var icon *transit.Icon
	if w.Icon != nil {
		icon = &transit.Icon{Type: w.Icon.Type, Res: w.Icon.Res}
		if mapped, ok := warningTypesByIcon[w.Icon.Type]; ok {
			typ = mapped
		}
	}

	res := &transit.Warning{
		Type:     typ,
		Icon:     icon,
		Priority: w.Prio,
		Category: copyInt(w.Cat),
	}
	if w.HID != "" {
		id := w.HID
		res.ID = &id
	}
	if w.Head != "" {
		summary := utils.BrToNewline(w.Head)
		res.Summary = &summary
	}
	if w.Text != "" {
		text := utils.BrToNewline(w.Text)
		res.Text = &text
	}
	if w.Prod != nil {
		res.Products = n.profile.ParseProductsBitmask(*w.Prod)
	}

	for _, ref := range w.EdgeRefL {
		i := ref.Int()
		if i < 0 || i >= len(t.Edges) {
			continue
		}
		res.Edges = append(res.Edges, n.edge(&t.Edges[i]))
	}
	for _, ref := range w.EventRefL {
		i := ref.Int()
		if i < 0 || i >= len(t.Events) {
			continue
		}
		res.Events = append(res.Events, n.event(&t.Events[i]))
	}

	if w.SDate != "" && w.STime != "" {
		if ts, ok := n.profile.ParseDateTime(w.SDate, w.STime); ok {
			res.ValidFrom = utils.Iso8601(ts)
		}
	}
	if w.EDate != "" && w.ETime != "" {
		if ts, ok := n.profile.ParseDateTime(w.EDate, w.ETime); ok {
			res.ValidUntil = utils.Iso8601(ts)
		}
	}
	if w.LModDate != "" && w.LModTime != "" {
		if ts, ok := n.profile.ParseDateTime(w.LModDate, w.LModTime); ok {
			res.Modified = utils.Iso8601(ts)
		}
	}
	return res
}

// edge normalizes a resolved edge entry: the internal index-only fields
// are dropped and the from/to locations renamed.
func (n *Normalizer) edge(e *hafas.RawEdge) transit.Edge {
	out := transit.Edge{Dir: copyInt(e.Dir)}
	if e.Icon != nil {
		out.Icon = &transit.Icon{Type: e.Icon.Type, Res: e.Icon.Res}
	}
	if e.FromLocation != nil {
		out.FromLoc = n.Place(e.FromLocation)
	}
	if e.ToLocation != nil {
		out.ToLoc = n.Place(e.ToLocation)
	}
	return out
}

// event normalizes a resolved event entry into its impact window.
func (n *Normalizer) event(e *hafas.RawEvent) transit.Event {
	out := transit.Event{Sections: e.SectionNums}
	if out.Sections == nil {
		out.Sections = []string{}
	}
	if e.FromLocation != nil {
		out.FromLoc = n.Place(e.FromLocation)
	}
	if e.ToLocation != nil {
		out.ToLoc = n.Place(e.ToLocation)
	}
	if e.FDate != "" && e.FTime != "" {
		if ts, ok := n.profile.ParseDateTime(e.FDate, e.FTime); ok {
			out.Start = utils.Iso8601(ts)
		}
	}
	if e.TDate != "" && e.TTime != "" {
		if ts, ok := n.profile.ParseDateTime(e.TDate, e.TTime); ok {
			out.End = utils.Iso8601(ts)
		}
	}
	return out
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
