package profile

import (
	"time"

	"github.com/theoremus-urban-solutions/hafas-to-transit/hafas"
	"github.com/theoremus-urban-solutions/hafas-to-transit/transit"
)

// Profile supplies the provider-specific pieces of normalization.
// Implementations must be safe for concurrent use; the normalizer calls
// them from pure functions.
type Profile interface {
	// ParseDateTime resolves a compact (date, time-of-day) pair into an
	// absolute timestamp in the provider's timezone. ok is false when the
	// pair is missing or unparseable.
	ParseDateTime(date, tod string) (t time.Time, ok bool)

	// ParseStationName cleans up a raw station display name.
	ParseStationName(name string) string

	// ParseProductsBitmask decodes a product-availability bitmask into
	// named transport-mode flags.
	ParseProductsBitmask(bitmask int) []string

	// ParseLine normalizes a raw product record. Nil input yields nil.
	ParseLine(p *hafas.RawProduct) *transit.Line
}
