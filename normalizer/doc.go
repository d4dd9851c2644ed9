// Package normalizer converts raw HAFAS payloads into the unified
// transit data model.
//
// Every conversion is a pure function of its inputs: a raw record, the
// caller-supplied Tables holding the already-resolved flat lookup tables,
// and the provider profile. Nothing is mutated after construction and no
// state outlives a call, so concurrent invocations with disjoint inputs
// are safe.
//
// Missing or malformed optional upstream data never raises: absent
// fields degrade to nil or omitted output fields. Errors are reserved
// for caller contract violations, such as resolving an out-of-range
// lookup index or normalizing a connection with no sections.
package normalizer
