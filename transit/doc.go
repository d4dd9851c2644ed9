// Package transit defines the normalized public transit data model:
// the single consistent shape client applications consume regardless of
// which upstream endpoint produced the raw payload. All types are plain
// value objects, constructed once per normalization call and serializable
// to JSON documents of strings, numbers, booleans, nulls, lists, and
// nested documents.
package transit
