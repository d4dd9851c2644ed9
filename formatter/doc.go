// Package formatter assembles normalized entities into the JSON
// documents the service and CLI surfaces emit.
package formatter
