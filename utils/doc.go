// Package utils provides the shared helpers for HAFAS response
// normalization: the compact date/time resolver, fixed-point coordinate
// decoding, slug derivation, and text cleanup.
package utils
