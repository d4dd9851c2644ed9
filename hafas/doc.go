// Package hafas defines the raw wire shapes of HAFAS mgate and REST
// responses: loosely-structured records whose fields are partially
// optional, numerically encoded, and cross-referenced by integer index
// into the shared Common lookup block. The types here validate the
// discriminated raw shapes once at the JSON boundary; all semantic
// normalization happens in the normalizer package.
package hafas
