package utils

// Fixed-point scale factors for the two raw coordinate encodings. The
// crd/pos coordinate objects use six decimal places, the composite
// identifier's X/Y fields five.
const (
	coordScale = 1e6
	lidScale   = 1e5
)

// FromCoordFixedPoint decodes a crd/pos-style fixed-point pair into
// degrees. A missing pair is zero-valued on the wire, so a zero pair
// yields nil for both fields jointly rather than (0,0).
func FromCoordFixedPoint(x, y int64) (latitude, longitude *float64) {
	return decode(x, y, coordScale)
}

// FromLIDFixedPoint decodes the composite identifier's X/Y fields into
// degrees, with the same joint nil propagation as FromCoordFixedPoint.
func FromLIDFixedPoint(x, y int64) (latitude, longitude *float64) {
	return decode(x, y, lidScale)
}

func decode(x, y int64, scale float64) (latitude, longitude *float64) {
	if x == 0 && y == 0 {
		return nil, nil
	}
	lat := float64(y) / scale
	lon := float64(x) / scale
	return &lat, &lon
}
