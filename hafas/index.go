package hafas

import (
	"bytes"
	"fmt"
	"strconv"
)

// Index is a position into one of the shared lookup tables. Upstream
// encodes these inconsistently as JSON numbers or numeric strings
// depending on endpoint and provider version, so both forms unmarshal.
type Index int

func (i *Index) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(b, `"`)
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	n, err := strconv.Atoi(string(b))
	if err != nil {
		return fmt.Errorf("hafas: index %q is not numeric", b)
	}
	*i = Index(n)
	return nil
}

func (i Index) Int() int { return int(i) }
