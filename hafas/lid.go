package hafas

import "strings"

// ParseLID splits a composite location identifier such as
// "A=1@O=U Spichernstr.@X=13329811@Y=52496171@L=900000042101@" into its
// key-value components. Malformed segments are skipped.
func ParseLID(id string) map[string]string {
	fields := map[string]string{}
	for _, part := range strings.Split(id, "@") {
		if part == "" {
			continue
		}
		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 || kv[0] == "" {
			continue
		}
		fields[kv[0]] = kv[1]
	}
	return fields
}
