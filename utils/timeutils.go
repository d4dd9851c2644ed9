package utils

import (
	"math"
	"strconv"
	"time"
)

const (
	hafasDateLayout = "20060102"
	hafasTimeLayout = "150405"
)

// ResolveDateTime converts a HAFAS compact date ("20060102") and
// time-of-day ("150405") pair into an absolute timestamp in loc. A time
// value longer than six characters carries a signed day-offset prefix:
// every character before the final six is the offset in whole days, added
// to the base date. Month and year boundaries roll over via the calendar.
// ok is false when either value is missing or unparseable.
func ResolveDateTime(loc *time.Location, date, tod string) (t time.Time, ok bool) {
	if loc == nil || date == "" || tod == "" {
		return time.Time{}, false
	}
	offsetDays := 0
	if len(tod) > 6 {
		n, err := strconv.Atoi(tod[:len(tod)-6])
		if err != nil {
			return time.Time{}, false
		}
		offsetDays = n
		tod = tod[len(tod)-6:]
	}
	base, err := time.ParseInLocation(hafasDateLayout+hafasTimeLayout, date+tod, loc)
	if err != nil {
		return time.Time{}, false
	}
	return base.AddDate(0, 0, offsetDays), true
}

// EncodeDateTime renders a timestamp back into the compact (date, time)
// pair, with offsetDays prepended to the time value when non-zero.
func EncodeDateTime(t time.Time, offsetDays int) (date, tod string) {
	base := t.AddDate(0, 0, -offsetDays)
	tod = base.Format(hafasTimeLayout)
	if offsetDays != 0 {
		tod = strconv.Itoa(offsetDays) + tod
	}
	return base.Format(hafasDateLayout), tod
}

// Iso8601 renders a timestamp with its zone offset, the format downstream
// consumers expect.
func Iso8601(t time.Time) string {
	return t.Format(time.RFC3339)
}

// DelaySeconds is the realtime-minus-scheduled difference in whole
// seconds, rounded.
func DelaySeconds(realtime, scheduled time.Time) int {
	return int(math.Round(realtime.Sub(scheduled).Seconds()))
}
