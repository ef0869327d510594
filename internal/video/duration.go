package video

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// parseISODuration parses the ISO 8601 duration format the YouTube API uses
// for video lengths, e.g. "PT1H2M30S". Date components (years, months, days
// other than "D") do not occur for videos; "P0D" is returned for live
// streams and parses as zero.
func parseISODuration(s string) (time.Duration, error) {
	orig := s
	if !strings.HasPrefix(s, "P") {
		return 0, fmt.Errorf("invalid ISO 8601 duration %q", orig)
	}
	s = s[1:]

	var d time.Duration
	inTime := false
	num := ""

	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			num += string(r)
		case r == 'T':
			inTime = true
		default:
			if num == "" {
				return 0, fmt.Errorf("invalid ISO 8601 duration %q", orig)
			}
			n, err := strconv.Atoi(num)
			if err != nil {
				return 0, fmt.Errorf("invalid ISO 8601 duration %q", orig)
			}
			num = ""
			switch {
			case r == 'D' && !inTime:
				d += time.Duration(n) * 24 * time.Hour
			case r == 'H' && inTime:
				d += time.Duration(n) * time.Hour
			case r == 'M' && inTime:
				d += time.Duration(n) * time.Minute
			case r == 'S' && inTime:
				d += time.Duration(n) * time.Second
			default:
				return 0, fmt.Errorf("unsupported ISO 8601 duration %q", orig)
			}
		}
	}
	if num != "" {
		return 0, fmt.Errorf("invalid ISO 8601 duration %q", orig)
	}
	return d, nil
}
