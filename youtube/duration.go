package youtube

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatDuration converts an ISO 8601 duration as returned by the videos
// endpoint (e.g. "PT1H2M3S") into a clock string: "H:MM:SS" when hours
// are present, "M:SS" otherwise. Missing components count as zero, so an
// empty or markerless value formats as "0:00".
func FormatDuration(raw string) string {
	rest := strings.TrimPrefix(raw, "PT")

	var hours, minutes, seconds int
	if i := strings.IndexByte(rest, 'H'); i >= 0 {
		hours, _ = strconv.Atoi(rest[:i])
		rest = rest[i+1:]
	}
	if i := strings.IndexByte(rest, 'M'); i >= 0 {
		minutes, _ = strconv.Atoi(rest[:i])
		rest = rest[i+1:]
	}
	if i := strings.IndexByte(rest, 'S'); i >= 0 {
		seconds, _ = strconv.Atoi(rest[:i])
	}

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}
