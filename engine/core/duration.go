package core

import (
	"regexp"
	"strings"
	"time"

	str2duration "github.com/xhit/go-str2duration/v2"
)

var humanDurationRe = regexp.MustCompile(`^(\d+)\s+(seconds?|minutes?|hours?|days?|weeks?)$`)

// convertHumanToGoFormat rewrites spaced forms like "30 minutes" into the
// compact form the duration parser accepts. Unknown shapes pass through.
func convertHumanToGoFormat(s string) string {
	m := humanDurationRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return s
	}
	// The first letter of the unit is the compact suffix.
	return m[1] + m[2][:1]
}

// ParseHumanDuration parses durations in both Go format ("1h30m") and
// human-readable format ("30 minutes"). Day and week units are supported.
func ParseHumanDuration(s string) (time.Duration, error) {
	return str2duration.ParseDuration(convertHumanToGoFormat(s))
}
