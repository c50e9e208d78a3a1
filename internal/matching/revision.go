package matching

import (
	"regexp"
	"strconv"
)

// revisionPattern matches REV/REVISION/R followed by an optional separator
// and a number. The leading character class keeps the bare "R" form from
// firing inside words like "MOTOR 3".
var revisionPattern = regexp.MustCompile(`(?i)(?:^|[^A-Za-z0-9])(?:REV(?:ISION)?|R)[._\-\s]?([0-9]+(?:\.[0-9]+)?)`)

// ExtractRevision returns the revision number embedded in a filename, or
// 0.0 when none is found. When the marker appears more than once, the last
// occurrence wins: the trailing revision marker is authoritative.
func ExtractRevision(filename string) float64 {
	matches := revisionPattern.FindAllStringSubmatch(filename, -1)
	if len(matches) == 0 {
		return 0
	}
	rev, err := strconv.ParseFloat(matches[len(matches)-1][1], 64)
	if err != nil {
		return 0
	}
	return rev
}
