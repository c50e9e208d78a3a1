package matching

import (
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// ParsedFilename is the identity extracted from an uploaded filename.
// PartNumber may be empty; that is an expected outcome, not a failure.
type ParsedFilename struct {
	DocType    string `json:"doc_type"`
	PartName   string `json:"part_name"`
	PartNumber string `json:"part_number"`
}

// revisionMarker matches "REV"/"REVISION" with an optional separator and a
// number. Markers are stripped from the name before tokenizing; the numeric
// value itself is recovered by ExtractRevision from the original filename.
var revisionMarker = regexp.MustCompile(`(?i)\bREV(?:ISION)?[._\-\s]*[0-9]+(?:\.[0-9]+)?`)

// joinedPartNumber matches alphanumeric runs joined by hyphens or
// underscores, e.g. "BS-062A-2".
var joinedPartNumber = regexp.MustCompile(`^[A-Za-z0-9]+(?:[-_][A-Za-z0-9]+)+$`)

// Parser extracts document identity from filenames following the plant
// naming convention: the document-type label leads, the part number (if
// present) trails the item name.
type Parser struct {
	labels []string
}

// NewParser creates a Parser for the given document-type labels. Labels are
// matched case-insensitively; longer labels win so that a label that is a
// prefix of another cannot shadow it.
func NewParser(labels []string) *Parser {
	sorted := make([]string, len(labels))
	copy(sorted, labels)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i]) > len(sorted[j])
	})
	return &Parser{labels: sorted}
}

// Parse extracts {docType, partName, partNumber} from a raw filename.
// It returns nil only when no configured label matches the start of the
// name; the label must be the leading token, not merely present somewhere.
func (p *Parser) Parse(filename string) *ParsedFilename {
	name := strings.TrimSpace(strings.TrimSuffix(filename, filepath.Ext(filename)))
	if name == "" {
		return nil
	}

	docType, rest := p.matchLabel(name)
	if docType == "" {
		return nil
	}

	rest = revisionMarker.ReplaceAllString(rest, " ")
	tokens := strings.Fields(rest)

	// Scan backward: the last token that looks like a part number wins;
	// everything before it is the part name.
	partIdx := -1
	for i := len(tokens) - 1; i >= 0; i-- {
		if isPartNumberToken(tokens[i]) {
			partIdx = i
			break
		}
	}

	parsed := &ParsedFilename{DocType: docType}
	if partIdx >= 0 {
		parsed.PartNumber = tokens[partIdx]
		parsed.PartName = strings.Join(tokens[:partIdx], " ")
	} else {
		parsed.PartName = strings.Join(tokens, " ")
	}
	return parsed
}

// matchLabel returns the configured label found at the start of name and
// the remainder after it, or ("", "") when no label matches.
func (p *Parser) matchLabel(name string) (string, string) {
	upper := strings.ToUpper(name)
	for _, label := range p.labels {
		lu := strings.ToUpper(label)
		if !strings.HasPrefix(upper, lu) {
			continue
		}
		rest := name[len(label):]
		// The label must end at a token boundary.
		if rest != "" && isAlphanumeric(rune(rest[0])) {
			continue
		}
		return label, strings.TrimSpace(rest)
	}
	return "", ""
}

// isPartNumberToken reports whether a token looks like a part number:
// either alphanumeric runs joined by '-'/'_', or a short 3-6 char token
// mixing letters and digits (e.g. "Y4L", "0W010").
func isPartNumberToken(token string) bool {
	if joinedPartNumber.MatchString(token) {
		return true
	}
	if len(token) < 3 || len(token) > 6 {
		return false
	}
	hasLetter, hasDigit := false, false
	for _, r := range token {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}

func isAlphanumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
