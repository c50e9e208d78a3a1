package matching_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qtrack/internal/matching"
)

var testLabels = []string{"FMEA", "CONTROL PLAN", "FLOW", "FLOW CHART", "MSA", "DRAWING"}

func TestParser_Parse_FullIdentity(t *testing.T) {
	p := matching.NewParser(testLabels)

	parsed := p.Parse("FMEA BRACKET ASSY BS-062A-2 REV.2.pdf")
	require.NotNil(t, parsed)
	assert.Equal(t, "FMEA", parsed.DocType)
	assert.Equal(t, "BRACKET ASSY", parsed.PartName)
	assert.Equal(t, "BS-062A-2", parsed.PartNumber)
}

func TestParser_Parse_LongestLabelWins(t *testing.T) {
	p := matching.NewParser(testLabels)

	parsed := p.Parse("FLOW CHART MOTOR 0W010.pdf")
	require.NotNil(t, parsed)
	assert.Equal(t, "FLOW CHART", parsed.DocType)
	assert.Equal(t, "MOTOR", parsed.PartName)
	assert.Equal(t, "0W010", parsed.PartNumber)
}

func TestParser_Parse_NoLabel(t *testing.T) {
	p := matching.NewParser(testLabels)

	assert.Nil(t, p.Parse("BRACKET ASSY BS-062A.pdf"))
}

func TestParser_Parse_LabelMustLead(t *testing.T) {
	p := matching.NewParser(testLabels)

	assert.Nil(t, p.Parse("BRACKET FMEA BS-062A.pdf"))
}

func TestParser_Parse_LabelBoundary(t *testing.T) {
	p := matching.NewParser(testLabels)

	// "MSA" may not match inside a longer word.
	assert.Nil(t, p.Parse("MSATURN GEAR 4H7.pdf"))
}

func TestParser_Parse_MissingPartNumber(t *testing.T) {
	p := matching.NewParser(testLabels)

	parsed := p.Parse("FMEA COVER PLATE.pdf")
	require.NotNil(t, parsed)
	assert.Equal(t, "COVER PLATE", parsed.PartName)
	assert.Empty(t, parsed.PartNumber)
}

func TestParser_Parse_RevisionMarkerNotPartNumber(t *testing.T) {
	p := matching.NewParser(testLabels)

	parsed := p.Parse("FMEA PART Y4L REV.2.pdf")
	require.NotNil(t, parsed)
	assert.Equal(t, "PART", parsed.PartName)
	assert.Equal(t, "Y4L", parsed.PartNumber)
}

func TestParser_Parse_CaseInsensitive(t *testing.T) {
	p := matching.NewParser(testLabels)

	parsed := p.Parse("fmea bracket bs-062a.pdf")
	require.NotNil(t, parsed)
	assert.Equal(t, "FMEA", parsed.DocType)
	assert.Equal(t, "bs-062a", parsed.PartNumber)
}

func TestParser_Parse_ShortAlphanumericToken(t *testing.T) {
	p := matching.NewParser(testLabels)

	parsed := p.Parse("DRAWING SHAFT Y4L.pdf")
	require.NotNil(t, parsed)
	assert.Equal(t, "SHAFT", parsed.PartName)
	assert.Equal(t, "Y4L", parsed.PartNumber)
}

func TestParser_Parse_LastPartNumberTokenWins(t *testing.T) {
	p := matching.NewParser(testLabels)

	parsed := p.Parse("DRAWING A1B HOUSING HC-100.pdf")
	require.NotNil(t, parsed)
	assert.Equal(t, "HC-100", parsed.PartNumber)
	assert.Equal(t, "A1B HOUSING", parsed.PartName)
}

func TestParser_Parse_EmptyName(t *testing.T) {
	p := matching.NewParser(testLabels)

	assert.Nil(t, p.Parse(".pdf"))
	assert.Nil(t, p.Parse(""))
}
