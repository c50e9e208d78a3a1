package matching_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qtrack/internal/config"
	"qtrack/internal/domain"
	"qtrack/internal/matching"
)

// stubSource serves a fixed project list.
type stubSource struct {
	projects []domain.Project
}

func (s *stubSource) Snapshot(_ context.Context) ([]domain.Project, error) {
	return s.projects, nil
}

func testMatchingConfig() *config.MatchingConfig {
	return &config.MatchingConfig{
		MinSimilarity:  80,
		ItemNameWeight: 0.6,
		PartNoWeight:   0.4,
	}
}

func project(item, partNo string) domain.Project {
	return domain.Project{
		ID:       uuid.New(),
		ItemName: item,
		PartNo:   partNo,
		Status:   domain.ProjectStatusActive,
	}
}

func TestMatcher_Best_ExactMatch(t *testing.T) {
	src := &stubSource{projects: []domain.Project{
		project("BRACKET ASSY", "BS-062A"),
		project("MOTOR HOUSING", "MH-310"),
	}}
	m := matching.NewMatcher(src, testMatchingConfig())

	best, err := m.Best(context.Background(), "BRACKET ASSY", "BS-062A")
	require.NoError(t, err)
	require.NotNil(t, best)
	assert.Equal(t, "BRACKET ASSY", best.Project.ItemName)
	assert.Equal(t, 100.0, best.Score)
}

func TestMatcher_Best_NoneAboveThreshold(t *testing.T) {
	src := &stubSource{projects: []domain.Project{
		project("MOTOR HOUSING", "MH-310"),
	}}
	m := matching.NewMatcher(src, testMatchingConfig())

	best, err := m.Best(context.Background(), "BRACKET ASSY", "BS-062A")
	require.NoError(t, err)
	assert.Nil(t, best)
}

func TestMatcher_All_WeightedScore(t *testing.T) {
	// Item name matches perfectly but the part number does not; the 0.6/0.4
	// blend must pull the score below the threshold.
	src := &stubSource{projects: []domain.Project{
		project("BRACKET ASSY", "ZZZZZZ"),
	}}
	m := matching.NewMatcher(src, testMatchingConfig())

	candidates, err := m.All(context.Background(), "BRACKET ASSY", "BS-062A")
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestMatcher_All_MissingPartNumberNoPenalty(t *testing.T) {
	src := &stubSource{projects: []domain.Project{
		project("BRACKET ASSY", "BS-062A"),
	}}
	m := matching.NewMatcher(src, testMatchingConfig())

	candidates, err := m.All(context.Background(), "BRACKET ASSY", "")
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, 100.0, candidates[0].Score)
}

func TestMatcher_All_ProjectWithoutPartNumberNoPenalty(t *testing.T) {
	src := &stubSource{projects: []domain.Project{
		project("BRACKET ASSY", ""),
	}}
	m := matching.NewMatcher(src, testMatchingConfig())

	candidates, err := m.All(context.Background(), "BRACKET ASSY", "BS-062A")
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, 100.0, candidates[0].Score)
}

func TestMatcher_Best_RanksCloserItemNameFirst(t *testing.T) {
	src := &stubSource{projects: []domain.Project{
		project("ENGINE MOUNT", ""),
		project("ENGINE BRACKET", ""),
	}}
	m := matching.NewMatcher(src, testMatchingConfig())

	best, err := m.Best(context.Background(), "ENGINE BRACKET", "")
	require.NoError(t, err)
	require.NotNil(t, best)
	assert.Equal(t, "ENGINE BRACKET", best.Project.ItemName)
}

func TestMatcher_All_SortedByScoreDescending(t *testing.T) {
	src := &stubSource{projects: []domain.Project{
		project("BRACKET ASSY L", "BS-062A"),
		project("BRACKET ASSY", "BS-062A"),
	}}
	m := matching.NewMatcher(src, testMatchingConfig())

	candidates, err := m.All(context.Background(), "BRACKET ASSY", "BS-062A")
	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, "BRACKET ASSY", candidates[0].Project.ItemName)
	assert.GreaterOrEqual(t, candidates[0].Score, candidates[1].Score)
}
