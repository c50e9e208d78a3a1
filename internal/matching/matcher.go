package matching

import (
	"context"
	"sort"

	"qtrack/internal/config"
	"qtrack/internal/domain"
)

// Candidate is one scored project match. ItemScore and PartNoScore are the
// raw field similarities; Score is the weighted blend used for ranking.
type Candidate struct {
	Project     domain.Project `json:"project"`
	Score       float64        `json:"score"`
	ItemScore   float64        `json:"item_score"`
	PartNoScore float64        `json:"part_no_score"`
}

// ProjectSource supplies a consistent read snapshot of the known projects.
type ProjectSource interface {
	Snapshot(ctx context.Context) ([]domain.Project, error)
}

// Matcher scores parsed filename identities against known projects.
type Matcher struct {
	source         ProjectSource
	minSimilarity  float64
	itemNameWeight float64
	partNoWeight   float64
}

// NewMatcher creates a Matcher with thresholds and weights from config.
func NewMatcher(source ProjectSource, cfg *config.MatchingConfig) *Matcher {
	return &Matcher{
		source:         source,
		minSimilarity:  cfg.MinSimilarity,
		itemNameWeight: cfg.ItemNameWeight,
		partNoWeight:   cfg.PartNoWeight,
	}
}

// All returns every project scoring at or above the similarity threshold,
// ordered by score descending. Equal scores keep project-list order.
func (m *Matcher) All(ctx context.Context, partName, partNumber string) ([]Candidate, error) {
	projects, err := m.source.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	var candidates []Candidate
	for _, p := range projects {
		itemScore := Similarity(partName, p.ItemName)

		// A missing part number on either side must not penalize the
		// match; the item-name similarity stands alone.
		score := itemScore
		partNoScore := 0.0
		if partNumber != "" && p.PartNo != "" {
			partNoScore = Similarity(partNumber, p.PartNo)
			score = m.itemNameWeight*itemScore + m.partNoWeight*partNoScore
		}

		if score < m.minSimilarity {
			continue
		}
		candidates = append(candidates, Candidate{
			Project:     p,
			Score:       score,
			ItemScore:   itemScore,
			PartNoScore: partNoScore,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	return candidates, nil
}

// Best returns the top-ranked candidate, or nil when no project clears the
// threshold.
func (m *Matcher) Best(ctx context.Context, partName, partNumber string) (*Candidate, error) {
	candidates, err := m.All(ctx, partName, partNumber)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, nil
	}
	return &candidates[0], nil
}
