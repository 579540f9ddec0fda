package eval

import (
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// SimilarityThreshold is the fixed cutoff for the string distance metric.
// Outputs at or below this distance are considered similar enough.
const SimilarityThreshold = 0.3

// ScoreResult holds both comparison metrics for one actual/expected pair.
// It is entirely derived and recomputed per comparison.
type ScoreResult struct {
	// ExactMatchScore is 1.0 if the strings are identical, else 0.0.
	ExactMatchScore float64 `json:"exact_match_score"`

	// StringDistanceScore is the normalized edit distance in [0, 1],
	// where 0 means identical.
	StringDistanceScore float64 `json:"string_distance_score"`

	// ExactMatch is true iff ExactMatchScore == 1.0.
	ExactMatch bool `json:"exact_match"`

	// SimilarityThresholdMet is true iff StringDistanceScore <= SimilarityThreshold.
	SimilarityThresholdMet bool `json:"similarity_threshold_met"`
}

// Scorer compares actual model output against expected output.
// It performs no I/O and holds no state; Score is deterministic.
type Scorer struct{}

// NewScorer creates a Scorer.
func NewScorer() *Scorer {
	return &Scorer{}
}

// Score computes both metrics for one comparison. Empty strings are valid
// and compared literally. The comparison is case-sensitive with no
// normalization: any byte difference fails the exact match.
func (s *Scorer) Score(actual, expected string) (ScoreResult, error) {
	exact := 0.0
	if actual == expected {
		exact = 1.0
	}

	distance := normalizedDistance(actual, expected)

	return ScoreResult{
		ExactMatchScore:        exact,
		StringDistanceScore:    distance,
		ExactMatch:             exact == 1.0,
		SimilarityThresholdMet: distance <= SimilarityThreshold,
	}, nil
}

// normalizedDistance is the Levenshtein distance between the two strings
// scaled by the longer string's rune count. Two empty strings are identical,
// so their distance is 0.
func normalizedDistance(a, b string) float64 {
	longest := utf8.RuneCountInString(a)
	if n := utf8.RuneCountInString(b); n > longest {
		longest = n
	}
	if longest == 0 {
		return 0.0
	}

	return float64(levenshtein.ComputeDistance(a, b)) / float64(longest)
}
