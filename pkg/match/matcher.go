package match

import "github.com/hbollon/go-edlib"

// Confidence buckets a similarity score.
type Confidence int

const (
	ConfidenceNone   Confidence = iota // Score < 0.70
	ConfidenceLow                      // Score >= 0.70
	ConfidenceMedium                   // Score >= 0.85
	ConfidenceHigh                     // Score >= 0.95
)

func (c Confidence) String() string {
	switch c {
	case ConfidenceHigh:
		return "high"
	case ConfidenceMedium:
		return "medium"
	case ConfidenceLow:
		return "low"
	default:
		return "none"
	}
}

// Result is the outcome of ranking candidates against a query.
type Result struct {
	Index      int     // Position of the best candidate, -1 when none scored
	Title      string  // The matched candidate title
	Score      float64 // Jaro-Winkler similarity (0.0-1.0)
	Confidence Confidence
}

// Best returns the candidate most similar to query. Jaro-Winkler
// favors shared prefixes, which suits show titles. Titles are
// normalized before comparison so accents, articles, and punctuation
// do not skew the score.
func Best(query string, candidates []string) Result {
	best := Result{Index: -1}
	if len(candidates) == 0 {
		return best
	}

	normalized := Normalize(query)

	for i, candidate := range candidates {
		score := float64(edlib.JaroWinklerSimilarity(normalized, Normalize(candidate)))
		if score > best.Score {
			best.Index = i
			best.Title = candidate
			best.Score = score
		}
	}

	switch {
	case best.Score >= 0.95:
		best.Confidence = ConfidenceHigh
	case best.Score >= 0.85:
		best.Confidence = ConfidenceMedium
	case best.Score >= 0.70:
		best.Confidence = ConfidenceLow
	default:
		best.Confidence = ConfidenceNone
		best.Index = -1
		best.Title = ""
	}

	return best
}
