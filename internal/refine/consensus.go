package refine

import "math"

// Consensus combines several independent confidence estimates of the
// same result (SPEC_FULL.md §F.3, supplementing spec.md §4.7's "consensus
// of multiple independent estimates boosts the score when their spread
// is small"): the combined score is the mean, boosted toward 1 in
// proportion to how tightly the estimates agree. A single estimate
// passes through unchanged (no boost possible without at least two
// independent opinions); an empty slice yields a zero, Low score.
func Consensus(scores []Score) Score {
	if len(scores) == 0 {
		return Score{Value: 0, Level: Low}
	}
	if len(scores) == 1 {
		return scores[0]
	}

	mean := 0.0
	for _, s := range scores {
		mean += s.Value
	}
	mean /= float64(len(scores))

	variance := 0.0
	for _, s := range scores {
		d := s.Value - mean
		variance += d * d
	}
	variance /= float64(len(scores))
	stddev := math.Sqrt(variance)

	// Agreement in [0,1]: 1 when every estimate coincides, decaying to 0
	// once the spread reaches 0.2 (an arbitrary but documented scale — a
	// stddev that wide means the estimates disagree about which
	// confidence tier the result belongs to).
	agreement := clamp01(1 - stddev/0.2)
	boosted := mean + (1-mean)*agreement*0.25
	boosted = clamp01(boosted)
	return Score{Value: boosted, Level: levelOf(boosted)}
}
