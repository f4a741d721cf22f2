package match

import (
	"cmp"
	"slices"
)

// DefaultMinScore is the similarity a known name needs to be suggested.
const DefaultMinScore = 0.6

// Candidate is a known name scored against an unknown one.
type Candidate struct {
	Name  string
	Score float64
}

// CandidateList is sorted by descending score, then by name.
type CandidateList []Candidate

// Rank scores every known name against target.
func Rank(target string, known []string) CandidateList {
	out := make(CandidateList, 0, len(known))
	for _, name := range known {
		out = append(out, Candidate{Name: name, Score: IdentSimilarity(target, name)})
	}

	slices.SortFunc(out, func(a, b Candidate) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}

		return cmp.Compare(a.Name, b.Name)
	})

	return out
}

// Best returns the top candidate, or nil for an empty list.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}

	return &c[0]
}

// AboveThreshold returns the candidates scoring at least threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var out CandidateList
	for _, cand := range c {
		if cand.Score >= threshold {
			out = append(out, cand)
		}
	}

	return out
}

// Suggest returns the known name closest to target, if it is close enough.
func Suggest(target string, known []string) (string, bool) {
	best := Rank(target, known).AboveThreshold(DefaultMinScore).Best()
	if best == nil {
		return "", false
	}

	return best.Name, true
}
