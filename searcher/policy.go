package searcher

import "math"

// uct scores children of one parent. The exploration numerator c²·ln(N)
// depends only on the parent, so it is computed once per selection.
type uct struct {
	numerator float64
}

func newUCT(cSquared float64, parentVisits float64) *uct {
	if parentVisits == 0 {
		panic("N cannot be 0")
	}
	return &uct{numerator: cSquared * math.Log(parentVisits)}
}

func (u uct) evaluate(rewards float64, visits float64) float64 {
	if visits == 0 {
		panic("n cannot be 0")
	}
	// UCT = q/n + sqrt(c^2*ln(N)/n)
	return rewards/visits + math.Sqrt(u.numerator/visits)
}
