package searcher

import "math"

type ucb struct {
	scale     float64
	numerator float64
}

func newUCB(scale float64, N int) *ucb {
	if N == 0 {
		panic("N cannot be 0")
	}
	return &ucb{scale: scale, numerator: 2 * math.Log(float64(N))}
}

func (u ucb) evaluate(q float64, n int) float64 {
	if n == 0 {
		panic("n cannot be 0")
	}
	// UCB = q/n + scale*sqrt(2*ln(N)/n)
	return q/float64(n) + u.scale*math.Sqrt(u.numerator/float64(n))
}
