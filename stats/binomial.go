package stats

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/stat/distuv"
)

var ErrInvalidProportion = errors.New("stats: invalid binomial proportion")

// CIMethod selects how BinomialCI builds the interval.
type CIMethod int

const (
	// Wilson is the Wilson score interval.
	Wilson CIMethod = iota
	// ClopperPearson is the exact interval derived from the beta distribution.
	ClopperPearson
)

func (m CIMethod) String() string {
	switch m {
	case Wilson:
		return "wilson"
	case ClopperPearson:
		return "clopper-pearson"
	}
	return fmt.Sprintf("CIMethod(%d)", int(m))
}

// ParseCIMethod parses "wilson", "clopper-pearson" or its alias "exact".
func ParseCIMethod(s string) (CIMethod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wilson", "":
		return Wilson, nil
	case "clopper-pearson", "exact":
		return ClopperPearson, nil
	}
	return 0, fmt.Errorf("stats: unknown interval method %q", s)
}

// BinomialCI returns the confidence interval of the success probability of
// a binomial experiment with the given number of successes and trials, at
// confidence level (for example 0.95).
func BinomialCI(successes, trials int, level float64, m CIMethod) (lo, hi float64, err error) {
	if trials <= 0 || successes < 0 || successes > trials {
		return 0, 0, fmt.Errorf("%w: %d successes out of %d trials", ErrInvalidProportion, successes, trials)
	}
	if !(level > 0 && level < 1) {
		return 0, 0, fmt.Errorf("%w: confidence level %g", ErrInvalidRange, level)
	}
	alpha := 1 - level
	k, n := float64(successes), float64(trials)
	switch m {
	case Wilson:
		z := distuv.UnitNormal.Quantile(1 - alpha/2)
		z2 := z * z
		p := k / n
		denom := 1 + z2/n
		center := (p + z2/(2*n)) / denom
		half := z * math.Sqrt(p*(1-p)/n+z2/(4*n*n)) / denom
		return math.Max(0, center-half), math.Min(1, center+half), nil
	case ClopperPearson:
		lo, hi = 0, 1
		if successes > 0 {
			lo = distuv.Beta{Alpha: k, Beta: n - k + 1}.Quantile(alpha / 2)
		}
		if successes < trials {
			hi = distuv.Beta{Alpha: k + 1, Beta: n - k}.Quantile(1 - alpha/2)
		}
		return lo, hi, nil
	}
	return 0, 0, fmt.Errorf("stats: unknown interval method %d", int(m))
}
