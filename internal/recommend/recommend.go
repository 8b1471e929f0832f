// Package recommend ranks catalog plans against the space a user has
// available.
package recommend

import (
	"cmp"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/wichananm65/pergola-planner/internal/catalog"
	"github.com/wichananm65/pergola-planner/internal/sizespec"
)

// MaxResults caps the number of recommendations returned.
const MaxResults = 9

const (
	fitScore      = 100
	coverageBonus = 50
	styleBonus    = 10

	// coverage bonus applies strictly between these ratios
	minGoodCoverage = 0.3
	maxGoodCoverage = 0.8
)

// UserSpace is the available footprint plus optional preferences. Width and
// Depth must be positive; Recommend does not check.
type UserSpace struct {
	Width   float64 `json:"width"`
	Depth   float64 `json:"depth"`
	UseCase string  `json:"useCase,omitempty"`
	Style   string  `json:"style,omitempty"`
}

// Recommendation is a plan that fits, with its score and display metrics.
// Buffers are half the leftover width/depth with one fractional digit.
type Recommendation struct {
	catalog.Product
	Score           int    `json:"score"`
	AreaCoveragePct int    `json:"areaCoveragePct"`
	BufferWidth     string `json:"bufferWidth"`
	BufferDepth     string `json:"bufferDepth"`
}

// Recommend returns the best fitting plans, highest score first, at most
// MaxResults of them. Plans without a parseable size, or that do not fit
// without rotation, are left out. Equal scores keep catalog order.
func Recommend(space UserSpace, plans []catalog.Product) []Recommendation {
	avail := sizespec.Dimension{Width: space.Width, Depth: space.Depth}
	userArea := avail.Area()

	recs := make([]Recommendation, 0, len(plans))
	for _, p := range plans {
		size, ok := p.Spec(catalog.LabelSize)
		if !ok {
			continue
		}
		dim, ok := sizespec.Parse(size.Value)
		if !ok || !dim.FitsWithin(avail) {
			continue
		}

		coverage := dim.Area() / userArea
		recs = append(recs, Recommendation{
			Product:         p,
			Score:           score(p, coverage, space.Style),
			AreaCoveragePct: roundHalfUp(coverage * 100),
			BufferWidth:     formatBuffer((space.Width - dim.Width) / 2),
			BufferDepth:     formatBuffer((space.Depth - dim.Depth) / 2),
		})
	}

	slices.SortStableFunc(recs, func(a, b Recommendation) int {
		return cmp.Compare(b.Score, a.Score)
	})
	if len(recs) > MaxResults {
		recs = recs[:MaxResults]
	}
	return recs
}

// score assumes p already passed the fit test.
func score(p catalog.Product, coverage float64, style string) int {
	s := fitScore
	if coverage > minGoodCoverage && coverage < maxGoodCoverage {
		s += coverageBonus
	}
	if style != "" && strings.Contains(strings.ToLower(p.SpecValue(catalog.LabelStyle)), strings.ToLower(style)) {
		s += styleBonus
	}
	return s
}

func roundHalfUp(x float64) int {
	f := math.Floor(x)
	if x-f >= 0.5 {
		f++
	}
	return int(f)
}

// formatBuffer renders v with one fractional digit. Values exactly halfway
// between two tenths (only multiples of 0.25 with an odd quarter count) round
// away from zero; all others round to the nearest tenth.
func formatBuffer(v float64) string {
	if q := v * 4; q == math.Trunc(q) && math.Mod(q, 2) != 0 {
		return decimal.NewFromFloat(v).StringFixed(1)
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}
