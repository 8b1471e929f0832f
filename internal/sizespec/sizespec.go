// Package sizespec parses the free-form "Size" values found in plan specs,
// such as "14x14 ft", "14 x 14" or "14 by 14".
package sizespec

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// Dimension is a footprint in the unit the catalog uses (feet).
type Dimension struct {
	Width float64 `json:"width"`
	Depth float64 `json:"depth"`
}

var (
	unitReplacer = strings.NewReplacer("ft", "", "'", "")
	separatorRe  = regexp.MustCompile(`x| by `)
	// leading numeric prefix, the way a browser's parseFloat reads it
	numberPrefixRe = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:e[+-]?\d+)?`)
)

// Parse reads raw into a Dimension. ok is false for empty input, for input
// with fewer than two segments, or when either of the first two segments is
// not numeric. Segments past the second are ignored.
func Parse(raw string) (d Dimension, ok bool) {
	if raw == "" {
		return Dimension{}, false
	}
	clean := strings.TrimSpace(unitReplacer.Replace(strings.ToLower(raw)))
	parts := separatorRe.Split(clean, -1)
	if len(parts) < 2 {
		return Dimension{}, false
	}

	w, ok := parseNumber(parts[0])
	if !ok {
		return Dimension{}, false
	}
	dp, ok := parseNumber(parts[1])
	if !ok {
		return Dimension{}, false
	}
	return Dimension{Width: w, Depth: dp}, true
}

func parseNumber(s string) (float64, bool) {
	m := numberPrefixRe.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return v, true
}

// Area returns width times depth.
func (d Dimension) Area() float64 {
	return d.Width * d.Depth
}

// FitsWithin reports whether d fits inside space on both axes. The footprint
// is never rotated.
func (d Dimension) FitsWithin(space Dimension) bool {
	return d.Width <= space.Width && d.Depth <= space.Depth
}
