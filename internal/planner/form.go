package planner

import (
	"math"
	"strconv"
	"strings"

	"github.com/wichananm65/pergola-planner/internal/option"
	"github.com/wichananm65/pergola-planner/internal/recommend"
)

// Form holds the planner fields exactly as the user typed them.
type Form struct {
	Width   string `json:"width"`
	Depth   string `json:"depth"`
	UseCase string `json:"useCase"`
	Style   string `json:"style"`
}

// FormPatch changes only the fields that are set.
type FormPatch struct {
	Width   *string `json:"width,omitempty"`
	Depth   *string `json:"depth,omitempty"`
	UseCase *string `json:"useCase,omitempty"`
	Style   *string `json:"style,omitempty"`
}

func (f Form) Apply(p FormPatch) Form {
	if p.Width != nil {
		f.Width = *p.Width
	}
	if p.Depth != nil {
		f.Depth = *p.Depth
	}
	if p.UseCase != nil {
		f.UseCase = *p.UseCase
	}
	if p.Style != nil {
		f.Style = *p.Style
	}
	return f
}

// CanSubmit reports whether width and depth are both present and positive.
func (f Form) CanSubmit() bool {
	_, wok := positive(f.Width)
	_, dok := positive(f.Depth)
	return wok && dok
}

// Validate returns one message per invalid field; an empty map means the
// form may be submitted.
func (f Form) Validate() map[string]string {
	errs := map[string]string{}
	if _, ok := positive(f.Width); !ok {
		errs["width"] = "width must be a number greater than 0"
	}
	if _, ok := positive(f.Depth); !ok {
		errs["depth"] = "depth must be a number greater than 0"
	}
	if !option.Valid(option.UseCases, f.UseCase) {
		errs["useCase"] = "unknown use case"
	}
	if !option.Valid(option.Styles, f.Style) {
		errs["style"] = "unknown style"
	}
	return errs
}

// Space converts the form into engine input. ok is false unless CanSubmit.
func (f Form) Space() (space recommend.UserSpace, ok bool) {
	w, wok := positive(f.Width)
	d, dok := positive(f.Depth)
	if !wok || !dok {
		return recommend.UserSpace{}, false
	}
	return recommend.UserSpace{Width: w, Depth: d, UseCase: f.UseCase, Style: f.Style}, true
}

func positive(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, false
	}
	return v, true
}
