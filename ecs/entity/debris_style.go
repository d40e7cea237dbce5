package entity

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/swiper/common"
	"github.com/milk9111/swiper/prefabs"
)

// DebrisShape is the per-body look and mass of one piece of debris. Hues
// are in [0, 1).
type DebrisShape struct {
	Width     float64
	Height    float64
	Mass      float64
	FillHue   float64
	BorderHue float64
}

// DebrisStyle decides the shape of the index-th debris body.
type DebrisStyle interface {
	Shape(index int, rng *rand.Rand) (DebrisShape, error)
}

// FormulaStyle draws width and mass uniformly from the configured ranges.
type FormulaStyle struct {
	Spec prefabs.DebrisSpec
}

func (f FormulaStyle) Shape(_ int, rng *rand.Rand) (DebrisShape, error) {
	return DebrisShape{
		Width:     common.RandomRange(rng, f.Spec.MinWidth, f.Spec.MaxWidth),
		Height:    f.Spec.Height,
		Mass:      common.RandomRange(rng, f.Spec.MinMass, f.Spec.MaxMass),
		FillHue:   rng.Float64(),
		BorderHue: rng.Float64(),
	}, nil
}

// ScriptStyle runs a tengo script once per body. The script sees `index`,
// `rand` (four uniform floats) and the configured ranges, and sets `width`,
// `height`, `mass`, `fill_hue` and `border_hue`.
type ScriptStyle struct {
	path     string
	compiled *tengo.Compiled
}

func NewScriptStyle(path string, spec prefabs.DebrisSpec) (*ScriptStyle, error) {
	src, err := prefabs.LoadScript(path)
	if err != nil {
		return nil, fmt.Errorf("debris: load style script %s: %w", path, err)
	}

	script := tengo.NewScript(src)
	_ = script.Add("index", 0)
	_ = script.Add("rand", []any{0.0, 0.0, 0.0, 0.0})
	_ = script.Add("min_width", spec.MinWidth)
	_ = script.Add("max_width", spec.MaxWidth)
	_ = script.Add("height", spec.Height)
	_ = script.Add("min_mass", spec.MinMass)
	_ = script.Add("max_mass", spec.MaxMass)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("debris: compile style script %s: %w", path, err)
	}
	for _, name := range []string{"width", "mass", "fill_hue", "border_hue"} {
		if !compiled.IsDefined(name) {
			return nil, fmt.Errorf("debris: style script %s does not define %q", path, name)
		}
	}

	return &ScriptStyle{path: path, compiled: compiled}, nil
}

func (s *ScriptStyle) Shape(index int, rng *rand.Rand) (DebrisShape, error) {
	r := []any{rng.Float64(), rng.Float64(), rng.Float64(), rng.Float64()}
	if err := s.compiled.Set("index", index); err != nil {
		return DebrisShape{}, err
	}
	if err := s.compiled.Set("rand", r); err != nil {
		return DebrisShape{}, err
	}
	if err := s.compiled.Run(); err != nil {
		return DebrisShape{}, fmt.Errorf("debris: run style script %s: %w", s.path, err)
	}

	shape := DebrisShape{
		Width:     s.compiled.Get("width").Float(),
		Height:    s.compiled.Get("height").Float(),
		Mass:      s.compiled.Get("mass").Float(),
		FillHue:   s.compiled.Get("fill_hue").Float(),
		BorderHue: s.compiled.Get("border_hue").Float(),
	}
	if shape.Width <= 0 || shape.Height <= 0 || shape.Mass <= 0 {
		return DebrisShape{}, fmt.Errorf("debris: style script %s produced degenerate shape %+v", s.path, shape)
	}
	return shape, nil
}

// NewDebrisStyle prefers the configured style script and falls back to the
// built-in formula when it is missing or broken.
func NewDebrisStyle(spec prefabs.DebrisSpec) DebrisStyle {
	if spec.StyleScript == "" {
		return FormulaStyle{Spec: spec}
	}
	style, err := NewScriptStyle(spec.StyleScript, spec)
	if err != nil {
		log.Printf("debris: %v; using built-in formula", err)
		return FormulaStyle{Spec: spec}
	}
	return style
}
