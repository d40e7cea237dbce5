package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const SwiperSpecFile = "swiper.yaml"

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// SwiperSpec describes the whole scene: the carousel track, the drag
// filter, the debris pool and the physics space.
type SwiperSpec struct {
	Name     string       `yaml:"name"`
	Carousel CarouselSpec `yaml:"carousel"`
	Motion   MotionSpec   `yaml:"motion"`
	Debris   DebrisSpec   `yaml:"debris"`
	Physics  PhysicsSpec  `yaml:"physics"`
}

type CarouselSpec struct {
	ItemCount   int       `yaml:"item_count"`
	ItemWidth   float64   `yaml:"item_width"`
	ItemGap     float64   `yaml:"item_gap"`
	AnchorScale float64   `yaml:"anchor_scale"`
	Fill        YAMLColor `yaml:"fill"`
	Border      YAMLColor `yaml:"border"`
}

type MotionSpec struct {
	FollowDecay    float64 `yaml:"follow_decay"`
	EdgeEase       float64 `yaml:"edge_ease"`
	EdgeResistance float64 `yaml:"edge_resistance"`
}

type DebrisSpec struct {
	Count       int     `yaml:"count"`
	StyleScript string  `yaml:"style_script"`
	MinWidth    float64 `yaml:"min_width"`
	MaxWidth    float64 `yaml:"max_width"`
	Height      float64 `yaml:"height"`
	MinMass     float64 `yaml:"min_mass"`
	MaxMass     float64 `yaml:"max_mass"`
	MaxAngle    float64 `yaml:"max_angle"`
	Saturation  float64 `yaml:"saturation"`
	Lightness   float64 `yaml:"lightness"`
	SpawnTop    float64 `yaml:"spawn_top"`
	SpawnBottom float64 `yaml:"spawn_bottom"`
}

type PhysicsSpec struct {
	Gravity    float64 `yaml:"gravity"`
	Damping    float64 `yaml:"damping"`
	Iterations int     `yaml:"iterations"`
	Timestep   float64 `yaml:"timestep"`
}

// LoadSwiperSpec reads and validates the scene spec.
func LoadSwiperSpec(filename string) (*SwiperSpec, error) {
	if filename == "" {
		filename = SwiperSpecFile
	}
	spec, err := LoadSpec[SwiperSpec](filename)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", filename, err)
	}
	return &spec, nil
}

// Validate rejects values that would corrupt the per-frame loop.
func (s *SwiperSpec) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidSpec}, args...)...))
		}
	}
	positive := func(v float64) bool { return v > 0 && !math.IsInf(v, 0) }
	unit := func(v float64) bool { return v >= 0 && v <= 1 }

	c := s.Carousel
	check(c.ItemCount > 0, "carousel.item_count %d must be positive", c.ItemCount)
	check(positive(c.ItemWidth), "carousel.item_width %v must be positive", c.ItemWidth)
	check(c.ItemGap >= 0 && c.ItemGap < c.ItemWidth, "carousel.item_gap %v must be in [0, item_width)", c.ItemGap)
	check(c.AnchorScale > 0 && c.AnchorScale <= 1, "carousel.anchor_scale %v must be in (0, 1]", c.AnchorScale)

	m := s.Motion
	check(m.FollowDecay > 0 && m.FollowDecay <= 1, "motion.follow_decay %v must be in (0, 1]", m.FollowDecay)
	check(m.EdgeEase > 0 && m.EdgeEase <= 1, "motion.edge_ease %v must be in (0, 1]", m.EdgeEase)
	check(unit(m.EdgeResistance), "motion.edge_resistance %v must be in [0, 1]", m.EdgeResistance)

	d := s.Debris
	check(d.Count >= 0, "debris.count %d must not be negative", d.Count)
	check(positive(d.MinWidth) && d.MaxWidth >= d.MinWidth, "debris width range [%v, %v] is invalid", d.MinWidth, d.MaxWidth)
	check(positive(d.Height), "debris.height %v must be positive", d.Height)
	check(positive(d.MinMass) && d.MaxMass >= d.MinMass, "debris mass range [%v, %v] is invalid", d.MinMass, d.MaxMass)
	check(d.MaxAngle >= 0, "debris.max_angle %v must not be negative", d.MaxAngle)
	check(unit(d.Saturation) && unit(d.Lightness), "debris saturation/lightness must be in [0, 1]")
	check(d.SpawnTop >= d.SpawnBottom && d.SpawnBottom >= 0, "debris spawn band [%v, %v] is invalid", d.SpawnTop, d.SpawnBottom)

	p := s.Physics
	check(positive(p.Timestep), "physics.timestep %v must be positive", p.Timestep)
	check(p.Iterations > 0, "physics.iterations %d must be positive", p.Iterations)
	check(p.Damping > 0 && p.Damping <= 1, "physics.damping %v must be in (0, 1]", p.Damping)

	return errors.Join(errs...)
}

// YAMLColor is a #rrggbb or #rrggbbaa color.
type YAMLColor struct {
	color.NRGBA
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	var rgba [4]uint8
	rgba[3] = 0xff
	for i := 0; i < len(s)/2; i++ {
		v, err := parse(i * 2)
		if err != nil {
			return fmt.Errorf("invalid color format: %s: %w", value.Value, err)
		}
		rgba[i] = v
	}

	c.NRGBA = color.NRGBA{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}
	return nil
}

func (c YAMLColor) MarshalYAML() (any, error) {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A), nil
}
