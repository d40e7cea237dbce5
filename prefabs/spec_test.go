package prefabs

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestLoadSwiperSpecDefaults(t *testing.T) {
	spec, err := LoadSwiperSpec("")
	if err != nil {
		t.Fatalf("LoadSwiperSpec: %v", err)
	}
	if spec.Carousel.ItemCount <= 0 || spec.Carousel.ItemWidth <= 0 {
		t.Fatalf("unexpected carousel %+v", spec.Carousel)
	}
	if spec.Debris.Count != 300 {
		t.Fatalf("debris count = %d, want 300", spec.Debris.Count)
	}
	if spec.Motion.FollowDecay != 0.1 || spec.Motion.EdgeEase != 0.2 || spec.Motion.EdgeResistance != 0.5 {
		t.Fatalf("unexpected motion tuning %+v", spec.Motion)
	}
	if spec.Carousel.Fill.NRGBA != (color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}) {
		t.Fatalf("fill = %+v", spec.Carousel.Fill)
	}
	if _, err := LoadScript(spec.Debris.StyleScript); err != nil {
		t.Fatalf("style script %q not found: %v", spec.Debris.StyleScript, err)
	}
}

func TestValidateRejectsDegenerateSpecs(t *testing.T) {
	base, err := LoadSwiperSpec("")
	if err != nil {
		t.Fatalf("LoadSwiperSpec: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(s *SwiperSpec)
	}{
		{"no_items", func(s *SwiperSpec) { s.Carousel.ItemCount = 0 }},
		{"zero_item_width", func(s *SwiperSpec) { s.Carousel.ItemWidth = 0 }},
		{"gap_wider_than_item", func(s *SwiperSpec) { s.Carousel.ItemGap = s.Carousel.ItemWidth }},
		{"negative_debris", func(s *SwiperSpec) { s.Debris.Count = -1 }},
		{"inverted_width_range", func(s *SwiperSpec) { s.Debris.MinWidth, s.Debris.MaxWidth = 6, 2 }},
		{"inverted_spawn_band", func(s *SwiperSpec) { s.Debris.SpawnTop, s.Debris.SpawnBottom = 0.1, 0.5 }},
		{"zero_timestep", func(s *SwiperSpec) { s.Physics.Timestep = 0 }},
		{"zero_follow_decay", func(s *SwiperSpec) { s.Motion.FollowDecay = 0 }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			spec := *base
			c.mutate(&spec)
			err := spec.Validate()
			if !errors.Is(err, ErrInvalidSpec) {
				t.Fatalf("expected ErrInvalidSpec, got %v", err)
			}
		})
	}

	if err := base.Validate(); err != nil {
		t.Fatalf("default spec should validate: %v", err)
	}
}

func TestYAMLColor(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"rgb", `"#102030"`, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}, false},
		{"rgba", `"#10203040"`, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}, false},
		{"no_hash", `"ffffff"`, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, false},
		{"short", `"#fff"`, color.NRGBA{}, true},
		{"not_hex", `"#gg0000"`, color.NRGBA{}, true},
		{"not_scalar", `[1, 2]`, color.NRGBA{}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var got YAMLColor
			err := yaml.Unmarshal([]byte(c.in), &got)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got.NRGBA != c.want {
				t.Fatalf("got %+v, want %+v", got.NRGBA, c.want)
			}
		})
	}
}

func TestLoadPrefersDisk(t *testing.T) {
	dir := t.TempDir()
	prev := Dir
	Dir = dir
	t.Cleanup(func() { Dir = prev })

	override := []byte("name: override\n")
	if err := os.WriteFile(filepath.Join(dir, SwiperSpecFile), override, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := Load("prefabs/" + SwiperSpecFile)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(data) != string(override) {
		t.Fatalf("expected disk copy, got %q", data)
	}
}

func TestWatcherReportsSpecWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	target := filepath.Join(dir, SwiperSpecFile)
	if err := os.WriteFile(target, []byte("name: x\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case name := <-w.Events:
		if filepath.Base(name) != SwiperSpecFile {
			t.Fatalf("unexpected event for %s", name)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatalf("no event for %s", target)
	}
}
