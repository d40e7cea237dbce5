package main

import (
	"strings"
	"testing"

	"github.com/milk9111/swiper/ecs/system"
)

func TestStatsText(t *testing.T) {
	snap := system.StateSnapshot{
		Mode:   "following",
		Offset: system.OffsetSnapshot{Current: -120.3, Target: -130, Follow: -3.5},
		Bounds: system.BoundsSnapshot{Min: -3520, Max: 0},
		Debris: system.DebrisSnapshot{Count: 300, Reseeds: 42},
	}

	cases := []struct {
		name   string
		paused bool
		want   []string
	}{
		{"running", false, []string{"offset   -120.3", "bounds [-3520, 0]", "follow  -3.50", "mode following\n", "debris 300  reseeds 42", "FPS 59.9"}},
		{"paused", true, []string{"mode following (paused)"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := StatsText(snap, 59.94, c.paused)
			for _, want := range c.want {
				if !strings.Contains(got, want) {
					t.Fatalf("stats %q missing %q", got, want)
				}
			}
		})
	}
}
