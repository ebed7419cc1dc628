package runner

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
)

func TestSpawnerSameSeedSameSequence(t *testing.T) {
	cfg := config.DefaultRunnerConfig().Spawn
	a := NewSpawner(cfg, 800, 99)
	b := NewSpawner(cfg, 800, 99)

	for i := 0; i < 200; i++ {
		if x, y := a.Draw(), b.Draw(); !reflect.DeepEqual(x, y) {
			t.Fatalf("draw %d differs: %v vs %v", i, x, y)
		}
	}
}

func TestSpawnerReset(t *testing.T) {
	cfg := config.DefaultRunnerConfig().Spawn
	s := NewSpawner(cfg, 800, 5)
	var first [][]Slot
	for i := 0; i < 20; i++ {
		first = append(first, s.Draw())
	}

	s.Reset(5)
	for i := 0; i < 20; i++ {
		if got := s.Draw(); !reflect.DeepEqual(got, first[i]) {
			t.Fatalf("draw %d after Reset = %v, expected %v", i, got, first[i])
		}
	}
}

func TestSpawnerWeights(t *testing.T) {
	tests := []struct {
		name   string
		weight [3]int // hazard, flyer, bonus
		want   Kind
	}{
		{"hazard only", [3]int{1, 0, 0}, Hazard},
		{"flyer only", [3]int{0, 1, 0}, Flyer},
		{"bonus only", [3]int{0, 0, 1}, Bonus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultRunnerConfig().Spawn
			cfg.HazardWeight, cfg.FlyerWeight, cfg.BonusWeight = tt.weight[0], tt.weight[1], tt.weight[2]
			cfg.ClusterChance = 0
			s := NewSpawner(cfg, 800, 1)
			for i := 0; i < 50; i++ {
				slots := s.Draw()
				if len(slots) != 1 || slots[0].Kind != tt.want || slots[0].X != 800 {
					t.Fatalf("Draw() = %v, expected one %v at 800", slots, tt.want)
				}
			}
		})
	}
}

func TestSpawnerDistribution(t *testing.T) {
	cfg := config.DefaultRunnerConfig().Spawn
	cfg.ClusterChance = 0
	s := NewSpawner(cfg, 800, 2024)

	counts := map[Kind]int{}
	const n = 10000
	for i := 0; i < n; i++ {
		counts[s.Draw()[0].Kind]++
	}

	// 70 / 15 / 15 within a generous tolerance
	check := func(k Kind, want float64) {
		got := float64(counts[k]) / n
		if got < want-0.03 || got > want+0.03 {
			t.Errorf("%v share = %.3f, expected about %.2f", k, got, want)
		}
	}
	check(Hazard, 0.70)
	check(Flyer, 0.15)
	check(Bonus, 0.15)
}

func TestSpawnerClusters(t *testing.T) {
	cfg := config.DefaultRunnerConfig().Spawn
	cfg.HazardWeight, cfg.FlyerWeight, cfg.BonusWeight = 1, 0, 0
	cfg.ClusterChance = 1
	s := NewSpawner(cfg, 800, 3)

	sizes := map[int]bool{}
	for i := 0; i < 100; i++ {
		slots := s.Draw()
		if len(slots) < cfg.ClusterMin || len(slots) > cfg.ClusterMax {
			t.Fatalf("cluster size %d outside [%d, %d]", len(slots), cfg.ClusterMin, cfg.ClusterMax)
		}
		sizes[len(slots)] = true
		for j, slot := range slots {
			if slot.Kind != Hazard {
				t.Errorf("cluster member %d is %v, expected hazard", j, slot.Kind)
			}
			if want := 800 + float64(j)*cfg.ClusterGap; slot.X != want {
				t.Errorf("cluster member %d at %v, expected %v", j, slot.X, want)
			}
		}
	}
	if !sizes[2] || !sizes[3] {
		t.Errorf("cluster sizes seen = %v, expected both 2 and 3", sizes)
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Hazard, "hazard"},
		{Flyer, "flyer"},
		{Bonus, "bonus"},
		{Kind(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, expected %q", tt.kind, got, tt.want)
		}
	}
}
