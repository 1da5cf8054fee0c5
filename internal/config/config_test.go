package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedMatchesHardcoded(t *testing.T) {
	cfg, err := parseStarcatch(defaultStarcatchYAML)
	if err != nil {
		t.Fatalf("embedded default: %v", err)
	}
	def := DefaultStarcatchConfig()

	if cfg.Canvas != def.Canvas || cfg.Physics != def.Physics || cfg.Player != def.Player {
		t.Errorf("canvas/physics/player differ: %+v vs %+v", cfg, def)
	}
	if cfg.Stars != def.Stars || cfg.Bombs != def.Bombs || cfg.Scoring != def.Scoring {
		t.Errorf("stars/bombs/scoring differ: %+v vs %+v", cfg, def)
	}
	if len(cfg.Platforms) != len(def.Platforms) {
		t.Fatalf("platforms = %d, want %d", len(cfg.Platforms), len(def.Platforms))
	}
	for i := range cfg.Platforms {
		if cfg.Platforms[i] != def.Platforms[i] {
			t.Errorf("platform %d = %+v, want %+v", i, cfg.Platforms[i], def.Platforms[i])
		}
	}
	if cfg.Difficulty.Enabled {
		t.Error("difficulty progression should be off by default")
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("scoring:\n  star_points: 25\nstars:\n  count: 3\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadStarcatch(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Scoring.StarPoints != 25 || cfg.Stars.Count != 3 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Physics.Gravity != 300 {
		t.Errorf("gravity = %v, want default 300", cfg.Physics.Gravity)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"bad yaml", "canvas: [", nil},
		{"zero stars", "stars:\n  count: 0\n", ErrInvalid},
		{"inverted bounce", "stars:\n  bounce_min: 0.9\n  bounce_max: 0.1\n", ErrInvalid},
		{"zero scale", "platforms:\n  - { x: 1, y: 1, scale: 0 }\n", ErrInvalid},
		{"unknown progression", "difficulty:\n  progression:\n    type: waves\n", ErrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := LoadStarcatch(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}

	if _, err := LoadStarcatch(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file err = %v", err)
	}
}

func TestApplyStarcatchPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		wantEnabled bool
		wantLevel   float64
		wantSpeedX  float64
	}{
		{"", false, 0, 200},
		{DifficultyEasy, true, 0, 150},
		{DifficultyNormal, true, 0.3, 200},
		{DifficultyHard, true, 0.7, 250},
		{DifficultyFixed, false, 0, 200},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultStarcatchConfig()
			ApplyStarcatchPreset(&cfg, tt.preset)
			if cfg.Difficulty.Enabled != tt.wantEnabled {
				t.Errorf("enabled = %v, want %v", cfg.Difficulty.Enabled, tt.wantEnabled)
			}
			if cfg.Difficulty.InitialLevel != tt.wantLevel {
				t.Errorf("initial level = %v, want %v", cfg.Difficulty.InitialLevel, tt.wantLevel)
			}
			if cfg.Bombs.SpeedX != tt.wantSpeedX {
				t.Errorf("bomb speed = %v, want %v", cfg.Bombs.SpeedX, tt.wantSpeedX)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("hard not parsed")
	}
	if ParsePreset("insane") != "" {
		t.Error("unknown preset should map to empty")
	}
}

func TestDifficultySpeed(t *testing.T) {
	cfg := DefaultStarcatchConfig().Difficulty

	d := NewDifficultyManager(cfg)
	if got := d.Speed(200, Progress{Score: 5000}); got != 200 {
		t.Errorf("disabled speed = %v, want 200", got)
	}

	cfg.Enabled = true
	d = NewDifficultyManager(cfg)
	tests := []struct {
		score int
		want  float64
	}{
		{0, 200},
		{500, 300},
		{1000, 400},
		{5000, 400},
	}
	for _, tt := range tests {
		if got := d.Speed(200, Progress{Score: tt.score}); got != tt.want {
			t.Errorf("Speed at score %d = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestDifficultyLevel(t *testing.T) {
	tests := []struct {
		name string
		cfg  DifficultyConfig
		p    Progress
		want float64
	}{
		{
			name: "disabled keeps initial level",
			cfg:  DifficultyConfig{InitialLevel: 0.3, Progression: ProgressionConfig{Type: ProgressScore, MaxAt: 10}},
			p:    Progress{Score: 100},
			want: 0.3,
		},
		{
			name: "none type keeps initial level",
			cfg:  DifficultyConfig{Enabled: true, InitialLevel: 0.5, Progression: ProgressionConfig{Type: ProgressNone}},
			p:    Progress{Score: 100},
			want: 0.5,
		},
		{
			name: "rounds halfway from zero",
			cfg:  DifficultyConfig{Enabled: true, Progression: ProgressionConfig{Type: ProgressRounds, MaxAt: 4}},
			p:    Progress{Rounds: 2},
			want: 0.5,
		},
		{
			name: "time from initial level",
			cfg:  DifficultyConfig{Enabled: true, InitialLevel: 0.5, Progression: ProgressionConfig{Type: ProgressTime, MaxAt: 100}},
			p:    Progress{Ticks: 50},
			want: 0.75,
		},
		{
			name: "initial level is clamped",
			cfg:  DifficultyConfig{InitialLevel: 3},
			want: 1,
		},
		{
			name: "zero max_at reaches max at once",
			cfg:  DifficultyConfig{Enabled: true, Progression: ProgressionConfig{Type: ProgressScore}},
			p:    Progress{Score: 1},
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewDifficultyManager(tt.cfg).Level(tt.p); got != tt.want {
				t.Errorf("Level(%+v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}
