package config

import "testing"

func TestDifficultyLevel(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 1000},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0},
	}
	d := NewDifficultyManager(cfg)

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 0.2},
		{500, 0.6},
		{1000, 1.0},
		{5000, 1.0},
	}

	for _, tt := range tests {
		if got := d.Level(tt.score, 0); got < tt.expected-1e-9 || got > tt.expected+1e-9 {
			t.Errorf("Level(%d) = %v, expected %v", tt.score, got, tt.expected)
		}
	}
}

func TestDifficultyDisabled(t *testing.T) {
	d := NewDifficultyManager(DefaultTetrisConfig().Difficulty)

	if d.IsEnabled() {
		t.Error("default tetris difficulty should be disabled")
	}
	if got := d.Level(100000, 100000); got != 0 {
		t.Errorf("Level() = %v, expected 0", got)
	}
}

func TestDifficultyInterval(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 100},
		Scaling:     ScalingConfig{SpeedMultiplier: 3.0},
	})

	tests := []struct {
		name     string
		ticks    int
		minMs    int
		expected int
	}{
		{"start", 0, 50, 500},
		{"halfway", 50, 50, 200},
		{"max", 100, 50, 125},
		{"floor", 100, 150, 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.Interval(500, tt.minMs, 0, tt.ticks); got != tt.expected {
				t.Errorf("Interval() = %d, expected %d", got, tt.expected)
			}
		})
	}
}
