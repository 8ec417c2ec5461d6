package core

import "testing"

func TestProgress(t *testing.T) {
	cases := []struct {
		name         string
		income, goal float64
		wantRatio    float64
		wantPercent  float64
	}{
		{"halfway", 250, 500, 50, 50},
		{"exactly met", 500, 500, 100, 100},
		{"over goal keeps true ratio", 600, 500, 120, 100},
		{"nothing earned", 0, 500, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Progress(tc.income, tc.goal)
			if p.Ratio != tc.wantRatio {
				t.Fatalf("ratio = %v, want %v", p.Ratio, tc.wantRatio)
			}
			if p.Percent != tc.wantPercent {
				t.Fatalf("percent = %v, want %v", p.Percent, tc.wantPercent)
			}
		})
	}
}

func TestProgressNonPositiveGoal(t *testing.T) {
	if p := Progress(100, 0); p != (GoalProgress{}) {
		t.Fatalf("zero goal should yield zero progress, got %+v", p)
	}
}
