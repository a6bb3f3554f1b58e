package utils

import (
	"math"
	"testing"
)

func TestRollingMean(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6}
	got := RollingMean(values, 3)

	if len(got) != len(values) {
		t.Fatalf("RollingMean() length = %d, want %d", len(got), len(values))
	}
	for i := 0; i < 2; i++ {
		if !math.IsNaN(got[i]) {
			t.Errorf("position %d = %v, want NaN", i, got[i])
		}
	}
	want := []float64{2, 3, 4, 5}
	for i, w := range want {
		if math.Abs(got[i+2]-w) > 1e-9 {
			t.Errorf("position %d = %v, want %v", i+2, got[i+2], w)
		}
	}
}

func TestRollingMeanShortSeries(t *testing.T) {
	got := RollingMean([]float64{10, 11, 12}, 200)
	if len(got) != 3 {
		t.Fatalf("RollingMean() length = %d, want 3", len(got))
	}
	for i, v := range got {
		if !math.IsNaN(v) {
			t.Errorf("position %d = %v, want NaN", i, v)
		}
	}
}

func TestRollingMeanMatchesTrailingWindow(t *testing.T) {
	values := make([]float64, 60)
	for i := range values {
		values[i] = 100 + float64(i%7)*3.5
	}

	for _, window := range []int{20, 50} {
		got := RollingMean(values, window)
		for i := range values {
			if i < window-1 {
				if !math.IsNaN(got[i]) {
					t.Errorf("window %d position %d = %v, want NaN", window, i, got[i])
				}
				continue
			}
			sum := 0.0
			for j := i - window + 1; j <= i; j++ {
				sum += values[j]
			}
			if want := sum / float64(window); math.Abs(got[i]-want) > 1e-9 {
				t.Errorf("window %d position %d = %v, want %v", window, i, got[i], want)
			}
		}
	}
}

func TestCloses(t *testing.T) {
	bars := generateBars(5, 100, 110)
	closes := Closes(bars)
	if len(closes) != 5 {
		t.Fatalf("Closes() length = %d, want 5", len(closes))
	}
	if closes[4] != 110 {
		t.Errorf("last close = %v, want 110", closes[4])
	}
}
