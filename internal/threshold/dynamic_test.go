package threshold

import (
	"errors"
	"math"
	"testing"
)

func TestDynamicThreshold(t *testing.T) {
	tests := []struct {
		name          string
		clv           float64
		retentionCost float64
		want          float64
	}{
		{
			name:          "high value customer hits the 0.30 floor",
			clv:           1026,
			retentionCost: 50,
			want:          0.300,
		},
		{
			name:          "very high value customer hits the 0.25 floor",
			clv:           5000,
			retentionCost: 50,
			want:          0.250,
		},
		{
			name:          "mid value customer hits the 0.35 floor",
			clv:           600,
			retentionCost: 50,
			want:          0.350,
		},
		{
			name:          "standard value customer hits the 0.40 floor",
			clv:           300,
			retentionCost: 50,
			want:          0.400,
		},
		{
			name:          "low value customer hits the 0.45 floor",
			clv:           100,
			retentionCost: 50,
			want:          0.450,
		},
		{
			name:          "tiny CLV caps at 0.65",
			clv:           5,
			retentionCost: 50,
			want:          0.650,
		},
		{
			name:          "zero CLV caps at 0.65",
			clv:           0,
			retentionCost: 50,
			want:          0.650,
		},
		{
			name:          "base formula survives when above the floor",
			clv:           60,
			retentionCost: 50,
			// 50/110 = 0.4545..., above the 0.45 floor, rounds to 0.455.
			want: 0.455,
		},
		{
			name:          "large retention cost raises the base",
			clv:           1500,
			retentionCost: 800,
			// 800/2300 = 0.3478, above the 0.30 floor.
			want: 0.348,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DynamicThreshold(tt.clv, tt.retentionCost)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("DynamicThreshold(%v, %v) = %v, want %v", tt.clv, tt.retentionCost, got, tt.want)
			}
		})
	}

	t.Run("floors are non-increasing in CLV", func(t *testing.T) {
		clvs := []float64{50, 250, 600, 1200, 2500, 10000}
		prev := 1.0
		for _, clv := range clvs {
			got, err := DynamicThreshold(clv, DefaultRetentionCost)
			if err != nil {
				t.Fatalf("DynamicThreshold(%v): %v", clv, err)
			}
			if got > prev {
				t.Fatalf("threshold rose from %v to %v at clv %v", prev, got, clv)
			}
			if got > dynamicCap {
				t.Fatalf("threshold %v exceeds cap at clv %v", got, clv)
			}
			prev = got
		}
	})

	t.Run("invalid input", func(t *testing.T) {
		if _, err := DynamicThreshold(-1, 50); !errors.Is(err, ErrInvalidCLV) {
			t.Errorf("negative clv error = %v", err)
		}
		if _, err := DynamicThreshold(100, 0); !errors.Is(err, ErrInvalidOfferCost) {
			t.Errorf("zero cost error = %v", err)
		}
		if _, err := DynamicThreshold(100, -5); !errors.Is(err, ErrInvalidOfferCost) {
			t.Errorf("negative cost error = %v", err)
		}
		if _, err := DynamicThreshold(math.NaN(), 50); !errors.Is(err, ErrInvalidCLV) {
			t.Errorf("NaN clv error = %v", err)
		}
		if _, err := DynamicThreshold(math.Inf(1), 50); !errors.Is(err, ErrInvalidCLV) {
			t.Errorf("infinite clv error = %v", err)
		}
		if _, err := DynamicThreshold(100, math.NaN()); !errors.Is(err, ErrInvalidOfferCost) {
			t.Errorf("NaN cost error = %v", err)
		}
		if _, err := DynamicThreshold(100, math.Inf(1)); !errors.Is(err, ErrInvalidOfferCost) {
			t.Errorf("infinite cost error = %v", err)
		}
	})
}
