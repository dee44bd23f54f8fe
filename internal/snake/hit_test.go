package snake

import (
	"testing"
	"time"
)

func TestHitBoundary(t *testing.T) {
	h := HeadCache{
		Ring:       RingAround(Vec{}, 30, 12),
		Centroid:   Vec{100, 100},
		BodyRadius: 50,
	}
	const e = 1e-6

	tests := []struct {
		name string
		p    Vec
		want bool
	}{
		{"centroid", Vec{100, 100}, true},
		{"just inside", Vec{200 - e, 100}, true},
		{"inside diagonal", Vec{160, 160}, true},
		{"on boundary", Vec{100, 200}, false},
		{"just outside", Vec{100 - 100 - e, 100}, false},
		{"far away", Vec{-1000, -1000}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Hit(h, tt.p); got != tt.want {
				t.Errorf("Hit(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestHitOnSteppedHead(t *testing.T) {
	s, _ := Step(NewState(800, 600), 1500*time.Millisecond)
	if !Hit(s.Head, s.Head.Centroid) {
		t.Error("click on head centroid missed")
	}
	far := s.Head.Centroid.Add(Vec{2*s.Head.BodyRadius + 1, 0})
	if Hit(s.Head, far) {
		t.Errorf("click at %v hit a head at %v", far, s.Head.Centroid)
	}
}

func TestHitWithoutHead(t *testing.T) {
	if Hit(HeadCache{}, Vec{}) {
		t.Error("empty head cache registered a hit")
	}
}
