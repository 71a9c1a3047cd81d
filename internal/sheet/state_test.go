package sheet

import (
	"math"
	"testing"
)

func TestClassifyBoundaries(t *testing.T) {
	tests := []struct {
		offset float64
		want   State
	}{
		{offset: 25, want: Closed},
		{offset: 0, want: Closed},
		{offset: -29.9, want: Closed},
		{offset: -30, want: Closed},
		{offset: -30.0001, want: HalfOpen},
		{offset: -50, want: HalfOpen},
		{offset: -70, want: HalfOpen},
		{offset: -70.0001, want: FullyOpen},
		{offset: -500, want: FullyOpen},
		{offset: math.Inf(-1), want: FullyOpen},
		{offset: math.Inf(1), want: Closed},
		{offset: math.NaN(), want: Closed},
	}
	for _, tt := range tests {
		if got := Classify(tt.offset); got != tt.want {
			t.Errorf("Classify(%v) = %s, want %s", tt.offset, got, tt.want)
		}
	}
}

func TestSnapPointsAreMonotonic(t *testing.T) {
	if !(Closed.Position() > HalfOpen.Position() && HalfOpen.Position() > FullyOpen.Position()) {
		t.Fatalf("snap points not monotonic: %v %v %v", Closed.Position(), HalfOpen.Position(), FullyOpen.Position())
	}
	if got := FullyOpen.Position(); got != -80 {
		t.Fatalf("expected fully open at -80, got %v", got)
	}
	if got := State(42).Position(); got != 0 {
		t.Fatalf("expected unknown state at 0, got %v", got)
	}
}

func TestSnapPointsClassifyToThemselves(t *testing.T) {
	for _, s := range []State{Closed, HalfOpen, FullyOpen} {
		if got := Classify(s.Position()); got != s {
			t.Errorf("Classify(%s.Position()) = %s", s, got)
		}
	}
}

func TestNextCycles(t *testing.T) {
	s := Closed
	want := []State{HalfOpen, FullyOpen, Closed}
	for i, w := range want {
		s = s.Next()
		if s != w {
			t.Fatalf("step %d: expected %s, got %s", i, w, s)
		}
	}
}

func TestStateString(t *testing.T) {
	if HalfOpen.String() != "half-open" || FullyOpen.String() != "fully-open" || Closed.String() != "closed" {
		t.Fatalf("unexpected names: %s %s %s", Closed, HalfOpen, FullyOpen)
	}
}
