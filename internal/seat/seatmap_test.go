package seat

import "testing"

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for i := 1; i <= 10000; i++ {
		got, ok := Decode(Encode(i))
		if !ok {
			t.Fatalf("Decode(Encode(%d)) rejected label %q", i, Encode(i))
		}
		if got != i {
			t.Fatalf("round trip mismatch: index %d -> %q -> %d", i, Encode(i), got)
		}
	}
}

func TestEncodeCoachBoundaries(t *testing.T) {
	cases := map[int]string{
		1:            "S1-1",
		PerCoach:     "S1-72",
		PerCoach + 1: "S2-1",
		2 * PerCoach: "S2-72",
	}
	for idx, want := range cases {
		if got := Encode(idx); got != want {
			t.Fatalf("Encode(%d) = %q, want %q", idx, got, want)
		}
	}
}

func TestDecodeOccupiedSkipsMalformed(t *testing.T) {
	occupied := DecodeOccupied([]string{"garbage", "S1-1", "", "S2-abc"})
	if len(occupied) != 1 {
		t.Fatalf("expected exactly one occupied seat, got %d", len(occupied))
	}
	if _, ok := occupied[1]; !ok {
		t.Fatalf("S1-1 should decode to linear index 1")
	}
}

func TestDecodeCaseInsensitiveAndTrimmed(t *testing.T) {
	idx, ok := Decode("  s2-5 ")
	if !ok || idx != PerCoach+5 {
		t.Fatalf("Decode(\"s2-5\") = %d,%v want %d,true", idx, ok, PerCoach+5)
	}
}

func TestDecodeRejectsZeroCoachAndSeat(t *testing.T) {
	for _, label := range []string{"S0-1", "S1-0", "S0-0"} {
		if _, ok := Decode(label); ok {
			t.Fatalf("Decode(%q) should be rejected", label)
		}
	}
}

func TestNextFreeAscendingPolicy(t *testing.T) {
	occupied := DecodeOccupied([]string{"S1-1", "S1-2"})
	idx, ok := NextFree(5, occupied)
	if !ok {
		t.Fatalf("expected a free seat")
	}
	if idx != 3 {
		t.Fatalf("NextFree returned %d, want 3", idx)
	}
	if got := Encode(idx); got != "S1-3" {
		t.Fatalf("Encode(%d) = %q, want S1-3", idx, got)
	}
}

func TestNextFreeFullTrain(t *testing.T) {
	occupied := map[int]struct{}{}
	for i := 1; i <= 4; i++ {
		occupied[i] = struct{}{}
	}
	if _, ok := NextFree(4, occupied); ok {
		t.Fatalf("full train should have no free seat")
	}
}

func TestNextFreeNonPositiveTotal(t *testing.T) {
	if _, ok := NextFree(0, nil); ok {
		t.Fatalf("totalSeats=0 should report no availability")
	}
	if _, ok := NextFree(-3, nil); ok {
		t.Fatalf("negative totalSeats should report no availability")
	}
}

func TestAvailableFloorsAtZero(t *testing.T) {
	if got := Available(2, []string{"S1-1", "S1-2", "S1-3"}); got != 0 {
		t.Fatalf("Available over-occupied = %d, want 0", got)
	}
	if got := Available(5, []string{"S1-1", "junk"}); got != 4 {
		t.Fatalf("Available = %d, want 4", got)
	}
	if got := Available(0, nil); got != 0 {
		t.Fatalf("Available with zero seats = %d, want 0", got)
	}
}
