// Package seat computes coach seat occupancy for a train. A seat is addressed
// by a linear index in [1, totalSeats] and rendered as a label "S<coach>-<n>"
// with PerCoach seats per coach. Occupancy is always recomputed from the live
// set of confirmed seat labels, never cached.
package seat

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// PerCoach is the fixed coach size used by the label encoding.
const PerCoach = 72

var labelPattern = regexp.MustCompile(`(?i)^S(\d+)-(\d+)$`)

// Encode renders a linear seat index as its label, e.g. 73 -> "S2-1".
func Encode(index int) string {
	coach := (index-1)/PerCoach + 1
	inCoach := (index-1)%PerCoach + 1
	return fmt.Sprintf("S%d-%d", coach, inCoach)
}

// Decode parses a seat label back to its linear index. Labels that do not
// match the S<coach>-<seat> pattern, or that address coach/seat zero, are
// rejected; historical rows may carry junk and must not break allocation.
func Decode(label string) (int, bool) {
	m := labelPattern.FindStringSubmatch(strings.TrimSpace(label))
	if m == nil {
		return 0, false
	}
	coach, err := strconv.Atoi(m[1])
	if err != nil || coach < 1 {
		return 0, false
	}
	inCoach, err := strconv.Atoi(m[2])
	if err != nil || inCoach < 1 {
		return 0, false
	}
	return (coach-1)*PerCoach + inCoach, true
}

// DecodeOccupied converts confirmed seat labels into the set of occupied
// linear indices. Malformed or empty labels are skipped silently.
func DecodeOccupied(labels []string) map[int]struct{} {
	occupied := make(map[int]struct{}, len(labels))
	for _, l := range labels {
		if idx, ok := Decode(l); ok {
			occupied[idx] = struct{}{}
		}
	}
	return occupied
}

// NextFree returns the lowest free linear index, scanning 1..totalSeats in
// ascending order so allocation is deterministic for a given occupancy
// snapshot. A non-positive totalSeats reports no availability.
func NextFree(totalSeats int, occupied map[int]struct{}) (int, bool) {
	for n := 1; n <= totalSeats; n++ {
		if _, taken := occupied[n]; !taken {
			return n, true
		}
	}
	return 0, false
}

// NextFreeLabel combines DecodeOccupied, NextFree and Encode.
func NextFreeLabel(totalSeats int, labels []string) (string, bool) {
	idx, ok := NextFree(totalSeats, DecodeOccupied(labels))
	if !ok {
		return "", false
	}
	return Encode(idx), true
}

// Available returns the number of free seats, floored at zero.
func Available(totalSeats int, labels []string) int {
	if totalSeats <= 0 {
		return 0
	}
	free := totalSeats - len(DecodeOccupied(labels))
	if free < 0 {
		return 0
	}
	return free
}
