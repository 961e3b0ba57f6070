package qc

import "strconv"

// GroupType selects how base positions are collapsed into reporting groups
// for the per-position modules (quality scores, sequence content, ...).
type GroupType int

const (
	// GroupNone reports every position individually, regardless of length.
	GroupNone GroupType = iota
	// GroupLinear groups positions past 9 using a single interval sized so
	// the groups after the first 9 positions number fewer than 66.
	GroupLinear
	// GroupExponential groups positions past 9 using a widening interval
	// that grows in fixed steps as the read gets longer.
	GroupExponential
)

// BaseGroup is a contiguous, inclusive range of base positions (1-based)
// that a per-position module reports as a single row.
type BaseGroup struct {
	LowerCount int
	UpperCount int
}

// Label renders the group as the single position "n" or the range
// "lower-upper", the way every per-position text report prints its leading
// column.
func (g BaseGroup) Label() string {
	if g.LowerCount == g.UpperCount {
		return strconv.Itoa(g.LowerCount)
	}
	return strconv.Itoa(g.LowerCount) + "-" + strconv.Itoa(g.UpperCount)
}

// MakeBaseGroups partitions [1, maxLen] into BaseGroups according to
// groupType. The partition is always contiguous and its last group's
// UpperCount always equals maxLen.
func MakeBaseGroups(groupType GroupType, maxLen int) []BaseGroup {
	if maxLen <= 0 {
		return nil
	}
	switch groupType {
	case GroupLinear:
		return makeLinearGroups(maxLen)
	case GroupExponential:
		return makeExponentialGroups(maxLen)
	default:
		return makeUngroupedGroups(maxLen)
	}
}

func makeUngroupedGroups(maxLen int) []BaseGroup {
	groups := make([]BaseGroup, 0, maxLen)
	for i := 1; i <= maxLen; i++ {
		groups = append(groups, BaseGroup{LowerCount: i, UpperCount: i})
	}
	return groups
}

// calcLinearGroupInterval picks the smallest interval from the repeating {2, 5, 10}
// sequence (times a growing power of ten) that keeps the number of groups
// needed to cover maxLen under 66.
func calcLinearGroupInterval(maxLen int) int {
	baseValues := [3]int{2, 5, 10}
	multiplier := 1
	for {
		for _, base := range baseValues {
			interval := base * multiplier
			groupCount := (maxLen + interval - 1) / interval
			if groupCount < 66 {
				return interval
			}
		}
		multiplier *= 10
	}
}

// makeLinearGroups follows group.rs: the whole read stays ungrouped whenever
// maxLen <= 75. Otherwise positions 1-9 stay ungrouped and the remainder
// (from position 10 on) is split into equal-width groups sized by
// calcLinearGroupInterval so that remainder needs fewer than 66 groups; with
// the 9 leading positions the total can reach 74.
func makeLinearGroups(maxLen int) []BaseGroup {
	if maxLen <= 75 {
		return makeUngroupedGroups(maxLen)
	}
	groups := makeUngroupedGroups(9)
	interval := calcLinearGroupInterval(maxLen - 9)
	startPos := 10
	for startPos <= maxLen {
		endPos := startPos + interval - 1
		if endPos > maxLen {
			endPos = maxLen
		}
		groups = append(groups, BaseGroup{LowerCount: startPos, UpperCount: endPos})
		startPos += interval
	}
	return groups
}

// makeExponentialGroups follows group.rs: positions start ungrouped and the
// interval widens in fixed steps (1 -> 5 -> 10 -> 50 -> 100 -> 500) each
// time the running position crosses one of the thresholds below, but only
// if maxLen is large enough to reach past the matching length threshold
// (75, 200, 300, 1000, 2000). A short read never reaches a widening step,
// so it stays fully ungrouped.
func makeExponentialGroups(maxLen int) []BaseGroup {
	var groups []BaseGroup
	startPos := 1
	interval := 1
	for startPos <= maxLen {
		endPos := startPos + interval - 1
		if endPos > maxLen {
			endPos = maxLen
		}
		groups = append(groups, BaseGroup{LowerCount: startPos, UpperCount: endPos})
		startPos += interval
		switch {
		case startPos == 10 && maxLen > 75:
			interval = 5
		case startPos == 50 && maxLen > 200:
			interval = 10
		case startPos == 100 && maxLen > 300:
			interval = 50
		case startPos == 500 && maxLen > 1000:
			interval = 100
		case startPos == 1000 && maxLen > 2000:
			interval = 500
		}
	}
	return groups
}
