package qc

import "testing"

func checkBaseGroups(t *testing.T, groupType GroupType, maxLen, expectedLen int) {
	t.Helper()
	groups := MakeBaseGroups(groupType, maxLen)
	prevEnd := 0
	for _, g := range groups {
		if g.LowerCount != prevEnd+1 {
			t.Fatalf("groups not contiguous: expected lower %d, got %d", prevEnd+1, g.LowerCount)
		}
		prevEnd = g.UpperCount
	}
	if prevEnd != maxLen {
		t.Fatalf("groups don't cover maxLen: last upper=%d, maxLen=%d", prevEnd, maxLen)
	}
	if len(groups) != expectedLen {
		t.Errorf("MakeBaseGroups(%v, %d) produced %d groups, want %d", groupType, maxLen, len(groups), expectedLen)
	}
}

func TestLinearGroups(t *testing.T) {
	cases := []struct {
		maxLen, expectedLen int
	}{
		{70, 70},
		{75, 75},
		{76, 43},
		{100, 55},
		{139, 74},
		{140, 36},
		{500, 59},
	}
	for _, c := range cases {
		checkBaseGroups(t, GroupLinear, c.maxLen, c.expectedLen)
	}
}

func TestNoneGroupsAreUngrouped(t *testing.T) {
	groups := MakeBaseGroups(GroupNone, 500)
	if len(groups) != 500 {
		t.Fatalf("GroupNone should never group, got %d groups for len 500", len(groups))
	}
	for i, g := range groups {
		if g.LowerCount != i+1 || g.UpperCount != i+1 {
			t.Fatalf("group %d = %+v, want singleton %d", i, g, i+1)
		}
	}
}

func TestExponentialGroupsShortReadUngrouped(t *testing.T) {
	checkBaseGroups(t, GroupExponential, 9, 9)
	checkBaseGroups(t, GroupExponential, 75, 75)
}

func TestExponentialGroupsWiden(t *testing.T) {
	groups := MakeBaseGroups(GroupExponential, 3000)
	if len(groups) == 0 {
		t.Fatal("expected groups for maxLen=3000")
	}
	last := groups[len(groups)-1]
	if last.UpperCount != 3000 {
		t.Fatalf("last group upper = %d, want 3000", last.UpperCount)
	}
}
