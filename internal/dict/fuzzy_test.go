package dict

import "testing"

func TestMatchRejectsBelowCutoff(t *testing.T) {
	ok, matched := Match("قoronto", []string{"تورنتو"}, DefaultCutoff)
	if ok || matched != "" {
		t.Fatalf("expected no match, got ok=%v matched=%q", ok, matched)
	}
}

func TestMatchAcceptsNearMiss(t *testing.T) {
	// One letter off out of five clears the 0.75 cutoff.
	ok, matched := Match("تحران", []string{"تهران"}, DefaultCutoff)
	if !ok || matched != "تهران" {
		t.Fatalf("expected match with تهران, got ok=%v matched=%q", ok, matched)
	}
}

func TestMatchEmptyInputs(t *testing.T) {
	if ok, _ := Match("", []string{"تهران"}, DefaultCutoff); ok {
		t.Fatalf("empty candidate must not match")
	}
	if ok, _ := Match("تهران", nil, DefaultCutoff); ok {
		t.Fatalf("empty accepted set must not match")
	}
	if ok, _ := Match("   ", []string{"تهران"}, DefaultCutoff); ok {
		t.Fatalf("whitespace candidate must not match")
	}
}

func TestMatchExactWordScoresOne(t *testing.T) {
	ok, matched := Match("تهران", []string{"تبریز", "تهران"}, DefaultCutoff)
	if !ok || matched != "تهران" {
		t.Fatalf("expected exact word to win, got ok=%v matched=%q", ok, matched)
	}
}

func TestMatchIsDeterministicOnTies(t *testing.T) {
	// Both words are one edit away; the first in sorted order must win
	// every time.
	accepted := []string{"سارا", "ساری"}
	for i := 0; i < 10; i++ {
		ok, matched := Match("سارد", accepted, DefaultCutoff)
		if !ok || matched != "سارا" {
			t.Fatalf("iteration %d: expected سارا, got ok=%v matched=%q", i, ok, matched)
		}
	}
}

func TestSimilarity(t *testing.T) {
	cases := []struct {
		a, b string
		want float64
	}{
		{"تهران", "تهران", 1},
		{"", "", 1},
		{"ابی", "آبی", 1 - 1.0/3.0},
		{"تهران", "", 0},
	}
	for _, tc := range cases {
		got := Similarity(tc.a, tc.b)
		if diff := got - tc.want; diff > 1e-9 || diff < -1e-9 {
			t.Fatalf("Similarity(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}
