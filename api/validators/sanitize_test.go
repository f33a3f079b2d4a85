package validators

import "testing"

func TestSanitizeStringTrimsAndCaps(t *testing.T) {
	if got := SanitizeString("  모험 쉬움  ", 500); got != "모험 쉬움" {
		t.Fatalf("SanitizeString = %q", got)
	}
	if got := SanitizeString("무한한 입력", 0); got != "무한한 입력" {
		t.Fatalf("zero cap must only trim, got %q", got)
	}
}

func TestSanitizeStringCountsRunesNotBytes(t *testing.T) {
	// Three Hangul syllables are nine bytes; a byte cap of 4 would split
	// the second character.
	got := SanitizeString("가나다", 2)
	if got != "가나" {
		t.Fatalf("SanitizeString = %q, want %q", got, "가나")
	}
}
