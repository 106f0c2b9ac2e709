package passgen

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		length int
		want   Strength
	}{
		{length: 0, want: StrengthNone},
		{length: -1, want: StrengthNone},
		{length: 1, want: StrengthTooWeak},
		{length: 4, want: StrengthTooWeak},
		{length: 5, want: StrengthWeak},
		{length: 8, want: StrengthWeak},
		{length: 9, want: StrengthMedium},
		{length: 12, want: StrengthMedium},
		{length: 13, want: StrengthStrong},
		{length: 16, want: StrengthStrong},
		{length: 17, want: StrengthNone},
		{length: 100, want: StrengthNone},
	}

	for _, tt := range tests {
		if got := Classify(tt.length); got != tt.want {
			t.Errorf("Classify(%d) = %v, want %v", tt.length, got, tt.want)
		}
	}
}

func TestClassifyCustomThresholds(t *testing.T) {
	th := Thresholds{TooWeak: 8, Weak: 12, Medium: 20, Strong: 128}

	if got := th.Classify(10); got != StrengthWeak {
		t.Errorf("Classify(10) = %v, want %v", got, StrengthWeak)
	}
	if got := th.Classify(64); got != StrengthStrong {
		t.Errorf("Classify(64) = %v, want %v", got, StrengthStrong)
	}
	if got := th.Classify(129); got != StrengthNone {
		t.Errorf("Classify(129) = %v, want %v", got, StrengthNone)
	}
}

func TestStrengthString(t *testing.T) {
	tests := []struct {
		s    Strength
		want string
	}{
		{StrengthNone, "none"},
		{StrengthTooWeak, "too_weak"},
		{StrengthWeak, "weak"},
		{StrengthMedium, "medium"},
		{StrengthStrong, "strong"},
		{Strength(99), "none"},
	}

	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("Strength(%d).String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}
