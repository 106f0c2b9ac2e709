package passgen

// Strength is a coarse quality rating derived solely from password length.
// Character-class diversity deliberately does not affect the rating; the
// bucket boundaries are the whole model.
type Strength int

const (
	StrengthNone Strength = iota
	StrengthTooWeak
	StrengthWeak
	StrengthMedium
	StrengthStrong
)

// String returns the wire form of the rating.
func (s Strength) String() string {
	switch s {
	case StrengthTooWeak:
		return "too_weak"
	case StrengthWeak:
		return "weak"
	case StrengthMedium:
		return "medium"
	case StrengthStrong:
		return "strong"
	}
	return "none"
}

// Thresholds holds the inclusive upper bound of each bucket. A length of 0
// (or below) is always StrengthNone, lengths in (0, TooWeak] are
// StrengthTooWeak, and so on; lengths above Strong fall outside every bucket
// and are StrengthNone.
type Thresholds struct {
	TooWeak int
	Weak    int
	Medium  int
	Strong  int
}

// DefaultThresholds returns the reference buckets: 1-4 too weak, 5-8 weak,
// 9-12 medium, 13-16 strong.
func DefaultThresholds() Thresholds {
	return Thresholds{TooWeak: 4, Weak: 8, Medium: 12, Strong: 16}
}

// Classify rates a password length against the thresholds.
func (t Thresholds) Classify(length int) Strength {
	switch {
	case length <= 0:
		return StrengthNone
	case length <= t.TooWeak:
		return StrengthTooWeak
	case length <= t.Weak:
		return StrengthWeak
	case length <= t.Medium:
		return StrengthMedium
	case length <= t.Strong:
		return StrengthStrong
	}
	return StrengthNone
}

// Classify rates a password length using the default thresholds.
func Classify(length int) Strength {
	return DefaultThresholds().Classify(length)
}
