package domain

// SafetyVerdict is the outcome of scanning a candidate command against the
// denylist. Pattern holds the matched fragment and is empty for safe commands.
type SafetyVerdict struct {
	Dangerous bool
	Pattern   string
	Category  string
}

// Safe reports whether no denylisted fragment matched.
func (v SafetyVerdict) Safe() bool {
	return !v.Dangerous
}
