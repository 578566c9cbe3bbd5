package progress

import (
	"fmt"
	"strings"
)

// PublishedRule selects which upper bound applies to the published counter.
// The historical update path compared published against drafted in some
// revisions and against committed in others; the rule is now an explicit
// policy chosen at startup instead of an accident of which copy ran.
type PublishedRule int

const (
	// PublishedLEDrafted enforces published <= drafted (the stricter rule
	// and the default).
	PublishedLEDrafted PublishedRule = iota
	// PublishedLECommitted only bounds published by committed, allowing
	// counts published straight from review without a drafted stop.
	PublishedLECommitted
)

// ParsePublishedRule maps the PROGRESS_PUBLISHED_RULE env value to a rule.
// Empty input yields the default; unknown values are an error so a typo in
// deployment config fails loudly at startup.
func ParsePublishedRule(v string) (PublishedRule, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "drafted":
		return PublishedLEDrafted, nil
	case "committed":
		return PublishedLECommitted, nil
	default:
		return PublishedLEDrafted, fmt.Errorf("unknown published rule %q (want drafted or committed)", v)
	}
}

// ValidateCounters checks the counter ordering business rule. A returned
// error means the update must be rejected with storage untouched.
func ValidateCounters(rule PublishedRule, committed, drafted, published int) error {
	if committed < 0 || drafted < 0 || published < 0 {
		return fmt.Errorf("counters must not be negative")
	}
	if drafted > committed {
		return fmt.Errorf("drafted (%d) cannot be more than committed (%d)", drafted, committed)
	}
	switch rule {
	case PublishedLECommitted:
		if published > committed {
			return fmt.Errorf("published (%d) cannot be more than committed (%d)", published, committed)
		}
	default:
		if published > drafted {
			return fmt.Errorf("published (%d) cannot be more than drafted (%d)", published, drafted)
		}
	}
	return nil
}
