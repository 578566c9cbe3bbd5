package progress

import "testing"

func TestValidateCountersDefaultRule(t *testing.T) {
	if err := ValidateCounters(PublishedLEDrafted, 100, 20, 10); err != nil {
		t.Fatalf("valid update rejected: %v", err)
	}
	if err := ValidateCounters(PublishedLEDrafted, 10, 20, 5); err == nil {
		t.Fatal("drafted > committed should be rejected")
	}
	if err := ValidateCounters(PublishedLEDrafted, 100, 20, 30); err == nil {
		t.Fatal("published > drafted should be rejected under the default rule")
	}
	if err := ValidateCounters(PublishedLEDrafted, 100, 100, 100); err != nil {
		t.Fatalf("boundary equality rejected: %v", err)
	}
}

func TestValidateCountersCommittedRule(t *testing.T) {
	// published may exceed drafted as long as committed bounds it
	if err := ValidateCounters(PublishedLECommitted, 100, 20, 30); err != nil {
		t.Fatalf("valid update rejected: %v", err)
	}
	if err := ValidateCounters(PublishedLECommitted, 100, 20, 120); err == nil {
		t.Fatal("published > committed should be rejected")
	}
}

func TestValidateCountersNegative(t *testing.T) {
	if err := ValidateCounters(PublishedLEDrafted, -1, 0, 0); err == nil {
		t.Fatal("negative committed should be rejected")
	}
}

func TestParsePublishedRule(t *testing.T) {
	cases := []struct {
		in   string
		want PublishedRule
		ok   bool
	}{
		{"", PublishedLEDrafted, true},
		{"drafted", PublishedLEDrafted, true},
		{"COMMITTED", PublishedLECommitted, true},
		{"strict", PublishedLEDrafted, false},
	}
	for _, c := range cases {
		got, err := ParsePublishedRule(c.in)
		if c.ok && (err != nil || got != c.want) {
			t.Fatalf("%q: got %v err=%v", c.in, got, err)
		}
		if !c.ok && err == nil {
			t.Fatalf("%q: expected error", c.in)
		}
	}
}
