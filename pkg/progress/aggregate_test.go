package progress

import (
	"reflect"
	"testing"

	"brandops/models"
)

func TestRowPercentages(t *testing.T) {
	c, d := RowPercentages(100, 20, 10)
	if c != 10.0 || d != 20.0 {
		t.Fatalf("expected 10.0/20.0 got %v/%v", c, d)
	}
	// one-decimal rounding
	c, d = RowPercentages(3, 1, 1)
	if c != 33.3 || d != 33.3 {
		t.Fatalf("expected 33.3/33.3 got %v/%v", c, d)
	}
}

func TestRowPercentagesZeroCommitted(t *testing.T) {
	c, d := RowPercentages(0, 5, 3)
	if c != 0 || d != 0 {
		t.Fatalf("expected 0/0 for zero committed, got %v/%v", c, d)
	}
}

func TestSummarizeCategories(t *testing.T) {
	rows := []models.PlatformProgress{
		{Platform: "instagram", Committed: 0},
		{Platform: "linkedin", Committed: 50, Drafted: 10, Published: 5},
		{Platform: "youtube", Committed: 0},
		{Platform: "facebook", Committed: 30, Drafted: 0, Published: 0},
	}
	s := Summarize(rows)
	if s.ActiveCount != 2 || s.InactiveCount != 2 {
		t.Fatalf("expected active=2 inactive=2, got %d/%d", s.ActiveCount, s.InactiveCount)
	}
	if s.InProgressCount != 1 {
		t.Fatalf("expected in_progress=1, got %d", s.InProgressCount)
	}
	if s.TotalCommitted != 80 || s.TotalDrafted != 10 || s.TotalPublished != 5 {
		t.Fatalf("unexpected totals: %+v", s)
	}
	if s.CompletionRate != 6.3 { // 5/80 = 6.25 -> 6.3
		t.Fatalf("expected completion rate 6.3, got %v", s.CompletionRate)
	}
}

func TestSummarizeEmptyAndIdempotent(t *testing.T) {
	if s := Summarize(nil); s.CompletionRate != 0 || s.TotalCommitted != 0 {
		t.Fatalf("empty input should produce zero summary, got %+v", s)
	}
	rows := []models.PlatformProgress{
		{Platform: "medium", Committed: 10, Drafted: 4, Published: 2},
		{Platform: "quora", Committed: 7, Drafted: 7, Published: 7},
	}
	first := Summarize(rows)
	second := Summarize(rows)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("summaries diverged: %+v vs %+v", first, second)
	}
}

func TestFillMissingCoversEnumeration(t *testing.T) {
	rows := []models.PlatformProgress{
		{ID: 7, BrandID: 3, Platform: "instagram", Committed: 12},
	}
	filled := FillMissing(3, rows)
	if len(filled) != len(Codes()) {
		t.Fatalf("expected %d rows, got %d", len(Codes()), len(filled))
	}
	for i, code := range Codes() {
		if filled[i].Platform != code {
			t.Fatalf("row %d: expected %s, got %s", i, code, filled[i].Platform)
		}
	}
	// existing row survives with its stored values
	found := false
	for _, r := range filled {
		if r.Platform == "instagram" {
			found = true
			if r.ID != 7 || r.Committed != 12 {
				t.Fatalf("existing row was replaced: %+v", r)
			}
		} else if r.Committed != 0 || r.ID != 0 {
			t.Fatalf("placeholder row not zero-valued: %+v", r)
		} else if !r.IsVisible || !r.IsActive {
			t.Fatalf("placeholder row should default visible/active: %+v", r)
		}
	}
	if !found {
		t.Fatal("instagram row missing after fill")
	}
}

func TestPlatformLookups(t *testing.T) {
	if !KnownPlatform("website_blogs") || KnownPlatform("myspace") {
		t.Fatal("KnownPlatform misclassified a code")
	}
	if DisplayName("twitter") != "Twitter/X" {
		t.Fatalf("unexpected display name: %s", DisplayName("twitter"))
	}
	if code, ok := CodeForName("Blue Sky"); !ok || code != "bluesky" {
		t.Fatalf("CodeForName failed: %s %v", code, ok)
	}
}
