package progress

import "testing"

func TestImportRows(t *testing.T) {
	rows := [][]string{
		{"Acme Foods", "Instagram", "20", "5", "2", "reels first"},
		{"Acme Foods", "IG Stories", "10", "0", "0"}, // via mapping
		{"Acme Foods", "Myspace", "1", "0", "0"},     // unknown platform
		{"", "LinkedIn", "5", "1", "0"},              // empty brand
		{"Acme Foods", "YouTube", "ten", "0", "0"},   // non-numeric
	}
	mapping := map[string]string{"IG Stories": "instagram"}
	recs, errs := ImportRows(rows, mapping)
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d: %+v", len(recs), recs)
	}
	if recs[0].Platform != "instagram" || recs[0].Committed != 20 || recs[0].Notes != "reels first" {
		t.Fatalf("unexpected first record: %+v", recs[0])
	}
	if recs[1].Platform != "instagram" {
		t.Fatalf("mapping not applied: %+v", recs[1])
	}
	if len(errs) != 3 {
		t.Fatalf("expected 3 row errors, got %d: %v", len(errs), errs)
	}
	if errs[0].Line != 3 || errs[1].Line != 4 || errs[2].Line != 5 {
		t.Fatalf("wrong error lines: %v", errs)
	}
}

func TestImportRowsRawCodeFallback(t *testing.T) {
	recs, errs := ImportRows([][]string{{"B", "website_blogs", "1", "1", "1"}}, nil)
	if len(errs) != 0 || len(recs) != 1 || recs[0].Platform != "website_blogs" {
		t.Fatalf("raw code should resolve: recs=%+v errs=%v", recs, errs)
	}
}

func TestImportRowsShortRow(t *testing.T) {
	_, errs := ImportRows([][]string{{"B", "LinkedIn", "1"}}, nil)
	if len(errs) != 1 {
		t.Fatalf("short row should error, got %v", errs)
	}
}
