package folders

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"brandops/models"
)

func readNames(t *testing.T, data []byte) []string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("not a zip: %v", err)
	}
	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	return names
}

func TestBuildArchiveSingleBrand(t *testing.T) {
	data, err := BuildArchive([]models.BrandProfile{{BrandName: "Acme Foods/Co"}})
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	names := readNames(t, data)
	// 16 folders + 1 readme
	if len(names) != 17 {
		t.Fatalf("expected 17 entries, got %d: %v", len(names), names)
	}
	want := []string{
		"Acme_Foods_Co/Client Docs/",
		"Acme_Foods_Co/01_Blogs_Acme_Foods_Co/",
		"Acme_Foods_Co/README.md",
	}
	for _, w := range want {
		found := false
		for _, n := range names {
			if n == w {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("missing entry %s in %v", w, names)
		}
	}
}

func TestBuildArchiveReadmeContent(t *testing.T) {
	data, err := BuildArchive([]models.BrandProfile{{BrandName: "Farway"}})
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	zr, _ := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	for _, f := range zr.File {
		if !strings.HasSuffix(f.Name, "README.md") {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open readme: %v", err)
		}
		body, _ := io.ReadAll(rc)
		rc.Close()
		if !strings.Contains(string(body), "# Farway - Content Folder Structure") {
			t.Fatalf("readme missing heading: %s", body)
		}
		return
	}
	t.Fatal("no README.md in archive")
}

func TestArchiveFilename(t *testing.T) {
	one := []models.BrandProfile{{BrandName: "My Maa Markets"}}
	if got := ArchiveFilename(one); got != "My_Maa_Markets_folder_structure.zip" {
		t.Fatalf("unexpected single filename: %s", got)
	}
	many := []models.BrandProfile{{BrandName: "A"}, {BrandName: "B"}, {BrandName: "C"}}
	if got := ArchiveFilename(many); got != "bulk_folder_structures_3_brands.zip" {
		t.Fatalf("unexpected bulk filename: %s", got)
	}
}
