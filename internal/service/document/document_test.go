package document

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pricetag/internal/service/label"
)

func TestBuildFormJSON(t *testing.T) {
	t.Parallel()

	raw, err := buildFormJSON(map[string]string{
		label.FieldItemName:       "Kenyérpirító",
		label.FieldFormattedPrice: "15 999",
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	var got formFile
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(got.Forms) != 1 || len(got.Forms[0].TextFields) != 2 {
		t.Fatalf("unexpected form: %s", raw)
	}
	first := got.Forms[0].TextFields[0]
	if first.Name != label.FieldFormattedPrice || first.Value != "15 999" {
		t.Fatalf("fields not sorted by name: %s", raw)
	}
}

func TestBuildFormJSONRejectsEmpty(t *testing.T) {
	t.Parallel()

	if _, err := buildFormJSON(nil); err == nil {
		t.Fatalf("expected error for empty fields")
	}
}

func TestWriteUnconfiguredTemplate(t *testing.T) {
	t.Parallel()

	f := NewFormFiller(map[label.TemplateID]string{}, t.TempDir())
	_, err := f.Write(context.Background(), label.TemplateSwap, map[string]string{"a": "b"}, "x.pdf")
	if err == nil || !strings.Contains(err.Error(), "not configured") {
		t.Fatalf("err=%v, want not configured", err)
	}
}

func TestWriteMissingTemplateFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	f := NewFormFiller(map[label.TemplateID]string{
		label.TemplateStandard: filepath.Join(dir, "missing.pdf"),
	}, dir)
	if _, err := f.Write(context.Background(), label.TemplateStandard, map[string]string{"a": "b"}, "x.pdf"); err == nil {
		t.Fatalf("expected error for missing template file")
	}
}

func TestCleanDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"a.pdf", "b.pdf"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "keep"), 0755); err != nil {
		t.Fatal(err)
	}

	n, err := CleanDir(dir)
	if err != nil {
		t.Fatalf("clean: %v", err)
	}
	if n != 2 {
		t.Fatalf("removed=%d, want 2", n)
	}
	if _, err := os.Stat(filepath.Join(dir, "keep")); err != nil {
		t.Fatalf("subdirectory should be kept: %v", err)
	}
}

func TestCleanDirCreatesMissing(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "out")
	if _, err := CleanDir(dir); err != nil {
		t.Fatalf("clean: %v", err)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Fatalf("expected directory to be created")
	}
}
