package program

import (
	"errors"
	"slices"
	"testing"
)

func TestExtractFrontmatterYAML(t *testing.T) {
	doc := []byte("---\nname: demo\nstack: [3, 2, 1]\nvars:\n  tau: 6.28\nprecision: 4\n---\nbody\n")

	meta, body, err := ExtractFrontmatter(doc)
	if err != nil {
		t.Fatalf("ExtractFrontmatter error: %v", err)
	}
	if meta.Name != "demo" {
		t.Errorf("Name = %q, want %q", meta.Name, "demo")
	}
	if !slices.Equal(meta.Stack, []float64{3, 2, 1}) {
		t.Errorf("Stack = %v, want [3 2 1]", meta.Stack)
	}
	if meta.Vars["tau"] != 6.28 {
		t.Errorf("Vars[tau] = %v, want 6.28", meta.Vars["tau"])
	}
	if meta.Precision != 4 {
		t.Errorf("Precision = %d, want 4", meta.Precision)
	}
	if string(body) != "body\n" {
		t.Errorf("body = %q, want %q", body, "body\n")
	}
}

func TestExtractFrontmatterTOML(t *testing.T) {
	doc := []byte("+++\nname = \"demo\"\nstack = [1.5]\n+++\nrest")

	meta, body, err := ExtractFrontmatter(doc)
	if err != nil {
		t.Fatalf("ExtractFrontmatter error: %v", err)
	}
	if meta.Name != "demo" || !slices.Equal(meta.Stack, []float64{1.5}) {
		t.Errorf("meta = %+v, want name=demo stack=[1.5]", meta)
	}
	if string(body) != "rest" {
		t.Errorf("body = %q, want %q", body, "rest")
	}
}

func TestExtractFrontmatterJSON(t *testing.T) {
	doc := []byte("{\"name\": \"j\", \"vars\": {\"x\": 2}}\nbody")

	meta, body, err := ExtractFrontmatter(doc)
	if err != nil {
		t.Fatalf("ExtractFrontmatter error: %v", err)
	}
	if meta.Name != "j" || meta.Vars["x"] != 2 {
		t.Errorf("meta = %+v, want name=j vars[x]=2", meta)
	}
	if string(body) != "body" {
		t.Errorf("body = %q, want %q", body, "body")
	}
}

func TestExtractFrontmatterAbsent(t *testing.T) {
	_, _, err := ExtractFrontmatter([]byte("just a document\n"))
	if !errors.Is(err, ErrNoFrontmatter) {
		t.Errorf("error = %v, want ErrNoFrontmatter", err)
	}
}

func TestExtractFrontmatterUnterminatedFence(t *testing.T) {
	_, _, err := ExtractFrontmatter([]byte("---\nname: x\nno closing fence\n"))
	if !errors.Is(err, ErrNoFrontmatter) {
		t.Errorf("error = %v, want ErrNoFrontmatter", err)
	}
}

func TestExtractFrontmatterMalformed(t *testing.T) {
	_, _, err := ExtractFrontmatter([]byte("---\n[unclosed\n---\nbody\n"))
	if !errors.Is(err, ErrFailedToParseFrontmatter) {
		t.Errorf("error = %v, want ErrFailedToParseFrontmatter", err)
	}
}

func TestExtractFrontmatterBOM(t *testing.T) {
	doc := append([]byte{0xEF, 0xBB, 0xBF}, []byte("---\nname: bom\n---\n")...)

	meta, _, err := ExtractFrontmatter(doc)
	if err != nil {
		t.Fatalf("ExtractFrontmatter error: %v", err)
	}
	if meta.Name != "bom" {
		t.Errorf("Name = %q, want %q", meta.Name, "bom")
	}
}
