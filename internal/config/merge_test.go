package config

import (
	"errors"
	"reflect"
	"testing"
)

func TestMergeEmptyChain(t *testing.T) {
	_, _, err := Merge(nil, "/some/start")

	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected *NotFoundError, got %T: %v", err, err)
	}
	if notFound.StartPath != "/some/start" {
		t.Errorf("expected start path carried, got %s", notFound.StartPath)
	}
}

func TestMergeStructurePreservesFields(t *testing.T) {
	chain := []Entry{
		{Dir: "/root", Doc: map[string]any{
			"structure": map[string]any{
				"service": map[string]any{"path": "a"},
			},
		}},
		{Dir: "/root/sub", Doc: map[string]any{
			"structure": map[string]any{
				"service": map[string]any{"naming": "b"},
			},
		}},
	}

	merged, sources, err := Merge(chain, "/root/sub")
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}

	service := merged["structure"].(map[string]any)["service"].(map[string]any)
	if service["path"] != "a" || service["naming"] != "b" {
		t.Errorf("structure merge lost fields: %v", service)
	}

	if !reflect.DeepEqual(sources, []string{"/root", "/root/sub"}) {
		t.Errorf("unexpected sources: %v", sources)
	}
	if !reflect.DeepEqual(merged[sourcesKey], []string{"/root", "/root/sub"}) {
		t.Errorf("unexpected %s: %v", sourcesKey, merged[sourcesKey])
	}
}

func TestMergeStructureAddsNewFileType(t *testing.T) {
	chain := []Entry{
		{Dir: "/a", Doc: map[string]any{
			"structure": map[string]any{
				"service": map[string]any{"path": "src/service", "naming": "{Name}.java"},
			},
		}},
		{Dir: "/a/b", Doc: map[string]any{
			"structure": map[string]any{
				"controller": map[string]any{"path": "src/controller", "naming": "{Name}Controller.java"},
			},
		}},
	}

	merged, _, err := Merge(chain, "/a/b")
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}

	structure := merged["structure"].(map[string]any)
	if len(structure) != 2 {
		t.Errorf("expected 2 file types, got %d", len(structure))
	}
}

func TestMergeListExtend(t *testing.T) {
	chain := []Entry{
		{Dir: "/a", Doc: map[string]any{"tags": []any{1, 2}}},
		{Dir: "/a/b", Doc: map[string]any{"tags": []any{3}}},
	}

	merged, _, err := Merge(chain, "/a/b")
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}

	if !reflect.DeepEqual(merged["tags"], []any{1, 2, 3}) {
		t.Errorf("expected extended list [1 2 3], got %v", merged["tags"])
	}
}

func TestMergeListReplaceFlag(t *testing.T) {
	chain := []Entry{
		{Dir: "/a", Doc: map[string]any{"tags": []any{1, 2}}},
		{Dir: "/a/b", Doc: map[string]any{"tags": []any{3}, "tags_replace": true}},
	}

	merged, _, err := Merge(chain, "/a/b")
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}

	if !reflect.DeepEqual(merged["tags"], []any{3}) {
		t.Errorf("expected replaced list [3], got %v", merged["tags"])
	}
}

func TestMergeScalarOverride(t *testing.T) {
	chain := []Entry{
		{Dir: "/a", Doc: map[string]any{"language": "java", "base_package": "com.example"}},
		{Dir: "/a/b", Doc: map[string]any{"language": "python"}},
	}

	merged, _, err := Merge(chain, "/a/b")
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}

	if merged["language"] != "python" {
		t.Errorf("expected override to win, got %v", merged["language"])
	}
	if merged["base_package"] != "com.example" {
		t.Errorf("expected inherited value preserved, got %v", merged["base_package"])
	}
}

func TestMergeNestedDicts(t *testing.T) {
	chain := []Entry{
		{Dir: "/a", Doc: map[string]any{
			"imports": map[string]any{
				"service": []any{"org.springframework.stereotype.Service"},
			},
		}},
		{Dir: "/a/b", Doc: map[string]any{
			"imports": map[string]any{
				"controller": []any{"org.springframework.web.bind.annotation.RestController"},
			},
		}},
	}

	merged, _, err := Merge(chain, "/a/b")
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}

	imports := merged["imports"].(map[string]any)
	if len(imports) != 2 {
		t.Errorf("expected nested dict merge, got %v", imports)
	}
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	base := map[string]any{
		"structure": map[string]any{
			"service": map[string]any{"path": "a"},
		},
	}
	override := map[string]any{
		"structure": map[string]any{
			"service": map[string]any{"naming": "b"},
		},
	}

	chain := []Entry{{Dir: "/a", Doc: base}, {Dir: "/a/b", Doc: override}}
	if _, _, err := Merge(chain, "/a/b"); err != nil {
		t.Fatalf("Merge failed: %v", err)
	}

	baseService := base["structure"].(map[string]any)["service"].(map[string]any)
	if _, leaked := baseService["naming"]; leaked {
		t.Error("merge mutated the base document")
	}
}
