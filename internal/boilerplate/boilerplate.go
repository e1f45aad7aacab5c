// Package boilerplate assembles the text content of generated files.
// It is plain string assembly: the resolved configuration decides the
// shape, and the emitter never parses what it writes.
package boilerplate

import (
	"fmt"

	"github.com/n0roo/org-kit/internal/casing"
	"github.com/n0roo/org-kit/internal/config"
	"github.com/n0roo/org-kit/internal/resolver"
)

// Emitter produces boilerplate for a resolved configuration
type Emitter struct {
	cfg *config.Config
	res *resolver.Resolver
}

// New creates an emitter bound to a configuration and its resolver
func New(cfg *config.Config, res *resolver.Resolver) *Emitter {
	return &Emitter{cfg: cfg, res: res}
}

// Main emits the main file content for a file type and name
func (e *Emitter) Main(fileType, name, app string) (string, error) {
	pascal := casing.ToPascalCase(name)
	snake := casing.ToSnakeCase(name)

	switch e.cfg.Language {
	case config.LangJava:
		return e.javaMain(fileType, name)
	case config.LangPython:
		return e.pythonMain(fileType, pascal, snake), nil
	case config.LangJavaScript, config.LangTypeScript:
		return e.javascriptMain(fileType, pascal), nil
	default:
		return fmt.Sprintf("// %s\n// TODO: Implement %s\n", pascal, fileType), nil
	}
}

// Test emits the companion test file content
func (e *Emitter) Test(fileType, name string) (string, error) {
	pascal := casing.ToPascalCase(name)
	snake := casing.ToSnakeCase(name)

	switch e.cfg.Language {
	case config.LangJava:
		return e.javaTest(fileType, name)
	case config.LangPython:
		return e.pythonTest(pascal, snake), nil
	case config.LangJavaScript, config.LangTypeScript:
		return e.javascriptTest(pascal), nil
	default:
		return fmt.Sprintf("// Test for %s\n// TODO: Implement tests\n", pascal), nil
	}
}

// Additional emits content for a companion file, chosen by its
// filename suffix (styles, type declarations, generic fallback).
func (e *Emitter) Additional(filename, name string) string {
	pascal := casing.ToPascalCase(name)

	switch {
	case hasSuffix(filename, ".css"):
		return fmt.Sprintf("/* %s styles */\n\n.container {\n  /* TODO: Add styles */\n}\n", pascal)
	case hasSuffix(filename, ".d.ts"), hasSuffix(filename, ".ts"):
		return fmt.Sprintf("// %s types\n\nexport interface %sProps {\n  // TODO: Define props\n}\n", pascal, pascal)
	default:
		return fmt.Sprintf("// %s\n// TODO: Implement\n", filename)
	}
}

func hasSuffix(s, suffix string) bool {
	return len(s) >= len(suffix) && s[len(s)-len(suffix):] == suffix
}

// extraStringList reads a per-file-type string list from a free-form
// extension key, e.g. imports.service or annotations.controller.
func (e *Emitter) extraStringList(key, fileType string) []string {
	section, ok := e.cfg.Extra[key].(map[string]any)
	if !ok {
		return nil
	}
	items, ok := section[fileType].([]any)
	if !ok {
		return nil
	}

	var result []string
	for _, item := range items {
		if s, ok := item.(string); ok {
			result = append(result, s)
		}
	}
	return result
}
