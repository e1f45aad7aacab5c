package casing

import (
	"strings"
	"unicode"
)

// Language identifiers used for test filename conventions
const (
	LangJava       = "java"
	LangPython     = "python"
	LangJavaScript = "javascript"
	LangTypeScript = "typescript"
	LangGo         = "go"
)

// ToPascalCase converts a name to PascalCase.
//
// Handles snake_case (user_service), kebab-case (user-service),
// camelCase (userService) and names that are already PascalCase.
// A file extension, if present, is stripped first.
func ToPascalCase(name string) string {
	name = stripExtension(name)
	if name == "" {
		return ""
	}

	if strings.ContainsAny(name, "_-") {
		parts := strings.FieldsFunc(name, isDelimiter)
		var b strings.Builder
		for _, part := range parts {
			b.WriteString(capitalize(part))
		}
		return b.String()
	}

	runes := []rune(name)
	if unicode.IsUpper(runes[0]) {
		// 이미 PascalCase
		return name
	}

	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// ToSnakeCase converts a name to snake_case.
//
// Handles PascalCase (UserService), camelCase (userService),
// kebab-case (user-service) and names that are already snake_case.
func ToSnakeCase(name string) string {
	name = stripExtension(name)
	if name == "" {
		return ""
	}

	if strings.ContainsAny(name, "_-") {
		return strings.ToLower(strings.ReplaceAll(name, "-", "_"))
	}

	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) && i > 0 {
			b.WriteRune('_')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// ToKebabCase converts a name to kebab-case.
func ToKebabCase(name string) string {
	return strings.ReplaceAll(ToSnakeCase(name), "_", "-")
}

// ToCamelCase converts a name to camelCase.
func ToCamelCase(name string) string {
	pascal := ToPascalCase(name)
	if pascal == "" {
		return ""
	}
	runes := []rune(pascal)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

// TestFilename converts a filename to its test equivalent for the
// given language.
//
//	java:       UserService.java  -> UserServiceTest.java
//	python:     user_service.py   -> test_user_service.py
//	javascript: UserComponent.jsx -> UserComponent.test.jsx
//
// Any other language falls back to the Test suffix convention.
func TestFilename(filename, language string) string {
	base := filename
	ext := ""
	if idx := strings.LastIndex(filename, "."); idx >= 0 {
		base = filename[:idx]
		ext = filename[idx+1:]
	}

	var testName string
	switch language {
	case LangJava:
		testName = base + "Test"
	case LangPython:
		if strings.HasPrefix(base, "test_") {
			testName = base
		} else {
			testName = "test_" + base
		}
	case LangJavaScript, LangTypeScript:
		if strings.Contains(base, ".test") || strings.Contains(base, ".spec") {
			testName = base
		} else {
			testName = base + ".test"
		}
	default:
		testName = base + "Test"
	}

	if ext != "" {
		return testName + "." + ext
	}
	return testName
}

// stripExtension removes everything after the first dot.
func stripExtension(name string) string {
	if idx := strings.Index(name, "."); idx >= 0 {
		return name[:idx]
	}
	return name
}

func isDelimiter(r rune) bool {
	return r == '_' || r == '-'
}

// capitalize uppercases the first rune and lowercases the rest.
func capitalize(s string) string {
	if s == "" {
		return ""
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
