package boilerplate

import (
	"strings"
	"testing"

	"github.com/n0roo/org-kit/internal/config"
	"github.com/n0roo/org-kit/internal/resolver"
)

func javaEmitter() *Emitter {
	cfg := &config.Config{
		ProjectType: config.ProjectSpringBoot,
		Language:    config.LangJava,
		BasePackage: "com.example.demo",
		Structure: map[string]config.FileTypeSpec{
			"service": {
				Path:   "src/main/java/{package}/service",
				Naming: "{Name}Service.java",
			},
			"repository": {
				Path:   "src/main/java/{package}/repository",
				Naming: "{Name}Repository.java",
			},
		},
		Extra: map[string]any{
			"imports": map[string]any{
				"service": []any{"org.springframework.stereotype.Service"},
			},
			"annotations": map[string]any{
				"service": []any{"@Service", "@Transactional (optional)"},
			},
		},
	}
	return New(cfg, resolver.New(cfg, "/tmp/p"))
}

func TestJavaMain(t *testing.T) {
	content, err := javaEmitter().Main("service", "User", "")
	if err != nil {
		t.Fatalf("Main failed: %v", err)
	}

	for _, want := range []string{
		"package com.example.demo.service;",
		"import org.springframework.stereotype.Service;",
		"@Service",
		"@Transactional",
		"public class UserService {",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("expected %q in output:\n%s", want, content)
		}
	}

	// "(optional)" 표기는 제거되어야 한다
	if strings.Contains(content, "(optional)") {
		t.Error("optional marker must be stripped from annotations")
	}
}

func TestJavaRepositoryIsInterface(t *testing.T) {
	content, err := javaEmitter().Main("repository", "User", "")
	if err != nil {
		t.Fatalf("Main failed: %v", err)
	}
	if !strings.Contains(content, "public interface UserRepository {") {
		t.Errorf("expected interface for repository:\n%s", content)
	}
}

func TestJavaTest(t *testing.T) {
	content, err := javaEmitter().Test("service", "User")
	if err != nil {
		t.Fatalf("Test failed: %v", err)
	}

	for _, want := range []string{
		"import org.junit.jupiter.api.Test;",
		"class UserServiceTest {",
		"void testUserService() {",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("expected %q in output:\n%s", want, content)
		}
	}
}

func TestPythonMain(t *testing.T) {
	cfg := &config.Config{
		ProjectType: config.ProjectDjango,
		Language:    config.LangPython,
		Structure: map[string]config.FileTypeSpec{
			"model": {Path: "{app}/models", Naming: "{name}.py"},
		},
	}
	e := New(cfg, resolver.New(cfg, "/tmp/p"))

	content, err := e.Main("model", "UserProfile", "users")
	if err != nil {
		t.Fatalf("Main failed: %v", err)
	}
	if !strings.Contains(content, "class UserProfile(models.Model):") {
		t.Errorf("expected Django model class:\n%s", content)
	}
}

func TestJavaScriptComponent(t *testing.T) {
	cfg := &config.Config{
		ProjectType: config.ProjectReact,
		Language:    config.LangJavaScript,
		Structure: map[string]config.FileTypeSpec{
			"component": {Path: "src/components/{Name}", Naming: "{Name}.jsx"},
			"hook":      {Path: "src/hooks", Naming: "use{Name}.js"},
		},
	}
	e := New(cfg, resolver.New(cfg, "/tmp/p"))

	content, err := e.Main("component", "UserCard", "")
	if err != nil {
		t.Fatalf("Main failed: %v", err)
	}
	if !strings.Contains(content, "const UserCard = () => {") {
		t.Errorf("expected component skeleton:\n%s", content)
	}

	content, err = e.Main("hook", "fetch_data", "")
	if err != nil {
		t.Fatalf("Main failed: %v", err)
	}
	if !strings.Contains(content, "const useFetchData = () => {") {
		t.Errorf("expected hook skeleton:\n%s", content)
	}
}

func TestAdditionalContent(t *testing.T) {
	e := javaEmitter()

	css := e.Additional("UserCard.module.css", "UserCard")
	if !strings.Contains(css, "/* UserCard styles */") {
		t.Errorf("unexpected css content: %s", css)
	}

	types := e.Additional("UserCard.d.ts", "UserCard")
	if !strings.Contains(types, "export interface UserCardProps {") {
		t.Errorf("unexpected ts content: %s", types)
	}

	generic := e.Additional("notes.txt", "UserCard")
	if !strings.Contains(generic, "notes.txt") {
		t.Errorf("unexpected generic content: %s", generic)
	}
}

func TestGenericLanguageFallback(t *testing.T) {
	cfg := &config.Config{
		ProjectType: config.ProjectGo,
		Language:    config.LangGo,
		Structure: map[string]config.FileTypeSpec{
			"handler": {Path: "internal/handler", Naming: "{name}.go"},
		},
	}
	e := New(cfg, resolver.New(cfg, "/tmp/p"))

	content, err := e.Main("handler", "user", "")
	if err != nil {
		t.Fatalf("Main failed: %v", err)
	}
	if !strings.Contains(content, "// User") {
		t.Errorf("expected generic fallback:\n%s", content)
	}
}
