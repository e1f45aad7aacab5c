package generator

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/n0roo/org-kit/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		ProjectType: config.ProjectSpringBoot,
		Language:    config.LangJava,
		BasePackage: "com.example.demo",
		Structure: map[string]config.FileTypeSpec{
			"service": {
				Path:         "src/main/java/{package}/service",
				Naming:       "{Name}Service.java",
				TestPath:     "src/test/java/{package}/service",
				GenerateTest: true,
			},
		},
	}
}

func reactConfig() *config.Config {
	return &config.Config{
		ProjectType: config.ProjectReact,
		Language:    config.LangJavaScript,
		Structure: map[string]config.FileTypeSpec{
			"component": {
				Path:            "src/components/{Name}",
				Naming:          "{Name}.jsx",
				AdditionalFiles: []string{"{Name}.module.css"},
			},
		},
	}
}

func TestGenerateDryRun(t *testing.T) {
	root := t.TempDir()
	svc := NewService(testConfig(), root)

	files, err := svc.Generate(Request{FileType: "service", Name: "User", DryRun: true})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	// 메인 파일 + 자동 테스트 파일
	if len(files) != 2 {
		t.Fatalf("expected 2 descriptors, got %d", len(files))
	}
	if files[0].IsTest || !files[1].IsTest {
		t.Error("expected main first, test second")
	}

	// dry-run은 아무것도 쓰지 않는다
	if _, err := os.Stat(files[0].Path); !os.IsNotExist(err) {
		t.Error("dry run must not write files")
	}
}

func TestGenerateWritesFiles(t *testing.T) {
	root := t.TempDir()
	svc := NewService(testConfig(), root)

	files, err := svc.Generate(Request{FileType: "service", Name: "User"})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	expected := filepath.Join(root, "src/main/java/com/example/demo/service/UserService.java")
	if files[0].Path != expected {
		t.Errorf("expected %s, got %s", expected, files[0].Path)
	}

	data, err := os.ReadFile(expected)
	if err != nil {
		t.Fatalf("generated file not written: %v", err)
	}
	if !strings.Contains(string(data), "public class UserService {") {
		t.Errorf("unexpected content:\n%s", data)
	}

	testFile := filepath.Join(root, "src/test/java/com/example/demo/service/UserServiceTest.java")
	if _, err := os.Stat(testFile); err != nil {
		t.Errorf("test file not written: %v", err)
	}
}

func TestGenerateConflict(t *testing.T) {
	root := t.TempDir()
	svc := NewService(testConfig(), root)

	if _, err := svc.Generate(Request{FileType: "service", Name: "User"}); err != nil {
		t.Fatalf("first Generate failed: %v", err)
	}

	_, err := svc.Generate(Request{FileType: "service", Name: "User"})
	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected *ConflictError, got %T: %v", err, err)
	}

	// --force는 덮어쓴다
	if _, err := svc.Generate(Request{FileType: "service", Name: "User", Force: true}); err != nil {
		t.Fatalf("force Generate failed: %v", err)
	}
}

func TestGenerateCustomContent(t *testing.T) {
	root := t.TempDir()
	svc := NewService(testConfig(), root)

	files, err := svc.Generate(Request{
		FileType:      "service",
		Name:          "User",
		CustomContent: "// custom\n",
		DryRun:        true,
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if files[0].Content != "// custom\n" {
		t.Errorf("expected custom content, got %q", files[0].Content)
	}
}

func TestGenerateAdditionalFiles(t *testing.T) {
	root := t.TempDir()
	svc := NewService(reactConfig(), root)

	files, err := svc.Generate(Request{FileType: "component", Name: "UserCard"})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if len(files) != 2 {
		t.Fatalf("expected main + css, got %d descriptors", len(files))
	}

	css := filepath.Join(root, "src/components/UserCard/UserCard.module.css")
	if files[1].Path != css {
		t.Errorf("expected %s, got %s", css, files[1].Path)
	}
	if _, err := os.Stat(css); err != nil {
		t.Errorf("additional file not written: %v", err)
	}
}

func TestGeneratePartialBatchOnConflict(t *testing.T) {
	root := t.TempDir()
	svc := NewService(reactConfig(), root)

	// 추가 파일만 미리 존재하게 만들어 중간 실패를 유도
	cssDir := filepath.Join(root, "src/components/UserCard")
	if err := os.MkdirAll(cssDir, 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	cssPath := filepath.Join(cssDir, "UserCard.module.css")
	if err := os.WriteFile(cssPath, []byte("existing"), 0644); err != nil {
		t.Fatalf("failed to seed file: %v", err)
	}

	_, err := svc.Generate(Request{FileType: "component", Name: "UserCard"})
	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected *ConflictError, got %v", err)
	}
	if conflict.Path != cssPath {
		t.Errorf("expected conflict on %s, got %s", cssPath, conflict.Path)
	}

	// 배치는 트랜잭션이 아니다: 앞서 쓴 메인 파일은 남아 있다
	mainPath := filepath.Join(cssDir, "UserCard.jsx")
	if _, err := os.Stat(mainPath); err != nil {
		t.Error("main file should remain after mid-batch conflict")
	}

	// 기존 파일은 변경되지 않는다
	data, _ := os.ReadFile(cssPath)
	if string(data) != "existing" {
		t.Error("conflicting file must not be touched")
	}
}

func TestGenerateTestOnly(t *testing.T) {
	root := t.TempDir()
	svc := NewService(testConfig(), root)

	files, err := svc.Generate(Request{FileType: "service", Name: "User", TestOnly: true})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if len(files) != 1 || !files[0].IsTest {
		t.Fatalf("expected a single test descriptor, got %+v", files)
	}

	expected := filepath.Join(root, "src/test/java/com/example/demo/service/UserServiceTest.java")
	if files[0].Path != expected {
		t.Errorf("expected %s, got %s", expected, files[0].Path)
	}

	// 메인 파일은 생성되지 않는다
	mainPath := filepath.Join(root, "src/main/java/com/example/demo/service/UserService.java")
	if _, err := os.Stat(mainPath); !os.IsNotExist(err) {
		t.Error("test-only generation must not write the main file")
	}
}

func TestGenerateUnknownFileType(t *testing.T) {
	svc := NewService(testConfig(), t.TempDir())

	_, err := svc.Generate(Request{FileType: "helper", Name: "User", DryRun: true})
	if err == nil {
		t.Fatal("expected error for unknown file type")
	}
}
