package boilerplate

import (
	"fmt"
	"strings"
)

// javaMain emits a Java class (or interface) with package declaration,
// configured imports and annotations.
func (e *Emitter) javaMain(fileType, name string) (string, error) {
	basePackage := e.cfg.BasePackage
	if basePackage == "" {
		basePackage = "com.example.demo"
	}

	// naming 템플릿에서 클래스 이름을 가져온다 ({Name}Service.java → UserService)
	filename, err := e.res.ResolveFilename(fileType, name, false)
	if err != nil {
		return "", err
	}
	className := strings.TrimSuffix(filename, ".java")

	var lines []string
	lines = append(lines, fmt.Sprintf("package %s.%s;", basePackage, fileType), "")

	imports := e.extraStringList("imports", fileType)
	if len(imports) == 0 {
		imports = e.extraStringList("common_imports", fileType)
	}
	if len(imports) > 0 {
		for _, imp := range imports {
			lines = append(lines, fmt.Sprintf("import %s;", imp))
		}
		lines = append(lines, "")
	}

	if annotations := e.extraStringList("annotations", fileType); len(annotations) > 0 {
		for _, annotation := range annotations {
			annotation = strings.TrimSpace(strings.ReplaceAll(annotation, " (optional)", ""))
			lines = append(lines, annotation)
		}
		lines = append(lines, "")
	}

	classType := "class"
	if fileType == "repository" {
		classType = "interface"
	}

	lines = append(lines,
		fmt.Sprintf("public %s %s {", classType, className),
		"",
		"    // TODO: Implement business logic",
		"",
		"}")

	return strings.Join(lines, "\n"), nil
}

// javaTest emits a JUnit 5 test class skeleton
func (e *Emitter) javaTest(fileType, name string) (string, error) {
	basePackage := e.cfg.BasePackage
	if basePackage == "" {
		basePackage = "com.example.demo"
	}

	testFilename, err := e.res.ResolveFilename(fileType, name, true)
	if err != nil {
		return "", err
	}
	mainFilename, err := e.res.ResolveFilename(fileType, name, false)
	if err != nil {
		return "", err
	}

	testClass := strings.TrimSuffix(testFilename, ".java")
	mainClass := strings.TrimSuffix(mainFilename, ".java")

	lines := []string{
		fmt.Sprintf("package %s.%s;", basePackage, fileType),
		"",
		"import org.junit.jupiter.api.Test;",
		"import static org.junit.jupiter.api.Assertions.*;",
		"",
		fmt.Sprintf("class %s {", testClass),
		"",
		"    @Test",
		fmt.Sprintf("    void test%s() {", mainClass),
		"        // TODO: Implement test",
		"    }",
		"",
		"}",
	}

	return strings.Join(lines, "\n"), nil
}
