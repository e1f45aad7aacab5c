package config

import "strings"

// Validate checks the merged configuration against the schema:
// language present and supported, structure non-empty, every file type
// carrying both path and naming. project_type is optional after a
// merge but must be in the supported set when present.
func (c *Config) Validate() error {
	if c.Language == "" {
		return &SchemaError{Field: "language", Reason: "필수 항목이 없습니다"}
	}
	if !isSupportedLanguage(c.Language) {
		return &SchemaError{
			Field:  "language",
			Reason: "지원하지 않는 값입니다 (지원: " + joinSupported(SupportedLanguages) + ")",
		}
	}

	if c.ProjectType != "" && !isSupportedProjectType(c.ProjectType) {
		return &SchemaError{
			Field:  "project_type",
			Reason: "지원하지 않는 값입니다 (지원: " + joinSupported(SupportedProjectTypes) + ")",
		}
	}

	if len(c.Structure) == 0 {
		return &SchemaError{Field: "structure", Reason: "비어 있습니다. 최소 한 개의 파일 타입이 필요합니다"}
	}

	for fileType, spec := range c.Structure {
		if strings.TrimSpace(spec.Path) == "" {
			return &SchemaError{Field: "path", FileType: fileType, Reason: "필수 항목이 없습니다"}
		}
		if strings.TrimSpace(spec.Naming) == "" {
			return &SchemaError{Field: "naming", FileType: fileType, Reason: "필수 항목이 없습니다"}
		}
	}

	return nil
}

// Warnings reports non-fatal issues worth surfacing to the user:
// sparse structure, file types without any test setup, naming
// templates that never reference the requested name.
func (c *Config) Warnings() []string {
	var warnings []string

	if len(c.Structure) < 2 {
		warnings = append(warnings,
			"정의된 파일 타입이 적습니다. 프로젝트에 맞는 타입을 더 추가해 보세요")
	}

	for fileType, spec := range c.Structure {
		if !spec.GenerateTest && spec.TestPath == "" {
			warnings = append(warnings,
				"파일 타입 '"+fileType+"'에 테스트 설정이 없습니다 (test_path 또는 generate_test)")
		}
		if !strings.Contains(spec.Naming, "{Name}") && !strings.Contains(spec.Naming, "{name}") {
			warnings = append(warnings,
				"파일 타입 '"+fileType+"'의 naming 템플릿에 {Name}/{name} 변수가 없습니다")
		}
	}

	return warnings
}

func isSupportedLanguage(lang Language) bool {
	for _, l := range SupportedLanguages {
		if l == lang {
			return true
		}
	}
	return false
}

func isSupportedProjectType(pt ProjectType) bool {
	for _, p := range SupportedProjectTypes {
		if p == pt {
			return true
		}
	}
	return false
}
