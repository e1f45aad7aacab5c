package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ProjectType represents the project framework type
type ProjectType string

const (
	ProjectSpringBoot ProjectType = "spring-boot"
	ProjectMaven      ProjectType = "maven"
	ProjectDjango     ProjectType = "django"
	ProjectFlask      ProjectType = "flask"
	ProjectFastAPI    ProjectType = "fastapi"
	ProjectReact      ProjectType = "react"
	ProjectNextJS     ProjectType = "nextjs"
	ProjectVue        ProjectType = "vue"
	ProjectExpress    ProjectType = "express"
	ProjectGo         ProjectType = "go"
)

// Language represents the project source language
type Language string

const (
	LangJava       Language = "java"
	LangPython     Language = "python"
	LangJavaScript Language = "javascript"
	LangTypeScript Language = "typescript"
	LangGo         Language = "go"
)

// SupportedProjectTypes lists all supported project types
var SupportedProjectTypes = []ProjectType{
	ProjectSpringBoot, ProjectMaven, ProjectDjango, ProjectFlask,
	ProjectFastAPI, ProjectReact, ProjectNextJS, ProjectVue,
	ProjectExpress, ProjectGo,
}

// SupportedLanguages lists all supported languages
var SupportedLanguages = []Language{
	LangJava, LangPython, LangJavaScript, LangTypeScript, LangGo,
}

// SupportedVariables lists the template variables recognized in
// path and naming templates
var SupportedVariables = []string{"{Name}", "{name}", "{package}", "{app}"}

const (
	// ConfigDirName is the per-directory config directory
	ConfigDirName = ".claude"
	// ConfigFileName is the config file name inside ConfigDirName
	ConfigFileName = "project.yaml"
	// BoundaryMarker halts upward chain walking (repository boundary)
	BoundaryMarker = ".git"
)

// FileTypeSpec describes how one file type is laid out and named
type FileTypeSpec struct {
	Path            string   `yaml:"path"`
	Naming          string   `yaml:"naming"`
	TestPath        string   `yaml:"test_path,omitempty"`
	GenerateTest    bool     `yaml:"generate_test,omitempty"`
	AdditionalFiles []string `yaml:"additional_files,omitempty"`
}

// Config is the merged, validated project configuration
type Config struct {
	ProjectType ProjectType
	Language    Language
	BasePackage string
	Structure   map[string]FileTypeSpec

	// Extra holds free-form extension keys (imports, annotations,
	// version, ...) untouched by the typed decode
	Extra map[string]any

	// Sources lists the contributing config directories in merge
	// order (diagnostics only)
	Sources []string
}

// FileTypes returns the configured file type names
func (c *Config) FileTypes() []string {
	types := make([]string, 0, len(c.Structure))
	for ft := range c.Structure {
		types = append(types, ft)
	}
	return types
}

// ConfigPath returns the config file path for a directory
func ConfigPath(dir string) string {
	return filepath.Join(dir, ConfigDirName, ConfigFileName)
}

// HasConfig checks if a directory carries its own config file
func HasConfig(dir string) bool {
	_, err := os.Stat(ConfigPath(dir))
	return err == nil
}

// LoadDocument reads and parses a single config document as a raw
// mapping. Parse failures carry the offending file path.
func LoadDocument(dir string) (map[string]any, error) {
	path := ConfigPath(dir)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("설정 파일 읽기 실패: %w", err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	return doc, nil
}

// SaveDocument writes a raw config document to <dir>/.claude/project.yaml
func SaveDocument(dir string, doc map[string]any) error {
	path := ConfigPath(dir)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("디렉토리 생성 실패: %w", err)
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("설정 직렬화 실패: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("설정 파일 저장 실패: %w", err)
	}

	return nil
}

// Resolve builds the configuration chain from startDir, merges it and
// validates the result. This is the single entry point for every
// generate/validate operation; nothing is cached across calls.
func Resolve(startDir string) (*Config, error) {
	chain, err := BuildChain(startDir)
	if err != nil {
		return nil, err
	}

	merged, sources, err := Merge(chain, startDir)
	if err != nil {
		return nil, err
	}

	cfg, err := fromDocument(merged)
	if err != nil {
		return nil, err
	}
	cfg.Sources = sources

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// fromDocument decodes a merged raw document into a typed Config.
// Recognized top-level keys are lifted into fields; everything else
// stays in Extra.
func fromDocument(doc map[string]any) (*Config, error) {
	cfg := &Config{
		Structure: make(map[string]FileTypeSpec),
		Extra:     make(map[string]any),
	}

	for key, value := range doc {
		switch key {
		case "project_type":
			s, ok := value.(string)
			if !ok {
				return nil, &SchemaError{Field: "project_type", Reason: "문자열이어야 합니다"}
			}
			cfg.ProjectType = ProjectType(s)
		case "language":
			s, ok := value.(string)
			if !ok {
				return nil, &SchemaError{Field: "language", Reason: "문자열이어야 합니다"}
			}
			cfg.Language = Language(s)
		case "base_package":
			s, ok := value.(string)
			if !ok {
				return nil, &SchemaError{Field: "base_package", Reason: "문자열이어야 합니다"}
			}
			cfg.BasePackage = s
		case "structure":
			structure, err := decodeStructure(value)
			if err != nil {
				return nil, err
			}
			cfg.Structure = structure
		case sourcesKey:
			// 병합 진단용 내부 키, Extra로 노출하지 않음
		default:
			cfg.Extra[key] = value
		}
	}

	return cfg, nil
}

// decodeStructure decodes the structure mapping into typed specs.
func decodeStructure(value any) (map[string]FileTypeSpec, error) {
	raw, ok := value.(map[string]any)
	if !ok {
		return nil, &SchemaError{Field: "structure", Reason: "매핑이어야 합니다"}
	}

	structure := make(map[string]FileTypeSpec, len(raw))
	for fileType, entry := range raw {
		entryMap, ok := entry.(map[string]any)
		if !ok {
			return nil, &SchemaError{
				Field:    "structure",
				FileType: fileType,
				Reason:   "매핑이어야 합니다",
			}
		}

		var spec FileTypeSpec
		if s, ok := entryMap["path"].(string); ok {
			spec.Path = s
		}
		if s, ok := entryMap["naming"].(string); ok {
			spec.Naming = s
		}
		if s, ok := entryMap["test_path"].(string); ok {
			spec.TestPath = s
		}
		if b, ok := entryMap["generate_test"].(bool); ok {
			spec.GenerateTest = b
		} else if _, present := entryMap["generate_test"]; present {
			return nil, &SchemaError{
				Field:    "generate_test",
				FileType: fileType,
				Reason:   "불리언이어야 합니다 (true/false)",
			}
		}
		if list, ok := entryMap["additional_files"].([]any); ok {
			for _, item := range list {
				if s, ok := item.(string); ok {
					spec.AdditionalFiles = append(spec.AdditionalFiles, s)
				}
			}
		} else if _, present := entryMap["additional_files"]; present {
			return nil, &SchemaError{
				Field:    "additional_files",
				FileType: fileType,
				Reason:   "목록이어야 합니다",
			}
		}

		structure[fileType] = spec
	}

	return structure, nil
}
