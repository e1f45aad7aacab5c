package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults
var defaultFS embed.FS

// TemplateError reports a template that could not be found, parsed or
// validated.
type TemplateError struct {
	Template string
	Reason   string
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("템플릿 '%s' 오류: %s", e.Template, e.Reason)
}

// Info is template metadata without the full structure document
type Info struct {
	ID          string
	Language    string
	ProjectType string
	Version     string
	FileTypes   []string
	Description string
	Custom      bool
}

// Loader discovers starter templates. Built-in templates are embedded
// in the binary; a custom directory, when set, takes precedence for
// templates with the same ID.
type Loader struct {
	customDir string
}

// NewLoader creates a loader. customDir may be empty to use only the
// embedded templates.
func NewLoader(customDir string) *Loader {
	return &Loader{customDir: customDir}
}

// DefaultCustomDir returns the per-user template directory
func DefaultCustomDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".org", "templates")
}

// List returns all available templates sorted by ID. Malformed
// template files are skipped rather than failing the whole listing.
func (l *Loader) List() []Info {
	byID := make(map[string]Info)

	// 내장 템플릿
	entries, _ := fs.ReadDir(defaultFS, "defaults")
	for _, lang := range entries {
		if !lang.IsDir() {
			continue
		}
		files, _ := fs.ReadDir(defaultFS, "defaults/"+lang.Name())
		for _, f := range files {
			if f.IsDir() || !strings.HasSuffix(f.Name(), ".yaml") {
				continue
			}
			id := strings.TrimSuffix(f.Name(), ".yaml")
			data, err := defaultFS.ReadFile("defaults/" + lang.Name() + "/" + f.Name())
			if err != nil {
				continue
			}
			info, err := parseInfo(id, data)
			if err != nil {
				continue
			}
			byID[id] = info
		}
	}

	// 사용자 템플릿이 같은 ID를 덮어쓴다
	if l.customDir != "" {
		filepath.WalkDir(l.customDir, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() || !strings.HasSuffix(d.Name(), ".yaml") {
				return nil
			}
			id := strings.TrimSuffix(d.Name(), ".yaml")
			data, err := os.ReadFile(path)
			if err != nil {
				return nil
			}
			info, err := parseInfo(id, data)
			if err != nil {
				return nil
			}
			info.Custom = true
			byID[id] = info
			return nil
		})
	}

	infos := make([]Info, 0, len(byID))
	for _, info := range byID {
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos
}

// Load reads and validates a template by ID
func (l *Loader) Load(id string) (map[string]any, error) {
	data, err := l.read(id)
	if err != nil {
		return nil, err
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &TemplateError{Template: id, Reason: fmt.Sprintf("YAML 파싱 실패: %v", err)}
	}
	if doc == nil {
		return nil, &TemplateError{Template: id, Reason: "템플릿이 비어 있습니다"}
	}
	if err := validate(id, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// GetInfo loads a template and returns its metadata
func (l *Loader) GetInfo(id string) (Info, error) {
	doc, err := l.Load(id)
	if err != nil {
		return Info{}, err
	}
	return infoFromDoc(id, doc), nil
}

// read locates the raw template file, custom directory first
func (l *Loader) read(id string) ([]byte, error) {
	if l.customDir != "" {
		var found []byte
		filepath.WalkDir(l.customDir, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil
			}
			if d.Name() == id+".yaml" {
				if data, err := os.ReadFile(path); err == nil {
					found = data
					return fs.SkipAll
				}
			}
			return nil
		})
		if found != nil {
			return found, nil
		}
	}

	entries, _ := fs.ReadDir(defaultFS, "defaults")
	for _, lang := range entries {
		if !lang.IsDir() {
			continue
		}
		data, err := defaultFS.ReadFile("defaults/" + lang.Name() + "/" + id + ".yaml")
		if err == nil {
			return data, nil
		}
	}

	var available []string
	for _, info := range l.List() {
		available = append(available, info.ID)
	}
	return nil, &TemplateError{
		Template: id,
		Reason:   fmt.Sprintf("템플릿을 찾을 수 없습니다. 사용 가능: %s", strings.Join(available, ", ")),
	}
}

// validate checks the required template fields
func validate(id string, doc map[string]any) error {
	for _, field := range []string{"project_type", "language", "structure"} {
		if _, ok := doc[field]; !ok {
			return &TemplateError{Template: id, Reason: fmt.Sprintf("필수 필드 누락: %s", field)}
		}
	}

	structure, ok := doc["structure"].(map[string]any)
	if !ok || len(structure) == 0 {
		return &TemplateError{Template: id, Reason: "structure가 비어 있거나 잘못되었습니다"}
	}

	for fileType, raw := range structure {
		spec, ok := raw.(map[string]any)
		if !ok {
			return &TemplateError{Template: id, Reason: fmt.Sprintf("structure.%s는 맵이어야 합니다", fileType)}
		}
		for _, field := range []string{"path", "naming"} {
			if _, ok := spec[field]; !ok {
				return &TemplateError{Template: id, Reason: fmt.Sprintf("structure.%s에 %s가 없습니다", fileType, field)}
			}
		}
	}
	return nil
}

func parseInfo(id string, data []byte) (Info, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Info{}, err
	}
	if doc == nil {
		return Info{}, fmt.Errorf("empty template")
	}
	if err := validate(id, doc); err != nil {
		return Info{}, err
	}
	return infoFromDoc(id, doc), nil
}

func infoFromDoc(id string, doc map[string]any) Info {
	info := Info{ID: id, Version: "1.0"}
	if v, ok := doc["language"].(string); ok {
		info.Language = v
	}
	if v, ok := doc["project_type"].(string); ok {
		info.ProjectType = v
	}
	if v, ok := doc["version"].(string); ok {
		info.Version = v
	}
	if v, ok := doc["notes"].(string); ok {
		info.Description = strings.SplitN(strings.TrimSpace(v), "\n", 2)[0]
	}
	if structure, ok := doc["structure"].(map[string]any); ok {
		for fileType := range structure {
			info.FileTypes = append(info.FileTypes, fileType)
		}
		sort.Strings(info.FileTypes)
	}
	return info
}

// Customize applies user overrides to a template document. The input
// is not mutated. Changing base_package also rewrites the old package
// path inside structure path and test_path values.
func Customize(doc map[string]any, overrides map[string]string) map[string]any {
	out := copyDoc(doc)

	for key, value := range overrides {
		if _, ok := out[key]; ok {
			out[key] = value
		}
	}

	newPackage, ok := overrides["base_package"]
	if !ok {
		return out
	}
	oldPackage, _ := doc["base_package"].(string)
	if oldPackage == "" {
		return out
	}
	oldPath := strings.ReplaceAll(oldPackage, ".", "/")
	newPath := strings.ReplaceAll(newPackage, ".", "/")

	structure, _ := out["structure"].(map[string]any)
	for _, raw := range structure {
		spec, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		for _, field := range []string{"path", "test_path"} {
			if v, ok := spec[field].(string); ok {
				spec[field] = strings.ReplaceAll(v, oldPath, newPath)
			}
		}
	}
	return out
}

func copyDoc(doc map[string]any) map[string]any {
	out := make(map[string]any, len(doc))
	for key, value := range doc {
		out[key] = copyValue(value)
	}
	return out
}

func copyValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return copyDoc(v)
	case []any:
		list := make([]any, len(v))
		for i, item := range v {
			list[i] = copyValue(item)
		}
		return list
	default:
		return value
	}
}
