package resolver

import (
	"path/filepath"

	"github.com/n0roo/org-kit/internal/casing"
	"github.com/n0roo/org-kit/internal/config"
)

// Resolver turns a merged configuration plus a file type and name into
// concrete file system paths. The project root is explicit; nothing
// here reads the process working directory.
type Resolver struct {
	cfg  *config.Config
	root string
}

// New creates a resolver for a merged configuration and project root
func New(cfg *config.Config, projectRoot string) *Resolver {
	return &Resolver{cfg: cfg, root: projectRoot}
}

// spec looks up the FileTypeSpec for a file type
func (r *Resolver) spec(fileType string) (config.FileTypeSpec, error) {
	spec, ok := r.cfg.Structure[fileType]
	if !ok {
		return config.FileTypeSpec{}, &UnknownFileTypeError{
			FileType:  fileType,
			Available: r.cfg.FileTypes(),
		}
	}
	return spec, nil
}

// ResolveDir resolves the absolute directory for a file type. With
// test set, the test_path template is used instead; a file type
// without test_path rejects the request.
func (r *Resolver) ResolveDir(fileType, name, app string, test bool) (string, error) {
	spec, err := r.spec(fileType)
	if err != nil {
		return "", err
	}

	template := spec.Path
	if test {
		if spec.TestPath == "" {
			return "", &TestUnsupportedError{FileType: fileType}
		}
		template = spec.TestPath
	}

	resolved, err := Substitute(template, name, app, r.cfg.BasePackage)
	if err != nil {
		return "", err
	}

	return filepath.Join(r.root, resolved), nil
}

// ResolveFilename resolves the filename from the naming template. With
// test set, the result is converted to the language's test filename
// convention.
func (r *Resolver) ResolveFilename(fileType, name string, test bool) (string, error) {
	spec, err := r.spec(fileType)
	if err != nil {
		return "", err
	}

	filename, err := Substitute(spec.Naming, name, "", r.cfg.BasePackage)
	if err != nil {
		return "", err
	}

	if test {
		filename = casing.TestFilename(filename, string(r.cfg.Language))
	}

	return filename, nil
}

// ResolveFullPath resolves directory plus filename
func (r *Resolver) ResolveFullPath(fileType, name, app string, test bool) (string, error) {
	dir, err := r.ResolveDir(fileType, name, app, test)
	if err != nil {
		return "", err
	}

	filename, err := r.ResolveFilename(fileType, name, test)
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, filename), nil
}

// AdditionalFiles resolves the companion file paths configured for a
// file type, joined onto dir. Unknown file types and absent
// additional_files both yield an empty list.
func (r *Resolver) AdditionalFiles(fileType, name, dir string) ([]string, error) {
	spec, ok := r.cfg.Structure[fileType]
	if !ok {
		return nil, nil
	}

	var paths []string
	for _, template := range spec.AdditionalFiles {
		filename, err := Substitute(template, name, "", r.cfg.BasePackage)
		if err != nil {
			return nil, err
		}
		paths = append(paths, filepath.Join(dir, filename))
	}

	return paths, nil
}

// ShouldGenerateTest reports the generate_test flag for a file type.
// Query only: unknown file types answer false, never an error.
func (r *Resolver) ShouldGenerateTest(fileType string) bool {
	spec, ok := r.cfg.Structure[fileType]
	if !ok {
		return false
	}
	return spec.GenerateTest
}
