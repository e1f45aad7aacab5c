package generator

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/n0roo/org-kit/internal/boilerplate"
	"github.com/n0roo/org-kit/internal/config"
	"github.com/n0roo/org-kit/internal/resolver"
)

// Request describes one generation call. TestOnly generates just the
// test file for a name whose main file already exists.
type Request struct {
	FileType      string
	Name          string
	App           string
	CustomContent string
	TestOnly      bool
	DryRun        bool
	Force         bool
}

// GeneratedFile is one resolved file descriptor: where it goes, what
// goes in it, and whether it is a test file.
type GeneratedFile struct {
	Path     string
	Content  string
	FileType string
	IsTest   bool
}

// ConflictError reports a generation target that already exists
type ConflictError struct {
	Path string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("파일이 이미 존재합니다: %s (--force로 덮어쓰기 가능)", e.Path)
}

// Service generates files from a merged configuration. Writes are not
// transactional: descriptors are written in order, and a conflict
// midway leaves earlier files on disk.
type Service struct {
	cfg  *config.Config
	res  *resolver.Resolver
	emit *boilerplate.Emitter
}

// NewService creates a generator for a configuration and project root
func NewService(cfg *config.Config, projectRoot string) *Service {
	res := resolver.New(cfg, projectRoot)
	return &Service{
		cfg:  cfg,
		res:  res,
		emit: boilerplate.New(cfg, res),
	}
}

// Generate resolves and (unless dry-run) writes the main file, its
// auto test file when configured, and any additional companion files.
func (s *Service) Generate(req Request) ([]GeneratedFile, error) {
	var files []GeneratedFile

	if req.TestOnly {
		testPath, err := s.res.ResolveFullPath(req.FileType, req.Name, req.App, true)
		if err != nil {
			return nil, err
		}
		content := req.CustomContent
		if content == "" {
			content, err = s.emit.Test(req.FileType, req.Name)
			if err != nil {
				return nil, err
			}
		}
		files = append(files, GeneratedFile{
			Path:     testPath,
			Content:  content,
			FileType: req.FileType,
			IsTest:   true,
		})
		return s.finish(files, req)
	}

	mainPath, err := s.res.ResolveFullPath(req.FileType, req.Name, req.App, false)
	if err != nil {
		return nil, err
	}

	content := req.CustomContent
	if content == "" {
		content, err = s.emit.Main(req.FileType, req.Name, req.App)
		if err != nil {
			return nil, err
		}
	}
	files = append(files, GeneratedFile{
		Path:     mainPath,
		Content:  content,
		FileType: req.FileType,
	})

	if s.res.ShouldGenerateTest(req.FileType) {
		testPath, err := s.res.ResolveFullPath(req.FileType, req.Name, req.App, true)
		if err != nil {
			return nil, err
		}
		testContent, err := s.emit.Test(req.FileType, req.Name)
		if err != nil {
			return nil, err
		}
		files = append(files, GeneratedFile{
			Path:     testPath,
			Content:  testContent,
			FileType: req.FileType,
			IsTest:   true,
		})
	}

	dir, err := s.res.ResolveDir(req.FileType, req.Name, req.App, false)
	if err != nil {
		return nil, err
	}
	additional, err := s.res.AdditionalFiles(req.FileType, req.Name, dir)
	if err != nil {
		return nil, err
	}
	for _, path := range additional {
		files = append(files, GeneratedFile{
			Path:     path,
			Content:  s.emit.Additional(filepath.Base(path), req.Name),
			FileType: req.FileType,
		})
	}

	return s.finish(files, req)
}

// finish writes the descriptors unless the request is a dry run
func (s *Service) finish(files []GeneratedFile, req Request) ([]GeneratedFile, error) {
	if req.DryRun {
		return files, nil
	}

	// 순서대로 기록: 중간 실패 시 앞의 파일은 이미 남아 있다
	for _, file := range files {
		if err := s.write(file, req.Force); err != nil {
			return files, err
		}
	}

	return files, nil
}

// write stores one descriptor, creating parent directories
func (s *Service) write(file GeneratedFile, force bool) error {
	if err := os.MkdirAll(filepath.Dir(file.Path), 0755); err != nil {
		return fmt.Errorf("디렉토리 생성 실패: %w", err)
	}

	if !force {
		if _, err := os.Stat(file.Path); err == nil {
			return &ConflictError{Path: file.Path}
		}
	}

	if err := os.WriteFile(file.Path, []byte(file.Content), 0644); err != nil {
		return fmt.Errorf("파일 생성 실패 %s: %w", file.Path, err)
	}

	return nil
}
