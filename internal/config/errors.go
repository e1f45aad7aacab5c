package config

import (
	"fmt"
	"strings"
)

// ParseError reports a malformed config document. It carries the
// offending file path and the underlying YAML diagnostic.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("잘못된 YAML 문법 %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NotFoundError reports that no config file was found anywhere in the
// directory walk.
type NotFoundError struct {
	StartPath string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf(
		"%s 및 상위 디렉토리에서 설정 파일을 찾을 수 없습니다 (기대 위치: %s/%s)",
		e.StartPath, ConfigDirName, ConfigFileName)
}

// SchemaError reports a merged configuration that violates the schema:
// a required field absent, an enum value outside the supported set, or
// a file type entry missing path/naming.
type SchemaError struct {
	Field    string
	FileType string
	Reason   string
}

func (e *SchemaError) Error() string {
	if e.FileType != "" {
		return fmt.Sprintf("structure.%s: '%s' %s", e.FileType, e.Field, e.Reason)
	}
	return fmt.Sprintf("'%s' %s", e.Field, e.Reason)
}

func joinSupported[T ~string](values []T) string {
	strs := make([]string, len(values))
	for i, v := range values {
		strs[i] = string(v)
	}
	return strings.Join(strs, ", ")
}
