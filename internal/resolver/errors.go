package resolver

import (
	"fmt"
	"sort"
	"strings"
)

// UnknownFileTypeError reports a requested file type that the merged
// configuration does not define. Available types are listed so the
// caller can self-diagnose.
type UnknownFileTypeError struct {
	FileType  string
	Available []string
}

func (e *UnknownFileTypeError) Error() string {
	available := append([]string(nil), e.Available...)
	sort.Strings(available)
	return fmt.Sprintf("파일 타입 '%s'이(가) 설정에 없습니다 (사용 가능: %s)",
		e.FileType, strings.Join(available, ", "))
}

// TestUnsupportedError reports a test-path request against a file type
// without a test_path.
type TestUnsupportedError struct {
	FileType string
}

func (e *TestUnsupportedError) Error() string {
	return fmt.Sprintf("파일 타입 '%s'은(는) 테스트 파일 생성을 지원하지 않습니다 (test_path 미설정)", e.FileType)
}

// TemplateError reports a template referencing a variable whose source
// value is absent.
type TemplateError struct {
	Template string
	Variable string
	Reason   string
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("템플릿 %q의 %s 변수를 치환할 수 없습니다: %s", e.Template, e.Variable, e.Reason)
}
