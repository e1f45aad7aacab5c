package resolver

import (
	"strings"

	"github.com/n0roo/org-kit/internal/casing"
)

// Template variable tokens
const (
	tokenPascal  = "{Name}"
	tokenSnake   = "{name}"
	tokenPackage = "{package}"
	tokenApp     = "{app}"
)

// Substitute replaces template variables with concrete values:
//
//	{Name}    PascalCase of name
//	{name}    snake_case of name
//	{package} base package with dots converted to path separators
//	{app}     caller-supplied app name
//
// The template is scanned once into a fresh buffer, so substituted
// output is never rescanned and cannot collide with later tokens.
// Unrecognized {tokens} are left verbatim.
func Substitute(template, name, app, basePackage string) (string, error) {
	pascal := casing.ToPascalCase(name)
	snake := casing.ToSnakeCase(name)

	var b strings.Builder
	rest := template

	for {
		idx := strings.IndexByte(rest, '{')
		if idx < 0 {
			b.WriteString(rest)
			break
		}
		b.WriteString(rest[:idx])
		rest = rest[idx:]

		switch {
		case strings.HasPrefix(rest, tokenPascal):
			b.WriteString(pascal)
			rest = rest[len(tokenPascal):]
		case strings.HasPrefix(rest, tokenSnake):
			b.WriteString(snake)
			rest = rest[len(tokenSnake):]
		case strings.HasPrefix(rest, tokenPackage):
			if basePackage == "" {
				return "", &TemplateError{
					Template: template,
					Variable: tokenPackage,
					Reason:   "base_package가 설정되지 않았습니다",
				}
			}
			b.WriteString(strings.ReplaceAll(basePackage, ".", "/"))
			rest = rest[len(tokenPackage):]
		case strings.HasPrefix(rest, tokenApp):
			if app == "" {
				return "", &TemplateError{
					Template: template,
					Variable: tokenApp,
					Reason:   "app 이름이 전달되지 않았습니다",
				}
			}
			b.WriteString(app)
			rest = rest[len(tokenApp):]
		default:
			// 알 수 없는 토큰은 그대로 둔다
			b.WriteByte('{')
			rest = rest[1:]
		}
	}

	return b.String(), nil
}
