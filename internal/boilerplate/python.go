package boilerplate

import (
	"fmt"
	"strings"
)

// Django base classes per file type
var pythonBaseClasses = map[string]string{
	"model":      "models.Model",
	"serializer": "serializers.ModelSerializer",
	"view":       "APIView",
	"form":       "forms.Form",
}

// pythonMain emits a Python module: docstring, configured imports and
// a class or function skeleton depending on the file type.
func (e *Emitter) pythonMain(fileType, pascal, snake string) string {
	var lines []string

	lines = append(lines, `"""`, fmt.Sprintf("%s %s", pascal, fileType), `"""`, "")

	if imports := e.extraStringList("common_imports", fileType); len(imports) > 0 {
		lines = append(lines, imports...)
		lines = append(lines, "")
	}

	switch fileType {
	case "model", "serializer", "view", "form":
		base := pythonBaseClasses[fileType]
		lines = append(lines,
			fmt.Sprintf("class %s(%s):", pascal, base),
			`    """`,
			fmt.Sprintf("    %s %s", pascal, fileType),
			`    """`,
			"    # TODO: Implement",
			"    pass")
	case "function_view":
		lines = append(lines,
			fmt.Sprintf("def %s(request):", snake),
			`    """`,
			fmt.Sprintf("    %s view", pascal),
			`    """`,
			"    # TODO: Implement",
			"    pass")
	default:
		lines = append(lines,
			fmt.Sprintf("# %s", pascal),
			"# TODO: Implement")
	}

	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

// pythonTest emits a pytest skeleton
func (e *Emitter) pythonTest(pascal, snake string) string {
	lines := []string{
		`"""`,
		fmt.Sprintf("Tests for %s", pascal),
		`"""`,
		"",
		"import pytest",
		"",
		"",
		fmt.Sprintf("def test_%s():", snake),
		`    """`,
		fmt.Sprintf("    Test %s", pascal),
		`    """`,
		"    # TODO: Implement test",
		"    pass",
		"",
	}

	return strings.Join(lines, "\n")
}
