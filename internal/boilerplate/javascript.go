package boilerplate

import (
	"fmt"
	"strings"
)

// javascriptMain emits a React component, hook or API service skeleton
func (e *Emitter) javascriptMain(fileType, name string) string {
	var lines []string

	switch fileType {
	case "component":
		lines = append(lines,
			"import React from 'react';",
			fmt.Sprintf("import styles from './%s.module.css';", name),
			"",
			fmt.Sprintf("const %s = () => {", name),
			"  return (",
			"    <div className={styles.container}>",
			fmt.Sprintf("      <h1>%s</h1>", name),
			"      {/* TODO: Implement component */}",
			"    </div>",
			"  );",
			"};",
			"",
			fmt.Sprintf("export default %s;", name))
	case "hook":
		hookName := "use" + name
		lines = append(lines,
			"import { useState, useEffect } from 'react';",
			"",
			fmt.Sprintf("const %s = () => {", hookName),
			"  // TODO: Implement hook logic",
			"  return {};",
			"};",
			"",
			fmt.Sprintf("export default %s;", hookName))
	case "service":
		lines = append(lines,
			fmt.Sprintf("// %s Service", name),
			"",
			fmt.Sprintf("const %sService = {", name),
			"  // TODO: Implement service methods",
			"};",
			"",
			fmt.Sprintf("export default %sService;", name))
	default:
		lines = append(lines,
			fmt.Sprintf("// %s", name),
			"// TODO: Implement")
	}

	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

// javascriptTest emits a testing-library test skeleton
func (e *Emitter) javascriptTest(name string) string {
	lines := []string{
		"import { render, screen } from '@testing-library/react';",
		fmt.Sprintf("import %s from './%s';", name, name),
		"",
		fmt.Sprintf("describe('%s', () => {", name),
		fmt.Sprintf("  test('renders %s', () => {", name),
		"    // TODO: Implement test",
		"  });",
		"});",
		"",
	}

	return strings.Join(lines, "\n")
}
