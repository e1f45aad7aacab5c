package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/n0roo/org-kit/internal/config"
	"github.com/n0roo/org-kit/internal/tui"
)

var configShowOrder bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "병합된 설정 표시",
	Long: `현재 위치에서 해석되는 병합된 설정을 표시합니다.

상위 디렉토리의 .claude/project.yaml부터 현재 위치까지 병합한
최종 설정입니다. --show-order로 병합에 참여한 설정 파일의 순서를
확인할 수 있습니다.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.Flags().BoolVar(&configShowOrder, "show-order", false, "병합 순서(설정 체인) 표시")
}

func runConfig(cmd *cobra.Command, args []string) error {
	dir, err := argOrStartDir(args)
	if err != nil {
		return err
	}

	chain, err := config.BuildChain(dir)
	if err != nil {
		return err
	}

	merged, sources, err := config.Merge(chain, dir)
	if err != nil {
		return err
	}

	if configShowOrder {
		return showOrder(chain)
	}

	// 내부 진단 키는 표시하지 않는다
	display := make(map[string]interface{}, len(merged))
	for key, value := range merged {
		if strings.HasPrefix(key, "_") {
			continue
		}
		display[key] = value
	}

	if jsonOut {
		return printJSON(display)
	}

	data, err := yaml.Marshal(display)
	if err != nil {
		return fmt.Errorf("설정 직렬화 실패: %w", err)
	}

	fmt.Println(tui.Title("병합된 설정"))
	fmt.Print(string(data))

	if verbose {
		fmt.Println()
		fmt.Println(tui.Subtitle("설정 소스 (병합 순서):"))
		for i, source := range sources {
			fmt.Printf("  %d. %s\n", i+1, config.ConfigPath(source))
		}
	}
	return nil
}

// showOrder prints each chain level with the keys it contributes
func showOrder(chain []config.Entry) error {
	if jsonOut {
		levels := make([]map[string]interface{}, 0, len(chain))
		for _, entry := range chain {
			levels = append(levels, map[string]interface{}{
				"path":         config.ConfigPath(entry.Dir),
				"project_type": entry.Doc["project_type"],
				"language":     entry.Doc["language"],
				"file_types":   entryFileTypes(entry),
			})
		}
		return printJSON(map[string]interface{}{"order": levels})
	}

	fmt.Println(tui.Title("설정 병합 순서"))
	fmt.Println(tui.Subtitle("아래로 갈수록 우선순위가 높습니다"))
	fmt.Println()
	for i, entry := range chain {
		fmt.Printf("  %d. %s\n", i+1, config.ConfigPath(entry.Dir))
		if pt, ok := entry.Doc["project_type"].(string); ok {
			fmt.Printf("     project_type: %s\n", pt)
		}
		if lang, ok := entry.Doc["language"].(string); ok {
			fmt.Printf("     language: %s\n", lang)
		}
		if types := entryFileTypes(entry); len(types) > 0 {
			fmt.Printf("     file_types: %s\n", strings.Join(types, ", "))
		}
	}
	return nil
}

func entryFileTypes(entry config.Entry) []string {
	structure, ok := entry.Doc["structure"].(map[string]interface{})
	if !ok {
		return nil
	}
	types := make([]string, 0, len(structure))
	for fileType := range structure {
		types = append(types, fileType)
	}
	sort.Strings(types)
	return types
}
