package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/n0roo/org-kit/internal/config"
	"github.com/n0roo/org-kit/internal/tui"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "설정 검증",
	Long: `병합된 설정을 스키마에 대해 검증합니다.

필수 필드, 지원 언어/프로젝트 타입, 파일 타입별 path/naming 존재를
확인하고 개선 권고 사항을 함께 표시합니다.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	dir, err := argOrStartDir(args)
	if err != nil {
		return err
	}

	cfg, err := config.Resolve(dir)
	if err != nil {
		if jsonOut {
			printJSON(map[string]interface{}{
				"valid": false,
				"error": err.Error(),
			})
			return fmt.Errorf("설정 검증 실패")
		}
		fmt.Printf("%s 설정이 유효하지 않습니다\n", tui.Error("✗"))
		fmt.Printf("  %s\n", err.Error())
		return fmt.Errorf("설정 검증 실패")
	}

	warnings := cfg.Warnings()

	if jsonOut {
		return printJSON(map[string]interface{}{
			"valid":        true,
			"language":     cfg.Language,
			"project_type": cfg.ProjectType,
			"file_types":   sortedFileTypes(cfg),
			"sources":      cfg.Sources,
			"warnings":     warnings,
		})
	}

	fmt.Printf("%s 설정이 유효합니다\n\n", tui.Success("✓"))
	fmt.Printf("  언어:          %s\n", cfg.Language)
	if cfg.ProjectType != "" {
		fmt.Printf("  프로젝트 타입: %s\n", cfg.ProjectType)
	}
	if cfg.BasePackage != "" {
		fmt.Printf("  베이스 패키지: %s\n", cfg.BasePackage)
	}
	fmt.Printf("  파일 타입:     %s\n", strings.Join(sortedFileTypes(cfg), ", "))

	if verbose {
		fmt.Println("\n  설정 소스 (병합 순서):")
		for i, source := range cfg.Sources {
			fmt.Printf("    %d. %s\n", i+1, config.ConfigPath(source))
		}
	}

	if len(warnings) > 0 {
		fmt.Println()
		for _, warning := range warnings {
			fmt.Printf("  %s %s\n", tui.Warn("○"), warning)
		}
	}

	return nil
}

func sortedFileTypes(cfg *config.Config) []string {
	types := cfg.FileTypes()
	sort.Strings(types)
	return types
}
