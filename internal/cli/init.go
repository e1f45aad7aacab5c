package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/n0roo/org-kit/internal/config"
	"github.com/n0roo/org-kit/internal/templates"
	"github.com/n0roo/org-kit/internal/tui"
)

var (
	initPackage string
	initForce   bool
)

var initCmd = &cobra.Command{
	Use:   "init [template-id]",
	Short: "프로젝트 설정 초기화",
	Long: `스타터 템플릿으로 .claude/project.yaml을 생성합니다.

템플릿 ID를 생략하면 대화형으로 선택합니다.

예:
  org init spring-boot --package com.mycorp.shop
  org init react
  org init`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVar(&initPackage, "package", "", "베이스 패키지 (Java 템플릿)")
	initCmd.Flags().BoolVar(&initForce, "force", false, "기존 설정 덮어쓰기")
}

func runInit(cmd *cobra.Command, args []string) error {
	dir, err := startDir()
	if err != nil {
		return err
	}

	if config.HasConfig(dir) && !initForce {
		return fmt.Errorf("설정이 이미 존재합니다: %s (--force로 덮어쓰기 가능)", config.ConfigPath(dir))
	}

	loader := templateLoader()

	templateID := ""
	basePackage := initPackage
	if len(args) > 0 {
		templateID = args[0]
	} else {
		if !isInteractive() {
			return fmt.Errorf("템플릿 ID가 필요합니다 (org template list로 확인)")
		}
		result, err := tui.RunPicker(loader.List(), initPackage)
		if err != nil {
			return err
		}
		if result.Canceled {
			fmt.Println(tui.Muted("취소되었습니다"))
			return nil
		}
		templateID = result.TemplateID
		if result.BasePackage != "" {
			basePackage = result.BasePackage
		}
	}

	doc, err := loader.Load(templateID)
	if err != nil {
		return err
	}

	if basePackage != "" {
		doc = templates.Customize(doc, map[string]string{"base_package": basePackage})
	}

	if err := config.SaveDocument(dir, doc); err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"status":   "created",
			"template": templateID,
			"path":     config.ConfigPath(dir),
		})
	}

	fmt.Printf("%s 설정 생성: %s\n", tui.Success("✓"), config.ConfigPath(dir))
	fmt.Printf("  템플릿: %s\n", templateID)
	if basePackage != "" {
		fmt.Printf("  베이스 패키지: %s\n", basePackage)
	}
	fmt.Println()
	fmt.Println(tui.Subtitle("다음 단계: org validate 로 설정을 확인하세요"))

	return nil
}

// isInteractive checks whether stdin is a terminal
func isInteractive() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
