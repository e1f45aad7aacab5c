package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/n0roo/org-kit/internal/templates"
	"github.com/n0roo/org-kit/internal/tui"
)

var templatesDirFlag string

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "스타터 템플릿 관리",
	Long: `프레임워크별 스타터 템플릿을 관리합니다.

내장 템플릿 외에 ~/.org/templates 아래의 사용자 템플릿을
인식하며, 같은 ID는 사용자 템플릿이 우선합니다.`,
}

var templateListCmd = &cobra.Command{
	Use:   "list",
	Short: "템플릿 목록",
	RunE:  runTemplateList,
}

var templateShowCmd = &cobra.Command{
	Use:   "show <template-id>",
	Short: "템플릿 전체 내용 보기",
	Args:  cobra.ExactArgs(1),
	RunE:  runTemplateShow,
}

var templateInfoCmd = &cobra.Command{
	Use:   "info <template-id>",
	Short: "템플릿 요약 정보",
	Args:  cobra.ExactArgs(1),
	RunE:  runTemplateInfo,
}

func init() {
	rootCmd.AddCommand(templateCmd)
	templateCmd.AddCommand(templateListCmd)
	templateCmd.AddCommand(templateShowCmd)
	templateCmd.AddCommand(templateInfoCmd)

	templateCmd.PersistentFlags().StringVar(&templatesDirFlag, "templates-dir", "", "사용자 템플릿 디렉토리 (기본: ~/.org/templates)")
}

func templateLoader() *templates.Loader {
	dir := templatesDirFlag
	if dir == "" {
		dir = templates.DefaultCustomDir()
	}
	return templates.NewLoader(dir)
}

func runTemplateList(cmd *cobra.Command, args []string) error {
	infos := templateLoader().List()

	if jsonOut {
		return printJSON(map[string]interface{}{"templates": infos})
	}

	fmt.Println(tui.Title("사용 가능한 템플릿"))
	for _, info := range infos {
		marker := " "
		if info.Custom {
			marker = tui.Warn("*")
		}
		fmt.Printf("  %s %-14s %-12s %s\n",
			marker, info.ID, "("+info.Language+")", tui.Muted(info.Description))
	}
	fmt.Println()
	fmt.Println(tui.Subtitle("* 사용자 템플릿  |  사용법: org init <template-id>"))

	return nil
}

func runTemplateShow(cmd *cobra.Command, args []string) error {
	doc, err := templateLoader().Load(args[0])
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(doc)
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("템플릿 직렬화 실패: %w", err)
	}

	fmt.Println(tui.Title("템플릿: " + args[0]))
	fmt.Print(string(data))
	return nil
}

func runTemplateInfo(cmd *cobra.Command, args []string) error {
	info, err := templateLoader().GetInfo(args[0])
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(info)
	}

	fmt.Println(tui.Title("템플릿: " + info.ID))
	fmt.Printf("  언어:          %s\n", info.Language)
	fmt.Printf("  프로젝트 타입: %s\n", info.ProjectType)
	fmt.Printf("  버전:          %s\n", info.Version)
	fmt.Printf("  파일 타입:     %s\n", strings.Join(info.FileTypes, ", "))
	if info.Description != "" {
		fmt.Printf("  설명:          %s\n", info.Description)
	}
	if info.Custom {
		fmt.Println(tui.Warn("  사용자 템플릿입니다"))
	}
	return nil
}
