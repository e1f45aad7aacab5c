package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/n0roo/org-kit/internal/generator"
	"github.com/n0roo/org-kit/internal/tui"
)

var (
	genApp         string
	genTestOnly    bool
	genDryRun      bool
	genForce       bool
	genContentFile string
)

var generateCmd = &cobra.Command{
	Use:     "generate <file-type> <name>",
	Aliases: []string{"gen"},
	Short:   "파일 생성",
	Long: `설정된 구조에 맞춰 파일을 생성합니다.

파일 타입의 path/naming 템플릿으로 위치와 이름을 결정하고,
언어에 맞는 보일러플레이트를 채웁니다. generate_test가 설정된
타입은 테스트 파일도 함께 생성됩니다.

예:
  org generate service User
  org generate model user_profile --app users
  org gen component UserCard --dry-run`,
	Args: cobra.ExactArgs(2),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&genApp, "app", "", "{app} 변수 값 (Django 앱 등)")
	generateCmd.Flags().BoolVar(&genTestOnly, "test", false, "테스트 파일만 생성")
	generateCmd.Flags().BoolVar(&genDryRun, "dry-run", false, "실제 생성 없이 대상 경로만 표시")
	generateCmd.Flags().BoolVar(&genForce, "force", false, "기존 파일 덮어쓰기")
	generateCmd.Flags().StringVar(&genContentFile, "content-file", "", "보일러플레이트 대신 사용할 내용 파일")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, root, err := resolveConfig()
	if err != nil {
		return err
	}

	var content string
	if genContentFile != "" {
		data, err := os.ReadFile(genContentFile)
		if err != nil {
			return fmt.Errorf("내용 파일 읽기 실패: %w", err)
		}
		content = string(data)
	}

	svc := generator.NewService(cfg, root)
	files, err := svc.Generate(generator.Request{
		FileType:      args[0],
		Name:          args[1],
		App:           genApp,
		CustomContent: content,
		TestOnly:      genTestOnly,
		DryRun:        genDryRun,
		Force:         genForce,
	})
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"dry_run": genDryRun,
			"files":   files,
		})
	}

	for _, file := range files {
		label := "생성"
		if file.IsTest {
			label = "테스트 생성"
		}
		if genDryRun {
			fmt.Printf("%s %s 예정: %s\n", tui.Muted("○"), label, file.Path)
		} else {
			fmt.Printf("%s %s: %s\n", tui.Success("✓"), label, file.Path)
		}
	}

	if genDryRun {
		fmt.Println(tui.Subtitle("--dry-run 모드: 실제 생성 없음"))
	}
	return nil
}
