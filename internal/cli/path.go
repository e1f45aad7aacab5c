package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/n0roo/org-kit/internal/resolver"
	"github.com/n0roo/org-kit/internal/tui"
)

var (
	pathApp  string
	pathTest bool
)

var pathCmd = &cobra.Command{
	Use:   "path <file-type> <name>",
	Short: "파일 생성 위치 미리보기",
	Long: `파일을 생성하지 않고 위치와 이름만 계산합니다.

generate가 사용할 디렉토리, 파일명, 전체 경로를 표시합니다.`,
	Args: cobra.ExactArgs(2),
	RunE: runPath,
}

func init() {
	rootCmd.AddCommand(pathCmd)

	pathCmd.Flags().StringVar(&pathApp, "app", "", "{app} 변수 값")
	pathCmd.Flags().BoolVar(&pathTest, "test", false, "테스트 파일 경로 계산")
}

func runPath(cmd *cobra.Command, args []string) error {
	cfg, root, err := resolveConfig()
	if err != nil {
		return err
	}

	res := resolver.New(cfg, root)
	fileType, name := args[0], args[1]

	dir, err := res.ResolveDir(fileType, name, pathApp, pathTest)
	if err != nil {
		return err
	}
	filename, err := res.ResolveFilename(fileType, name, pathTest)
	if err != nil {
		return err
	}
	fullPath, err := res.ResolveFullPath(fileType, name, pathApp, pathTest)
	if err != nil {
		return err
	}

	additional, err := res.AdditionalFiles(fileType, name, dir)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"file_type":        fileType,
			"name":             name,
			"test":             pathTest,
			"directory":        dir,
			"filename":         filename,
			"path":             fullPath,
			"additional_files": additional,
			"generates_test":   res.ShouldGenerateTest(fileType),
		})
	}

	fmt.Printf("경로 계산: %s %s\n", fileType, name)
	fmt.Printf("  디렉토리: %s\n", dir)
	fmt.Printf("  파일명:   %s\n", filename)
	fmt.Printf("  전체:     %s\n", fullPath)

	if len(additional) > 0 {
		fmt.Println("  추가 파일:")
		for _, path := range additional {
			fmt.Printf("    - %s\n", path)
		}
	}
	if !pathTest && res.ShouldGenerateTest(fileType) {
		fmt.Println(tui.Subtitle("  generate 시 테스트 파일도 생성됩니다"))
	}

	return nil
}
