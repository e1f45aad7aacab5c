package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/n0roo/org-kit/internal/config"
)

var (
	startDirFlag string
	verbose      bool
	jsonOut      bool
)

var rootCmd = &cobra.Command{
	Use:   "org",
	Short: "프로젝트 구조 관리 도구",
	Long: `ORG - 프로젝트 구조 관리 도구

디렉토리 계층의 .claude/project.yaml 설정을 병합해 파일이 갈 위치와
이름을 결정하고, 프레임워크 컨벤션에 맞는 보일러플레이트를 생성합니다.

주요 기능:
  - 설정 병합: 상위 디렉토리 설정 상속, 하위 디렉토리 오버라이드
  - 경로 결정: 파일 타입과 이름으로 생성 위치/파일명 계산
  - 파일 생성: 보일러플레이트 및 테스트 파일 생성
  - 템플릿: 프레임워크별 스타터 설정 제공`,
	Version: Version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&startDirFlag, "dir", "", "설정 탐색 시작 디렉토리 (기본: 현재 디렉토리)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "상세 출력")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "JSON 출력")
}

// startDir returns the directory config resolution starts from
func startDir() (string, error) {
	if startDirFlag != "" {
		return filepath.Abs(startDirFlag)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("작업 디렉토리 확인 실패: %w", err)
	}
	return cwd, nil
}

// argOrStartDir prefers an explicit positional path over the --dir flag
func argOrStartDir(args []string) (string, error) {
	if len(args) > 0 {
		return filepath.Abs(args[0])
	}
	return startDir()
}

// resolveConfig resolves the merged configuration and the project root.
// The root is the directory of the nearest contributing config, so
// relative structure paths land inside the right (sub)project.
func resolveConfig() (*config.Config, string, error) {
	dir, err := startDir()
	if err != nil {
		return nil, "", err
	}

	cfg, err := config.Resolve(dir)
	if err != nil {
		return nil, "", err
	}

	root := dir
	if len(cfg.Sources) > 0 {
		root = cfg.Sources[len(cfg.Sources)-1]
	}
	return cfg, root, nil
}

// IsVerbose returns verbose flag
func IsVerbose() bool {
	return verbose
}

// IsJSON returns json output flag
func IsJSON() bool {
	return jsonOut
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
