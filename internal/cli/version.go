package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Build info, overridden at build time via -ldflags
var (
	Version = "0.1.0"
	Commit  = "dev"
	Date    = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "버전 정보 출력",
	Long:  `ORG 버전 및 빌드 정보를 출력합니다.`,
	Run:   runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, args []string) {
	if jsonOut {
		printJSON(map[string]interface{}{
			"version": Version,
			"commit":  Commit,
			"date":    Date,
			"go":      runtime.Version(),
			"os":      runtime.GOOS,
			"arch":    runtime.GOARCH,
		})
		return
	}

	fmt.Printf("org %s\n", Version)
	fmt.Println()
	fmt.Printf("  Commit:    %s\n", Commit)
	fmt.Printf("  Built:     %s\n", Date)
	fmt.Printf("  Go:        %s\n", runtime.Version())
	fmt.Printf("  OS/Arch:   %s/%s\n", runtime.GOOS, runtime.GOARCH)
}
