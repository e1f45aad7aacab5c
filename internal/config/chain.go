package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Entry is one link of a configuration chain: a directory and the raw
// document parsed from its config file.
type Entry struct {
	Dir string
	Doc map[string]any
}

// BuildChain walks the directory tree upward from startDir and collects
// one config document per directory that has one. The walk halts at the
// filesystem root or after a directory containing the repository
// boundary marker (that directory's own config is still collected).
//
// The returned chain is ordered outermost-first, i.e. lowest priority
// to highest priority for merging. An empty chain is not an error here;
// the merger decides that.
func BuildChain(startDir string) ([]Entry, error) {
	current, err := filepath.Abs(startDir)
	if err != nil {
		return nil, fmt.Errorf("시작 경로 확인 실패: %w", err)
	}

	var found []Entry

	for {
		if HasConfig(current) {
			doc, err := LoadDocument(current)
			if err != nil {
				// 파싱 실패는 즉시 전파한다
				return nil, err
			}
			found = append(found, Entry{Dir: current, Doc: doc})
		}

		// 저장소 경계에서는 해당 디렉토리 설정까지 포함한 뒤 중단
		if _, err := os.Stat(filepath.Join(current, BoundaryMarker)); err == nil {
			break
		}

		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}

	// root → start 순서로 뒤집기 (낮은 우선순위 → 높은 우선순위)
	for i, j := 0, len(found)-1; i < j; i, j = i+1, j-1 {
		found[i], found[j] = found[j], found[i]
	}

	return found, nil
}
