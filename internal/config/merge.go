package config

// sourcesKey records the contributing config directories in the merged
// document. Diagnostics only; stripped before the typed decode.
const sourcesKey = "_config_sources"

// Merge folds a configuration chain into a single raw document.
//
// The chain must be ordered lowest priority first (as BuildChain
// returns it). Rules, per override key:
//   - new key: copied in
//   - structure: file types merged key-by-key, never replaced wholesale
//   - mapping into mapping: recursive merge
//   - sequence into sequence: concatenated, unless the override document
//     sets a sibling <key>_replace flag to true
//   - anything else: override wins
//
// Returns the merged document and the contributing directories in
// merge order.
func Merge(chain []Entry, startDir string) (map[string]any, []string, error) {
	if len(chain) == 0 {
		return nil, nil, &NotFoundError{StartPath: startDir}
	}

	merged, _ := deepCopy(chain[0].Doc).(map[string]any)
	if merged == nil {
		merged = make(map[string]any)
	}
	sources := []string{chain[0].Dir}

	for _, entry := range chain[1:] {
		merged = deepMerge(merged, entry.Doc)
		sources = append(sources, entry.Dir)
	}

	merged[sourcesKey] = append([]string(nil), sources...)

	return merged, sources, nil
}

// deepMerge merges override into a deep copy of base.
func deepMerge(base, override map[string]any) map[string]any {
	result, _ := deepCopy(base).(map[string]any)
	if result == nil {
		result = make(map[string]any)
	}

	for key, value := range override {
		existing, exists := result[key]
		if !exists {
			result[key] = deepCopy(value)
			continue
		}

		if key == "structure" {
			baseMap, baseOK := existing.(map[string]any)
			overrideMap, overrideOK := value.(map[string]any)
			if baseOK && overrideOK {
				result[key] = mergeStructure(baseMap, overrideMap)
				continue
			}
			// 타입이 맞지 않으면 덮어쓰고 검증 단계에서 거른다
			result[key] = deepCopy(value)
			continue
		}

		switch v := value.(type) {
		case map[string]any:
			if baseMap, ok := existing.(map[string]any); ok {
				result[key] = deepMerge(baseMap, v)
				continue
			}
		case []any:
			if baseList, ok := existing.([]any); ok {
				if flag, ok := override[key+"_replace"].(bool); ok && flag {
					result[key] = deepCopy(v)
				} else {
					combined := make([]any, 0, len(baseList)+len(v))
					combined = append(combined, deepCopy(baseList).([]any)...)
					combined = append(combined, deepCopy(v).([]any)...)
					result[key] = combined
				}
				continue
			}
		}

		// 스칼라 또는 타입 불일치: override 우선
		result[key] = deepCopy(value)
	}

	return result
}

// mergeStructure merges file type definitions key-by-key so a
// descendant can refine a file type partially defined by an ancestor.
func mergeStructure(base, override map[string]any) map[string]any {
	result, _ := deepCopy(base).(map[string]any)
	if result == nil {
		result = make(map[string]any)
	}

	for fileType, spec := range override {
		baseSpec, exists := result[fileType].(map[string]any)
		overrideSpec, ok := spec.(map[string]any)
		if exists && ok {
			result[fileType] = deepMerge(baseSpec, overrideSpec)
		} else {
			result[fileType] = deepCopy(spec)
		}
	}

	return result
}

// deepCopy copies mappings and sequences recursively; scalars are
// returned as-is. Merged documents never share mutable state with the
// parsed originals.
func deepCopy(value any) any {
	switch v := value.(type) {
	case map[string]any:
		copied := make(map[string]any, len(v))
		for key, item := range v {
			copied[key] = deepCopy(item)
		}
		return copied
	case []any:
		copied := make([]any, len(v))
		for i, item := range v {
			copied[i] = deepCopy(item)
		}
		return copied
	default:
		return value
	}
}
