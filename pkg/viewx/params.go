package viewx

import (
	"strings"
)

// filteredPlaceholder replaces redacted parameter values.
const filteredPlaceholder = "[FILTERED]"

// ParamsFilter masks sensitive values in structured parameter maps before
// they are included in log output. A parameter is redacted when its key
// contains any of the configured fragments (case-insensitive).
//
// The filter applies only to parameter maps. Session payloads and event
// names are never passed through it.
type ParamsFilter struct {
	fragments []string
}

// NewParamsFilter creates a filter redacting keys that contain any of the
// given fragments.
func NewParamsFilter(fragments ...string) *ParamsFilter {
	lowered := make([]string, len(fragments))
	for i, f := range fragments {
		lowered[i] = strings.ToLower(f)
	}
	return &ParamsFilter{fragments: lowered}
}

// DefaultParamsFilter redacts password fields.
func DefaultParamsFilter() *ParamsFilter {
	return NewParamsFilter("password")
}

// Filter returns a copy of params with matching values replaced by
// "[FILTERED]". Nested maps and slices are filtered recursively; the
// input is never mutated. A nil params returns nil.
func (f *ParamsFilter) Filter(params map[string]interface{}) map[string]interface{} {
	if params == nil {
		return nil
	}

	out := make(map[string]interface{}, len(params))
	for k, v := range params {
		if f.matches(k) {
			out[k] = filteredPlaceholder
			continue
		}
		out[k] = f.filterValue(v)
	}
	return out
}

func (f *ParamsFilter) filterValue(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		return f.Filter(val)
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = f.filterValue(item)
		}
		return out
	default:
		return v
	}
}

func (f *ParamsFilter) matches(key string) bool {
	lowered := strings.ToLower(key)
	for _, fragment := range f.fragments {
		if strings.Contains(lowered, fragment) {
			return true
		}
	}
	return false
}
