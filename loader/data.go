package loader

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/randalmurphal/figkit/template"
)

// LoadData reads a data file into template variables.
// See FlattenData for how nested values are named.
func LoadData(path string) (template.Data, error) {
	var raw map[string]any
	if err := DecodeFile(path, &raw); err != nil {
		return nil, err
	}
	return FlattenData(raw), nil
}

// FlattenData converts a decoded document into template variables.
//
// Nested tables are joined with dots ({"page": {"title": "x"}} becomes
// "page.title") and list items are addressed by index ("items.0"). Scalars
// are formatted as text; null becomes the empty string.
func FlattenData(raw map[string]any) template.Data {
	data := make(template.Data, len(raw))
	flatten(data, "", raw)
	return data
}

func flatten(data template.Data, prefix string, v any) {
	switch val := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			flatten(data, join(prefix, k), val[k])
		}
	case []any:
		for i, item := range val {
			flatten(data, join(prefix, strconv.Itoa(i)), item)
		}
	case []map[string]any:
		for i, item := range val {
			flatten(data, join(prefix, strconv.Itoa(i)), item)
		}
	default:
		data[prefix] = formatScalar(val)
	}
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

func formatScalar(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case time.Time:
		return val.Format(time.RFC3339)
	default:
		return fmt.Sprint(val)
	}
}
