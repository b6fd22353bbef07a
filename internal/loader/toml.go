package loader

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/harrison/boostcfg/internal/diagnostic"
	"github.com/harrison/boostcfg/internal/params"
)

// TOMLLoader reads the top-level keys of a TOML document, in file order.
// Tables are rejected; arrays are flattened the same way as YAML lists.
type TOMLLoader struct{}

// Load implements Loader.
func (l *TOMLLoader) Load(r io.Reader, raw *params.RawSet, rep *diagnostic.Reporter) error {
	var values map[string]interface{}
	md, err := toml.NewDecoder(r).Decode(&values)
	if err != nil {
		return fmt.Errorf("failed to parse TOML: %w", err)
	}

	for _, key := range md.Keys() {
		if len(key) != 1 {
			continue
		}
		name := key[0]
		value, err := flattenTOML(values[name])
		if err != nil {
			return fmt.Errorf("parameter %s: %w", name, err)
		}
		raw.Add(name, value)
	}
	return nil
}

func flattenTOML(v interface{}) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case bool:
		return strconv.FormatBool(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64), nil
	case time.Time:
		return x.Format(time.RFC3339), nil
	case []interface{}:
		nested := false
		for _, item := range x {
			if _, ok := item.([]interface{}); ok {
				nested = true
				break
			}
		}
		parts := make([]string, len(x))
		for i, item := range x {
			s, err := flattenTOML(item)
			if err != nil {
				return "", err
			}
			if nested {
				s = "[" + s + "]"
			}
			parts[i] = s
		}
		if nested {
			return "[" + strings.Join(parts, ",") + "]", nil
		}
		return strings.Join(parts, ","), nil
	case map[string]interface{}:
		return "", fmt.Errorf("tables are not supported")
	default:
		return "", fmt.Errorf("unsupported TOML value of type %T", v)
	}
}
