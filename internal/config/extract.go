package config

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// valueError reports text that does not parse as the field's type.
// Index is the list position, or -1 for scalars.
type valueError struct {
	Index int
	Value string
}

func (e *valueError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("cannot parse %q", e.Value)
	}
	return fmt.Sprintf("cannot parse element %d %q", e.Index, e.Value)
}

// extractFields applies every present, non-enumerated parameter to c.
// Keys without a descriptor are collected in c.Unknown.
func extractFields(c *Config, m map[string]string, bc *BuildContext) error {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		f, ok := Lookup(key)
		if !ok {
			c.Unknown[key] = m[key]
			continue
		}
		if f.Kind == KindEnum {
			continue
		}
		if err := f.apply(c, m[key], bc); err != nil {
			return err
		}
	}
	return nil
}

// apply parses raw into the bound field and checks its bounds.
func (f Field) apply(c *Config, raw string, bc *BuildContext) error {
	if err := f.set(c, raw); err != nil {
		var ve *valueError
		if !errors.As(err, &ve) {
			return bc.Fatal(RuleFields, "Parameter %s: %v", f.Name, err)
		}
		switch {
		case f.Kind == KindBool:
			return bc.Fatal(RuleFields, "Parameter %s should be \"true\"/\"+\" or \"false\"/\"-\", got \"%s\"", f.Name, ve.Value)
		case ve.Index < 0:
			return bc.Fatal(RuleFields, "Parameter %s should be of type %s, got \"%s\"", f.Name, f.Kind, ve.Value)
		default:
			return bc.Fatal(RuleFields, "Parameter %s element %d should be of type %s, got \"%s\"", f.Name, ve.Index, elementType(f.Kind), ve.Value)
		}
	}
	return f.checkBounds(c, bc)
}

func (f Field) checkBounds(c *Config, bc *BuildContext) error {
	if len(f.bounds) == 0 {
		return nil
	}
	check := func(index int, v float64) error {
		b, bad := f.violated(v)
		if !bad {
			return nil
		}
		got := strconv.FormatFloat(v, 'g', -1, 64)
		if index < 0 {
			return bc.Fatal(RuleFields, "Parameter %s should be %s, got %s", f.Name, b.desc, got)
		}
		return bc.Fatal(RuleFields, "Parameter %s element %d should be %s, got %s", f.Name, index, b.desc, got)
	}

	switch ptr := f.bind(c).(type) {
	case *int:
		return check(-1, float64(*ptr))
	case *float64:
		return check(-1, *ptr)
	case *[]int:
		for i, v := range *ptr {
			if err := check(i, float64(v)); err != nil {
				return err
			}
		}
	case *[]float64:
		for i, v := range *ptr {
			if err := check(i, v); err != nil {
				return err
			}
		}
	}
	return nil
}

// set parses raw into the bound field. Empty text leaves numbers, strings and
// lists untouched and sets booleans to true.
func (f Field) set(c *Config, raw string) error {
	switch ptr := f.bind(c).(type) {
	case *int:
		if strings.TrimSpace(raw) == "" {
			return nil
		}
		v, err := parseInt(raw)
		if err != nil {
			return &valueError{Index: -1, Value: raw}
		}
		*ptr = v
	case *float64:
		if strings.TrimSpace(raw) == "" {
			return nil
		}
		v, err := parseFloat(raw)
		if err != nil {
			return &valueError{Index: -1, Value: raw}
		}
		*ptr = v
	case *bool:
		v, ok := parseBool(raw)
		if !ok {
			return &valueError{Index: -1, Value: raw}
		}
		*ptr = v
	case *string:
		if raw == "" {
			return nil
		}
		*ptr = raw
	case *[]string:
		if items := splitList(raw); items != nil {
			*ptr = items
		}
	case *[]int:
		items := splitList(raw)
		if items == nil {
			return nil
		}
		out := make([]int, len(items))
		for i, item := range items {
			v, err := parseInt(item)
			if err != nil {
				return &valueError{Index: i, Value: item}
			}
			out[i] = v
		}
		*ptr = out
	case *[]float64:
		items := splitList(raw)
		if items == nil {
			return nil
		}
		out := make([]float64, len(items))
		for i, item := range items {
			v, err := parseFloat(item)
			if err != nil {
				return &valueError{Index: i, Value: item}
			}
			out[i] = v
		}
		*ptr = out
	default:
		return fmt.Errorf("unsupported field type %T", ptr)
	}
	return nil
}

func elementType(k Kind) string {
	switch k {
	case KindIntList:
		return "int"
	case KindFloatList:
		return "double"
	default:
		return "string"
	}
}

func parseInt(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

func parseBool(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "+", "1", "yes", "on", "":
		return true, true
	case "false", "-", "0", "no", "off":
		return false, true
	}
	return false, false
}

// splitList splits on commas, trims each item and drops empty ones.
// It returns nil when nothing is left.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
