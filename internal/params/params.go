// Package params turns free-form parameter text into a one-value-per-key map.
//
// The stages run in a fixed order: Tokenize (or AddToken per argument),
// ResolveVerbosity, then KeepFirst. Duplicates survive tokenization and are
// only resolved by KeepFirst, where the first value seen for a key wins.
package params

import (
	"sort"
	"strings"

	"github.com/harrison/boostcfg/internal/diagnostic"
)

// Diagnostic codes used by this package.
const (
	CodeTokenize  = "tokenize"
	CodeVerbosity = "verbosity"
	CodeDedup     = "dedup"
)

// RawSet maps a parameter name to every raw value given for it, in encounter order.
// Key order is kept too so that diagnostics come out deterministically.
type RawSet struct {
	keys   []string
	values map[string][]string
}

// NewRawSet returns an empty set.
func NewRawSet() *RawSet {
	return &RawSet{values: make(map[string][]string)}
}

// FromMap builds a RawSet from an already split multi-valued map.
// Keys are visited in sorted order; per-key value order is preserved.
func FromMap(m map[string][]string) *RawSet {
	r := NewRawSet()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		for _, v := range m[k] {
			r.Add(k, v)
		}
	}
	return r
}

// Add appends value to key. Empty keys are ignored.
func (r *RawSet) Add(key, value string) {
	if key == "" {
		return
	}
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = append(r.values[key], value)
}

// Values returns the raw values for key.
func (r *RawSet) Values(key string) ([]string, bool) {
	v, ok := r.values[key]
	return v, ok
}

// First returns the first raw value for key.
func (r *RawSet) First(key string) (string, bool) {
	v, ok := r.values[key]
	if !ok || len(v) == 0 {
		return "", false
	}
	return v[0], true
}

// Keys returns the keys in first-seen order.
func (r *RawSet) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Len returns the number of distinct keys.
func (r *RawSet) Len() int {
	return len(r.keys)
}

// Merge appends every value of other after the values already present.
// Since the first value wins, values in r take precedence over other.
func (r *RawSet) Merge(other *RawSet) {
	if other == nil {
		return
	}
	for _, k := range other.keys {
		for _, v := range other.values[k] {
			r.Add(k, v)
		}
	}
}

// Tokenize splits text on whitespace and feeds every token through AddToken.
func Tokenize(text string, rep *diagnostic.Reporter) *RawSet {
	r := NewRawSet()
	for _, tok := range strings.FieldsFunc(text, isSeparator) {
		r.AddToken(tok, rep)
	}
	return r
}

func isSeparator(c rune) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// AddToken parses one key=value (or bare key) token into the set.
// A token with more than one '=' is dropped with a warning.
func (r *RawSet) AddToken(token string, rep *diagnostic.Reporter) {
	token = strings.TrimSpace(token)
	if token == "" {
		return
	}
	parts := strings.Split(token, "=")
	if len(parts) > 2 {
		rep.Warn(CodeTokenize, "Unknown parameter %s", token)
		return
	}
	key := unquote(strings.TrimSpace(parts[0]))
	value := ""
	if len(parts) == 2 {
		value = unquote(strings.TrimSpace(parts[1]))
	}
	if key == "" {
		return
	}
	r.Add(key, value)
}

// unquote strips one layer of matching surrounding quotes.
func unquote(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if first == last && (first == '"' || first == '\'') {
			return strings.TrimSpace(s[1 : len(s)-1])
		}
	}
	return s
}
