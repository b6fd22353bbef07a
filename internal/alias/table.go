package alias

import (
	"sort"
	"sync"

	"github.com/harrison/boostcfg/internal/diagnostic"
)

// CodeAlias is the diagnostic code for canonicalization messages.
const CodeAlias = "alias"

type lookup struct {
	names   map[string]Parameter // canonical name -> parameter
	aliases map[string]string    // alias -> canonical name
}

var (
	tableOnce sync.Once
	shared    *lookup
)

func table() *lookup {
	tableOnce.Do(func() {
		t := &lookup{
			names:   make(map[string]Parameter, len(catalog)),
			aliases: make(map[string]string),
		}
		for _, param := range catalog {
			t.names[param.Name] = param
			for _, a := range param.Aliases {
				t.aliases[a] = param.Name
			}
		}
		shared = t
	})
	return shared
}

// Less is the ordering used to rank aliases: shorter first, then lexicographic.
// When several aliases of one parameter are given, the smallest one wins.
func Less(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}

// IsParameter reports whether name is a canonical parameter name.
func IsParameter(name string) bool {
	_, ok := table().names[name]
	return ok
}

// Canonical returns the canonical name for key, which may itself be canonical.
func Canonical(key string) (string, bool) {
	t := table()
	if _, ok := t.names[key]; ok {
		return key, true
	}
	name, ok := t.aliases[key]
	return name, ok
}

// Canonicalize rewrites every alias key in m to its canonical name.
//
// A canonical key given explicitly beats all of its aliases. Among several
// aliases of the same parameter the one ordered first by Less wins. Every
// losing value is reported with a warning. Keys that are neither canonical
// names nor aliases are kept unchanged and reported as unknown.
func Canonicalize(m map[string]string, rep *diagnostic.Reporter) map[string]string {
	t := table()

	chosen := make(map[string]string)
	for _, key := range sortedKeys(m) {
		canonical, isAlias := t.aliases[key]
		if !isAlias {
			if _, known := t.names[key]; !known {
				rep.Warn(CodeAlias, "Unknown parameter: %s", key)
			}
			continue
		}
		prev, seen := chosen[canonical]
		if !seen {
			chosen[canonical] = key
			continue
		}
		winner, loser := prev, key
		if Less(key, prev) {
			winner, loser = key, prev
		}
		rep.Warn(CodeAlias, "%s is set with %s=%s, %s=%s will be ignored. Current value: %s=%s",
			canonical, winner, m[winner], loser, m[loser], canonical, m[winner])
		chosen[canonical] = winner
	}

	out := make(map[string]string, len(m))
	for key, value := range m {
		if _, isAlias := t.aliases[key]; !isAlias {
			out[key] = value
		}
	}
	for _, canonical := range sortedKeys(chosen) {
		key := chosen[canonical]
		if existing, ok := m[canonical]; ok {
			rep.Warn(CodeAlias, "%s is set=%s, %s=%s will be ignored. Current value: %s=%s",
				canonical, existing, key, m[key], canonical, existing)
			continue
		}
		out[canonical] = m[key]
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
