package params

import "github.com/harrison/boostcfg/internal/diagnostic"

// KeepFirst collapses r to one value per key. The first value wins and every
// later value is reported with one warning naming both values.
func KeepFirst(r *RawSet, rep *diagnostic.Reporter) map[string]string {
	out := make(map[string]string, r.Len())
	for _, name := range r.keys {
		values := r.values[name]
		out[name] = values[0]
		for _, dropped := range values[1:] {
			rep.Warn(CodeDedup, "%s is set=%s, %s=%s will be ignored. Current value: %s=%s",
				name, values[0], name, dropped, name, values[0])
		}
	}
	return out
}
