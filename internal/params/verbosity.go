package params

import (
	"strconv"
	"strings"

	"github.com/harrison/boostcfg/internal/diagnostic"
	"github.com/harrison/boostcfg/internal/logger"
)

// ResolveVerbosity sets the logging threshold from the raw, not yet
// deduplicated parameters. "verbosity" is preferred over the legacy "verbose";
// when both are present "verbose" is ignored without a warning. When neither is
// present the threshold is left as it is.
func ResolveVerbosity(r *RawSet, rep *diagnostic.Reporter) error {
	key := "verbosity"
	raw, ok := r.First(key)
	if !ok {
		key = "verbose"
		raw, ok = r.First(key)
		if !ok {
			return nil
		}
	}

	verbosity, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return rep.Fatal(CodeVerbosity, "Parameter %s should be of type int, got \"%s\"", key, raw)
	}

	rep.Log.SetLevel(LevelForVerbosity(verbosity))
	return nil
}

// LevelForVerbosity maps the numeric verbosity to a log threshold:
// <0 fatal only, 0 warnings, 1 info, >1 debug.
func LevelForVerbosity(verbosity int) logger.Level {
	switch {
	case verbosity < 0:
		return logger.LevelFatal
	case verbosity == 0:
		return logger.LevelWarn
	case verbosity == 1:
		return logger.LevelInfo
	default:
		return logger.LevelDebug
	}
}
