package trace

import (
	"fmt"
	"strings"
)

// Level controls tracing verbosity.
type Level uint8

const (
	LevelOff    Level = iota // no tracing
	LevelError               // stages kept in a ring, dumped for failed files
	LevelPhase               // commands and files
	LevelDetail              // pipeline stages
	LevelDebug               // everything including single plugins
)

var levelNames = [...]string{
	LevelOff:    "off",
	LevelError:  "error",
	LevelPhase:  "phase",
	LevelDetail: "detail",
	LevelDebug:  "debug",
}

// widest scope each level lets through
var levelScopes = [...]Scope{
	LevelError:  ScopeStage,
	LevelPhase:  ScopeFile,
	LevelDetail: ScopeStage,
	LevelDebug:  ScopePlugin,
}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "unknown"
}

// ParseLevel converts a flag value to a Level; "" means off.
func ParseLevel(s string) (Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return LevelOff, nil
	}
	for l, name := range levelNames {
		if name == s {
			return Level(l), nil
		}
	}
	return LevelOff, fmt.Errorf("invalid trace level: %q (expected: %s)", s, strings.Join(levelNames[:], "|"))
}

// ShouldEmit reports whether events of scope pass at this level.
func (l Level) ShouldEmit(scope Scope) bool {
	if int(l) >= len(levelScopes) {
		return false
	}
	return scope <= levelScopes[l]
}
