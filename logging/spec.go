package logging

import (
	"fmt"
	"sort"
	"strings"
)

// Spec describes a base log level plus per-component overrides.
//
// The textual form is a comma-separated list where a bare level sets
// the base and "component=level" entries set overrides:
//
//	info
//	warn,procmaps=debug
//	debug,vmem=error
type Spec struct {
	BaseLevel  Level
	Components map[string]Level
}

// ParseSpec parses a spec string. An empty string yields the defaults
// (info, no overrides). Later entries override earlier ones.
func ParseSpec(s string) (Spec, error) {
	spec := Spec{
		BaseLevel:  LevelInfo,
		Components: map[string]Level{},
	}

	for _, entry := range strings.Split(s, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		name, levelStr, found := strings.Cut(entry, "=")
		if !found {
			level, err := ParseLevel(entry)
			if err != nil {
				return Spec{}, err
			}
			spec.BaseLevel = level
			continue
		}

		name = strings.TrimSpace(name)
		if name == "" {
			return Spec{}, fmt.Errorf("empty component in spec entry %q", entry)
		}
		level, err := ParseLevel(levelStr)
		if err != nil {
			return Spec{}, fmt.Errorf("component %s: %w", name, err)
		}
		spec.Components[name] = level
	}

	return spec, nil
}

// LevelFor returns the effective level for a component. The empty
// component (root logger) and unknown components use the base level.
func (s *Spec) LevelFor(component string) Level {
	if level, ok := s.Components[component]; ok {
		return level
	}
	return s.BaseLevel
}

// String renders the spec back into its textual form, with component
// overrides in sorted order.
func (s Spec) String() string {
	parts := []string{s.BaseLevel.String()}

	names := make([]string, 0, len(s.Components))
	for name := range s.Components {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s=%s", name, s.Components[name]))
	}
	return strings.Join(parts, ",")
}
