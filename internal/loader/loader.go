package loader

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tidwall/jsonc"

	"groupgrip/internal/config"
	"groupgrip/internal/domain"
)

// Result is the outcome of a successful load
type Result struct {
	Groups   []domain.Group
	Warnings []string // non-fatal payload issues worth logging
}

// Loader fetches and decodes the groups payload
type Loader struct {
	source Source
	format string
}

// New creates a loader for the given source and payload format
func New(source Source, format string) *Loader {
	if format == "" {
		format = config.FormatArray
	}
	return &Loader{source: source, format: format}
}

// Source returns a printable description of where groups come from
func (l *Loader) Source() string {
	return l.source.String()
}

// Load fetches and decodes the payload. Network, status, parse and envelope
// failures all come back as a single wrapped error.
func (l *Loader) Load(ctx context.Context) (Result, error) {
	data, err := l.source.Fetch(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("loading groups: %w", err)
	}

	groups, err := Decode(data, l.format)
	if err != nil {
		return Result{}, fmt.Errorf("loading groups from %s: %w", l.source, err)
	}

	// a late result must not be applied once the caller has gone away
	if err := ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("loading groups: %w", err)
	}

	return Result{Groups: groups, Warnings: checkGroups(groups)}, nil
}

// Decode parses a payload in the given format. Comments and trailing commas
// are accepted so hand-edited fixture files load as well.
func Decode(data []byte, format string) ([]domain.Group, error) {
	stripped := jsonc.ToJSON(data)

	switch format {
	case config.FormatArray:
		var groups []domain.Group
		if err := json.Unmarshal(stripped, &groups); err != nil {
			return nil, fmt.Errorf("parsing groups: %w", err)
		}
		if groups == nil {
			groups = []domain.Group{}
		}
		return groups, nil

	case config.FormatEnvelope:
		var env domain.Envelope
		if err := json.Unmarshal(stripped, &env); err != nil {
			return nil, fmt.Errorf("parsing envelope: %w", err)
		}
		if env.Result != 1 {
			return nil, fmt.Errorf("envelope reported result %d", env.Result)
		}
		if env.Data == nil {
			return []domain.Group{}, nil
		}
		return env.Data, nil

	default:
		return nil, fmt.Errorf("unknown payload format %q", format)
	}
}

// checkGroups reports problems that do not prevent rendering
func checkGroups(groups []domain.Group) []string {
	var warnings []string
	seen := make(map[int]bool, len(groups))
	for _, g := range groups {
		if seen[g.ID] {
			warnings = append(warnings, fmt.Sprintf("duplicate group id %d (%q); friends toggles are shared", g.ID, g.Name))
		}
		seen[g.ID] = true

		if g.AvatarColor != "" && !domain.FieldAvatarColor.Accepts(g.AvatarColor) {
			warnings = append(warnings, fmt.Sprintf("group %d has unknown avatar colour %q", g.ID, g.AvatarColor))
		}
		if g.MembersCount < 0 {
			warnings = append(warnings, fmt.Sprintf("group %d has negative members count %d", g.ID, g.MembersCount))
		}
	}
	return warnings
}
