// Package filter compiles expr-language predicates over CMS videos,
// backing the CLI's --filter flag.
//
// Expressions see one video at a time as a flat environment:
//
//	state == "ACTIVE" && duration > 600000
//	"archive" in tags && created_at < daysAgo(365)
//	custom_fields.category == "sports"
package filter

import (
	"fmt"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/s0up4200/brightcove-go/cms"
)

// Filter reports whether a video matches a compiled expression.
type Filter func(video cms.Video) (bool, error)

// CompilationError describes an expression that failed to compile.
type CompilationError struct {
	Expression string
	Reason     string
}

func (e *CompilationError) Error() string {
	return fmt.Sprintf("invalid filter expression %q: %s", e.Expression, e.Reason)
}

// Compile compiles an expression into an executable video filter.
func Compile(expression string) (Filter, error) {
	if expression == "" {
		return nil, &CompilationError{Expression: expression, Reason: "empty expression"}
	}

	program, err := expr.Compile(expression,
		expr.Env(buildEnv(cms.Video{})),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{Expression: expression, Reason: err.Error()}
	}

	return func(video cms.Video) (bool, error) {
		out, err := runProgram(program, buildEnv(video))
		if err != nil {
			return false, fmt.Errorf("evaluating filter: %w", err)
		}
		return out, nil
	}, nil
}

func runProgram(program *vm.Program, env map[string]any) (bool, error) {
	out, err := expr.Run(program, env)
	if err != nil {
		return false, err
	}
	matched, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("filter did not evaluate to a boolean")
	}
	return matched, nil
}

// buildEnv flattens a video into the expression environment.
func buildEnv(video cms.Video) map[string]any {
	customFields := video.CustomFields
	if customFields == nil {
		customFields = map[string]string{}
	}
	tags := video.Tags
	if tags == nil {
		tags = []string{}
	}
	return map[string]any{
		"id":            video.ID,
		"name":          video.Name,
		"description":   video.Description,
		"reference_id":  video.ReferenceID,
		"state":         video.State,
		"tags":          tags,
		"custom_fields": customFields,
		"duration":      video.Duration,
		"economics":     video.Economics,
		"created_at":    parseTimestamp(video.CreatedAt),
		"updated_at":    parseTimestamp(video.UpdatedAt),
		"published_at":  parseTimestamp(video.PublishedAt),

		// Helper functions
		"now": func() time.Time { return time.Now() },
		"daysAgo": func(days int) time.Time {
			return time.Now().AddDate(0, 0, -days)
		},
	}
}

// parseTimestamp converts a CMS RFC 3339 timestamp; zero time when
// absent or malformed so comparisons stay total.
func parseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
