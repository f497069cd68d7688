package tui

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/aalvaropc/orchard/internal/domain"
	"github.com/aalvaropc/orchard/internal/filter"
)

var reLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {
		case domain.KindNotFound:
			if strings.Contains(oe.Op, "yamlinventory") {
				return "Inventory not found"
			}
			if strings.Contains(oe.Op, "workspacefinder.findroot") {
				return "Workspace not found"
			}
			return "Not found"

		case domain.KindInvalidConfig:
			base := "inventory"
			if strings.TrimSpace(oe.Path) != "" {
				base = filepath.Base(oe.Path)
			}

			line := extractLine(err.Error())
			if line != "" {
				return "Invalid YAML at " + base + " line " + line
			}
			if looksLikeYAMLProblem(err.Error()) {
				return "Invalid YAML at " + base
			}
			if field := extractField(err.Error()); field != "" {
				return "Invalid " + field + " in " + base
			}
			return "Invalid inventory"

		case domain.KindInvalidArgument:
			return "Invalid filter"

		default:
			return "Unexpected error (see logs)"
		}
	}

	if errors.Is(err, filter.ErrInvalidArgument) {
		return "Invalid filter"
	}

	if looksLikeYAMLProblem(err.Error()) {
		line := extractLine(err.Error())
		if line != "" {
			return "Invalid YAML line " + line
		}
		return "Invalid YAML"
	}

	return "Unexpected error (see logs)"
}

func looksLikeYAMLProblem(s string) bool {
	ls := strings.ToLower(s)
	return strings.Contains(ls, "yaml:") || strings.Contains(ls, "did not find expected") || strings.Contains(ls, "cannot unmarshal")
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}

// extractField pulls "apples[2].color" out of "field apples[2].color: ...".
func extractField(s string) string {
	i := strings.Index(s, "field ")
	if i < 0 {
		return ""
	}
	rest := s[i+len("field "):]
	if j := strings.Index(rest, ":"); j > 0 {
		return rest[:j]
	}
	return ""
}
