package criteria

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PaesslerAG/gval"
	"github.com/PaesslerAG/jsonpath"

	"github.com/aalvaropc/orchard/internal/domain"
	"github.com/aalvaropc/orchard/internal/filter"
)

// whereLang is jsonpath on top of the full gval operator set, so filter
// expressions can use comparisons and boolean operators.
var whereLang = gval.NewLanguage(gval.Full(), jsonpath.Language())

// Where compiles a JSONPath filter expression such as
// `@.color == "RED" && @.size > 150` into a predicate.
//
// Each apple is evaluated as the document {"color": "RED", "size": 170}.
// Syntax errors are reported here; evaluation errors are returned by the predicate.
func Where(expr string) (filter.PredicateE[domain.Apple], error) {
	in := strings.TrimSpace(expr)
	if in == "" {
		return nil, domain.InvalidArgument("criteria.where", "empty expression")
	}

	eval, err := whereLang.NewEvaluable("$[?(" + in + ")]")
	if err != nil {
		return nil, &domain.OpError{
			Op:   "criteria.where",
			Kind: domain.KindInvalidArgument,
			Err:  fmt.Errorf("invalid expression %q: %v: %w", in, err, domain.ErrInvalidArgument),
		}
	}

	return func(a domain.Apple) (bool, error) {
		doc, err := appleDocument(a)
		if err != nil {
			return false, err
		}

		// The expression filters a one-element array: a non-empty result is a match.
		out, err := eval(context.Background(), []any{doc})
		if err != nil {
			return false, &domain.OpError{
				Op:   "criteria.where",
				Kind: domain.KindExecution,
				Err:  fmt.Errorf("evaluate %q on %s: %w", in, a, err),
			}
		}
		matched, _ := out.([]any)
		return len(matched) > 0, nil
	}, nil
}

type appleDoc struct {
	Color string `json:"color"`
	Size  int    `json:"size"`
}

// appleDocument round-trips through encoding/json so numbers compare as float64,
// the same shape jsonpath sees for parsed JSON.
func appleDocument(a domain.Apple) (any, error) {
	b, err := json.Marshal(appleDoc{Color: string(a.Color), Size: a.Size})
	if err != nil {
		return nil, err
	}
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, err
	}
	return v, nil
}
