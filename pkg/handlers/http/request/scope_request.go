package request

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/NeuralTrust/AuthGuard/pkg/domain/guard"
)

// ScopeRequest is built from the kind/value/category path parameters.
type ScopeRequest struct {
	Kind     string
	Value    string
	Category string
}

func (r *ScopeRequest) Scope() (guard.Scope, error) {
	kind, ok := guard.ParseScopeKind(strings.ToLower(strings.TrimSpace(r.Kind)))
	if !ok {
		return guard.Scope{}, fmt.Errorf("kind must be one of address, identity")
	}
	value, err := url.PathUnescape(r.Value)
	if err != nil {
		return guard.Scope{}, fmt.Errorf("invalid value: %w", err)
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return guard.Scope{}, fmt.Errorf("value is required")
	}
	category := strings.TrimSpace(r.Category)
	if category == "" {
		return guard.Scope{}, fmt.Errorf("category is required")
	}
	return guard.Scope{
		Kind:     kind,
		Value:    value,
		Category: guard.OperationCategory(category),
	}, nil
}
