package guard

import "fmt"

type ScopeKind string

const (
	ScopeAddress  ScopeKind = "address"
	ScopeIdentity ScopeKind = "identity"
)

// Scope is the unit every counter, lockout and violation is keyed by.
type Scope struct {
	Kind     ScopeKind
	Value    string
	Category OperationCategory
}

func AddressScope(address string, category OperationCategory) Scope {
	return Scope{Kind: ScopeAddress, Value: address, Category: category}
}

func IdentityScope(identity string, category OperationCategory) Scope {
	return Scope{Kind: ScopeIdentity, Value: identity, Category: category}
}

// Key renders the scope as kind:category:value. The value goes last because
// identities may contain the separator.
func (s Scope) Key() string {
	return fmt.Sprintf("%s:%s:%s", s.Kind, s.Category, s.Value)
}

func (s Scope) IsAddress() bool {
	return s.Kind == ScopeAddress
}

func ParseScopeKind(v string) (ScopeKind, bool) {
	switch ScopeKind(v) {
	case ScopeAddress, ScopeIdentity:
		return ScopeKind(v), true
	case "ip":
		return ScopeAddress, true
	case "user":
		return ScopeIdentity, true
	}
	return "", false
}
