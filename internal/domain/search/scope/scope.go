// Package scope maps a caller-selected statute family to the set of
// backing indexes that must be queried for it.
package scope

// Scope selects which statute families a search spans.
type Scope string

const (
	// All searches every configured law index.
	All Scope = "all"
	// Civil restricts the search to the civil code.
	Civil Scope = "civil"
	// Criminal restricts the search to the criminal code.
	Criminal Scope = "criminal"
	// CivilProcedure restricts the search to the civil procedure code.
	CivilProcedure Scope = "civil_procedure"
	// CriminalProcedure restricts the search to the criminal procedure code.
	CriminalProcedure Scope = "criminal_procedure"
)

// Binding ties one backing index to the law family it holds.
// Filter is an optional engine-level filter expression used when a shared
// index is partitioned by law code instead of split per family.
type Binding struct {
	Index   string
	LawCode string
	Scope   Scope
	Filter  string
}

// Resolver resolves scope tokens against the configured index bindings.
// Binding order is preserved: it is the deterministic tie-break order for
// otherwise-identical merged hits.
type Resolver struct {
	bindings []Binding
	known    map[Scope]struct{}
}

// NewResolver creates a resolver over the configured bindings.
func NewResolver(bindings []Binding) *Resolver {
	known := make(map[Scope]struct{}, len(bindings)+1)
	known[All] = struct{}{}
	for _, b := range bindings {
		known[b.Scope] = struct{}{}
	}
	return &Resolver{bindings: append([]Binding(nil), bindings...), known: known}
}

// Resolve returns the ordered bindings to query for a scope.
//
// All dedupes by index name: a shared index bound to several families is
// queried once, with no filter, since every family in it is in scope.
// An unknown scope resolves to the empty set, not an error: the caller's
// request validation owns rejecting tokens outside the enum.
func (r *Resolver) Resolve(s Scope) []Binding {
	if s == All {
		out := make([]Binding, 0, len(r.bindings))
		seen := make(map[string]int, len(r.bindings))
		for _, b := range r.bindings {
			if i, dup := seen[b.Index]; dup {
				if out[i].Filter != b.Filter {
					out[i].Filter = ""
				}
				continue
			}
			seen[b.Index] = len(out)
			out = append(out, b)
		}
		return out
	}
	for _, b := range r.bindings {
		if b.Scope == s {
			return []Binding{b}
		}
	}
	return nil
}

// Known reports whether the scope token is part of the configured enum.
func (r *Resolver) Known(s Scope) bool {
	_, ok := r.known[s]
	return ok
}

// Bindings returns all configured bindings in order.
func (r *Resolver) Bindings() []Binding {
	return append([]Binding(nil), r.bindings...)
}
