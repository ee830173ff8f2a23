package parsers

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownCarrier is returned when the dispatch point is handed a carrier
// identifier no parser is registered for. This is a configuration error and
// aborts the run before any parsing.
var ErrUnknownCarrier = errors.New("unknown carrier")

// Registry maps carrier identifiers to their parsers. It is an explicit
// value passed to the dispatch point so tests can construct isolated
// registries per case.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry builds a registry keyed by the lowercased carrier name of each
// parser.
func NewRegistry(parsers ...Parser) *Registry {
	r := &Registry{parsers: make(map[string]Parser, len(parsers))}
	for _, p := range parsers {
		r.parsers[strings.ToLower(p.Carrier())] = p
	}
	return r
}

// Get resolves a carrier identifier to its parser.
func (r *Registry) Get(carrierID string) (Parser, error) {
	p, ok := r.parsers[strings.ToLower(carrierID)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCarrier, carrierID)
	}
	return p, nil
}

// Carriers lists the registered carrier identifiers in stable order.
func (r *Registry) Carriers() []string {
	ids := make([]string, 0, len(r.parsers))
	for id := range r.parsers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// DefaultRegistry wires every supported carrier. Adding a carrier means
// adding one table-driven parser here and nothing else.
func DefaultRegistry() *Registry {
	return NewRegistry(
		NewCenteneParser(),
		NewEmblemParser(),
		NewHealthfirstParser(),
	)
}
