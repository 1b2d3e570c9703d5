package shapes

import (
	"fmt"
	"sort"
	"strings"
)

// Generator produces one self-contained icon at its default dimensions.
type Generator func() string

// Registry maps lowercase symbol keys to icon generators for a single view.
// Canonical names and aliases share one key space; aliases resolve to their
// canonical name before lookup. A Registry is built once and read-only after.
type Registry struct {
	view       string
	generators map[string]Generator
	aliases    map[string]string
}

// Views holds the two registries the label pipeline draws icons from.
type Views struct {
	Top  *Registry
	Side *Registry
}

// BuildViews constructs the full icon catalog. Registering a key that is
// already present in the same view fails with ErrDuplicateSymbol.
func BuildViews() (Views, error) {
	top := newRegistryBuilder("top")
	registerTop(top)
	side := newRegistryBuilder("side")
	registerSide(side)

	topReg, err := top.build()
	if err != nil {
		return Views{}, err
	}
	sideReg, err := side.build()
	if err != nil {
		return Views{}, err
	}
	return Views{Top: topReg, Side: sideReg}, nil
}

// Lookup resolves sym, case-insensitively and through the alias table, to a
// generator. The boolean reports whether the symbol is registered; a miss is
// not an error of the registry.
func (r *Registry) Lookup(sym string) (Generator, bool) {
	key := strings.ToLower(strings.TrimSpace(sym))
	if canonical, ok := r.aliases[key]; ok {
		key = canonical
	}
	gen, ok := r.generators[key]
	return gen, ok
}

// Canonical resolves sym to its canonical generator name.
func (r *Registry) Canonical(sym string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(sym))
	if canonical, ok := r.aliases[key]; ok {
		key = canonical
	}
	_, ok := r.generators[key]
	return key, ok
}

// Names returns the canonical generator names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.generators))
	for name := range r.generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// View reports which view this registry serves, "top" or "side".
func (r *Registry) View() string {
	return r.view
}

type registryBuilder struct {
	reg *Registry
	err error
}

func newRegistryBuilder(view string) *registryBuilder {
	return &registryBuilder{reg: &Registry{
		view:       view,
		generators: map[string]Generator{},
		aliases:    map[string]string{},
	}}
}

func (b *registryBuilder) add(canonical string, gen Generator, aliases ...string) {
	if b.err != nil {
		return
	}
	key := strings.ToLower(canonical)
	if b.taken(key) {
		b.err = fmt.Errorf("%w: %q in %s view", ErrDuplicateSymbol, key, b.reg.view)
		return
	}
	b.reg.generators[key] = gen
	for _, alias := range aliases {
		aliasKey := strings.ToLower(alias)
		if b.taken(aliasKey) {
			b.err = fmt.Errorf("%w: %q in %s view", ErrDuplicateSymbol, aliasKey, b.reg.view)
			return
		}
		b.reg.aliases[aliasKey] = key
	}
}

func (b *registryBuilder) taken(key string) bool {
	if _, ok := b.reg.generators[key]; ok {
		return true
	}
	_, ok := b.reg.aliases[key]
	return ok
}

func (b *registryBuilder) build() (*Registry, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.reg, nil
}
