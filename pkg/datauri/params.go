package datauri

import (
	"iter"

	"github.com/elliotchance/orderedmap/v3"
)

// Parameters is an insertion-ordered key/value set for media type
// parameters (charset and friends). Adding an existing key is a no-op:
// the first value wins and is never overwritten.
type Parameters struct {
	m *orderedmap.OrderedMap[string, string]
}

// NewParameters returns an empty parameter set.
func NewParameters() *Parameters {
	return &Parameters{m: orderedmap.NewOrderedMap[string, string]()}
}

// Add inserts key with value unless the key is already present. Reports
// whether the entry was inserted.
func (p *Parameters) Add(key, value string) bool {
	if _, exists := p.m.Get(key); exists {
		return false
	}
	p.m.Set(key, value)
	return true
}

// Get returns the value for key and whether it is present.
func (p *Parameters) Get(key string) (string, bool) {
	return p.m.Get(key)
}

// Has reports whether key is present.
func (p *Parameters) Has(key string) bool {
	_, exists := p.m.Get(key)
	return exists
}

// Len returns the number of parameters.
func (p *Parameters) Len() int {
	return p.m.Len()
}

// All iterates the parameters in insertion order.
func (p *Parameters) All() iter.Seq2[string, string] {
	return p.m.AllFromFront()
}

// Keys returns the parameter keys in insertion order.
func (p *Parameters) Keys() []string {
	keys := make([]string, 0, p.m.Len())
	for key := range p.m.AllFromFront() {
		keys = append(keys, key)
	}
	return keys
}
