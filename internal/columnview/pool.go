package columnview

import (
	"fmt"
	"github.com/emirpasic/gods/lists/doublylinkedlist"
	"reflect"
)

// Kind tags views that are interchangeable in the pool. Matching is tag equality
type Kind string

// Strategy constructs new views of a single Kind
type Strategy interface {
	// resolve returns the kind this strategy constructs, plus any instance built while finding that out
	resolve() (Kind, View)
	construct() View
}

// Prototype produces fresh views from a template
type Prototype interface {
	Instantiate() View
}

type classStrategy[V View] struct {
	newFn func() V
}

func (s classStrategy[V]) resolve() (Kind, View) {
	return Kind(reflect.TypeOf((*V)(nil)).Elem().String()), nil
}

func (s classStrategy[V]) construct() View {
	return s.newFn()
}

// Class registers a view type constructed by newFn. Its kind is the static type V
func Class[V View](newFn func() V) Strategy {
	return classStrategy[V]{newFn: newFn}
}

type templateStrategy struct {
	proto Prototype
}

func (s templateStrategy) resolve() (Kind, View) {
	v := s.proto.Instantiate()
	if v == nil {
		return "", nil
	}
	return Kind(fmt.Sprintf("%T", v)), v
}

func (s templateStrategy) construct() View {
	return s.proto.Instantiate()
}

// Template registers views instantiated from proto. Its kind is the dynamic type of the instance proto produces,
// captured once at registration
func Template(proto Prototype) Strategy {
	return templateStrategy{proto: proto}
}

type registration struct {
	kind     Kind
	strategy Strategy
}

type poolEntry struct {
	kind Kind
	view View
}

// ReusePool holds detached views waiting to be bound to another column
type ReusePool struct {
	registrations map[string]registration

	// entries holds poolEntry values in release order
	entries *doublylinkedlist.List

	// kinds records the kind of every view the pool has constructed
	kinds map[View]Kind

	constructed int
}

func NewReusePool() *ReusePool {
	return &ReusePool{
		registrations: make(map[string]registration),
		entries:       doublylinkedlist.New(),
		kinds:         make(map[View]Kind),
	}
}

// Register associates identifier with strategy, replacing any earlier registration. A template strategy is
// instantiated once to learn its kind; that instance is pooled rather than thrown away
func (p *ReusePool) Register(identifier string, strategy Strategy) {
	if strategy == nil {
		delete(p.registrations, identifier)
		return
	}
	kind, probe := strategy.resolve()
	p.registrations[identifier] = registration{kind: kind, strategy: strategy}
	if probe != nil {
		p.constructed++
		p.kinds[probe] = kind
		p.entries.Add(poolEntry{kind: kind, view: probe})
	}
}

// Identifiers returns the registered identifiers in no particular order
func (p *ReusePool) Identifiers() []string {
	ids := make([]string, 0, len(p.registrations))
	for id := range p.registrations {
		ids = append(ids, id)
	}
	return ids
}

// Acquire returns the first pooled view of identifier's kind, or constructs one. Unregistered identifiers get a
// Placeholder
func (p *ReusePool) Acquire(identifier string) View {
	reg, ok := p.registrations[identifier]
	if !ok || reg.kind == "" {
		return &Placeholder{}
	}
	idx, found := p.entries.Find(func(_ int, value interface{}) bool {
		return value.(poolEntry).kind == reg.kind
	})
	if idx >= 0 {
		p.entries.Remove(idx)
		return found.(poolEntry).view
	}
	v := reg.strategy.construct()
	if v == nil {
		return &Placeholder{}
	}
	p.constructed++
	p.kinds[v] = reg.kind
	return v
}

// Release returns a detached view to the pool. Views of unknown kind are not pooled, and releasing a view that is
// already pooled does nothing. Reports whether the view is now in the pool
func (p *ReusePool) Release(v View) bool {
	if v == nil {
		return false
	}
	kind, ok := p.kinds[v]
	if !ok {
		return false
	}
	if p.indexOf(v) >= 0 {
		return true
	}
	p.entries.Add(poolEntry{kind: kind, view: v})
	return true
}

// Remove takes v out of the pool if it is there
func (p *ReusePool) Remove(v View) bool {
	idx := p.indexOf(v)
	if idx < 0 {
		return false
	}
	p.entries.Remove(idx)
	return true
}

func (p *ReusePool) Contains(v View) bool {
	return p.indexOf(v) >= 0
}

// KindOf returns the kind recorded for a view the pool constructed
func (p *ReusePool) KindOf(v View) (Kind, bool) {
	k, ok := p.kinds[v]
	return k, ok
}

func (p *ReusePool) Len() int {
	return p.entries.Size()
}

// Constructed returns how many views the pool has built in total
func (p *ReusePool) Constructed() int {
	return p.constructed
}

func (p *ReusePool) indexOf(v View) int {
	if v == nil {
		return -1
	}
	idx, _ := p.entries.Find(func(_ int, value interface{}) bool {
		return value.(poolEntry).view == v
	})
	return idx
}
