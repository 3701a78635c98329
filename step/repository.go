package step

import (
	"fmt"
	"strconv"
)

// Ref is the instance name of an entity in a Repository, i.e. the n in #n.
// The zero Ref is the unset value and is written as $.
type Ref int

func (r Ref) String() string {
	if r.IsZero() {
		return "$"
	}
	return "#" + strconv.Itoa(int(r))
}

func (r Ref) IsZero() bool {
	return r == 0
}

// Entity is anything that can be stored in a Repository and written as a
// single instance line of a part file.
type Entity interface {
	Keyword() string
	WriteParams(e *Encoder)
}

// Repository is an append-only arena of entities. Refs are assigned in
// insertion order starting at 1 and stay valid for the lifetime of the
// Repository, so an entity can be read back at any time after it was added.
type Repository struct {
	entities []Entity
}

func NewRepository() *Repository {
	return &Repository{}
}

func (r *Repository) Add(e Entity) Ref {
	if e == nil {
		panic("step: cannot add nil entity")
	}
	r.entities = append(r.entities, e)
	return Ref(len(r.entities))
}

func (r *Repository) Lookup(ref Ref) (Entity, bool) {
	if ref < 1 || int(ref) > len(r.entities) {
		return nil, false
	}
	return r.entities[ref-1], true
}

// Resolve returns the entity stored under ref. Asking for a ref that was
// never handed out by this Repository is a programming error and panics.
func (r *Repository) Resolve(ref Ref) Entity {
	e, ok := r.Lookup(ref)
	if !ok {
		panic(fmt.Sprintf("step: unresolvable reference %v (repository holds %d entities)",
			ref, len(r.entities)))
	}
	return e
}

func (r *Repository) Len() int {
	return len(r.entities)
}

func (r *Repository) Each(cb func(Ref, Entity)) {
	for i, e := range r.entities {
		cb(Ref(i+1), e)
	}
}

// Count returns the number of stored entities with the given keyword.
func (r *Repository) Count(keyword string) (n int) {
	for _, e := range r.entities {
		if e.Keyword() == keyword {
			n++
		}
	}
	return
}
