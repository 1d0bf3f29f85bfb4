package archetype

import "unsafe"

// DynamicBundle is a value that knows the component ids it deposits into an
// archetype and can transfer ownership of each one exactly once via Put.
// Its shape is read from a value through WithIDs/WithInfos.
//
// This file is generated by hand from a fixed template (see bundle.go for
// the arity-0 base case); each arity differs only in the number of type
// parameters threaded through.
type DynamicBundle interface {
	// Valid reports whether the bundle's component ids are pairwise
	// distinct. Neither the Archetype operations nor World.Spawn call it:
	// an invalid bundle passed to them is not rejected.
	Valid() bool
	// WithIDs calls f with the bundle's component ids, in declaration order.
	WithIDs(f func(ids []TypeID))
	// WithInfos calls f with the bundle's ComponentInfo descriptors, in
	// declaration order.
	WithInfos(f func(infos []ComponentInfo))
	// Put delivers each component exactly once to f as (pointer to a
	// move-owned copy, type id, size). After Put returns the bundle has
	// transferred ownership of every value to the callback.
	Put(f func(src unsafe.Pointer, id TypeID, size uintptr))
}

// Bundle is the bundle contract World.Spawn accepts. It adds no methods to
// DynamicBundle; there is no value-less way to describe its shape.
type Bundle interface {
	DynamicBundle
}

// Bundle1 is a statically-shaped bundle of 1 component value(s).
type Bundle1[A any] struct {
	A A
}

// NewBundle1 constructs a Bundle1 from 1 component value(s).
func NewBundle1[A any](vA A) Bundle1[A] {
	return Bundle1[A]{A: vA}
}

func (b Bundle1[A]) Valid() bool {
	return true
}

func (b Bundle1[A]) WithIDs(f func(ids []TypeID)) {
	f([]TypeID{typeIDOf[A]()})
}

func (b Bundle1[A]) WithInfos(f func(infos []ComponentInfo)) {
	f([]ComponentInfo{ComponentInfoOf[A]()})
}

func (b Bundle1[A]) Put(f func(src unsafe.Pointer, id TypeID, size uintptr)) {
	f(unsafe.Pointer(&b.A), typeIDOf[A](), unsafe.Sizeof(b.A))
}

// Bundle2 is a statically-shaped bundle of 2 component value(s).
type Bundle2[A any, B any] struct {
	A A
	B B
}

// NewBundle2 constructs a Bundle2 from 2 component value(s).
func NewBundle2[A any, B any](vA A, vB B) Bundle2[A, B] {
	return Bundle2[A, B]{A: vA, B: vB}
}

func (b Bundle2[A, B]) Valid() bool {
	ids := make([]TypeID, 0, 2)
	ids = append(ids, typeIDOf[A]())
	ids = append(ids, typeIDOf[B]())
	for i := range ids {
		for j := i + 1; j < len(ids); j++ {
			if ids[i] == ids[j] {
				return false
			}
		}
	}
	return true
}

func (b Bundle2[A, B]) WithIDs(f func(ids []TypeID)) {
	f([]TypeID{typeIDOf[A](), typeIDOf[B]()})
}

func (b Bundle2[A, B]) WithInfos(f func(infos []ComponentInfo)) {
	f([]ComponentInfo{ComponentInfoOf[A](), ComponentInfoOf[B]()})
}

func (b Bundle2[A, B]) Put(f func(src unsafe.Pointer, id TypeID, size uintptr)) {
	f(unsafe.Pointer(&b.A), typeIDOf[A](), unsafe.Sizeof(b.A))
	f(unsafe.Pointer(&b.B), typeIDOf[B](), unsafe.Sizeof(b.B))
}

// Bundle3 is a statically-shaped bundle of 3 component value(s).
type Bundle3[A any, B any, C any] struct {
	A A
	B B
	C C
}

// NewBundle3 constructs a Bundle3 from 3 component value(s).
func NewBundle3[A any, B any, C any](vA A, vB B, vC C) Bundle3[A, B, C] {
	return Bundle3[A, B, C]{A: vA, B: vB, C: vC}
}

func (b Bundle3[A, B, C]) Valid() bool {
	ids := make([]TypeID, 0, 3)
	ids = append(ids, typeIDOf[A]())
	ids = append(ids, typeIDOf[B]())
	ids = append(ids, typeIDOf[C]())
	for i := range ids {
		for j := i + 1; j < len(ids); j++ {
			if ids[i] == ids[j] {
				return false
			}
		}
	}
	return true
}

func (b Bundle3[A, B, C]) WithIDs(f func(ids []TypeID)) {
	f([]TypeID{typeIDOf[A](), typeIDOf[B](), typeIDOf[C]()})
}

func (b Bundle3[A, B, C]) WithInfos(f func(infos []ComponentInfo)) {
	f([]ComponentInfo{ComponentInfoOf[A](), ComponentInfoOf[B](), ComponentInfoOf[C]()})
}

func (b Bundle3[A, B, C]) Put(f func(src unsafe.Pointer, id TypeID, size uintptr)) {
	f(unsafe.Pointer(&b.A), typeIDOf[A](), unsafe.Sizeof(b.A))
	f(unsafe.Pointer(&b.B), typeIDOf[B](), unsafe.Sizeof(b.B))
	f(unsafe.Pointer(&b.C), typeIDOf[C](), unsafe.Sizeof(b.C))
}

// Bundle4 is a statically-shaped bundle of 4 component value(s).
type Bundle4[A any, B any, C any, D any] struct {
	A A
	B B
	C C
	D D
}

// NewBundle4 constructs a Bundle4 from 4 component value(s).
func NewBundle4[A any, B any, C any, D any](vA A, vB B, vC C, vD D) Bundle4[A, B, C, D] {
	return Bundle4[A, B, C, D]{A: vA, B: vB, C: vC, D: vD}
}

func (b Bundle4[A, B, C, D]) Valid() bool {
	ids := make([]TypeID, 0, 4)
	ids = append(ids, typeIDOf[A]())
	ids = append(ids, typeIDOf[B]())
	ids = append(ids, typeIDOf[C]())
	ids = append(ids, typeIDOf[D]())
	for i := range ids {
		for j := i + 1; j < len(ids); j++ {
			if ids[i] == ids[j] {
				return false
			}
		}
	}
	return true
}

func (b Bundle4[A, B, C, D]) WithIDs(f func(ids []TypeID)) {
	f([]TypeID{typeIDOf[A](), typeIDOf[B](), typeIDOf[C](), typeIDOf[D]()})
}

func (b Bundle4[A, B, C, D]) WithInfos(f func(infos []ComponentInfo)) {
	f([]ComponentInfo{ComponentInfoOf[A](), ComponentInfoOf[B](), ComponentInfoOf[C](), ComponentInfoOf[D]()})
}

func (b Bundle4[A, B, C, D]) Put(f func(src unsafe.Pointer, id TypeID, size uintptr)) {
	f(unsafe.Pointer(&b.A), typeIDOf[A](), unsafe.Sizeof(b.A))
	f(unsafe.Pointer(&b.B), typeIDOf[B](), unsafe.Sizeof(b.B))
	f(unsafe.Pointer(&b.C), typeIDOf[C](), unsafe.Sizeof(b.C))
	f(unsafe.Pointer(&b.D), typeIDOf[D](), unsafe.Sizeof(b.D))
}

// Bundle5 is a statically-shaped bundle of 5 component value(s).
type Bundle5[A any, B any, C any, D any, E any] struct {
	A A
	B B
	C C
	D D
	E E
}

// NewBundle5 constructs a Bundle5 from 5 component value(s).
func NewBundle5[A any, B any, C any, D any, E any](vA A, vB B, vC C, vD D, vE E) Bundle5[A, B, C, D, E] {
	return Bundle5[A, B, C, D, E]{A: vA, B: vB, C: vC, D: vD, E: vE}
}

func (b Bundle5[A, B, C, D, E]) Valid() bool {
	ids := make([]TypeID, 0, 5)
	ids = append(ids, typeIDOf[A]())
	ids = append(ids, typeIDOf[B]())
	ids = append(ids, typeIDOf[C]())
	ids = append(ids, typeIDOf[D]())
	ids = append(ids, typeIDOf[E]())
	for i := range ids {
		for j := i + 1; j < len(ids); j++ {
			if ids[i] == ids[j] {
				return false
			}
		}
	}
	return true
}

func (b Bundle5[A, B, C, D, E]) WithIDs(f func(ids []TypeID)) {
	f([]TypeID{typeIDOf[A](), typeIDOf[B](), typeIDOf[C](), typeIDOf[D](), typeIDOf[E]()})
}

func (b Bundle5[A, B, C, D, E]) WithInfos(f func(infos []ComponentInfo)) {
	f([]ComponentInfo{ComponentInfoOf[A](), ComponentInfoOf[B](), ComponentInfoOf[C](), ComponentInfoOf[D](), ComponentInfoOf[E]()})
}

func (b Bundle5[A, B, C, D, E]) Put(f func(src unsafe.Pointer, id TypeID, size uintptr)) {
	f(unsafe.Pointer(&b.A), typeIDOf[A](), unsafe.Sizeof(b.A))
	f(unsafe.Pointer(&b.B), typeIDOf[B](), unsafe.Sizeof(b.B))
	f(unsafe.Pointer(&b.C), typeIDOf[C](), unsafe.Sizeof(b.C))
	f(unsafe.Pointer(&b.D), typeIDOf[D](), unsafe.Sizeof(b.D))
	f(unsafe.Pointer(&b.E), typeIDOf[E](), unsafe.Sizeof(b.E))
}

// Bundle6 is a statically-shaped bundle of 6 component value(s).
type Bundle6[A any, B any, C any, D any, E any, F any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
}

// NewBundle6 constructs a Bundle6 from 6 component value(s).
func NewBundle6[A any, B any, C any, D any, E any, F any](vA A, vB B, vC C, vD D, vE E, vF F) Bundle6[A, B, C, D, E, F] {
	return Bundle6[A, B, C, D, E, F]{A: vA, B: vB, C: vC, D: vD, E: vE, F: vF}
}

func (b Bundle6[A, B, C, D, E, F]) Valid() bool {
	ids := make([]TypeID, 0, 6)
	ids = append(ids, typeIDOf[A]())
	ids = append(ids, typeIDOf[B]())
	ids = append(ids, typeIDOf[C]())
	ids = append(ids, typeIDOf[D]())
	ids = append(ids, typeIDOf[E]())
	ids = append(ids, typeIDOf[F]())
	for i := range ids {
		for j := i + 1; j < len(ids); j++ {
			if ids[i] == ids[j] {
				return false
			}
		}
	}
	return true
}

func (b Bundle6[A, B, C, D, E, F]) WithIDs(f func(ids []TypeID)) {
	f([]TypeID{typeIDOf[A](), typeIDOf[B](), typeIDOf[C](), typeIDOf[D](), typeIDOf[E](), typeIDOf[F]()})
}

func (b Bundle6[A, B, C, D, E, F]) WithInfos(f func(infos []ComponentInfo)) {
	f([]ComponentInfo{ComponentInfoOf[A](), ComponentInfoOf[B](), ComponentInfoOf[C](), ComponentInfoOf[D](), ComponentInfoOf[E](), ComponentInfoOf[F]()})
}

func (b Bundle6[A, B, C, D, E, F]) Put(f func(src unsafe.Pointer, id TypeID, size uintptr)) {
	f(unsafe.Pointer(&b.A), typeIDOf[A](), unsafe.Sizeof(b.A))
	f(unsafe.Pointer(&b.B), typeIDOf[B](), unsafe.Sizeof(b.B))
	f(unsafe.Pointer(&b.C), typeIDOf[C](), unsafe.Sizeof(b.C))
	f(unsafe.Pointer(&b.D), typeIDOf[D](), unsafe.Sizeof(b.D))
	f(unsafe.Pointer(&b.E), typeIDOf[E](), unsafe.Sizeof(b.E))
	f(unsafe.Pointer(&b.F), typeIDOf[F](), unsafe.Sizeof(b.F))
}

// Bundle7 is a statically-shaped bundle of 7 component value(s).
type Bundle7[A any, B any, C any, D any, E any, F any, G any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
	G G
}

// NewBundle7 constructs a Bundle7 from 7 component value(s).
func NewBundle7[A any, B any, C any, D any, E any, F any, G any](vA A, vB B, vC C, vD D, vE E, vF F, vG G) Bundle7[A, B, C, D, E, F, G] {
	return Bundle7[A, B, C, D, E, F, G]{A: vA, B: vB, C: vC, D: vD, E: vE, F: vF, G: vG}
}

func (b Bundle7[A, B, C, D, E, F, G]) Valid() bool {
	ids := make([]TypeID, 0, 7)
	ids = append(ids, typeIDOf[A]())
	ids = append(ids, typeIDOf[B]())
	ids = append(ids, typeIDOf[C]())
	ids = append(ids, typeIDOf[D]())
	ids = append(ids, typeIDOf[E]())
	ids = append(ids, typeIDOf[F]())
	ids = append(ids, typeIDOf[G]())
	for i := range ids {
		for j := i + 1; j < len(ids); j++ {
			if ids[i] == ids[j] {
				return false
			}
		}
	}
	return true
}

func (b Bundle7[A, B, C, D, E, F, G]) WithIDs(f func(ids []TypeID)) {
	f([]TypeID{typeIDOf[A](), typeIDOf[B](), typeIDOf[C](), typeIDOf[D](), typeIDOf[E](), typeIDOf[F](), typeIDOf[G]()})
}

func (b Bundle7[A, B, C, D, E, F, G]) WithInfos(f func(infos []ComponentInfo)) {
	f([]ComponentInfo{ComponentInfoOf[A](), ComponentInfoOf[B](), ComponentInfoOf[C](), ComponentInfoOf[D](), ComponentInfoOf[E](), ComponentInfoOf[F](), ComponentInfoOf[G]()})
}

func (b Bundle7[A, B, C, D, E, F, G]) Put(f func(src unsafe.Pointer, id TypeID, size uintptr)) {
	f(unsafe.Pointer(&b.A), typeIDOf[A](), unsafe.Sizeof(b.A))
	f(unsafe.Pointer(&b.B), typeIDOf[B](), unsafe.Sizeof(b.B))
	f(unsafe.Pointer(&b.C), typeIDOf[C](), unsafe.Sizeof(b.C))
	f(unsafe.Pointer(&b.D), typeIDOf[D](), unsafe.Sizeof(b.D))
	f(unsafe.Pointer(&b.E), typeIDOf[E](), unsafe.Sizeof(b.E))
	f(unsafe.Pointer(&b.F), typeIDOf[F](), unsafe.Sizeof(b.F))
	f(unsafe.Pointer(&b.G), typeIDOf[G](), unsafe.Sizeof(b.G))
}

// Bundle8 is a statically-shaped bundle of 8 component value(s).
type Bundle8[A any, B any, C any, D any, E any, F any, G any, H any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
	G G
	H H
}

// NewBundle8 constructs a Bundle8 from 8 component value(s).
func NewBundle8[A any, B any, C any, D any, E any, F any, G any, H any](vA A, vB B, vC C, vD D, vE E, vF F, vG G, vH H) Bundle8[A, B, C, D, E, F, G, H] {
	return Bundle8[A, B, C, D, E, F, G, H]{A: vA, B: vB, C: vC, D: vD, E: vE, F: vF, G: vG, H: vH}
}

func (b Bundle8[A, B, C, D, E, F, G, H]) Valid() bool {
	ids := make([]TypeID, 0, 8)
	ids = append(ids, typeIDOf[A]())
	ids = append(ids, typeIDOf[B]())
	ids = append(ids, typeIDOf[C]())
	ids = append(ids, typeIDOf[D]())
	ids = append(ids, typeIDOf[E]())
	ids = append(ids, typeIDOf[F]())
	ids = append(ids, typeIDOf[G]())
	ids = append(ids, typeIDOf[H]())
	for i := range ids {
		for j := i + 1; j < len(ids); j++ {
			if ids[i] == ids[j] {
				return false
			}
		}
	}
	return true
}

func (b Bundle8[A, B, C, D, E, F, G, H]) WithIDs(f func(ids []TypeID)) {
	f([]TypeID{typeIDOf[A](), typeIDOf[B](), typeIDOf[C](), typeIDOf[D](), typeIDOf[E](), typeIDOf[F](), typeIDOf[G](), typeIDOf[H]()})
}

func (b Bundle8[A, B, C, D, E, F, G, H]) WithInfos(f func(infos []ComponentInfo)) {
	f([]ComponentInfo{ComponentInfoOf[A](), ComponentInfoOf[B](), ComponentInfoOf[C](), ComponentInfoOf[D](), ComponentInfoOf[E](), ComponentInfoOf[F](), ComponentInfoOf[G](), ComponentInfoOf[H]()})
}

func (b Bundle8[A, B, C, D, E, F, G, H]) Put(f func(src unsafe.Pointer, id TypeID, size uintptr)) {
	f(unsafe.Pointer(&b.A), typeIDOf[A](), unsafe.Sizeof(b.A))
	f(unsafe.Pointer(&b.B), typeIDOf[B](), unsafe.Sizeof(b.B))
	f(unsafe.Pointer(&b.C), typeIDOf[C](), unsafe.Sizeof(b.C))
	f(unsafe.Pointer(&b.D), typeIDOf[D](), unsafe.Sizeof(b.D))
	f(unsafe.Pointer(&b.E), typeIDOf[E](), unsafe.Sizeof(b.E))
	f(unsafe.Pointer(&b.F), typeIDOf[F](), unsafe.Sizeof(b.F))
	f(unsafe.Pointer(&b.G), typeIDOf[G](), unsafe.Sizeof(b.G))
	f(unsafe.Pointer(&b.H), typeIDOf[H](), unsafe.Sizeof(b.H))
}

