package archetype

// This file is generated for arities 2 through 8 of tuple query composition,
// mirroring the hand-templated approach bundle_generated.go uses for
// bundles: Go has no variadic generics, so each fixed arity gets its own
// type.

// ItemAnd2[A any, B any] is the tuple item yielded by And2.
type ItemAnd2[A any, B any] struct {
	A A
	B B
}

// And2 composes 2 queries into one: access is the per-type merge of
// its members, mutates/tracks are the OR of its members, and AllowedWith/
// IsValid are the conjunction the spec's tuple composition law requires.
type And2[A any, B any, QA Query[A], QB Query[B]] struct {
	A QA
	B QB
}

func NewAnd2[A any, B any, QA Query[A], QB Query[B]](qa QA, qb QB) And2[A, B, QA, QB] {
	return And2[A, B, QA, QB]{
		A: qa,
		B: qb,
	}
}

func (a And2[A, B, QA, QB]) Mutates() bool { return a.A.Mutates() || a.B.Mutates() }
func (a And2[A, B, QA, QB]) Tracks() bool  { return a.A.Tracks() || a.B.Tracks() }

func (a And2[A, B, QA, QB]) Access(id TypeID) Access {
	var result Access = AccessNone
	result = mergeAccess(result, a.A.Access(id))
	result = mergeAccess(result, a.B.Access(id))
	return result
}

func (a And2[A, B, QA, QB]) AllowedWith(other Descriptor) bool {
	if !a.A.AllowedWith(other) {
		return false
	}
	if !a.B.AllowedWith(other) {
		return false
	}
	return true
}

func (a And2[A, B, QA, QB]) IsValid() bool {
	if !(a.A.IsValid() && a.B.IsValid()) {
		return false
	}
	if !a.A.AllowedWith(a.B) {
		return false
	}
	if !a.B.AllowedWith(a.A) {
		return false
	}
	return true
}

func (a And2[A, B, QA, QB]) SkipArchetype(arch *Archetype, tracks Epoch) bool {
	return a.A.SkipArchetype(arch, tracks) || a.B.SkipArchetype(arch, tracks)
}

func (a And2[A, B, QA, QB]) Fetch(arch *Archetype, tracksEpoch, worldEpoch Epoch) (Fetch[ItemAnd2[A, B]], bool) {
	fA, okA := a.A.Fetch(arch, tracksEpoch, worldEpoch)
	if !okA {
		return nil, false
	}
	fB, okB := a.B.Fetch(arch, tracksEpoch, worldEpoch)
	if !okB {
		return nil, false
	}
	return &fetchAnd2[A, B]{
		A: fA,
		B: fB,
	}, true
}

type fetchAnd2[A any, B any] struct {
	A Fetch[A]
	B Fetch[B]
}

func (f *fetchAnd2[A, B]) SkipChunk(chunkIdx int) bool { return f.A.SkipChunk(chunkIdx) || f.B.SkipChunk(chunkIdx) }
func (f *fetchAnd2[A, B]) SkipItem(row int) bool       { return f.A.SkipItem(row) || f.B.SkipItem(row) }

func (f *fetchAnd2[A, B]) VisitChunk(chunkIdx int) {
	f.A.VisitChunk(chunkIdx)
	f.B.VisitChunk(chunkIdx)
}

func (f *fetchAnd2[A, B]) GetItem(row int) ItemAnd2[A, B] {
	return ItemAnd2[A, B]{
		A: f.A.GetItem(row),
		B: f.B.GetItem(row),
	}
}

// ItemAnd3[A any, B any, C any] is the tuple item yielded by And3.
type ItemAnd3[A any, B any, C any] struct {
	A A
	B B
	C C
}

// And3 composes 3 queries into one: access is the per-type merge of
// its members, mutates/tracks are the OR of its members, and AllowedWith/
// IsValid are the conjunction the spec's tuple composition law requires.
type And3[A any, B any, C any, QA Query[A], QB Query[B], QC Query[C]] struct {
	A QA
	B QB
	C QC
}

func NewAnd3[A any, B any, C any, QA Query[A], QB Query[B], QC Query[C]](qa QA, qb QB, qc QC) And3[A, B, C, QA, QB, QC] {
	return And3[A, B, C, QA, QB, QC]{
		A: qa,
		B: qb,
		C: qc,
	}
}

func (a And3[A, B, C, QA, QB, QC]) Mutates() bool { return a.A.Mutates() || a.B.Mutates() || a.C.Mutates() }
func (a And3[A, B, C, QA, QB, QC]) Tracks() bool  { return a.A.Tracks() || a.B.Tracks() || a.C.Tracks() }

func (a And3[A, B, C, QA, QB, QC]) Access(id TypeID) Access {
	var result Access = AccessNone
	result = mergeAccess(result, a.A.Access(id))
	result = mergeAccess(result, a.B.Access(id))
	result = mergeAccess(result, a.C.Access(id))
	return result
}

func (a And3[A, B, C, QA, QB, QC]) AllowedWith(other Descriptor) bool {
	if !a.A.AllowedWith(other) {
		return false
	}
	if !a.B.AllowedWith(other) {
		return false
	}
	if !a.C.AllowedWith(other) {
		return false
	}
	return true
}

func (a And3[A, B, C, QA, QB, QC]) IsValid() bool {
	if !(a.A.IsValid() && a.B.IsValid() && a.C.IsValid()) {
		return false
	}
	if !a.A.AllowedWith(a.B) {
		return false
	}
	if !a.A.AllowedWith(a.C) {
		return false
	}
	if !a.B.AllowedWith(a.A) {
		return false
	}
	if !a.B.AllowedWith(a.C) {
		return false
	}
	if !a.C.AllowedWith(a.A) {
		return false
	}
	if !a.C.AllowedWith(a.B) {
		return false
	}
	return true
}

func (a And3[A, B, C, QA, QB, QC]) SkipArchetype(arch *Archetype, tracks Epoch) bool {
	return a.A.SkipArchetype(arch, tracks) || a.B.SkipArchetype(arch, tracks) || a.C.SkipArchetype(arch, tracks)
}

func (a And3[A, B, C, QA, QB, QC]) Fetch(arch *Archetype, tracksEpoch, worldEpoch Epoch) (Fetch[ItemAnd3[A, B, C]], bool) {
	fA, okA := a.A.Fetch(arch, tracksEpoch, worldEpoch)
	if !okA {
		return nil, false
	}
	fB, okB := a.B.Fetch(arch, tracksEpoch, worldEpoch)
	if !okB {
		return nil, false
	}
	fC, okC := a.C.Fetch(arch, tracksEpoch, worldEpoch)
	if !okC {
		return nil, false
	}
	return &fetchAnd3[A, B, C]{
		A: fA,
		B: fB,
		C: fC,
	}, true
}

type fetchAnd3[A any, B any, C any] struct {
	A Fetch[A]
	B Fetch[B]
	C Fetch[C]
}

func (f *fetchAnd3[A, B, C]) SkipChunk(chunkIdx int) bool { return f.A.SkipChunk(chunkIdx) || f.B.SkipChunk(chunkIdx) || f.C.SkipChunk(chunkIdx) }
func (f *fetchAnd3[A, B, C]) SkipItem(row int) bool       { return f.A.SkipItem(row) || f.B.SkipItem(row) || f.C.SkipItem(row) }

func (f *fetchAnd3[A, B, C]) VisitChunk(chunkIdx int) {
	f.A.VisitChunk(chunkIdx)
	f.B.VisitChunk(chunkIdx)
	f.C.VisitChunk(chunkIdx)
}

func (f *fetchAnd3[A, B, C]) GetItem(row int) ItemAnd3[A, B, C] {
	return ItemAnd3[A, B, C]{
		A: f.A.GetItem(row),
		B: f.B.GetItem(row),
		C: f.C.GetItem(row),
	}
}

// ItemAnd4[A any, B any, C any, D any] is the tuple item yielded by And4.
type ItemAnd4[A any, B any, C any, D any] struct {
	A A
	B B
	C C
	D D
}

// And4 composes 4 queries into one: access is the per-type merge of
// its members, mutates/tracks are the OR of its members, and AllowedWith/
// IsValid are the conjunction the spec's tuple composition law requires.
type And4[A any, B any, C any, D any, QA Query[A], QB Query[B], QC Query[C], QD Query[D]] struct {
	A QA
	B QB
	C QC
	D QD
}

func NewAnd4[A any, B any, C any, D any, QA Query[A], QB Query[B], QC Query[C], QD Query[D]](qa QA, qb QB, qc QC, qd QD) And4[A, B, C, D, QA, QB, QC, QD] {
	return And4[A, B, C, D, QA, QB, QC, QD]{
		A: qa,
		B: qb,
		C: qc,
		D: qd,
	}
}

func (a And4[A, B, C, D, QA, QB, QC, QD]) Mutates() bool { return a.A.Mutates() || a.B.Mutates() || a.C.Mutates() || a.D.Mutates() }
func (a And4[A, B, C, D, QA, QB, QC, QD]) Tracks() bool  { return a.A.Tracks() || a.B.Tracks() || a.C.Tracks() || a.D.Tracks() }

func (a And4[A, B, C, D, QA, QB, QC, QD]) Access(id TypeID) Access {
	var result Access = AccessNone
	result = mergeAccess(result, a.A.Access(id))
	result = mergeAccess(result, a.B.Access(id))
	result = mergeAccess(result, a.C.Access(id))
	result = mergeAccess(result, a.D.Access(id))
	return result
}

func (a And4[A, B, C, D, QA, QB, QC, QD]) AllowedWith(other Descriptor) bool {
	if !a.A.AllowedWith(other) {
		return false
	}
	if !a.B.AllowedWith(other) {
		return false
	}
	if !a.C.AllowedWith(other) {
		return false
	}
	if !a.D.AllowedWith(other) {
		return false
	}
	return true
}

func (a And4[A, B, C, D, QA, QB, QC, QD]) IsValid() bool {
	if !(a.A.IsValid() && a.B.IsValid() && a.C.IsValid() && a.D.IsValid()) {
		return false
	}
	if !a.A.AllowedWith(a.B) {
		return false
	}
	if !a.A.AllowedWith(a.C) {
		return false
	}
	if !a.A.AllowedWith(a.D) {
		return false
	}
	if !a.B.AllowedWith(a.A) {
		return false
	}
	if !a.B.AllowedWith(a.C) {
		return false
	}
	if !a.B.AllowedWith(a.D) {
		return false
	}
	if !a.C.AllowedWith(a.A) {
		return false
	}
	if !a.C.AllowedWith(a.B) {
		return false
	}
	if !a.C.AllowedWith(a.D) {
		return false
	}
	if !a.D.AllowedWith(a.A) {
		return false
	}
	if !a.D.AllowedWith(a.B) {
		return false
	}
	if !a.D.AllowedWith(a.C) {
		return false
	}
	return true
}

func (a And4[A, B, C, D, QA, QB, QC, QD]) SkipArchetype(arch *Archetype, tracks Epoch) bool {
	return a.A.SkipArchetype(arch, tracks) || a.B.SkipArchetype(arch, tracks) || a.C.SkipArchetype(arch, tracks) || a.D.SkipArchetype(arch, tracks)
}

func (a And4[A, B, C, D, QA, QB, QC, QD]) Fetch(arch *Archetype, tracksEpoch, worldEpoch Epoch) (Fetch[ItemAnd4[A, B, C, D]], bool) {
	fA, okA := a.A.Fetch(arch, tracksEpoch, worldEpoch)
	if !okA {
		return nil, false
	}
	fB, okB := a.B.Fetch(arch, tracksEpoch, worldEpoch)
	if !okB {
		return nil, false
	}
	fC, okC := a.C.Fetch(arch, tracksEpoch, worldEpoch)
	if !okC {
		return nil, false
	}
	fD, okD := a.D.Fetch(arch, tracksEpoch, worldEpoch)
	if !okD {
		return nil, false
	}
	return &fetchAnd4[A, B, C, D]{
		A: fA,
		B: fB,
		C: fC,
		D: fD,
	}, true
}

type fetchAnd4[A any, B any, C any, D any] struct {
	A Fetch[A]
	B Fetch[B]
	C Fetch[C]
	D Fetch[D]
}

func (f *fetchAnd4[A, B, C, D]) SkipChunk(chunkIdx int) bool { return f.A.SkipChunk(chunkIdx) || f.B.SkipChunk(chunkIdx) || f.C.SkipChunk(chunkIdx) || f.D.SkipChunk(chunkIdx) }
func (f *fetchAnd4[A, B, C, D]) SkipItem(row int) bool       { return f.A.SkipItem(row) || f.B.SkipItem(row) || f.C.SkipItem(row) || f.D.SkipItem(row) }

func (f *fetchAnd4[A, B, C, D]) VisitChunk(chunkIdx int) {
	f.A.VisitChunk(chunkIdx)
	f.B.VisitChunk(chunkIdx)
	f.C.VisitChunk(chunkIdx)
	f.D.VisitChunk(chunkIdx)
}

func (f *fetchAnd4[A, B, C, D]) GetItem(row int) ItemAnd4[A, B, C, D] {
	return ItemAnd4[A, B, C, D]{
		A: f.A.GetItem(row),
		B: f.B.GetItem(row),
		C: f.C.GetItem(row),
		D: f.D.GetItem(row),
	}
}

// ItemAnd5[A any, B any, C any, D any, E any] is the tuple item yielded by And5.
type ItemAnd5[A any, B any, C any, D any, E any] struct {
	A A
	B B
	C C
	D D
	E E
}

// And5 composes 5 queries into one: access is the per-type merge of
// its members, mutates/tracks are the OR of its members, and AllowedWith/
// IsValid are the conjunction the spec's tuple composition law requires.
type And5[A any, B any, C any, D any, E any, QA Query[A], QB Query[B], QC Query[C], QD Query[D], QE Query[E]] struct {
	A QA
	B QB
	C QC
	D QD
	E QE
}

func NewAnd5[A any, B any, C any, D any, E any, QA Query[A], QB Query[B], QC Query[C], QD Query[D], QE Query[E]](qa QA, qb QB, qc QC, qd QD, qe QE) And5[A, B, C, D, E, QA, QB, QC, QD, QE] {
	return And5[A, B, C, D, E, QA, QB, QC, QD, QE]{
		A: qa,
		B: qb,
		C: qc,
		D: qd,
		E: qe,
	}
}

func (a And5[A, B, C, D, E, QA, QB, QC, QD, QE]) Mutates() bool { return a.A.Mutates() || a.B.Mutates() || a.C.Mutates() || a.D.Mutates() || a.E.Mutates() }
func (a And5[A, B, C, D, E, QA, QB, QC, QD, QE]) Tracks() bool  { return a.A.Tracks() || a.B.Tracks() || a.C.Tracks() || a.D.Tracks() || a.E.Tracks() }

func (a And5[A, B, C, D, E, QA, QB, QC, QD, QE]) Access(id TypeID) Access {
	var result Access = AccessNone
	result = mergeAccess(result, a.A.Access(id))
	result = mergeAccess(result, a.B.Access(id))
	result = mergeAccess(result, a.C.Access(id))
	result = mergeAccess(result, a.D.Access(id))
	result = mergeAccess(result, a.E.Access(id))
	return result
}

func (a And5[A, B, C, D, E, QA, QB, QC, QD, QE]) AllowedWith(other Descriptor) bool {
	if !a.A.AllowedWith(other) {
		return false
	}
	if !a.B.AllowedWith(other) {
		return false
	}
	if !a.C.AllowedWith(other) {
		return false
	}
	if !a.D.AllowedWith(other) {
		return false
	}
	if !a.E.AllowedWith(other) {
		return false
	}
	return true
}

func (a And5[A, B, C, D, E, QA, QB, QC, QD, QE]) IsValid() bool {
	if !(a.A.IsValid() && a.B.IsValid() && a.C.IsValid() && a.D.IsValid() && a.E.IsValid()) {
		return false
	}
	if !a.A.AllowedWith(a.B) {
		return false
	}
	if !a.A.AllowedWith(a.C) {
		return false
	}
	if !a.A.AllowedWith(a.D) {
		return false
	}
	if !a.A.AllowedWith(a.E) {
		return false
	}
	if !a.B.AllowedWith(a.A) {
		return false
	}
	if !a.B.AllowedWith(a.C) {
		return false
	}
	if !a.B.AllowedWith(a.D) {
		return false
	}
	if !a.B.AllowedWith(a.E) {
		return false
	}
	if !a.C.AllowedWith(a.A) {
		return false
	}
	if !a.C.AllowedWith(a.B) {
		return false
	}
	if !a.C.AllowedWith(a.D) {
		return false
	}
	if !a.C.AllowedWith(a.E) {
		return false
	}
	if !a.D.AllowedWith(a.A) {
		return false
	}
	if !a.D.AllowedWith(a.B) {
		return false
	}
	if !a.D.AllowedWith(a.C) {
		return false
	}
	if !a.D.AllowedWith(a.E) {
		return false
	}
	if !a.E.AllowedWith(a.A) {
		return false
	}
	if !a.E.AllowedWith(a.B) {
		return false
	}
	if !a.E.AllowedWith(a.C) {
		return false
	}
	if !a.E.AllowedWith(a.D) {
		return false
	}
	return true
}

func (a And5[A, B, C, D, E, QA, QB, QC, QD, QE]) SkipArchetype(arch *Archetype, tracks Epoch) bool {
	return a.A.SkipArchetype(arch, tracks) || a.B.SkipArchetype(arch, tracks) || a.C.SkipArchetype(arch, tracks) || a.D.SkipArchetype(arch, tracks) || a.E.SkipArchetype(arch, tracks)
}

func (a And5[A, B, C, D, E, QA, QB, QC, QD, QE]) Fetch(arch *Archetype, tracksEpoch, worldEpoch Epoch) (Fetch[ItemAnd5[A, B, C, D, E]], bool) {
	fA, okA := a.A.Fetch(arch, tracksEpoch, worldEpoch)
	if !okA {
		return nil, false
	}
	fB, okB := a.B.Fetch(arch, tracksEpoch, worldEpoch)
	if !okB {
		return nil, false
	}
	fC, okC := a.C.Fetch(arch, tracksEpoch, worldEpoch)
	if !okC {
		return nil, false
	}
	fD, okD := a.D.Fetch(arch, tracksEpoch, worldEpoch)
	if !okD {
		return nil, false
	}
	fE, okE := a.E.Fetch(arch, tracksEpoch, worldEpoch)
	if !okE {
		return nil, false
	}
	return &fetchAnd5[A, B, C, D, E]{
		A: fA,
		B: fB,
		C: fC,
		D: fD,
		E: fE,
	}, true
}

type fetchAnd5[A any, B any, C any, D any, E any] struct {
	A Fetch[A]
	B Fetch[B]
	C Fetch[C]
	D Fetch[D]
	E Fetch[E]
}

func (f *fetchAnd5[A, B, C, D, E]) SkipChunk(chunkIdx int) bool { return f.A.SkipChunk(chunkIdx) || f.B.SkipChunk(chunkIdx) || f.C.SkipChunk(chunkIdx) || f.D.SkipChunk(chunkIdx) || f.E.SkipChunk(chunkIdx) }
func (f *fetchAnd5[A, B, C, D, E]) SkipItem(row int) bool       { return f.A.SkipItem(row) || f.B.SkipItem(row) || f.C.SkipItem(row) || f.D.SkipItem(row) || f.E.SkipItem(row) }

func (f *fetchAnd5[A, B, C, D, E]) VisitChunk(chunkIdx int) {
	f.A.VisitChunk(chunkIdx)
	f.B.VisitChunk(chunkIdx)
	f.C.VisitChunk(chunkIdx)
	f.D.VisitChunk(chunkIdx)
	f.E.VisitChunk(chunkIdx)
}

func (f *fetchAnd5[A, B, C, D, E]) GetItem(row int) ItemAnd5[A, B, C, D, E] {
	return ItemAnd5[A, B, C, D, E]{
		A: f.A.GetItem(row),
		B: f.B.GetItem(row),
		C: f.C.GetItem(row),
		D: f.D.GetItem(row),
		E: f.E.GetItem(row),
	}
}

// ItemAnd6[A any, B any, C any, D any, E any, F any] is the tuple item yielded by And6.
type ItemAnd6[A any, B any, C any, D any, E any, F any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
}

// And6 composes 6 queries into one: access is the per-type merge of
// its members, mutates/tracks are the OR of its members, and AllowedWith/
// IsValid are the conjunction the spec's tuple composition law requires.
type And6[A any, B any, C any, D any, E any, F any, QA Query[A], QB Query[B], QC Query[C], QD Query[D], QE Query[E], QF Query[F]] struct {
	A QA
	B QB
	C QC
	D QD
	E QE
	F QF
}

func NewAnd6[A any, B any, C any, D any, E any, F any, QA Query[A], QB Query[B], QC Query[C], QD Query[D], QE Query[E], QF Query[F]](qa QA, qb QB, qc QC, qd QD, qe QE, qf QF) And6[A, B, C, D, E, F, QA, QB, QC, QD, QE, QF] {
	return And6[A, B, C, D, E, F, QA, QB, QC, QD, QE, QF]{
		A: qa,
		B: qb,
		C: qc,
		D: qd,
		E: qe,
		F: qf,
	}
}

func (a And6[A, B, C, D, E, F, QA, QB, QC, QD, QE, QF]) Mutates() bool { return a.A.Mutates() || a.B.Mutates() || a.C.Mutates() || a.D.Mutates() || a.E.Mutates() || a.F.Mutates() }
func (a And6[A, B, C, D, E, F, QA, QB, QC, QD, QE, QF]) Tracks() bool  { return a.A.Tracks() || a.B.Tracks() || a.C.Tracks() || a.D.Tracks() || a.E.Tracks() || a.F.Tracks() }

func (a And6[A, B, C, D, E, F, QA, QB, QC, QD, QE, QF]) Access(id TypeID) Access {
	var result Access = AccessNone
	result = mergeAccess(result, a.A.Access(id))
	result = mergeAccess(result, a.B.Access(id))
	result = mergeAccess(result, a.C.Access(id))
	result = mergeAccess(result, a.D.Access(id))
	result = mergeAccess(result, a.E.Access(id))
	result = mergeAccess(result, a.F.Access(id))
	return result
}

func (a And6[A, B, C, D, E, F, QA, QB, QC, QD, QE, QF]) AllowedWith(other Descriptor) bool {
	if !a.A.AllowedWith(other) {
		return false
	}
	if !a.B.AllowedWith(other) {
		return false
	}
	if !a.C.AllowedWith(other) {
		return false
	}
	if !a.D.AllowedWith(other) {
		return false
	}
	if !a.E.AllowedWith(other) {
		return false
	}
	if !a.F.AllowedWith(other) {
		return false
	}
	return true
}

func (a And6[A, B, C, D, E, F, QA, QB, QC, QD, QE, QF]) IsValid() bool {
	if !(a.A.IsValid() && a.B.IsValid() && a.C.IsValid() && a.D.IsValid() && a.E.IsValid() && a.F.IsValid()) {
		return false
	}
	if !a.A.AllowedWith(a.B) {
		return false
	}
	if !a.A.AllowedWith(a.C) {
		return false
	}
	if !a.A.AllowedWith(a.D) {
		return false
	}
	if !a.A.AllowedWith(a.E) {
		return false
	}
	if !a.A.AllowedWith(a.F) {
		return false
	}
	if !a.B.AllowedWith(a.A) {
		return false
	}
	if !a.B.AllowedWith(a.C) {
		return false
	}
	if !a.B.AllowedWith(a.D) {
		return false
	}
	if !a.B.AllowedWith(a.E) {
		return false
	}
	if !a.B.AllowedWith(a.F) {
		return false
	}
	if !a.C.AllowedWith(a.A) {
		return false
	}
	if !a.C.AllowedWith(a.B) {
		return false
	}
	if !a.C.AllowedWith(a.D) {
		return false
	}
	if !a.C.AllowedWith(a.E) {
		return false
	}
	if !a.C.AllowedWith(a.F) {
		return false
	}
	if !a.D.AllowedWith(a.A) {
		return false
	}
	if !a.D.AllowedWith(a.B) {
		return false
	}
	if !a.D.AllowedWith(a.C) {
		return false
	}
	if !a.D.AllowedWith(a.E) {
		return false
	}
	if !a.D.AllowedWith(a.F) {
		return false
	}
	if !a.E.AllowedWith(a.A) {
		return false
	}
	if !a.E.AllowedWith(a.B) {
		return false
	}
	if !a.E.AllowedWith(a.C) {
		return false
	}
	if !a.E.AllowedWith(a.D) {
		return false
	}
	if !a.E.AllowedWith(a.F) {
		return false
	}
	if !a.F.AllowedWith(a.A) {
		return false
	}
	if !a.F.AllowedWith(a.B) {
		return false
	}
	if !a.F.AllowedWith(a.C) {
		return false
	}
	if !a.F.AllowedWith(a.D) {
		return false
	}
	if !a.F.AllowedWith(a.E) {
		return false
	}
	return true
}

func (a And6[A, B, C, D, E, F, QA, QB, QC, QD, QE, QF]) SkipArchetype(arch *Archetype, tracks Epoch) bool {
	return a.A.SkipArchetype(arch, tracks) || a.B.SkipArchetype(arch, tracks) || a.C.SkipArchetype(arch, tracks) || a.D.SkipArchetype(arch, tracks) || a.E.SkipArchetype(arch, tracks) || a.F.SkipArchetype(arch, tracks)
}

func (a And6[A, B, C, D, E, F, QA, QB, QC, QD, QE, QF]) Fetch(arch *Archetype, tracksEpoch, worldEpoch Epoch) (Fetch[ItemAnd6[A, B, C, D, E, F]], bool) {
	fA, okA := a.A.Fetch(arch, tracksEpoch, worldEpoch)
	if !okA {
		return nil, false
	}
	fB, okB := a.B.Fetch(arch, tracksEpoch, worldEpoch)
	if !okB {
		return nil, false
	}
	fC, okC := a.C.Fetch(arch, tracksEpoch, worldEpoch)
	if !okC {
		return nil, false
	}
	fD, okD := a.D.Fetch(arch, tracksEpoch, worldEpoch)
	if !okD {
		return nil, false
	}
	fE, okE := a.E.Fetch(arch, tracksEpoch, worldEpoch)
	if !okE {
		return nil, false
	}
	fF, okF := a.F.Fetch(arch, tracksEpoch, worldEpoch)
	if !okF {
		return nil, false
	}
	return &fetchAnd6[A, B, C, D, E, F]{
		A: fA,
		B: fB,
		C: fC,
		D: fD,
		E: fE,
		F: fF,
	}, true
}

type fetchAnd6[A any, B any, C any, D any, E any, F any] struct {
	A Fetch[A]
	B Fetch[B]
	C Fetch[C]
	D Fetch[D]
	E Fetch[E]
	F Fetch[F]
}

func (f *fetchAnd6[A, B, C, D, E, F]) SkipChunk(chunkIdx int) bool { return f.A.SkipChunk(chunkIdx) || f.B.SkipChunk(chunkIdx) || f.C.SkipChunk(chunkIdx) || f.D.SkipChunk(chunkIdx) || f.E.SkipChunk(chunkIdx) || f.F.SkipChunk(chunkIdx) }
func (f *fetchAnd6[A, B, C, D, E, F]) SkipItem(row int) bool       { return f.A.SkipItem(row) || f.B.SkipItem(row) || f.C.SkipItem(row) || f.D.SkipItem(row) || f.E.SkipItem(row) || f.F.SkipItem(row) }

func (f *fetchAnd6[A, B, C, D, E, F]) VisitChunk(chunkIdx int) {
	f.A.VisitChunk(chunkIdx)
	f.B.VisitChunk(chunkIdx)
	f.C.VisitChunk(chunkIdx)
	f.D.VisitChunk(chunkIdx)
	f.E.VisitChunk(chunkIdx)
	f.F.VisitChunk(chunkIdx)
}

func (f *fetchAnd6[A, B, C, D, E, F]) GetItem(row int) ItemAnd6[A, B, C, D, E, F] {
	return ItemAnd6[A, B, C, D, E, F]{
		A: f.A.GetItem(row),
		B: f.B.GetItem(row),
		C: f.C.GetItem(row),
		D: f.D.GetItem(row),
		E: f.E.GetItem(row),
		F: f.F.GetItem(row),
	}
}

// ItemAnd7[A any, B any, C any, D any, E any, F any, G any] is the tuple item yielded by And7.
type ItemAnd7[A any, B any, C any, D any, E any, F any, G any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
	G G
}

// And7 composes 7 queries into one: access is the per-type merge of
// its members, mutates/tracks are the OR of its members, and AllowedWith/
// IsValid are the conjunction the spec's tuple composition law requires.
type And7[A any, B any, C any, D any, E any, F any, G any, QA Query[A], QB Query[B], QC Query[C], QD Query[D], QE Query[E], QF Query[F], QG Query[G]] struct {
	A QA
	B QB
	C QC
	D QD
	E QE
	F QF
	G QG
}

func NewAnd7[A any, B any, C any, D any, E any, F any, G any, QA Query[A], QB Query[B], QC Query[C], QD Query[D], QE Query[E], QF Query[F], QG Query[G]](qa QA, qb QB, qc QC, qd QD, qe QE, qf QF, qg QG) And7[A, B, C, D, E, F, G, QA, QB, QC, QD, QE, QF, QG] {
	return And7[A, B, C, D, E, F, G, QA, QB, QC, QD, QE, QF, QG]{
		A: qa,
		B: qb,
		C: qc,
		D: qd,
		E: qe,
		F: qf,
		G: qg,
	}
}

func (a And7[A, B, C, D, E, F, G, QA, QB, QC, QD, QE, QF, QG]) Mutates() bool { return a.A.Mutates() || a.B.Mutates() || a.C.Mutates() || a.D.Mutates() || a.E.Mutates() || a.F.Mutates() || a.G.Mutates() }
func (a And7[A, B, C, D, E, F, G, QA, QB, QC, QD, QE, QF, QG]) Tracks() bool  { return a.A.Tracks() || a.B.Tracks() || a.C.Tracks() || a.D.Tracks() || a.E.Tracks() || a.F.Tracks() || a.G.Tracks() }

func (a And7[A, B, C, D, E, F, G, QA, QB, QC, QD, QE, QF, QG]) Access(id TypeID) Access {
	var result Access = AccessNone
	result = mergeAccess(result, a.A.Access(id))
	result = mergeAccess(result, a.B.Access(id))
	result = mergeAccess(result, a.C.Access(id))
	result = mergeAccess(result, a.D.Access(id))
	result = mergeAccess(result, a.E.Access(id))
	result = mergeAccess(result, a.F.Access(id))
	result = mergeAccess(result, a.G.Access(id))
	return result
}

func (a And7[A, B, C, D, E, F, G, QA, QB, QC, QD, QE, QF, QG]) AllowedWith(other Descriptor) bool {
	if !a.A.AllowedWith(other) {
		return false
	}
	if !a.B.AllowedWith(other) {
		return false
	}
	if !a.C.AllowedWith(other) {
		return false
	}
	if !a.D.AllowedWith(other) {
		return false
	}
	if !a.E.AllowedWith(other) {
		return false
	}
	if !a.F.AllowedWith(other) {
		return false
	}
	if !a.G.AllowedWith(other) {
		return false
	}
	return true
}

func (a And7[A, B, C, D, E, F, G, QA, QB, QC, QD, QE, QF, QG]) IsValid() bool {
	if !(a.A.IsValid() && a.B.IsValid() && a.C.IsValid() && a.D.IsValid() && a.E.IsValid() && a.F.IsValid() && a.G.IsValid()) {
		return false
	}
	if !a.A.AllowedWith(a.B) {
		return false
	}
	if !a.A.AllowedWith(a.C) {
		return false
	}
	if !a.A.AllowedWith(a.D) {
		return false
	}
	if !a.A.AllowedWith(a.E) {
		return false
	}
	if !a.A.AllowedWith(a.F) {
		return false
	}
	if !a.A.AllowedWith(a.G) {
		return false
	}
	if !a.B.AllowedWith(a.A) {
		return false
	}
	if !a.B.AllowedWith(a.C) {
		return false
	}
	if !a.B.AllowedWith(a.D) {
		return false
	}
	if !a.B.AllowedWith(a.E) {
		return false
	}
	if !a.B.AllowedWith(a.F) {
		return false
	}
	if !a.B.AllowedWith(a.G) {
		return false
	}
	if !a.C.AllowedWith(a.A) {
		return false
	}
	if !a.C.AllowedWith(a.B) {
		return false
	}
	if !a.C.AllowedWith(a.D) {
		return false
	}
	if !a.C.AllowedWith(a.E) {
		return false
	}
	if !a.C.AllowedWith(a.F) {
		return false
	}
	if !a.C.AllowedWith(a.G) {
		return false
	}
	if !a.D.AllowedWith(a.A) {
		return false
	}
	if !a.D.AllowedWith(a.B) {
		return false
	}
	if !a.D.AllowedWith(a.C) {
		return false
	}
	if !a.D.AllowedWith(a.E) {
		return false
	}
	if !a.D.AllowedWith(a.F) {
		return false
	}
	if !a.D.AllowedWith(a.G) {
		return false
	}
	if !a.E.AllowedWith(a.A) {
		return false
	}
	if !a.E.AllowedWith(a.B) {
		return false
	}
	if !a.E.AllowedWith(a.C) {
		return false
	}
	if !a.E.AllowedWith(a.D) {
		return false
	}
	if !a.E.AllowedWith(a.F) {
		return false
	}
	if !a.E.AllowedWith(a.G) {
		return false
	}
	if !a.F.AllowedWith(a.A) {
		return false
	}
	if !a.F.AllowedWith(a.B) {
		return false
	}
	if !a.F.AllowedWith(a.C) {
		return false
	}
	if !a.F.AllowedWith(a.D) {
		return false
	}
	if !a.F.AllowedWith(a.E) {
		return false
	}
	if !a.F.AllowedWith(a.G) {
		return false
	}
	if !a.G.AllowedWith(a.A) {
		return false
	}
	if !a.G.AllowedWith(a.B) {
		return false
	}
	if !a.G.AllowedWith(a.C) {
		return false
	}
	if !a.G.AllowedWith(a.D) {
		return false
	}
	if !a.G.AllowedWith(a.E) {
		return false
	}
	if !a.G.AllowedWith(a.F) {
		return false
	}
	return true
}

func (a And7[A, B, C, D, E, F, G, QA, QB, QC, QD, QE, QF, QG]) SkipArchetype(arch *Archetype, tracks Epoch) bool {
	return a.A.SkipArchetype(arch, tracks) || a.B.SkipArchetype(arch, tracks) || a.C.SkipArchetype(arch, tracks) || a.D.SkipArchetype(arch, tracks) || a.E.SkipArchetype(arch, tracks) || a.F.SkipArchetype(arch, tracks) || a.G.SkipArchetype(arch, tracks)
}

func (a And7[A, B, C, D, E, F, G, QA, QB, QC, QD, QE, QF, QG]) Fetch(arch *Archetype, tracksEpoch, worldEpoch Epoch) (Fetch[ItemAnd7[A, B, C, D, E, F, G]], bool) {
	fA, okA := a.A.Fetch(arch, tracksEpoch, worldEpoch)
	if !okA {
		return nil, false
	}
	fB, okB := a.B.Fetch(arch, tracksEpoch, worldEpoch)
	if !okB {
		return nil, false
	}
	fC, okC := a.C.Fetch(arch, tracksEpoch, worldEpoch)
	if !okC {
		return nil, false
	}
	fD, okD := a.D.Fetch(arch, tracksEpoch, worldEpoch)
	if !okD {
		return nil, false
	}
	fE, okE := a.E.Fetch(arch, tracksEpoch, worldEpoch)
	if !okE {
		return nil, false
	}
	fF, okF := a.F.Fetch(arch, tracksEpoch, worldEpoch)
	if !okF {
		return nil, false
	}
	fG, okG := a.G.Fetch(arch, tracksEpoch, worldEpoch)
	if !okG {
		return nil, false
	}
	return &fetchAnd7[A, B, C, D, E, F, G]{
		A: fA,
		B: fB,
		C: fC,
		D: fD,
		E: fE,
		F: fF,
		G: fG,
	}, true
}

type fetchAnd7[A any, B any, C any, D any, E any, F any, G any] struct {
	A Fetch[A]
	B Fetch[B]
	C Fetch[C]
	D Fetch[D]
	E Fetch[E]
	F Fetch[F]
	G Fetch[G]
}

func (f *fetchAnd7[A, B, C, D, E, F, G]) SkipChunk(chunkIdx int) bool { return f.A.SkipChunk(chunkIdx) || f.B.SkipChunk(chunkIdx) || f.C.SkipChunk(chunkIdx) || f.D.SkipChunk(chunkIdx) || f.E.SkipChunk(chunkIdx) || f.F.SkipChunk(chunkIdx) || f.G.SkipChunk(chunkIdx) }
func (f *fetchAnd7[A, B, C, D, E, F, G]) SkipItem(row int) bool       { return f.A.SkipItem(row) || f.B.SkipItem(row) || f.C.SkipItem(row) || f.D.SkipItem(row) || f.E.SkipItem(row) || f.F.SkipItem(row) || f.G.SkipItem(row) }

func (f *fetchAnd7[A, B, C, D, E, F, G]) VisitChunk(chunkIdx int) {
	f.A.VisitChunk(chunkIdx)
	f.B.VisitChunk(chunkIdx)
	f.C.VisitChunk(chunkIdx)
	f.D.VisitChunk(chunkIdx)
	f.E.VisitChunk(chunkIdx)
	f.F.VisitChunk(chunkIdx)
	f.G.VisitChunk(chunkIdx)
}

func (f *fetchAnd7[A, B, C, D, E, F, G]) GetItem(row int) ItemAnd7[A, B, C, D, E, F, G] {
	return ItemAnd7[A, B, C, D, E, F, G]{
		A: f.A.GetItem(row),
		B: f.B.GetItem(row),
		C: f.C.GetItem(row),
		D: f.D.GetItem(row),
		E: f.E.GetItem(row),
		F: f.F.GetItem(row),
		G: f.G.GetItem(row),
	}
}

// ItemAnd8[A any, B any, C any, D any, E any, F any, G any, H any] is the tuple item yielded by And8.
type ItemAnd8[A any, B any, C any, D any, E any, F any, G any, H any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
	G G
	H H
}

// And8 composes 8 queries into one: access is the per-type merge of
// its members, mutates/tracks are the OR of its members, and AllowedWith/
// IsValid are the conjunction the spec's tuple composition law requires.
type And8[A any, B any, C any, D any, E any, F any, G any, H any, QA Query[A], QB Query[B], QC Query[C], QD Query[D], QE Query[E], QF Query[F], QG Query[G], QH Query[H]] struct {
	A QA
	B QB
	C QC
	D QD
	E QE
	F QF
	G QG
	H QH
}

func NewAnd8[A any, B any, C any, D any, E any, F any, G any, H any, QA Query[A], QB Query[B], QC Query[C], QD Query[D], QE Query[E], QF Query[F], QG Query[G], QH Query[H]](qa QA, qb QB, qc QC, qd QD, qe QE, qf QF, qg QG, qh QH) And8[A, B, C, D, E, F, G, H, QA, QB, QC, QD, QE, QF, QG, QH] {
	return And8[A, B, C, D, E, F, G, H, QA, QB, QC, QD, QE, QF, QG, QH]{
		A: qa,
		B: qb,
		C: qc,
		D: qd,
		E: qe,
		F: qf,
		G: qg,
		H: qh,
	}
}

func (a And8[A, B, C, D, E, F, G, H, QA, QB, QC, QD, QE, QF, QG, QH]) Mutates() bool { return a.A.Mutates() || a.B.Mutates() || a.C.Mutates() || a.D.Mutates() || a.E.Mutates() || a.F.Mutates() || a.G.Mutates() || a.H.Mutates() }
func (a And8[A, B, C, D, E, F, G, H, QA, QB, QC, QD, QE, QF, QG, QH]) Tracks() bool  { return a.A.Tracks() || a.B.Tracks() || a.C.Tracks() || a.D.Tracks() || a.E.Tracks() || a.F.Tracks() || a.G.Tracks() || a.H.Tracks() }

func (a And8[A, B, C, D, E, F, G, H, QA, QB, QC, QD, QE, QF, QG, QH]) Access(id TypeID) Access {
	var result Access = AccessNone
	result = mergeAccess(result, a.A.Access(id))
	result = mergeAccess(result, a.B.Access(id))
	result = mergeAccess(result, a.C.Access(id))
	result = mergeAccess(result, a.D.Access(id))
	result = mergeAccess(result, a.E.Access(id))
	result = mergeAccess(result, a.F.Access(id))
	result = mergeAccess(result, a.G.Access(id))
	result = mergeAccess(result, a.H.Access(id))
	return result
}

func (a And8[A, B, C, D, E, F, G, H, QA, QB, QC, QD, QE, QF, QG, QH]) AllowedWith(other Descriptor) bool {
	if !a.A.AllowedWith(other) {
		return false
	}
	if !a.B.AllowedWith(other) {
		return false
	}
	if !a.C.AllowedWith(other) {
		return false
	}
	if !a.D.AllowedWith(other) {
		return false
	}
	if !a.E.AllowedWith(other) {
		return false
	}
	if !a.F.AllowedWith(other) {
		return false
	}
	if !a.G.AllowedWith(other) {
		return false
	}
	if !a.H.AllowedWith(other) {
		return false
	}
	return true
}

func (a And8[A, B, C, D, E, F, G, H, QA, QB, QC, QD, QE, QF, QG, QH]) IsValid() bool {
	if !(a.A.IsValid() && a.B.IsValid() && a.C.IsValid() && a.D.IsValid() && a.E.IsValid() && a.F.IsValid() && a.G.IsValid() && a.H.IsValid()) {
		return false
	}
	if !a.A.AllowedWith(a.B) {
		return false
	}
	if !a.A.AllowedWith(a.C) {
		return false
	}
	if !a.A.AllowedWith(a.D) {
		return false
	}
	if !a.A.AllowedWith(a.E) {
		return false
	}
	if !a.A.AllowedWith(a.F) {
		return false
	}
	if !a.A.AllowedWith(a.G) {
		return false
	}
	if !a.A.AllowedWith(a.H) {
		return false
	}
	if !a.B.AllowedWith(a.A) {
		return false
	}
	if !a.B.AllowedWith(a.C) {
		return false
	}
	if !a.B.AllowedWith(a.D) {
		return false
	}
	if !a.B.AllowedWith(a.E) {
		return false
	}
	if !a.B.AllowedWith(a.F) {
		return false
	}
	if !a.B.AllowedWith(a.G) {
		return false
	}
	if !a.B.AllowedWith(a.H) {
		return false
	}
	if !a.C.AllowedWith(a.A) {
		return false
	}
	if !a.C.AllowedWith(a.B) {
		return false
	}
	if !a.C.AllowedWith(a.D) {
		return false
	}
	if !a.C.AllowedWith(a.E) {
		return false
	}
	if !a.C.AllowedWith(a.F) {
		return false
	}
	if !a.C.AllowedWith(a.G) {
		return false
	}
	if !a.C.AllowedWith(a.H) {
		return false
	}
	if !a.D.AllowedWith(a.A) {
		return false
	}
	if !a.D.AllowedWith(a.B) {
		return false
	}
	if !a.D.AllowedWith(a.C) {
		return false
	}
	if !a.D.AllowedWith(a.E) {
		return false
	}
	if !a.D.AllowedWith(a.F) {
		return false
	}
	if !a.D.AllowedWith(a.G) {
		return false
	}
	if !a.D.AllowedWith(a.H) {
		return false
	}
	if !a.E.AllowedWith(a.A) {
		return false
	}
	if !a.E.AllowedWith(a.B) {
		return false
	}
	if !a.E.AllowedWith(a.C) {
		return false
	}
	if !a.E.AllowedWith(a.D) {
		return false
	}
	if !a.E.AllowedWith(a.F) {
		return false
	}
	if !a.E.AllowedWith(a.G) {
		return false
	}
	if !a.E.AllowedWith(a.H) {
		return false
	}
	if !a.F.AllowedWith(a.A) {
		return false
	}
	if !a.F.AllowedWith(a.B) {
		return false
	}
	if !a.F.AllowedWith(a.C) {
		return false
	}
	if !a.F.AllowedWith(a.D) {
		return false
	}
	if !a.F.AllowedWith(a.E) {
		return false
	}
	if !a.F.AllowedWith(a.G) {
		return false
	}
	if !a.F.AllowedWith(a.H) {
		return false
	}
	if !a.G.AllowedWith(a.A) {
		return false
	}
	if !a.G.AllowedWith(a.B) {
		return false
	}
	if !a.G.AllowedWith(a.C) {
		return false
	}
	if !a.G.AllowedWith(a.D) {
		return false
	}
	if !a.G.AllowedWith(a.E) {
		return false
	}
	if !a.G.AllowedWith(a.F) {
		return false
	}
	if !a.G.AllowedWith(a.H) {
		return false
	}
	if !a.H.AllowedWith(a.A) {
		return false
	}
	if !a.H.AllowedWith(a.B) {
		return false
	}
	if !a.H.AllowedWith(a.C) {
		return false
	}
	if !a.H.AllowedWith(a.D) {
		return false
	}
	if !a.H.AllowedWith(a.E) {
		return false
	}
	if !a.H.AllowedWith(a.F) {
		return false
	}
	if !a.H.AllowedWith(a.G) {
		return false
	}
	return true
}

func (a And8[A, B, C, D, E, F, G, H, QA, QB, QC, QD, QE, QF, QG, QH]) SkipArchetype(arch *Archetype, tracks Epoch) bool {
	return a.A.SkipArchetype(arch, tracks) || a.B.SkipArchetype(arch, tracks) || a.C.SkipArchetype(arch, tracks) || a.D.SkipArchetype(arch, tracks) || a.E.SkipArchetype(arch, tracks) || a.F.SkipArchetype(arch, tracks) || a.G.SkipArchetype(arch, tracks) || a.H.SkipArchetype(arch, tracks)
}

func (a And8[A, B, C, D, E, F, G, H, QA, QB, QC, QD, QE, QF, QG, QH]) Fetch(arch *Archetype, tracksEpoch, worldEpoch Epoch) (Fetch[ItemAnd8[A, B, C, D, E, F, G, H]], bool) {
	fA, okA := a.A.Fetch(arch, tracksEpoch, worldEpoch)
	if !okA {
		return nil, false
	}
	fB, okB := a.B.Fetch(arch, tracksEpoch, worldEpoch)
	if !okB {
		return nil, false
	}
	fC, okC := a.C.Fetch(arch, tracksEpoch, worldEpoch)
	if !okC {
		return nil, false
	}
	fD, okD := a.D.Fetch(arch, tracksEpoch, worldEpoch)
	if !okD {
		return nil, false
	}
	fE, okE := a.E.Fetch(arch, tracksEpoch, worldEpoch)
	if !okE {
		return nil, false
	}
	fF, okF := a.F.Fetch(arch, tracksEpoch, worldEpoch)
	if !okF {
		return nil, false
	}
	fG, okG := a.G.Fetch(arch, tracksEpoch, worldEpoch)
	if !okG {
		return nil, false
	}
	fH, okH := a.H.Fetch(arch, tracksEpoch, worldEpoch)
	if !okH {
		return nil, false
	}
	return &fetchAnd8[A, B, C, D, E, F, G, H]{
		A: fA,
		B: fB,
		C: fC,
		D: fD,
		E: fE,
		F: fF,
		G: fG,
		H: fH,
	}, true
}

type fetchAnd8[A any, B any, C any, D any, E any, F any, G any, H any] struct {
	A Fetch[A]
	B Fetch[B]
	C Fetch[C]
	D Fetch[D]
	E Fetch[E]
	F Fetch[F]
	G Fetch[G]
	H Fetch[H]
}

func (f *fetchAnd8[A, B, C, D, E, F, G, H]) SkipChunk(chunkIdx int) bool { return f.A.SkipChunk(chunkIdx) || f.B.SkipChunk(chunkIdx) || f.C.SkipChunk(chunkIdx) || f.D.SkipChunk(chunkIdx) || f.E.SkipChunk(chunkIdx) || f.F.SkipChunk(chunkIdx) || f.G.SkipChunk(chunkIdx) || f.H.SkipChunk(chunkIdx) }
func (f *fetchAnd8[A, B, C, D, E, F, G, H]) SkipItem(row int) bool       { return f.A.SkipItem(row) || f.B.SkipItem(row) || f.C.SkipItem(row) || f.D.SkipItem(row) || f.E.SkipItem(row) || f.F.SkipItem(row) || f.G.SkipItem(row) || f.H.SkipItem(row) }

func (f *fetchAnd8[A, B, C, D, E, F, G, H]) VisitChunk(chunkIdx int) {
	f.A.VisitChunk(chunkIdx)
	f.B.VisitChunk(chunkIdx)
	f.C.VisitChunk(chunkIdx)
	f.D.VisitChunk(chunkIdx)
	f.E.VisitChunk(chunkIdx)
	f.F.VisitChunk(chunkIdx)
	f.G.VisitChunk(chunkIdx)
	f.H.VisitChunk(chunkIdx)
}

func (f *fetchAnd8[A, B, C, D, E, F, G, H]) GetItem(row int) ItemAnd8[A, B, C, D, E, F, G, H] {
	return ItemAnd8[A, B, C, D, E, F, G, H]{
		A: f.A.GetItem(row),
		B: f.B.GetItem(row),
		C: f.C.GetItem(row),
		D: f.D.GetItem(row),
		E: f.E.GetItem(row),
		F: f.F.GetItem(row),
		G: f.G.GetItem(row),
		H: f.H.GetItem(row),
	}
}
