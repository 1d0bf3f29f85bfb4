package archetype

// RefMut is the handle yielded by an Alt[T] query: it looks like a mutable
// reference but only stamps entity/chunk/column versions on the row it
// covers when the caller actually dereferences it mutably via GetMut. A
// caller that only calls Get never advances any version, even though the
// query itself is declared as mutating for alias-safety purposes.
type RefMut[T any] struct {
	ptr      *T
	col      *ComponentData
	row      int
	chunkIdx int
	epoch    Epoch
}

// Get returns the value without recording a change.
func (r *RefMut[T]) Get() *T { return r.ptr }

// GetMut stamps this row's entity version, its chunk's chunk version, and
// the column's version to the fetch's epoch, then returns the value.
func (r *RefMut[T]) GetMut() *T {
	r.col.setEntityVersion(r.row, r.epoch)
	r.col.raiseChunkVersion(r.chunkIdx, r.epoch)
	r.col.raiseVersion(r.epoch)
	return r.ptr
}

// Alt is the built-in "Alt<T>" query: declared mutable for alias-safety
// purposes (it competes with Write[T] and other Alt[T] for the column) but
// only actually stamps change-tracking versions when the caller dereferences
// the yielded RefMut mutably.
type Alt[T any] struct{}

func NewAlt[T any]() Alt[T] { return Alt[T]{} }

func (Alt[T]) Mutates() bool { return true }
func (Alt[T]) Tracks() bool  { return false }

func (Alt[T]) Access(id TypeID) Access {
	if id == typeIDOf[T]() {
		return AccessMutable
	}
	return AccessNone
}

func (a Alt[T]) AllowedWith(other Descriptor) bool {
	return accessAllowedWith(AccessMutable, other.Access(typeIDOf[T]()))
}

func (Alt[T]) IsValid() bool { return true }

// ColumnType reports the single component type this query touches, used by
// Modified to locate the column it must consult for skip decisions.
func (Alt[T]) ColumnType() TypeID { return typeIDOf[T]() }

func (Alt[T]) SkipArchetype(a *Archetype, tracks Epoch) bool {
	return !a.Contains(typeIDOf[T]())
}

func (Alt[T]) Fetch(a *Archetype, tracksEpoch, worldEpoch Epoch) (Fetch[*RefMut[T]], bool) {
	col := a.column(typeIDOf[T]())
	if col == nil {
		return nil, false
	}
	return &fetchAlt[T]{col: col, epoch: worldEpoch}, true
}

type fetchAlt[T any] struct {
	col   *ComponentData
	epoch Epoch
}

func (f *fetchAlt[T]) SkipChunk(chunkIdx int) bool { return false }
func (f *fetchAlt[T]) SkipItem(row int) bool       { return false }
func (f *fetchAlt[T]) VisitChunk(chunkIdx int)     {}

func (f *fetchAlt[T]) GetItem(row int) *RefMut[T] {
	return &RefMut[T]{
		ptr:      (*T)(f.col.ptr(row)),
		col:      f.col,
		row:      row,
		chunkIdx: chunkOf(row),
		epoch:    f.epoch,
	}
}
