package archetype

// singleColumnQuery is implemented by the three built-in single-column
// queries (Read, Write, Alt) that Modified can wrap: it lets Modified find
// the one column whose version it must compare against the tracking
// epoch, without needing a fully generic "which columns do you touch"
// protocol.
type singleColumnQuery interface {
	ColumnType() TypeID
}

// Modified wraps one of Read[T], Write[T], or Alt[T] with change tracking:
// SkipArchetype additionally rejects archetypes whose column hasn't been
// touched since tracksEpoch, and the produced fetch's SkipChunk/SkipItem
// reject chunks/rows whose versions are no newer than tracksEpoch.
type Modified[I any, Q interface {
	Query[I]
	singleColumnQuery
}] struct {
	Inner Q
}

func NewModified[I any, Q interface {
	Query[I]
	singleColumnQuery
}](inner Q) Modified[I, Q] {
	return Modified[I, Q]{Inner: inner}
}

func (m Modified[I, Q]) Mutates() bool { return m.Inner.Mutates() }
func (m Modified[I, Q]) Tracks() bool  { return true }

func (m Modified[I, Q]) Access(id TypeID) Access { return m.Inner.Access(id) }

func (m Modified[I, Q]) AllowedWith(other Descriptor) bool { return m.Inner.AllowedWith(other) }

func (m Modified[I, Q]) IsValid() bool { return m.Inner.IsValid() }

func (m Modified[I, Q]) SkipArchetype(a *Archetype, tracks Epoch) bool {
	col := a.column(m.Inner.ColumnType())
	if col == nil {
		return true
	}
	return col.version < tracks
}

func (m Modified[I, Q]) Fetch(a *Archetype, tracksEpoch, worldEpoch Epoch) (Fetch[I], bool) {
	col := a.column(m.Inner.ColumnType())
	if col == nil {
		return nil, false
	}
	innerFetch, ok := m.Inner.Fetch(a, tracksEpoch, worldEpoch)
	if !ok {
		return nil, false
	}
	return &fetchModified[I]{inner: innerFetch, col: col, tracks: tracksEpoch}, true
}

type fetchModified[I any] struct {
	inner  Fetch[I]
	col    *ComponentData
	tracks Epoch
}

func (f *fetchModified[I]) SkipChunk(chunkIdx int) bool {
	return f.col.chunkVersion(chunkIdx) <= f.tracks
}

func (f *fetchModified[I]) SkipItem(row int) bool {
	return f.col.entityVersion(row) <= f.tracks
}

func (f *fetchModified[I]) VisitChunk(chunkIdx int) {
	f.inner.VisitChunk(chunkIdx)
}

func (f *fetchModified[I]) GetItem(row int) I {
	return f.inner.GetItem(row)
}
