package archetype

// Opt is the item type yielded by an Option query: Ok is false, and Value
// the zero value, when the wrapped query's column was missing from the
// matched archetype.
type Opt[I any] struct {
	Value I
	Ok    bool
}

// Option wraps a query so that a missing column declines nothing: the
// archetype still matches, and rows yield Opt[I]{Ok: false} instead of
// causing the whole query to skip the archetype.
type Option[I any, Q Query[I]] struct {
	Inner Q
}

func NewOption[I any, Q Query[I]](inner Q) Option[I, Q] {
	return Option[I, Q]{Inner: inner}
}

func (o Option[I, Q]) Mutates() bool { return o.Inner.Mutates() }
func (o Option[I, Q]) Tracks() bool  { return o.Inner.Tracks() }

func (o Option[I, Q]) Access(id TypeID) Access { return o.Inner.Access(id) }

func (o Option[I, Q]) AllowedWith(other Descriptor) bool { return o.Inner.AllowedWith(other) }

func (o Option[I, Q]) IsValid() bool { return o.Inner.IsValid() }

// SkipArchetype never rejects: a missing column is reported per-row via
// Opt.Ok instead of excluding the whole archetype.
func (o Option[I, Q]) SkipArchetype(a *Archetype, tracks Epoch) bool { return false }

func (o Option[I, Q]) Fetch(a *Archetype, tracksEpoch, worldEpoch Epoch) (Fetch[Opt[I]], bool) {
	inner, ok := o.Inner.Fetch(a, tracksEpoch, worldEpoch)
	return &fetchOption[I]{inner: inner, present: ok}, true
}

type fetchOption[I any] struct {
	inner   Fetch[I]
	present bool
}

func (f *fetchOption[I]) SkipChunk(chunkIdx int) bool {
	if !f.present {
		return false
	}
	return f.inner.SkipChunk(chunkIdx)
}

func (f *fetchOption[I]) SkipItem(row int) bool {
	if !f.present {
		return false
	}
	return f.inner.SkipItem(row)
}

func (f *fetchOption[I]) VisitChunk(chunkIdx int) {
	if f.present {
		f.inner.VisitChunk(chunkIdx)
	}
}

func (f *fetchOption[I]) GetItem(row int) Opt[I] {
	if !f.present {
		var zero I
		return Opt[I]{Value: zero, Ok: false}
	}
	return Opt[I]{Value: f.inner.GetItem(row), Ok: true}
}
