package archetype

// ArchetypeSource supplies the ordered list of archetypes a query iterates
// over. The World owns archetype lifetime and storage; the core only needs
// to walk whatever slice it's handed.
type ArchetypeSource interface {
	Archetypes() []*Archetype
}

// QueryIter drives a non-tracking query over a sequence of archetypes: it
// visits every archetype query Q does not reject via SkipArchetype, fetches
// once per archetype, and walks every row in order. skip_chunk/skip_item
// are never consulted — a non-tracking fetch must always report false for
// both, and QueryIter does not even call them.
type QueryIter[I any, Q Query[I]] struct {
	query       Q
	archetypes  []*Archetype
	epoch       Epoch
	archIdx     int
	cur         *Archetype
	fetch       Fetch[I]
	row         int
	len         int
	total       int
	initialized bool
}

// NewQueryIter constructs a non-tracking iterator. epoch is the world epoch
// passed through to Fetch for mutating queries to stamp on column access.
func NewQueryIter[I any, Q Query[I]](query Q, archetypes []*Archetype, epoch Epoch) *QueryIter[I, Q] {
	it := &QueryIter[I, Q]{query: query, archetypes: archetypes, epoch: epoch}
	it.computeLen()
	return it
}

func (it *QueryIter[I, Q]) computeLen() {
	total := 0
	for _, a := range it.archetypes {
		if it.query.SkipArchetype(a, 0) {
			continue
		}
		total += a.Len()
	}
	it.total = total
}

// Len returns the exact remaining count, making QueryIter an
// ExactSizeIterator equivalent.
func (it *QueryIter[I, Q]) Len() int { return it.total }

// Next advances to the next matching row and reports whether one exists. It
// must be called before the first Item()/Entity() access, and again after
// each successful one.
func (it *QueryIter[I, Q]) Next() bool {
	for {
		if it.cur == nil {
			if !it.advanceArchetype() {
				return false
			}
		}
		if it.row < it.len {
			if firstChunk, ok := firstOfChunk(it.row); ok && it.query.Mutates() {
				it.fetch.VisitChunk(firstChunk)
			}
			it.total--
			return true
		}
		it.cur = nil
	}
}

func (it *QueryIter[I, Q]) advanceArchetype() bool {
	for it.archIdx < len(it.archetypes) {
		a := it.archetypes[it.archIdx]
		it.archIdx++
		if it.query.SkipArchetype(a, 0) {
			continue
		}
		f, ok := it.query.Fetch(a, 0, it.epoch)
		if !ok {
			continue
		}
		it.cur = a
		it.fetch = f
		it.row = 0
		it.len = a.Len()
		return true
	}
	return false
}

// Entity returns the entity id at the current row. Valid only after Next
// returned true and before the next Next call.
func (it *QueryIter[I, Q]) Entity() EntityID {
	return it.cur.EntityAt(it.row)
}

// Item returns the current row's item and advances the internal row
// cursor for the next Next call.
func (it *QueryIter[I, Q]) Item() I {
	item := it.fetch.GetItem(it.row)
	it.row++
	return item
}

// QueryTrackedIter drives a possibly-tracking query with a real tracks
// epoch: chunks the fetch declares fully unchanged are skipped in one
// 256-row jump, individual rows the fetch declares unchanged are skipped
// one at a time, and visit_chunk is invoked lazily — once, right before the
// first row of a chunk that is actually yielded.
type QueryTrackedIter[I any, Q Query[I]] struct {
	query      Q
	archetypes []*Archetype
	tracks     Epoch
	epoch      Epoch
	archIdx    int
	cur        *Archetype
	fetch      Fetch[I]
	row        int
	len        int
	pendingVis bool
	upper      int
}

// NewQueryTrackedIter constructs a tracking iterator. tracks is the
// subscriber's "last observed" epoch; epoch is the world epoch passed to
// Fetch.
func NewQueryTrackedIter[I any, Q Query[I]](query Q, archetypes []*Archetype, tracks, epoch Epoch) *QueryTrackedIter[I, Q] {
	it := &QueryTrackedIter[I, Q]{query: query, archetypes: archetypes, tracks: tracks, epoch: epoch}
	for _, a := range archetypes {
		if !query.SkipArchetype(a, tracks) {
			it.upper += a.Len()
		}
	}
	return it
}

// SizeHint returns (0, upper): tracking skips are data-dependent, so only
// an upper bound is known in advance.
func (it *QueryTrackedIter[I, Q]) SizeHint() (int, int) { return 0, it.upper }

// Next advances to the next row that survives skip_chunk and skip_item,
// performing any pending visit_chunk call first.
func (it *QueryTrackedIter[I, Q]) Next() bool {
	for {
		if it.cur == nil {
			if !it.advanceArchetype() {
				return false
			}
		}

		for it.row < it.len {
			if chunk, ok := firstOfChunk(it.row); ok {
				if it.fetch.SkipChunk(chunk) {
					it.row += CHUNK_LEN
					continue
				}
				it.pendingVis = it.query.Mutates()
			}

			if it.fetch.SkipItem(it.row) {
				it.row++
				continue
			}

			if it.pendingVis {
				it.fetch.VisitChunk(chunkOf(it.row))
				it.pendingVis = false
			}
			return true
		}

		it.cur = nil
	}
}

func (it *QueryTrackedIter[I, Q]) advanceArchetype() bool {
	for it.archIdx < len(it.archetypes) {
		a := it.archetypes[it.archIdx]
		it.archIdx++
		if it.query.SkipArchetype(a, it.tracks) {
			continue
		}
		f, ok := it.query.Fetch(a, it.tracks, it.epoch)
		if !ok {
			continue
		}
		it.cur = a
		it.fetch = f
		it.row = 0
		it.len = a.Len()
		it.pendingVis = false
		return true
	}
	return false
}

// Entity returns the entity id at the current row.
func (it *QueryTrackedIter[I, Q]) Entity() EntityID {
	return it.cur.EntityAt(it.row)
}

// Item returns the current row's item and advances to the next row.
func (it *QueryTrackedIter[I, Q]) Item() I {
	item := it.fetch.GetItem(it.row)
	it.row++
	return item
}
