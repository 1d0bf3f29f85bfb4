package archetype

import "unsafe"

// EntityID is an opaque row tag owned by an external allocator (a World).
// The archetype stores it but never mints or interprets it.
type EntityID uint64

// Archetype is a column-major table of entities sharing an exact component
// shape. Every column's row i refers to the same entity as entities[i] and
// every other column's row i.
type Archetype struct {
	shape    TypeIdSet
	indices  []int // dense indices of real (non-dummy) columns, ascending
	columns  []ComponentData
	entities []EntityID
	length   int
	capacity int
}

// New derives an archetype's shape from infos and allocates one column per
// dense index the shape assigns: a real ComponentData for indices backed by
// an actual component, and an inert dummy for any that this implementation
// never actually leaves unfilled (dense indices here are always 0..n-1 and
// always real — dummyComponentData exists to keep column construction
// total even so).
func New(infos []ComponentInfo) *Archetype {
	ids := make([]TypeID, len(infos))
	for i, inf := range infos {
		ids[i] = inf.ID
	}
	shape := NewTypeIdSet(ids)

	columns := make([]ComponentData, shape.UpperBound())
	infoByID := make(map[TypeID]ComponentInfo, len(infos))
	for _, inf := range infos {
		infoByID[inf.ID] = inf
	}
	indices := make([]int, 0, len(infos))
	for _, pair := range shape.Indexed() {
		inf, ok := infoByID[pair.ID]
		if !ok {
			columns[pair.Index] = dummyComponentData()
			continue
		}
		columns[pair.Index] = newComponentData(inf)
		indices = append(indices, pair.Index)
	}

	a := &Archetype{shape: shape, indices: indices, columns: columns}
	if Config.events.OnArchetypeCreated != nil {
		Config.events.OnArchetypeCreated(a)
	}
	return a
}

// Shape returns the archetype's component-type set.
func (a *Archetype) Shape() TypeIdSet { return a.shape }

// Len returns the number of live rows.
func (a *Archetype) Len() int { return a.length }

// Cap returns the current row capacity.
func (a *Archetype) Cap() int { return a.capacity }

// Contains reports whether the archetype has a column for id.
func (a *Archetype) Contains(id TypeID) bool { return a.shape.Contains(id) }

// Matches reports whether ids, as a set, is exactly this archetype's shape.
func (a *Archetype) Matches(ids []TypeID) bool { return a.shape.Matches(ids) }

// EntityAt returns the entity id occupying row i.
func (a *Archetype) EntityAt(i int) EntityID { return a.entities[i] }

// column returns the column for a component type, or nil if absent.
func (a *Archetype) column(id TypeID) *ComponentData {
	idx, ok := a.shape.Get(id)
	if !ok {
		return nil
	}
	return &a.columns[idx]
}

// columnInfo returns the ComponentInfo backing id's column, used by World
// when it needs to carry an existing column's descriptor into a
// newly-resolved archetype shape during migration.
func (a *Archetype) columnInfo(id TypeID) ComponentInfo {
	return a.column(id).info
}

// columnAt returns the column at a known-valid dense index.
func (a *Archetype) columnAt(idx int) *ComponentData {
	return &a.columns[idx]
}

// Reserve grows row capacity by at least additional using amortised
// doubling, reallocating every real column's backing arrays.
func (a *Archetype) Reserve(additional int) {
	need := a.length + additional
	if need <= a.capacity {
		return
	}
	newCap := max(need, 2*a.capacity)
	if newCap == 0 {
		newCap = 1
	}

	newEntities := make([]EntityID, a.length, newCap)
	copy(newEntities, a.entities)
	a.entities = newEntities

	for _, idx := range a.indices {
		a.columns[idx].grow(a.length, a.capacity, newCap)
	}
	a.capacity = newCap
}

// Spawn appends one row: bundle's id-set must equal the archetype's shape
// (unchecked — a precondition enforced by the caller). Every component is
// deposited into the new row's columns and every touched column's version,
// chunk_version, and entity_version are stamped to epoch. Returns the new
// row index.
func (a *Archetype) Spawn(entity EntityID, bundle DynamicBundle, epoch Epoch) int {
	a.Reserve(1)
	row := a.length
	a.length++
	a.entities = append(a.entities, entity)

	bundle.Put(func(src unsafe.Pointer, id TypeID, size uintptr) {
		col := a.column(id)
		if col.info.Size != 0 {
			dst := col.ptr(row)
			copyBytes(dst, src, size)
		}
		col.setEntityVersion(row, epoch)
		col.raiseChunkVersion(chunkOf(row), epoch)
		col.raiseVersion(epoch)
	})

	if Config.events.OnSpawn != nil {
		Config.events.OnSpawn(a, row, entity)
	}
	return row
}

// Despawn swap-removes row: the last row's bytes are copied down into row
// for every real column (after dropping row's previous value), the last
// slot's entity_version is propagated into row and max-merged into its
// chunk_version, the vacated last slot's entity_version is cleared, and the
// entity id array is swap-removed to match. Returns the row that the moved
// entity now occupies, or (0, false) if row was already the last.
func (a *Archetype) Despawn(row int) (movedRow int, moved bool) {
	last := a.length - 1

	for _, idx := range a.indices {
		col := &a.columns[idx]
		if col.info.Size != 0 {
			dst := col.ptr(row)
			col.info.DropOne(dst)
			if row != last {
				src := col.ptr(last)
				copyBytes(dst, src, col.info.Size)
			}
		}
		if row != last {
			e := col.entityVersion(last)
			col.setEntityVersion(row, e)
			col.raiseChunkVersion(chunkOf(row), e)
		}
		col.setEntityVersion(last, 0)
	}

	if row != last {
		a.entities[row] = a.entities[last]
	}
	a.entities = a.entities[:last]
	a.length = last

	if row == last {
		if Config.events.OnDespawn != nil {
			Config.events.OnDespawn(a, row, 0, false)
		}
		return 0, false
	}
	if Config.events.OnDespawn != nil {
		Config.events.OnDespawn(a, row, row, true)
	}
	return row, true
}

// SetBundle move-assigns every component in bundle into row's existing
// columns (each column must already exist) via its ComponentInfo.SetOne,
// which drops row's previous value, then stamps version/chunk_version/
// entity_version to epoch.
func (a *Archetype) SetBundle(row int, bundle DynamicBundle, epoch Epoch) {
	bundle.Put(func(src unsafe.Pointer, id TypeID, size uintptr) {
		col := a.column(id)
		if col.info.Size != 0 {
			col.info.SetOne(src, col.ptr(row))
		}
		col.setEntityVersion(row, epoch)
		col.raiseChunkVersion(chunkOf(row), epoch)
		col.raiseVersion(epoch)
	})
}

// Set is the single-component specialisation of SetBundle: it writes value
// into row's T column directly, without going through the bundle interface.
func Set[T any](a *Archetype, row int, value T, epoch Epoch) {
	id := typeIDOf[T]()
	col := a.column(id)
	if unsafe.Sizeof(value) != 0 {
		*(*T)(col.ptr(row)) = value
	}
	col.setEntityVersion(row, epoch)
	col.raiseChunkVersion(chunkOf(row), epoch)
	col.raiseVersion(epoch)
}

// missingHandler describes what to do, during relocation, with a source
// column the destination archetype lacks.
type missingHandler func(col *ComponentData, row int)

func dropMissing(col *ComponentData, row int) {
	if col.info.Size != 0 {
		col.info.DropOne(col.ptr(row))
	}
}

// relocate copies every column src has in common with dst from srcRow into
// a freshly appended dst row, applies onMissing to every source-only
// column, and swap-removes srcRow out of src. It does not stamp epoch on
// relocated columns — their original versions are preserved, per the
// change-tracking contract. Returns the destination row and the
// move-result of the source-side swap-remove.
func relocate(dst, src *Archetype, srcRow int, onMissing missingHandler) (dstRow int, movedRow int, moved bool) {
	dst.Reserve(1)
	dstRow = dst.length
	dst.length++
	dst.entities = append(dst.entities, src.entities[srcRow])

	for _, idx := range src.indices {
		scol := &src.columns[idx]
		id := scol.info.ID
		if dcol := dst.column(id); dcol != nil {
			e := scol.entityVersion(srcRow)
			if dcol.info.Size != 0 {
				copyBytes(dcol.ptr(dstRow), scol.ptr(srcRow), dcol.info.Size)
			}
			dcol.setEntityVersion(dstRow, e)
			dcol.raiseChunkVersion(chunkOf(dstRow), e)
			dcol.raiseVersion(e)
		} else {
			onMissing(scol, srcRow)
		}
	}

	movedRow, moved = src.despawnRelocated(srcRow)
	return dstRow, movedRow, moved
}

// despawnRelocated performs the source-side swap-remove step of relocation:
// identical to Despawn except it must not re-drop a value already moved out
// by relocate (every source column was either byte-copied to dst or handed
// to onMissing, so no DropOne here).
func (a *Archetype) despawnRelocated(row int) (movedRow int, moved bool) {
	last := a.length - 1

	for _, idx := range a.indices {
		col := &a.columns[idx]
		if row != last {
			if col.info.Size != 0 {
				copyBytes(col.ptr(row), col.ptr(last), col.info.Size)
			}
			e := col.entityVersion(last)
			col.setEntityVersion(row, e)
			col.raiseChunkVersion(chunkOf(row), e)
		}
		col.setEntityVersion(last, 0)
	}

	if row != last {
		a.entities[row] = a.entities[last]
	}
	a.entities = a.entities[:last]
	a.length = last

	if row == last {
		return 0, false
	}
	return row, true
}

// InsertBundle migrates the entity at src[srcRow] into dst, a wider
// archetype containing every column of src plus at least one new column
// supplied by bundle, and deposits bundle into the new columns stamped at
// epoch. Returns the destination row and the move-result of the
// source-side swap-remove.
func InsertBundle(dst, src *Archetype, srcRow int, bundle DynamicBundle, epoch Epoch) (dstRow, movedRow int, moved bool) {
	dstRow, movedRow, moved = relocate(dst, src, srcRow, dropMissing)

	bundle.Put(func(bsrc unsafe.Pointer, id TypeID, size uintptr) {
		col := dst.column(id)
		if col.info.Size != 0 {
			copyBytes(col.ptr(dstRow), bsrc, size)
		}
		col.setEntityVersion(dstRow, epoch)
		col.raiseChunkVersion(chunkOf(dstRow), epoch)
		col.raiseVersion(epoch)
	})

	return dstRow, movedRow, moved
}

// Insert is the single-new-component specialisation of InsertBundle.
func Insert[T any](dst, src *Archetype, srcRow int, value T, epoch Epoch) (dstRow, movedRow int, moved bool) {
	return InsertBundle(dst, src, srcRow, NewBundle1(value), epoch)
}

// Remove migrates the entity at src[srcRow] into dst, a narrower archetype
// lacking exactly the T column, byte-copying T's value out into the
// returned result instead of dropping it.
func Remove[T any](dst, src *Archetype, srcRow int) (dstRow, movedRow int, moved bool, value T) {
	id := typeIDOf[T]()
	dstRow, movedRow, moved = relocate(dst, src, srcRow, func(col *ComponentData, row int) {
		if col.info.ID == id && col.info.Size != 0 {
			value = *(*T)(col.ptr(row))
		}
	})
	return dstRow, movedRow, moved, value
}

// DropBundle migrates the entity at src[srcRow] into a narrower dst
// archetype, dropping in place every source column that dst lacks.
func DropBundle(dst, src *Archetype, srcRow int) (dstRow, movedRow int, moved bool) {
	return relocate(dst, src, srcRow, dropMissing)
}

func copyBytes(dst, src unsafe.Pointer, size uintptr) {
	dstSlice := unsafe.Slice((*byte)(dst), size)
	srcSlice := unsafe.Slice((*byte)(src), size)
	copy(dstSlice, srcSlice)
}
