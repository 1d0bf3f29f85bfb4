package archetype

import "unsafe"

// dropObserved is a component whose drop is counted, letting tests assert
// a value is dropped exactly once (R2) rather than leaked or double-dropped.
type dropObserved struct {
	n *int
}

func dropObservedInfo(counter *int) ComponentInfo {
	return ComponentInfo{
		ID:    typeIDOf[dropObserved](),
		Size:  unsafe.Sizeof(dropObserved{}),
		Align: 8,
		DropOne: func(ptr unsafe.Pointer) {
			*counter++
			*(*dropObserved)(ptr) = dropObserved{}
		},
		DropMany: func(ptr unsafe.Pointer, n int) {
			s := unsafe.Slice((*dropObserved)(ptr), n)
			for i := range s {
				*counter++
				s[i] = dropObserved{}
			}
		},
		SetOne: func(src, dst unsafe.Pointer) {
			*counter++
			*(*dropObserved)(dst) = *(*dropObserved)(src)
		},
	}
}

// observedBundle deposits an aPos alongside a dropObserved, hand-written
// rather than via the generated BundleN types because it needs a
// caller-supplied ComponentInfo (the counting drop) instead of the one
// ComponentInfoOf would derive.
type observedBundle struct {
	pos aPos
	n   *int
}

func (b observedBundle) Valid() bool { return true }

func (b observedBundle) WithIDs(f func(ids []TypeID)) {
	f([]TypeID{typeIDOf[aPos](), typeIDOf[dropObserved]()})
}

func (b observedBundle) WithInfos(f func(infos []ComponentInfo)) {
	f([]ComponentInfo{ComponentInfoOf[aPos](), dropObservedInfo(b.n)})
}

func (b observedBundle) Put(f func(src unsafe.Pointer, id TypeID, size uintptr)) {
	pos := b.pos
	f(unsafe.Pointer(&pos), typeIDOf[aPos](), unsafe.Sizeof(pos))
	val := dropObserved{n: b.n}
	f(unsafe.Pointer(&val), typeIDOf[dropObserved](), unsafe.Sizeof(val))
}
