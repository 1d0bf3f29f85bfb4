package archetype

import (
	"reflect"
	"sort"
	"unsafe"

	"github.com/TheBitDrifter/mask"
)

// TypeIdSet is a dense, immutable set of component type identities with
// O(1) membership testing and a stable mapping from each contained TypeID
// to a small integer index.
//
// Two sets built from the same multiset of TypeIDs — regardless of the
// order they were supplied in — produce identical index assignments: the
// set sorts ids by their underlying reflect.Type pointer (a value that is
// unique and constant for a given type over the life of the process, the
// same property that lets reflect.Type itself serve as the identity in
// TypeID) before handing out indices 0..len-1.
type TypeIdSet struct {
	ids     []TypeID // sorted, dense index i has id ids[i]
	indexOf map[TypeID]int
	shape   mask.Mask256 // bit i set iff dense index i is a member
}

// NewTypeIdSet builds a TypeIdSet from an unordered, possibly-duplicated
// slice of TypeIDs. Insertion order is irrelevant.
func NewTypeIdSet(ids []TypeID) TypeIdSet {
	dedup := make(map[TypeID]struct{}, len(ids))
	unique := make([]TypeID, 0, len(ids))
	for _, id := range ids {
		if _, ok := dedup[id]; ok {
			continue
		}
		dedup[id] = struct{}{}
		unique = append(unique, id)
	}

	sort.Slice(unique, func(i, j int) bool {
		return typePtr(unique[i]) < typePtr(unique[j])
	})

	indexOf := make(map[TypeID]int, len(unique))
	var shape mask.Mask256
	for i, id := range unique {
		indexOf[id] = i
		shape.Mark(uint32(i))
	}

	return TypeIdSet{ids: unique, indexOf: indexOf, shape: shape}
}

func typePtr(id TypeID) uintptr {
	if id.rt == nil {
		return 0
	}
	type ifaceHeader struct {
		typ  unsafe.Pointer
		data unsafe.Pointer
	}
	h := (*ifaceHeader)(unsafe.Pointer(&id.rt))
	return uintptr(h.data)
}

// Contains reports whether id is a member of the set.
func (s TypeIdSet) Contains(id TypeID) bool {
	_, ok := s.indexOf[id]
	return ok
}

// Len returns the number of distinct type ids in the set.
func (s TypeIdSet) Len() int {
	return len(s.ids)
}

// UpperBound returns the exclusive end of the dense indices this set
// hands out: every Get call that succeeds returns a value in [0, UpperBound).
func (s TypeIdSet) UpperBound() int {
	return len(s.ids)
}

// Get returns the dense index of id and true, or (0, false) if id is not a
// member of the set.
func (s TypeIdSet) Get(id TypeID) (int, bool) {
	idx, ok := s.indexOf[id]
	return idx, ok
}

// Shape returns the set's membership as a dense-index bitmask. World uses
// it as the key of its archetype table.
func (s TypeIdSet) Shape() mask.Mask256 {
	return s.shape
}

// IndexedPair is one (index, id) entry of a TypeIdSet's ordered contents.
type IndexedPair struct {
	Index int
	ID    TypeID
}

// Indexed returns the (index, id) pairs of the set in dense-index order.
func (s TypeIdSet) Indexed() []IndexedPair {
	out := make([]IndexedPair, len(s.ids))
	for i, id := range s.ids {
		out[i] = IndexedPair{Index: i, ID: id}
	}
	return out
}

// Matches reports whether ids, taken as a set, is exactly equal to s.
// It short-circuits when ids is shorter than the set before scanning;
// repeated ids count once.
func (s TypeIdSet) Matches(ids []TypeID) bool {
	if len(ids) < len(s.ids) {
		return false
	}
	seen := make(map[TypeID]struct{}, len(ids))
	for _, id := range ids {
		if !s.Contains(id) {
			return false
		}
		seen[id] = struct{}{}
	}
	return len(seen) == len(s.ids)
}
