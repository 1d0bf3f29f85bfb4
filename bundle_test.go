package archetype

import (
	"testing"
	"unsafe"
)

type bPosition struct{ X, Y float64 }
type bVelocity struct{ X, Y float64 }

func TestBundleEmptyIsValid(t *testing.T) {
	if !NewBundle0().Valid() {
		t.Fatal("the empty bundle must be valid")
	}
	count := 0
	NewBundle0().Put(func(unsafe.Pointer, TypeID, uintptr) { count++ })
	if count != 0 {
		t.Fatal("the empty bundle must never invoke its Put callback")
	}
}

func TestBundlePutDepositsEveryComponentOnce(t *testing.T) {
	b := NewBundle2(bPosition{X: 1, Y: 2}, bVelocity{X: 3, Y: 4})

	seen := map[TypeID]int{}
	b.Put(func(src unsafe.Pointer, id TypeID, size uintptr) {
		seen[id]++
		if id == typeIDOf[bPosition]() {
			got := *(*bPosition)(src)
			if got != (bPosition{X: 1, Y: 2}) {
				t.Fatalf("Position value mismatch: %+v", got)
			}
		}
	})

	if seen[typeIDOf[bPosition]()] != 1 || seen[typeIDOf[bVelocity]()] != 1 {
		t.Fatalf("each component must be deposited exactly once, got %v", seen)
	}
}

func TestBundleValidRejectsDuplicateTypes(t *testing.T) {
	b := NewBundle2(bPosition{}, bPosition{})
	if b.Valid() {
		t.Fatal("a bundle listing the same component type twice must be invalid")
	}
}

func TestBundleWithIDsMatchesWithInfos(t *testing.T) {
	b := NewBundle2(bPosition{}, bVelocity{})
	var ids []TypeID
	b.WithIDs(func(got []TypeID) { ids = got })
	var infos []ComponentInfo
	b.WithInfos(func(got []ComponentInfo) { infos = got })

	if len(ids) != len(infos) {
		t.Fatalf("WithIDs and WithInfos must agree on count: %d vs %d", len(ids), len(infos))
	}
	for i := range ids {
		if ids[i] != infos[i].ID {
			t.Fatalf("id/info order mismatch at %d: %v vs %v", i, ids[i], infos[i].ID)
		}
	}
}
