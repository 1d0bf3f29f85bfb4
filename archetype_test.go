package archetype

import "testing"

type aPos struct{ X, Y float64 }
type aVel struct{ X, Y float64 }
type aTag struct{}

func newPosVelArchetype() *Archetype {
	return New([]ComponentInfo{ComponentInfoOf[aPos](), ComponentInfoOf[aVel]()})
}

// TestScenarioSpawnThreeEntities mirrors spec scenario 1: spawning three
// entities at one epoch stamps every version field identically.
func TestScenarioSpawnThreeEntities(t *testing.T) {
	a := newPosVelArchetype()

	row0 := a.Spawn(1, NewBundle2(aPos{X: 1}, aVel{X: 2}), 10)
	row1 := a.Spawn(2, NewBundle2(aPos{X: 1}, aVel{X: 2}), 10)
	row2 := a.Spawn(3, NewBundle2(aPos{X: 1}, aVel{X: 2}), 10)

	if row0 != 0 || row1 != 1 || row2 != 2 {
		t.Fatalf("rows = %d,%d,%d, want 0,1,2", row0, row1, row2)
	}
	if a.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", a.Len())
	}

	posCol := a.column(typeIDOf[aPos]())
	velCol := a.column(typeIDOf[aVel]())
	if posCol.version != 10 || velCol.version != 10 {
		t.Fatalf("column versions = %d,%d, want 10,10", posCol.version, velCol.version)
	}
	if posCol.chunkVersion(0) != 10 || velCol.chunkVersion(0) != 10 {
		t.Fatal("chunk_versions[0] must be 10 for both columns")
	}
	for i := 0; i < 3; i++ {
		if posCol.entityVersion(i) != 10 || velCol.entityVersion(i) != 10 {
			t.Fatalf("entity_versions[%d] must be 10 for both columns", i)
		}
	}
}

// TestScenarioSetSingleColumn mirrors spec scenario 2: Set on one row must
// not touch sibling columns.
func TestScenarioSetSingleColumn(t *testing.T) {
	a := newPosVelArchetype()
	a.Spawn(1, NewBundle2(aPos{X: 1}, aVel{X: 1}), 10)
	a.Spawn(2, NewBundle2(aPos{X: 1}, aVel{X: 1}), 10)
	a.Spawn(3, NewBundle2(aPos{X: 1}, aVel{X: 1}), 10)

	Set(a, 1, aVel{X: 9}, 11)

	posCol := a.column(typeIDOf[aPos]())
	velCol := a.column(typeIDOf[aVel]())

	if posCol.version != 10 {
		t.Fatalf("Pos column must be untouched by a Vel-only Set, version = %d", posCol.version)
	}
	if velCol.version != 11 || velCol.chunkVersion(0) != 11 {
		t.Fatalf("Vel column must be stamped at 11, version=%d chunk=%d", velCol.version, velCol.chunkVersion(0))
	}
	want := []Epoch{10, 11, 10}
	for i, w := range want {
		if velCol.entityVersion(i) != w {
			t.Fatalf("Vel.entity_versions[%d] = %d, want %d", i, velCol.entityVersion(i), w)
		}
	}
	got := *(*aVel)(velCol.ptr(1))
	if got != (aVel{X: 9}) {
		t.Fatalf("row 1 Vel value = %+v, want {9 0}", got)
	}
}

// TestScenarioDespawnSwapRemove mirrors spec scenario 4.
func TestScenarioDespawnSwapRemove(t *testing.T) {
	a := newPosVelArchetype()
	a.Spawn(1, NewBundle2(aPos{X: 1}, aVel{X: 1}), 10)
	a.Spawn(2, NewBundle2(aPos{X: 1}, aVel{X: 1}), 10)
	a.Spawn(3, NewBundle2(aPos{X: 1}, aVel{X: 1}), 10)
	Set(a, 1, aVel{X: 9}, 11)

	movedRow, moved := a.Despawn(0)
	if !moved || movedRow != 0 {
		t.Fatalf("despawning row 0 of 3 must report the last row moved into 0, got (%d, %v)", movedRow, moved)
	}
	if a.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", a.Len())
	}
	if a.EntityAt(0) != 3 {
		t.Fatalf("row 0 must now hold entity 3, got %d", a.EntityAt(0))
	}

	posCol := a.column(typeIDOf[aPos]())
	velCol := a.column(typeIDOf[aVel]())
	if posCol.entityVersion(0) != 10 {
		t.Fatalf("Pos.entity_versions[0] = %d, want 10", posCol.entityVersion(0))
	}
	if velCol.entityVersion(0) != 10 {
		t.Fatalf("Vel.entity_versions[0] = %d, want 10", velCol.entityVersion(0))
	}
	if velCol.chunkVersion(0) != 11 {
		t.Fatalf("Vel.chunk_versions[0] = %d, want max(11,10)=11", velCol.chunkVersion(0))
	}
}

func TestDespawnLastRowReturnsNoMove(t *testing.T) {
	a := newPosVelArchetype()
	a.Spawn(1, NewBundle2(aPos{}, aVel{}), 1)

	movedRow, moved := a.Despawn(0)
	if moved {
		t.Fatalf("despawning the only row must report no move, got movedRow=%d", movedRow)
	}
	if a.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", a.Len())
	}
}

// TestScenarioInsertPreservesOriginalEpochs mirrors spec scenario 5: a row
// migrated into a wider archetype keeps its old columns' original epochs.
func TestScenarioInsertPreservesOriginalEpochs(t *testing.T) {
	src := newPosVelArchetype()
	src.Spawn(3, NewBundle2(aPos{X: 7}, aVel{X: 8}), 10)
	Set(src, 0, aVel{X: 9}, 11)

	dst := New([]ComponentInfo{ComponentInfoOf[aPos](), ComponentInfoOf[aVel](), ComponentInfoOf[aTag]()})

	dstRow, movedRow, moved := Insert(dst, src, 0, aTag{}, 12)
	if moved {
		t.Fatalf("migrating the only row must not report a move, got movedRow=%d", movedRow)
	}
	if dstRow != 0 {
		t.Fatalf("dstRow = %d, want 0", dstRow)
	}

	posCol := dst.column(typeIDOf[aPos]())
	velCol := dst.column(typeIDOf[aVel]())
	tagCol := dst.column(typeIDOf[aTag]())

	if posCol.entityVersion(0) != 10 {
		t.Fatalf("relocated Pos must keep its original epoch 10, got %d", posCol.entityVersion(0))
	}
	if velCol.entityVersion(0) != 11 {
		t.Fatalf("relocated Vel must keep its original epoch 11, got %d", velCol.entityVersion(0))
	}
	if tagCol.entityVersion(0) != 12 || tagCol.chunkVersion(0) != 12 || tagCol.version != 12 {
		t.Fatalf("new Tag column must be stamped at the migration epoch 12")
	}
	if got := *(*aPos)(posCol.ptr(0)); got != (aPos{X: 7}) {
		t.Fatalf("relocated Pos value = %+v, want {7 0}", got)
	}
	if src.Len() != 0 {
		t.Fatalf("source archetype must lose the migrated row, Len() = %d", src.Len())
	}
}

func TestRemoveReturnsRemovedValue(t *testing.T) {
	src := New([]ComponentInfo{ComponentInfoOf[aPos](), ComponentInfoOf[aVel]()})
	src.Spawn(1, NewBundle2(aPos{X: 3}, aVel{X: 4}), 1)

	dst := New([]ComponentInfo{ComponentInfoOf[aPos]()})
	dstRow, _, moved, removed := Remove[aVel](dst, src, 0)

	if moved {
		t.Fatal("removing the only row must not report a move")
	}
	if removed != (aVel{X: 4}) {
		t.Fatalf("Remove must return the removed value, got %+v", removed)
	}
	if got := *(*aPos)(dst.column(typeIDOf[aPos]()).ptr(dstRow)); got != (aPos{X: 3}) {
		t.Fatalf("Remove must preserve the retained column's value, got %+v", got)
	}
}

func TestDropBundleDropsMissingColumns(t *testing.T) {
	type dropCounter struct{ n *int }
	count := 0

	src := New([]ComponentInfo{ComponentInfoOf[aPos](), dropObservedInfo(&count)})
	dst := New([]ComponentInfo{ComponentInfoOf[aPos]()})

	b := observedBundle{pos: aPos{X: 1}, n: &count}
	src.Spawn(1, b, 1)

	DropBundle(dst, src, 0)
	if count != 1 {
		t.Fatalf("drop_bundle must drop the column missing in dst exactly once, got %d drops", count)
	}
}

// TestSpawnDespawnDropsExactlyOnce mirrors spec property R2.
func TestSpawnDespawnDropsExactlyOnce(t *testing.T) {
	count := 0
	a := New([]ComponentInfo{ComponentInfoOf[aPos](), dropObservedInfo(&count)})
	a.Spawn(1, observedBundle{pos: aPos{X: 1}, n: &count}, 1)

	_, moved := a.Despawn(0)
	if moved {
		t.Fatal("despawning the only row must not report a move")
	}
	if a.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", a.Len())
	}
	if count != 1 {
		t.Fatalf("component must be dropped exactly once, got %d drops", count)
	}
}

func TestZeroSizedComponentRoundTrips(t *testing.T) {
	a := New([]ComponentInfo{ComponentInfoOf[aTag]()})
	row := a.Spawn(1, NewBundle1(aTag{}), 1)
	if a.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", a.Len())
	}
	col := a.column(typeIDOf[aTag]())
	if col.entityVersion(row) != 1 {
		t.Fatal("zero-sized component must still get version tracking")
	}
}
