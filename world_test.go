package archetype

import "testing"

type wPos struct{ X, Y float64 }
type wVel struct{ X, Y float64 }

func TestWorldSpawnAssignsDistinctLocations(t *testing.T) {
	w := NewWorld()
	ids := w.Spawn(3, NewBundle2(wPos{X: 1}, wVel{X: 2}))
	if len(ids) != 3 {
		t.Fatalf("Spawn(3, ...) returned %d ids", len(ids))
	}

	rows := map[int]bool{}
	for _, e := range ids {
		a, row, ok := w.Location(e)
		if !ok {
			t.Fatalf("entity %d has no location", e)
		}
		if a.Len() != 3 {
			t.Fatalf("archetype Len() = %d, want 3", a.Len())
		}
		rows[row] = true
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 distinct rows, got %v", rows)
	}
}

func TestWorldDespawnUpdatesSwappedLocation(t *testing.T) {
	w := NewWorld()
	ids := w.Spawn(3, NewBundle2(wPos{X: 1}, wVel{X: 2}))

	_, firstRow, _ := w.Location(ids[0])
	w.Despawn(ids[0])

	if _, _, ok := w.Location(ids[0]); ok {
		t.Fatal("despawned entity must no longer resolve a location")
	}

	lastArch, lastRow, ok := w.Location(ids[2])
	if !ok {
		t.Fatal("the swapped-in entity must still resolve")
	}
	if lastRow != firstRow {
		t.Fatalf("swap-remove must move the last entity into the vacated row %d, got %d", firstRow, lastRow)
	}
	if lastArch.Len() != 2 {
		t.Fatalf("archetype Len() = %d, want 2", lastArch.Len())
	}
}

func TestWorldLockDefersSpawnUntilUnlock(t *testing.T) {
	w := NewWorld()
	w.Lock(0)

	ids := w.Spawn(2, NewBundle1(wPos{X: 1}))
	if len(w.Archetypes()) != 0 {
		t.Fatal("a locked World must not create archetypes before Unlock")
	}
	if _, _, ok := w.Location(ids[0]); ok {
		t.Fatal("a locked Spawn must not assign a location before Unlock")
	}

	w.Unlock(0)
	if len(w.Archetypes()) != 1 {
		t.Fatalf("Unlock must drain the queued spawn, got %d archetypes", len(w.Archetypes()))
	}
	if _, _, ok := w.Location(ids[0]); !ok {
		t.Fatal("Unlock must assign a location to the deferred spawn")
	}
}

func TestWorldLockDefersDespawnUntilUnlock(t *testing.T) {
	w := NewWorld()
	ids := w.Spawn(1, NewBundle1(wPos{X: 1}))

	w.Lock(0)
	w.Despawn(ids[0])
	if _, _, ok := w.Location(ids[0]); !ok {
		t.Fatal("a locked Despawn must not take effect before Unlock")
	}

	w.Unlock(0)
	if _, _, ok := w.Location(ids[0]); ok {
		t.Fatal("Unlock must drain the queued despawn")
	}
}

func TestWorldAddComponentMigratesAndPreservesValue(t *testing.T) {
	w := NewWorld()
	ids := w.Spawn(1, NewBundle1(wPos{X: 3, Y: 4}))
	e := ids[0]

	AddComponent(w, e, wVel{X: 9, Y: 9})

	a, row, ok := w.Location(e)
	if !ok {
		t.Fatal("entity must still resolve after AddComponent")
	}
	if !a.Contains(typeIDOf[wPos]()) || !a.Contains(typeIDOf[wVel]()) {
		t.Fatal("the migrated archetype must contain both Pos and Vel")
	}
	posCol := a.column(typeIDOf[wPos]())
	if got := *(*wPos)(posCol.ptr(row)); got != (wPos{X: 3, Y: 4}) {
		t.Fatalf("AddComponent must preserve the existing Pos value, got %+v", got)
	}
	velCol := a.column(typeIDOf[wVel]())
	if got := *(*wVel)(velCol.ptr(row)); got != (wVel{X: 9, Y: 9}) {
		t.Fatalf("AddComponent must deposit the new Vel value, got %+v", got)
	}
}

func TestWorldRemoveComponentMigratesAndReturnsValue(t *testing.T) {
	w := NewWorld()
	ids := w.Spawn(1, NewBundle2(wPos{X: 1, Y: 2}, wVel{X: 5, Y: 6}))
	e := ids[0]

	removed := RemoveComponent[wVel](w, e)
	if removed != (wVel{X: 5, Y: 6}) {
		t.Fatalf("RemoveComponent must return the removed value, got %+v", removed)
	}

	a, row, ok := w.Location(e)
	if !ok {
		t.Fatal("entity must still resolve after RemoveComponent")
	}
	if a.Contains(typeIDOf[wVel]()) {
		t.Fatal("the migrated archetype must no longer contain Vel")
	}
	posCol := a.column(typeIDOf[wPos]())
	if got := *(*wPos)(posCol.ptr(row)); got != (wPos{X: 1, Y: 2}) {
		t.Fatalf("RemoveComponent must preserve the retained Pos value, got %+v", got)
	}
}

func TestWorldIterVisitsEverySpawnedEntity(t *testing.T) {
	w := NewWorld()
	w.Spawn(2, NewBundle2(wPos{X: 1}, wVel{X: 1}))
	w.Spawn(3, NewBundle1(wPos{X: 2}))

	q := NewAnd2[*wPos, *wVel](Read[wPos]{}, Read[wVel]{})
	it := Iter[ItemAnd2[*wPos, *wVel]](w, q)

	count := 0
	for it.Next() {
		count++
		_ = it.Item()
	}
	if count != 2 {
		t.Fatalf("expected the (Pos,Vel) query to visit 2 entities, got %d", count)
	}
}

func TestWorldTrackedIterReflectsAddComponentEpoch(t *testing.T) {
	w := NewWorld()
	ids := w.Spawn(1, NewBundle1(wPos{X: 1}))
	tracks := w.Epoch()

	AddComponent(w, ids[0], wVel{X: 1})

	q := NewModified[*wVel](Read[wVel]{})
	it := TrackedIter[*wVel](w, q, tracks)

	if !it.Next() {
		t.Fatal("the newly migrated Vel column must be newer than the pre-AddComponent epoch")
	}
}
