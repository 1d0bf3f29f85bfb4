package archetype

import "testing"

type qPos struct{ X, Y float64 }
type qVel struct{ X, Y float64 }

// TestIsValidRejectsMutableAndSharedAlias is spec static check S1.
func TestIsValidRejectsMutableAndSharedAlias(t *testing.T) {
	mutShared := NewAnd2[*qPos, *qPos](Write[qPos]{}, Read[qPos]{})
	if mutShared.IsValid() {
		t.Fatal("(&mut T, &T) must be invalid")
	}

	sharedShared := NewAnd2[*qPos, *qPos](Read[qPos]{}, Read[qPos]{})
	if !sharedShared.IsValid() {
		t.Fatal("(&T, &T) must be valid")
	}

	mutDistinct := NewAnd2[*qPos, *qVel](Write[qPos]{}, Write[qVel]{})
	if !mutDistinct.IsValid() {
		t.Fatal("(&mut T, &mut U) for T != U must be valid")
	}
}

func TestAccessMergeRules(t *testing.T) {
	cases := []struct {
		lhs, rhs, want Access
	}{
		{AccessNone, AccessNone, AccessNone},
		{AccessNone, AccessShared, AccessShared},
		{AccessShared, AccessNone, AccessShared},
		{AccessShared, AccessShared, AccessShared},
		{AccessShared, AccessMutable, AccessMutable},
		{AccessMutable, AccessMutable, AccessMutable},
		{AccessNone, AccessMutable, AccessMutable},
	}
	for _, c := range cases {
		if got := mergeAccess(c.lhs, c.rhs); got != c.want {
			t.Errorf("mergeAccess(%v, %v) = %v, want %v", c.lhs, c.rhs, got, c.want)
		}
	}
}

func buildScenarioArchetype() (*Archetype, map[EntityID]int) {
	a := New([]ComponentInfo{ComponentInfoOf[qPos](), ComponentInfoOf[qVel]()})
	rows := map[EntityID]int{}
	rows[1] = a.Spawn(1, NewBundle2(qPos{X: 1}, qVel{X: 1}), 10)
	rows[2] = a.Spawn(2, NewBundle2(qPos{X: 1}, qVel{X: 1}), 10)
	rows[3] = a.Spawn(3, NewBundle2(qPos{X: 1}, qVel{X: 1}), 10)
	Set(a, rows[2], qVel{X: 9}, 11)
	return a, rows
}

// TestModifiedYieldsOnlyChangedRows mirrors spec scenario 3.
func TestModifiedYieldsOnlyChangedRows(t *testing.T) {
	a, rows := buildScenarioArchetype()

	q := NewModified[*qVel](Read[qVel]{})
	it := NewQueryTrackedIter[*qVel](q, []*Archetype{a}, 10, 11)

	var got []EntityID
	for it.Next() {
		got = append(got, it.Entity())
		_ = it.Item()
	}

	if len(got) != 1 || got[0] != 2 {
		t.Fatalf("Modified<&Vel> with tracks=10 must yield exactly entity 2, got %v", got)
	}
	_ = rows
}

// TestModifiedAtCurrentVersionYieldsNothing is spec boundary B3 (upper half).
func TestModifiedAtCurrentVersionYieldsNothing(t *testing.T) {
	a, _ := buildScenarioArchetype()
	q := NewModified[*qVel](Read[qVel]{})
	it := NewQueryTrackedIter[*qVel](q, []*Archetype{a}, 11, 11)

	if it.Next() {
		t.Fatal("tracking at the column's current version must yield no rows")
	}
}

// TestModifiedBelowEveryVersionYieldsAll is spec boundary B3 (lower half).
func TestModifiedBelowEveryVersionYieldsAll(t *testing.T) {
	a, _ := buildScenarioArchetype()
	q := NewModified[*qVel](Read[qVel]{})
	it := NewQueryTrackedIter[*qVel](q, []*Archetype{a}, 0, 11)

	count := 0
	for it.Next() {
		count++
		_ = it.Item()
	}
	if count != 3 {
		t.Fatalf("tracking below every entity_version must yield all rows, got %d", count)
	}
}

// TestMutatingTupleStampsOnlyTouchedColumn mirrors spec scenario 6.
func TestMutatingTupleStampsOnlyTouchedColumn(t *testing.T) {
	a := New([]ComponentInfo{ComponentInfoOf[qPos](), ComponentInfoOf[qVel]()})
	a.Spawn(1, NewBundle2(qPos{X: 1}, qVel{X: 2}), 10)
	Set(a, 0, qVel{X: 9}, 11)

	q := NewAnd2[*qPos, *qVel](Write[qPos]{}, Read[qVel]{})
	it := NewQueryIter[ItemAnd2[*qPos, *qVel]](q, []*Archetype{a}, 13)

	n := 0
	for it.Next() {
		n++
		item := it.Item()
		item.A.X += item.B.X
	}
	if n != 1 {
		t.Fatalf("expected exactly one item, got %d", n)
	}

	posCol := a.column(typeIDOf[qPos]())
	velCol := a.column(typeIDOf[qVel]())

	if posCol.version != 13 || posCol.chunkVersion(0) != 13 || posCol.entityVersion(0) != 13 {
		t.Fatalf("Pos must be fully stamped at 13: version=%d chunk=%d entity=%d",
			posCol.version, posCol.chunkVersion(0), posCol.entityVersion(0))
	}
	if velCol.version != 11 {
		t.Fatalf("Vel must be untouched by a read-only access, version=%d want 11", velCol.version)
	}
}

func TestWithAndWithoutFilters(t *testing.T) {
	type onlyPos struct{}
	withPos := New([]ComponentInfo{ComponentInfoOf[qPos]()})
	withBoth := New([]ComponentInfo{ComponentInfoOf[qPos](), ComponentInfoOf[qVel]()})

	with := With[qVel]{}
	if !with.SkipArchetype(withPos, 0) {
		t.Fatal("With[Vel] must skip an archetype lacking Vel")
	}
	if with.SkipArchetype(withBoth, 0) {
		t.Fatal("With[Vel] must not skip an archetype containing Vel")
	}

	without := Without[qVel]{}
	if without.SkipArchetype(withPos, 0) {
		t.Fatal("Without[Vel] must not skip an archetype lacking Vel")
	}
	if !without.SkipArchetype(withBoth, 0) {
		t.Fatal("Without[Vel] must skip an archetype containing Vel")
	}
	_ = onlyPos{}
}

func TestOptionYieldsNotOkForMissingColumn(t *testing.T) {
	a := New([]ComponentInfo{ComponentInfoOf[qPos]()})
	a.Spawn(1, NewBundle1(qPos{X: 5}), 1)

	q := NewOption[*qVel](Read[qVel]{})
	it := NewQueryIter[Opt[*qVel]](q, []*Archetype{a}, 1)

	if !it.Next() {
		t.Fatal("Option must still match the archetype even though Vel is missing")
	}
	item := it.Item()
	if item.Ok {
		t.Fatal("Option.Ok must be false when the column is missing")
	}
}

func TestAltDefersStampingUntilMutableDeref(t *testing.T) {
	a := New([]ComponentInfo{ComponentInfoOf[qPos]()})
	a.Spawn(1, NewBundle1(qPos{X: 1}), 1)

	q := Alt[qPos]{}
	it := NewQueryIter[*RefMut[qPos]](q, []*Archetype{a}, 5)
	if !it.Next() {
		t.Fatal("expected one row")
	}
	ref := it.Item()
	_ = ref.Get()

	col := a.column(typeIDOf[qPos]())
	if col.entityVersion(0) != 1 {
		t.Fatalf("a shared Get through Alt must not stamp, entity_version = %d, want 1", col.entityVersion(0))
	}

	ref.GetMut()
	if col.entityVersion(0) != 5 {
		t.Fatalf("GetMut must stamp entity_version to the fetch epoch, got %d", col.entityVersion(0))
	}
}
