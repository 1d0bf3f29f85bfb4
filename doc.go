/*
Package archetype is the storage and query core of an archetype-based
Entity-Component-System: column-major tables of same-shape entities, the
bundle protocol for depositing typed component values into them without
heap traffic, and the query/fetch protocol that drives change-tracked
iteration over them.

It does not own entity allocation, archetype resolution by shape, or
scheduling — that is the job of a World built on top, a minimal example of
which lives in world.go.

Basic Usage:

	type Position struct{ X, Y float64 }
	type Velocity struct{ X, Y float64 }

	w := archetype.NewWorld()
	w.Spawn(100, archetype.NewBundle2(Position{}, Velocity{}))

	query := archetype.NewAnd2[*Position, *Velocity](
		archetype.NewWrite[Position](),
		archetype.NewRead[Velocity](),
	)
	it := archetype.Iter[archetype.ItemAnd2[*Position, *Velocity]](w, query)
	for it.Next() {
		item := it.Item()
		item.A.X += item.B.X
		item.A.Y += item.B.Y
	}
*/
package archetype
