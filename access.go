package archetype

// Access describes the kind of access a query performs on one component
// type.
type Access int

const (
	// AccessNone means the query does not touch the component at all. It
	// is compatible with any other access to the same type.
	AccessNone Access = iota
	// AccessShared is a read-only access. Compatible with AccessNone and
	// other AccessShared accesses to the same type.
	AccessShared
	// AccessMutable is a read-write access. Compatible only with
	// AccessNone to the same type.
	AccessMutable
)

// mergeAccess combines the access two composed sub-queries request for the
// same component type: None is absorbed by anything, Shared+Shared stays
// Shared, any other combination escalates to Mutable.
func mergeAccess(lhs, rhs Access) Access {
	switch {
	case lhs == AccessNone:
		return rhs
	case rhs == AccessNone:
		return lhs
	case lhs == AccessShared && rhs == AccessShared:
		return AccessShared
	default:
		return AccessMutable
	}
}

// accessAllowedWith reports whether requesting `want` access to a component
// is safe to run alongside a sibling query that already requests `have`
// access to the same component: two mutable accesses, or a mutable paired
// with a shared, both alias; anything paired with None never aliases.
func accessAllowedWith(want, have Access) bool {
	if want == AccessNone {
		return true
	}
	if want == AccessShared {
		return have == AccessNone || have == AccessShared
	}
	return have == AccessNone
}

// Descriptor is the Item-agnostic half of Query: the static access shape
// used for alias-safety checks and archetype skip decisions. Every Query
// implementation satisfies Descriptor regardless of what its Fetch yields,
// which is what lets AllowedWith/IsValid compare two Query values of
// unrelated Item types against each other — Go has no variadic generics,
// so the heterogeneous pairwise comparison the spec calls for is expressed
// as dynamic dispatch over this narrower interface instead of a purely
// compile-time trait bound.
type Descriptor interface {
	// Mutates reports whether this query may write through any item it
	// yields.
	Mutates() bool
	// Tracks reports whether this query consults per-entity/per-chunk
	// versions against a "since" epoch.
	Tracks() bool
	// Access returns the access kind requested for the given component
	// type.
	Access(id TypeID) Access
	// AllowedWith reports whether pairing this query with other cannot
	// cause a mutable-reference alias.
	AllowedWith(other Descriptor) bool
	// IsValid recursively checks that every pair of sub-queries composing
	// this query satisfies AllowedWith.
	IsValid() bool
	// SkipArchetype is a quick reject, performed without constructing a
	// Fetch, for archetypes that cannot possibly match.
	SkipArchetype(a *Archetype, tracks Epoch) bool
}

// Query is the full contract: a Descriptor plus the ability to produce a
// per-archetype Fetch cursor yielding I values.
//
// Fetch returns (zero, false) when the archetype lacks a column the query
// requires — not an error, just a declined match. When it succeeds, Write
// (and queries built on it) also bumps the relevant column's version to
// worldEpoch before returning; Alt leaves the column version to
// RefMut.GetMut.
type Query[I any] interface {
	Descriptor
	Fetch(a *Archetype, tracksEpoch, worldEpoch Epoch) (Fetch[I], bool)
}
