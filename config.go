package archetype

// Events holds optional hooks fired at well-defined points in an
// archetype's lifecycle. Every field is nil-checked before use; leaving
// them unset costs nothing.
type Events struct {
	// OnArchetypeCreated fires once, right after New allocates a new
	// archetype's columns.
	OnArchetypeCreated func(a *Archetype)
	// OnSpawn fires after a row is appended.
	OnSpawn func(a *Archetype, row int, entity EntityID)
	// OnDespawn fires after a row is swap-removed, with the moved-row
	// result Despawn itself returns.
	OnDespawn func(a *Archetype, row int, movedRow int, moved bool)
}

// Config holds global configuration for the archetype system.
var Config config = config{}

type config struct {
	events Events
}

// SetEvents installs the hooks fired by New/Spawn/Despawn.
func (c *config) SetEvents(e Events) {
	c.events = e
}
