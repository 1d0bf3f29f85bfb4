package archetype

import "unsafe"

// Bundle0 is the empty bundle: it deposits no components. It is valid by
// definition and Put never invokes its callback.
type Bundle0 struct{}

// NewBundle0 constructs the empty bundle.
func NewBundle0() Bundle0 { return Bundle0{} }

func (Bundle0) Valid() bool { return true }

func (Bundle0) WithIDs(f func(ids []TypeID)) { f(nil) }

func (Bundle0) WithInfos(f func(infos []ComponentInfo)) { f(nil) }

func (Bundle0) Put(f func(src unsafe.Pointer, id TypeID, size uintptr)) {}
