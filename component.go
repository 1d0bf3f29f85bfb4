package archetype

import (
	"reflect"
	"unsafe"
)

// Component is the constraint satisfied by any component type. The core
// places no requirements on T beyond what Go itself requires for storage in
// a slice: any concrete, non-interface type works, including zero-sized
// struct{} markers.
type Component interface {
	any
}

// ComponentInfo is the type-erased descriptor for a component type: its
// identity, layout, and the three type-erased operations an archetype needs
// to manage a column of it without generic code at the call site.
//
// All three function fields are total for aligned, valid inputs; callers
// (the Archetype) are responsible for never invoking them on anything else.
type ComponentInfo struct {
	ID   TypeID
	Size uintptr
	// Align is the type's required alignment. Size is always a multiple of
	// Align ("layout.pad_to_align() == layout" in the design notes).
	Align uintptr

	// DropOne drops the single value at ptr.
	DropOne func(ptr unsafe.Pointer)
	// DropMany drops n consecutive values starting at ptr.
	DropMany func(ptr unsafe.Pointer, n int)
	// SetOne move-assigns *src onto *dst, dropping dst's previous value
	// first. Both ptr are assumed valid, initialized T values.
	SetOne func(src, dst unsafe.Pointer)
}

// ComponentInfoOf derives the type-erased descriptor for component type T.
func ComponentInfoOf[T any]() ComponentInfo {
	var zero T
	rt := reflect.TypeOf(zero)
	size := unsafe.Sizeof(zero)
	align := uintptr(1)
	if rt != nil {
		align = uintptr(rt.Align())
	}

	needsDrop := typeNeedsDrop[T]()

	var dropOne func(unsafe.Pointer)
	var dropMany func(unsafe.Pointer, int)
	if needsDrop {
		dropOne = func(ptr unsafe.Pointer) {
			p := (*T)(ptr)
			var z T
			*p = z
		}
		dropMany = func(ptr unsafe.Pointer, n int) {
			s := unsafe.Slice((*T)(ptr), n)
			var z T
			for i := range s {
				s[i] = z
			}
		}
	} else {
		dropOne = func(unsafe.Pointer) {}
		dropMany = func(unsafe.Pointer, int) {}
	}

	return ComponentInfo{
		ID:       typeIDOf[T](),
		Size:     size,
		Align:    align,
		DropOne:  dropOne,
		DropMany: dropMany,
		SetOne: func(src, dst unsafe.Pointer) {
			*(*T)(dst) = *(*T)(src)
		},
	}
}

// typeNeedsDrop reports whether a value of type T can hold resources that
// Go's garbage collector needs help releasing promptly (pointers nested
// anywhere in the type). Components made only of scalars skip the
// zero-fill drop path entirely.
func typeNeedsDrop[T any]() bool {
	var zero T
	rt := reflect.TypeOf(zero)
	if rt == nil {
		return false
	}
	return typeContainsPointer(rt)
}

func typeContainsPointer(rt reflect.Type) bool {
	switch rt.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface,
		reflect.Slice, reflect.String, reflect.UnsafePointer:
		return true
	case reflect.Array:
		return rt.Len() > 0 && typeContainsPointer(rt.Elem())
	case reflect.Struct:
		for i := 0; i < rt.NumField(); i++ {
			if typeContainsPointer(rt.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// componentInfoDummy is the inert, zero-sized descriptor installed at dense
// indices not backed by a real component in a given archetype (see
// Archetype.New). Its drop functions are no-ops and it is never read from.
func componentInfoDummy() ComponentInfo {
	type dummy struct{}
	return ComponentInfoOf[dummy]()
}
