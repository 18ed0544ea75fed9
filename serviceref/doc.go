// Package serviceref provides type-safe reference handles for an in-process
// service registry.
//
// The registry hands out type-erased references (Ref). A consumer narrows a
// Ref to a concrete interface type with NewTypedRef, which validates at bind
// time that the underlying registration actually satisfies that interface.
// The registry itself never stores static type information; the compatibility
// contract lives entirely in this package.
//
// # Handles
//
//   - Ref: type-erased reference to one registration. The zero value is the
//     invalid (null) handle.
//   - TypedRef[S]: a Ref narrowed to interface type S. Constructed only by
//     NewTypedRef or the bridge functions; the zero value is invalid.
//   - ID: opaque registration identity, the basis of equality and hashing
//     across all views of a registration.
//
// # Failure policy
//
// Nothing in this package returns an error. A narrowing that cannot be
// satisfied, or a bridge lookup for an instance the registry does not know,
// yields the invalid handle. Callers test validity with IsValid before
// retrieving a service through the registry:
//
//	ref := reg.Reference(serviceref.InterfaceID[Greeter]())
//	typed := serviceref.NewTypedRef[Greeter](ref)
//	if !typed.IsValid() {
//	    // registration missing or incompatible
//	}
package serviceref
