// Package registry implements the in-process service registry that the
// serviceref handles point into.
//
// Providers publish live instances under one or more interface ids, with
// optional string properties and an integer ranking. Consumers look up
// type-erased references, narrow them with serviceref.NewTypedRef, and
// retrieve instances through Service or ServiceFor.
//
//	reg := registry.New()
//	ref, err := reg.Register(&englishGreeter{},
//	    registry.WithInterface[Greeter](),
//	    registry.WithRanking(10),
//	)
//	...
//	typed := serviceref.NewTypedRef[Greeter](reg.Reference(serviceref.InterfaceID[Greeter]()))
//	svc, err := registry.ServiceFor(reg, typed)
//
// Per-registration metadata (the set of interface ids) is frozen at publish
// time and never mutated, so references built from it can answer
// convertibility queries concurrently without locks. The registry itself is
// safe for concurrent use.
//
// Lookups that match nothing return the invalid reference rather than an
// error, mirroring the reference layer's silent-failure policy; errors are
// reserved for misuse (nil instances, malformed options, retrieval through
// an invalid handle).
package registry
