package serviceref

// Resolver maps a live service instance back to the reference that produced
// it. The registry implements it; whether an instance is known is its call,
// not this package's.
type Resolver interface {
	// ReferenceOf returns the erased reference for an instance obtained
	// through the registry, or the invalid Ref for anything else.
	ReferenceOf(instance any) Ref
}

// RefFromInstance recovers the erased reference that produced instance.
// A nil resolver or nil instance yields the invalid handle.
func RefFromInstance(r Resolver, instance any) Ref {
	if r == nil || instance == nil {
		return Ref{}
	}
	return r.ReferenceOf(instance)
}

// TypedRefFromInstance recovers the reference that produced instance and
// narrows it to S with the NewTypedRef rules. Use S == any for the erased
// form.
func TypedRefFromInstance[S any](r Resolver, instance any) TypedRef[S] {
	return NewTypedRef[S](RefFromInstance(r, instance))
}
