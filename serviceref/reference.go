package serviceref

// Metadata is the narrow, per-registration capability surface the registry
// attaches to each reference. Implementations must be immutable once the
// registration is published; references answer IsConvertibleTo from it
// without locking.
type Metadata interface {
	// Satisfies reports whether the registration was published under the
	// given interface id.
	Satisfies(interfaceID string) bool
}

// Ref is a type-erased reference to one registration. It is a lightweight,
// non-owning value: copying it is free and dropping it has no effect on the
// registration or the service instance.
//
// The zero Ref is the invalid (null) handle. All invalid handles compare
// equal to each other and hash to InvalidHash.
type Ref struct {
	id          ID
	interfaceID string
	meta        Metadata
}

// New builds a reference bound to interfaceID. It is intended for the
// registry when publishing a registration; consumers obtain references from
// registry lookups and narrow them with NewTypedRef.
func New(id ID, interfaceID string, meta Metadata) Ref {
	if id.IsZero() {
		return Ref{}
	}
	return Ref{id: id, interfaceID: interfaceID, meta: meta}
}

// IsValid reports whether the reference carries a registration identity.
func (r Ref) IsValid() bool {
	return !r.id.IsZero()
}

// ID returns the registration identity. Comparable, so it can key ordinary
// Go maps; every invalid reference returns the zero ID.
func (r Ref) ID() ID {
	return r.id
}

// InterfaceID returns the interface id this reference is bound to, or the
// empty string for an unbound or invalid reference.
func (r Ref) InterfaceID() string {
	if !r.IsValid() {
		return ""
	}
	return r.interfaceID
}

// IsConvertibleTo reports whether the underlying registration is also
// addressable under another interface id.
func (r Ref) IsConvertibleTo(interfaceID string) bool {
	if !r.IsValid() || r.meta == nil || interfaceID == "" {
		return false
	}
	return r.meta.Satisfies(interfaceID)
}

// Equal reports whether both references identify the same registration.
// The bound interface id does not participate: two differently-typed views
// of one registration are equal.
func (r Ref) Equal(o Ref) bool {
	return r.id == o.id
}

// Hash returns the identity hash. Equal references hash identically whatever
// interface id they are bound to; invalid references return InvalidHash.
func (r Ref) Hash() uint64 {
	return r.id.Hash()
}

// rebind returns a copy of r bound to a different interface id. Identity and
// metadata are carried over unchanged.
func (r Ref) rebind(interfaceID string) Ref {
	r.interfaceID = interfaceID
	return r
}
