package serviceref

// TypedRef is a reference narrowed to the interface type S. The type
// parameter has no runtime footprint beyond selecting the interface id the
// narrowing in NewTypedRef validates against; identity, equality and hashing
// are those of the underlying erased reference.
//
// The zero TypedRef is invalid for every S.
type TypedRef[S any] struct {
	ref Ref
}

// NewTypedRef narrows base to the interface type S.
//
// If base is already bound to S's interface id it is adopted unchanged. If
// the underlying registration is convertible to S's id, the identity is
// adopted and the bound id rebound to S. Otherwise the result is the invalid
// handle; no error is reported and failure is observable only via IsValid.
//
// S == any performs no validation and adopts base as-is, giving the erased
// view of a registration.
func NewTypedRef[S any](base Ref) TypedRef[S] {
	interfaceID := InterfaceID[S]()
	if interfaceID == "" {
		return TypedRef[S]{ref: base}
	}
	if base.InterfaceID() == interfaceID {
		return TypedRef[S]{ref: base}
	}
	if base.IsConvertibleTo(interfaceID) {
		return TypedRef[S]{ref: base.rebind(interfaceID)}
	}
	return TypedRef[S]{}
}

// IsValid reports whether the narrowing succeeded and the handle carries a
// registration identity.
func (t TypedRef[S]) IsValid() bool {
	return t.ref.IsValid()
}

// Ref returns the erased view of this handle. Use it to compare handles of
// different type parameters referring to the same registration.
func (t TypedRef[S]) Ref() Ref {
	return t.ref
}

// ID returns the registration identity, or the zero ID when invalid.
func (t TypedRef[S]) ID() ID {
	return t.ref.ID()
}

// InterfaceID returns the interface id this handle is bound to. For a valid
// handle with S != any it always equals InterfaceID[S].
func (t TypedRef[S]) InterfaceID() string {
	return t.ref.InterfaceID()
}

// Equal reports whether this handle and the given erased reference identify
// the same registration, independent of either side's bound interface id.
func (t TypedRef[S]) Equal(o Ref) bool {
	return t.ref.Equal(o)
}

// Hash returns the identity hash, shared with every other view of the same
// registration. Invalid handles return InvalidHash.
func (t TypedRef[S]) Hash() uint64 {
	return t.ref.Hash()
}
