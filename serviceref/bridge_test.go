package serviceref

import "testing"

// mapResolver is a test Resolver backed by a plain instance map.
type mapResolver map[any]Ref

func (m mapResolver) ReferenceOf(instance any) Ref {
	return m[instance]
}

type greeterImpl struct{}

func (greeterImpl) Greet() string    { return "hello" }
func (greeterImpl) Farewell() string { return "bye" }

func TestRefFromInstance_KnownInstance(t *testing.T) {
	instance := &greeterImpl{}
	base := greeterRef()
	resolver := mapResolver{instance: base}

	got := RefFromInstance(resolver, instance)
	if !got.IsValid() {
		t.Fatal("expected the originating reference")
	}
	if !got.Equal(base) {
		t.Error("resolved reference should identify the same registration")
	}
}

func TestRefFromInstance_UnknownInstance_Invalid(t *testing.T) {
	resolver := mapResolver{}
	if RefFromInstance(resolver, &greeterImpl{}).IsValid() {
		t.Error("unknown instance should resolve to the invalid handle")
	}
}

func TestRefFromInstance_NilArguments_Invalid(t *testing.T) {
	if RefFromInstance(nil, &greeterImpl{}).IsValid() {
		t.Error("nil resolver should yield the invalid handle")
	}
	if RefFromInstance(mapResolver{}, nil).IsValid() {
		t.Error("nil instance should yield the invalid handle")
	}
}

func TestTypedRefFromInstance_RoundTrip(t *testing.T) {
	instance := &greeterImpl{}
	base := greeterRef()
	resolver := mapResolver{instance: base}
	original := NewTypedRef[Greeter](base)

	same := TypedRefFromInstance[Greeter](resolver, instance)
	if !same.IsValid() {
		t.Fatal("expected valid handle for the source tag")
	}
	if !same.Equal(original.Ref()) {
		t.Error("round trip should reproduce an equal handle")
	}

	retyped := TypedRefFromInstance[Farewell](resolver, instance)
	if !retyped.IsValid() {
		t.Fatal("expected valid handle via convertibility")
	}
	if !retyped.Equal(original.Ref()) {
		t.Error("retyped handle should identify the same registration")
	}
	if retyped.InterfaceID() != InterfaceID[Farewell]() {
		t.Errorf("expected Farewell id, got %q", retyped.InterfaceID())
	}
}

func TestTypedRefFromInstance_UnreachableTag_Invalid(t *testing.T) {
	instance := &greeterImpl{}
	resolver := mapResolver{instance: greeterRef()}
	if TypedRefFromInstance[Pinger](resolver, instance).IsValid() {
		t.Error("tag unreachable from the bound id should yield the invalid handle")
	}
}

func TestTypedRefFromInstance_Erased(t *testing.T) {
	instance := &greeterImpl{}
	base := greeterRef()
	resolver := mapResolver{instance: base}

	erased := TypedRefFromInstance[any](resolver, instance)
	if !erased.IsValid() {
		t.Fatal("erased form should succeed for any known instance")
	}
	if erased.InterfaceID() != base.InterfaceID() {
		t.Errorf("erased form should keep the original binding, got %q", erased.InterfaceID())
	}
}
