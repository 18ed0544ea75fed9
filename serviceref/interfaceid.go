package serviceref

import "reflect"

// InterfaceID returns the stable identifier for the interface contract S.
// Named types yield "import/path.Name"; unnamed types fall back to their
// reflected string form.
//
// S == any is special: it names no contract and returns the empty id. It is
// the erased tag used where a handle should stay unbound (see NewTypedRef).
func InterfaceID[S any]() string {
	t := reflect.TypeOf((*S)(nil)).Elem()
	return interfaceIDOf(t)
}

func interfaceIDOf(t reflect.Type) string {
	if t.Kind() == reflect.Interface && t.NumMethod() == 0 && t.Name() == "" {
		return ""
	}
	if t.PkgPath() != "" {
		return t.PkgPath() + "." + t.Name()
	}
	return t.String()
}
