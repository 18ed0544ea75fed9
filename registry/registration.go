package registry

import "github.com/skillsenselab/svckit/serviceref"

// metadata is the frozen per-registration capability set handed to every
// reference. Never mutated after publish.
type metadata struct {
	ids map[string]struct{}
}

func newMetadata(interfaceIDs []string) *metadata {
	ids := make(map[string]struct{}, len(interfaceIDs))
	for _, id := range interfaceIDs {
		ids[id] = struct{}{}
	}
	return &metadata{ids: ids}
}

// Satisfies implements serviceref.Metadata.
func (m *metadata) Satisfies(interfaceID string) bool {
	_, ok := m.ids[interfaceID]
	return ok
}

// registration is one publish event. All fields are set at publish time;
// unregistering removes the record from the registry's indexes but the
// record itself stays frozen for references still holding its metadata.
type registration struct {
	id           serviceref.ID
	seq          uint64
	instance     any
	interfaceIDs []string
	properties   map[string]string
	ranking      int
	meta         *metadata
}

// primary returns the interface id the registration was primarily published
// under (the first one given).
func (reg *registration) primary() string {
	return reg.interfaceIDs[0]
}

// ref returns a reference to this registration bound to interfaceID.
func (reg *registration) ref(interfaceID string) serviceref.Ref {
	return serviceref.New(reg.id, interfaceID, reg.meta)
}

// matches reports whether the registration's properties satisfy every
// key-value pair in filter. An empty filter matches everything.
func (reg *registration) matches(filter map[string]string) bool {
	for k, want := range filter {
		if got, ok := reg.properties[k]; !ok || got != want {
			return false
		}
	}
	return true
}

// RegistrationInfo describes one live registration for introspection.
type RegistrationInfo struct {
	ID           string            `json:"id"`
	InterfaceIDs []string          `json:"interface_ids"`
	Ranking      int               `json:"ranking"`
	Properties   map[string]string `json:"properties,omitempty"`
}
