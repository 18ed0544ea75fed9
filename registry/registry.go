package registry

import (
	"context"
	"reflect"
	"sort"
	"sync"

	"github.com/skillsenselab/svckit/errors"
	"github.com/skillsenselab/svckit/logger"
	"github.com/skillsenselab/svckit/observability"
	"github.com/skillsenselab/svckit/serviceref"
	"github.com/skillsenselab/svckit/validation"
)

// Registry is the in-process service registry. Safe for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	log        *logger.Logger
	metrics    *observability.RegistryMetrics
	seq        uint64
	entries    map[serviceref.ID]*registration
	byIface    map[string][]*registration
	byInstance map[any]*registration
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		entries:    make(map[serviceref.ID]*registration),
		byIface:    make(map[string][]*registration),
		byInstance: make(map[any]*registration),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.log == nil {
		r.log = logger.WithComponent("registry")
	}
	return r
}

// Register publishes instance under the interface ids accumulated from opts
// and returns a reference bound to the first of them. The instance must be
// a non-nil pointer: pointer identity is what resolves an instance back to
// its reference, and it keeps two equal-valued services from colliding.
func (r *Registry) Register(instance any, opts ...RegisterOption) (serviceref.Ref, error) {
	if instance == nil {
		return serviceref.Ref{}, errors.InvalidArgument("cannot register a nil instance")
	}
	if reflect.TypeOf(instance).Kind() != reflect.Pointer {
		return serviceref.Ref{}, errors.InvalidArgument("instance must be a pointer to the service implementation")
	}

	var cfg registerConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validation.Validate(registerInput{InterfaceIDs: cfg.interfaceIDs}); err != nil {
		return serviceref.Ref{}, err
	}
	for _, check := range cfg.checks {
		if err := check(instance); err != nil {
			return serviceref.Ref{}, err
		}
	}

	interfaceIDs := dedupe(cfg.interfaceIDs)

	r.mu.Lock()
	if _, exists := r.byInstance[instance]; exists {
		r.mu.Unlock()
		return serviceref.Ref{}, errors.InvalidArgument("instance is already registered")
	}
	r.seq++
	reg := &registration{
		id:           serviceref.NewID(),
		seq:          r.seq,
		instance:     instance,
		interfaceIDs: interfaceIDs,
		properties:   cfg.properties,
		ranking:      cfg.ranking,
		meta:         newMetadata(interfaceIDs),
	}
	r.entries[reg.id] = reg
	r.byInstance[instance] = reg
	for _, id := range interfaceIDs {
		r.byIface[id] = append(r.byIface[id], reg)
	}
	r.mu.Unlock()

	r.log.Info("registration published", logger.Fields(
		logger.FieldRegistration, reg.id.String(),
		logger.FieldInterfaceID, reg.primary(),
		"interface_count", len(interfaceIDs),
		logger.FieldRanking, reg.ranking,
	))
	r.metrics.RecordRegistration(context.Background(), reg.primary())

	return reg.ref(reg.primary()), nil
}

// Reference returns the best reference for interfaceID: highest ranking,
// earliest registration on ties. Returns the invalid reference when nothing
// is published under that id.
func (r *Registry) Reference(interfaceID string) serviceref.Ref {
	refs := r.References(interfaceID, nil)
	if len(refs) == 0 {
		return serviceref.Ref{}
	}
	return refs[0]
}

// References returns references to every registration published under
// interfaceID whose properties satisfy filter, best-first. A nil filter
// matches everything.
func (r *Registry) References(interfaceID string, filter map[string]string) []serviceref.Ref {
	r.mu.RLock()
	candidates := r.byIface[interfaceID]
	matched := make([]*registration, 0, len(candidates))
	for _, reg := range candidates {
		if reg.matches(filter) {
			matched = append(matched, reg)
		}
	}
	r.mu.RUnlock()

	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].ranking != matched[j].ranking {
			return matched[i].ranking > matched[j].ranking
		}
		return matched[i].seq < matched[j].seq
	})

	refs := make([]serviceref.Ref, len(matched))
	for i, reg := range matched {
		refs[i] = reg.ref(interfaceID)
	}

	hit := len(refs) > 0
	if !hit {
		r.log.Debug("lookup missed", logger.Fields(logger.FieldInterfaceID, interfaceID))
	}
	r.metrics.RecordLookup(context.Background(), interfaceID, hit)

	return refs
}

// Service returns the live instance behind ref. Invalid references and
// references to withdrawn registrations yield coded errors.
func (r *Registry) Service(ref serviceref.Ref) (any, error) {
	if !ref.IsValid() {
		return nil, errors.InvalidArgument("cannot retrieve a service through an invalid reference")
	}

	r.mu.RLock()
	reg, ok := r.entries[ref.ID()]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.NotFound("registration", ref.ID().String())
	}
	return reg.instance, nil
}

// ServiceFor returns the instance behind a typed reference, asserted to S.
func ServiceFor[S any](r *Registry, ref serviceref.TypedRef[S]) (S, error) {
	var zero S
	instance, err := r.Service(ref.Ref())
	if err != nil {
		return zero, err
	}
	svc, ok := instance.(S)
	if !ok {
		return zero, errors.Incompatible(serviceref.InterfaceID[S]())
	}
	return svc, nil
}

// Unregister withdraws the registration behind ref. References already
// handed out keep their identity and metadata but no longer resolve to a
// service.
func (r *Registry) Unregister(ref serviceref.Ref) error {
	if !ref.IsValid() {
		return errors.InvalidArgument("cannot unregister an invalid reference")
	}

	r.mu.Lock()
	reg, ok := r.entries[ref.ID()]
	if !ok {
		r.mu.Unlock()
		return errors.NotFound("registration", ref.ID().String())
	}
	delete(r.entries, reg.id)
	delete(r.byInstance, reg.instance)
	for _, id := range reg.interfaceIDs {
		r.byIface[id] = removeRegistration(r.byIface[id], reg)
		if len(r.byIface[id]) == 0 {
			delete(r.byIface, id)
		}
	}
	r.mu.Unlock()

	r.log.Info("registration withdrawn", logger.Fields(
		logger.FieldRegistration, reg.id.String(),
		logger.FieldInterfaceID, reg.primary(),
	))
	r.metrics.RecordUnregistration(context.Background())

	return nil
}

// ReferenceOf implements serviceref.Resolver: it maps a live instance back
// to the reference that produced it, bound to the registration's primary
// interface id. Unknown or non-pointer instances yield the invalid
// reference.
func (r *Registry) ReferenceOf(instance any) serviceref.Ref {
	if instance == nil || reflect.TypeOf(instance).Kind() != reflect.Pointer {
		return serviceref.Ref{}
	}

	r.mu.RLock()
	reg, ok := r.byInstance[instance]
	r.mu.RUnlock()
	if !ok {
		return serviceref.Ref{}
	}
	return reg.ref(reg.primary())
}

// Registrations returns a snapshot of every live registration in
// registration order, for introspection.
func (r *Registry) Registrations() []RegistrationInfo {
	r.mu.RLock()
	regs := make([]*registration, 0, len(r.entries))
	for _, reg := range r.entries {
		regs = append(regs, reg)
	}
	r.mu.RUnlock()

	sort.Slice(regs, func(i, j int) bool { return regs[i].seq < regs[j].seq })

	infos := make([]RegistrationInfo, len(regs))
	for i, reg := range regs {
		infos[i] = RegistrationInfo{
			ID:           reg.id.String(),
			InterfaceIDs: append([]string(nil), reg.interfaceIDs...),
			Ranking:      reg.ranking,
			Properties:   copyProperties(reg.properties),
		}
	}
	return infos
}

// Len returns the number of live registrations.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func removeRegistration(regs []*registration, target *registration) []*registration {
	out := regs[:0]
	for _, reg := range regs {
		if reg != target {
			out = append(out, reg)
		}
	}
	return out
}

func copyProperties(props map[string]string) map[string]string {
	if len(props) == 0 {
		return nil
	}
	out := make(map[string]string, len(props))
	for k, v := range props {
		out[k] = v
	}
	return out
}
