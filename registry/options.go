package registry

import (
	"github.com/skillsenselab/svckit/errors"
	"github.com/skillsenselab/svckit/logger"
	"github.com/skillsenselab/svckit/observability"
	"github.com/skillsenselab/svckit/serviceref"
)

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for registry events. Defaults to a
// component-tagged global logger.
func WithLogger(l *logger.Logger) Option {
	return func(r *Registry) { r.log = l }
}

// WithMetrics attaches a registry instrument set. Nil disables recording.
func WithMetrics(m *observability.RegistryMetrics) Option {
	return func(r *Registry) { r.metrics = m }
}

// registerConfig is the internal state RegisterOption funcs build up.
type registerConfig struct {
	interfaceIDs []string
	checks       []func(instance any) error
	properties   map[string]string
	ranking      int
}

// registerInput is the validation view of registerConfig.
type registerInput struct {
	InterfaceIDs []string `validate:"required,min=1,dive,required"`
}

// RegisterOption configures one Register call.
type RegisterOption func(*registerConfig)

// WithInterface publishes the instance under the interface id of S and
// records a bind-time check that the instance actually implements S.
func WithInterface[S any]() RegisterOption {
	interfaceID := serviceref.InterfaceID[S]()
	return func(c *registerConfig) {
		c.interfaceIDs = append(c.interfaceIDs, interfaceID)
		c.checks = append(c.checks, func(instance any) error {
			if _, ok := instance.(S); !ok {
				return errors.Incompatible(interfaceID)
			}
			return nil
		})
	}
}

// WithInterfaceIDs publishes the instance under explicit interface ids.
// No implementation check is possible for ids given as plain strings; the
// caller vouches for them.
func WithInterfaceIDs(interfaceIDs ...string) RegisterOption {
	return func(c *registerConfig) {
		c.interfaceIDs = append(c.interfaceIDs, interfaceIDs...)
	}
}

// WithProperties attaches string properties used by filtered lookups.
func WithProperties(properties map[string]string) RegisterOption {
	return func(c *registerConfig) {
		if c.properties == nil {
			c.properties = make(map[string]string, len(properties))
		}
		for k, v := range properties {
			c.properties[k] = v
		}
	}
}

// WithProperty attaches a single property.
func WithProperty(key, value string) RegisterOption {
	return func(c *registerConfig) {
		if c.properties == nil {
			c.properties = make(map[string]string, 1)
		}
		c.properties[key] = value
	}
}

// WithRanking sets the registration's ranking. Lookups prefer higher
// rankings; among equals the earliest registration wins. Defaults to 0.
func WithRanking(ranking int) RegisterOption {
	return func(c *registerConfig) { c.ranking = ranking }
}
