// Package introspect exposes a read-only HTTP view of a registry for
// debugging. It is out-of-band tooling: the reference layer itself has no
// wire surface, and nothing in svckit depends on this package.
package introspect

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/svckit/registry"
	"github.com/skillsenselab/svckit/version"
)

// DefaultPath is where Mount attaches the handler.
const DefaultPath = "/debug/registry"

// Handler returns a gin handler that lists the registry's live
// registrations.
func Handler(reg *registry.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		infos := reg.Registrations()
		c.JSON(http.StatusOK, gin.H{
			"version":       version.Short(),
			"timestamp":     time.Now().UTC().Format(time.RFC3339),
			"count":         len(infos),
			"registrations": infos,
		})
	}
}

// Mount attaches the registry view at path (DefaultPath when empty).
func Mount(r gin.IRouter, reg *registry.Registry, path string) {
	if path == "" {
		path = DefaultPath
	}
	r.GET(path, Handler(reg))
}
