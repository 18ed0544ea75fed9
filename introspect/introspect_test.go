package introspect

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/svckit/logger"
	"github.com/skillsenselab/svckit/registry"
)

type Echo interface {
	Echo(s string) string
}

type echoService struct{}

func (*echoService) Echo(s string) string { return s }

func TestHandler_ListsRegistrations(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := registry.New(registry.WithLogger(logger.Nop()))
	if _, err := reg.Register(&echoService{},
		registry.WithInterface[Echo](),
		registry.WithProperty("lang", "en"),
		registry.WithRanking(3),
	); err != nil {
		t.Fatal(err)
	}

	router := gin.New()
	Mount(router, reg, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, DefaultPath, nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		Count         int                         `json:"count"`
		Registrations []registry.RegistrationInfo `json:"registrations"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if body.Count != 1 || len(body.Registrations) != 1 {
		t.Fatalf("expected 1 registration, got count=%d len=%d", body.Count, len(body.Registrations))
	}
	info := body.Registrations[0]
	if info.Ranking != 3 || info.Properties["lang"] != "en" {
		t.Errorf("unexpected registration info: %+v", info)
	}
	if len(info.InterfaceIDs) != 1 {
		t.Errorf("expected 1 interface id, got %v", info.InterfaceIDs)
	}
}

func TestHandler_EmptyRegistry(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := registry.New(registry.WithLogger(logger.Nop()))

	router := gin.New()
	Mount(router, reg, "/custom")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/custom", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if body.Count != 0 {
		t.Errorf("expected empty listing, got count=%d", body.Count)
	}
}
