package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	controller "github.com/mason-build/mason/pkg/controller/http"
	"github.com/mason-build/mason/pkg/domain/interfaces"
	"github.com/mason-build/mason/pkg/domain/model"
)

func newTestInput() *interfaces.ApplyInput {
	return &interfaces.ApplyInput{Manifest: model.DefaultManifest()}
}

func TestHealthEndpoint(t *testing.T) {
	ctx := context.Background()

	server, err := controller.NewServer(
		ctx,
		&mockApplyUseCase{},
		newTestInput,
		controller.WithAddr("localhost:0"),
		controller.WithAPIToken("test-token"),
	)
	gt.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	server.Handler.ServeHTTP(w, req)

	gt.Number(t, w.Code).Equal(http.StatusOK)

	var status model.HealthStatus
	gt.NoError(t, json.NewDecoder(w.Body).Decode(&status))
	gt.Value(t, status.Status).Equal("healthy")
	gt.Value(t, status.Service).Equal("mason")
	gt.Value(t, status.Version).NotEqual("")
}
