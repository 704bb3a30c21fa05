package rest

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/laborcard-backend/internal/domain"
	"github.com/heartmarshall/laborcard-backend/internal/transport/dataloader"
	"github.com/heartmarshall/laborcard-backend/pkg/ctxutil"
)

//go:generate moq -out auth_service_mock_test.go -pkg rest . authService
//go:generate moq -out reference_service_mock_test.go -pkg rest . referenceService
//go:generate moq -out workcard_service_mock_test.go -pkg rest . workcardService
//go:generate moq -out operation_lookup_mock_test.go -pkg rest . operationLookup
//go:generate moq -out scrap_service_mock_test.go -pkg rest . scrapService
//go:generate moq -out scrap_exporter_mock_test.go -pkg rest . scrapExporter
//go:generate moq -out report_service_mock_test.go -pkg rest . reportService

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// serve routes req through a mux holding only pattern, so path values are
// parsed exactly as in production.
func serve(pattern string, h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	mux := http.NewServeMux()
	mux.Handle(pattern, dataloader.Middleware(testLoaderRepos())(h))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func newRequest(method, target, body string) *http.Request {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func asWorker(req *http.Request, workerID uuid.UUID) *http.Request {
	return req.WithContext(ctxutil.WithWorkerID(req.Context(), workerID))
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

// ---------------------------------------------------------------------------
// Loader repositories
// ---------------------------------------------------------------------------

var (
	testAreaID    = uuid.MustParse("0b8c2a36-4a52-4f4e-9a53-0f6c0e6f7a01")
	testOpID      = uuid.MustParse("0b8c2a36-4a52-4f4e-9a53-0f6c0e6f7a02")
	testSubtypeID = uuid.MustParse("0b8c2a36-4a52-4f4e-9a53-0f6c0e6f7a03")
	testWorker    = domain.Worker{
		ID:         uuid.MustParse("0b8c2a36-4a52-4f4e-9a53-0f6c0e6f7a04"),
		PersonalID: "1042",
		FirstName:  "Olena",
		LastName:   "Kovalenko",
		IsActive:   true,
	}
)

type stubReferenceRepo struct{}

func (stubReferenceRepo) GetAreasByIDs(context.Context, []uuid.UUID) ([]domain.ProductionArea, error) {
	return []domain.ProductionArea{{ID: testAreaID, Name: "Pressing"}}, nil
}

func (stubReferenceRepo) GetOperationTypesByIDs(context.Context, []uuid.UUID) ([]domain.OperationType, error) {
	return []domain.OperationType{{ID: testOpID, Name: "Stamping"}}, nil
}

func (stubReferenceRepo) GetOperationSubtypesByIDs(context.Context, []uuid.UUID) ([]domain.OperationSubtype, error) {
	return []domain.OperationSubtype{{ID: testSubtypeID, Name: "Deep draw"}}, nil
}

type stubWorkerRepo struct{}

func (stubWorkerRepo) GetByIDs(context.Context, []uuid.UUID) ([]domain.Worker, error) {
	return []domain.Worker{testWorker}, nil
}

func testLoaderRepos() *dataloader.Repos {
	return &dataloader.Repos{Reference: stubReferenceRepo{}, Worker: stubWorkerRepo{}}
}
