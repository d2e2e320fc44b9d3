package list_extras

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-VenueBooking/internal/service/catalog/models"
)

type fakeService struct {
	extras []models.ExtraServiceResponse
	err    error
}

func (f *fakeService) ListActiveExtras(ctx context.Context) ([]models.ExtraServiceResponse, error) {
	return f.extras, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(service CatalogService) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/extras", NewHandler(service, nopLogger{}).Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/extras", nil))
	return rec
}

func TestHandle(t *testing.T) {
	rec := serve(&fakeService{extras: []models.ExtraServiceResponse{
		{ID: 3, Name: "Кальян", PricingType: "complex", SortOrder: 2},
	}})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":3,"name":"Кальян","pricingType":"complex","sortOrder":2}]`, rec.Body.String())
}

func TestHandle_Error(t *testing.T) {
	rec := serve(&fakeService{err: errors.New("db down")})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
