package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockyard/internal/core/apperror"
	"stockyard/internal/domain/depot"
	"stockyard/internal/infrastructure/http/v1/middleware"
)

// fakeDepotRepo is an in-memory depot.Repository for handler tests.
type fakeDepotRepo struct {
	depots map[int64]depot.Depot
	nextID int64
}

func newFakeDepotRepo() *fakeDepotRepo {
	return &fakeDepotRepo{depots: make(map[int64]depot.Depot)}
}

func (r *fakeDepotRepo) List(ctx context.Context) ([]depot.Depot, error) {
	out := make([]depot.Depot, 0, len(r.depots))
	for id := r.nextID; id >= 1; id-- {
		if d, ok := r.depots[id]; ok {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *fakeDepotRepo) GetByID(ctx context.Context, id int64) (*depot.Depot, error) {
	d, ok := r.depots[id]
	if !ok {
		return nil, apperror.NewNotFound("depot", id)
	}
	return &d, nil
}

func (r *fakeDepotRepo) Create(ctx context.Context, in depot.Input) (int64, error) {
	r.nextID++
	r.depots[r.nextID] = depot.Depot{
		ID:       r.nextID,
		Location: in.Location,
		Size:     in.Size,
		Capacity: in.Capacity,
		Type:     in.Type,
		IsRented: in.IsRented,
		Rent:     in.Rent,
	}
	return r.nextID, nil
}

func (r *fakeDepotRepo) Update(ctx context.Context, id int64, in depot.Input) error {
	if _, ok := r.depots[id]; !ok {
		return apperror.NewNotFound("depot", id)
	}
	d := r.depots[id]
	d.Location = in.Location
	d.Size = in.Size
	d.Capacity = in.Capacity
	d.Type = in.Type
	d.IsRented = in.IsRented
	d.Rent = in.Rent
	r.depots[id] = d
	return nil
}

func (r *fakeDepotRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.depots[id]; !ok {
		return apperror.NewNotFound("depot", id)
	}
	delete(r.depots, id)
	return nil
}

func newDepotTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.ErrorHandler())

	h := NewDepotHandler(NewBaseHandler(), depot.NewService(newFakeDepotRepo()))
	g := router.Group("/depots")
	g.GET("/all", h.List)
	g.POST("/create", h.Create)
	g.GET("/depot/:id", h.Get)
	g.PUT("/update/:id", h.Update)
	g.DELETE("/delete/:id", h.Delete)
	return router
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

const depotBody = `{"location":"tunis","size":"10x10","capacity":5,"type":"food","isRented":false,"rent":100}`

func TestDepotCreateThenGet(t *testing.T) {
	router := newDepotTestRouter()

	rec := doJSON(router, http.MethodPost, "/depots/create", depotBody)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, int64(1), created.ID)

	rec = doJSON(router, http.MethodGet, "/depots/depot/1", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var shown struct {
		Data struct {
			Location string `json:"location"`
			IsRented bool   `json:"isRented"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &shown))
	assert.Equal(t, "tunis", shown.Data.Location)
	assert.False(t, shown.Data.IsRented)
}

func TestDepotListEmptyIs404(t *testing.T) {
	router := newDepotTestRouter()

	rec := doJSON(router, http.MethodGet, "/depots/all", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, apperror.CodeNotFound, body.Code)
	assert.Equal(t, "there are no depots in the database", body.Message)
}

func TestDepotListNewestFirst(t *testing.T) {
	router := newDepotTestRouter()

	doJSON(router, http.MethodPost, "/depots/create", depotBody)
	doJSON(router, http.MethodPost, "/depots/create",
		`{"location":"sfax","size":"20x20","capacity":8,"type":"cold","isRented":true,"rent":250}`)

	rec := doJSON(router, http.MethodGet, "/depots/all", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []struct {
			ID       int64  `json:"id"`
			Location string `json:"location"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 2)
	assert.Equal(t, "sfax", body.Data[0].Location)
	assert.Equal(t, "tunis", body.Data[1].Location)
}

func TestDepotCreateValidationFailure(t *testing.T) {
	router := newDepotTestRouter()

	rec := doJSON(router, http.MethodPost, "/depots/create",
		`{"location":"t","size":"x","capacity":0,"type":"","isRented":false,"rent":-1}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body struct {
		Code    string `json:"code"`
		Details struct {
			Fields map[string]string `json:"fields"`
		} `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, apperror.CodeValidation, body.Code)
	assert.Contains(t, body.Details.Fields, "location")
	assert.Contains(t, body.Details.Fields, "rent")
}

func TestDepotMalformedBodyIs422(t *testing.T) {
	router := newDepotTestRouter()

	rec := doJSON(router, http.MethodPost, "/depots/create", `{"location":`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, apperror.CodeInvalidInput, body.Code)
}

func TestDepotBadIDIs422(t *testing.T) {
	router := newDepotTestRouter()

	for _, path := range []string{"/depots/depot/abc", "/depots/depot/0", "/depots/depot/-3"} {
		rec := doJSON(router, http.MethodGet, path, "")
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, path)
	}
}

func TestDepotUpdateMissingIs404(t *testing.T) {
	router := newDepotTestRouter()

	rec := doJSON(router, http.MethodPut, "/depots/update/99", depotBody)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDepotUpdateSuccessEnvelope(t *testing.T) {
	router := newDepotTestRouter()

	doJSON(router, http.MethodPost, "/depots/create", depotBody)

	rec := doJSON(router, http.MethodPut, "/depots/update/1",
		`{"location":"sfax","size":"10x10","capacity":5,"type":"food","isRented":true,"rent":100}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "depot has been updated", body.Message)
}

func TestDepotDeleteTwice(t *testing.T) {
	router := newDepotTestRouter()

	doJSON(router, http.MethodPost, "/depots/create", depotBody)

	rec := doJSON(router, http.MethodDelete, "/depots/delete/1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "depot has been deleted", body.Message)

	rec = doJSON(router, http.MethodDelete, "/depots/delete/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
