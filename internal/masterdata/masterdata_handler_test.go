package masterdata_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-inspecta/internal/listing"
	"go-inspecta/internal/masterdata"
	masterdataerrors "go-inspecta/internal/masterdata/errors"
	masterdataMock "go-inspecta/internal/masterdata/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupRouter(svc masterdata.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := masterdata.NewHandler(svc)

	r.GET("/areas", h.ListAreas)
	r.POST("/areas", h.CreateArea)
	r.DELETE("/areas/:id", h.DeleteArea)
	r.POST("/bagian", h.CreateBagian)
	r.GET("/supervisors/:id", h.GetSupervisor)
	return r
}

type envelope struct {
	Ok   bool            `json:"ok"`
	Data json.RawMessage `json:"data"`
	Meta struct {
		Total      int64 `json:"total"`
		TotalPages int   `json:"totalPages"`
	} `json:"meta"`
	Error struct {
		Code string `json:"code"`
	} `json:"error"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestHandler_ListAreas(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := masterdataMock.NewMockService(ctrl)
	router := setupRouter(svc)

	svc.EXPECT().
		ListAreas(gomock.Any(), masterdata.ListQuery{Plant: "P1", Page: 1, PageSize: 5}).
		Return(listing.Page[masterdata.AreaResponse]{
			Items:      []masterdata.AreaResponse{{ID: "a1", Name: "Filling", Plant: "P1"}},
			Total:      6,
			Page:       1,
			PageSize:   5,
			TotalPages: 2,
		}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/areas?plant=P1&page=1&page_size=5", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	env := decode(t, w)
	assert.True(t, env.Ok)
	assert.Equal(t, int64(6), env.Meta.Total)
	assert.Equal(t, 2, env.Meta.TotalPages)
}

func TestHandler_ListAreas_InvalidPageSize(t *testing.T) {
	ctrl := gomock.NewController(t)
	router := setupRouter(masterdataMock.NewMockService(ctrl))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/areas?page_size=1000", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListAreas_PageOutOfRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	router := setupRouter(masterdataMock.NewMockService(ctrl))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/areas?page=864691128455135233", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateArea(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := masterdataMock.NewMockService(ctrl)
	router := setupRouter(svc)

	t.Run("created", func(t *testing.T) {
		svc.EXPECT().CreateArea(gomock.Any(), masterdata.AreaRequest{Name: "Filling", Plant: "P1"}).
			Return(masterdata.AreaResponse{ID: "a1", Name: "Filling", Plant: "P1", IsActive: true}, nil)

		body, _ := json.Marshal(map[string]any{"name": "Filling", "plant": "P1"})
		req := httptest.NewRequest(http.MethodPost, "/areas", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("missing plant", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/areas", strings.NewReader(`{"name":"Filling"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_DeleteArea_InUse(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := masterdataMock.NewMockService(ctrl)
	router := setupRouter(svc)

	svc.EXPECT().DeleteArea(gomock.Any(), "a1").Return(masterdataerrors.ErrAreaInUse)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/areas/a1", nil))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "CONFLICT", decode(t, w).Error.Code)
}

func TestHandler_CreateBagian_RejectsBadAreaID(t *testing.T) {
	ctrl := gomock.NewController(t)
	router := setupRouter(masterdataMock.NewMockService(ctrl))

	req := httptest.NewRequest(http.MethodPost, "/bagian", strings.NewReader(`{"area_id":"nope","name":"Line A"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetSupervisor_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := masterdataMock.NewMockService(ctrl)
	router := setupRouter(svc)

	svc.EXPECT().GetSupervisor(gomock.Any(), "s1").Return(masterdata.SupervisorResponse{}, masterdataerrors.ErrSupervisorNotFound)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/supervisors/s1", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
