package qcrecord_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	accesserrors "go-inspecta/internal/access/errors"
	"go-inspecta/internal/listing"
	"go-inspecta/internal/qcrecord"
	qcrecordMock "go-inspecta/internal/qcrecord/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupRouter(svc qcrecord.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := qcrecord.NewHandler(svc)
	r.GET("/records", h.List)
	r.POST("/records", h.Create)
	r.DELETE("/records/:id", h.Delete)
	return r
}

func TestHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := qcrecordMock.NewMockService(ctrl)
	router := setupRouter(svc)

	t.Run("type is required", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/records", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("ok", func(t *testing.T) {
		svc.EXPECT().List(gomock.Any(), qcrecord.ListQuery{Type: "kliping"}).
			Return(listing.Page[qcrecord.RecordResponse]{Items: []qcrecord.RecordResponse{}, Page: 1, PageSize: 10}, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/records?type=kliping", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestHandler_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := qcrecordMock.NewMockService(ctrl)
	router := setupRouter(svc)

	body := `{"type":"kliping","plant":"P1","inspection_date":"2026-03-01","result":"ok"}`

	t.Run("created", func(t *testing.T) {
		svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(qcrecord.RecordResponse{Number: "KL-P1-000001"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/records", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "KL-P1-000001")
	})

	t.Run("plant denied", func(t *testing.T) {
		svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(qcrecord.RecordResponse{}, accesserrors.ErrPlantDenied)

		req := httptest.NewRequest(http.MethodPost, "/records", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("shift out of range", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/records", strings.NewReader(`{"type":"kliping","plant":"P1","inspection_date":"2026-03-01","result":"ok","shift":4}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
