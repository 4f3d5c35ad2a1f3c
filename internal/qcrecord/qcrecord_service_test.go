package qcrecord_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"

	"go-inspecta/internal/access"
	accesserrors "go-inspecta/internal/access/errors"
	"go-inspecta/internal/listing"
	"go-inspecta/internal/qcrecord"
	qcrecorderrors "go-inspecta/internal/qcrecord/errors"
	qcrecordMock "go-inspecta/internal/qcrecord/mock"
	counterMock "go-inspecta/internal/shared/counter/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service qcrecord.Service
	repo    *qcrecordMock.MockRepository
	counter *counterMock.MockRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := qcrecordMock.NewMockRepository(ctrl)
	ctr := counterMock.NewMockRepository(ctrl)

	return &serviceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: qcrecord.NewService(db, repo, ctr),
		repo:    repo,
		counter: ctr,
	}
}

func fieldCtx() context.Context {
	return access.WithIdentity(context.Background(), &access.Identity{
		Username:      "12345",
		Role:          access.RoleQCField,
		IsActive:      true,
		Permissions:   []string{access.PermViewRecords, access.PermCreateRecords},
		AllowedMenus:  []string{"kliping"},
		AllowedPlants: []string{"P1"},
	})
}

func validRequest() qcrecord.CreateRecordRequest {
	return qcrecord.CreateRecordRequest{
		Type:           "kliping",
		Plant:          "P1",
		Line:           2,
		InspectionDate: "2026-03-01",
		Shift:          1,
		Result:         "ok",
		Payload:        json.RawMessage(`{"temperature": 4}`),
	}
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "KL-P1-000042", qcrecord.FormatNumber(qcrecord.TypeKliping, "p1", 42))
	assert.Equal(t, "SB-P2-1234567", qcrecord.FormatNumber(qcrecord.TypeSanitasiBesar, "P2", 1234567))
}

func TestService_Create(t *testing.T) {
	t.Run("success numbers the record per plant", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := fieldCtx()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.counter.EXPECT().GetNextValue(ctx, "P1", "kliping").Return(int64(7), nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, r *qcrecord.Record) error {
			assert.Equal(t, "KL-P1-000007", r.Number)
			assert.Equal(t, "12345", r.CreatedBy)
			assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), r.InspectionDate)
			return nil
		})

		resp, err := deps.service.Create(ctx, validRequest())

		assert.NoError(t, err)
		assert.Equal(t, "KL-P1-000007", resp.Number)
		assert.Equal(t, "2026-03-01", resp.InspectionDate)
		assert.JSONEq(t, `{"temperature": 4}`, string(resp.Payload))
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("menu not allowed", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := validRequest()
		req.Type = "sanitasi_besar"

		_, err := deps.service.Create(fieldCtx(), req)

		assert.ErrorIs(t, err, accesserrors.ErrMenuDenied)
	})

	t.Run("plant not allowed", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := validRequest()
		req.Plant = "P9"

		_, err := deps.service.Create(fieldCtx(), req)

		assert.ErrorIs(t, err, accesserrors.ErrPlantDenied)
	})

	t.Run("no session", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Create(context.Background(), validRequest())

		assert.ErrorIs(t, err, accesserrors.ErrUnauthenticated)
	})

	t.Run("unknown type", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := validRequest()
		req.Type = "laporan"

		_, err := deps.service.Create(fieldCtx(), req)

		assert.ErrorIs(t, err, qcrecorderrors.ErrInvalidType)
	})

	t.Run("payload must be an object", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := validRequest()
		req.Payload = json.RawMessage(`[1,2]`)

		_, err := deps.service.Create(fieldCtx(), req)

		assert.ErrorIs(t, err, qcrecorderrors.ErrInvalidPayload)
	})

	t.Run("bad date", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := validRequest()
		req.InspectionDate = "01/03/2026"

		_, err := deps.service.Create(fieldCtx(), req)

		assert.ErrorIs(t, err, qcrecorderrors.ErrInvalidDate)
	})

	t.Run("counter failure rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := fieldCtx()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.counter.EXPECT().GetNextValue(ctx, "P1", "kliping").Return(int64(0), errors.New("db down"))

		_, err := deps.service.Create(ctx, validRequest())

		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestService_List(t *testing.T) {
	t.Run("scoped to allowed plants", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := fieldCtx()

		deps.repo.EXPECT().FindPage(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, f qcrecord.Filter) ([]qcrecord.Record, int64, error) {
			assert.Equal(t, qcrecord.TypeKliping, f.Type)
			assert.Equal(t, []string{"P1"}, f.AllowedPlants)
			assert.Equal(t, 10, f.Offset)
			assert.Equal(t, 10, f.Limit)
			assert.NotNil(t, f.From)
			return []qcrecord.Record{{ID: uuid.New(), Number: "KL-P1-000011", Type: "kliping", Plant: "P1"}}, 11, nil
		})

		page, err := deps.service.List(ctx, qcrecord.ListQuery{Type: "kliping", From: "2026-01-01", Page: 2})

		assert.NoError(t, err)
		assert.Equal(t, 11, page.Total)
		assert.Equal(t, 2, page.TotalPages)
		assert.Len(t, page.Items, 1)
	})

	t.Run("page number capped before offset", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := fieldCtx()

		deps.repo.EXPECT().FindPage(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, f qcrecord.Filter) ([]qcrecord.Record, int64, error) {
			assert.Equal(t, (listing.MaxPage-1)*10, f.Offset)
			return nil, 3, nil
		})

		page, err := deps.service.List(ctx, qcrecord.ListQuery{Type: "kliping", Page: math.MaxInt})

		assert.NoError(t, err)
		assert.Equal(t, listing.MaxPage, page.Page)
		assert.Empty(t, page.Items)
	})

	t.Run("reversed date range", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.List(fieldCtx(), qcrecord.ListQuery{Type: "kliping", From: "2026-02-01", To: "2026-01-01"})

		assert.ErrorIs(t, err, qcrecorderrors.ErrInvalidDateRange)
	})

	t.Run("foreign plant filter", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.List(fieldCtx(), qcrecord.ListQuery{Type: "kliping", Plant: "P2"})

		assert.ErrorIs(t, err, accesserrors.ErrPlantDenied)
	})
}

func TestService_Get(t *testing.T) {
	id := uuid.New()

	t.Run("hidden when plant not allowed", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := fieldCtx()
		deps.repo.EXPECT().FindByID(ctx, id).Return(&qcrecord.Record{ID: id, Type: "kliping", Plant: "P2"}, nil)

		_, err := deps.service.Get(ctx, id.String())

		assert.ErrorIs(t, err, qcrecorderrors.ErrRecordNotFound)
	})

	t.Run("missing", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := fieldCtx()
		deps.repo.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Get(ctx, id.String())

		assert.ErrorIs(t, err, qcrecorderrors.ErrRecordNotFound)
	})
}

func TestService_UpdateAndDelete(t *testing.T) {
	id := uuid.New()
	stored := func() *qcrecord.Record {
		return &qcrecord.Record{ID: id, Number: "KL-P1-000001", Type: "kliping", Plant: "P1", Result: "ok"}
	}

	t.Run("update result", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := fieldCtx()
		result := "not_ok"
		deps.repo.EXPECT().FindByID(ctx, id).Return(stored(), nil)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

		resp, err := deps.service.Update(ctx, id.String(), qcrecord.UpdateRecordRequest{Result: &result})

		assert.NoError(t, err)
		assert.Equal(t, "not_ok", resp.Result)
	})

	t.Run("delete", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := fieldCtx()
		deps.repo.EXPECT().FindByID(ctx, id).Return(stored(), nil)
		deps.repo.EXPECT().Delete(ctx, id).Return(nil)

		assert.NoError(t, deps.service.Delete(ctx, id.String()))
	})
}
