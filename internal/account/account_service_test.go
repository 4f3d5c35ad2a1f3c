package account_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"go-inspecta/internal/access"
	accesserrors "go-inspecta/internal/access/errors"
	accessMock "go-inspecta/internal/access/mock"
	"go-inspecta/internal/account"
	accounterrors "go-inspecta/internal/account/errors"
	accountMock "go-inspecta/internal/account/mock"
	"go-inspecta/internal/csvimport"
	"go-inspecta/internal/events"
	"go-inspecta/internal/messaging/kafka"
	kafkaMock "go-inspecta/internal/messaging/kafka/mock"
	"go-inspecta/internal/shared/apperror"
	"go-inspecta/internal/shared/contextutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db       *sql.DB
	sqlMock  sqlmock.Sqlmock
	service  account.Service
	repo     *accountMock.MockRepository
	catalog  *accessMock.MockCatalog
	outbox   *kafkaMock.MockOutboxRepository
	defaults *access.Defaults
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	defaults, err := access.NewDefaults(access.CatalogTags(access.SeedCatalog()))
	assert.NoError(t, err)

	repo := accountMock.NewMockRepository(ctrl)
	catalog := accessMock.NewMockCatalog(ctrl)
	outbox := kafkaMock.NewMockOutboxRepository(ctrl)

	return &serviceDeps{
		db:       db,
		sqlMock:  sqlMock,
		service:  account.NewService(db, repo, catalog, defaults, outbox),
		repo:     repo,
		catalog:  catalog,
		outbox:   outbox,
		defaults: defaults,
	}
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

type outboxMatcher struct {
	eventType string
	requestID string
}

func (m outboxMatcher) Matches(x any) bool {
	e, ok := x.(kafka.OutboxEvent)
	if !ok || e.EventType != m.eventType || e.Topic != events.AccountLifecycleTopic {
		return false
	}
	var payload events.AccountLifecycleEvent
	if err := json.Unmarshal(e.Payload, &payload); err != nil {
		return false
	}
	return payload.EventID == e.ID && payload.RequestID == m.requestID
}

func (m outboxMatcher) String() string {
	return fmt.Sprintf("outbox event %s with request id %q", m.eventType, m.requestID)
}

func (d *serviceDeps) expectOutbox(eventType, rid string) {
	d.outbox.EXPECT().WithTx(gomock.Any()).Return(d.outbox)
	d.outbox.EXPECT().Create(gomock.Any(), outboxMatcher{eventType: eventType, requestID: rid}).Return(nil)
}

func ptr[T any](v T) *T { return &v }

func existing(username, role string, perms ...string) *account.Account {
	id := uuid.New()
	a := &account.Account{
		ID:            id,
		Username:      username,
		FullName:      "Existing User",
		Role:          role,
		IsActive:      true,
		AllowedMenus:  []string{"kliping"},
		AllowedPlants: []string{"Plant-1"},
		CreatedAt:     time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	for _, p := range perms {
		a.Permissions = append(a.Permissions, account.AccountPermission{AccountID: id, Permission: p})
	}
	return a
}

func TestAccountService_Create(t *testing.T) {
	t.Run("success - role bundle when permissions omitted", func(t *testing.T) {
		deps := setupServiceTest(t)
		rid := "REQ-1"
		ctx := contextutil.WithRequestID(context.Background(), rid)

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, a *account.Account) error {
				assert.Equal(t, "12345", a.Username)
				assert.Equal(t, "John Doe", a.FullName)
				assert.Equal(t, "qc_field", a.Role)
				assert.True(t, a.IsActive)
				assert.ElementsMatch(t, []string{access.PermViewRecords, access.PermCreateRecords}, a.PermissionTags())
				assert.Equal(t, []string{"sanitasi_besar"}, []string(a.AllowedMenus))
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte("password123")))
				return nil
			})
		deps.expectOutbox(events.AccountCreated, rid)

		resp, err := deps.service.Create(ctx, account.CreateAccountRequest{
			Username:      " 12345 ",
			Password:      "password123",
			FullName:      "John Doe",
			Role:          "qc_field",
			AllowedMenus:  []string{"sanitasi_besar", " sanitasi_besar"},
			AllowedPlants: []string{"Plant-1"},
		})

		assert.NoError(t, err)
		assert.Equal(t, "12345", resp.Username)
		assert.ElementsMatch(t, []string{access.PermViewRecords, access.PermCreateRecords}, resp.Permissions)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("explicit permissions are validated against the catalog", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := context.Background()

		deps.catalog.EXPECT().Validate(ctx, []string{access.PermViewReports}).Return(nil)
		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, a *account.Account) error {
				assert.Equal(t, []string{access.PermViewReports}, a.PermissionTags())
				assert.False(t, a.IsActive)
				return nil
			})
		deps.expectOutbox(events.AccountCreated, "")

		_, err := deps.service.Create(ctx, account.CreateAccountRequest{
			Username:    "67890",
			Password:    "pass456",
			FullName:    "Jane Smith",
			Role:        "manajer",
			IsActive:    ptr(false),
			Permissions: ptr([]string{access.PermViewReports, access.PermViewReports}),
		})
		assert.NoError(t, err)
	})

	t.Run("unknown permission", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := context.Background()

		deps.catalog.EXPECT().Validate(ctx, []string{"fly"}).
			Return(accesserrors.ErrUnknownPermission.WithDetails([]string{"fly"}))

		_, err := deps.service.Create(ctx, account.CreateAccountRequest{
			Username: "67890", Password: "pass456", FullName: "Jane Smith", Role: "admin",
			Permissions: ptr([]string{"fly"}),
		})
		assert.ErrorIs(t, err, accesserrors.ErrUnknownPermission)
	})

	t.Run("invalid role", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Create(context.Background(), account.CreateAccountRequest{
			Username: "67890", Password: "pass456", FullName: "Jane Smith", Role: "operator",
		})
		assert.ErrorIs(t, err, accesserrors.ErrInvalidRole)
	})

	t.Run("duplicate username -> conflict and rollback", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := context.Background()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_accounts_username"})

		_, err := deps.service.Create(ctx, account.CreateAccountRequest{
			Username: "12345", Password: "password123", FullName: "John Doe", Role: "admin",
		})
		assert.ErrorIs(t, err, accounterrors.ErrAccountAlreadyExists)
		assert.Equal(t, 409, apperror.ToHTTP(err).Status)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestAccountService_Get(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	deps.repo.EXPECT().FindByUsername(ctx, "12345").Return(existing("12345", "admin", access.PermManageUsers), nil)
	deps.repo.EXPECT().FindByUsername(ctx, "99999").Return(nil, gorm.ErrRecordNotFound)

	resp, err := deps.service.Get(ctx, "12345")
	assert.NoError(t, err)
	assert.Equal(t, []string{access.PermManageUsers}, resp.Permissions)
	assert.Equal(t, "2024-01-02 03:04:05", resp.CreatedAt)

	_, err = deps.service.Get(ctx, "99999")
	assert.ErrorIs(t, err, accounterrors.ErrAccountNotFound)
}

func TestAccountService_Update(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := context.Background()
		acc := existing("12345", "qc_field", access.PermViewRecords)

		deps.catalog.EXPECT().Validate(ctx, []string{access.PermViewRecords, access.PermUpdateRecords}).Return(nil)
		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByUsername(ctx, "12345").Return(acc, nil)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, a *account.Account) error {
				assert.Equal(t, "supervisor", a.Role)
				assert.Equal(t, "Renamed User", a.FullName)
				assert.Equal(t, []string{"Plant-1", "Plant-2"}, []string(a.AllowedPlants))
				assert.Equal(t, []string{"kliping"}, []string(a.AllowedMenus))
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte("newpass1")))
				return nil
			})
		deps.repo.EXPECT().ReplacePermissions(ctx, acc.ID, []string{access.PermViewRecords, access.PermUpdateRecords}).Return(nil)
		deps.expectOutbox(events.AccountUpdated, "")

		resp, err := deps.service.Update(ctx, "12345", account.UpdateAccountRequest{
			FullName:      ptr("Renamed User"),
			Role:          ptr("supervisor"),
			Password:      ptr("newpass1"),
			Permissions:   ptr([]string{access.PermViewRecords, access.PermUpdateRecords}),
			AllowedPlants: ptr([]string{"Plant-1", "Plant-2"}),
		})
		assert.NoError(t, err)
		assert.Equal(t, "12345", resp.Username)
		assert.Equal(t, []string{access.PermViewRecords, access.PermUpdateRecords}, resp.Permissions)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("cannot deactivate self", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := contextutil.WithUsername(context.Background(), "12345")

		_, err := deps.service.Update(ctx, "12345", account.UpdateAccountRequest{IsActive: ptr(false)})
		assert.ErrorIs(t, err, accounterrors.ErrSelfDeactivate)
	})

	t.Run("short password", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Update(context.Background(), "12345", account.UpdateAccountRequest{Password: ptr("123")})
		assert.ErrorIs(t, err, accounterrors.ErrPasswordTooShort)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := context.Background()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByUsername(ctx, "99999").Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Update(ctx, "99999", account.UpdateAccountRequest{FullName: ptr("Somebody")})
		assert.ErrorIs(t, err, accounterrors.ErrAccountNotFound)
	})
}

func TestAccountService_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := contextutil.WithUsername(context.Background(), "admin01")
		acc := existing("12345", "qc_field")

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByUsername(ctx, "12345").Return(acc, nil)
		deps.repo.EXPECT().Delete(ctx, acc.ID).Return(nil)
		deps.expectOutbox(events.AccountDeleted, "")

		assert.NoError(t, deps.service.Delete(ctx, "12345"))
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("cannot delete self", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := contextutil.WithUsername(context.Background(), "12345")

		assert.ErrorIs(t, deps.service.Delete(ctx, "12345"), accounterrors.ErrSelfDelete)
	})
}

func TestAccountService_BulkUpdate(t *testing.T) {
	t.Run("failures are counted and do not stop the batch", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := context.Background()
		a1 := existing("111", "qc_field")
		a3 := existing("333", "qc_field")
		perms := []string{access.PermViewRecords}

		deps.catalog.EXPECT().Validate(ctx, perms).Return(nil)

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo).Times(3)
		deps.repo.EXPECT().FindByUsername(ctx, "111").Return(a1, nil)
		deps.repo.EXPECT().FindByUsername(ctx, "222").Return(nil, gorm.ErrRecordNotFound)
		deps.repo.EXPECT().FindByUsername(ctx, "333").Return(a3, nil)
		deps.repo.EXPECT().ReplacePermissions(ctx, a1.ID, perms).Return(nil)
		deps.repo.EXPECT().ReplacePermissions(ctx, a3.ID, perms).Return(nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox).Times(2)
		deps.outbox.EXPECT().Create(gomock.Any(), outboxMatcher{eventType: events.AccountUpdated}).Return(nil).Times(2)

		result, err := deps.service.BulkUpdate(ctx, account.BulkUpdateRequest{
			Usernames:   []string{"111", "222", "333", "111"},
			Permissions: &perms,
		})
		assert.NoError(t, err)
		assert.Equal(t, account.BulkResult{Success: 2, Failed: 1}, result)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("absent fields are untouched", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := context.Background()
		a1 := existing("111", "qc_field", access.PermViewRecords)

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByUsername(ctx, "111").Return(a1, nil)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, a *account.Account) error {
				assert.Equal(t, []string{"Plant-9"}, []string(a.AllowedPlants))
				assert.Equal(t, []string{"kliping"}, []string(a.AllowedMenus))
				return nil
			})
		deps.expectOutbox(events.AccountUpdated, "")

		result, err := deps.service.BulkUpdate(ctx, account.BulkUpdateRequest{
			Usernames:     []string{"111"},
			AllowedPlants: ptr([]string{"Plant-9"}),
		})
		assert.NoError(t, err)
		assert.Equal(t, 1, result.Success)
	})

	t.Run("empty request", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.BulkUpdate(context.Background(), account.BulkUpdateRequest{Usernames: []string{"111"}})
		assert.ErrorIs(t, err, accounterrors.ErrEmptyBulkUpdate)

		_, err = deps.service.BulkUpdate(context.Background(), account.BulkUpdateRequest{Usernames: []string{" "}, AllowedMenus: ptr([]string{})})
		assert.ErrorIs(t, err, accounterrors.ErrEmptyBulkTargets)
	})
}

const importHeader = "nik,password,full_name,role,menus,plants\n"

func TestAccountService_Import(t *testing.T) {
	t.Run("format error aborts with 400", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Import(context.Background(), "nik,password\n1,2\n")
		httpErr := apperror.ToHTTP(err)
		assert.Equal(t, 400, httpErr.Status)
		assert.Equal(t, "Kolom 'full_name' tidak ditemukan di header", httpErr.Message)

		var fe *csvimport.FormatError
		assert.True(t, errors.As(err, &fe))
	})

	t.Run("validation errors abort with the full list", func(t *testing.T) {
		deps := setupServiceTest(t)

		text := importHeader +
			"123,abcdef,Ann,qc_field,,\n" +
			"123,abcdef,Bob,qc_field,,\n" +
			"45,abc,Al,qc_field,,\n"

		_, err := deps.service.Import(context.Background(), text)
		assert.ErrorIs(t, err, accounterrors.ErrImportValidation)

		httpErr := apperror.ToHTTP(err)
		assert.Equal(t, 422, httpErr.Status)
		assert.Equal(t, []string{
			"Baris 2: NIK '123' duplikat",
			"Baris 3: NIK minimal 3 karakter",
			"Baris 3: Password minimal 6 karakter",
			"Baris 3: Nama lengkap minimal 3 karakter",
		}, httpErr.Details)
	})

	t.Run("rows are created sequentially and failures counted", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := context.Background()

		text := importHeader +
			"12345,password123,John Doe,qc_field,sanitasi_besar,Plant-1\n" +
			`67890,pass456,Jane Smith,supervisor,"sanitasi_besar,kliping","Plant-1,Plant-2"` + "\n"

		expectTx(t, deps.sqlMock, true)
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo).Times(2)

		first := deps.repo.EXPECT().Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, a *account.Account) error {
				assert.Equal(t, "12345", a.Username)
				return nil
			})
		deps.repo.EXPECT().Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, a *account.Account) error {
				assert.Equal(t, "67890", a.Username)
				assert.Equal(t, []string{"sanitasi_besar", "kliping"}, []string(a.AllowedMenus))
				assert.ElementsMatch(t, deps.defaults.Bundle(access.RoleSupervisor), a.PermissionTags())
				return &pgconn.PgError{Code: "23505"}
			}).After(first)
		deps.expectOutbox(events.AccountCreated, "")

		result, err := deps.service.Import(ctx, text)
		assert.NoError(t, err)
		assert.Equal(t, account.BulkResult{Success: 1, Failed: 1}, result)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestAccountService_PreviewImport(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	text := importHeader +
		"12345,password123,John Doe,qc_field,,\n" +
		"12345,password123,John Again,qc_field,,\n"

	deps.repo.EXPECT().ExistingUsernames(ctx, []string{"12345", "12345"}).Return([]string{"12345"}, nil)

	preview, err := deps.service.PreviewImport(ctx, text)
	assert.NoError(t, err)
	assert.Len(t, preview.Rows, 2)
	assert.False(t, preview.Valid)
	assert.Equal(t, []string{"Baris 2: NIK '12345' duplikat"}, preview.Errors)
	assert.Equal(t, []string{"12345"}, preview.Existing)
}

func TestAccountService_List(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	inactiveAdmin := existing("300", "admin")
	inactiveAdmin.IsActive = false
	deps.repo.EXPECT().FindAll(ctx).Return([]account.Account{
		*existing("100", "admin"),
		*existing("200", "qc_field"),
		*inactiveAdmin,
		*existing("400", "admin"),
	}, nil).Times(2)

	page, err := deps.service.List(ctx, account.ListQuery{Role: "admin", Status: "active", SortBy: "username", Order: "desc"})
	assert.NoError(t, err)
	assert.Equal(t, 2, page.Total)
	assert.Equal(t, "400", page.Items[0].Username)
	assert.Equal(t, "100", page.Items[1].Username)

	page, err = deps.service.List(ctx, account.ListQuery{Search: "20", Scope: "username"})
	assert.NoError(t, err)
	assert.Equal(t, 1, page.Total)

	_, err = deps.service.List(ctx, account.ListQuery{SortBy: "salary"})
	assert.ErrorIs(t, err, accounterrors.ErrInvalidListQuery)
}

func TestAccountService_Template(t *testing.T) {
	deps := setupServiceTest(t)
	assert.Equal(t, csvimport.Template(), deps.service.Template())
}

func TestAccountService_SeedAdmin(t *testing.T) {
	t.Run("creates admin on empty table", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := context.Background()

		deps.repo.EXPECT().Count(ctx).Return(int64(0), nil)
		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, a *account.Account) error {
				assert.Equal(t, "admin", a.Role)
				assert.ElementsMatch(t, access.CatalogTags(access.SeedCatalog()), a.PermissionTags())
				return nil
			})
		deps.expectOutbox(events.AccountCreated, "")

		created, err := deps.service.SeedAdmin(ctx, "00001", "admin123", "Administrator")

		assert.NoError(t, err)
		assert.True(t, created)
	})

	t.Run("skips when accounts exist", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := context.Background()
		deps.repo.EXPECT().Count(ctx).Return(int64(3), nil)

		created, err := deps.service.SeedAdmin(ctx, "00001", "admin123", "Administrator")

		assert.NoError(t, err)
		assert.False(t, created)
	})
}
