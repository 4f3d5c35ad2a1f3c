package account

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"go-inspecta/internal/access"
	accesserrors "go-inspecta/internal/access/errors"
	accounterrors "go-inspecta/internal/account/errors"
	"go-inspecta/internal/csvimport"
	"go-inspecta/internal/events"
	"go-inspecta/internal/listing"
	"go-inspecta/internal/messaging/kafka"
	"go-inspecta/internal/shared/apperror"
	"go-inspecta/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const aggregateType = "account"

//go:generate mockgen -source=account_service.go -destination=mock/account_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, q ListQuery) (listing.Page[AccountResponse], error)
	Get(ctx context.Context, username string) (AccountResponse, error)
	Create(ctx context.Context, req CreateAccountRequest) (AccountResponse, error)
	Update(ctx context.Context, username string, req UpdateAccountRequest) (AccountResponse, error)
	Delete(ctx context.Context, username string) error
	BulkUpdate(ctx context.Context, req BulkUpdateRequest) (BulkResult, error)
	Import(ctx context.Context, csvText string) (BulkResult, error)
	PreviewImport(ctx context.Context, csvText string) (ImportPreview, error)
	Template() string
	SeedAdmin(ctx context.Context, username, password, fullName string) (bool, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	catalog  access.Catalog
	defaults *access.Defaults
	outbox   kafka.OutboxRepository
	hashCost int
	logger   *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	catalog access.Catalog,
	defaults *access.Defaults,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("account.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("account.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		catalog:  catalog,
		defaults: defaults,
		outbox:   outboxRepo,
		hashCost: bcrypt.DefaultCost,
		logger:   l,
	}
}

func (s *service) List(ctx context.Context, q ListQuery) (listing.Page[AccountResponse], error) {
	lq := q.toListing()
	if err := listSchema.Check(lq); err != nil {
		return listing.Page[AccountResponse]{}, accounterrors.ErrInvalidListQuery.WithDetails(err.Error())
	}

	accounts, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("list accounts failed", zap.Error(err))
		return listing.Page[AccountResponse]{}, mapRepositoryError(err)
	}

	resp := make([]AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		resp = append(resp, mapToResponse(a))
	}
	return listing.Apply(resp, listSchema, lq), nil
}

func (s *service) Get(ctx context.Context, username string) (AccountResponse, error) {
	a, err := s.repo.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return AccountResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*a), nil
}

func (s *service) Create(ctx context.Context, req CreateAccountRequest) (AccountResponse, error) {
	return s.create(ctx, req, events.SourceManual)
}

// create is shared by manual creation and CSV import.
func (s *service) create(ctx context.Context, req CreateAccountRequest, source string) (AccountResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	username := strings.TrimSpace(req.Username)
	s.logger.Debug("create account requested",
		zap.String("request_id", rid),
		zap.String("username", username),
		zap.String("role", req.Role),
		zap.String("source", source),
	)

	role, ok := access.ParseRole(req.Role)
	if !ok {
		return AccountResponse{}, accesserrors.ErrInvalidRole
	}
	fullName := strings.TrimSpace(req.FullName)
	if utf8.RuneCountInString(fullName) < csvimport.MinFullNameLength {
		return AccountResponse{}, accounterrors.ErrFullNameTooShort
	}
	if utf8.RuneCountInString(req.Password) < csvimport.MinPasswordLength {
		return AccountResponse{}, accounterrors.ErrPasswordTooShort
	}

	perms, err := s.resolvePermissions(ctx, role, req.Permissions)
	if err != nil {
		return AccountResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.hashCost)
	if err != nil {
		s.logger.Error("hash password failed", zap.Error(err))
		return AccountResponse{}, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	id := uuid.New()
	acc := &Account{
		ID:            id,
		Username:      username,
		FullName:      fullName,
		PasswordHash:  string(hash),
		Role:          role.String(),
		IsActive:      isActive,
		AllowedMenus:  access.NormalizeSet(req.AllowedMenus),
		AllowedPlants: access.NormalizeSet(req.AllowedPlants),
		Permissions:   permissionRows(id, perms),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create account begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return AccountResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, acc); err != nil {
		s.logger.Error("create account persist failed", zap.String("username", username), zap.Error(err))
		return AccountResponse{}, mapRepositoryError(err)
	}
	if err := s.queueEvent(ctx, tx, events.AccountCreated, acc, source); err != nil {
		s.logger.Error("create account outbox persist failed", zap.String("username", username), zap.Error(err))
		return AccountResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create account commit failed", zap.String("request_id", rid), zap.Error(err))
		return AccountResponse{}, err
	}

	s.logger.Info("create account success",
		zap.String("request_id", rid),
		zap.String("username", username),
		zap.String("account_id", id.String()),
	)
	return mapToResponse(*acc), nil
}

func (s *service) Update(ctx context.Context, username string, req UpdateAccountRequest) (AccountResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	username = strings.TrimSpace(username)
	s.logger.Debug("update account requested", zap.String("request_id", rid), zap.String("username", username))

	if req.IsActive != nil && !*req.IsActive && contextutil.GetUsername(ctx) == username {
		return AccountResponse{}, accounterrors.ErrSelfDeactivate
	}

	var role access.Role
	if req.Role != nil {
		r, ok := access.ParseRole(*req.Role)
		if !ok {
			return AccountResponse{}, accesserrors.ErrInvalidRole
		}
		role = r
	}
	var fullName string
	if req.FullName != nil {
		fullName = strings.TrimSpace(*req.FullName)
		if utf8.RuneCountInString(fullName) < csvimport.MinFullNameLength {
			return AccountResponse{}, accounterrors.ErrFullNameTooShort
		}
	}
	var hash []byte
	if req.Password != nil {
		if utf8.RuneCountInString(*req.Password) < csvimport.MinPasswordLength {
			return AccountResponse{}, accounterrors.ErrPasswordTooShort
		}
		h, err := bcrypt.GenerateFromPassword([]byte(*req.Password), s.hashCost)
		if err != nil {
			s.logger.Error("hash password failed", zap.Error(err))
			return AccountResponse{}, err
		}
		hash = h
	}
	var perms []string
	if req.Permissions != nil {
		perms = access.NormalizeSet(*req.Permissions)
		if err := s.catalog.Validate(ctx, perms); err != nil {
			return AccountResponse{}, err
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update account begin tx failed", zap.Error(err))
		return AccountResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	acc, err := qtx.FindByUsername(ctx, username)
	if err != nil {
		s.logger.Warn("update account fetch existing failed", zap.String("username", username), zap.Error(err))
		return AccountResponse{}, mapRepositoryError(err)
	}

	if req.FullName != nil {
		acc.FullName = fullName
	}
	if req.Role != nil {
		acc.Role = role.String()
	}
	if req.IsActive != nil {
		acc.IsActive = *req.IsActive
	}
	if hash != nil {
		acc.PasswordHash = string(hash)
	}
	if req.AllowedMenus != nil {
		acc.AllowedMenus = access.NormalizeSet(*req.AllowedMenus)
	}
	if req.AllowedPlants != nil {
		acc.AllowedPlants = access.NormalizeSet(*req.AllowedPlants)
	}

	if err := qtx.Update(ctx, acc); err != nil {
		s.logger.Error("update account persist failed", zap.String("username", username), zap.Error(err))
		return AccountResponse{}, mapRepositoryError(err)
	}
	if req.Permissions != nil {
		if err := qtx.ReplacePermissions(ctx, acc.ID, perms); err != nil {
			s.logger.Error("update account permissions failed", zap.String("username", username), zap.Error(err))
			return AccountResponse{}, mapRepositoryError(err)
		}
		acc.Permissions = permissionRows(acc.ID, perms)
	}
	if err := s.queueEvent(ctx, tx, events.AccountUpdated, acc, events.SourceManual); err != nil {
		s.logger.Error("update account outbox persist failed", zap.Error(err))
		return AccountResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update account commit failed", zap.Error(err))
		return AccountResponse{}, err
	}

	s.logger.Info("update account success", zap.String("request_id", rid), zap.String("username", username))
	return mapToResponse(*acc), nil
}

func (s *service) Delete(ctx context.Context, username string) error {
	rid := contextutil.GetRequestID(ctx)
	username = strings.TrimSpace(username)
	s.logger.Debug("delete account requested", zap.String("request_id", rid), zap.String("username", username))

	if contextutil.GetUsername(ctx) == username {
		return accounterrors.ErrSelfDelete
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete account begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	acc, err := qtx.FindByUsername(ctx, username)
	if err != nil {
		return mapRepositoryError(err)
	}
	if err := qtx.Delete(ctx, acc.ID); err != nil {
		s.logger.Error("delete account failed", zap.String("username", username), zap.Error(err))
		return mapRepositoryError(err)
	}
	if err := s.queueEvent(ctx, tx, events.AccountDeleted, acc, events.SourceManual); err != nil {
		s.logger.Error("delete account outbox persist failed", zap.Error(err))
		return err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete account commit failed", zap.Error(err))
		return err
	}

	s.logger.Info("delete account success", zap.String("request_id", rid), zap.String("username", username))
	return nil
}

// BulkUpdate applies the request to each target in turn. A failing target is
// logged and counted; earlier targets are not rolled back.
func (s *service) BulkUpdate(ctx context.Context, req BulkUpdateRequest) (BulkResult, error) {
	targets := access.NormalizeSet(req.Usernames)
	if len(targets) == 0 {
		return BulkResult{}, accounterrors.ErrEmptyBulkTargets
	}
	if req.Empty() {
		return BulkResult{}, accounterrors.ErrEmptyBulkUpdate
	}

	var perms []string
	if req.Permissions != nil {
		perms = access.NormalizeSet(*req.Permissions)
		if err := s.catalog.Validate(ctx, perms); err != nil {
			return BulkResult{}, err
		}
	}

	var result BulkResult
	for _, username := range targets {
		if err := s.applyGrants(ctx, username, req, perms); err != nil {
			s.logger.Warn("bulk update target failed", zap.String("username", username), zap.Error(err))
			result.Failed++
			continue
		}
		result.Success++
	}

	s.logger.Info("bulk update finished",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.Int("success", result.Success),
		zap.Int("failed", result.Failed),
	)
	return result, nil
}

func (s *service) applyGrants(ctx context.Context, username string, req BulkUpdateRequest, perms []string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	acc, err := qtx.FindByUsername(ctx, username)
	if err != nil {
		return mapRepositoryError(err)
	}

	if req.AllowedMenus != nil {
		acc.AllowedMenus = access.NormalizeSet(*req.AllowedMenus)
	}
	if req.AllowedPlants != nil {
		acc.AllowedPlants = access.NormalizeSet(*req.AllowedPlants)
	}
	if req.AllowedMenus != nil || req.AllowedPlants != nil {
		if err := qtx.Update(ctx, acc); err != nil {
			return mapRepositoryError(err)
		}
	}
	if req.Permissions != nil {
		if err := qtx.ReplacePermissions(ctx, acc.ID, perms); err != nil {
			return mapRepositoryError(err)
		}
	}
	if err := s.queueEvent(ctx, tx, events.AccountUpdated, acc, events.SourceBulk); err != nil {
		return err
	}

	return tx.Commit()
}

// Import creates one account per CSV row after the whole file parses and
// validates. Rows are created sequentially; failures are only counted.
func (s *service) Import(ctx context.Context, csvText string) (BulkResult, error) {
	rows, err := s.parseImport(csvText)
	if err != nil {
		return BulkResult{}, err
	}
	if msgs := csvimport.Validate(rows); len(msgs) > 0 {
		s.logger.Info("import rejected by validation", zap.Int("errors", len(msgs)))
		return BulkResult{}, accounterrors.ErrImportValidation.WithDetails(msgs)
	}

	var result BulkResult
	for _, row := range rows {
		_, err := s.create(ctx, CreateAccountRequest{
			Username:      row.NIK,
			Password:      row.Password,
			FullName:      row.FullName,
			Role:          row.Role.String(),
			AllowedMenus:  row.MenuList(),
			AllowedPlants: row.PlantList(),
		}, events.SourceImport)
		if err != nil {
			s.logger.Warn("import row failed",
				zap.Int("line", row.Line),
				zap.String("username", row.NIK),
				zap.Error(err),
			)
			result.Failed++
			continue
		}
		result.Success++
	}

	s.logger.Info("import finished",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.Int("rows", len(rows)),
		zap.Int("success", result.Success),
		zap.Int("failed", result.Failed),
	)
	return result, nil
}

func (s *service) PreviewImport(ctx context.Context, csvText string) (ImportPreview, error) {
	rows, err := s.parseImport(csvText)
	if err != nil {
		return ImportPreview{}, err
	}
	msgs := csvimport.Validate(rows)

	niks := make([]string, 0, len(rows))
	for _, r := range rows {
		niks = append(niks, r.NIK)
	}
	existing, err := s.repo.ExistingUsernames(ctx, niks)
	if err != nil {
		s.logger.Error("preview import lookup failed", zap.Error(err))
		return ImportPreview{}, err
	}

	return ImportPreview{
		Rows:     rows,
		Errors:   msgs,
		Existing: existing,
		Valid:    len(msgs) == 0,
	}, nil
}

func (s *service) Template() string {
	return csvimport.Template()
}

// SeedAdmin creates the first admin account on an empty accounts table. It
// reports false when accounts already exist.
func (s *service) SeedAdmin(ctx context.Context, username, password, fullName string) (bool, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}

	_, err = s.create(ctx, CreateAccountRequest{
		Username: username,
		Password: password,
		FullName: fullName,
		Role:     string(access.RoleAdmin),
	}, events.SourceSeed)
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *service) parseImport(csvText string) ([]csvimport.Row, error) {
	rows, err := csvimport.Parse(csvText)
	if err == nil {
		return rows, nil
	}
	var fe *csvimport.FormatError
	if errors.As(err, &fe) {
		s.logger.Info("import rejected by format", zap.Int("line", fe.Line), zap.String("reason", fe.Message))
		return nil, apperror.Wrap(fe, apperror.CodeInvalidInput, fe.Message, http.StatusBadRequest).
			WithDetails(map[string]any{"line": fe.Line, "column": fe.Column})
	}
	return nil, err
}

func (s *service) resolvePermissions(ctx context.Context, role access.Role, requested *[]string) ([]string, error) {
	if requested == nil {
		return s.defaults.Bundle(role), nil
	}
	perms := access.NormalizeSet(*requested)
	if err := s.catalog.Validate(ctx, perms); err != nil {
		return nil, err
	}
	return perms, nil
}

func (s *service) queueEvent(ctx context.Context, tx *sql.Tx, eventType string, acc *Account, source string) error {
	if s.outbox == nil {
		return nil
	}

	id := uuid.NewString()
	rid := contextutil.GetRequestID(ctx)
	event := events.AccountLifecycleEvent{
		EventID:    id,
		EventType:  eventType,
		RequestID:  rid,
		AccountID:  acc.ID.String(),
		Username:   acc.Username,
		Role:       acc.Role,
		Actor:      contextutil.GetUsername(ctx),
		Source:     source,
		OccurredAt: time.Now().UTC(),
	}
	outboxEvent, err := kafka.NewOutboxEvent(id, rid, aggregateType, event.AccountID, eventType, events.AccountLifecycleTopic, event)
	if err != nil {
		return err
	}
	return s.outbox.WithTx(tx).Create(ctx, outboxEvent)
}

func mapToResponse(a Account) AccountResponse {
	return AccountResponse{
		ID:            a.ID.String(),
		Username:      a.Username,
		FullName:      a.FullName,
		Role:          a.Role,
		IsActive:      a.IsActive,
		Permissions:   a.PermissionTags(),
		AllowedMenus:  access.NormalizeSet(a.AllowedMenus),
		AllowedPlants: access.NormalizeSet(a.AllowedPlants),
		CreatedAt:     a.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:     a.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
