package qcrecord

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go-inspecta/internal/access"
	accesserrors "go-inspecta/internal/access/errors"
	"go-inspecta/internal/listing"
	qcrecorderrors "go-inspecta/internal/qcrecord/errors"
	"go-inspecta/internal/shared/contextutil"
	"go-inspecta/internal/shared/counter"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=qcrecord_service.go -destination=mock/qcrecord_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateRecordRequest) (RecordResponse, error)
	List(ctx context.Context, q ListQuery) (listing.Page[RecordResponse], error)
	Get(ctx context.Context, id string) (RecordResponse, error)
	Update(ctx context.Context, id string, req UpdateRecordRequest) (RecordResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	logger  *zap.Logger
}

func NewService(db *sql.DB, repo Repository, counter counter.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("qcrecord.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("qcrecord.service")
	}
	return &service{db: db, repo: repo, counter: counter, logger: l}
}

// FormatNumber renders a record number such as KL-P1-000042.
func FormatNumber(t Type, plantID string, seq int64) string {
	return fmt.Sprintf("%s-%s-%06d", t.Prefix(), strings.ToUpper(plantID), seq)
}

func parseType(v string) (Type, error) {
	t, ok := ParseType(strings.TrimSpace(v))
	if !ok {
		return "", qcrecorderrors.ErrInvalidType
	}
	return t, nil
}

func parseDate(v string) (*time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}
	d, err := time.Parse(dateLayout, v)
	if err != nil {
		return nil, qcrecorderrors.ErrInvalidDate
	}
	return &d, nil
}

func parseRef(v string) (*uuid.UUID, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return nil, qcrecorderrors.ErrInvalidReference
	}
	return &id, nil
}

// checkPayload accepts an absent payload or a JSON object.
func checkPayload(raw json.RawMessage) ([]byte, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	var obj map[string]any
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return nil, qcrecorderrors.ErrInvalidPayload
	}
	return trimmed, nil
}

// authorize requires menu access for the record type and plant access for
// the plant.
func authorize(checker access.Checker, t Type, plantID string) error {
	if !checker.Authenticated() {
		return accesserrors.ErrUnauthenticated
	}
	if !checker.HasMenuAccess(t.MenuID()) {
		return accesserrors.ErrMenuDenied
	}
	if plantID != "" && !checker.HasPlantAccess(plantID) {
		return accesserrors.ErrPlantDenied
	}
	return nil
}

func (s *service) Create(ctx context.Context, req CreateRecordRequest) (RecordResponse, error) {
	t, err := parseType(req.Type)
	if err != nil {
		return RecordResponse{}, err
	}
	plantID := strings.TrimSpace(req.Plant)

	checker := access.FromContext(ctx)
	if err := authorize(checker, t, plantID); err != nil {
		return RecordResponse{}, err
	}
	if plantID == "" {
		return RecordResponse{}, accesserrors.ErrPlantDenied
	}

	date, err := parseDate(req.InspectionDate)
	if err != nil {
		return RecordResponse{}, err
	}
	if date == nil {
		return RecordResponse{}, qcrecorderrors.ErrInvalidDate
	}
	payload, err := checkPayload(req.Payload)
	if err != nil {
		return RecordResponse{}, err
	}

	rec := &Record{
		ID:             uuid.New(),
		Type:           string(t),
		Plant:          plantID,
		Line:           req.Line,
		InspectionDate: *date,
		Shift:          req.Shift,
		Result:         strings.TrimSpace(req.Result),
		Notes:          strings.TrimSpace(req.Notes),
		Payload:        payload,
		CreatedBy:      checker.Username(),
	}
	for _, ref := range []struct {
		raw string
		dst **uuid.UUID
	}{
		{req.AreaID, &rec.AreaID},
		{req.BagianID, &rec.BagianID},
		{req.SupervisorID, &rec.SupervisorID},
	} {
		id, err := parseRef(ref.raw)
		if err != nil {
			return RecordResponse{}, err
		}
		*ref.dst = id
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RecordResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	seq, err := s.counter.GetNextValue(ctx, plantID, string(t))
	if err != nil {
		s.logger.Error("generate record number failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("plant", plantID),
			zap.Error(err),
		)
		return RecordResponse{}, err
	}
	rec.Number = FormatNumber(t, plantID, seq)

	if err := qtx.Create(ctx, rec); err != nil {
		s.logger.Error("create record persist failed", zap.String("number", rec.Number), zap.Error(err))
		return RecordResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return RecordResponse{}, err
	}

	s.logger.Info("record created",
		zap.String("number", rec.Number),
		zap.String("created_by", rec.CreatedBy),
	)
	return mapToResponse(*rec), nil
}

func (s *service) List(ctx context.Context, q ListQuery) (listing.Page[RecordResponse], error) {
	t, err := parseType(q.Type)
	if err != nil {
		return listing.Page[RecordResponse]{}, err
	}
	plantID := strings.TrimSpace(q.Plant)

	checker := access.FromContext(ctx)
	if err := authorize(checker, t, plantID); err != nil {
		return listing.Page[RecordResponse]{}, err
	}

	from, err := parseDate(q.From)
	if err != nil {
		return listing.Page[RecordResponse]{}, err
	}
	to, err := parseDate(q.To)
	if err != nil {
		return listing.Page[RecordResponse]{}, err
	}
	if from != nil && to != nil && from.After(*to) {
		return listing.Page[RecordResponse]{}, qcrecorderrors.ErrInvalidDateRange
	}

	page, size := q.Page, q.PageSize
	if page < 1 {
		page = 1
	}
	if page > listing.MaxPage {
		page = listing.MaxPage
	}
	if size < 1 {
		size = listing.DefaultPageSize
	}

	records, total, err := s.repo.FindPage(ctx, Filter{
		Type:          t,
		AllowedPlants: checker.AllowedPlants(),
		Plant:         plantID,
		Line:          q.Line,
		From:          from,
		To:            to,
		Offset:        (page - 1) * size,
		Limit:         size,
	})
	if err != nil {
		s.logger.Error("list records failed", zap.Error(err))
		return listing.Page[RecordResponse]{}, err
	}

	items := make([]RecordResponse, len(records))
	for i, r := range records {
		items[i] = mapToResponse(r)
	}
	return listing.Page[RecordResponse]{
		Items:      items,
		Total:      int(total),
		Page:       page,
		PageSize:   size,
		TotalPages: int((total + int64(size) - 1) / int64(size)),
	}, nil
}

// visible loads a record and hides it when the caller may not see its menu
// or plant.
func (s *service) visible(ctx context.Context, id string) (*Record, error) {
	recID, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return nil, qcrecorderrors.ErrRecordNotFound
	}
	rec, err := s.repo.FindByID(ctx, recID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	checker := access.FromContext(ctx)
	if !checker.Authenticated() {
		return nil, accesserrors.ErrUnauthenticated
	}
	if !checker.HasMenuAccess(rec.Type) || !checker.HasPlantAccess(rec.Plant) {
		return nil, qcrecorderrors.ErrRecordNotFound
	}
	return rec, nil
}

func (s *service) Get(ctx context.Context, id string) (RecordResponse, error) {
	rec, err := s.visible(ctx, id)
	if err != nil {
		return RecordResponse{}, err
	}
	return mapToResponse(*rec), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateRecordRequest) (RecordResponse, error) {
	rec, err := s.visible(ctx, id)
	if err != nil {
		return RecordResponse{}, err
	}

	if req.Result != nil {
		rec.Result = strings.TrimSpace(*req.Result)
	}
	if req.Notes != nil {
		rec.Notes = strings.TrimSpace(*req.Notes)
	}
	if req.Payload != nil {
		payload, err := checkPayload(*req.Payload)
		if err != nil {
			return RecordResponse{}, err
		}
		rec.Payload = payload
	}

	if err := s.repo.Update(ctx, rec); err != nil {
		return RecordResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*rec), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	rec, err := s.visible(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, rec.ID); err != nil {
		return mapRepositoryError(err)
	}

	s.logger.Info("record deleted",
		zap.String("number", rec.Number),
		zap.String("deleted_by", access.FromContext(ctx).Username()),
	)
	return nil
}

func refString(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}

func mapToResponse(r Record) RecordResponse {
	return RecordResponse{
		ID:             r.ID.String(),
		Number:         r.Number,
		Type:           r.Type,
		Plant:          r.Plant,
		Line:           r.Line,
		AreaID:         refString(r.AreaID),
		BagianID:       refString(r.BagianID),
		SupervisorID:   refString(r.SupervisorID),
		InspectionDate: r.InspectionDate.Format(dateLayout),
		Shift:          r.Shift,
		Result:         r.Result,
		Notes:          r.Notes,
		Payload:        json.RawMessage(r.Payload),
		CreatedBy:      r.CreatedBy,
		CreatedAt:      r.CreatedAt.UTC().Format(time.RFC3339),
	}
}
