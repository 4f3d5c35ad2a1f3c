package masterdata

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"go-inspecta/internal/listing"
	masterdataerrors "go-inspecta/internal/masterdata/errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	AreaListKey       = "masterdata:areas:all"
	BagianListKey     = "masterdata:bagian:all"
	SupervisorListKey = "masterdata:supervisors:all"

	listCacheTTL = 30 * time.Minute
)

//go:generate mockgen -source=masterdata_service.go -destination=mock/masterdata_service_mock.go -package=mock
type Service interface {
	ListAreas(ctx context.Context, q ListQuery) (listing.Page[AreaResponse], error)
	GetArea(ctx context.Context, id string) (AreaResponse, error)
	CreateArea(ctx context.Context, req AreaRequest) (AreaResponse, error)
	UpdateArea(ctx context.Context, id string, req AreaRequest) (AreaResponse, error)
	DeleteArea(ctx context.Context, id string) error

	ListBagian(ctx context.Context, q ListQuery) (listing.Page[BagianResponse], error)
	GetBagian(ctx context.Context, id string) (BagianResponse, error)
	CreateBagian(ctx context.Context, req BagianRequest) (BagianResponse, error)
	UpdateBagian(ctx context.Context, id string, req BagianRequest) (BagianResponse, error)
	DeleteBagian(ctx context.Context, id string) error

	ListSupervisors(ctx context.Context, q ListQuery) (listing.Page[SupervisorResponse], error)
	GetSupervisor(ctx context.Context, id string) (SupervisorResponse, error)
	CreateSupervisor(ctx context.Context, req SupervisorRequest) (SupervisorResponse, error)
	UpdateSupervisor(ctx context.Context, id string, req SupervisorRequest) (SupervisorResponse, error)
	DeleteSupervisor(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

// NewService wires the master data service. rdb may be nil to disable list
// caching.
func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("masterdata.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("masterdata.service")
	}
	return &service{db: db, repo: repo, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

func cachedList[T any](ctx context.Context, s *service, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, key).Result(); err == nil {
			var items []T
			if err := json.Unmarshal([]byte(cached), &items); err == nil {
				return items, nil
			}
		}
	}

	v, err, _ := s.sf.Do(key, func() (any, error) {
		items, err := load(ctx)
		if err != nil {
			return nil, err
		}
		if s.rdb != nil {
			if data, err := json.Marshal(items); err == nil {
				if err := s.rdb.Set(ctx, key, data, listCacheTTL).Err(); err != nil {
					s.logger.Warn("failed to cache list", zap.String("key", key), zap.Error(err))
				}
			}
		}
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]T), nil
}

func (s *service) invalidate(ctx context.Context, keys ...string) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		s.logger.Error("failed to invalidate cache", zap.Strings("keys", keys), zap.Error(err))
	}
}

func parseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return uuid.Nil, masterdataerrors.ErrInvalidID
	}
	return parsed, nil
}

func checkQuery[T any](schema *listing.Schema[T], q listing.Query) error {
	if err := schema.Check(q); err != nil {
		return masterdataerrors.ErrInvalidListQuery.WithDetails(err.Error())
	}
	return nil
}

func activeOrDefault(v *bool) bool {
	if v == nil {
		return true
	}
	return *v
}

// Areas

func (s *service) ListAreas(ctx context.Context, q ListQuery) (listing.Page[AreaResponse], error) {
	lq := q.toListing("plant", "status")
	if err := checkQuery(areaSchema, lq); err != nil {
		return listing.Page[AreaResponse]{}, err
	}

	items, err := cachedList(ctx, s, AreaListKey, func(ctx context.Context) ([]AreaResponse, error) {
		areas, err := s.repo.FindAreas(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]AreaResponse, len(areas))
		for i, a := range areas {
			out[i] = mapAreaResponse(a)
		}
		return out, nil
	})
	if err != nil {
		s.logger.Error("list areas failed", zap.Error(err))
		return listing.Page[AreaResponse]{}, err
	}
	return listing.Apply(items, areaSchema, lq), nil
}

func (s *service) GetArea(ctx context.Context, id string) (AreaResponse, error) {
	areaID, err := parseID(id)
	if err != nil {
		return AreaResponse{}, err
	}
	area, err := s.repo.FindAreaByID(ctx, areaID)
	if err != nil {
		return AreaResponse{}, mapRepositoryError(err, masterdataerrors.ErrAreaNotFound)
	}
	return mapAreaResponse(*area), nil
}

func (s *service) CreateArea(ctx context.Context, req AreaRequest) (AreaResponse, error) {
	area := &Area{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(req.Name),
		Plant:        strings.TrimSpace(req.Plant),
		DisplayOrder: req.DisplayOrder,
		IsActive:     activeOrDefault(req.IsActive),
	}
	if err := s.repo.CreateArea(ctx, area); err != nil {
		return AreaResponse{}, mapRepositoryError(err, masterdataerrors.ErrAreaNotFound)
	}

	s.invalidate(ctx, AreaListKey)
	return mapAreaResponse(*area), nil
}

func (s *service) UpdateArea(ctx context.Context, id string, req AreaRequest) (AreaResponse, error) {
	areaID, err := parseID(id)
	if err != nil {
		return AreaResponse{}, err
	}

	area, err := s.repo.FindAreaByID(ctx, areaID)
	if err != nil {
		return AreaResponse{}, mapRepositoryError(err, masterdataerrors.ErrAreaNotFound)
	}
	area.Name = strings.TrimSpace(req.Name)
	area.Plant = strings.TrimSpace(req.Plant)
	area.DisplayOrder = req.DisplayOrder
	if req.IsActive != nil {
		area.IsActive = *req.IsActive
	}

	if err := s.repo.UpdateArea(ctx, area); err != nil {
		return AreaResponse{}, mapRepositoryError(err, masterdataerrors.ErrAreaNotFound)
	}

	s.invalidate(ctx, AreaListKey, BagianListKey)
	return mapAreaResponse(*area), nil
}

func (s *service) DeleteArea(ctx context.Context, id string) error {
	areaID, err := parseID(id)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	n, err := qtx.CountBagianInArea(ctx, areaID)
	if err != nil {
		return err
	}
	if n > 0 {
		return masterdataerrors.ErrAreaInUse
	}
	if err := qtx.DeleteArea(ctx, areaID); err != nil {
		return mapRepositoryError(err, masterdataerrors.ErrAreaNotFound)
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.invalidate(ctx, AreaListKey)
	return nil
}

// Bagian

func (s *service) ListBagian(ctx context.Context, q ListQuery) (listing.Page[BagianResponse], error) {
	lq := q.toListing("plant", "area_id")
	if err := checkQuery(bagianSchema, lq); err != nil {
		return listing.Page[BagianResponse]{}, err
	}

	items, err := cachedList(ctx, s, BagianListKey, func(ctx context.Context) ([]BagianResponse, error) {
		rows, err := s.repo.FindBagian(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]BagianResponse, len(rows))
		for i, b := range rows {
			out[i] = mapBagianResponse(b)
		}
		return out, nil
	})
	if err != nil {
		s.logger.Error("list bagian failed", zap.Error(err))
		return listing.Page[BagianResponse]{}, err
	}
	return listing.Apply(items, bagianSchema, lq), nil
}

func (s *service) GetBagian(ctx context.Context, id string) (BagianResponse, error) {
	bagianID, err := parseID(id)
	if err != nil {
		return BagianResponse{}, err
	}
	b, err := s.repo.FindBagianByID(ctx, bagianID)
	if err != nil {
		return BagianResponse{}, mapRepositoryError(err, masterdataerrors.ErrBagianNotFound)
	}
	return mapBagianResponse(*b), nil
}

// normalizeLines drops duplicates and rejects non-positive line numbers.
func normalizeLines(lines []int64) (pq.Int64Array, error) {
	out := pq.Int64Array{}
	seen := make(map[int64]struct{}, len(lines))
	for _, l := range lines {
		if l <= 0 {
			return nil, masterdataerrors.ErrInvalidLine.WithDetails(l)
		}
		if _, dup := seen[l]; dup {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return out, nil
}

// writeBagian checks the area reference and runs write in one transaction.
func (s *service) writeBagian(ctx context.Context, areaID uuid.UUID, write func(Repository, *Area) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	area, err := qtx.FindAreaByID(ctx, areaID)
	if err != nil {
		return mapRepositoryError(err, masterdataerrors.ErrUnknownArea)
	}
	if err := write(qtx, area); err != nil {
		return mapRepositoryError(err, masterdataerrors.ErrBagianNotFound)
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.invalidate(ctx, BagianListKey)
	return nil
}

func (s *service) CreateBagian(ctx context.Context, req BagianRequest) (BagianResponse, error) {
	areaID, err := parseID(req.AreaID)
	if err != nil {
		return BagianResponse{}, masterdataerrors.ErrUnknownArea
	}
	lines, err := normalizeLines(req.Lines)
	if err != nil {
		return BagianResponse{}, err
	}

	b := &Bagian{
		ID:           uuid.New(),
		AreaID:       areaID,
		Name:         strings.TrimSpace(req.Name),
		Lines:        lines,
		DisplayOrder: req.DisplayOrder,
	}
	err = s.writeBagian(ctx, areaID, func(repo Repository, area *Area) error {
		b.Area = area
		return repo.CreateBagian(ctx, b)
	})
	if err != nil {
		return BagianResponse{}, err
	}
	return mapBagianResponse(*b), nil
}

func (s *service) UpdateBagian(ctx context.Context, id string, req BagianRequest) (BagianResponse, error) {
	bagianID, err := parseID(id)
	if err != nil {
		return BagianResponse{}, err
	}
	areaID, err := parseID(req.AreaID)
	if err != nil {
		return BagianResponse{}, masterdataerrors.ErrUnknownArea
	}
	lines, err := normalizeLines(req.Lines)
	if err != nil {
		return BagianResponse{}, err
	}

	b, err := s.repo.FindBagianByID(ctx, bagianID)
	if err != nil {
		return BagianResponse{}, mapRepositoryError(err, masterdataerrors.ErrBagianNotFound)
	}
	b.AreaID = areaID
	b.Name = strings.TrimSpace(req.Name)
	b.Lines = lines
	b.DisplayOrder = req.DisplayOrder

	err = s.writeBagian(ctx, areaID, func(repo Repository, area *Area) error {
		b.Area = area
		return repo.UpdateBagian(ctx, b)
	})
	if err != nil {
		return BagianResponse{}, err
	}
	return mapBagianResponse(*b), nil
}

func (s *service) DeleteBagian(ctx context.Context, id string) error {
	bagianID, err := parseID(id)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteBagian(ctx, bagianID); err != nil {
		return mapRepositoryError(err, masterdataerrors.ErrBagianNotFound)
	}

	s.invalidate(ctx, BagianListKey)
	return nil
}

// Supervisors

func (s *service) ListSupervisors(ctx context.Context, q ListQuery) (listing.Page[SupervisorResponse], error) {
	lq := q.toListing("plant", "status")
	if err := checkQuery(supervisorSchema, lq); err != nil {
		return listing.Page[SupervisorResponse]{}, err
	}

	items, err := cachedList(ctx, s, SupervisorListKey, func(ctx context.Context) ([]SupervisorResponse, error) {
		sups, err := s.repo.FindSupervisors(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]SupervisorResponse, len(sups))
		for i, sup := range sups {
			out[i] = mapSupervisorResponse(sup)
		}
		return out, nil
	})
	if err != nil {
		s.logger.Error("list supervisors failed", zap.Error(err))
		return listing.Page[SupervisorResponse]{}, err
	}
	return listing.Apply(items, supervisorSchema, lq), nil
}

func (s *service) GetSupervisor(ctx context.Context, id string) (SupervisorResponse, error) {
	supID, err := parseID(id)
	if err != nil {
		return SupervisorResponse{}, err
	}
	sup, err := s.repo.FindSupervisorByID(ctx, supID)
	if err != nil {
		return SupervisorResponse{}, mapRepositoryError(err, masterdataerrors.ErrSupervisorNotFound)
	}
	return mapSupervisorResponse(*sup), nil
}

func (s *service) CreateSupervisor(ctx context.Context, req SupervisorRequest) (SupervisorResponse, error) {
	sup := &Supervisor{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(req.Name),
		Plant:        strings.TrimSpace(req.Plant),
		DisplayOrder: req.DisplayOrder,
		IsActive:     activeOrDefault(req.IsActive),
	}
	if err := s.repo.CreateSupervisor(ctx, sup); err != nil {
		return SupervisorResponse{}, mapRepositoryError(err, masterdataerrors.ErrSupervisorNotFound)
	}

	s.invalidate(ctx, SupervisorListKey)
	return mapSupervisorResponse(*sup), nil
}

func (s *service) UpdateSupervisor(ctx context.Context, id string, req SupervisorRequest) (SupervisorResponse, error) {
	supID, err := parseID(id)
	if err != nil {
		return SupervisorResponse{}, err
	}

	sup, err := s.repo.FindSupervisorByID(ctx, supID)
	if err != nil {
		return SupervisorResponse{}, mapRepositoryError(err, masterdataerrors.ErrSupervisorNotFound)
	}
	sup.Name = strings.TrimSpace(req.Name)
	sup.Plant = strings.TrimSpace(req.Plant)
	sup.DisplayOrder = req.DisplayOrder
	if req.IsActive != nil {
		sup.IsActive = *req.IsActive
	}

	if err := s.repo.UpdateSupervisor(ctx, sup); err != nil {
		return SupervisorResponse{}, mapRepositoryError(err, masterdataerrors.ErrSupervisorNotFound)
	}

	s.invalidate(ctx, SupervisorListKey)
	return mapSupervisorResponse(*sup), nil
}

func (s *service) DeleteSupervisor(ctx context.Context, id string) error {
	supID, err := parseID(id)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteSupervisor(ctx, supID); err != nil {
		return mapRepositoryError(err, masterdataerrors.ErrSupervisorNotFound)
	}

	s.invalidate(ctx, SupervisorListKey)
	return nil
}

func mapAreaResponse(a Area) AreaResponse {
	return AreaResponse{
		ID:           a.ID.String(),
		Name:         a.Name,
		Plant:        a.Plant,
		DisplayOrder: a.DisplayOrder,
		IsActive:     a.IsActive,
	}
}

func mapBagianResponse(b Bagian) BagianResponse {
	resp := BagianResponse{
		ID:           b.ID.String(),
		AreaID:       b.AreaID.String(),
		Name:         b.Name,
		Lines:        []int64(b.Lines),
		DisplayOrder: b.DisplayOrder,
	}
	if resp.Lines == nil {
		resp.Lines = []int64{}
	}
	if b.Area != nil {
		resp.AreaName = b.Area.Name
		resp.Plant = b.Area.Plant
	}
	return resp
}

func mapSupervisorResponse(s Supervisor) SupervisorResponse {
	return SupervisorResponse{
		ID:           s.ID.String(),
		Name:         s.Name,
		Plant:        s.Plant,
		DisplayOrder: s.DisplayOrder,
		IsActive:     s.IsActive,
	}
}

