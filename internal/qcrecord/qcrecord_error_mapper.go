package qcrecord

import (
	"errors"

	qcrecorderrors "go-inspecta/internal/qcrecord/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return qcrecorderrors.ErrRecordNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return qcrecorderrors.ErrNumberConflict
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return qcrecorderrors.ErrNumberConflict
		case "23503":
			return qcrecorderrors.ErrInvalidReference
		}
	}

	return err
}
