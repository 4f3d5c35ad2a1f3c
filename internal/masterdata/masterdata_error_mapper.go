package masterdata

import (
	"errors"

	masterdataerrors "go-inspecta/internal/masterdata/errors"
	"go-inspecta/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// mapRepositoryError translates storage errors, using notFound for missing
// rows. A foreign key violation while writing bagian means the area is gone;
// anywhere else it means the area is still referenced.
func mapRepositoryError(err error, notFound *apperror.AppError) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}

	var pgErr *pgconn.PgError
	if errors.Is(err, gorm.ErrForeignKeyViolated) || (errors.As(err, &pgErr) && pgErr.Code == "23503") {
		if notFound == masterdataerrors.ErrBagianNotFound {
			return masterdataerrors.ErrUnknownArea
		}
		return masterdataerrors.ErrAreaInUse
	}

	return err
}
