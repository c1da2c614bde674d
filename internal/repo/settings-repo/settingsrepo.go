package settingsrepo

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/salonhq/loyalty/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetAll(ctx context.Context, businessID uuid.UUID) (map[string]string, error) {
	query := `
        SELECT key, value
        FROM business_settings
        WHERE business_id = $1
    `
	rows, err := r.db.Query(ctx, query, businessID)
	if err != nil {
		zap.L().Error("can't load business settings", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	settings := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			zap.L().Error("can't scan business setting row", zap.Error(err))
			return nil, err
		}
		settings[key] = value
	}
	return settings, nil
}
