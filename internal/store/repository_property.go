// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-bienes-raices/internal/logger"
	"github.com/MKhiriev/go-bienes-raices/models"
)

type propertyRepository struct {
	logger *logger.Logger
	db     *DB
	now    func() time.Time
}

// NewPropertyRepository constructs a [PropertyRepository] over db.
func NewPropertyRepository(db *DB, logger *logger.Logger) PropertyRepository {
	logger.Debug().Msg("creating property repository")
	return &propertyRepository{
		db:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (r *propertyRepository) ListPublishedByCategory(ctx context.Context, categoryID int64, limit uint64) ([]models.Property, error) {
	query, args, err := r.db.selectPublishedPropertiesQuery(sq.Eq{"p.category_id": categoryID}, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	properties, err := r.list(ctx, query, args)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*propertyRepository.ListPublishedByCategory").
			Int64("category_id", categoryID).
			Msg("error listing properties")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	return properties, nil
}

func (r *propertyRepository) SearchPublished(ctx context.Context, term string) ([]models.Property, error) {
	query, args, err := r.db.selectPublishedPropertiesQuery(r.db.titleMatches(term), 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	properties, err := r.list(ctx, query, args)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*propertyRepository.SearchPublished").Msg("error searching properties")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	return properties, nil
}

func (r *propertyRepository) CreateProperty(ctx context.Context, p models.Property) (bool, error) {
	query, args, err := r.db.insertPropertyQuery(p, r.now())
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var inserted int64
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		res, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		inserted, err = res.RowsAffected()
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*propertyRepository.CreateProperty").Msg("error inserting property")
		return false, fmt.Errorf("unexpected DB error: %w", err)
	}

	return inserted > 0, nil
}

func (r *propertyRepository) Clear(ctx context.Context) error {
	query, args, err := r.db.clearPropertiesQuery()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		_, err := r.db.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*propertyRepository.Clear").Msg("error clearing properties")
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	return nil
}

// list never returns a nil slice so empty listings encode as [].
func (r *propertyRepository) list(ctx context.Context, query string, args []any) ([]models.Property, error) {
	properties := make([]models.Property, 0)
	err := r.db.withRetry(ctx, func(ctx context.Context) error {
		rows, err := r.db.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		properties = properties[:0]
		for rows.Next() {
			p, err := scanProperty(rows)
			if err != nil {
				return err
			}
			properties = append(properties, p)
		}
		return rows.Err()
	})
	return properties, err
}
