// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-bienes-raices/internal/logger"
	"github.com/MKhiriev/go-bienes-raices/models"
)

type catalogRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCatalogRepository constructs a [CatalogRepository] over db.
func NewCatalogRepository(db *DB, logger *logger.Logger) CatalogRepository {
	logger.Debug().Msg("creating catalog repository")
	return &catalogRepository{
		db:     db,
		logger: logger,
	}
}

func (r *catalogRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	entries, err := r.list(ctx, categoriesTable)
	if err != nil {
		return nil, err
	}

	categories := make([]models.Category, 0, len(entries))
	for _, e := range entries {
		categories = append(categories, models.Category{ID: e.id, Name: e.name})
	}
	return categories, nil
}

func (r *catalogRepository) ListPrices(ctx context.Context) ([]models.Price, error) {
	entries, err := r.list(ctx, pricesTable)
	if err != nil {
		return nil, err
	}

	prices := make([]models.Price, 0, len(entries))
	for _, e := range entries {
		prices = append(prices, models.Price{ID: e.id, Name: e.name})
	}
	return prices, nil
}

func (r *catalogRepository) FindCategory(ctx context.Context, id int64) (models.Category, error) {
	query, args, err := r.db.selectCategoryQuery(id)
	if err != nil {
		return models.Category{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var category models.Category
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&category.ID, &category.Name)
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Category{}, ErrCategoryNotFound
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", "*catalogRepository.FindCategory").Int64("category_id", id).Msg("error reading category")
		return models.Category{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return category, nil
}

// Import inserts every name inside a single transaction.
func (r *catalogRepository) Import(ctx context.Context, categories, prices []string) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*catalogRepository.Import").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	batches := []struct {
		table string
		names []string
	}{
		{categoriesTable, categories},
		{pricesTable, prices},
	}

	for _, batch := range batches {
		table := batch.table
		for _, name := range batch.names {
			query, args, err := r.db.insertCatalogNameQuery(table, name)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
			}
			if _, err = tx.ExecContext(ctx, query, args...); err != nil {
				log.Err(err).Str("func", "*catalogRepository.Import").Str("table", table).Msg("error inserting catalog entry")
				return fmt.Errorf("unexpected DB error: %w", err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*catalogRepository.Import").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}

// Clear deletes prices and categories.
func (r *catalogRepository) Clear(ctx context.Context) error {
	for _, table := range []string{pricesTable, categoriesTable} {
		query, args, err := r.db.clearCatalogQuery(table)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		err = r.db.withRetry(ctx, func(ctx context.Context) error {
			_, err := r.db.ExecContext(ctx, query, args...)
			return err
		})
		if err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "*catalogRepository.Clear").Str("table", table).Msg("error clearing table")
			return fmt.Errorf("unexpected DB error: %w", err)
		}
	}
	return nil
}

type catalogEntry struct {
	id   int64
	name string
}

func (r *catalogRepository) list(ctx context.Context, table string) ([]catalogEntry, error) {
	query, args, err := r.db.selectCatalogQuery(table)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var entries []catalogEntry
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		rows, err := r.db.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		entries = entries[:0]
		for rows.Next() {
			var e catalogEntry
			if err = rows.Scan(&e.id, &e.name); err != nil {
				return err
			}
			entries = append(entries, e)
		}
		return rows.Err()
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*catalogRepository.list").Str("table", table).Msg("error listing catalog")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return entries, nil
}
