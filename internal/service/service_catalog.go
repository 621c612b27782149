// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-bienes-raices/internal/logger"
	"github.com/MKhiriev/go-bienes-raices/internal/store"
	"github.com/MKhiriev/go-bienes-raices/models"
)

// The landing page shows the newest listings of the first two seeded
// categories.
const (
	housesCategoryID int64  = 1
	flatsCategoryID  int64  = 2
	homeListingLimit uint64 = 3
)

type catalogService struct {
	catalogRepository  store.CatalogRepository
	propertyRepository store.PropertyRepository
	logger             *logger.Logger
}

func NewCatalogService(catalogRepository store.CatalogRepository, propertyRepository store.PropertyRepository, logger *logger.Logger) CatalogService {
	return &catalogService{
		catalogRepository:  catalogRepository,
		propertyRepository: propertyRepository,
		logger:             logger,
	}
}

func (c *catalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := c.catalogRepository.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing categories failed: %w", err)
	}
	return categories, nil
}

func (c *catalogService) ListPrices(ctx context.Context) ([]models.Price, error) {
	prices, err := c.catalogRepository.ListPrices(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing prices failed: %w", err)
	}
	return prices, nil
}

func (c *catalogService) Home(ctx context.Context) (models.HomePage, error) {
	var (
		page models.HomePage
		err  error
	)

	if page.Categories, err = c.ListCategories(ctx); err != nil {
		return models.HomePage{}, err
	}
	if page.Prices, err = c.ListPrices(ctx); err != nil {
		return models.HomePage{}, err
	}
	if page.Houses, err = c.propertyRepository.ListPublishedByCategory(ctx, housesCategoryID, homeListingLimit); err != nil {
		return models.HomePage{}, fmt.Errorf("listing houses failed: %w", err)
	}
	if page.Flats, err = c.propertyRepository.ListPublishedByCategory(ctx, flatsCategoryID, homeListingLimit); err != nil {
		return models.HomePage{}, fmt.Errorf("listing flats failed: %w", err)
	}

	return page, nil
}

func (c *catalogService) PropertiesByCategory(ctx context.Context, categoryID int64) (models.Category, []models.Property, error) {
	category, err := c.catalogRepository.FindCategory(ctx, categoryID)
	if errors.Is(err, store.ErrCategoryNotFound) {
		contextLogger(ctx, c.logger).Debug().Str("func", "*catalogService.PropertiesByCategory").Int64("category_id", categoryID).Msg("unknown category")
		return models.Category{}, nil, ErrCategoryNotFound
	}
	if err != nil {
		return models.Category{}, nil, fmt.Errorf("reading category failed: %w", err)
	}

	properties, err := c.propertyRepository.ListPublishedByCategory(ctx, categoryID, 0)
	if err != nil {
		return models.Category{}, nil, fmt.Errorf("listing properties failed: %w", err)
	}

	return category, properties, nil
}

func (c *catalogService) Search(ctx context.Context, term string) ([]models.Property, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, ErrEmptySearchTerm
	}

	properties, err := c.propertyRepository.SearchPublished(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("searching properties failed: %w", err)
	}
	return properties, nil
}
