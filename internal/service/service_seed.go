// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-bienes-raices/internal/logger"
	"github.com/MKhiriev/go-bienes-raices/internal/store"
	"github.com/MKhiriev/go-bienes-raices/models"
)

// SeedUser is a sample account. Seeded accounts are created verified.
type SeedUser struct {
	Name     string
	Email    string
	Password string
}

// SeedProperty is a sample listing. Category, Price and OwnerEmail refer
// to entries of the same [SeedData] by name. Seeded properties are published.
type SeedProperty struct {
	Title       string
	Description string
	Rooms       int
	Parking     int
	Bathrooms   int
	Street      string
	Lat         float64
	Lng         float64
	Image       string
	Category    string
	Price       string
	OwnerEmail  string
}

// SeedData is the sample content loaded by the seeder.
type SeedData struct {
	Categories []string
	Prices     []string
	Users      []SeedUser
	Properties []SeedProperty
}

type seedService struct {
	userRepository     store.UserRepository
	catalogRepository  store.CatalogRepository
	propertyRepository store.PropertyRepository
	bcryptCost         int
	logger             *logger.Logger
}

func NewSeedService(storages *store.Storages, bcryptCost int, logger *logger.Logger) SeedService {
	return &seedService{
		userRepository:     storages.UserRepository,
		catalogRepository:  storages.CatalogRepository,
		propertyRepository: storages.PropertyRepository,
		bcryptCost:         bcryptCost,
		logger:             logger,
	}
}

// Import inserts the catalog, the sample users and their properties.
// Existing entries are kept as they are, so importing twice is harmless.
func (s *seedService) Import(ctx context.Context, data SeedData) error {
	if err := s.catalogRepository.Import(ctx, data.Categories, data.Prices); err != nil {
		return fmt.Errorf("importing catalog failed: %w", err)
	}
	s.logger.Info().Int("categories", len(data.Categories)).Int("prices", len(data.Prices)).Msg("catalog imported")

	for _, u := range data.Users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), s.bcryptCost)
		if err != nil {
			return fmt.Errorf("hashing password of %s failed: %w", u.Email, err)
		}

		_, err = s.userRepository.CreateUser(ctx, models.User{
			Name:         u.Name,
			Email:        u.Email,
			PasswordHash: string(hash),
			Verified:     true,
		})
		switch {
		case errors.Is(err, store.ErrEmailAlreadyExists):
			s.logger.Info().Str("email", u.Email).Msg("sample user already exists")
		case err != nil:
			return fmt.Errorf("creating sample user %s failed: %w", u.Email, err)
		default:
			s.logger.Info().Str("email", u.Email).Msg("sample user created")
		}
	}

	return s.importProperties(ctx, data.Properties)
}

func (s *seedService) importProperties(ctx context.Context, seeds []SeedProperty) error {
	if len(seeds) == 0 {
		return nil
	}

	categories, err := s.catalogRepository.ListCategories(ctx)
	if err != nil {
		return fmt.Errorf("reading categories failed: %w", err)
	}
	prices, err := s.catalogRepository.ListPrices(ctx)
	if err != nil {
		return fmt.Errorf("reading prices failed: %w", err)
	}

	categoryIDs := make(map[string]int64, len(categories))
	for _, c := range categories {
		categoryIDs[c.Name] = c.ID
	}
	priceIDs := make(map[string]int64, len(prices))
	for _, p := range prices {
		priceIDs[p.Name] = p.ID
	}
	owners := make(map[string]int64)

	created := 0
	for _, seed := range seeds {
		categoryID, ok := categoryIDs[seed.Category]
		if !ok {
			return fmt.Errorf("%w: category %q of %q", ErrUnknownSeedReference, seed.Category, seed.Title)
		}
		priceID, ok := priceIDs[seed.Price]
		if !ok {
			return fmt.Errorf("%w: price %q of %q", ErrUnknownSeedReference, seed.Price, seed.Title)
		}
		ownerID, ok := owners[seed.OwnerEmail]
		if !ok {
			owner, err := s.userRepository.FindUserByEmail(ctx, seed.OwnerEmail)
			if err != nil {
				return fmt.Errorf("%w: owner %q of %q: %w", ErrUnknownSeedReference, seed.OwnerEmail, seed.Title, err)
			}
			ownerID = owner.UserID
			owners[seed.OwnerEmail] = ownerID
		}

		inserted, err := s.propertyRepository.CreateProperty(ctx, models.Property{
			Title:       seed.Title,
			Description: seed.Description,
			Rooms:       seed.Rooms,
			Parking:     seed.Parking,
			Bathrooms:   seed.Bathrooms,
			Street:      seed.Street,
			Lat:         seed.Lat,
			Lng:         seed.Lng,
			Image:       seed.Image,
			Published:   true,
			Category:    models.Category{ID: categoryID},
			Price:       models.Price{ID: priceID},
			UserID:      ownerID,
		})
		if err != nil {
			return fmt.Errorf("creating sample property %q failed: %w", seed.Title, err)
		}
		if inserted {
			created++
		}
	}

	s.logger.Info().Int("properties", created).Int("skipped", len(seeds)-created).Msg("sample properties imported")
	return nil
}

// Clear removes every property, the sample users and the whole catalog.
// Properties go first since they reference the other three tables.
func (s *seedService) Clear(ctx context.Context, data SeedData) error {
	if err := s.propertyRepository.Clear(ctx); err != nil {
		return fmt.Errorf("clearing properties failed: %w", err)
	}
	s.logger.Info().Msg("properties cleared")

	emails := make([]string, 0, len(data.Users))
	for _, u := range data.Users {
		emails = append(emails, u.Email)
	}

	deleted, err := s.userRepository.DeleteUsersByEmail(ctx, emails)
	if err != nil {
		return fmt.Errorf("deleting sample users failed: %w", err)
	}
	s.logger.Info().Int64("users", deleted).Msg("sample users deleted")

	if err = s.catalogRepository.Clear(ctx); err != nil {
		return fmt.Errorf("clearing catalog failed: %w", err)
	}
	s.logger.Info().Msg("catalog cleared")

	return nil
}
