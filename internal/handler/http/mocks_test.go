// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"time"

	"github.com/MKhiriev/go-bienes-raices/internal/config"
	"github.com/MKhiriev/go-bienes-raices/internal/logger"
	"github.com/MKhiriev/go-bienes-raices/internal/service"
	"github.com/MKhiriev/go-bienes-raices/models"
)

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerFn              func(ctx context.Context, request models.RegisterRequest) (models.User, error)
	confirmAccountFn        func(ctx context.Context, token string) error
	authenticateFn          func(ctx context.Context, email, password string) (models.SessionToken, error)
	requestPasswordResetFn  func(ctx context.Context, email string) error
	validateResetTokenFn    func(ctx context.Context, token string) (models.User, error)
	completePasswordResetFn func(ctx context.Context, token, newPassword string) error
	parseSessionTokenFn     func(ctx context.Context, signed string) (models.SessionToken, error)
}

func (m *mockAuthService) Register(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	return m.registerFn(ctx, request)
}

func (m *mockAuthService) ConfirmAccount(ctx context.Context, token string) error {
	return m.confirmAccountFn(ctx, token)
}

func (m *mockAuthService) Authenticate(ctx context.Context, email, password string) (models.SessionToken, error) {
	return m.authenticateFn(ctx, email, password)
}

func (m *mockAuthService) RequestPasswordReset(ctx context.Context, email string) error {
	return m.requestPasswordResetFn(ctx, email)
}

func (m *mockAuthService) ValidateResetToken(ctx context.Context, token string) (models.User, error) {
	return m.validateResetTokenFn(ctx, token)
}

func (m *mockAuthService) CompletePasswordReset(ctx context.Context, token, newPassword string) error {
	return m.completePasswordResetFn(ctx, token, newPassword)
}

func (m *mockAuthService) ParseSessionToken(ctx context.Context, signed string) (models.SessionToken, error) {
	return m.parseSessionTokenFn(ctx, signed)
}

type mockCatalogService struct {
	categories []models.Category
	prices     []models.Price
	err        error

	homeFn                 func(ctx context.Context) (models.HomePage, error)
	propertiesByCategoryFn func(ctx context.Context, categoryID int64) (models.Category, []models.Property, error)
	searchFn               func(ctx context.Context, term string) ([]models.Property, error)
}

func (m *mockCatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return m.categories, m.err
}

func (m *mockCatalogService) ListPrices(ctx context.Context) ([]models.Price, error) {
	return m.prices, m.err
}

func (m *mockCatalogService) Home(ctx context.Context) (models.HomePage, error) {
	return m.homeFn(ctx)
}

func (m *mockCatalogService) PropertiesByCategory(ctx context.Context, categoryID int64) (models.Category, []models.Property, error) {
	return m.propertiesByCategoryFn(ctx, categoryID)
}

func (m *mockCatalogService) Search(ctx context.Context, term string) ([]models.Property, error) {
	return m.searchFn(ctx, term)
}

type mockAppInfoService struct {
	version string
	build   models.AppBuildInfo
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

func (m *mockAppInfoService) GetBuildInfo(_ context.Context) models.AppBuildInfo {
	return m.build
}

var testConfig = config.StructuredConfig{
	App:    config.App{TokenDuration: time.Hour},
	Server: config.Server{RequestTimeout: 5 * time.Second},
}

// newTestHandler builds a Handler over the given mocks. Nil services are
// replaced with empty mocks.
func newTestHandler(auth service.AuthService) *Handler {
	if auth == nil {
		auth = &mockAuthService{}
	}
	svcs := &service.Services{
		AuthService:    auth,
		CatalogService: &mockCatalogService{},
		AppInfoService: &mockAppInfoService{version: "test-version"},
	}
	return NewHandler(svcs, testConfig, nil, logger.Nop())
}
