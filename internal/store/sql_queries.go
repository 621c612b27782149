// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-bienes-raices/internal/config"
	"github.com/MKhiriev/go-bienes-raices/models"
)

const (
	usersTable      = "users"
	categoriesTable = "categories"
	pricesTable     = "prices"
	propertiesTable = "properties"
)

// userColumns is the column order every user query selects and scans.
var userColumns = []string{
	"user_id",
	"name",
	"email",
	"password",
	"verified",
	"token",
	"token_issued_at",
	"created_at",
	"updated_at",
}

var returningUser = "RETURNING " + strings.Join(userColumns, ", ")

type rowScanner interface {
	Scan(dest ...any) error
}

// scanUser reads one row laid out as userColumns.
func scanUser(row rowScanner) (models.User, error) {
	var (
		user          models.User
		token         sql.NullString
		tokenIssuedAt sql.NullTime
	)

	err := row.Scan(
		&user.UserID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Verified,
		&token,
		&tokenIssuedAt,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return models.User{}, err
	}

	if token.Valid {
		user.Token = &token.String
	}
	if tokenIssuedAt.Valid {
		user.TokenIssuedAt = &tokenIssuedAt.Time
	}

	return user, nil
}

// tokenPredicate matches the holder of token, optionally only when the token
// was issued at or after issuedAfter.
func tokenPredicate(token string, issuedAfter time.Time) sq.Sqlizer {
	if issuedAfter.IsZero() {
		return sq.Eq{"token": token}
	}
	return sq.And{
		sq.Eq{"token": token},
		sq.GtOrEq{"token_issued_at": issuedAfter.UTC()},
	}
}

func (db *DB) insertUserQuery(user models.User, now time.Time) (string, []any, error) {
	return db.builder.
		Insert(usersTable).
		Columns("name", "email", "password", "verified", "token", "token_issued_at", "created_at", "updated_at").
		Values(user.Name, user.Email, user.PasswordHash, user.Verified, nullableString(user.Token), nullableTime(user.TokenIssuedAt), now, now).
		Suffix(returningUser).
		ToSql()
}

func (db *DB) selectUserQuery(where sq.Sqlizer) (string, []any, error) {
	return db.builder.
		Select(userColumns...).
		From(usersTable).
		Where(where).
		ToSql()
}

func (db *DB) saveUserQuery(user models.User, now time.Time) (string, []any, error) {
	return db.builder.
		Update(usersTable).
		Set("name", user.Name).
		Set("email", user.Email).
		Set("password", user.PasswordHash).
		Set("verified", user.Verified).
		Set("token", nullableString(user.Token)).
		Set("token_issued_at", nullableTime(user.TokenIssuedAt)).
		Set("updated_at", now).
		Where(sq.Eq{"user_id": user.UserID}).
		Suffix(returningUser).
		ToSql()
}

func (db *DB) confirmByTokenQuery(token string, issuedAfter, now time.Time) (string, []any, error) {
	return db.builder.
		Update(usersTable).
		Set("verified", true).
		Set("token", nil).
		Set("token_issued_at", nil).
		Set("updated_at", now).
		Where(tokenPredicate(token, issuedAfter)).
		Suffix(returningUser).
		ToSql()
}

func (db *DB) replaceTokenByEmailQuery(email, token string, issuedAt, now time.Time) (string, []any, error) {
	return db.builder.
		Update(usersTable).
		Set("token", token).
		Set("token_issued_at", issuedAt.UTC()).
		Set("updated_at", now).
		Where(sq.Eq{"email": email}).
		Suffix(returningUser).
		ToSql()
}

func (db *DB) resetPasswordByTokenQuery(token, passwordHash string, issuedAfter, now time.Time) (string, []any, error) {
	return db.builder.
		Update(usersTable).
		Set("password", passwordHash).
		Set("token", nil).
		Set("token_issued_at", nil).
		Set("updated_at", now).
		Where(tokenPredicate(token, issuedAfter)).
		Suffix(returningUser).
		ToSql()
}

func (db *DB) deleteUsersByEmailQuery(emails []string) (string, []any, error) {
	return db.builder.
		Delete(usersTable).
		Where(sq.Eq{"email": emails}).
		ToSql()
}

func (db *DB) selectCatalogQuery(table string) (string, []any, error) {
	return db.builder.
		Select("id", "name").
		From(table).
		OrderBy("id").
		ToSql()
}

func (db *DB) selectCategoryQuery(id int64) (string, []any, error) {
	return db.builder.
		Select("id", "name").
		From(categoriesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func (db *DB) insertCatalogNameQuery(table, name string) (string, []any, error) {
	return db.builder.
		Insert(table).
		Columns("name").
		Values(name).
		Suffix("ON CONFLICT (name) DO NOTHING").
		ToSql()
}

func (db *DB) clearCatalogQuery(table string) (string, []any, error) {
	return db.builder.Delete(table).ToSql()
}

// propertyColumns is the column order every property listing selects and
// scans: the property followed by its category and price names.
var propertyColumns = []string{
	"p.id",
	"p.title",
	"p.description",
	"p.rooms",
	"p.parking",
	"p.bathrooms",
	"p.street",
	"p.lat",
	"p.lng",
	"p.image",
	"p.published",
	"p.user_id",
	"p.created_at",
	"c.id",
	"c.name",
	"pr.id",
	"pr.name",
}

// scanProperty reads one row laid out as propertyColumns.
func scanProperty(row rowScanner) (models.Property, error) {
	var p models.Property
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.Rooms,
		&p.Parking,
		&p.Bathrooms,
		&p.Street,
		&p.Lat,
		&p.Lng,
		&p.Image,
		&p.Published,
		&p.UserID,
		&p.CreatedAt,
		&p.Category.ID,
		&p.Category.Name,
		&p.Price.ID,
		&p.Price.Name,
	)
	return p, err
}

// selectPublishedPropertiesQuery lists published properties matching where,
// newest first. A zero limit returns every match.
func (db *DB) selectPublishedPropertiesQuery(where sq.Sqlizer, limit uint64) (string, []any, error) {
	query := db.builder.
		Select(propertyColumns...).
		From(propertiesTable + " p").
		Join(categoriesTable + " c ON c.id = p.category_id").
		Join(pricesTable + " pr ON pr.id = p.price_id").
		Where(sq.Eq{"p.published": true}).
		Where(where).
		OrderBy("p.created_at DESC", "p.id DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	return query.ToSql()
}

// titleMatches is a case-insensitive substring match on the title. SQLite's
// LIKE already ignores ASCII case; Postgres needs ILIKE.
func (db *DB) titleMatches(term string) sq.Sqlizer {
	pattern := "%" + term + "%"
	if db.driver == config.DriverPostgres {
		return sq.ILike{"p.title": pattern}
	}
	return sq.Like{"p.title": pattern}
}

func (db *DB) insertPropertyQuery(p models.Property, now time.Time) (string, []any, error) {
	return db.builder.
		Insert(propertiesTable).
		Columns("title", "description", "rooms", "parking", "bathrooms", "street", "lat", "lng", "image", "published", "category_id", "price_id", "user_id", "created_at").
		Values(p.Title, p.Description, p.Rooms, p.Parking, p.Bathrooms, p.Street, p.Lat, p.Lng, p.Image, p.Published, p.Category.ID, p.Price.ID, p.UserID, now).
		Suffix("ON CONFLICT (user_id, title) DO NOTHING").
		ToSql()
}

func (db *DB) clearPropertiesQuery() (string, []any, error) {
	return db.builder.Delete(propertiesTable).ToSql()
}

func nullableString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC()
}
