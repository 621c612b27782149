// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements persistence for accounts and catalog reference
// data on top of database/sql.
//
// Two drivers are supported: PostgreSQL through pgx's stdlib adapter and
// SQLite through mattn/go-sqlite3. Queries are built with squirrel using the
// placeholder format of the active driver, and driver errors are mapped to
// the sentinel errors in errors.go so that callers never inspect driver types.
//
// Account mutations that depend on a pending token are expressed as single
// conditional UPDATE ... RETURNING statements, so two concurrent requests
// presenting the same token can never both succeed.
package store
