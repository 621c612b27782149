// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Property is a listing owned by a user. Only published properties are
// visible to visitors.
type Property struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Rooms       int     `json:"rooms"`
	Parking     int     `json:"parking"`
	Bathrooms   int     `json:"bathrooms"`
	Street      string  `json:"street"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Image       string  `json:"image"`
	Published   bool    `json:"-"`

	// Category and Price are filled by listing queries; inserts only read
	// their IDs.
	Category Category `json:"category"`
	Price    Price    `json:"price"`

	UserID    int64     `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// HomePage is the content of the landing page: the filter options and the
// latest published houses and flats.
type HomePage struct {
	Categories []Category `json:"categories"`
	Prices     []Price    `json:"prices"`
	Houses     []Property `json:"houses"`
	Flats      []Property `json:"flats"`
}
