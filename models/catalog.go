// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Category is a property category (house, flat, warehouse, ...).
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Price is a price range label used to filter listings.
type Price struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
