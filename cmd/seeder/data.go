// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import "github.com/MKhiriev/go-bienes-raices/internal/service"

var sampleData = service.SeedData{
	Categories: []string{
		"Casa",
		"Departamento",
		"Bodega",
		"Terreno",
		"Cabaña",
	},
	Prices: []string{
		"0 - $10,000 USD",
		"$10,000 - $30,000 USD",
		"$30,000 - $50,000 USD",
		"$50,000 - $75,000 USD",
		"$75,000 - $100,000 USD",
		"$150,000 - $200,000 USD",
		"$200,000 - $300,000 USD",
		"$300,000 - $500,000 USD",
		"+ $500,000 USD",
	},
	Users: []service.SeedUser{
		{
			Name:     "Administrador",
			Email:    "admin@bienesraices.example",
			Password: "password",
		},
	},
	Properties: []service.SeedProperty{
		{
			Title:       "Casa con alberca en las afueras",
			Description: "Casa de dos plantas con jardín y alberca",
			Rooms:       4,
			Parking:     2,
			Bathrooms:   3,
			Street:      "Calle 10 #4-25",
			Lat:         8.2386949,
			Lng:         -73.3524963,
			Image:       "casa-alberca.jpg",
			Category:    "Casa",
			Price:       "$150,000 - $200,000 USD",
			OwnerEmail:  "admin@bienesraices.example",
		},
		{
			Title:       "Casa familiar cerca del parque",
			Description: "Casa de una planta a dos cuadras del parque principal",
			Rooms:       3,
			Parking:     1,
			Bathrooms:   2,
			Street:      "Carrera 7 #12-40",
			Lat:         8.2401722,
			Lng:         -73.3551846,
			Image:       "casa-parque.jpg",
			Category:    "Casa",
			Price:       "$75,000 - $100,000 USD",
			OwnerEmail:  "admin@bienesraices.example",
		},
		{
			Title:       "Departamento en el centro",
			Description: "Departamento con balcón y vista a la plaza",
			Rooms:       2,
			Parking:     1,
			Bathrooms:   1,
			Street:      "Calle 11 #5-18",
			Lat:         8.2369515,
			Lng:         -73.3537307,
			Image:       "departamento-centro.jpg",
			Category:    "Departamento",
			Price:       "$50,000 - $75,000 USD",
			OwnerEmail:  "admin@bienesraices.example",
		},
		{
			Title:       "Bodega sobre la vía principal",
			Description: "Bodega de 400 m² con acceso para camiones",
			Parking:     4,
			Bathrooms:   1,
			Street:      "Vía Ocaña - Cúcuta km 2",
			Lat:         8.2452201,
			Lng:         -73.3418623,
			Image:       "bodega-via.jpg",
			Category:    "Bodega",
			Price:       "$200,000 - $300,000 USD",
			OwnerEmail:  "admin@bienesraices.example",
		},
	},
}
