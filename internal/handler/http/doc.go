// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport of the account service.
//
// It exposes route wiring, request handlers, and middleware. Request tracing,
// access logging, gzip request bodies and session checks are handled here
// before requests are delegated to the service layer.
package http
