// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-bienes-raices/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}

func (h *Handler) getBuildInfo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	build := h.services.AppInfoService.GetBuildInfo(ctx)

	h.respond(w, r, http.StatusOK, models.BuildInfoResponse{
		AppVersion:   h.services.AppInfoService.GetAppVersion(ctx),
		BuildVersion: build.BuildVersion(),
		BuildDate:    build.BuildDate(),
		BuildCommit:  build.BuildCommit(),
	})
}
