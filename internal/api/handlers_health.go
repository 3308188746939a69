// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/reelmatch/internal/middleware"
	"github.com/tomtom215/reelmatch/internal/models"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

// StatusResponse is the body of GET /api/v1/status.
type StatusResponse struct {
	Engine        recommend.Status           `json:"engine"`
	UptimeSeconds float64                    `json:"uptime_seconds"`
	Endpoints     []middleware.EndpointStats `json:"endpoints"`
}

// HealthLive reports that the process is running. It never touches the
// engine.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, &models.APIResponse{
		Status: statusSuccess,
		Data: map[string]interface{}{
			"alive":  true,
			"uptime": time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// HealthReady returns 200 once a snapshot is published, 503 before that.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	st := h.engine.Status()
	ready := h.engine.Ready()

	statusCode := http.StatusOK
	status := "ready"
	if !ready {
		statusCode = http.StatusServiceUnavailable
		status = "not_ready"
	}

	data := map[string]interface{}{
		"ready_to_serve":   ready,
		"snapshot_version": st.Version,
		"items":            st.Items,
		"uptime":           time.Since(h.startTime).Seconds(),
	}
	if st.LastError != "" {
		data["last_error_at"] = st.LastErrorAt
	}

	writeJSON(w, r, statusCode, &models.APIResponse{
		Status:   status,
		Data:     data,
		Metadata: models.Metadata{Timestamp: time.Now(), SnapshotVersion: st.Version},
	})
}

// Status handles GET /api/v1/status.
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	respondJSON(w, r, start, &StatusResponse{
		Engine:        h.engine.Status(),
		UptimeSeconds: time.Since(h.startTime).Seconds(),
		Endpoints:     h.perfMon.Stats(),
	})
}

// ReloadCorpus handles POST /api/v1/corpus/reload. It refits synchronously
// and returns the new status; on failure the previous snapshot keeps serving.
func (h *Handler) ReloadCorpus(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx, cancel := h.requestContext(r)
	defer cancel()

	st, err := h.engine.Refresh(ctx)
	if err != nil {
		respondEngineError(w, r, err)
		return
	}
	respondJSON(w, r, start, st)
}
