// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package services provides suture.Service wrappers for Reelmatch components.

Each wrapper translates a component's lifecycle into suture's context-aware
Serve pattern and implements fmt.Stringer so supervisor events name it.

# Available Services

HTTPServerService wraps *http.Server: ListenAndServe runs in a goroutine and
context cancellation triggers Shutdown with a bounded timeout.

RefreshService keeps the published recommendation snapshot in step with the
corpus: it loads once at start (when configured) and then polls the source
fingerprint, refitting only when the data changed. Load failures are logged
and retried on the next tick; the previous snapshot keeps serving.
*/
package services
