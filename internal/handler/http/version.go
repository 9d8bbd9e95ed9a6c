package http

import (
	"net/http"
)

const (
	buildDateHeader   = "X-Build-Date"
	buildCommitHeader = "X-Build-Commit"
)

// getServerVersion writes the server version as plain text. Build date and
// commit, when injected at link time, are reported in response headers.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	appInfo := h.services.AppInfoService

	buildInfo := appInfo.GetBuildInfo(ctx)
	if date := buildInfo.BuildDate(); date != "" {
		w.Header().Set(buildDateHeader, date)
	}
	if commit := buildInfo.BuildCommit(); commit != "" {
		w.Header().Set(buildCommitHeader, commit)
	}

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(appInfo.GetAppVersion(ctx)))
}
