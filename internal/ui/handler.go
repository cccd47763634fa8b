package ui

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/thep200/github-explorer/cfg"
	"github.com/thep200/github-explorer/internal/explorer"
	"github.com/thep200/github-explorer/internal/githubapi"
	"github.com/thep200/github-explorer/internal/starhistory"
	"github.com/thep200/github-explorer/pkg/log"
)

// Handler manages HTTP requests for the explorer
type Handler struct {
	Logger   log.Logger
	Config   *cfg.Config
	Explorer *explorer.Service
}

// NewHandler creates a new explorer handler
func NewHandler(logger log.Logger, config *cfg.Config, service *explorer.Service) (*Handler, error) {
	return &Handler{
		Logger:   logger,
		Config:   config,
		Explorer: service,
	}, nil
}

// RegisterRoutes sets up the HTTP routes for the explorer
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/user", h.getUser)
	mux.HandleFunc("/api/user-repos", h.getUserRepos)
	mux.HandleFunc("/api/search", h.searchRepos)
	mux.HandleFunc("/api/history", h.getStarHistory)
	mux.HandleFunc("/chart/stars", h.getStarChart)
}

// writeJSON sends a JSON response
func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.Logger.Error(r.Context(), "Failed to encode JSON response: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// writeApiError maps the structured API error onto an HTTP status. A 404
// from GitHub passes through; everything else is a bad gateway.
func (h *Handler) writeApiError(w http.ResponseWriter, r *http.Request, err error) {
	h.Logger.Error(r.Context(), "GitHub API call failed: %v", err)
	status := http.StatusBadGateway
	if apiErr, ok := err.(*githubapi.ApiError); ok && apiErr.StatusCode == http.StatusNotFound {
		status = http.StatusNotFound
	}
	http.Error(w, err.Error(), status)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	login := r.URL.Query().Get("login")
	if login == "" {
		http.Error(w, "Missing login parameter", http.StatusBadRequest)
		return
	}

	user, err := h.Explorer.GetUser(r.Context(), login)
	if err != nil {
		h.writeApiError(w, r, err)
		return
	}
	h.writeJSON(w, r, user)
}

func (h *Handler) getUserRepos(w http.ResponseWriter, r *http.Request) {
	login := r.URL.Query().Get("login")
	if login == "" {
		http.Error(w, "Missing login parameter", http.StatusBadRequest)
		return
	}
	language := r.URL.Query().Get("language")
	topN := intParam(r, "top", explorer.DefaultTopN)

	repos, err := h.Explorer.TopUserRepos(r.Context(), login, language, topN)
	if err != nil {
		h.writeApiError(w, r, err)
		return
	}
	h.writeJSON(w, r, repos)
}

func (h *Handler) searchRepos(w http.ResponseWriter, r *http.Request) {
	keyword := r.URL.Query().Get("keyword")
	language := r.URL.Query().Get("language")
	topN := intParam(r, "top", explorer.DefaultTopN)

	repos, err := h.Explorer.SearchTop(r.Context(), keyword, language, topN)
	if err != nil {
		h.writeApiError(w, r, err)
		return
	}
	h.writeJSON(w, r, repos)
}

func (h *Handler) getStarHistory(w http.ResponseWriter, r *http.Request) {
	owner, repo, ok := ownerRepoParams(w, r)
	if !ok {
		return
	}
	// 0 defers to the configured page cap; the collector clamps excess.
	maxPages := intParam(r, "pages", 0)

	result, err := h.Explorer.StarHistory(r.Context(), owner, repo, maxPages, windowParam(r))
	if err != nil {
		h.writeApiError(w, r, err)
		return
	}
	h.writeJSON(w, r, result)
}

func (h *Handler) getStarChart(w http.ResponseWriter, r *http.Request) {
	owner, repo, ok := ownerRepoParams(w, r)
	if !ok {
		return
	}
	maxPages := intParam(r, "pages", 0)

	result, err := h.Explorer.StarHistory(r.Context(), owner, repo, maxPages, windowParam(r))
	if err != nil {
		h.writeApiError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := RenderStarChart(w, result); err != nil {
		h.Logger.Error(r.Context(), "Failed to render chart: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func ownerRepoParams(w http.ResponseWriter, r *http.Request) (string, string, bool) {
	owner := r.URL.Query().Get("owner")
	repo := r.URL.Query().Get("repo")
	if owner == "" || repo == "" {
		http.Error(w, "Missing owner or repo parameter", http.StatusBadRequest)
		return "", "", false
	}
	return owner, repo, true
}

func intParam(r *http.Request, name string, fallback int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil || v < 1 {
		return fallback
	}
	return v
}

func windowParam(r *http.Request) starhistory.WindowMode {
	if r.URL.Query().Get("window") == "trailing5y" {
		return starhistory.WindowTrailing5Y
	}
	return starhistory.WindowFull
}
