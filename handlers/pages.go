// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/ippon-board/cliparse"
	"github.com/danielhkuo/ippon-board/judging"
	"github.com/danielhkuo/ippon-board/models"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type PageHandler struct {
	store *judging.Store
	cfg   cliparse.Config
}

func NewPageHandler(db *sql.DB, cfg cliparse.Config) *PageHandler {
	return &PageHandler{store: judging.NewStore(db), cfg: cfg}
}

type displayPage struct {
	JudgeNumbers []int
	Quorum       int
	// Unix ms of the newest yo at render time, 0 for an empty log.
	// The display only announces yo events newer than this.
	LastYo int64
}

type judgePage struct {
	JudgeNumber int
	JudgeName   string
}

// Display handles GET / and GET /?judge=N
// With a valid judge number the judge page is served instead.
func (h *PageHandler) Display(w http.ResponseWriter, r *http.Request) {
	if raw := r.URL.Query().Get("judge"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && judging.ValidateJudgeNumber(n) == nil {
			h.renderJudge(w, r, n)
			return
		}
	}

	numbers := make([]int, 0, models.MaxJudgeNumber)
	for n := models.MinJudgeNumber; n <= models.MaxJudgeNumber; n++ {
		numbers = append(numbers, n)
	}

	var lastYo int64
	event, ok, err := h.store.LatestYo(r.Context())
	switch {
	case err != nil:
		slog.Warn("failed to load latest yo for display", "error", err)
	case ok:
		lastYo = event.CreatedAt.UnixMilli()
	}

	renderPage(w, "display.html", displayPage{
		JudgeNumbers: numbers,
		Quorum:       models.IpponQuorum,
		LastYo:       lastYo,
	})
}

// JudgePage handles GET /judge/{number}
func (h *PageHandler) JudgePage(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.Atoi(r.PathValue("number"))
	if err != nil || judging.ValidateJudgeNumber(n) != nil {
		http.NotFound(w, r)
		return
	}
	h.renderJudge(w, r, n)
}

// Static serves the embedded page scripts under /static/.
func (h *PageHandler) Static() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServerFS(sub))
}

func (h *PageHandler) renderJudge(w http.ResponseWriter, r *http.Request, n int) {
	name := h.configuredName(n)
	judge, err := h.store.JudgeByNumber(r.Context(), n)
	switch {
	case err == nil:
		name = judge.Name
	case errors.Is(err, judging.ErrNotFound):
	default:
		slog.Warn("failed to load judge for page", "judge_number", n, "error", err)
	}

	renderPage(w, "judge.html", judgePage{JudgeNumber: n, JudgeName: name})
}

// configuredName is used when the judges table has no row for n.
func (h *PageHandler) configuredName(n int) string {
	if n <= len(h.cfg.JudgeNames) && h.cfg.JudgeNames[n-1] != "" {
		return h.cfg.JudgeNames[n-1]
	}
	return fmt.Sprintf("Judge %d", n)
}

func renderPage(w http.ResponseWriter, name string, data any) {
	var buf bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		slog.Error("failed to render page", "template", name, "error", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
