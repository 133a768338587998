package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/pwalen/vitalwiki"
)

// ArticleService is the subset of the article flow the server exposes.
type ArticleService interface {
	Random(ctx context.Context, category string) (*vitalwiki.Article, error)
	Fetch(ctx context.Context, article *vitalwiki.Article) (*vitalwiki.Document, error)
	ExportText(doc *vitalwiki.Document) ([]byte, string)
	ExportPDF(doc *vitalwiki.Document) ([]byte, string, error)
}

// Server exposes the article, auth, and read-log API over JSON.
type Server struct {
	// Articles serves /random and /download. Optional; the auth and
	// read-log endpoints work without it.
	Articles ArticleService

	// Session and Logs back the auth and read-log endpoints.
	Session vitalwiki.SessionService
	Logs    vitalwiki.ReadLogStore

	// BaseURL defaults to vitalwiki.WikipediaBaseURL. Download requests
	// must point under its /wiki/ path.
	BaseURL string

	Logger *slog.Logger
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /random", s.handleRandom)
	mux.HandleFunc("GET /download", s.handleDownload)
	mux.HandleFunc("POST /api/register", s.handleRegister)
	mux.HandleFunc("POST /api/login", s.handleLogin)
	mux.HandleFunc("POST /api/logout", s.handleLogout)
	mux.HandleFunc("GET /api/me", s.handleMe)
	mux.HandleFunc("GET /api/read-log", s.handleGetReadLog)
	mux.HandleFunc("POST /api/read-log", s.handleSaveReadLog)
	return mux
}

func (s *Server) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

func (s *Server) baseURL() string {
	if s.BaseURL != "" {
		return s.BaseURL
	}
	return vitalwiki.WikipediaBaseURL
}

func statusFromCode(code string) int {
	switch code {
	case vitalwiki.EINVALID:
		return http.StatusBadRequest
	case vitalwiki.EUNAUTHORIZED:
		return http.StatusUnauthorized
	case vitalwiki.ENOTFOUND:
		return http.StatusNotFound
	case vitalwiki.ECONFLICT:
		return http.StatusConflict
	case vitalwiki.EUNAVAILABLE:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromCode(vitalwiki.ErrorCode(err))
	if status >= 500 {
		s.logger().Error("request failed", "path", r.URL.Path, "err", err)
	}
	writeJSON(w, status, errorResponse{Error: vitalwiki.ErrorMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// bearerToken extracts the session token from the Authorization header.
func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if after, ok := strings.CutPrefix(h, "Bearer "); ok {
		return after
	}
	return ""
}

// authenticate resolves the request's session to a username.
func (s *Server) authenticate(r *http.Request) (string, error) {
	token := bearerToken(r)
	if token == "" {
		return "", vitalwiki.Errorf(vitalwiki.EUNAUTHORIZED, "not logged in")
	}
	return s.Session.CurrentUser(r.Context(), token)
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var in credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		s.writeError(w, r, vitalwiki.Errorf(vitalwiki.EINVALID, "invalid request body"))
		return
	}
	if err := s.Session.Register(r.Context(), strings.TrimSpace(in.Username), in.Password); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var in credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		s.writeError(w, r, vitalwiki.Errorf(vitalwiki.EINVALID, "invalid request body"))
		return
	}
	token, err := s.Session.Login(r.Context(), strings.TrimSpace(in.Username), in.Password)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":       true,
		"token":    token,
		"username": strings.TrimSpace(in.Username),
	})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if token := bearerToken(r); token != "" {
		if err := s.Session.Logout(r.Context(), token); err != nil {
			s.writeError(w, r, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	username, err := s.authenticate(r)
	if err != nil && vitalwiki.ErrorCode(err) != vitalwiki.EUNAUTHORIZED {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"username": username})
}

func (s *Server) handleGetReadLog(w http.ResponseWriter, r *http.Request) {
	username, err := s.authenticate(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	entries, err := s.Logs.ReadLog(username).Get(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if entries == nil {
		entries = []*vitalwiki.ReadLogEntry{}
	}
	writeJSON(w, http.StatusOK, readLogPayload{Log: entries})
}

func (s *Server) handleSaveReadLog(w http.ResponseWriter, r *http.Request) {
	username, err := s.authenticate(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var in readLogPayload
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		s.writeError(w, r, vitalwiki.Errorf(vitalwiki.EINVALID, "invalid log"))
		return
	}
	if err := s.Logs.ReadLog(username).Set(r.Context(), in.Log); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (s *Server) handleRandom(w http.ResponseWriter, r *http.Request) {
	if s.Articles == nil {
		s.writeError(w, r, vitalwiki.Errorf(vitalwiki.EINTERNAL, "article service not configured"))
		return
	}
	article, err := s.Articles.Random(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		writeJSON(w, http.StatusOK, map[string]string{
			"title":    article.Title,
			"url":      article.URL,
			"category": article.Category,
		})
		return
	}
	s.serveExport(w, r, article, format)
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	if s.Articles == nil {
		s.writeError(w, r, vitalwiki.Errorf(vitalwiki.EINTERNAL, "article service not configured"))
		return
	}
	rawURL := r.URL.Query().Get("url")
	prefix := s.baseURL() + "/wiki/"
	path, ok := strings.CutPrefix(rawURL, prefix)
	if !ok || path == "" {
		s.writeError(w, r, vitalwiki.Errorf(vitalwiki.EINVALID, "url must point to a %s article", prefix))
		return
	}
	article := &vitalwiki.Article{
		Title: vitalwiki.TitleFromPath("/wiki/" + path),
		URL:   rawURL,
	}
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "txt"
	}
	s.serveExport(w, r, article, format)
}

// serveExport fetches the article and writes it as a txt or pdf
// attachment.
func (s *Server) serveExport(w http.ResponseWriter, r *http.Request, article *vitalwiki.Article, format string) {
	if format == "plaintext" {
		format = "txt"
	}
	if format != "txt" && format != "pdf" {
		s.writeError(w, r, vitalwiki.Errorf(vitalwiki.EINVALID, "format must be txt or pdf"))
		return
	}

	doc, err := s.Articles.Fetch(r.Context(), article)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var content []byte
	var name, contentType string
	switch format {
	case "txt":
		content, name = s.Articles.ExportText(doc)
		contentType = "text/plain; charset=utf-8"
	case "pdf":
		content, name, err = s.Articles.ExportPDF(doc)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		contentType = "application/pdf"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(content)
}
