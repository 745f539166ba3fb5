package server

import (
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"

	"github.com/rushteam/fairrec/core"
	"github.com/rushteam/fairrec/pkg/logging"
	"github.com/rushteam/fairrec/prefs"
	"github.com/rushteam/fairrec/report"
	"github.com/rushteam/fairrec/sentiment"
)

const maxBodyBytes = 64 << 10

var validate = validator.New()

// RecommendationItem 是推荐接口中的单条结果。
type RecommendationItem struct {
	Rank     int      `json:"rank"`
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Brand    string   `json:"brand"`
	Score    float64  `json:"score"`
	Reasons  []string `json:"reasons"`
}

// RecommendationResponse 是推荐接口的响应。
type RecommendationResponse struct {
	Items      []RecommendationItem   `json:"items"`
	Categories []report.CategoryCount `json:"categories"`
}

// SentimentRequest 是情感判断接口的请求体。
type SentimentRequest struct {
	Text string `json:"text" validate:"required"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) recommendations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	rctx := &core.RecommendContext{
		RequestID: chimiddleware.GetReqID(r.Context()),
		Preferred: prefs.ParseCSV(q.Get("interests")),
		Excluded:  prefs.ParseCSV(q.Get("exclude")),
		Count:     prefs.ParseCount(q.Get("count")),
	}

	recs, err := s.engine.Recommend(r.Context(), rctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "recommendation failed")
		return
	}

	resp := RecommendationResponse{
		Items:      make([]RecommendationItem, 0, len(recs)),
		Categories: report.CategoryCounts(recs),
	}
	for i, it := range recs {
		resp.Items = append(resp.Items, RecommendationItem{
			Rank:     i + 1,
			ID:       it.ID(),
			Name:     it.Product.Name,
			Category: it.Product.Category,
			Brand:    it.Product.Brand,
			Score:    it.Score,
			Reasons:  it.Reasons,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) sentiment(w http.ResponseWriter, r *http.Request) {
	var req SentimentRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}
	writeJSON(w, http.StatusOK, sentiment.Classify(req.Text))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.Error().Err(err).Msg("failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("failed to write JSON response")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
