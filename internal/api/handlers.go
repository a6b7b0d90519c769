package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"productPhotoAi/internal/agent"
	"productPhotoAi/internal/extract"
	"productPhotoAi/internal/imaging"
	"productPhotoAi/internal/llm"
	"productPhotoAi/internal/storage"
	"productPhotoAi/internal/styles"
)

const DefaultMaxUploadBytes = 10 << 20 // 10 MB

// Planner is the slice of the planning agent the HTTP layer needs.
type Planner interface {
	DetectProduct(ctx context.Context, imageDataURL string) (storage.Product, error)
	SuggestIdeas(ctx context.Context, product storage.Product, styleKey, platformKey string) ([]storage.Idea, error)
	BuildShotPlan(ctx context.Context, product string, idea storage.Idea, count int) ([]storage.Shot, error)
}

// Handler bundles dependencies for the photo shoot planning endpoints.
type Handler struct {
	Planner        Planner
	Store          storage.Store
	MaxUploadBytes int64
	MaxDimension   int
}

// DetectResponse is returned by POST /api/detect.
type DetectResponse struct {
	SessionID  string         `json:"session_id"`
	Product    string         `json:"product"`
	Category   string         `json:"category"`
	Attributes []string       `json:"attributes"`
	Confidence int            `json:"confidence"`
	Ideas      []storage.Idea `json:"ideas"`
}

// PlanRequest describes inbound payload for POST /api/plan.
type PlanRequest struct {
	SessionID string `json:"session_id,omitempty"`
	Product   string `json:"product"`
	IdeaID    string `json:"idea_id"`
	Count     int    `json:"count"`
}

// PlanResponse is returned by POST /api/plan.
type PlanResponse struct {
	Product string         `json:"product"`
	IdeaID  string         `json:"idea_id"`
	Shots   []storage.Shot `json:"shots"`
}

// Detect handles POST /api/detect: accepts a product photo, identifies the
// product, and returns shoot concepts alongside a session id for follow-up
// planning calls.
func (h Handler) Detect(w http.ResponseWriter, r *http.Request) {
	maxBytes := h.MaxUploadBytes
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadBytes
	}

	data, filename, opts, err := parseDetectRequest(r, maxBytes)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := imaging.Validate(data, filename, maxBytes); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	maxDim := h.MaxDimension
	if maxDim <= 0 {
		maxDim = imaging.DefaultMaxDimension
	}
	optimized, mimeType, err := imaging.Optimize(data, maxDim)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("could not process image: %v", err))
		return
	}

	dataURL := imaging.DataURL(optimized, mimeType)

	product, err := h.Planner.DetectProduct(r.Context(), dataURL)
	if err != nil {
		writeAgentError(w, "detect product", err)
		return
	}

	ideas, err := h.Planner.SuggestIdeas(r.Context(), product, opts.style, opts.platform)
	if err != nil {
		writeAgentError(w, "suggest ideas", err)
		return
	}

	shoot, err := h.Store.CreateShoot(r.Context(), product, ideas)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not store session")
		return
	}

	writeJSON(w, http.StatusOK, DetectResponse{
		SessionID:  shoot.ID,
		Product:    product.Name,
		Category:   product.Category,
		Attributes: product.Attributes,
		Confidence: product.Confidence,
		Ideas:      ideas,
	})
}

// Plan handles POST /api/plan: expands a previously suggested idea into a
// numbered shot list. A session id resolves the full idea; without one the
// caller only gets the idea id echoed into a minimal stand-in.
func (h Handler) Plan(w http.ResponseWriter, r *http.Request) {
	var req PlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.SessionID = strings.TrimSpace(req.SessionID)
	req.Product = strings.TrimSpace(req.Product)
	req.IdeaID = strings.TrimSpace(req.IdeaID)

	if req.Product == "" {
		writeError(w, http.StatusBadRequest, "product is required")
		return
	}
	if req.IdeaID == "" {
		writeError(w, http.StatusBadRequest, "idea_id is required")
		return
	}
	if req.Count < 1 || req.Count > 12 {
		writeError(w, http.StatusBadRequest, "count must be between 1 and 12")
		return
	}

	idea := storage.Idea{ID: req.IdeaID, Title: "Idea " + req.IdeaID}
	if req.SessionID != "" {
		shoot, err := h.Store.GetShoot(r.Context(), req.SessionID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				writeError(w, http.StatusNotFound, "session not found or expired")
				return
			}
			writeError(w, http.StatusInternalServerError, "could not load session")
			return
		}
		found := false
		for _, candidate := range shoot.Ideas {
			if candidate.ID == req.IdeaID {
				idea = candidate
				found = true
				break
			}
		}
		if !found {
			writeError(w, http.StatusNotFound, fmt.Sprintf("idea %q not found in session", req.IdeaID))
			return
		}
	}

	shots, err := h.Planner.BuildShotPlan(r.Context(), req.Product, idea, req.Count)
	if err != nil {
		writeAgentError(w, "build shot plan", err)
		return
	}

	writeJSON(w, http.StatusOK, PlanResponse{
		Product: req.Product,
		IdeaID:  req.IdeaID,
		Shots:   shots,
	})
}

// Styles handles GET /api/styles.
func (h Handler) Styles(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"styles":    styles.All(),
		"platforms": styles.AllPlatforms(),
	})
}

type detectOptions struct {
	style    string
	platform string
}

func parseDetectRequest(r *http.Request, maxBytes int64) (data []byte, filename string, opts detectOptions, err error) {
	if err := r.ParseMultipartForm(maxBytes + (1 << 20)); err != nil {
		return nil, "", opts, fmt.Errorf("invalid multipart payload: %w", err)
	}

	opts.style = strings.TrimSpace(r.FormValue("style"))
	if opts.style != "" && !styles.Known(opts.style) {
		return nil, "", opts, fmt.Errorf("unknown style %q", opts.style)
	}
	opts.platform = strings.TrimSpace(r.FormValue("platform"))
	if opts.platform != "" && !styles.KnownPlatform(opts.platform) {
		return nil, "", opts, fmt.Errorf("unknown platform %q", opts.platform)
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, "", opts, errors.New("image file is required")
		}
		return nil, "", opts, fmt.Errorf("could not read image: %w", err)
	}
	defer file.Close()

	data, err = io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil {
		return nil, "", opts, fmt.Errorf("read image: %w", err)
	}
	if len(data) == 0 {
		return nil, "", opts, errors.New("image file is empty")
	}

	return data, header.Filename, opts, nil
}

// writeAgentError maps workflow failures onto HTTP statuses: a reply the
// extractor or schema validator rejected is 422, a provider failure is 502,
// anything else is 500.
func writeAgentError(w http.ResponseWriter, step string, err error) {
	var (
		extractErr *extract.Error
		schemaErr  *agent.SchemaError
		upstream   *llm.UpstreamError
	)
	switch {
	case errors.As(err, &extractErr):
		log.Warn().Str("step", step).Str("reason", extractErr.Reason).Msg("unparseable model reply")
		writeError(w, http.StatusUnprocessableEntity, fmt.Sprintf("model returned an unparseable reply: %s", extractErr.Reason))
	case errors.As(err, &schemaErr):
		log.Warn().Str("step", step).Str("field", schemaErr.Field).Msg("model reply failed validation")
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.As(err, &upstream):
		log.Error().Str("step", step).Str("provider", upstream.Provider).Int("status", upstream.StatusCode).Msg("upstream model call failed")
		writeError(w, http.StatusBadGateway, "model provider request failed")
	default:
		log.Error().Str("step", step).Err(err).Msg("planning step failed")
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
