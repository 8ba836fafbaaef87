package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/inkmap/inkmap/models"
	"github.com/inkmap/inkmap/service"
	"github.com/inkmap/inkmap/store"
)

type Handler struct {
	Service *service.Service
}

func NewHandler(svc *service.Service) *Handler {
	return &Handler{Service: svc}
}

type loginResponse struct {
	Success     bool   `json:"success"`
	Id          string `json:"id"`
	DisplayName string `json:"displayName"`
	Ink         int    `json:"ink"`
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	identity, err := h.Service.Authenticate(r.Context(), h.getTokenFromAuthHeader(r))
	if err != nil {
		h.sendError(w, err)
		return
	}

	if err := h.Service.Login(r.Context(), identity); err != nil {
		h.sendError(w, err)
		return
	}

	ink, err := h.Service.InkBalance(r.Context(), identity.UserID)
	if err != nil {
		h.sendError(w, err)
		return
	}

	h.sendResponse(w, loginResponse{
		Success:     true,
		Id:          identity.UserID,
		DisplayName: identity.DisplayName,
		Ink:         ink,
	})
}

type inkResponse struct {
	Ink int `json:"ink"`
}

func (h *Handler) HandleInk(w http.ResponseWriter, r *http.Request) {
	identity, err := h.Service.Authenticate(r.Context(), h.getTokenFromAuthHeader(r))
	if err != nil {
		h.sendError(w, err)
		return
	}

	ink, err := h.Service.InkBalance(r.Context(), identity.UserID)
	if err != nil {
		h.sendError(w, err)
		return
	}

	h.sendResponse(w, inkResponse{Ink: ink})
}

type createDrawingRequest struct {
	Title           string           `json:"title"`
	Segments        []models.Segment `json:"segments"`
	CommentsEnabled bool             `json:"commentsEnabled"`
	IsPublic        bool             `json:"isPublic"`
}

type createDrawingResponse struct {
	Success      bool         `json:"success"`
	Drawing      drawingEntry `json:"drawing"`
	Cost         int          `json:"cost"`
	RemainingInk int          `json:"inkRemaining"`
}

func (h *Handler) HandleCreateDrawing(w http.ResponseWriter, r *http.Request) {
	identity, err := h.Service.Authenticate(r.Context(), h.getTokenFromAuthHeader(r))
	if err != nil {
		h.sendError(w, err)
		return
	}

	var req createDrawingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.Service.CreateDrawing(r.Context(), identity, service.CreateDrawingParams{
		Title:           req.Title,
		Segments:        req.Segments,
		CommentsEnabled: req.CommentsEnabled,
		IsPublic:        req.IsPublic,
	})
	if err != nil {
		h.sendError(w, err)
		return
	}

	h.sendCreated(w, createDrawingResponse{
		Success:      true,
		Drawing:      toDrawingEntry(result.Drawing, 0, false, true),
		Cost:         result.Cost,
		RemainingInk: result.RemainingInk,
	})
}

type drawingEntry struct {
	Id              uint             `json:"id"`
	Uuid            string           `json:"uuid"`
	ArtistName      string           `json:"artistName"`
	Title           string           `json:"title"`
	Segments        []models.Segment `json:"segments"`
	CommentsEnabled bool             `json:"commentsEnabled"`
	IsPublic        bool             `json:"isPublic"`
	LikeCount       int              `json:"likeCount"`
	IsLiked         bool             `json:"isLiked"`
	IsOwner         bool             `json:"isOwner"`
	CreatedAt       time.Time        `json:"createdAt"`
}

func toDrawingEntry(d models.Drawing, likeCount int, isLiked, isOwner bool) drawingEntry {
	return drawingEntry{
		Id:              d.ID,
		Uuid:            d.UUID.String(),
		ArtistName:      d.ArtistName,
		Title:           d.Title,
		Segments:        d.Segments,
		CommentsEnabled: d.CommentsEnabled,
		IsPublic:        d.IsPublic,
		LikeCount:       likeCount,
		IsLiked:         isLiked,
		IsOwner:         isOwner,
		CreatedAt:       d.CreatedAt,
	}
}

type feedResponse struct {
	Drawings   []drawingEntry `json:"drawings"`
	Page       int            `json:"page"`
	TotalPages int            `json:"totalPages"`
	Total      int64          `json:"total"`
}

func (h *Handler) HandleFeed(w http.ResponseWriter, r *http.Request) {
	identity, err := h.Service.Authenticate(r.Context(), h.getTokenFromAuthHeader(r))
	if err != nil {
		h.sendError(w, err)
		return
	}

	query := r.URL.Query()
	page, _ := strconv.Atoi(query.Get("page"))

	feed, err := h.Service.ListFeed(r.Context(), identity, service.FeedParams{
		Sort:   service.ParseSort(query.Get("sort")),
		Search: query.Get("search"),
		Mine:   query.Get("mine") == "true",
		Page:   page,
	})
	if err != nil {
		h.sendError(w, err)
		return
	}

	drawings := make([]drawingEntry, 0, len(feed.Entries))
	for _, entry := range feed.Entries {
		drawings = append(drawings, toDrawingEntry(
			entry.Drawing.Drawing,
			entry.Drawing.LikeCount,
			entry.Drawing.IsLiked,
			entry.IsOwner,
		))
	}

	h.sendResponse(w, feedResponse{
		Drawings:   drawings,
		Page:       feed.Page,
		TotalPages: feed.TotalPages,
		Total:      feed.Total,
	})
}

type drawingDetailResponse struct {
	drawingEntry
	Region string `json:"region"`
}

func (h *Handler) HandleGetDrawing(w http.ResponseWriter, r *http.Request) {
	identity, err := h.Service.Authenticate(r.Context(), h.getTokenFromAuthHeader(r))
	if err != nil {
		h.sendError(w, err)
		return
	}

	id, ok := h.drawingID(w, r)
	if !ok {
		return
	}

	detail, err := h.Service.GetDrawing(r.Context(), identity, id)
	if err != nil {
		h.sendError(w, err)
		return
	}

	h.sendResponse(w, drawingDetailResponse{
		drawingEntry: toDrawingEntry(detail.Drawing, detail.LikeCount, detail.IsLiked, detail.IsOwner),
		Region:       detail.Region,
	})
}

type likeResponse struct {
	LikeCount int  `json:"likeCount"`
	IsLiked   bool `json:"isLiked"`
}

func (h *Handler) HandleToggleLike(w http.ResponseWriter, r *http.Request) {
	identity, err := h.Service.Authenticate(r.Context(), h.getTokenFromAuthHeader(r))
	if err != nil {
		h.sendError(w, err)
		return
	}

	id, ok := h.drawingID(w, r)
	if !ok {
		return
	}

	result, err := h.Service.ToggleLike(r.Context(), identity, id)
	if err != nil {
		h.sendError(w, err)
		return
	}

	h.sendResponse(w, likeResponse{LikeCount: result.LikeCount, IsLiked: result.IsLiked})
}

type commentEntry struct {
	Id         uint      `json:"id"`
	DrawingId  uint      `json:"drawingId"`
	ArtistName string    `json:"artistName"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toCommentEntry(c models.Comment) commentEntry {
	return commentEntry{
		Id:         c.ID,
		DrawingId:  c.DrawingID,
		ArtistName: c.ArtistName,
		Content:    c.Content,
		CreatedAt:  c.CreatedAt,
	}
}

type postCommentRequest struct {
	Content string `json:"content"`
}

func (h *Handler) HandlePostComment(w http.ResponseWriter, r *http.Request) {
	identity, err := h.Service.Authenticate(r.Context(), h.getTokenFromAuthHeader(r))
	if err != nil {
		h.sendError(w, err)
		return
	}

	id, ok := h.drawingID(w, r)
	if !ok {
		return
	}

	var req postCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	comment, err := h.Service.PostComment(r.Context(), identity, id, req.Content)
	if err != nil {
		h.sendError(w, err)
		return
	}

	h.sendCreated(w, toCommentEntry(comment))
}

type commentListResponse struct {
	Comments   []commentEntry `json:"comments"`
	Page       int            `json:"page"`
	TotalPages int            `json:"totalPages"`
	Total      int64          `json:"total"`
}

func (h *Handler) HandleListComments(w http.ResponseWriter, r *http.Request) {
	identity, err := h.Service.Authenticate(r.Context(), h.getTokenFromAuthHeader(r))
	if err != nil {
		h.sendError(w, err)
		return
	}

	id, ok := h.drawingID(w, r)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))

	result, err := h.Service.ListComments(r.Context(), identity, id, page)
	if err != nil {
		h.sendError(w, err)
		return
	}

	comments := make([]commentEntry, 0, len(result.Comments))
	for _, c := range result.Comments {
		comments = append(comments, toCommentEntry(c))
	}

	h.sendResponse(w, commentListResponse{
		Comments:   comments,
		Page:       result.Page,
		TotalPages: result.TotalPages,
		Total:      result.Total,
	})
}

func (h *Handler) drawingID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	raw := r.PathValue("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		http.Error(w, "invalid drawing id", http.StatusBadRequest)
		return 0, false
	}
	return uint(id), true
}

func (h *Handler) sendResponse(w http.ResponseWriter, resp any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) sendCreated(w http.ResponseWriter, resp any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.Service.Logger.Error().Err(err).Msg("failed to encode response")
	}
}

func (h *Handler) sendError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		http.Error(w, "invalid token", http.StatusUnauthorized)
	case errors.Is(err, service.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, store.ErrInsufficientInk):
		http.Error(w, "insufficient ink", http.StatusBadRequest)
	case errors.Is(err, service.ErrCommentsDisabled):
		http.Error(w, "comments are disabled", http.StatusForbidden)
	case errors.Is(err, store.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	default:
		h.Service.Logger.Error().Err(err).Msg("request failed")
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (h *Handler) getTokenFromAuthHeader(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	const prefix = "Bearer "
	if !strings.HasPrefix(authHeader, prefix) {
		return ""
	}
	return strings.TrimPrefix(authHeader, prefix)
}
