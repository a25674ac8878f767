package transfer

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/imgdock/service/internal/response"
)

// Handler holds HTTP handlers for the transfer endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new transfer Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type transferRequest struct {
	Name string `json:"name" example:"photo.jpg"`
	Size int64  `json:"size" example:"1048576"`
	Type string `json:"type" example:"image/jpeg"`
}

type transferResponse struct {
	OK        int    `json:"ok"        example:"1"`
	ID        string `json:"id"        example:"aB3x9Z"`
	UploadURL string `json:"uploadUrl" example:"https://storage.example.com/images/20260901/photo.jpg?X-Amz-Signature=..."`
	Key       string `json:"key"       example:"20260901/photo.jpg"`
}

type completeResponse struct {
	OK int    `json:"ok" example:"1"`
	ID string `json:"id" example:"aB3x9Z"`
}

type imageResponse struct {
	OK  int    `json:"ok"          example:"1"`
	URL string `json:"url"         example:"https://cdn.example.com/20260901/photo.jpg"`
	C   int    `json:"c,omitempty" example:"1"`
}

// CreateTransfer godoc
//
//	@Summary		Begin a transfer
//	@Description	Validates the declared upload and returns a presigned PUT URL the client uploads to directly. The transfer must be confirmed within 5 minutes.
//	@Tags			transfer
//	@Accept			json
//	@Produce		json
//	@Param			request	body		transferRequest	true	"Declared name, size in bytes, and MIME type"
//	@Success		200		{object}	transferResponse
//	@Failure		400		{object}	response.ErrorBody
//	@Failure		413		{object}	response.ErrorBody
//	@Failure		500		{object}	response.ErrorBody
//	@Router			/transfer [post]
func (h *Handler) CreateTransfer(w http.ResponseWriter, r *http.Request) {
	var req transferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, http.StatusBadRequest, "Bad Request: invalid request body")
		return
	}

	res, err := h.svc.BeginTransfer(r.Context(), req.Name, req.Size, req.Type)
	if err != nil {
		writeError(w, err)
		return
	}

	response.OK(w, transferResponse{OK: 1, ID: res.ID, UploadURL: res.UploadURL, Key: res.Key})
}

// CompleteTransfer godoc
//
//	@Summary		Confirm a transfer
//	@Description	Verifies the object arrived in storage and publishes the image record. Retryable while the pending transfer is alive.
//	@Tags			transfer
//	@Produce		json
//	@Param			id	path		string	true	"Transfer id"
//	@Success		200	{object}	completeResponse
//	@Failure		400	{object}	response.ErrorBody
//	@Failure		404	{object}	response.ErrorBody
//	@Failure		500	{object}	response.ErrorBody
//	@Router			/transfer/{id}/done [post]
func (h *Handler) CompleteTransfer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.svc.ConfirmTransfer(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	response.OK(w, completeResponse{OK: 1, ID: id})
}

// GetImage godoc
//
//	@Summary		Resolve an image URL
//	@Description	Returns the public URL for a confirmed image. The "c" field is present only when served from the URL cache.
//	@Tags			image
//	@Produce		json
//	@Param			id	path		string	true	"Image id"
//	@Success		200	{object}	imageResponse
//	@Failure		404	{object}	response.ErrorBody
//	@Failure		500	{object}	response.ErrorBody
//	@Router			/i/{id} [get]
func (h *Handler) GetImage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	res, err := h.svc.ResolveImage(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	body := imageResponse{OK: 1, URL: res.URL}
	if res.FromCache {
		body.C = 1
	}
	response.OK(w, body)
}

// writeError maps a coordinator error onto its HTTP status and envelope.
func writeError(w http.ResponseWriter, err error) {
	var appErr *Error
	if errors.As(err, &appErr) {
		response.Err(w, appErr.Status(), appErr.Error())
		return
	}
	response.Err(w, http.StatusInternalServerError, string(KindInternal)+": unexpected error")
}
