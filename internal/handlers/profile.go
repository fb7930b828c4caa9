package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/central-adventures/trips/internal/auth"
	"github.com/central-adventures/trips/internal/profile"
	"github.com/central-adventures/trips/internal/storage"
	"github.com/danielgtaylor/huma/v2"
	"github.com/rs/zerolog/log"
)

const pictureField = "profilePicture"

type ProfileHandler struct {
	editor  *profile.Editor
	storage storage.Provider
}

func NewProfileHandler(editor *profile.Editor, provider storage.Provider) *ProfileHandler {
	return &ProfileHandler{editor: editor, storage: provider}
}

type ProfileResponse struct {
	Body *profile.Prefill
}

func (h *ProfileHandler) HandleGetProfile(ctx context.Context, _ *struct{}) (*ProfileResponse, error) {
	store, err := clientStorage(ctx, h.storage)
	if err != nil {
		return nil, err
	}

	prefill, err := h.editor.Load(ctx, store)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load profile")
		return nil, huma.Error500InternalServerError("Failed to load profile")
	}
	return &ProfileResponse{Body: prefill}, nil
}

type UpdateProfileRequest struct {
	Body profile.Form
}

func (h *ProfileHandler) HandleUpdateProfile(ctx context.Context, input *UpdateProfileRequest) (*NoticeResponse, error) {
	store, err := clientStorage(ctx, h.storage)
	if err != nil {
		return nil, err
	}

	notice, err := h.editor.Save(ctx, store, input.Body)
	if err != nil {
		log.Error().Err(err).Msg("Failed to save profile")
		return nil, huma.Error500InternalServerError("Failed to save profile")
	}
	return &NoticeResponse{Status: http.StatusOK, Body: notice}, nil
}

type pictureResponse struct {
	Preview string `json:"preview,omitempty"`
	Error   string `json:"error,omitempty"`
}

// HandlePicture turns a multipart upload into the preview markup shown in the
// image preview element. Nothing is stored until the form is submitted.
func (h *ProfileHandler) HandlePicture(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, profile.MaxPictureBytes+1<<20)

	file, header, err := r.FormFile(pictureField)
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeJSON(w, http.StatusRequestEntityTooLarge, pictureResponse{Error: "Image too large. Maximum size is 2MB."})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusBadRequest, pictureResponse{Error: "No file uploaded."})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, profile.MaxPictureBytes+1))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, pictureResponse{Error: "No file uploaded."})
		return
	}

	preview, err := profile.PreviewPicture(header.Header.Get("Content-Type"), data)
	switch {
	case errors.Is(err, profile.ErrPictureTooLarge):
		writeJSON(w, http.StatusRequestEntityTooLarge, pictureResponse{Error: "Image too large. Maximum size is 2MB."})
		return
	case errors.Is(err, profile.ErrNotAnImage):
		writeJSON(w, http.StatusUnsupportedMediaType, pictureResponse{Error: "Invalid file type. Please upload an image."})
		return
	case err != nil:
		writeJSON(w, http.StatusInternalServerError, pictureResponse{Error: "Failed to read image."})
		return
	}

	if clientID, ok := auth.ClientID(r.Context()); ok {
		log.Debug().Str("client_id", clientID).Int("bytes", len(data)).Msg("Profile picture previewed")
	}
	writeJSON(w, http.StatusOK, pictureResponse{Preview: preview})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("Failed to write response")
	}
}
