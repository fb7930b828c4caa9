package handlers

import (
	"context"
	"net/http"

	"github.com/central-adventures/trips/internal/auth"
	"github.com/central-adventures/trips/internal/contact"
	"github.com/central-adventures/trips/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type ContactHandler struct {
	db        *gorm.DB
	submitter *contact.Submitter
	backend   string
}

func NewContactHandler(db *gorm.DB, submitter *contact.Submitter, backend string) *ContactHandler {
	return &ContactHandler{db: db, submitter: submitter, backend: backend}
}

type ContactRequest struct {
	Body contact.Fields
}

type ContactResponse struct {
	Status int
	Body   *contact.FormState
}

func (h *ContactHandler) HandleContact(ctx context.Context, input *ContactRequest) (*ContactResponse, error) {
	form := contact.NewForm(input.Body)
	err := h.submitter.Submit(ctx, form)

	clientID, _ := auth.ClientID(ctx)
	submission := models.ContactSubmission{
		ClientID:       clientID,
		Backend:        h.backend,
		Delivered:      err == nil,
		ContactMessage: input.Body.ContactMessage(),
	}
	if dbErr := h.db.WithContext(ctx).Create(&submission).Error; dbErr != nil {
		log.Error().Err(dbErr).Msg("Failed to record contact submission")
	}

	if err != nil {
		return &ContactResponse{Status: http.StatusBadGateway, Body: form}, nil
	}
	return &ContactResponse{Status: http.StatusOK, Body: form}, nil
}
