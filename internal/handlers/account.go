package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/central-adventures/trips/internal/auth"
	"github.com/central-adventures/trips/internal/models"
	"github.com/central-adventures/trips/internal/storage"
	"github.com/danielgtaylor/huma/v2"
	"github.com/rs/zerolog/log"
)

type AccountHandler struct {
	simulator *auth.Simulator
	storage   storage.Provider
}

func NewAccountHandler(simulator *auth.Simulator, provider storage.Provider) *AccountHandler {
	return &AccountHandler{simulator: simulator, storage: provider}
}

type NoticeResponse struct {
	Status int
	Body   models.Notice
}

type LoginRequest struct {
	Body struct {
		Email    string `json:"loginEmail" required:"false" doc:"Submitted email"`
		Password string `json:"loginPassword" required:"false" doc:"Submitted plaintext password"`
	}
}

func (h *AccountHandler) HandleLogin(ctx context.Context, input *LoginRequest) (*NoticeResponse, error) {
	store, err := clientStorage(ctx, h.storage)
	if err != nil {
		return nil, err
	}

	notice, err := h.simulator.Login(ctx, store, input.Body.Email, input.Body.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		return &NoticeResponse{Status: http.StatusUnauthorized, Body: notice}, nil
	}
	if err != nil {
		log.Error().Err(err).Msg("Login failed")
		return nil, huma.Error500InternalServerError("Failed to log in")
	}

	return &NoticeResponse{Status: http.StatusOK, Body: notice}, nil
}

type SignupRequest struct {
	Body auth.SignupForm
}

func (h *AccountHandler) HandleSignup(ctx context.Context, input *SignupRequest) (*NoticeResponse, error) {
	store, err := clientStorage(ctx, h.storage)
	if err != nil {
		return nil, err
	}

	notice, err := h.simulator.Signup(ctx, store, input.Body)
	if errors.Is(err, auth.ErrPasswordMismatch) {
		return &NoticeResponse{Status: http.StatusBadRequest, Body: notice}, nil
	}
	if err != nil {
		log.Error().Err(err).Msg("Signup failed")
		return nil, huma.Error500InternalServerError("Failed to create account")
	}

	return &NoticeResponse{Status: http.StatusCreated, Body: notice}, nil
}

func (h *AccountHandler) HandleLogout(ctx context.Context, _ *struct{}) (*NoticeResponse, error) {
	store, err := clientStorage(ctx, h.storage)
	if err != nil {
		return nil, err
	}

	notice, err := h.simulator.Logout(ctx, store)
	if err != nil {
		log.Error().Err(err).Msg("Logout failed")
		return nil, huma.Error500InternalServerError("Failed to log out")
	}
	return &NoticeResponse{Status: http.StatusOK, Body: notice}, nil
}

type SessionResponse struct {
	Body struct {
		LoggedIn   bool   `json:"loggedIn"`
		UserAvatar string `json:"userAvatar" doc:"Profile picture markup for the userAvatar element"`
	}
}

func (h *AccountHandler) HandleSession(ctx context.Context, _ *struct{}) (*SessionResponse, error) {
	store, err := clientStorage(ctx, h.storage)
	if err != nil {
		return nil, err
	}

	loggedIn, err := auth.LoggedIn(ctx, store)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to read session")
	}
	avatar, err := auth.Avatar(ctx, store)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to read user record")
	}

	res := &SessionResponse{}
	res.Body.LoggedIn = loggedIn
	res.Body.UserAvatar = avatar
	return res, nil
}

type PasswordMatchRequest struct {
	Body struct {
		Password        string `json:"password" required:"false"`
		ConfirmPassword string `json:"confirmPassword" required:"false"`
	}
}

type PasswordMatchResponse struct {
	Body auth.MatchIndicator
}

func (h *AccountHandler) HandlePasswordMatch(_ context.Context, input *PasswordMatchRequest) (*PasswordMatchResponse, error) {
	return &PasswordMatchResponse{Body: auth.PasswordMatch(input.Body.Password, input.Body.ConfirmPassword)}, nil
}
