package handlers

import (
	"context"
	"errors"

	"github.com/central-adventures/trips/internal/auth"
	"github.com/central-adventures/trips/internal/chrome"
	"github.com/danielgtaylor/huma/v2"
)

type ChromeHandler struct {
	registry *chrome.Registry
}

func NewChromeHandler(registry *chrome.Registry) *ChromeHandler {
	return &ChromeHandler{registry: registry}
}

// do runs fn on the requesting client's chrome state.
func (h *ChromeHandler) do(ctx context.Context, fn func(*chrome.State) error) error {
	clientID, ok := auth.ClientID(ctx)
	if !ok {
		return huma.Error401Unauthorized("Unknown client")
	}

	err := h.registry.Do(clientID, fn)
	switch {
	case errors.Is(err, chrome.ErrUnknownMenu):
		return huma.Error404NotFound("Menu not found")
	case errors.Is(err, chrome.ErrUnknownField):
		return huma.Error404NotFound("Password field not found")
	}
	return err
}

type MenuRequest struct {
	Menu string `path:"menu" enum:"user,profile"`
	Page string `query:"page" doc:"Id of the page load the event belongs to"`
}

type MenuClickRequest struct {
	Menu string `path:"menu" enum:"user,profile"`
	Page string `query:"page" doc:"Id of the page load the event belongs to"`
	Body struct {
		Target string `json:"target" required:"false" doc:"Element id that received the click"`
		Item   bool   `json:"item,omitempty" doc:"Click landed on a menu entry"`
	}
}

type MenuResponse struct {
	Body chrome.Dropdown
}

func (h *ChromeHandler) HandleMenuToggle(ctx context.Context, input *MenuRequest) (*MenuResponse, error) {
	res := &MenuResponse{}
	err := h.do(ctx, func(s *chrome.State) error {
		s.BeginPage(input.Page)
		d, err := s.Menu(input.Menu)
		if err != nil {
			return err
		}
		d.Toggle()
		res.Body = *d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (h *ChromeHandler) HandleMenuClick(ctx context.Context, input *MenuClickRequest) (*MenuResponse, error) {
	res := &MenuResponse{}
	err := h.do(ctx, func(s *chrome.State) error {
		s.BeginPage(input.Page)
		d, err := s.Menu(input.Menu)
		if err != nil {
			return err
		}
		if input.Body.Item {
			d.ItemClicked()
		} else {
			d.Click(input.Body.Target)
		}
		res.Body = *d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

type PasswordToggleRequest struct {
	Field string `path:"field"`
	Page  string `query:"page" doc:"Id of the page load the event belongs to"`
}

type PasswordToggleResponse struct {
	Body chrome.PasswordToggle
}

func (h *ChromeHandler) HandlePasswordToggle(ctx context.Context, input *PasswordToggleRequest) (*PasswordToggleResponse, error) {
	res := &PasswordToggleResponse{}
	err := h.do(ctx, func(s *chrome.State) error {
		s.BeginPage(input.Page)
		p, err := s.Password(input.Field)
		if err != nil {
			return err
		}
		p.Toggle()
		res.Body = *p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

type LoaderRequest struct {
	Page   string `query:"page" required:"true" doc:"Id of the page load, a new id starts a new page"`
	Loaded bool   `query:"loaded" doc:"Window load event fired"`
}

type LoaderResponse struct {
	Body struct {
		ID      string   `json:"id"`
		Classes []string `json:"classes"`
	}
}

// HandleLoader reports the loader state of a page load. Polls without the
// load flag count as DOM ready.
func (h *ChromeHandler) HandleLoader(ctx context.Context, input *LoaderRequest) (*LoaderResponse, error) {
	res := &LoaderResponse{}
	res.Body.ID = chrome.LoaderID
	err := h.do(ctx, func(s *chrome.State) error {
		s.BeginPage(input.Page)
		if input.Loaded {
			s.Loader.Loaded()
		} else {
			s.Loader.Ready()
		}
		res.Body.Classes = s.Loader.Classes()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
