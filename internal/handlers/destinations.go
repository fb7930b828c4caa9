package handlers

import (
	"context"

	"github.com/central-adventures/trips/internal/destinations"
	"github.com/central-adventures/trips/internal/models"
	"github.com/danielgtaylor/huma/v2"
)

type DestinationsHandler struct {
	catalog *destinations.Catalog
}

func NewDestinationsHandler(catalog *destinations.Catalog) *DestinationsHandler {
	return &DestinationsHandler{catalog: catalog}
}

type ListDestinationsRequest struct {
	Status string `query:"status" enum:"upcoming,success,cancelled,all" doc:"Filter by trip status"`
}

type ListDestinationsResponse struct {
	Body struct {
		Destinations []models.Destination `json:"destinations"`
	}
}

func (h *DestinationsHandler) HandleList(_ context.Context, input *ListDestinationsRequest) (*ListDestinationsResponse, error) {
	res := &ListDestinationsResponse{}
	res.Body.Destinations = h.catalog.List(input.Status)
	return res, nil
}

type DestinationRequest struct {
	ID string `path:"id" doc:"Value of the card's data-destination attribute"`
}

type DestinationResponse struct {
	Body *destinations.Modal
}

// HandleGet returns the modal as it looks once the card was clicked.
func (h *DestinationsHandler) HandleGet(_ context.Context, input *DestinationRequest) (*DestinationResponse, error) {
	modal := destinations.NewModal(h.catalog)
	if !modal.OpenCard(input.ID) {
		return nil, huma.Error404NotFound("Destination not found")
	}
	return &DestinationResponse{Body: modal}, nil
}
