package handlers

import (
	"context"
	"net/http"

	"github.com/central-adventures/trips/internal/locations"
)

type LocationsHandler struct {
	dataset *locations.Dataset
}

func NewLocationsHandler(dataset *locations.Dataset) *LocationsHandler {
	return &LocationsHandler{dataset: dataset}
}

type CountiesResponse struct {
	Body struct {
		Counties []string `json:"counties"`
	}
}

func (h *LocationsHandler) HandleCounties(_ context.Context, _ *struct{}) (*CountiesResponse, error) {
	res := &CountiesResponse{}
	res.Body.Counties = h.dataset.SortedRegions()
	return res, nil
}

type ConstituenciesRequest struct {
	County string `query:"county" doc:"County name"`
}

type ConstituenciesResponse struct {
	Status int
	Body   struct {
		Constituencies []string `json:"constituencies"`
		Error          string   `json:"error,omitempty"`
	}
}

func (h *LocationsHandler) HandleConstituencies(_ context.Context, input *ConstituenciesRequest) (*ConstituenciesResponse, error) {
	res := &ConstituenciesResponse{Status: http.StatusOK}

	subs, ok := h.dataset.SubRegions(input.County)
	if input.County == "" || !ok {
		res.Status = http.StatusBadRequest
		res.Body.Constituencies = []string{}
		res.Body.Error = "County not found"
		return res, nil
	}

	res.Body.Constituencies = append([]string{}, subs...)
	return res, nil
}

type CascadeRequest struct {
	County      string `query:"county" doc:"Selected county, empty for none"`
	RegionID    string `query:"regionId" default:"county" doc:"Element id of the county selector"`
	SubRegionID string `query:"subRegionId" default:"constituency" doc:"Element id of the constituency selector"`
}

type CascadeResponse struct {
	Body *locations.Cascade
}

// HandleCascade returns both selectors after the county changed.
func (h *LocationsHandler) HandleCascade(_ context.Context, input *CascadeRequest) (*CascadeResponse, error) {
	cascade := locations.NewCascade(h.dataset, input.RegionID, input.SubRegionID)
	cascade.SelectRegion(input.County)
	return &CascadeResponse{Body: cascade}, nil
}
