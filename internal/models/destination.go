package models

type DestinationStatus string

const (
	DestinationUpcoming  DestinationStatus = "upcoming"
	DestinationSuccess   DestinationStatus = "success"
	DestinationCancelled DestinationStatus = "cancelled"
)

type Destination struct {
	ID           int               `json:"id"`
	Title        string            `json:"title"`
	Image        string            `json:"image"` // URL to image
	Description  string            `json:"description"`
	Location     string            `json:"location"`
	Duration     string            `json:"duration"`
	Expectations string            `json:"expectations"`
	Requirements string            `json:"requirements"`
	Price        string            `json:"price"`
	Status       DestinationStatus `json:"status"`
}
