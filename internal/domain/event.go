package domain

import "time"

type Event struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	OccursAt    time.Time `json:"date"`
	Venue       string    `json:"venue"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"image_url"`
	OwnerID     string    `json:"created_by"`
}

type CreateEventInput struct {
	Name        string
	Description string
	Category    string
	OccursAt    time.Time
	Venue       string
	Price       float64
	ImageURL    string
}
