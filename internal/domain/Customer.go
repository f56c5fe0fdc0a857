package domain

import "time"

type CustomerStatus string

const (
	CustomerStatusActive   CustomerStatus = "ACTIVE"
	CustomerStatusArchived CustomerStatus = "ARCHIVED"
)

type Customer struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Email      *string        `json:"email,omitempty"`
	HourlyRate *float64       `json:"hourly_rate,omitempty"`
	Status     CustomerStatus `json:"status"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

type CreateCustomerRequest struct {
	Name       string   `json:"name"`
	Email      *string  `json:"email,omitempty"`
	HourlyRate *float64 `json:"hourly_rate,omitempty"`
}
