package service

import (
	"context"
)

// DonationPostedEvent represents a donation whose matching receivers should
// be found and notified by the match worker.
type DonationPostedEvent struct {
	RequestID  string  `json:"request_id,omitempty"` // For distributed tracing
	DonationID string  `json:"donation_id"`
	DonorID    string  `json:"donor_id"`
	Title      string  `json:"title"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	IsUrgent   bool    `json:"is_urgent"`
	Limit      int     `json:"limit,omitempty"` // Maximum receivers to notify; zero means the default.
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishDonationPosted publishes a donation-posted event for async
	// match fan-out.
	PublishDonationPosted(ctx context.Context, event *DonationPostedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
