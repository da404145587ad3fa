package dto

import (
	"time"

	"github.com/aliskhannn/delivery-orchestrator/internal/model"
)

// CreateJobRequest is the body of POST /api/jobs. id, traceId and createdAt are filled when absent.
type CreateJobRequest struct {
	ID        string        `json:"id"`
	TraceID   string        `json:"traceId"`
	Type      model.Type    `json:"type" validate:"required"`
	Target    JobTarget     `json:"target"`
	Payload   model.Payload `json:"payload"`
	Delivery  JobDelivery   `json:"delivery"`
	CreatedAt time.Time     `json:"createdAt"` // event time; TTL is measured from it
}

type JobTarget struct {
	User string `json:"user" validate:"required"`
}

type JobDelivery struct {
	TTLSeconds int    `json:"ttlSeconds" validate:"gte=0"`
	Priority   string `json:"priority" validate:"omitempty,oneof=low normal high"`
}

// CreateJobResponse identifies an accepted job.
type CreateJobResponse struct {
	ID      string `json:"id"`
	TraceID string `json:"traceId"`
}
