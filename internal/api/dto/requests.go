package dto

// RecipientRequest is the body of the ack and read endpoints.
type RecipientRequest struct {
	Recipient string `json:"recipient" validate:"required"`
}

// PresenceRequest is the body of the heartbeat, connect and disconnect endpoints.
type PresenceRequest struct {
	User string `json:"user" validate:"required"`
}

type PresenceResponse struct {
	User   string `json:"user"`
	Online bool   `json:"online"`
}

type OnlineCountResponse struct {
	Online int64 `json:"online"`
}
