// Package webpush sends wake-up messages through the Web Push protocol with VAPID authentication.
package webpush

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	wp "github.com/SherClockHolmes/webpush-go"
	"golang.org/x/time/rate"

	"github.com/aliskhannn/delivery-orchestrator/internal/model"
)

const (
	maxErrorBody = 512

	vapidPublicKeyLen  = 65 // uncompressed P-256 point
	vapidPrivateKeyLen = 32
)

// ErrInvalidVAPIDKey is returned by New when a VAPID key is missing or malformed.
var ErrInvalidVAPIDKey = errors.New("invalid VAPID key")

// Config holds VAPID credentials and client limits.
type Config struct {
	VAPIDPublicKey  string
	VAPIDPrivateKey string
	Subscriber      string        // mailto: address or https URL of the sender
	Timeout         time.Duration // per request
	RatePerSecond   float64       // zero disables rate limiting
	Burst           int
}

// Transport is a rate-limited Web Push client, safe for concurrent use.
type Transport struct {
	client  *http.Client
	limiter *rate.Limiter
	cfg     Config
}

// New checks the VAPID credentials and builds a Transport.
func New(cfg Config) (*Transport, error) {
	if err := checkVAPIDKey("public", cfg.VAPIDPublicKey, vapidPublicKeyLen); err != nil {
		return nil, err
	}
	if err := checkVAPIDKey("private", cfg.VAPIDPrivateKey, vapidPrivateKeyLen); err != nil {
		return nil, err
	}

	limit := rate.Inf
	if cfg.RatePerSecond > 0 {
		limit = rate.Limit(cfg.RatePerSecond)
	}

	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	return &Transport{
		client:  &http.Client{Timeout: cfg.Timeout},
		limiter: rate.NewLimiter(limit, burst),
		cfg:     cfg,
	}, nil
}

func checkVAPIDKey(name, key string, size int) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("%w: %s key is empty", ErrInvalidVAPIDKey, name)
	}

	for _, enc := range []*base64.Encoding{
		base64.RawURLEncoding, base64.URLEncoding, base64.RawStdEncoding, base64.StdEncoding,
	} {
		if raw, err := enc.DecodeString(key); err == nil {
			if len(raw) != size {
				return fmt.Errorf("%w: %s key has %d bytes, want %d", ErrInvalidVAPIDKey, name, len(raw), size)
			}
			return nil
		}
	}

	return fmt.Errorf("%w: %s key is not base64", ErrInvalidVAPIDKey, name)
}

// Send encrypts payload for sub and posts it to the subscription endpoint.
//
// Failures with an HTTP response or a network failure are returned as *model.PushError.
// Any other error means the subscription keys or payload could not be used.
func (t *Transport) Send(ctx context.Context, sub model.PushSubscription, payload []byte, opts model.PushOptions) error {
	if err := t.limiter.Wait(ctx); err != nil {
		return &model.PushError{Err: fmt.Errorf("rate limiter: %w", err)}
	}

	resp, err := wp.SendNotificationWithContext(ctx, payload, &wp.Subscription{
		Endpoint: sub.Endpoint,
		Keys: wp.Keys{
			Auth:   sub.Auth,
			P256dh: sub.P256dh,
		},
	}, &wp.Options{
		HTTPClient:      t.client,
		Subscriber:      t.cfg.Subscriber,
		VAPIDPublicKey:  t.cfg.VAPIDPublicKey,
		VAPIDPrivateKey: t.cfg.VAPIDPrivateKey,
		TTL:             int(opts.TTL / time.Second),
		Urgency:         urgency(opts.Urgency),
		Topic:           opts.Topic,
	})
	if err != nil {
		var uerr *url.Error
		if errors.As(err, &uerr) || ctx.Err() != nil {
			return &model.PushError{Err: err}
		}

		return fmt.Errorf("prepare push message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	reason := strings.TrimSpace(string(body))
	if reason == "" {
		reason = http.StatusText(resp.StatusCode)
	}

	return &model.PushError{StatusCode: resp.StatusCode, Err: errors.New(reason)}
}

func urgency(p model.Priority) wp.Urgency {
	switch p {
	case model.PriorityHigh:
		return wp.UrgencyHigh
	case model.PriorityLow:
		return wp.UrgencyLow
	default:
		return wp.UrgencyNormal
	}
}
