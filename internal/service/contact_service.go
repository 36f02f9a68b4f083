package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/coop-office-api/internal/dto"
	"github.com/noah-isme/coop-office-api/pkg/config"
	appErrors "github.com/noah-isme/coop-office-api/pkg/errors"
)

// ContactService relays contact form submissions to the WhatsApp messaging
// API. Missing relay configuration surfaces at send time, not at startup.
type ContactService struct {
	client    *http.Client
	config    config.WhatsAppConfig
	validator *validator.Validate
	logger    *zap.Logger
}

type relayResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewContactService constructs the contact service.
func NewContactService(client *http.Client, cfg config.WhatsAppConfig, validate *validator.Validate, logger *zap.Logger) *ContactService {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContactService{client: client, config: cfg, validator: validate, logger: logger}
}

// Notify formats the contact message and relays it to the configured
// receiver. The external success flag decides the outcome.
func (s *ContactService) Notify(ctx context.Context, req dto.ContactRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "all contact fields are required")
	}

	if s.config.APIURL == "" || s.config.Token == "" || s.config.ReceiverPhone == "" {
		return appErrors.Clone(appErrors.ErrConfigMissing, "messaging relay is not configured")
	}

	text := fmt.Sprintf("New contact enquiry\nName: %s\nEmail: %s\nSubject: %s\nPhone: %s\nWhatsApp: %s\nMessage: %s",
		req.Name, req.Email, req.Subject, req.PhoneNo, req.WhatsappNo, req.Message)

	endpoint, err := url.Parse(s.config.APIURL)
	if err != nil {
		return appErrors.Clone(appErrors.ErrConfigMissing, "messaging relay URL is invalid")
	}
	query := endpoint.Query()
	query.Set("receiver", s.config.ReceiverPhone)
	query.Set("msgtext", text)
	query.Set("token", s.config.Token)
	endpoint.RawQuery = query.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to build relay request")
	}

	resp, err := s.client.Do(httpReq)
	if err != nil {
		s.logger.Error("contact relay request failed", zap.Error(err))
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to reach messaging relay")
	}
	defer resp.Body.Close()

	var relay relayResponse
	if err := json.NewDecoder(resp.Body).Decode(&relay); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "unexpected relay response")
	}
	if !relay.Success {
		s.logger.Error("contact relay rejected message", zap.String("reason", relay.Message))
		return appErrors.Clone(appErrors.ErrInternal, "messaging relay rejected the message")
	}

	return nil
}
