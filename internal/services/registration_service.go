package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/benmeehan/journal-client/internal/models"
	http_utils "github.com/benmeehan/journal-client/pkg/httpUtils"
	"github.com/benmeehan/journal-client/pkg/identity"
)

// RegistrationService registers this device with the central journal service.
type RegistrationService struct {
	// Configuration fields
	baseURL      string
	registerPath string

	// Dependencies for reading the device identity and talking HTTP
	deviceInfo identity.DeviceInfoInterface
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewRegistrationService initializes and returns a new RegistrationService instance.
func NewRegistrationService(
	baseURL string,
	registerPath string,
	deviceInfo identity.DeviceInfoInterface,
	httpClient *http.Client,
	logger zerolog.Logger,
) *RegistrationService {
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &RegistrationService{
		baseURL:      baseURL,
		registerPath: registerPath,
		deviceInfo:   deviceInfo,
		httpClient:   httpClient,
		logger:       logger,
	}
}

// Register loads the device identifier and posts a single registration request
// for organisationID. A non-2xx answer is returned as *models.RegistrationError.
func (rs *RegistrationService) Register(ctx context.Context, organisationID, name, organisationPassword string) (*models.RegistrationSuccess, error) {
	if err := rs.deviceInfo.LoadDeviceInfo(); err != nil {
		return nil, err
	}

	payload := models.RegistrationRequest{
		Name:                 name,
		OrganisationPassword: organisationPassword,
		DeviceIdentifier:     rs.deviceInfo.GetDeviceIdentifier(),
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize registration payload: %w", err)
	}

	segments := append(strings.Split(rs.registerPath, "/"), organisationID)
	endpoint, err := http_utils.BuildEndpoint(rs.baseURL, segments...)
	if err != nil {
		return nil, err
	}

	rs.logger.Debug().Str("endpoint", endpoint).Msg("Sending registration request")

	resp, err := http_utils.PostJSON(ctx, rs.httpClient, endpoint, payloadBytes)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if http_utils.IsSuccess(resp.StatusCode) {
		var success models.RegistrationSuccess
		if err := json.NewDecoder(resp.Body).Decode(&success); err != nil {
			return nil, fmt.Errorf("failed to decode registration response: %w", err)
		}

		rs.logger.Info().Int("status", resp.StatusCode).Msg("Device registered successfully")
		return &success, nil
	}

	body, err := http_utils.ReadBody(resp)
	if err != nil {
		return nil, err
	}

	apiErr := &models.RegistrationError{StatusCode: resp.StatusCode}
	if err := json.Unmarshal([]byte(body), apiErr); err != nil {
		return nil, fmt.Errorf("failed to decode registration error response (status %d): %w", resp.StatusCode, err)
	}

	rs.logger.Debug().Int("status", resp.StatusCode).Msg("Registration rejected")
	return nil, apiErr
}
