package models_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/benmeehan/journal-client/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrationRequest_JSONFieldNames(t *testing.T) {
	req := models.RegistrationRequest{
		Name:                 "kiosk-1",
		OrganisationPassword: "secret",
		DeviceIdentifier:     "abc",
	}

	data, err := json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"kiosk-1","organisationpassword":"secret","deviceidentifier":"abc"}`, string(data))
}

func TestRegistrationSuccess_String(t *testing.T) {
	var resp models.RegistrationSuccess
	require.NoError(t, json.Unmarshal([]byte(`{"success":true,"token":"abc123","message":"ok"}`), &resp))

	assert.Equal(t, "success=true token=abc123 message=ok", resp.String())
	assert.Contains(t, fmt.Sprint(resp), "token=abc123")
}

func TestRegistrationError_Error(t *testing.T) {
	var apiErr models.RegistrationError
	require.NoError(t, json.Unmarshal([]byte(`{"message":"validation failed","errors":{"name":["required"]}}`), &apiErr))

	var err error = &apiErr
	assert.EqualError(t, err, "validation failed")
	assert.JSONEq(t, `{"name":["required"]}`, string(apiErr.Errors))

	wrapped := fmt.Errorf("register: %w", err)
	var target *models.RegistrationError
	assert.True(t, errors.As(wrapped, &target))
	assert.Equal(t, "validation failed", target.Message)
}
