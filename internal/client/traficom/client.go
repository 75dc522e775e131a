package traficom

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	clienthttp "github.com/citypermits/permits-api/internal/client/http"
	"github.com/citypermits/permits-api/internal/types/business"
)

// ErrVehicleNotFound is returned when the registry has no vehicle for
// the registration number.
var ErrVehicleNotFound = errors.New("vehicle not found in registry")

// ErrNotVehicleHolder is returned when the person is neither the owner
// nor a holder of the vehicle.
var ErrNotVehicleHolder = errors.New("person is not the owner or holder of the vehicle")

// Client fetches vehicle and driving licence data from the national
// transport registry.
type Client struct {
	http *clienthttp.Client
}

// NewClient creates a registry client against the given base URL.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		http: clienthttp.NewClient(
			clienthttp.WithBaseURL(baseURL),
			clienthttp.WithDefaultHeader("X-API-Key", apiKey),
		),
	}
}

type vehicleResponse struct {
	RegistrationNumber string   `json:"registration_number"`
	Manufacturer       string   `json:"manufacturer"`
	Model              string   `json:"model"`
	PowerType          string   `json:"power_type"`
	EuroClass          int      `json:"euro_class"`
	Emission           int      `json:"emission"`
	EmissionType       string   `json:"emission_type"`
	SerialNumber       string   `json:"serial_number"`
	HolderNationalIDs  []string `json:"holder_national_ids"`
}

// GetVehicle fetches a vehicle by registration number and verifies that
// the given person is its owner or holder.
func (c *Client) GetVehicle(ctx context.Context, registrationNumber, nationalID string) (*business.Vehicle, error) {
	resp, err := c.http.Get(ctx, "/vehicles/"+registrationNumber)
	if err != nil {
		var httpErr *clienthttp.Error
		if errors.As(err, &httpErr) && httpErr.StatusCode == 404 {
			return nil, ErrVehicleNotFound
		}
		return nil, errors.Wrap(err, "failed to fetch vehicle from registry")
	}

	var payload vehicleResponse
	if err := c.http.ProcessJSONResponse(resp, &payload); err != nil {
		return nil, errors.Wrap(err, "failed to decode vehicle response")
	}

	if !holdsVehicle(payload.HolderNationalIDs, nationalID) {
		return nil, ErrNotVehicleHolder
	}

	return &business.Vehicle{
		RegistrationNumber: payload.RegistrationNumber,
		Manufacturer:       payload.Manufacturer,
		Model:              payload.Model,
		PowerType:          payload.PowerType,
		EuroClass:          payload.EuroClass,
		Emission:           payload.Emission,
		EmissionType:       payload.EmissionType,
		IsLowEmission:      isLowEmission(payload),
		SerialNumber:       payload.SerialNumber,
	}, nil
}

type drivingLicenceResponse struct {
	Active     bool     `json:"active"`
	StartDate  string   `json:"start_date"`
	Categories []string `json:"categories"`
}

// HasActiveDrivingLicence reports whether the person holds an active
// driving licence.
func (c *Client) HasActiveDrivingLicence(ctx context.Context, nationalID string) (bool, error) {
	resp, err := c.http.Get(ctx, "/driving-licences", clienthttp.WithQueryParam("national_id", nationalID))
	if err != nil {
		var httpErr *clienthttp.Error
		if errors.As(err, &httpErr) && httpErr.StatusCode == 404 {
			return false, nil
		}
		return false, errors.Wrap(err, "failed to fetch driving licence from registry")
	}

	var payload drivingLicenceResponse
	if err := c.http.ProcessJSONResponse(resp, &payload); err != nil {
		return false, errors.Wrap(err, "failed to decode driving licence response")
	}
	return payload.Active && len(payload.Categories) > 0, nil
}

func holdsVehicle(holderIDs []string, nationalID string) bool {
	for _, id := range holderIDs {
		if strings.EqualFold(id, nationalID) {
			return true
		}
	}
	return false
}

// isLowEmission applies the municipal low emission criteria: full
// electric and hydrogen vehicles qualify outright, combustion vehicles
// qualify on Euro 6 with WLTP emissions at or under 100 g/km.
func isLowEmission(v vehicleResponse) bool {
	switch strings.ToLower(v.PowerType) {
	case "electric", "hydrogen":
		return true
	}
	return v.EuroClass >= 6 && strings.EqualFold(v.EmissionType, "WLTP") && v.Emission > 0 && v.Emission <= 100
}
