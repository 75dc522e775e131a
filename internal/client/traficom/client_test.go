package traficom

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citypermits/permits-api/internal/logger"
)

func init() {
	logger.InitLogger("test")
}

func TestIsLowEmission(t *testing.T) {
	tests := []struct {
		name    string
		vehicle vehicleResponse
		want    bool
	}{
		{
			name:    "electric qualifies outright",
			vehicle: vehicleResponse{PowerType: "Electric"},
			want:    true,
		},
		{
			name:    "hydrogen qualifies outright",
			vehicle: vehicleResponse{PowerType: "hydrogen", EuroClass: 3},
			want:    true,
		},
		{
			name:    "euro 6 wltp under limit",
			vehicle: vehicleResponse{PowerType: "petrol", EuroClass: 6, EmissionType: "WLTP", Emission: 95},
			want:    true,
		},
		{
			name:    "euro 6 wltp at limit",
			vehicle: vehicleResponse{PowerType: "petrol", EuroClass: 6, EmissionType: "WLTP", Emission: 100},
			want:    true,
		},
		{
			name:    "euro 6 wltp over limit",
			vehicle: vehicleResponse{PowerType: "petrol", EuroClass: 6, EmissionType: "WLTP", Emission: 101},
			want:    false,
		},
		{
			name:    "euro 5 does not qualify",
			vehicle: vehicleResponse{PowerType: "petrol", EuroClass: 5, EmissionType: "WLTP", Emission: 80},
			want:    false,
		},
		{
			name:    "nedc measurement does not qualify",
			vehicle: vehicleResponse{PowerType: "petrol", EuroClass: 6, EmissionType: "NEDC", Emission: 80},
			want:    false,
		},
		{
			name:    "missing emission value does not qualify",
			vehicle: vehicleResponse{PowerType: "petrol", EuroClass: 6, EmissionType: "WLTP"},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isLowEmission(tt.vehicle))
		})
	}
}

func TestHoldsVehicle(t *testing.T) {
	holders := []string{"010190-123A", "020285-456B"}

	assert.True(t, holdsVehicle(holders, "010190-123A"))
	assert.True(t, holdsVehicle(holders, "010190-123a"))
	assert.False(t, holdsVehicle(holders, "030375-789C"))
	assert.False(t, holdsVehicle(nil, "010190-123A"))
}

func TestGetVehicle(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/vehicles/ABC-123", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-API-Key"))
		_ = json.NewEncoder(w).Encode(vehicleResponse{
			RegistrationNumber: "ABC-123",
			Manufacturer:       "Skoda",
			Model:              "Enyaq",
			PowerType:          "electric",
			HolderNationalIDs:  []string{"010190-123A"},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	vehicle, err := client.GetVehicle(context.Background(), "ABC-123", "010190-123A")
	require.NoError(t, err)

	assert.Equal(t, "ABC-123", vehicle.RegistrationNumber)
	assert.True(t, vehicle.IsLowEmission)
}

func TestGetVehicle_NotHolder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(vehicleResponse{
			RegistrationNumber: "ABC-123",
			HolderNationalIDs:  []string{"020285-456B"},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	_, err := client.GetVehicle(context.Background(), "ABC-123", "010190-123A")
	assert.ErrorIs(t, err, ErrNotVehicleHolder)
}

func TestGetVehicle_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	_, err := client.GetVehicle(context.Background(), "ABC-123", "010190-123A")
	assert.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestHasActiveDrivingLicence(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		payload drivingLicenceResponse
		want    bool
	}{
		{
			name:    "active licence with categories",
			status:  http.StatusOK,
			payload: drivingLicenceResponse{Active: true, Categories: []string{"B"}},
			want:    true,
		},
		{
			name:    "inactive licence",
			status:  http.StatusOK,
			payload: drivingLicenceResponse{Active: false, Categories: []string{"B"}},
			want:    false,
		},
		{
			name:    "active licence without categories",
			status:  http.StatusOK,
			payload: drivingLicenceResponse{Active: true},
			want:    false,
		},
		{
			name:   "no licence on record",
			status: http.StatusNotFound,
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "010190-123A", r.URL.Query().Get("national_id"))
				if tt.status != http.StatusOK {
					w.WriteHeader(tt.status)
					return
				}
				_ = json.NewEncoder(w).Encode(tt.payload)
			}))
			defer server.Close()

			client := NewClient(server.URL, "test-key")
			active, err := client.HasActiveDrivingLicence(context.Background(), "010190-123A")
			require.NoError(t, err)
			assert.Equal(t, tt.want, active)
		})
	}
}
