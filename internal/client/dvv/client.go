package dvv

import (
	"context"

	"github.com/pkg/errors"

	clienthttp "github.com/citypermits/permits-api/internal/client/http"
)

// ErrPersonNotFound is returned when the population registry has no
// record for the national identity number.
var ErrPersonNotFound = errors.New("person not found in population registry")

// Person is the population registry record used to verify that a
// customer lives at an address inside a permit zone.
type Person struct {
	NationalID string `json:"national_id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Address    string `json:"address"`
	ZoneName   string `json:"zone_name"`
}

// Client fetches person data from the population registry.
type Client struct {
	http *clienthttp.Client
}

// NewClient creates a population registry client.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		http: clienthttp.NewClient(
			clienthttp.WithBaseURL(baseURL),
			clienthttp.WithDefaultHeader("X-API-Key", apiKey),
		),
	}
}

// GetPerson fetches the registry record for a national identity number.
func (c *Client) GetPerson(ctx context.Context, nationalID string) (*Person, error) {
	resp, err := c.http.Get(ctx, "/persons/"+nationalID)
	if err != nil {
		var httpErr *clienthttp.Error
		if errors.As(err, &httpErr) && httpErr.StatusCode == 404 {
			return nil, ErrPersonNotFound
		}
		return nil, errors.Wrap(err, "failed to fetch person from registry")
	}

	var person Person
	if err := c.http.ProcessJSONResponse(resp, &person); err != nil {
		return nil, errors.Wrap(err, "failed to decode person response")
	}
	return &person, nil
}
