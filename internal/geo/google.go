package geo

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"googlemaps.github.io/maps"
)

// GoogleProvider geocodes through the Google Maps Geocoding API.
type GoogleProvider struct {
	client *maps.Client
}

// NewGoogleProvider creates a provider for apiKey. Extra options (base URL,
// HTTP client) are passed to the underlying maps client.
func NewGoogleProvider(apiKey string, opts ...maps.ClientOption) (*GoogleProvider, error) {
	opts = append([]maps.ClientOption{maps.WithAPIKey(apiKey), maps.WithHTTPClient(http.DefaultClient)}, opts...)
	client, err := maps.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("create maps client: %w", err)
	}
	return &GoogleProvider{client: client}, nil
}

func (p *GoogleProvider) Forward(ctx context.Context, address string) (Result, error) {
	results, err := p.client.Geocode(ctx, &maps.GeocodingRequest{Address: address})
	if err != nil {
		return Result{}, noMatchOr(err)
	}
	if len(results) == 0 {
		return Result{}, ErrNoMatch
	}

	first := results[0]
	res := fromGoogle(first)
	res.Lat = first.Geometry.Location.Lat
	res.Lng = first.Geometry.Location.Lng
	return res, nil
}

func (p *GoogleProvider) Reverse(ctx context.Context, lat, lng float64) (Result, error) {
	results, err := p.client.ReverseGeocode(ctx, &maps.GeocodingRequest{
		LatLng: &maps.LatLng{Lat: lat, Lng: lng},
	})
	if err != nil {
		return Result{}, noMatchOr(err)
	}
	if len(results) == 0 {
		return Result{}, ErrNoMatch
	}

	res := fromGoogle(results[0])
	res.Lat = lat
	res.Lng = lng
	return res, nil
}

// fromGoogle takes the city from the "locality" component and the country
// from the "country" component.
func fromGoogle(r maps.GeocodingResult) Result {
	res := Result{FormattedAddress: r.FormattedAddress}
	for _, comp := range r.AddressComponents {
		for _, t := range comp.Types {
			switch t {
			case "locality":
				res.City = comp.LongName
			case "country":
				res.Country = comp.LongName
			}
		}
	}
	return res
}

func noMatchOr(err error) error {
	if strings.Contains(err.Error(), "ZERO_RESULTS") {
		return ErrNoMatch
	}
	return err
}
