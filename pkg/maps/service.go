package maps

import (
	"context"
	"errors"
	"fmt"

	gmaps "googlemaps.github.io/maps"
)

// ErrNoResults is returned when geocoding finds nothing
var ErrNoResults = errors.New("no geocoding results")

// ErrNoRoute is returned when no route exists between the points
var ErrNoRoute = errors.New("no route found")

// Geocoded is a resolved address
type Geocoded struct {
	Latitude         float64
	Longitude        float64
	FormattedAddress string
	PlaceID          string
}

// RouteLeg is one segment of a computed route
type RouteLeg struct {
	DistanceMeters  int
	DurationMinutes int
}

// Directions is a computed route between two points
type Directions struct {
	DistanceMeters  int
	DurationMinutes int
	Polyline        string
	Legs            []RouteLeg
}

// OptimizedRoute is a multi-stop route with the visiting order
// rearranged to minimize travel.
type OptimizedRoute struct {
	TotalDistanceKm      float64
	TotalDurationMinutes int
	Order                []int
	Legs                 []RouteLeg
	Polyline             string
}

// Service wraps the Google Maps API for address resolution
type Service struct {
	client *gmaps.Client
}

// NewService creates a new maps service. Returns nil when no API key
// is configured; callers treat a nil service as geocoding disabled.
func NewService(apiKey string) (*Service, error) {
	if apiKey == "" {
		return nil, nil
	}

	client, err := gmaps.NewClient(gmaps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}

	return &Service{client: client}, nil
}

// Geocode resolves a free-form address to coordinates, biased to France
func (s *Service) Geocode(ctx context.Context, address string) (*Geocoded, error) {
	results, err := s.client.Geocode(ctx, &gmaps.GeocodingRequest{
		Address: address,
		Region:  "fr",
	})
	if err != nil {
		return nil, fmt.Errorf("geocoding failed: %w", err)
	}
	if len(results) == 0 {
		return nil, ErrNoResults
	}

	r := results[0]
	return &Geocoded{
		Latitude:         r.Geometry.Location.Lat,
		Longitude:        r.Geometry.Location.Lng,
		FormattedAddress: r.FormattedAddress,
		PlaceID:          r.PlaceID,
	}, nil
}

// ReverseGeocode resolves coordinates to the closest known address
func (s *Service) ReverseGeocode(ctx context.Context, lat, lng float64) (string, error) {
	results, err := s.client.ReverseGeocode(ctx, &gmaps.GeocodingRequest{
		LatLng: &gmaps.LatLng{Lat: lat, Lng: lng},
	})
	if err != nil {
		return "", fmt.Errorf("reverse geocoding failed: %w", err)
	}
	if len(results) == 0 {
		return "", ErrNoResults
	}
	return results[0].FormattedAddress, nil
}

// GetDirections computes a driving route from origin to destination
// through the given waypoints, in order.
func (s *Service) GetDirections(ctx context.Context, origin, destination string, waypoints []string) (*Directions, error) {
	routes, _, err := s.client.Directions(ctx, &gmaps.DirectionsRequest{
		Origin:      origin,
		Destination: destination,
		Waypoints:   waypoints,
		Mode:        gmaps.TravelModeDriving,
	})
	if err != nil {
		return nil, fmt.Errorf("directions failed: %w", err)
	}
	if len(routes) == 0 {
		return nil, ErrNoRoute
	}

	route := routes[0]
	out := &Directions{Polyline: route.OverviewPolyline.Points}
	for _, leg := range route.Legs {
		minutes := int(leg.Duration.Minutes())
		out.DistanceMeters += leg.Distance.Meters
		out.DurationMinutes += minutes
		out.Legs = append(out.Legs, RouteLeg{
			DistanceMeters:  leg.Distance.Meters,
			DurationMinutes: minutes,
		})
	}
	return out, nil
}

// GetOptimizedRoute computes the best visiting order through the
// given locations, starting at the first and ending at the last.
// Order indexes the intermediate locations as passed in.
func (s *Service) GetOptimizedRoute(ctx context.Context, locations []string) (*OptimizedRoute, error) {
	if len(locations) < 2 {
		return nil, fmt.Errorf("at least two locations are required")
	}

	routes, _, err := s.client.Directions(ctx, &gmaps.DirectionsRequest{
		Origin:      locations[0],
		Destination: locations[len(locations)-1],
		Waypoints:   locations[1 : len(locations)-1],
		Optimize:    true,
		Mode:        gmaps.TravelModeDriving,
	})
	if err != nil {
		return nil, fmt.Errorf("route optimization failed: %w", err)
	}
	if len(routes) == 0 {
		return nil, ErrNoRoute
	}

	route := routes[0]
	out := &OptimizedRoute{
		Order:    route.WaypointOrder,
		Polyline: route.OverviewPolyline.Points,
	}
	var meters int
	for _, leg := range route.Legs {
		minutes := int(leg.Duration.Minutes())
		meters += leg.Distance.Meters
		out.TotalDurationMinutes += minutes
		out.Legs = append(out.Legs, RouteLeg{
			DistanceMeters:  leg.Distance.Meters,
			DurationMinutes: minutes,
		})
	}
	out.TotalDistanceKm = float64(meters) / 1000
	return out, nil
}
