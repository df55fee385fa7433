package services

import (
	"fmt"
	"math/rand"
)

// DeliveryArea is the fixed bounding box used as a coarse inclusion test
// for checkout eligibility. No real geocoding happens here.
type DeliveryArea struct {
	City  string
	North float64
	South float64
	East  float64
	West  float64
}

type LocationService struct {
	Area    DeliveryArea
	MinMins int
	MaxMins int
}

func NewLocationService(area DeliveryArea, minMins, maxMins int) *LocationService {
	if maxMins <= minMins {
		maxMins = minMins + 1
	}
	return &LocationService{Area: area, MinMins: minMins, MaxMins: maxMins}
}

type LocationCheck struct {
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	Address        string  `json:"address"`
	City           string  `json:"city"`
	InDeliveryArea bool    `json:"inDeliveryArea"`
	DeliveryMins   int     `json:"estimatedDeliveryMinutes"`
}

// InDeliveryArea is the bounding-box containment test.
func (s *LocationService) InDeliveryArea(lat, lng float64) bool {
	return lat >= s.Area.South && lat <= s.Area.North &&
		lng >= s.Area.West && lng <= s.Area.East
}

// DeliveryMinutes returns an estimate in [MinMins, MaxMins). A real
// implementation would derive this from distance and kitchen load.
func (s *LocationService) DeliveryMinutes() int {
	return s.MinMins + rand.Intn(s.MaxMins-s.MinMins)
}

// Check resolves the browser-reported coordinates into the delivery
// verdict the storefront renders.
func (s *LocationService) Check(lat, lng float64) *LocationCheck {
	in := s.InDeliveryArea(lat, lng)

	address := "Location not available"
	city := "Unknown"
	if in {
		// placeholder reverse geocode
		address = fmt.Sprintf("Location in %s (%.4f, %.4f)", s.Area.City, lat, lng)
		city = s.Area.City
	}

	return &LocationCheck{
		Latitude:       lat,
		Longitude:      lng,
		Address:        address,
		City:           city,
		InDeliveryArea: in,
		DeliveryMins:   s.DeliveryMinutes(),
	}
}
