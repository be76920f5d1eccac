package service

import (
	"errors"

	"gctrack/internal/core/model"
	"gctrack/internal/core/repository"
)

// TransitionChecker answers the "which boundaries did this fix cross" query
// for the report pipeline.
type TransitionChecker interface {
	CheckTransitions(device *model.Device, timestamp int64, point model.GeoPoint) ([]model.GeozoneTransition, error)
}

type GeozoneService interface {
	TransitionChecker
	CreateGeozone(zone *model.Geozone) error
	GetAccountGeozones(accountID string) ([]*model.Geozone, error)
}

type geozoneService struct {
	geozoneRepo repository.GeozoneRepository
}

func NewGeozoneService(geozoneRepo repository.GeozoneRepository) GeozoneService {
	return &geozoneService{geozoneRepo: geozoneRepo}
}

// CheckTransitions compares the fix against the device's last known zone and
// returns the boundary crossings since then. Crossing directly from one zone
// into another yields a depart followed by an arrive, both at the fix
// timestamp. The device's LastZoneID is updated in place.
func (s *geozoneService) CheckTransitions(device *model.Device, timestamp int64, point model.GeoPoint) ([]model.GeozoneTransition, error) {
	zones, err := s.geozoneRepo.FindByAccountID(device.AccountID)
	if err != nil {
		return nil, err
	}

	var currentID string
	for _, zone := range zones {
		if zone.Contains(point) {
			currentID = zone.ID
			break
		}
	}

	if currentID == device.LastZoneID {
		return nil, nil
	}

	var transitions []model.GeozoneTransition
	if device.LastZoneID != "" {
		transitions = append(transitions, model.GeozoneTransition{
			Timestamp:  timestamp,
			StatusCode: model.StatusGeofenceDepart,
			ZoneID:     device.LastZoneID,
		})
	}
	if currentID != "" {
		transitions = append(transitions, model.GeozoneTransition{
			Timestamp:  timestamp,
			StatusCode: model.StatusGeofenceArrive,
			ZoneID:     currentID,
		})
	}
	device.LastZoneID = currentID
	return transitions, nil
}

func (s *geozoneService) CreateGeozone(zone *model.Geozone) error {
	if zone.AccountID == "" || zone.ID == "" {
		return errors.New("invalid geozone data")
	}
	if zone.RadiusM <= 0 {
		return errors.New("geozone radius must be positive")
	}
	return s.geozoneRepo.Create(zone)
}

func (s *geozoneService) GetAccountGeozones(accountID string) ([]*model.Geozone, error) {
	if accountID == "" {
		return nil, errors.New("invalid account ID")
	}
	return s.geozoneRepo.FindByAccountID(accountID)
}
