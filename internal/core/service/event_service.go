package service

import (
	"context"
	"errors"
	"log"
	"time"

	"gctrack/internal/cache"
	"gctrack/internal/core/model"
	"gctrack/internal/core/repository"
)

type EventService interface {
	GetDeviceEvents(accountID, deviceID string) ([]*model.EventRecord, error)
	GetLatestEvent(accountID, deviceID string) (*model.EventRecord, error)
}

type eventService struct {
	eventRepo repository.EventRepository
}

func NewEventService(eventRepo repository.EventRepository) EventService {
	return &eventService{eventRepo: eventRepo}
}

func (s *eventService) GetDeviceEvents(accountID, deviceID string) ([]*model.EventRecord, error) {
	if accountID == "" || deviceID == "" {
		return nil, errors.New("invalid account or device ID")
	}
	return s.eventRepo.FindByDevice(accountID, deviceID)
}

func (s *eventService) GetLatestEvent(accountID, deviceID string) (*model.EventRecord, error) {
	if accountID == "" || deviceID == "" {
		return nil, errors.New("invalid account or device ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	var cached model.EventRecord
	if err := cache.Get(ctx, cache.LatestEventKey(accountID, deviceID), &cached); err == nil {
		return &cached, nil
	}

	event, err := s.eventRepo.FindLatestByDevice(accountID, deviceID)
	if err != nil || event == nil {
		return event, err
	}
	if err := cache.Set(ctx, cache.LatestEventKey(accountID, deviceID), event, time.Hour); err != nil {
		log.Printf("unable to cache latest event for %s/%s: %v", accountID, deviceID, err)
	}
	return event, nil
}
