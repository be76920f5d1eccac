package repository

import (
	"fmt"
	"sort"
	"sync"

	"gctrack/internal/core/model"
)

type inMemoryEventRepository struct {
	events map[string]*model.EventRecord
	mutex  sync.RWMutex
}

func NewInMemoryEventRepository() EventRepository {
	return &inMemoryEventRepository{
		events: make(map[string]*model.EventRecord),
	}
}

func memoryEventKey(event *model.EventRecord) string {
	return fmt.Sprintf("%s/%s/%d/%d", event.AccountID, event.DeviceID, event.Timestamp, event.StatusCode)
}

func (r *inMemoryEventRepository) Create(event *model.EventRecord) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	stored := *event
	r.events[memoryEventKey(event)] = &stored
	return nil
}

func (r *inMemoryEventRepository) FindByDevice(accountID, deviceID string) ([]*model.EventRecord, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var result []*model.EventRecord
	for _, event := range r.events {
		if event.AccountID == accountID && event.DeviceID == deviceID {
			found := *event
			result = append(result, &found)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Timestamp < result[j].Timestamp })
	return result, nil
}

func (r *inMemoryEventRepository) FindLatestByDevice(accountID, deviceID string) (*model.EventRecord, error) {
	events, err := r.FindByDevice(accountID, deviceID)
	if err != nil || len(events) == 0 {
		return nil, err
	}
	return events[len(events)-1], nil
}
