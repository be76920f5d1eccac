package repository

import (
	"sync"

	"gctrack/internal/core/model"
)

type inMemoryGeozoneRepository struct {
	zones []*model.Geozone
	mutex sync.RWMutex
}

func NewInMemoryGeozoneRepository() GeozoneRepository {
	return &inMemoryGeozoneRepository{}
}

func (r *inMemoryGeozoneRepository) Create(zone *model.Geozone) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	stored := *zone
	r.zones = append(r.zones, &stored)
	return nil
}

func (r *inMemoryGeozoneRepository) FindByAccountID(accountID string) ([]*model.Geozone, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var result []*model.Geozone
	for _, zone := range r.zones {
		if zone.AccountID == accountID {
			found := *zone
			result = append(result, &found)
		}
	}
	return result, nil
}
