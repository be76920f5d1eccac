package service

import (
	"testing"

	"gctrack/internal/core/model"
	"gctrack/internal/core/repository"
)

func newZoneFixture(t *testing.T) (GeozoneService, *model.Device) {
	t.Helper()

	repo := repository.NewInMemoryGeozoneRepository()
	svc := NewGeozoneService(repo)

	zones := []*model.Geozone{
		{ID: "depot", AccountID: "acme", Center: model.GeoPoint{Latitude: 10.0, Longitude: 10.0}, RadiusM: 500.0},
		{ID: "yard", AccountID: "acme", Center: model.GeoPoint{Latitude: 20.0, Longitude: 20.0}, RadiusM: 500.0},
	}
	for _, z := range zones {
		if err := svc.CreateGeozone(z); err != nil {
			t.Fatalf("seeding zone %s: %v", z.ID, err)
		}
	}

	return svc, &model.Device{ID: "d1", AccountID: "acme", DeviceID: "truck1"}
}

func TestCheckTransitions(t *testing.T) {
	inDepot := model.GeoPoint{Latitude: 10.0, Longitude: 10.0}
	inYard := model.GeoPoint{Latitude: 20.0, Longitude: 20.0}
	outside := model.GeoPoint{Latitude: 30.0, Longitude: 30.0}

	tests := []struct {
		name       string
		lastZoneID string
		point      model.GeoPoint
		want       []model.GeozoneTransition
		wantZoneID string
	}{
		{
			name:       "arrive from open field",
			lastZoneID: "",
			point:      inDepot,
			want: []model.GeozoneTransition{
				{Timestamp: 1000, StatusCode: model.StatusGeofenceArrive, ZoneID: "depot"},
			},
			wantZoneID: "depot",
		},
		{
			name:       "depart to open field",
			lastZoneID: "depot",
			point:      outside,
			want: []model.GeozoneTransition{
				{Timestamp: 1000, StatusCode: model.StatusGeofenceDepart, ZoneID: "depot"},
			},
			wantZoneID: "",
		},
		{
			name:       "zone to zone",
			lastZoneID: "depot",
			point:      inYard,
			want: []model.GeozoneTransition{
				{Timestamp: 1000, StatusCode: model.StatusGeofenceDepart, ZoneID: "depot"},
				{Timestamp: 1000, StatusCode: model.StatusGeofenceArrive, ZoneID: "yard"},
			},
			wantZoneID: "yard",
		},
		{
			name:       "still inside",
			lastZoneID: "depot",
			point:      inDepot,
			want:       nil,
			wantZoneID: "depot",
		},
		{
			name:       "still outside",
			lastZoneID: "",
			point:      outside,
			want:       nil,
			wantZoneID: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, device := newZoneFixture(t)
			device.LastZoneID = tt.lastZoneID

			got, err := svc.CheckTransitions(device, 1000, tt.point)
			if err != nil {
				t.Fatalf("CheckTransitions() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d transitions, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("transition[%d] = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
			if device.LastZoneID != tt.wantZoneID {
				t.Errorf("LastZoneID = %q, want %q", device.LastZoneID, tt.wantZoneID)
			}
		})
	}
}

func TestCreateGeozoneValidation(t *testing.T) {
	svc := NewGeozoneService(repository.NewInMemoryGeozoneRepository())

	if err := svc.CreateGeozone(&model.Geozone{ID: "z1", AccountID: "acme", RadiusM: 0}); err == nil {
		t.Error("CreateGeozone() should reject a non-positive radius")
	}
	if err := svc.CreateGeozone(&model.Geozone{ID: "", AccountID: "acme", RadiusM: 100}); err == nil {
		t.Error("CreateGeozone() should reject a blank id")
	}
	if err := svc.CreateGeozone(&model.Geozone{ID: "z1", AccountID: "acme", RadiusM: 100}); err != nil {
		t.Errorf("CreateGeozone() error = %v", err)
	}
}

func TestGetAccountGeozones(t *testing.T) {
	svc, _ := newZoneFixture(t)

	zones, err := svc.GetAccountGeozones("acme")
	if err != nil {
		t.Fatalf("GetAccountGeozones() error = %v", err)
	}
	if len(zones) != 2 {
		t.Errorf("got %d zones, want 2", len(zones))
	}

	if _, err := svc.GetAccountGeozones(""); err == nil {
		t.Error("GetAccountGeozones() should reject a blank account id")
	}
}
