package service

import (
	"context"
	"log"
	"time"

	"gctrack/internal/cache"
	"gctrack/internal/core/model"
	"gctrack/internal/core/repository"
	"gctrack/internal/observability"
	"gctrack/internal/protocol/gprmc"
)

// Battery window for the terminal's 1100 mAh pack, per the manufacturer.
const (
	minBatteryVolts = 3.650
	maxBatteryVolts = 4.100
)

// RawReport is one incoming terminal check-in, as extracted by the transport.
type RawReport struct {
	HardwareID  string
	Sentence    string
	StatusToken string
	SourceIP    string
}

// ReportConfig holds the ingest policy knobs.
type ReportConfig struct {
	MinimumSpeedKPH  float64
	EstimateOdometer bool
	SimulateGeozones bool
}

type ReportService interface {
	// ProcessReport runs the decode-and-assemble pipeline for one report and
	// returns the events that were persisted. A report that decodes but is
	// intentionally dropped (ignorable status, invalid plain location) yields
	// an empty slice and no error.
	ProcessReport(report RawReport) ([]*model.EventRecord, error)
}

type reportService struct {
	deviceService DeviceService
	transitions   TransitionChecker
	deviceRepo    repository.DeviceRepository
	eventRepo     repository.EventRepository
	decoder       *gprmc.Decoder
	cfg           ReportConfig
}

func NewReportService(
	deviceService DeviceService,
	transitions TransitionChecker,
	deviceRepo repository.DeviceRepository,
	eventRepo repository.EventRepository,
	cfg ReportConfig,
) ReportService {
	return &reportService{
		deviceService: deviceService,
		transitions:   transitions,
		deviceRepo:    deviceRepo,
		eventRepo:     eventRepo,
		decoder:       gprmc.NewDecoder(),
		cfg:           cfg,
	}
}

func (s *reportService) ProcessReport(report RawReport) ([]*model.EventRecord, error) {
	device, err := s.deviceService.ResolveDevice(report.HardwareID, report.SourceIP)
	if err != nil {
		observability.ReportsRejected.Inc()
		return nil, err
	}

	// Bare check-in: the terminal validated itself without sending a report.
	if report.Sentence == "" && report.StatusToken == "" {
		return nil, s.deviceRepo.Update(device)
	}

	start := time.Now()
	fix, err := s.decoder.Decode(report.Sentence, report.StatusToken)
	if err != nil {
		observability.ParseErrors.Inc()
		log.Printf("unparseable report from %s/%s: %v", device.AccountID, device.DeviceID, err)
		return nil, err
	}
	observability.ObserveDecodeLatency(start)

	event, keep := s.assembleEvent(device, fix)
	if !keep {
		return nil, s.deviceRepo.Update(device)
	}

	var inserted []*model.EventRecord

	if s.cfg.SimulateGeozones && fix.Valid {
		zoneEvents, err := s.simulateGeozones(device, event)
		if err != nil {
			return inserted, err
		}
		inserted = append(inserted, zoneEvents...)
	}

	// Synthetic zone events replace a plain location event; any other status
	// is always stored as well so alarm/ignition semantics survive.
	if len(inserted) == 0 || event.StatusCode != model.StatusLocation {
		if err := s.eventRepo.Create(event); err != nil {
			return inserted, err
		}
		observability.EventsInserted.Inc()
		log.Printf("event: %s/%s %s at %.5f/%.5f",
			event.AccountID, event.DeviceID, event.StatusCode, event.Point.Latitude, event.Point.Longitude)
		inserted = append(inserted, event)
	}

	if err := s.deviceRepo.Update(device); err != nil {
		log.Printf("unable to update device %s/%s: %v", device.AccountID, device.DeviceID, err)
	}

	if len(inserted) > 0 {
		latest := inserted[len(inserted)-1]
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := cache.Set(ctx, cache.LatestEventKey(device.AccountID, device.DeviceID), latest, time.Hour); err != nil {
			log.Printf("unable to cache latest event for %s/%s: %v", device.AccountID, device.DeviceID, err)
		}
	}

	return inserted, nil
}

// assembleEvent applies the post-decode policy and builds the record to
// persist. The bool result is false when the report is intentionally dropped.
func (s *reportService) assembleEvent(device *model.Device, fix *gprmc.Fix) (*model.EventRecord, bool) {
	switch {
	case fix.StatusCode == model.StatusIgnore, fix.StatusCode == model.StatusNone:
		return nil, false
	case fix.StatusCode == model.StatusLocation && !fix.Valid:
		// A plain location event is meaningless without a valid fix. Alarms
		// and state changes are still recorded even when the fix is bad.
		log.Printf("dropping location event with invalid fix for %s/%s", device.AccountID, device.DeviceID)
		return nil, false
	}

	speed, heading := fix.SpeedKPH, fix.HeadingDeg
	if speed < s.cfg.MinimumSpeedKPH {
		speed, heading = 0.0, 0.0
	}

	odometer := device.LastOdometer
	if s.cfg.EstimateOdometer && fix.Valid {
		odometer = s.deviceService.NextOdometerKM(device, fix.Point)
	}

	return &model.EventRecord{
		AccountID:    device.AccountID,
		DeviceID:     device.DeviceID,
		Timestamp:    fix.Timestamp,
		StatusCode:   fix.StatusCode,
		Point:        fix.Point,
		HDOP:         fix.HDOP,
		Satellites:   fix.Satellites,
		SpeedKPH:     speed,
		HeadingDeg:   heading,
		OdometerKM:   odometer,
		BatteryLevel: batteryPercent(fix.BatteryVolts),
		GPIOMask:     fix.GPIOMask,
		GPIOMaskSet:  fix.GPIOMaskSet,
	}, true
}

// simulateGeozones stores one synthetic event per boundary crossing, copying
// the telemetry of the originating event with the transition's own timestamp
// and status code.
func (s *reportService) simulateGeozones(device *model.Device, event *model.EventRecord) ([]*model.EventRecord, error) {
	transitions, err := s.transitions.CheckTransitions(device, event.Timestamp, event.Point)
	if err != nil {
		log.Printf("geozone check failed for %s/%s: %v", device.AccountID, device.DeviceID, err)
		return nil, nil
	}

	var inserted []*model.EventRecord
	for _, tr := range transitions {
		zoneEvent := *event
		zoneEvent.Timestamp = tr.Timestamp
		zoneEvent.StatusCode = tr.StatusCode
		zoneEvent.GeozoneID = tr.ZoneID
		if err := s.eventRepo.Create(&zoneEvent); err != nil {
			return inserted, err
		}
		observability.GeozoneEvents.Inc()
		log.Printf("geozone %s: %s/%s %s", tr.ZoneID, event.AccountID, event.DeviceID, tr.StatusCode)
		stored := zoneEvent
		inserted = append(inserted, &stored)
	}
	return inserted, nil
}

// batteryPercent linearly maps pack voltage onto 0.0-1.0, clamped.
func batteryPercent(volts float64) float64 {
	pct := (volts - minBatteryVolts) / (maxBatteryVolts - minBatteryVolts)
	if pct < 0.0 {
		return 0.0
	}
	if pct > 1.0 {
		return 1.0
	}
	return pct
}
