package service

import (
	"errors"
	"log"
	"strings"
	"time"

	"gctrack/internal/core/model"
	"gctrack/internal/core/repository"
)

const (
	uniqueIDPrefixGC101 = "gc101_"
	uniqueIDPrefixIMEI  = "imei_"

	// IMEI numbers are 15 digits; shorter raw ids are never looked up as-is.
	rawIDMinLength = 15
)

var (
	ErrDeviceNotFound     = errors.New("device not found")
	ErrUnauthorizedSource = errors.New("source IP not allowed for device")
)

type DeviceService interface {
	// ResolveDevice finds the device record for a raw hardware id, trying the
	// vendor-prefixed id, the imei-prefixed id and (when enabled) the raw id
	// in that order, then validates the source IP. On success the returned
	// record has CurrentIP and LastConnect updated; persisting that is the
	// caller's job.
	ResolveDevice(hardwareID, sourceIP string) (*model.Device, error)
	// NextOdometerKM advances the device's running odometer by the
	// great-circle distance from its last stored point.
	NextOdometerKM(device *model.Device, point model.GeoPoint) float64
	CreateDevice(accountID, deviceID, uniqueID string) (*model.Device, error)
	GetDevice(id string) (*model.Device, error)
	GetAccountDevices(accountID string) ([]*model.Device, error)
	GetAllDevices() ([]*model.Device, error)
}

type deviceService struct {
	deviceRepo   repository.DeviceRepository
	alsoCheckRaw bool
	now          func() time.Time
}

func NewDeviceService(deviceRepo repository.DeviceRepository, alsoCheckRawID bool) DeviceService {
	return &deviceService{
		deviceRepo:   deviceRepo,
		alsoCheckRaw: alsoCheckRawID,
		now:          time.Now,
	}
}

func (s *deviceService) ResolveDevice(hardwareID, sourceIP string) (*model.Device, error) {
	hardwareID = strings.TrimSpace(hardwareID)
	if hardwareID == "" {
		log.Printf("ignoring report with blank hardware id")
		return nil, ErrDeviceNotFound
	}

	primary := uniqueIDPrefixGC101 + hardwareID
	candidates := []string{primary, uniqueIDPrefixIMEI + hardwareID}
	if s.alsoCheckRaw && len(hardwareID) >= rawIDMinLength {
		candidates = append(candidates, hardwareID)
	}

	var device *model.Device
	for _, id := range candidates {
		found, err := s.deviceRepo.FindByUniqueID(id)
		if err != nil {
			return nil, err
		}
		if found != nil {
			device = found
			break
		}
	}
	if device == nil {
		// The primary candidate is the one operators search for.
		log.Printf("device id not found: %s", primary)
		return nil, ErrDeviceNotFound
	}

	if sourceIP != "" && !device.IsValidIPAddress(sourceIP) {
		log.Printf("invalid source IP %s for device %s [expecting %s]",
			sourceIP, device.UniqueID, device.AllowedIP)
		return nil, ErrUnauthorizedSource
	}

	device.CurrentIP = sourceIP
	device.LastConnect = s.now().Unix()
	return device, nil
}

func (s *deviceService) NextOdometerKM(device *model.Device, point model.GeoPoint) float64 {
	last := device.LastGeoPoint()
	if last.IsValid() {
		device.LastOdometer += last.DistanceKM(point)
	}
	device.LastLatitude = point.Latitude
	device.LastLongitude = point.Longitude
	return device.LastOdometer
}

func (s *deviceService) CreateDevice(accountID, deviceID, uniqueID string) (*model.Device, error) {
	if accountID == "" || deviceID == "" || uniqueID == "" {
		return nil, errors.New("invalid device data")
	}
	device := model.NewDevice(accountID, deviceID, uniqueID)
	if err := s.deviceRepo.Create(device); err != nil {
		return nil, err
	}
	return device, nil
}

func (s *deviceService) GetDevice(id string) (*model.Device, error) {
	if id == "" {
		return nil, errors.New("invalid device ID")
	}
	return s.deviceRepo.FindByID(id)
}

func (s *deviceService) GetAccountDevices(accountID string) ([]*model.Device, error) {
	if accountID == "" {
		return nil, errors.New("invalid account ID")
	}
	return s.deviceRepo.FindByAccountID(accountID)
}

func (s *deviceService) GetAllDevices() ([]*model.Device, error) {
	return s.deviceRepo.FindAll()
}
