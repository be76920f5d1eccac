package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"gctrack/internal/core/model"
	"gctrack/internal/core/repository"
	"gctrack/internal/core/service"
)

func newReportHandler(t *testing.T) (*ReportHandler, repository.EventRepository) {
	t.Helper()

	deviceRepo := repository.NewInMemoryDeviceRepository()
	eventRepo := repository.NewInMemoryEventRepository()
	geozoneRepo := repository.NewInMemoryGeozoneRepository()

	if err := deviceRepo.Create(&model.Device{
		ID:        "d1",
		AccountID: "acme",
		DeviceID:  "truck1",
		UniqueID:  "gc101_1234567890",
	}); err != nil {
		t.Fatalf("seeding device: %v", err)
	}

	deviceService := service.NewDeviceService(deviceRepo, false)
	geozoneService := service.NewGeozoneService(geozoneRepo)
	reportService := service.NewReportService(deviceService, geozoneService, deviceRepo, eventRepo,
		service.ReportConfig{MinimumSpeedKPH: 4.0})

	return NewReportHandler(reportService, deviceService), eventRepo
}

func doReport(t *testing.T, h *ReportHandler, method string, params url.Values) string {
	t.Helper()

	var req *http.Request
	if method == http.MethodPost {
		req = httptest.NewRequest(method, "/gc101/Data", strings.NewReader(params.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, "/gc101/Data?"+params.Encode(), nil)
	}
	req.RemoteAddr = "10.0.0.1:51234"

	rec := httptest.NewRecorder()
	h.HandleReport(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	return strings.TrimRight(rec.Body.String(), "\n")
}

func TestHandleReportAck(t *testing.T) {
	h, eventRepo := newReportHandler(t)

	body := doReport(t, h, http.MethodGet, url.Values{
		"imei": {"1234567890"},
		"rmc":  {"$GPRMC,023000.000,A,3130.0577,N,14271.7421,W,0.53,208.37,210507,,*19,AUTO"},
	})
	if body != "OK" {
		t.Errorf("body = %q, want OK", body)
	}

	events, err := eventRepo.FindByDevice("acme", "truck1")
	if err != nil || len(events) != 1 {
		t.Fatalf("got %d events, err %v, want 1 stored event", len(events), err)
	}
}

func TestHandleReportParameterAliases(t *testing.T) {
	h, eventRepo := newReportHandler(t)

	body := doReport(t, h, http.MethodGet, url.Values{
		"id":    {"1234567890"},
		"gprmc": {"$GPRMC,023000.000,A,3130.0577,N,14271.7421,W,0.53,208.37,210507"},
		"sc":    {"SOS"},
	})
	if body != "OK" {
		t.Errorf("body = %q, want OK", body)
	}

	events, _ := eventRepo.FindByDevice("acme", "truck1")
	if len(events) != 1 || events[0].StatusCode != model.StatusWaymark0 {
		t.Fatalf("aliased parameters were not honored: %d events", len(events))
	}
}

func TestHandleReportUnknownDevice(t *testing.T) {
	h, _ := newReportHandler(t)

	body := doReport(t, h, http.MethodGet, url.Values{
		"imei": {"0000000000"},
		"rmc":  {"$GPRMC,023000.000,A,3130.0577,N,14271.7421,W,0.53,208.37,210507"},
	})
	if body != "" {
		t.Errorf("body = %q, want empty response for unknown device", body)
	}
}

func TestHandleReportMalformedSentenceStillAcks(t *testing.T) {
	h, eventRepo := newReportHandler(t)

	body := doReport(t, h, http.MethodGet, url.Values{
		"imei": {"1234567890"},
		"rmc":  {"not a sentence"},
	})
	if body != "OK" {
		t.Errorf("body = %q, want OK", body)
	}
	if events, _ := eventRepo.FindByDevice("acme", "truck1"); len(events) != 0 {
		t.Errorf("got %d events, want none", len(events))
	}
}

func TestHandleReportCommands(t *testing.T) {
	h, _ := newReportHandler(t)

	t.Run("version", func(t *testing.T) {
		body := doReport(t, h, http.MethodPost, url.Values{"cmd": {"version"}})
		if body != "OK:version:gc101-1.0.2" {
			t.Errorf("body = %q", body)
		}
	})

	t.Run("mobileid known", func(t *testing.T) {
		body := doReport(t, h, http.MethodPost, url.Values{
			"cmd":  {"mobileid"},
			"imei": {"1234567890"},
		})
		if body != "OK:ack:gc101-1.0.2" {
			t.Errorf("body = %q", body)
		}
	})

	t.Run("mobileid unknown", func(t *testing.T) {
		body := doReport(t, h, http.MethodPost, url.Values{
			"cmd":  {"mobileid"},
			"imei": {"0000000000"},
		})
		if body != "ERROR:nak:gc101-1.0.2" {
			t.Errorf("body = %q", body)
		}
	})

	t.Run("commands ignored on GET", func(t *testing.T) {
		// A GET with cmd=version is treated as an ordinary (empty) report.
		body := doReport(t, h, http.MethodGet, url.Values{
			"cmd":  {"version"},
			"imei": {"1234567890"},
		})
		if body != "OK" {
			t.Errorf("body = %q, want OK", body)
		}
	})
}
