package handler

import (
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"strings"

	"gctrack/internal/core/service"
	"gctrack/internal/observability"
)

const (
	deviceCode = "gc101"
	version    = "1.0.2"

	responseOK    = "OK"
	responseError = ""
)

// ReportHandler receives terminal check-ins on /gc101/Data. The terminals
// send either GET or POST with the same parameter set; several parameter
// names have aliases kept for wire compatibility.
type ReportHandler struct {
	reportService service.ReportService
	deviceService service.DeviceService
}

func NewReportHandler(reportService service.ReportService, deviceService service.DeviceService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		deviceService: deviceService,
	}
}

func (h *ReportHandler) HandleReport(w http.ResponseWriter, r *http.Request) {
	observability.ReportsReceived.Inc()

	ip := sourceIP(r)
	hardwareID := getParam(r, "imei", "id")
	sentence := getParam(r, "rmc", "gprmc")
	statusToken := getParam(r, "code", "sc")

	log.Printf("[%s] %s %s %s", ip, r.Method, r.URL.Path, r.URL.RawQuery)

	// Maintenance commands arrive on the same endpoint, POST only.
	if r.Method == http.MethodPost {
		switch strings.ToLower(r.FormValue("cmd")) {
		case "version", "ver":
			h.plainText(w, "OK:version:"+deviceCode+"-"+version)
			return
		case "mobileid", "id":
			if _, err := h.deviceService.ResolveDevice(hardwareID, ip); err != nil {
				h.plainText(w, "ERROR:nak:"+deviceCode+"-"+version)
			} else {
				h.plainText(w, "OK:ack:"+deviceCode+"-"+version)
			}
			return
		}
	}

	_, err := h.reportService.ProcessReport(service.RawReport{
		HardwareID:  hardwareID,
		Sentence:    sentence,
		StatusToken: statusToken,
		SourceIP:    ip,
	})
	switch {
	case errors.Is(err, service.ErrDeviceNotFound), errors.Is(err, service.ErrUnauthorizedSource):
		h.plainText(w, responseError)
	default:
		// Anything past device validation is acknowledged; a malformed
		// sentence is logged, not bounced back to the terminal.
		h.plainText(w, responseOK)
	}
}

func (h *ReportHandler) plainText(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, msg)
}

// getParam returns the first non-empty value among the aliased names.
func getParam(r *http.Request, names ...string) string {
	for _, name := range names {
		if v := r.FormValue(name); v != "" {
			return v
		}
	}
	return ""
}

func sourceIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
