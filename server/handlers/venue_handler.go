package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"

	services "github.com/Patrick-M8/tabelog-map/service"
)

const (
	LAT_QUERY_ARG       = "lat"
	LON_QUERY_ARG       = "lon"
	RADIUS_QUERY_ARG    = "radius"
	OPEN_ONLY_QUERY_ARG = "open_only"
	VERBOSE_QUERY_ARG   = "verbose"
)

// VenueHandler serves the venue endpoints. Every response carries live
// open/closed state computed for this request.
type VenueHandler struct {
	venueService *services.VenueService
}

func NewVenueHandler(venueService *services.VenueService) *VenueHandler {
	return &VenueHandler{venueService: venueService}
}

// GetVenuesNearby handles GET /v1/venues/nearby.
func (h *VenueHandler) GetVenuesNearby(w http.ResponseWriter, r *http.Request) {
	lat, lng, radius, openOnly, ok := h.parseArgs(r.URL.Query(), w)
	if !ok {
		return // error already written
	}

	venues, err := h.venueService.GetVenuesNearby(lat, lng, radius, openOnly)
	if err != nil {
		log.Println("[VenueHandler] Error loading nearby venues:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	// Compact responses carry only the live state and today's line; the
	// full weekly grid is opt-in.
	if verbose, _ := strconv.ParseBool(r.URL.Query().Get(VERBOSE_QUERY_ARG)); !verbose {
		for i := range venues {
			venues[i].Venue.Hours.Weekly = nil
			venues[i].Venue.Hours.WeekCompact = ""
		}
	}

	writeJSON(w, venues)
}

// GetVenue handles GET /v1/venues/{id}.
func (h *VenueHandler) GetVenue(w http.ResponseWriter, r *http.Request) {
	venueID := mux.Vars(r)["id"]
	if venueID == "" {
		http.Error(w, "Missing venue id", http.StatusBadRequest)
		return
	}

	v, err := h.venueService.GetVenue(venueID)
	if err != nil {
		log.Printf("[VenueHandler] Venue %s not found: %v", venueID, err)
		http.Error(w, "Venue not found", http.StatusNotFound)
		return
	}

	writeJSON(w, v)
}

// Ping handles GET /ping.
func (h *VenueHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "pong"})
}

func (h *VenueHandler) parseArgs(vals url.Values, w http.ResponseWriter) (
	lat, lng, radius float64, openOnly bool, ok bool,
) {
	var err error

	lat, err = parseArgFloat64(vals, LAT_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+LAT_QUERY_ARG, http.StatusBadRequest)
		return
	}
	lng, err = parseArgFloat64(vals, LON_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+LON_QUERY_ARG, http.StatusBadRequest)
		return
	}
	radius, err = parseArgFloat64(vals, RADIUS_QUERY_ARG)
	if err != nil {
		http.Error(w, "Invalid argument "+RADIUS_QUERY_ARG, http.StatusBadRequest)
		return
	}
	if v := vals.Get(OPEN_ONLY_QUERY_ARG); v != "" {
		openOnly, _ = strconv.ParseBool(v)
	}
	ok = true
	return
}

func parseArgFloat64(vals url.Values, name string) (float64, error) {
	return strconv.ParseFloat(vals.Get(name), 64)
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Println("[VenueHandler] Error encoding response:", err)
	}
}
