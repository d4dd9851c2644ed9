package hafastransit

import (
	"encoding/json"
	"net/http"

	"github.com/theoremus-urban-solutions/hafas-to-transit/config"
	"github.com/theoremus-urban-solutions/hafas-to-transit/formatter"
	"github.com/theoremus-urban-solutions/hafas-to-transit/hafas"
	"github.com/theoremus-urban-solutions/hafas-to-transit/normalizer"
	"github.com/theoremus-urban-solutions/hafas-to-transit/profile"
	"github.com/theoremus-urban-solutions/hafas-to-transit/transit"
)

// NewNormalizerFromConfig builds a normalizer with the Default profile
// described by the application configuration.
func NewNormalizerFromConfig(cfg config.AppConfig) (*normalizer.Normalizer, error) {
	products := make([]profile.Product, 0, len(cfg.Profile.Products))
	for _, p := range cfg.Profile.Products {
		products = append(products, profile.Product{ID: p.ID, Bitmasks: p.Bitmasks})
	}
	prof, err := profile.NewDefault(cfg.Profile.Timezone, products)
	if err != nil {
		return nil, err
	}
	opts := normalizer.Options{LinesOfStops: cfg.Normalizer.LinesOfStops}
	return normalizer.New(prof, opts), nil
}

func handleJourneys(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	rb := formatter.NewResponseBuilder()
	n, err := NewNormalizerFromConfig(config.Config)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write(rb.BuildErrorPayload("journeys", err.Error()))
		return
	}
	var raw hafas.JourneysResponse
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write(rb.BuildErrorPayload("journeys", err.Error()))
		return
	}
	tables := n.BuildTables(&raw.Common)
	journeys := make([]*transit.Journey, 0, len(raw.ConL))
	for i := range raw.ConL {
		j, err := n.Journey(tables, &raw.ConL[i])
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write(rb.BuildErrorPayload("journeys", err.Error()))
			return
		}
		journeys = append(journeys, j)
	}
	_, _ = w.Write(rb.BuildJSON("journeys", journeys))
}

func handleDepartures(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	rb := formatter.NewResponseBuilder()
	n, err := NewNormalizerFromConfig(config.Config)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write(rb.BuildErrorPayload("departures", err.Error()))
		return
	}
	var raw hafas.BoardResponse
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write(rb.BuildErrorPayload("departures", err.Error()))
		return
	}
	tables := n.BuildTables(&raw.Common)
	departures := make([]*transit.Departure, 0, len(raw.JnyL))
	for i := range raw.JnyL {
		d, err := n.Departure(tables, &raw.JnyL[i])
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write(rb.BuildErrorPayload("departures", err.Error()))
			return
		}
		departures = append(departures, d)
	}
	_, _ = w.Write(rb.BuildJSON("departures", departures))
}

func handleMovements(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	rb := formatter.NewResponseBuilder()
	n, err := NewNormalizerFromConfig(config.Config)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write(rb.BuildErrorPayload("movements", err.Error()))
		return
	}
	var raw hafas.RadarResponse
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write(rb.BuildErrorPayload("movements", err.Error()))
		return
	}
	tables := n.BuildTables(&raw.Common)
	movements := make([]*transit.Movement, 0, len(raw.JnyL))
	for i := range raw.JnyL {
		m, err := n.Movement(tables, &raw.JnyL[i])
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write(rb.BuildErrorPayload("movements", err.Error()))
			return
		}
		movements = append(movements, m)
	}
	_, _ = w.Write(rb.BuildJSON("movements", movements))
}

func handleLocations(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	rb := formatter.NewResponseBuilder()
	n, err := NewNormalizerFromConfig(config.Config)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write(rb.BuildErrorPayload("locations", err.Error()))
		return
	}
	var raw hafas.LocationsResponse
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write(rb.BuildErrorPayload("locations", err.Error()))
		return
	}
	locations := make([]transit.Place, 0, len(raw.LocL))
	for i := range raw.LocL {
		locations = append(locations, n.Place(&raw.LocL[i]))
	}
	_, _ = w.Write(rb.BuildJSON("locations", locations))
}

func handleWarnings(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	rb := formatter.NewResponseBuilder()
	n, err := NewNormalizerFromConfig(config.Config)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write(rb.BuildErrorPayload("warnings", err.Error()))
		return
	}
	var raw hafas.WarningsResponse
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write(rb.BuildErrorPayload("warnings", err.Error()))
		return
	}
	tables := n.BuildTables(&raw.Common)
	warnings := make([]*transit.Warning, 0, len(raw.MsgL))
	for i := range raw.MsgL {
		warnings = append(warnings, n.Warning(tables, &raw.MsgL[i]))
	}
	_, _ = w.Write(rb.BuildJSON("warnings", warnings))
}
