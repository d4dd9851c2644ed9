package hafastransit

import (
	"encoding/json"
	"net/http"

	"github.com/theoremus-urban-solutions/hafas-to-transit/config"
)

type healthResponse struct {
	Status   string `json:"status"`
	Timezone string `json:"timezone"`
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	resp := healthResponse{
		Status:   "ok",
		Timezone: configuredTimezone(),
	}
	_ = json.NewEncoder(w).Encode(resp)
}

func configuredTimezone() string {
	if tz := config.Config.Profile.Timezone; tz != "" {
		return tz
	}
	return "Europe/Berlin"
}
