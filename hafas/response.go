package hafas

// Per-endpoint response envelopes. Each service or CLI call decodes
// exactly one of these, so the payload variant is fixed at the boundary
// instead of being sniffed from field presence later.

// JourneysResponse wraps a routing result.
type JourneysResponse struct {
	Common Common          `json:"common"`
	ConL   []RawConnection `json:"conL"`
}

// BoardResponse wraps a departure board.
type BoardResponse struct {
	Common Common          `json:"common"`
	JnyL   []RawBoardEntry `json:"jnyL"`
}

// RadarResponse wraps a live vehicle feed.
type RadarResponse struct {
	Common Common        `json:"common"`
	JnyL   []RawMovement `json:"jnyL"`
}

// LocationsResponse wraps a location search result.
type LocationsResponse struct {
	Common Common        `json:"common"`
	LocL   []RawLocation `json:"locL"`
}

// WarningsResponse wraps a service-warning listing.
type WarningsResponse struct {
	Common Common       `json:"common"`
	MsgL   []RawWarning `json:"msgL"`
}
