package models

// TracksResponse lists the catalog
type TracksResponse struct {
	Tracks []*Track `json:"tracks"`
}

// StreamResponse carries a playable URL
type StreamResponse struct {
	StreamURL string `json:"stream_url" example:"https://cdn.example.com/tracks/Wires.flac"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string `json:"error" example:"Track 'trk_1a2b3c4d' not found"`
	Code      string `json:"code,omitempty" example:"TRACK_NOT_FOUND"`
	Detail    string `json:"detail,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}
