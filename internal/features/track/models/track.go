package models

import "time"

// Track is one playable item of the catalog.
type Track struct {
	ID          string    `json:"track_id" example:"trk_1a2b3c4d"`
	Title       string    `json:"title" example:"Wires"`
	Artist      string    `json:"artist,omitempty" example:"The Band"`
	Album       string    `json:"album,omitempty" example:"First Light"`
	TrackNumber int       `json:"track_number,omitempty" example:"3"`
	ReleaseYear int       `json:"release_year,omitempty" example:"2024"`
	StreamPath  string    `json:"stream_path" example:"tracks/Wires.flac"`
	SourceKey   string    `json:"source_key,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewTrackInput describes an ingested audio object.
type NewTrackInput struct {
	Title       string
	Artist      string
	Album       string
	TrackNumber int
	ReleaseYear int
	StreamPath  string
	SourceKey   string
}
