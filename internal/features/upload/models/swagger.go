package models

// InitUploadRequest represents the request body for starting an upload
type InitUploadRequest struct {
	Title            string      `json:"title" example:"Wires"`
	Artist           string      `json:"artist" example:"The Band"`
	Album            string      `json:"album" example:"First Light"`
	TrackNumber      OptionalInt `json:"track_number" swaggertype:"integer" example:"3"`
	ReleaseYear      OptionalInt `json:"release_year" swaggertype:"integer" example:"2024"`
	AudioFilename    string      `json:"audio_filename" example:"wires.flac"`
	AudioContentType string      `json:"audio_content_type" example:"audio/flac"`
	ArtFilename      string      `json:"art_filename" example:"cover.jpg"`
	ArtContentType   string      `json:"art_content_type" example:"image/jpeg"`
}

// InitUploadResponse carries presigned PUT URLs for the audio file, the
// optional cover art and the metadata document
type InitUploadResponse struct {
	AudioKey         string     `json:"audio_key" example:"raw/the_band/first_light/1714564800__wires.flac"`
	AudioPutURL      string     `json:"audio_put_url"`
	AudioContentType string     `json:"audio_content_type" example:"audio/flac"`
	ArtKey           *string    `json:"art_key"`
	ArtPutURL        *string    `json:"art_put_url"`
	ArtContentType   string     `json:"art_content_type" example:"image/jpeg"`
	MetaKey          string     `json:"meta_key" example:"raw/the_band/first_light/1714564800__meta.json"`
	MetaPutURL       string     `json:"meta_put_url"`
	MetaFields       MetaFields `json:"meta_fields"`
}

// CompleteUploadRequest represents the request body for finishing an upload
type CompleteUploadRequest struct {
	AudioKey    string      `json:"audio_key" example:"raw/the_band/first_light/1714564800__wires.flac"`
	Title       string      `json:"title" example:"Wires"`
	Artist      string      `json:"artist" example:"The Band"`
	Album       string      `json:"album" example:"First Light"`
	TrackNumber OptionalInt `json:"track_number" swaggertype:"integer" example:"3"`
	ReleaseYear OptionalInt `json:"release_year" swaggertype:"integer" example:"2024"`
}

// CompleteUploadResponse acknowledges a queued ingest
type CompleteUploadResponse struct {
	Status   string `json:"status" example:"queued"`
	AudioKey string `json:"audio_key"`
	EventID  string `json:"event_id" example:"1714564800000-0"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string `json:"error" example:"Forbidden"`
	Code      string `json:"code,omitempty" example:"FORBIDDEN"`
	Detail    string `json:"detail,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}
