package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

const (
	DefaultContentType = "application/octet-stream"
	MetaContentType    = "application/json"

	EventObjectCreated = "object_created"
)

// OptionalInt accepts a JSON number, a numeric string or null. Anything else
// decodes as absent.
type OptionalInt struct {
	Value int
	Valid bool
}

func IntValue(v int) OptionalInt {
	return OptionalInt{Value: v, Valid: true}
}

func (o OptionalInt) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(o.Value)), nil
}

func (o *OptionalInt) UnmarshalJSON(data []byte) error {
	*o = OptionalInt{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	var n json.Number
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		n = json.Number(strings.TrimSpace(s))
	} else {
		n = json.Number(data)
	}

	if v, err := n.Int64(); err == nil {
		*o = IntValue(int(v))
	}
	return nil
}

// String is the decimal form, or "" when absent.
func (o OptionalInt) String() string {
	if !o.Valid {
		return ""
	}
	return strconv.Itoa(o.Value)
}

// ParseOptionalInt is the inverse of String.
func ParseOptionalInt(s string) OptionalInt {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return OptionalInt{}
	}
	return IntValue(v)
}

// MetaFields is the cleaned metadata echoed back to the uploader and carried
// on the ingest event.
type MetaFields struct {
	Title       string      `json:"title"`
	Artist      string      `json:"artist"`
	Album       string      `json:"album"`
	TrackNumber OptionalInt `json:"track_number" swaggertype:"integer"`
	ReleaseYear OptionalInt `json:"release_year" swaggertype:"integer"`
}

// ObjectCreated is published when an upload finishes and consumed by the
// ingest worker.
type ObjectCreated struct {
	Bucket string
	Key    string
	Meta   MetaFields
}

// Values is the stream entry encoding of the event.
func (e ObjectCreated) Values() map[string]interface{} {
	return map[string]interface{}{
		"type":         EventObjectCreated,
		"bucket":       e.Bucket,
		"key":          e.Key,
		"title":        e.Meta.Title,
		"artist":       e.Meta.Artist,
		"album":        e.Meta.Album,
		"track_number": e.Meta.TrackNumber.String(),
		"release_year": e.Meta.ReleaseYear.String(),
	}
}

// ParseObjectCreated decodes a stream entry. ok is false for other event
// types and for entries without a key.
func ParseObjectCreated(values map[string]interface{}) (ObjectCreated, bool) {
	str := func(name string) string {
		s, _ := values[name].(string)
		return s
	}

	if str("type") != EventObjectCreated || str("key") == "" {
		return ObjectCreated{}, false
	}

	return ObjectCreated{
		Bucket: str("bucket"),
		Key:    str("key"),
		Meta: MetaFields{
			Title:       str("title"),
			Artist:      str("artist"),
			Album:       str("album"),
			TrackNumber: ParseOptionalInt(str("track_number")),
			ReleaseYear: ParseOptionalInt(str("release_year")),
		},
	}, true
}
