package models

import "time"

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string `json:"error" example:"Unauthorized"`
	Code      string `json:"code,omitempty" example:"UNAUTHORIZED"`
	Detail    string `json:"detail,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// UserResponse is the public view of a profile
// @Description Public view of a user profile
type UserResponse struct {
	SubjectID             string             `json:"sub" example:"109876543210"`
	Email                 string             `json:"email" example:"fan@example.com"`
	DisplayName           string             `json:"name" example:"Fan Example"`
	PictureURL            string             `json:"picture" example:"https://lh3.googleusercontent.com/a/fan"`
	Role                  Role               `json:"role" example:"listener" enums:"listener,artist,admin"`
	ArtistStatus          ArtistStatus       `json:"artistStatus" swaggertype:"string" enums:"pending,approved,rejected"`
	ArtistApplication     *ArtistApplication `json:"artistApplication"`
	ArtistRejectionReason string             `json:"artistRejectionReason,omitempty"`
	CreatedAt             time.Time          `json:"createdAt"`
	UpdatedAt             time.Time          `json:"updatedAt"`
	LastLoginAt           time.Time          `json:"lastLoginAt"`
}

// GoogleLoginRequest carries the raw Google ID token
type GoogleLoginRequest struct {
	Credential string `json:"credential" example:"eyJhbGciOiJSUzI1NiIs..."`
}

// ArtistApplyRequest is the artist application form
type ArtistApplyRequest struct {
	DisplayName string `json:"displayName" example:"DJ Test"`
	Bio         string `json:"bio"`
	Links       string `json:"links"`
	Genres      string `json:"genres"`
	Location    string `json:"location"`
	FullName    string `json:"fullName"`
}

// RejectRequest carries an optional rejection reason
type RejectRequest struct {
	Reason string `json:"reason" example:"Please add links to your releases"`
}

// AuthResponse is returned when a credential is (re)issued
type AuthResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// ApplyResponse carries a fresh token, or a message when no transition happened
type ApplyResponse struct {
	Token   string        `json:"token,omitempty"`
	User    *UserResponse `json:"user"`
	Message string        `json:"message,omitempty"`
}

// UserEnvelope wraps a single profile
type UserEnvelope struct {
	User *UserResponse `json:"user"`
}

// ApplicationsResponse lists pending artist applications
type ApplicationsResponse struct {
	Items []*UserResponse `json:"items"`
}
