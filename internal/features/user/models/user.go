package models

import (
	"encoding/json"
	"strings"
	"time"
)

type Role string

const (
	RoleListener Role = "listener"
	RoleArtist   Role = "artist"
	RoleAdmin    Role = "admin"
)

// CanPublish reports whether the role may upload tracks.
func (r Role) CanPublish() bool {
	return r == RoleArtist || r == RoleAdmin
}

// ArtistStatus tracks the artist application lifecycle. The zero value means
// no application was ever submitted and is encoded as JSON null.
type ArtistStatus string

const (
	ArtistStatusNone     ArtistStatus = ""
	ArtistStatusPending  ArtistStatus = "pending"
	ArtistStatusApproved ArtistStatus = "approved"
	ArtistStatusRejected ArtistStatus = "rejected"
)

func (s ArtistStatus) MarshalJSON() ([]byte, error) {
	if s == ArtistStatusNone {
		return []byte("null"), nil
	}
	return json.Marshal(string(s))
}

func (s *ArtistStatus) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = ArtistStatusNone
		return nil
	}
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*s = ArtistStatus(v)
	return nil
}

// DefaultRejectionReason is stored when an admin rejects without a reason.
const DefaultRejectionReason = "Not approved"

// ArtistApplication is the most recent application a user submitted.
type ArtistApplication struct {
	DisplayName string    `json:"displayName" example:"DJ Test"`
	Bio         string    `json:"bio" example:"Bedroom producer from Lisbon"`
	Links       string    `json:"links" example:"https://soundcloud.com/djtest"`
	Genres      string    `json:"genres,omitempty" example:"house, techno"`
	Location    string    `json:"location,omitempty" example:"Lisbon"`
	FullName    string    `json:"fullName,omitempty" example:"Test Testerson"`
	SubmittedAt time.Time `json:"submittedAt" example:"2026-03-15T14:30:00Z"`
}

// UserProfile is the stored record for one authenticated subject.
type UserProfile struct {
	SubjectID             string             `json:"sub"`
	Email                 string             `json:"email"`
	DisplayName           string             `json:"name"`
	PictureURL            string             `json:"picture"`
	Role                  Role               `json:"role"`
	ArtistStatus          ArtistStatus       `json:"artistStatus"`
	ArtistApplication     *ArtistApplication `json:"artistApplication"`
	ArtistRejectionReason string             `json:"artistRejectionReason,omitempty"`
	PendingKey            string             `json:"pendingKey,omitempty"`
	CreatedAt             time.Time          `json:"createdAt"`
	UpdatedAt             time.Time          `json:"updatedAt"`
	LastLoginAt           time.Time          `json:"lastLoginAt"`
}

// IsPending reports whether the profile awaits artist review.
func (p *UserProfile) IsPending() bool {
	return p.ArtistStatus == ArtistStatusPending
}

// AdminAllowList holds lowercased admin email addresses.
type AdminAllowList map[string]struct{}

func NewAdminAllowList(emails []string) AdminAllowList {
	list := make(AdminAllowList, len(emails))
	for _, e := range emails {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			list[e] = struct{}{}
		}
	}
	return list
}

func (l AdminAllowList) Contains(email string) bool {
	_, ok := l[strings.ToLower(strings.TrimSpace(email))]
	return ok
}

// ResolveRole computes the role granted on login. Allow-listed addresses are
// always admin; otherwise only an earned artist role survives.
func (l AdminAllowList) ResolveRole(prior Role, email string) Role {
	if l.Contains(email) {
		return RoleAdmin
	}
	if Role(strings.ToLower(string(prior))) == RoleArtist {
		return RoleArtist
	}
	return RoleListener
}

// IdentityClaims are the identity-provider fields merged into a profile on login.
type IdentityClaims struct {
	SubjectID  string
	Email      string
	Name       string
	PictureURL string
}
