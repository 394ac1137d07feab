package mapper

import "current-backend/internal/features/user/models"

// ToUserResponse maps a stored profile to its public view. Index bookkeeping
// stays server-side.
func ToUserResponse(p *models.UserProfile) *models.UserResponse {
	if p == nil {
		return nil
	}
	return &models.UserResponse{
		SubjectID:             p.SubjectID,
		Email:                 p.Email,
		DisplayName:           p.DisplayName,
		PictureURL:            p.PictureURL,
		Role:                  p.Role,
		ArtistStatus:          p.ArtistStatus,
		ArtistApplication:     p.ArtistApplication,
		ArtistRejectionReason: p.ArtistRejectionReason,
		CreatedAt:             p.CreatedAt,
		UpdatedAt:             p.UpdatedAt,
		LastLoginAt:           p.LastLoginAt,
	}
}

// ToUserResponses maps a list, never returning nil.
func ToUserResponses(profiles []*models.UserProfile) []*models.UserResponse {
	out := make([]*models.UserResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, ToUserResponse(p))
	}
	return out
}
