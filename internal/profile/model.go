package profile

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("profile not found")

// Profile is the single personal-details document for the portfolio owner.
type Profile struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Role        string    `json:"role"`
	Email       string    `json:"email"`
	Location    string    `json:"location"`
	Bio         string    `json:"bio"`
	AvatarURL   string    `json:"avatarUrl"`
	GithubURL   string    `json:"githubUrl"`
	LinkedinURL string    `json:"linkedinUrl"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
