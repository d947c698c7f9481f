package codingprofiles

import "errors"

var ErrInvalidInput = errors.New("invalid input")

// CodingProfile links out to a competitive-programming or VCS profile.
type CodingProfile struct {
	ID       string `json:"id"`
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Icon     string `json:"icon"`
	Color    string `json:"color"`
}
