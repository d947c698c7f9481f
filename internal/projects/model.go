package projects

import (
	"errors"
	"time"
)

var (
	ErrNotFound     = errors.New("project not found")
	ErrInvalidInput = errors.New("invalid input")
)

// Project is one portfolio project card.
type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	TechStack   []string  `json:"techStack"`
	GithubURL   string    `json:"githubUrl"`
	LiveURL     string    `json:"liveUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}
