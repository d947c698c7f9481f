package skills

import (
	"errors"
	"time"
)

var (
	ErrNotFound     = errors.New("skill group not found")
	ErrInvalidInput = errors.New("invalid input")
)

// SkillGroup is a titled bundle of skill tags.
type SkillGroup struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Skills    []string  `json:"skills"`
	CreatedAt time.Time `json:"createdAt"`
}
