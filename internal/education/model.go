package education

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("education not found")

// Education is the single education-and-about document.
type Education struct {
	ID            string          `json:"id"`
	CoreObjective string          `json:"coreObjective"`
	Academic      []AcademicEntry `json:"academic"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// AcademicEntry is one row of academic history.
type AcademicEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
	Score       string `json:"score"`
}

// Empty is the default document served before anything is saved.
func Empty() Education {
	return Education{CoreObjective: "", Academic: []AcademicEntry{}}
}
