package resumes

import "time"

// Resume is one uploaded resume document. FileData holds the full binary
// content in its encoded text form and is immutable after creation; only
// IsActive is ever mutated.
type Resume struct {
	ID         string
	FileName   string
	FileData   string
	IsActive   bool
	SizeBytes  int64
	PageCount  int
	UploadedAt time.Time
}
