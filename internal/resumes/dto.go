package resumes

import "time"

// ResumeResponse is the outward-facing representation of a resume.
type ResumeResponse struct {
	ID         string    `json:"id"`
	FileName   string    `json:"fileName"`
	FileData   string    `json:"fileData"`
	IsActive   bool      `json:"isActive"`
	SizeBytes  int64     `json:"sizeBytes"`
	PageCount  int       `json:"pageCount"`
	UploadedAt time.Time `json:"uploadedAt"`
}

func toResponse(r Resume) ResumeResponse {
	return ResumeResponse{
		ID:         r.ID,
		FileName:   r.FileName,
		FileData:   r.FileData,
		IsActive:   r.IsActive,
		SizeBytes:  r.SizeBytes,
		PageCount:  r.PageCount,
		UploadedAt: r.UploadedAt,
	}
}
