package resumes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"portfolio-backend/internal/payload"
	"portfolio-backend/internal/shared/util"
)

// ProfileNameReader supplies the configured profile name for download file
// naming. An empty name is fine; the derivation falls back to a placeholder.
type ProfileNameReader interface {
	ProfileName(ctx context.Context) (string, error)
}

// Service contains business logic for the resume store.
type Service struct {
	Repo    Repo
	Profile ProfileNameReader
}

// List returns all resumes, newest first.
func (s *Service) List(ctx context.Context) ([]Resume, error) {
	return s.Repo.List(ctx)
}

// Create validates and persists a new resume. The encoded payload is
// decoded once up front: a payload that cannot round-trip is rejected
// before anything is written.
func (s *Service) Create(ctx context.Context, fileName, fileData string, isActive bool) (Resume, error) {
	fileName = strings.TrimSpace(fileName)
	if fileName == "" {
		return Resume{}, fmt.Errorf("%w: fileName is required", ErrInvalidInput)
	}
	if strings.TrimSpace(fileData) == "" {
		return Resume{}, fmt.Errorf("%w: fileData is required", ErrInvalidInput)
	}

	raw, err := payload.Decode(fileData)
	if err != nil {
		return Resume{}, fmt.Errorf("%w: fileData is not valid base64", ErrInvalidInput)
	}
	info, err := payload.Inspect(raw)
	if err != nil {
		return Resume{}, fmt.Errorf("%w: fileData is not a PDF", ErrInvalidInput)
	}

	res := Resume{
		ID:         uuid.NewString(),
		FileName:   fileName,
		FileData:   fileData,
		IsActive:   isActive,
		SizeBytes:  info.SizeBytes,
		PageCount:  info.PageCount,
		UploadedAt: time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, res, isActive); err != nil {
		return Resume{}, err
	}
	return res, nil
}

// Activate makes the resume with the given id the single active one.
func (s *Service) Activate(ctx context.Context, id string) (Resume, error) {
	if strings.TrimSpace(id) == "" {
		return Resume{}, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	return s.Repo.Activate(ctx, id)
}

// Delete removes a resume. Deleting the active resume leaves no active
// resume; nothing is auto-promoted.
func (s *Service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	return s.Repo.Delete(ctx, id)
}

// ResolveCurrent selects the resume to serve: the active one, else the
// most recent upload, else ErrNotFound on an empty store.
func (s *Service) ResolveCurrent(ctx context.Context) (Resume, error) {
	res, err := s.Repo.GetActive(ctx)
	if err == nil {
		return res, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return Resume{}, err
	}
	return s.Repo.GetLatest(ctx)
}

// Download resolves the current resume and reconstructs its binary
// payload plus the attachment filename derived from the profile name.
func (s *Service) Download(ctx context.Context) (Resume, string, []byte, error) {
	res, err := s.ResolveCurrent(ctx)
	if err != nil {
		return Resume{}, "", nil, err
	}
	if strings.TrimSpace(res.FileData) == "" {
		return Resume{}, "", nil, ErrNotFound
	}

	raw, err := payload.Decode(res.FileData)
	if err != nil {
		return Resume{}, "", nil, err
	}

	profileName := ""
	if s.Profile != nil {
		if name, err := s.Profile.ProfileName(ctx); err == nil {
			profileName = name
		}
	}
	return res, util.DownloadFileName(profileName), raw, nil
}
