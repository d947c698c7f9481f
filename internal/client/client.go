// Package client is a thin HTTP client for the portfolio API, used by the
// portfolioctl admin tool. It never caches: callers re-fetch the resume
// list after every mutation instead of merging locally.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"
)

// Client talks to a running portfolio API server.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// New constructs a Client for the given base URL.
func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Resume mirrors the API's resume representation.
type Resume struct {
	ID         string    `json:"id"`
	FileName   string    `json:"fileName"`
	FileData   string    `json:"fileData"`
	IsActive   bool      `json:"isActive"`
	SizeBytes  int64     `json:"sizeBytes"`
	PageCount  int       `json:"pageCount"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// APIError is a non-2xx response decoded from the server's error envelope.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d (%s): %s", e.Status, e.Code, e.Message)
}

// ListResumes fetches all resumes, newest first.
func (c *Client) ListResumes(ctx context.Context) ([]Resume, error) {
	var out []Resume
	if err := c.do(ctx, http.MethodGet, "/api/resumes", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UploadResume creates a new resume from its encoded text form.
func (c *Client) UploadResume(ctx context.Context, fileName, fileData string, activate bool) (Resume, error) {
	body := map[string]any{
		"fileName": fileName,
		"fileData": fileData,
		"isActive": activate,
	}
	var out Resume
	if err := c.do(ctx, http.MethodPost, "/api/resumes", body, &out); err != nil {
		return Resume{}, err
	}
	return out, nil
}

// ActivateResume makes the resume with the given id the active one.
func (c *Client) ActivateResume(ctx context.Context, id string) (Resume, error) {
	var out Resume
	if err := c.do(ctx, http.MethodPatch, "/api/resumes/"+id+"/active", nil, &out); err != nil {
		return Resume{}, err
	}
	return out, nil
}

// DeleteResume removes a resume. The server treats unknown ids as success.
func (c *Client) DeleteResume(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/resumes/"+id, nil, nil)
}

// DownloadResume fetches the current resume as binary PDF bytes plus the
// server-suggested filename.
func (c *Client) DownloadResume(ctx context.Context) (string, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/api/resume/download", nil)
	if err != nil {
		return "", nil, err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", nil, decodeAPIError(resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", nil, err
	}

	fileName := "resume.pdf"
	if cd := resp.Header.Get("Content-Disposition"); cd != "" {
		if _, params, err := mime.ParseMediaType(cd); err == nil && params["filename"] != "" {
			fileName = params["filename"]
		}
	}
	return fileName, data, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode, Code: "unknown"}
	var envelope struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.Error.Code != "" {
		apiErr.Code = envelope.Error.Code
		apiErr.Message = envelope.Error.Message
	}
	return apiErr
}
