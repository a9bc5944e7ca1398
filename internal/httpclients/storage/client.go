// Package storage talks to the file-storage service. Uploads are
// two-phase: the backend issues a signed URL here, the browser PUTs
// the raw bytes to it, then records the attachment metadata.
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/samandr77/stroika/internal/entity"
)

const (
	requestTimeout = time.Second * 10
	retryMax       = 3
)

type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(baseURL string) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = retryMax
	retryClient.HTTPClient.Timeout = requestTimeout
	retryClient.Logger = nil

	return &Client{
		httpClient: retryClient.StandardClient(),
		baseURL:    baseURL,
	}
}

type UploadTarget struct {
	UploadURL  string `json:"upload_url"`
	StorageRef string `json:"storage_ref"`
}

type signURLRequest struct {
	FileName string `json:"file_name"`
	MimeType string `json:"mime_type"`
}

// IssueUploadURL asks the storage service for a signed URL the client
// can PUT the file bytes to.
func (c *Client) IssueUploadURL(ctx context.Context, fileName, mimeType string) (UploadTarget, error) {
	body, err := json.Marshal(signURLRequest{
		FileName: fileName,
		MimeType: mimeType,
	})
	if err != nil {
		return UploadTarget{}, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/upload-urls", bytes.NewReader(body))
	if err != nil {
		return UploadTarget{}, err
	}

	req.Header.Set("Content-Type", "application/json")
	setAuthorization(ctx, req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return UploadTarget{}, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return UploadTarget{}, fmt.Errorf("unexpected code %d", resp.StatusCode)
	}

	var target UploadTarget

	err = json.NewDecoder(resp.Body).Decode(&target)
	if err != nil {
		return UploadTarget{}, fmt.Errorf("decode response: %w", err)
	}

	return target, nil
}

// setAuthorization forwards the caller's bearer token so the storage
// service can attribute the operation. Background callers carry no
// token and the header is simply omitted.
func setAuthorization(ctx context.Context, req *http.Request) {
	token, err := entity.TokenFromContext(ctx)
	if err != nil {
		return
	}

	req.Header.Set("Authorization", "Bearer "+token)
}

// DeleteObject removes the stored object behind an attachment.
func (c *Client) DeleteObject(ctx context.Context, storageRef string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete,
		c.baseURL+"/v1/objects/"+storageRef, nil)
	if err != nil {
		return err
	}

	setAuthorization(ctx, req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNotFound {
		return fmt.Errorf("unexpected code %d", resp.StatusCode)
	}

	return nil
}
