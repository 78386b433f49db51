// Package upload posts product images to Cloudinary's unsigned upload
// endpoint and returns the hosted URL. The rest of the app only ever stores
// that URL string.
package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

var ErrNotConfigured = errors.New("cloudinary is not configured")

type Cloudinary struct {
	CloudName string
	Preset    string
	Client    *http.Client
}

func NewCloudinary(cloudName, preset string) *Cloudinary {
	return &Cloudinary{
		CloudName: cloudName,
		Preset:    preset,
		Client:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Enabled reports whether both Cloudinary settings are present.
func (c *Cloudinary) Enabled() bool { return c.CloudName != "" && c.Preset != "" }

// Image uploads one image and returns its secure URL.
func (c *Cloudinary) Image(ctx context.Context, filename string, r io.Reader) (string, error) {
	if !c.Enabled() {
		return "", ErrNotConfigured
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", err
	}
	if err := mw.WriteField("upload_preset", c.Preset); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	url := fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/image/upload", c.CloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("cloudinary upload failed: %s", resp.Status)
	}

	var out struct {
		SecureURL string `json:"secure_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if out.SecureURL == "" {
		return "", errors.New("cloudinary response missing secure_url")
	}
	return out.SecureURL, nil
}
