package media

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Config configures the hosted image API. Uploads use an unsigned preset;
// folder deletes authenticate with the API key/secret pair.
type Config struct {
	BaseURL      string
	CloudName    string
	UploadPreset string
	APIKey       string
	APISecret    string
}

type CloudinaryProvider struct {
	cfg    Config
	client *http.Client
	log    *zap.Logger
}

func NewCloudinary(cfg Config, log *zap.Logger) *CloudinaryProvider {
	return &CloudinaryProvider{
		cfg:    cfg,
		client: &http.Client{Timeout: 30 * time.Second},
		log:    log.Named("media.cloudinary"),
	}
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (p *CloudinaryProvider) Upload(ctx context.Context, file io.Reader, filename, folder string) (string, error) {
	var body strings.Builder
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", err
	}
	if err := writer.WriteField("upload_preset", p.cfg.UploadPreset); err != nil {
		return "", err
	}
	if err := writer.WriteField("folder", folder); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("%s/%s/upload", p.cfg.BaseURL, p.cfg.CloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(body.String()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	res, err := p.client.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	var parsed uploadResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode upload response: %w", err)
	}
	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("upload failed (%d): %s", res.StatusCode, parsed.Error.Message)
	}
	if parsed.SecureURL == "" {
		return "", fmt.Errorf("upload response missing secure_url")
	}
	return parsed.SecureURL, nil
}

func (p *CloudinaryProvider) DeleteFolder(ctx context.Context, folder string) error {
	endpoint := fmt.Sprintf("%s/%s/resources/image/upload", p.cfg.BaseURL, p.cfg.CloudName)
	form := url.Values{"prefix": {folder}}

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(p.cfg.APIKey, p.cfg.APISecret)

	res, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	_, _ = io.Copy(io.Discard, res.Body)

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("folder delete failed (%d)", res.StatusCode)
	}
	return nil
}
