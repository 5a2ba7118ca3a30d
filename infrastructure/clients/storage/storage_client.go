package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/go-querystring/query"

	"youtube-lite/domain/repository"
	"youtube-lite/infrastructure/logger"
)

// Client uploads media through the storage provider's resumable protocol:
// an init request opens an upload session, then the payload is streamed in
// Content-Range chunks. Progress is reported from bytes actually sent.
type Client struct {
	baseURL    string
	bucket     string
	apiKey     string
	chunkSize  int64
	httpClient *http.Client
}

// Config represents object-storage configuration
type Config struct {
	BaseURL   string `json:"base_url"`
	Bucket    string `json:"bucket"`
	APIKey    string `json:"api_key"`
	ChunkSize int64  `json:"chunk_size"`
}

func NewStorageClient(config *Config) (repository.IMediaStorage, error) {
	if config.BaseURL == "" || config.Bucket == "" {
		return nil, fmt.Errorf("storage base URL and bucket are required")
	}
	chunkSize := config.ChunkSize
	if chunkSize <= 0 {
		chunkSize = 8 << 20
	}
	return &Client{
		baseURL:   config.BaseURL,
		bucket:    config.Bucket,
		apiKey:    config.APIKey,
		chunkSize: chunkSize,
		httpClient: &http.Client{
			Timeout: 5 * time.Minute,
		},
	}, nil
}

type initParams struct {
	UploadType string `url:"uploadType"`
	Name       string `url:"name"`
	Kind       string `url:"kind"`
	Key        string `url:"key,omitempty"`
}

func (c *Client) UploadAsset(ctx context.Context, name, kind string, r io.Reader, size int64, onProgress repository.ProgressFunc) (string, error) {
	sessionURL, err := c.initSession(ctx, name, kind, size)
	if err != nil {
		return "", err
	}

	var sent int64
	buf := make([]byte, c.chunkSize)
	for sent < size {
		n, readErr := io.ReadFull(r, buf)
		if readErr != nil && readErr != io.ErrUnexpectedEOF && readErr != io.EOF {
			return "", fmt.Errorf("failed to read upload chunk: %w", readErr)
		}
		if n == 0 {
			break
		}

		publicURL, err := c.putChunk(ctx, sessionURL, buf[:n], sent, size)
		if err != nil {
			return "", err
		}
		sent += int64(n)
		if onProgress != nil {
			onProgress(int(sent * 100 / size))
		}
		if sent >= size {
			if publicURL == "" {
				publicURL = fmt.Sprintf("%s/%s/%s", c.baseURL, c.bucket, name)
			}
			return publicURL, nil
		}
	}
	return "", fmt.Errorf("upload ended before %d bytes were sent", size)
}

func (c *Client) initSession(ctx context.Context, name, kind string, size int64) (string, error) {
	params, err := query.Values(initParams{
		UploadType: "resumable",
		Name:       name,
		Kind:       kind,
		Key:        c.apiKey,
	})
	if err != nil {
		return "", err
	}
	initURL := fmt.Sprintf("%s/upload/%s?%s", c.baseURL, c.bucket, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, initURL, bytes.NewReader(nil))
	if err != nil {
		return "", err
	}
	req.Header.Set("X-Upload-Content-Length", fmt.Sprintf("%d", size))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to open upload session: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("upload session rejected: %s: %s", resp.Status, string(body))
	}
	sessionURL := resp.Header.Get("Location")
	if sessionURL == "" {
		return "", fmt.Errorf("upload session response missing Location header")
	}
	return sessionURL, nil
}

// putChunk sends one Content-Range chunk. The final chunk's response carries
// the public URL in the Location header.
func (c *Client) putChunk(ctx context.Context, sessionURL string, chunk []byte, offset, total int64) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, sessionURL, bytes.NewReader(chunk))
	if err != nil {
		return "", err
	}
	last := offset + int64(len(chunk)) - 1
	req.Header.Set("Content-Range", fmt.Sprintf("bytes %d-%d/%d", offset, last, total))
	req.ContentLength = int64(len(chunk))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to upload chunk at %d: %w", offset, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		return resp.Header.Get("Location"), nil
	case http.StatusPermanentRedirect, http.StatusAccepted:
		// Provider acknowledged an intermediate chunk.
		return "", nil
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		logger.GetLogger().WithField("status", resp.Status).Error("Chunk upload failed")
		return "", fmt.Errorf("chunk upload failed: %s: %s", resp.Status, string(body))
	}
}
