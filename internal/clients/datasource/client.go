// Package datasource fetches the quiz dataset from a file or an http(s) URL
package datasource

//go:generate mockgen -destination=mock/mock_client.go -package=datasourcemock github.com/celala99/cela-geo-quest/internal/clients/datasource Client

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/celala99/cela-geo-quest/internal/dataset"
	"github.com/celala99/cela-geo-quest/internal/entities"
	"github.com/celala99/cela-geo-quest/internal/errors"
)

// DefaultMaxSize caps the dataset document size when Config.MaxSize is unset
const DefaultMaxSize = 16 << 20

// Client loads the dataset once at startup
type Client interface {
	// Load fetches, validates and normalizes the dataset
	Load(ctx context.Context) (*entities.Dataset, error)
}

// Config holds the settings for the dataset client
type Config struct {
	// Source is a file path or an http(s) URL
	Source string

	// HTTPClient is optional. A client with Timeout is built when nil.
	HTTPClient *http.Client
	Timeout    time.Duration

	// MaxSize is the largest accepted document in bytes. Zero means DefaultMaxSize.
	MaxSize int64
}

// Validate ensures the configuration is usable
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("Source", c.Source, vb)
	if c.HTTPClient == nil && c.Timeout <= 0 {
		vb.Field("Timeout", "must be positive when no HTTPClient is given")
	}
	if c.MaxSize < 0 {
		vb.Field("MaxSize", "must not be negative")
	}

	return vb.Build()
}

type client struct {
	source     string
	httpClient *http.Client
	maxSize    int64
}

// New creates a dataset client
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	maxSize := cfg.MaxSize
	if maxSize == 0 {
		maxSize = DefaultMaxSize
	}

	return &client{
		source:     cfg.Source,
		httpClient: httpClient,
		maxSize:    maxSize,
	}, nil
}

func (c *client) Load(ctx context.Context) (*entities.Dataset, error) {
	data, err := c.fetch(ctx)
	if err != nil {
		return nil, err
	}

	ds, err := dataset.Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "dataset from %s", c.source)
	}

	slog.Info("Dataset loaded",
		"source", c.source,
		"version", ds.Version,
		"regions", len(ds.Monsters),
	)

	return ds, nil
}

func (c *client) fetch(ctx context.Context) ([]byte, error) {
	if isRemote(c.source) {
		return c.fetchRemote(ctx)
	}

	f, err := os.Open(c.source)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound("dataset file not found").WithMeta("source", c.source)
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read dataset file")
	}
	defer func() {
		_ = f.Close()
	}()

	return c.readLimited(f, "failed to read dataset file")
}

func (c *client) fetchRemote(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.source, nil)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid dataset URL")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to fetch dataset")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Unavailable(fmt.Sprintf("dataset fetch returned %d", resp.StatusCode)).
			WithMeta("source", c.source)
	}

	return c.readLimited(resp.Body, "failed to read dataset response")
}

// readLimited reads one byte past maxSize so an oversized document is
// rejected instead of silently truncated.
func (c *client) readLimited(r io.Reader, readFailure string) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, c.maxSize+1))
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, readFailure)
	}
	if int64(len(data)) > c.maxSize {
		return nil, errors.InvalidDatasetf("dataset too large, limit is %d bytes", c.maxSize).
			WithMeta("source", c.source)
	}
	return data, nil
}

func isRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}
