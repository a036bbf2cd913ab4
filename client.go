// Package imagen provides client initialization and configuration.
//
// The Client is the entry point for every remote photo-editing operation,
// from creating a project through uploading, editing, exporting and
// downloading the results.
package imagen

import (
	"log/slog"
	"sync"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/imagenai/imagen-ai-sdk/errors"
	"github.com/imagenai/imagen-ai-sdk/imagentypes"
	"github.com/imagenai/imagen-ai-sdk/internal/api"
	"github.com/imagenai/imagen-ai-sdk/internal/validation"
)

// Client represents an Imagen AI client with configurable options.
// It provides thread-safe access to the remote editing workflow with
// bounded transfer concurrency and structured logging.
type Client struct {
	// api is the transport every remote call goes through
	api api.API

	// transport holds the concrete HTTP transport when the client owns one;
	// nil when the client was built around a custom API implementation
	transport *api.Client

	// logger receives structured SDK logs; nil disables logging
	logger *slog.Logger

	// mu protects concurrent access to client configuration
	mu sync.RWMutex

	// fs is the filesystem abstraction for file operations
	fs billy.Filesystem
}

// New creates a new Imagen AI client with the provided options.
// The API key is issued per account in the Imagen AI application and is
// required; everything else has working defaults.
//
// Example:
//
//	client, err := imagen.New(apiKey,
//	    imagen.WithLogger(slog.Default()),
//	    imagen.WithRequestTimeout(time.Minute),
//	)
func New(apiKey string, opts ...imagentypes.Option) (*Client, error) {
	if err := validation.APIKey(apiKey); err != nil {
		return nil, errors.NewError("new", err)
	}

	cfg := &imagentypes.ClientConfig{
		BaseURL:        imagentypes.DefaultBaseURL,
		RequestTimeout: imagentypes.DefaultRequestTimeout,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	// Initialize filesystem - use provided one or default to OS filesystem
	filesystem := cfg.Filesystem
	if filesystem == nil {
		filesystem = osfs.New("/")
	}

	transport := api.New(apiKey, cfg.BaseURL, cfg.RequestTimeout, cfg.HTTPClient, cfg.Logger)

	return &Client{
		api:       transport,
		transport: transport,
		logger:    cfg.Logger,
		fs:        filesystem,
	}, nil
}

// NewWithAPI creates a client around a custom API implementation.
// This is primarily used for testing with mocked transports.
func NewWithAPI(apiClient api.API) *Client {
	return &Client{
		api: apiClient,
		fs:  osfs.New("/"),
	}
}

// SetFilesystem sets the filesystem implementation for the client.
// This is useful for testing or when the filesystem needs to be changed after creation.
func (c *Client) SetFilesystem(filesystem billy.Filesystem) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fs = filesystem
}

// SetLogger sets the logger used for all subsequent operations.
func (c *Client) SetLogger(logger *slog.Logger) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logger = logger
}

// filesystem returns the current filesystem under the read lock.
func (c *Client) filesystem() billy.Filesystem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.fs
}

// log returns the current logger under the read lock.
func (c *Client) log() *slog.Logger {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.logger
}

// Close releases idle connections held by the client's transport.
func (c *Client) Close() error {
	if c.transport != nil {
		c.transport.CloseIdleConnections()
	}
	return nil
}
