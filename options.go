// Package imagen provides functional options for configuring client behavior.
// These options follow the functional options pattern for clean, composable configuration.
package imagen

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-git/go-billy/v5"

	"github.com/imagenai/imagen-ai-sdk/imagentypes"
)

// WithBaseURL sets the API root URL.
// Use this to target a non-production environment.
func WithBaseURL(baseURL string) imagentypes.Option {
	return func(c *imagentypes.ClientConfig) {
		c.BaseURL = baseURL
	}
}

// WithRequestTimeout bounds each JSON API call.
// It never applies to presigned uploads or downloads; cancel those through
// the operation's context. Default is 30 seconds.
func WithRequestTimeout(timeout time.Duration) imagentypes.Option {
	return func(c *imagentypes.ClientConfig) {
		if timeout > 0 {
			c.RequestTimeout = timeout
		}
	}
}

// WithHTTPClient allows providing a custom HTTP client.
// This gives full control over HTTP behavior including proxies and TLS,
// and applies to API calls and presigned transfers alike.
func WithHTTPClient(client *http.Client) imagentypes.Option {
	return func(c *imagentypes.ClientConfig) {
		c.HTTPClient = client
	}
}

// WithFilesystem sets a custom filesystem implementation for file operations.
// This allows using in-memory filesystems for testing or virtual filesystems.
// If not specified, defaults to the OS filesystem.
func WithFilesystem(filesystem billy.Filesystem) imagentypes.Option {
	return func(c *imagentypes.ClientConfig) {
		c.Filesystem = filesystem
	}
}

// WithLogger sets the structured logger the client emits to.
// If not specified, logging is disabled.
func WithLogger(logger *slog.Logger) imagentypes.Option {
	return func(c *imagentypes.ClientConfig) {
		c.Logger = logger
	}
}

// WithUploadConcurrency sets the maximum number of files uploaded in parallel.
// Default is 5 concurrent uploads.
func WithUploadConcurrency(concurrency int) imagentypes.UploadOption {
	return func(c *imagentypes.UploadConfig) {
		if concurrency > 0 {
			c.Concurrency = concurrency
		}
	}
}

// WithUploadProgress sets a progress callback for upload operations.
// The callback is invoked exactly once per finished file.
func WithUploadProgress(fn imagentypes.ProgressFunc) imagentypes.UploadOption {
	return func(c *imagentypes.UploadConfig) {
		c.Progress = fn
	}
}

// WithDownloadConcurrency sets the maximum number of files downloaded in parallel.
// Default is 5 concurrent downloads.
func WithDownloadConcurrency(concurrency int) imagentypes.DownloadOption {
	return func(c *imagentypes.DownloadConfig) {
		if concurrency > 0 {
			c.Concurrency = concurrency
		}
	}
}

// WithDownloadProgress sets a progress callback for download operations.
// The callback is invoked exactly once per finished file.
func WithDownloadProgress(fn imagentypes.ProgressFunc) imagentypes.DownloadOption {
	return func(c *imagentypes.DownloadConfig) {
		c.Progress = fn
	}
}

// WithDirPerm sets the permission bits used when creating destination
// directories. Default is 0o755.
func WithDirPerm(perm os.FileMode) imagentypes.DownloadOption {
	return func(c *imagentypes.DownloadConfig) {
		if perm != 0 {
			c.DirPerm = perm
		}
	}
}

// WithPollInterval sets the delay before the second status poll.
// Default is 2 seconds.
func WithPollInterval(interval time.Duration) imagentypes.PollOption {
	return func(c *imagentypes.PollConfig) {
		if interval > 0 {
			c.InitialInterval = interval
		}
	}
}

// WithPollMaxInterval caps the grown poll interval.
// Default is 30 seconds.
func WithPollMaxInterval(maxInterval time.Duration) imagentypes.PollOption {
	return func(c *imagentypes.PollConfig) {
		if maxInterval > 0 {
			c.MaxInterval = maxInterval
		}
	}
}

// WithPollMultiplier sets the factor the poll interval grows by after each
// poll. Use 1 for a fixed interval. Default is 1.5.
func WithPollMultiplier(multiplier float64) imagentypes.PollOption {
	return func(c *imagentypes.PollConfig) {
		if multiplier >= 1 {
			c.Multiplier = multiplier
		}
	}
}

// WithPollTimeout bounds the whole wait, measured from its start.
// Default is 30 minutes.
func WithPollTimeout(timeout time.Duration) imagentypes.PollOption {
	return func(c *imagentypes.PollConfig) {
		if timeout > 0 {
			c.Timeout = timeout
		}
	}
}

// WithPhotographyType hints the genre of the project's photos so the
// service can tune its editing model.
func WithPhotographyType(pt imagentypes.PhotographyType) imagentypes.EditOption {
	return func(c *imagentypes.EditConfig) {
		c.PhotographyType = pt
	}
}

// WithEditOptions selects additional editing tools applied on top of the
// profile, such as cropping or straightening.
func WithEditOptions(opts *imagentypes.EditOptions) imagentypes.EditOption {
	return func(c *imagentypes.EditConfig) {
		c.Options = opts
	}
}

// WithProjectName names the project QuickEdit creates.
// If not specified, a unique name is generated.
func WithProjectName(name string) imagentypes.QuickEditOption {
	return func(c *imagentypes.QuickEditConfig) {
		c.ProjectName = name
	}
}

// WithExport also runs the export stage after editing completes, producing
// delivery-ready files alongside the edited ones.
func WithExport(export bool) imagentypes.QuickEditOption {
	return func(c *imagentypes.QuickEditConfig) {
		c.Export = export
	}
}

// WithDownload fetches the edited files to dir once editing completes.
// Exported files, when export is requested too, land in dir/exported.
// An empty dir uses DefaultDownloadDir.
func WithDownload(dir string) imagentypes.QuickEditOption {
	return func(c *imagentypes.QuickEditConfig) {
		c.Download = true
		c.DownloadDir = dir
	}
}

// WithQuickEditPhotographyType hints the photo genre for the QuickEdit run.
func WithQuickEditPhotographyType(pt imagentypes.PhotographyType) imagentypes.QuickEditOption {
	return func(c *imagentypes.QuickEditConfig) {
		c.PhotographyType = pt
	}
}

// WithQuickEditOptions selects additional editing tools for the QuickEdit run.
func WithQuickEditOptions(opts *imagentypes.EditOptions) imagentypes.QuickEditOption {
	return func(c *imagentypes.QuickEditConfig) {
		c.EditOptions = opts
	}
}

// WithQuickEditUpload configures the QuickEdit upload batch.
func WithQuickEditUpload(cfg imagentypes.UploadConfig) imagentypes.QuickEditOption {
	return func(c *imagentypes.QuickEditConfig) {
		c.Upload = cfg
	}
}

// WithQuickEditDownload configures the QuickEdit download batches.
func WithQuickEditDownload(cfg imagentypes.DownloadConfig) imagentypes.QuickEditOption {
	return func(c *imagentypes.QuickEditConfig) {
		c.DownloadCfg = cfg
	}
}

// WithQuickEditPoll configures both QuickEdit job waits.
func WithQuickEditPoll(cfg imagentypes.PollConfig) imagentypes.QuickEditOption {
	return func(c *imagentypes.QuickEditConfig) {
		c.Poll = cfg
	}
}
