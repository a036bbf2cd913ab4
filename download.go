// Package imagen provides the batch download operation.
package imagen

import (
	"context"

	"github.com/imagenai/imagen-ai-sdk/imagentypes"
	"github.com/imagenai/imagen-ai-sdk/internal/transfer"
)

// DownloadFiles fetches every link into destDir, which is created if needed.
// An empty destDir uses DefaultDownloadDir. Existing files are overwritten.
//
// Like UploadImages this runs a bounded concurrent batch where a single
// failed file never aborts the rest; per-file outcomes land in the summary,
// whose successful entries carry the local destination paths.
//
// Example:
//
//	summary, err := client.DownloadFiles(ctx, links, "edited",
//	    imagen.WithDownloadProgress(func(done, total int, file string) {
//	        fmt.Printf("%d/%d %s\n", done, total, file)
//	    }),
//	)
func (c *Client) DownloadFiles(
	ctx context.Context,
	links []imagentypes.DownloadLink,
	destDir string,
	opts ...imagentypes.DownloadOption,
) (*imagentypes.TransferSummary, error) {
	if destDir == "" {
		destDir = imagentypes.DefaultDownloadDir
	}

	config := imagentypes.DefaultDownloadConfig()
	for _, opt := range opts {
		opt(&config)
	}

	downloader := transfer.NewDownloader(c.api, c.filesystem(), c.log())
	return downloader.Download(ctx, links, destDir, config)
}
