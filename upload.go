// Package imagen provides the batch upload operation.
package imagen

import (
	"context"

	"github.com/imagenai/imagen-ai-sdk/errors"
	"github.com/imagenai/imagen-ai-sdk/imagentypes"
	"github.com/imagenai/imagen-ai-sdk/internal/transfer"
	"github.com/imagenai/imagen-ai-sdk/internal/validation"
)

// UploadImages uploads the local files at paths into the project.
// Files are fingerprinted with MD5, assigned presigned upload destinations,
// and streamed concurrently up to the configured concurrency bound.
//
// A single failed file never aborts the batch: its failure is recorded in
// the returned summary and the remaining files proceed. The summary's
// Results preserve submission order regardless of completion order.
//
// On context cancellation the partial summary is returned alongside the
// error; files that never started are marked as cancelled.
//
// Returns:
//   - *TransferSummary: Per-file outcomes plus success/failure counts
//   - error: Invalid input or cancellation; per-file failures are not errors
//
// Example:
//
//	summary, err := client.UploadImages(ctx, projectUUID, paths,
//	    imagen.WithUploadConcurrency(8),
//	    imagen.WithUploadProgress(func(done, total int, file string) {
//	        fmt.Printf("%d/%d %s\n", done, total, file)
//	    }),
//	)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("uploaded %d of %d\n", summary.Successful, summary.Total)
func (c *Client) UploadImages(
	ctx context.Context,
	projectUUID string,
	paths []string,
	opts ...imagentypes.UploadOption,
) (*imagentypes.TransferSummary, error) {
	if err := validation.ProjectUUID(projectUUID); err != nil {
		return nil, errors.NewError("upload", err)
	}
	if err := validation.Batch(paths); err != nil {
		return nil, errors.NewProjectError("upload", projectUUID, err)
	}

	config := imagentypes.DefaultUploadConfig()
	for _, opt := range opts {
		opt(&config)
	}

	uploader := transfer.NewUploader(c.api, c.filesystem(), c.log())
	return uploader.Upload(ctx, projectUUID, paths, config)
}
