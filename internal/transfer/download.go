package transfer

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"path"

	"github.com/go-git/go-billy/v5"

	"github.com/imagenai/imagen-ai-sdk/errors"
	"github.com/imagenai/imagen-ai-sdk/imagentypes"
	"github.com/imagenai/imagen-ai-sdk/internal/api"
	"github.com/imagenai/imagen-ai-sdk/internal/validation"
)

// Downloader saves files from presigned download links onto a filesystem.
type Downloader struct {
	client api.API
	fs     billy.Filesystem
	logger *slog.Logger
}

// NewDownloader creates a Downloader writing to the given filesystem.
func NewDownloader(client api.API, fs billy.Filesystem, logger *slog.Logger) *Downloader {
	return &Downloader{client: client, fs: fs, logger: logger}
}

// Download fetches every link into destDir through a bounded worker pool.
// Existing files are overwritten. Per-file failures are recorded in the
// summary and do not affect other files; partially written files are removed.
// Successful results carry the local destination path.
func (d *Downloader) Download(
	ctx context.Context,
	links []imagentypes.DownloadLink,
	destDir string,
	cfg imagentypes.DownloadConfig,
) (*imagentypes.TransferSummary, error) {
	if cfg.DirPerm == 0 {
		cfg.DirPerm = imagentypes.DefaultDirPerm
	}

	results := make([]imagentypes.TransferResult, len(links))
	for i, link := range links {
		results[i].File = link.FileName
	}

	if len(links) > 0 {
		if err := d.fs.MkdirAll(destDir, cfg.DirPerm); err != nil {
			return nil, errors.NewError("download", err)
		}
	}

	if d.logger != nil {
		d.logger.InfoContext(ctx, "downloading batch",
			"dest_dir", destDir,
			"files", len(links),
			"concurrency", cfg.Concurrency)
	}

	dispatcher := newProgressDispatcher(len(links), cfg.Progress)
	runErr := runTasks(ctx, cfg.Concurrency, len(links), func(ctx context.Context, i int) {
		name := remoteName(links[i])
		defer dispatcher.notify(name)
		results[i] = d.downloadOne(ctx, links[i], name, destDir)
	})
	dispatcher.stop()

	if runErr != nil {
		markUnstarted(results, "cancelled: "+runErr.Error())
	}

	summary := summarize(results)
	if d.logger != nil {
		d.logger.InfoContext(ctx, "download finished",
			"dest_dir", destDir,
			"successful", summary.Successful,
			"failed", summary.Failed)
	}

	if runErr != nil {
		return summary, errors.NewError("download", runErr)
	}
	return summary, nil
}

// downloadOne streams a single link to its destination file.
func (d *Downloader) downloadOne(
	ctx context.Context,
	link imagentypes.DownloadLink,
	name, destDir string,
) imagentypes.TransferResult {
	destPath, err := validation.DestinationPath(destDir, name)
	if err != nil {
		return d.failure(ctx, name, "destination", err)
	}

	body, _, err := d.client.DownloadFile(ctx, link.DownloadLink)
	if err != nil {
		return d.failure(ctx, name, "download", err)
	}
	defer func() { _ = body.Close() }()

	f, err := d.fs.Create(destPath)
	if err != nil {
		return d.failure(ctx, name, "write", err)
	}

	if _, err := io.Copy(f, body); err != nil {
		_ = f.Close()
		_ = d.fs.Remove(destPath)
		return d.failure(ctx, name, "write", err)
	}
	if err := f.Close(); err != nil {
		_ = d.fs.Remove(destPath)
		return d.failure(ctx, name, "write", err)
	}

	return imagentypes.TransferResult{File: destPath, Success: true}
}

// remoteName resolves the file name for a link, falling back to the last
// path segment of the URL when the listing left the name empty.
func remoteName(link imagentypes.DownloadLink) string {
	if link.FileName != "" {
		return link.FileName
	}
	u, err := url.Parse(link.DownloadLink)
	if err != nil {
		return ""
	}
	base := path.Base(u.Path)
	if base == "." || base == "/" {
		return ""
	}
	return base
}

// failure records a per-file error tagged with the stage it hit.
func (d *Downloader) failure(ctx context.Context, name, stage string, err error) imagentypes.TransferResult {
	if d.logger != nil {
		d.logger.WarnContext(ctx, "file download failed",
			"file", name,
			"stage", stage,
			"error", err)
	}
	return imagentypes.TransferResult{File: name, Error: stage + ": " + err.Error()}
}
