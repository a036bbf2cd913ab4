package transfer

import (
	"context"
	"crypto/md5"
	"encoding/base64"
	"encoding/hex"
	"io"
	"log/slog"
	"mime"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-git/go-billy/v5"

	"github.com/imagenai/imagen-ai-sdk/errors"
	"github.com/imagenai/imagen-ai-sdk/imagentypes"
	"github.com/imagenai/imagen-ai-sdk/internal/api"
)

// sniffLen is how many leading bytes feed content type detection.
const sniffLen = 512

// Uploader sends local photos to a project's presigned upload destinations.
type Uploader struct {
	client api.API
	fs     billy.Filesystem
	logger *slog.Logger
}

// NewUploader creates an Uploader reading from the given filesystem.
func NewUploader(client api.API, fs billy.Filesystem, logger *slog.Logger) *Uploader {
	return &Uploader{client: client, fs: fs, logger: logger}
}

// fileFingerprint describes a local file before upload.
type fileFingerprint struct {
	md5Hex      string
	md5B64      string
	contentType string
	size        int64
}

// Upload transfers the files at paths into the project. Files are processed
// by a bounded worker pool; each file independently goes through fingerprint,
// link request and streaming PUT. Per-file failures are recorded in the
// summary and do not affect other files. The summary lists results in the
// same order as paths.
//
// A non-nil error is returned only for batch-level problems such as context
// cancellation; the partial summary is still returned alongside it.
func (u *Uploader) Upload(
	ctx context.Context,
	projectUUID string,
	paths []string,
	cfg imagentypes.UploadConfig,
) (*imagentypes.TransferSummary, error) {
	results := make([]imagentypes.TransferResult, len(paths))
	for i, path := range paths {
		results[i].File = path
	}

	if u.logger != nil {
		u.logger.InfoContext(ctx, "uploading batch",
			"project_uuid", projectUUID,
			"files", len(paths),
			"concurrency", cfg.Concurrency)
	}

	dispatcher := newProgressDispatcher(len(paths), cfg.Progress)
	runErr := runTasks(ctx, cfg.Concurrency, len(paths), func(ctx context.Context, i int) {
		defer dispatcher.notify(paths[i])
		results[i] = u.uploadOne(ctx, projectUUID, paths[i])
	})
	dispatcher.stop()

	if runErr != nil {
		markUnstarted(results, "cancelled: "+runErr.Error())
	}

	summary := summarize(results)
	if u.logger != nil {
		u.logger.InfoContext(ctx, "upload finished",
			"project_uuid", projectUUID,
			"successful", summary.Successful,
			"failed", summary.Failed)
	}

	if runErr != nil {
		return summary, errors.NewProjectError("upload", projectUUID, runErr)
	}
	return summary, nil
}

// uploadOne runs the full pipeline for a single file.
func (u *Uploader) uploadOne(ctx context.Context, projectUUID, path string) imagentypes.TransferResult {
	fileName := filepath.Base(path)

	fp, err := u.fingerprint(path)
	if err != nil {
		return u.failure(ctx, path, "fingerprint", err)
	}

	links, err := u.client.GetUploadLinks(ctx, projectUUID, []imagentypes.FileInfo{
		{FileName: fileName, MD5: fp.md5Hex},
	})
	if err != nil {
		return u.failure(ctx, path, "presign", err)
	}
	if len(links) == 0 || links[0].UploadLink == "" {
		return u.failure(ctx, path, "presign", errors.NewError("upload", errors.ErrRequestFailed).
			WithMessage("no upload link returned"))
	}

	f, err := u.fs.Open(path)
	if err != nil {
		return u.failure(ctx, path, "upload", err)
	}
	defer func() { _ = f.Close() }()

	err = u.client.UploadFile(ctx, links[0].UploadLink, f, fp.size, fp.contentType, fp.md5B64)
	if err != nil {
		return u.failure(ctx, path, "upload", err)
	}

	return imagentypes.TransferResult{File: path, Success: true}
}

// fingerprint hashes the file and detects its content type in one pass.
func (u *Uploader) fingerprint(path string) (fileFingerprint, error) {
	f, err := u.fs.Open(path)
	if err != nil {
		return fileFingerprint{}, err
	}
	defer func() { _ = f.Close() }()

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return fileFingerprint{}, err
	}
	head = head[:n]

	hasher := md5.New()
	_, _ = hasher.Write(head)
	rest, err := io.Copy(hasher, f)
	if err != nil {
		return fileFingerprint{}, err
	}
	sum := hasher.Sum(nil)

	contentType := mimetype.Detect(head).String()
	if contentType == "application/octet-stream" {
		if byExt := mime.TypeByExtension(filepath.Ext(path)); byExt != "" {
			contentType = byExt
		}
	}

	return fileFingerprint{
		md5Hex:      hex.EncodeToString(sum),
		md5B64:      base64.StdEncoding.EncodeToString(sum),
		contentType: contentType,
		size:        int64(n) + rest,
	}, nil
}

// failure records a per-file error tagged with the pipeline stage it hit.
func (u *Uploader) failure(ctx context.Context, path, stage string, err error) imagentypes.TransferResult {
	if u.logger != nil {
		u.logger.WarnContext(ctx, "file upload failed",
			"file", path,
			"stage", stage,
			"error", err)
	}
	return imagentypes.TransferResult{File: path, Error: stage + ": " + err.Error()}
}

// markUnstarted fills in results for files the pool never reached.
func markUnstarted(results []imagentypes.TransferResult, reason string) {
	for i := range results {
		if !results[i].Success && results[i].Error == "" {
			results[i].Error = reason
		}
	}
}

// summarize folds per-file results into a batch summary.
func summarize(results []imagentypes.TransferResult) *imagentypes.TransferSummary {
	summary := &imagentypes.TransferSummary{
		Total:   len(results),
		Results: results,
	}
	for _, r := range results {
		if r.Success {
			summary.Successful++
		} else {
			summary.Failed++
		}
	}
	return summary
}
