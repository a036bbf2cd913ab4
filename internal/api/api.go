// Package api implements the HTTP transport for the Imagen AI REST API
// and defines the interface the rest of the SDK consumes it through.
package api

import (
	"context"
	"io"

	"github.com/imagenai/imagen-ai-sdk/imagentypes"
)

// API defines the transport operations used by this module.
// This interface allows for mocking in tests.
type API interface {
	// CreateProject creates a remote project and returns its UUID
	CreateProject(ctx context.Context, name string) (string, error)

	// GetProfiles lists the AI editing profiles available to the account
	GetProfiles(ctx context.Context) ([]imagentypes.Profile, error)

	// GetUploadLinks requests pre-authorized upload destinations for the
	// described files
	GetUploadLinks(
		ctx context.Context,
		projectUUID string,
		files []imagentypes.FileInfo,
	) ([]imagentypes.PresignedFile, error)

	// UploadFile streams a file's bytes to a presigned upload destination
	UploadFile(
		ctx context.Context,
		uploadLink string,
		body io.Reader,
		size int64,
		contentType, contentMD5 string,
	) error

	// StartJob starts the edit or export job of a project
	StartJob(
		ctx context.Context,
		projectUUID string,
		kind imagentypes.JobKind,
		params imagentypes.EditParams,
	) error

	// JobStatus queries the current status of a project's job
	JobStatus(
		ctx context.Context,
		projectUUID string,
		kind imagentypes.JobKind,
	) (*imagentypes.StatusDetails, error)

	// GetLinks fetches the download links produced by a finished job
	GetLinks(
		ctx context.Context,
		projectUUID string,
		kind imagentypes.JobKind,
	) ([]imagentypes.DownloadLink, error)

	// DownloadFile opens a presigned download source for streaming.
	// The caller owns the returned ReadCloser.
	DownloadFile(ctx context.Context, downloadLink string) (io.ReadCloser, int64, error)
}

// Verify that the HTTP client implements the interface
var _ API = (*Client)(nil)
