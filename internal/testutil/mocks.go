// Package testutil provides test utilities and mocks for SDK operations.
// This package is internal and should only be used for testing within the SDK.
package testutil

import (
	"context"
	"io"
	"strings"

	"github.com/imagenai/imagen-ai-sdk/imagentypes"
	"github.com/imagenai/imagen-ai-sdk/internal/api"
)

// MockAPI is a mock implementation of the api.API interface for testing.
// It allows customization of each remote operation through function fields.
type MockAPI struct {
	CreateProjectFunc  func(ctx context.Context, name string) (string, error)
	GetProfilesFunc    func(ctx context.Context) ([]imagentypes.Profile, error)
	GetUploadLinksFunc func(ctx context.Context, projectUUID string, files []imagentypes.FileInfo) ([]imagentypes.PresignedFile, error)
	UploadFileFunc     func(ctx context.Context, uploadLink string, body io.Reader, size int64, contentType, contentMD5 string) error
	StartJobFunc       func(ctx context.Context, projectUUID string, kind imagentypes.JobKind, params imagentypes.EditParams) error
	JobStatusFunc      func(ctx context.Context, projectUUID string, kind imagentypes.JobKind) (*imagentypes.StatusDetails, error)
	GetLinksFunc       func(ctx context.Context, projectUUID string, kind imagentypes.JobKind) ([]imagentypes.DownloadLink, error)
	DownloadFileFunc   func(ctx context.Context, downloadLink string) (io.ReadCloser, int64, error)
}

// CreateProject mocks project creation.
func (m *MockAPI) CreateProject(ctx context.Context, name string) (string, error) {
	if m.CreateProjectFunc != nil {
		return m.CreateProjectFunc(ctx, name)
	}
	return "mock-project-uuid", nil
}

// GetProfiles mocks the profile listing.
func (m *MockAPI) GetProfiles(ctx context.Context) ([]imagentypes.Profile, error) {
	if m.GetProfilesFunc != nil {
		return m.GetProfilesFunc(ctx)
	}
	return nil, nil
}

// GetUploadLinks mocks presigned upload link issuance. When no function is
// installed it echoes one link per requested file so upload pipelines can
// run against the default mock.
func (m *MockAPI) GetUploadLinks(
	ctx context.Context,
	projectUUID string,
	files []imagentypes.FileInfo,
) ([]imagentypes.PresignedFile, error) {
	if m.GetUploadLinksFunc != nil {
		return m.GetUploadLinksFunc(ctx, projectUUID, files)
	}
	links := make([]imagentypes.PresignedFile, len(files))
	for i, f := range files {
		links[i] = imagentypes.PresignedFile{
			FileName:   f.FileName,
			UploadLink: "https://storage.invalid/" + projectUUID + "/" + f.FileName,
		}
	}
	return links, nil
}

// UploadFile mocks a presigned upload. The default drains the body the way
// a real PUT would.
func (m *MockAPI) UploadFile(
	ctx context.Context,
	uploadLink string,
	body io.Reader,
	size int64,
	contentType, contentMD5 string,
) error {
	if m.UploadFileFunc != nil {
		return m.UploadFileFunc(ctx, uploadLink, body, size, contentType, contentMD5)
	}
	_, err := io.Copy(io.Discard, body)
	return err
}

// StartJob mocks starting an edit or export job.
func (m *MockAPI) StartJob(
	ctx context.Context,
	projectUUID string,
	kind imagentypes.JobKind,
	params imagentypes.EditParams,
) error {
	if m.StartJobFunc != nil {
		return m.StartJobFunc(ctx, projectUUID, kind, params)
	}
	return nil
}

// JobStatus mocks a status poll. The default reports a completed job.
func (m *MockAPI) JobStatus(
	ctx context.Context,
	projectUUID string,
	kind imagentypes.JobKind,
) (*imagentypes.StatusDetails, error) {
	if m.JobStatusFunc != nil {
		return m.JobStatusFunc(ctx, projectUUID, kind)
	}
	return &imagentypes.StatusDetails{Status: imagentypes.StatusCompleted}, nil
}

// GetLinks mocks download link retrieval.
func (m *MockAPI) GetLinks(
	ctx context.Context,
	projectUUID string,
	kind imagentypes.JobKind,
) ([]imagentypes.DownloadLink, error) {
	if m.GetLinksFunc != nil {
		return m.GetLinksFunc(ctx, projectUUID, kind)
	}
	return nil, nil
}

// DownloadFile mocks opening a presigned download.
func (m *MockAPI) DownloadFile(ctx context.Context, downloadLink string) (io.ReadCloser, int64, error) {
	if m.DownloadFileFunc != nil {
		return m.DownloadFileFunc(ctx, downloadLink)
	}
	return io.NopCloser(strings.NewReader("")), 0, nil
}

// Verify that MockAPI implements the API interface.
var _ api.API = (*MockAPI)(nil)

// StatusSequence returns a JobStatusFunc that walks through the given
// statuses one poll at a time, repeating the last entry once exhausted.
func StatusSequence(statuses ...imagentypes.JobStatus) func(context.Context, string, imagentypes.JobKind) (*imagentypes.StatusDetails, error) {
	i := 0
	return func(ctx context.Context, projectUUID string, kind imagentypes.JobKind) (*imagentypes.StatusDetails, error) {
		s := statuses[len(statuses)-1]
		if i < len(statuses) {
			s = statuses[i]
			i++
		}
		return &imagentypes.StatusDetails{Status: s}, nil
	}
}
