// Package imagen provides the export job operations.
package imagen

import (
	"context"

	"github.com/imagenai/imagen-ai-sdk/errors"
	"github.com/imagenai/imagen-ai-sdk/imagentypes"
	"github.com/imagenai/imagen-ai-sdk/internal/poll"
	"github.com/imagenai/imagen-ai-sdk/internal/validation"
)

// StartExport starts the export job that renders a project's edited photos
// into delivery-ready files. Editing must have completed first.
//
// The job runs asynchronously; use WaitForExport or ExportStatus to follow it.
func (c *Client) StartExport(ctx context.Context, projectUUID string) error {
	if err := validation.ProjectUUID(projectUUID); err != nil {
		return errors.NewError("startExport", err)
	}

	if err := c.api.StartJob(ctx, projectUUID, imagentypes.JobExport, imagentypes.EditParams{}); err != nil {
		return errors.NewProjectError("startExport", projectUUID, err)
	}

	if logger := c.log(); logger != nil {
		logger.InfoContext(ctx, "export started", "project_uuid", projectUUID)
	}
	return nil
}

// ExportStatus performs a single status check of the project's export job.
func (c *Client) ExportStatus(
	ctx context.Context,
	projectUUID string,
) (*imagentypes.StatusDetails, error) {
	if err := validation.ProjectUUID(projectUUID); err != nil {
		return nil, errors.NewError("exportStatus", err)
	}

	details, err := c.api.JobStatus(ctx, projectUUID, imagentypes.JobExport)
	if err != nil {
		return nil, errors.NewProjectError("exportStatus", projectUUID, err)
	}
	return details, nil
}

// WaitForExport blocks until the project's export job completes, fails, or
// the wait gives up. Polling behaves exactly as in WaitForEditing.
func (c *Client) WaitForExport(
	ctx context.Context,
	projectUUID string,
	opts ...imagentypes.PollOption,
) (*imagentypes.StatusDetails, error) {
	if err := validation.ProjectUUID(projectUUID); err != nil {
		return nil, errors.NewError("waitForExport", err)
	}

	config := imagentypes.DefaultPollConfig()
	for _, opt := range opts {
		opt(&config)
	}

	waiter := poll.New(c.api, c.log())
	return waiter.Wait(ctx, projectUUID, imagentypes.JobExport, config)
}
