// Package imagen provides download link retrieval for finished jobs.
package imagen

import (
	"context"

	"github.com/imagenai/imagen-ai-sdk/errors"
	"github.com/imagenai/imagen-ai-sdk/imagentypes"
	"github.com/imagenai/imagen-ai-sdk/internal/validation"
)

// GetDownloadLinks fetches presigned download links for the project's edited
// photos. The editing job must have completed; links expire after a while,
// so fetch them close to the download.
//
// Example:
//
//	links, err := client.GetDownloadLinks(ctx, projectUUID)
//	if err != nil {
//	    return err
//	}
//	summary, err := client.DownloadFiles(ctx, links, "edited")
func (c *Client) GetDownloadLinks(
	ctx context.Context,
	projectUUID string,
) ([]imagentypes.DownloadLink, error) {
	return c.links(ctx, "getDownloadLinks", projectUUID, imagentypes.JobEdit)
}

// GetExportLinks fetches presigned download links for the project's exported
// photos. The export job must have completed.
func (c *Client) GetExportLinks(
	ctx context.Context,
	projectUUID string,
) ([]imagentypes.DownloadLink, error) {
	return c.links(ctx, "getExportLinks", projectUUID, imagentypes.JobExport)
}

func (c *Client) links(
	ctx context.Context,
	op, projectUUID string,
	kind imagentypes.JobKind,
) ([]imagentypes.DownloadLink, error) {
	if err := validation.ProjectUUID(projectUUID); err != nil {
		return nil, errors.NewError(op, err)
	}

	links, err := c.api.GetLinks(ctx, projectUUID, kind)
	if err != nil {
		return nil, errors.NewProjectError(op, projectUUID, err)
	}
	return links, nil
}
