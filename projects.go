// Package imagen provides project lifecycle operations.
package imagen

import (
	"context"

	"github.com/imagenai/imagen-ai-sdk/errors"
)

// CreateProject creates a new remote project and returns its UUID.
// The UUID identifies the project in every subsequent call. An empty name
// is allowed; the service generates one.
//
// Returns:
//   - string: The UUID of the created project
//   - error: Returns an error if the request fails
//
// Example:
//
//	projectUUID, err := client.CreateProject(ctx, "wedding-2026-06")
//	if err != nil {
//	    return err
//	}
func (c *Client) CreateProject(ctx context.Context, name string) (string, error) {
	projectUUID, err := c.api.CreateProject(ctx, name)
	if err != nil {
		return "", errors.NewError("createProject", err)
	}

	if logger := c.log(); logger != nil {
		logger.InfoContext(ctx, "project created",
			"project_uuid", projectUUID,
			"name", name,
		)
	}
	return projectUUID, nil
}
