// Package imagen provides the AI editing job operations.
package imagen

import (
	"context"

	"github.com/imagenai/imagen-ai-sdk/errors"
	"github.com/imagenai/imagen-ai-sdk/imagentypes"
	"github.com/imagenai/imagen-ai-sdk/internal/poll"
	"github.com/imagenai/imagen-ai-sdk/internal/validation"
)

// StartEditing starts the AI editing job for a project's uploaded photos.
// The profile key selects the editing profile; see GetProfiles. Optional
// photography type and edit options refine the edit.
//
// Edit options are validated before any network call. Mutually exclusive
// tools (crop modes, straighten versus perspective correction) are rejected
// with every violation reported at once.
//
// The job runs asynchronously; use WaitForEditing or EditStatus to follow it.
//
// Example:
//
//	err := client.StartEditing(ctx, projectUUID, profileKey,
//	    imagen.WithPhotographyType(imagentypes.PhotographyWedding),
//	    imagen.WithEditOptions(&imagentypes.EditOptions{
//	        Crop:       imagentypes.Bool(true),
//	        Straighten: imagentypes.Bool(true),
//	    }),
//	)
func (c *Client) StartEditing(
	ctx context.Context,
	projectUUID string,
	profileKey int64,
	opts ...imagentypes.EditOption,
) error {
	if err := validation.ProjectUUID(projectUUID); err != nil {
		return errors.NewError("startEditing", err)
	}

	config := &imagentypes.EditConfig{}
	for _, opt := range opts {
		opt(config)
	}

	if err := validation.EditOptions(config.Options); err != nil {
		return errors.NewProjectError("startEditing", projectUUID, err)
	}

	params := imagentypes.EditParams{
		ProfileKey:      profileKey,
		PhotographyType: config.PhotographyType,
		Options:         config.Options,
	}
	if err := c.api.StartJob(ctx, projectUUID, imagentypes.JobEdit, params); err != nil {
		return errors.NewProjectError("startEditing", projectUUID, err)
	}

	if logger := c.log(); logger != nil {
		logger.InfoContext(ctx, "editing started",
			"project_uuid", projectUUID,
			"profile_key", profileKey,
		)
	}
	return nil
}

// EditStatus performs a single status check of the project's editing job.
func (c *Client) EditStatus(
	ctx context.Context,
	projectUUID string,
) (*imagentypes.StatusDetails, error) {
	if err := validation.ProjectUUID(projectUUID); err != nil {
		return nil, errors.NewError("editStatus", err)
	}

	details, err := c.api.JobStatus(ctx, projectUUID, imagentypes.JobEdit)
	if err != nil {
		return nil, errors.NewProjectError("editStatus", projectUUID, err)
	}
	return details, nil
}

// WaitForEditing blocks until the project's editing job completes, fails,
// or the wait gives up. The first status check happens immediately, so a
// job that already finished returns without sleeping; further checks back
// off from WithPollInterval up to WithPollMaxInterval.
//
// Returns:
//   - *StatusDetails: The final observation, also returned alongside errors
//     for failed and timed-out jobs
//   - error: Wraps ErrJobFailed or ErrJobTimeout, or carries the context's
//     error when cancelled
//
// Example:
//
//	details, err := client.WaitForEditing(ctx, projectUUID,
//	    imagen.WithPollTimeout(10*time.Minute),
//	)
//	if errors.IsJobFailed(err) {
//	    log.Fatalf("editing failed: %s", details.Details)
//	}
func (c *Client) WaitForEditing(
	ctx context.Context,
	projectUUID string,
	opts ...imagentypes.PollOption,
) (*imagentypes.StatusDetails, error) {
	if err := validation.ProjectUUID(projectUUID); err != nil {
		return nil, errors.NewError("waitForEditing", err)
	}

	config := imagentypes.DefaultPollConfig()
	for _, opt := range opts {
		opt(&config)
	}

	waiter := poll.New(c.api, c.log())
	return waiter.Wait(ctx, projectUUID, imagentypes.JobEdit, config)
}
