// Package imagen provides the one-call QuickEdit workflow.
package imagen

import (
	"context"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/imagenai/imagen-ai-sdk/errors"
	"github.com/imagenai/imagen-ai-sdk/imagentypes"
	"github.com/imagenai/imagen-ai-sdk/internal/validation"
)

// QuickEdit runs the whole editing workflow in one call: it creates a
// project, uploads the images, starts the AI edit with the given profile,
// waits for it to finish, and collects the download links. With WithDownload
// the edited files are also fetched locally; with WithExport the export
// stage runs too, its files landing under an "exported" subdirectory.
//
// Inputs are validated before anything is sent. A batch where every upload
// fails aborts with ErrNoFilesUploaded; partial upload failures log a
// warning and the workflow proceeds with the files that made it.
//
// Returns:
//   - *QuickEditResult: The project UUID, upload summary, links, and local
//     paths of every requested stage; nil slices mean "not requested"
//   - error: The first stage failure, classified by stage; no partial result
//     is returned alongside it
//
// Example:
//
//	result, err := client.QuickEdit(ctx, profileKey, paths,
//	    imagen.WithQuickEditPhotographyType(imagentypes.PhotographyWedding),
//	    imagen.WithExport(true),
//	    imagen.WithDownload("output"),
//	)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("project %s: %d files edited\n", result.ProjectUUID, len(result.DownloadLinks))
func (c *Client) QuickEdit(
	ctx context.Context,
	profileKey int64,
	imagePaths []string,
	opts ...imagentypes.QuickEditOption,
) (*imagentypes.QuickEditResult, error) {
	config := &imagentypes.QuickEditConfig{
		Upload:      imagentypes.DefaultUploadConfig(),
		DownloadCfg: imagentypes.DefaultDownloadConfig(),
		Poll:        imagentypes.DefaultPollConfig(),
	}
	for _, opt := range opts {
		opt(config)
	}

	// Validate everything before the first network call.
	if err := validation.Batch(imagePaths); err != nil {
		return nil, errors.NewError("quickEdit", err)
	}
	if err := validation.EditOptions(config.EditOptions); err != nil {
		return nil, errors.NewError("quickEdit", err)
	}

	name := config.ProjectName
	if name == "" {
		name = generateProjectName()
	}

	logger := c.log()
	if logger != nil {
		logger.InfoContext(ctx, "quick edit started",
			"name", name,
			"files", len(imagePaths),
			"profile_key", profileKey,
		)
	}

	projectUUID, err := c.CreateProject(ctx, name)
	if err != nil {
		return nil, err
	}

	summary, err := c.UploadImages(ctx, projectUUID, imagePaths, withUploadConfig(config.Upload))
	if err != nil {
		return nil, err
	}
	if summary.Successful == 0 {
		return nil, errors.NewProjectError("quickEdit", projectUUID, errors.ErrNoFilesUploaded)
	}
	if summary.Failed > 0 && logger != nil {
		logger.WarnContext(ctx, "continuing with partial upload",
			"project_uuid", projectUUID,
			"successful", summary.Successful,
			"failed", summary.Failed,
		)
	}

	editOpts := []imagentypes.EditOption{
		WithPhotographyType(config.PhotographyType),
		WithEditOptions(config.EditOptions),
	}
	if err := c.StartEditing(ctx, projectUUID, profileKey, editOpts...); err != nil {
		return nil, err
	}
	if _, err := c.WaitForEditing(ctx, projectUUID, withPollConfig(config.Poll)); err != nil {
		return nil, err
	}

	links, err := c.GetDownloadLinks(ctx, projectUUID)
	if err != nil {
		return nil, err
	}

	result := &imagentypes.QuickEditResult{
		ProjectUUID:   projectUUID,
		UploadSummary: summary,
		DownloadLinks: linkURLs(links),
	}

	downloadDir := config.DownloadDir
	if downloadDir == "" {
		downloadDir = imagentypes.DefaultDownloadDir
	}

	if config.Download {
		dlSummary, err := c.DownloadFiles(ctx, links, downloadDir, withDownloadConfig(config.DownloadCfg))
		if err != nil {
			return nil, err
		}
		result.DownloadedFiles = dlSummary.SuccessfulFiles()
	}

	if config.Export {
		if err := c.StartExport(ctx, projectUUID); err != nil {
			return nil, err
		}
		if _, err := c.WaitForExport(ctx, projectUUID, withPollConfig(config.Poll)); err != nil {
			return nil, err
		}

		exportLinks, err := c.GetExportLinks(ctx, projectUUID)
		if err != nil {
			return nil, err
		}
		result.ExportLinks = linkURLs(exportLinks)

		if config.Download {
			exportDir := filepath.Join(downloadDir, "exported")
			exSummary, err := c.DownloadFiles(ctx, exportLinks, exportDir, withDownloadConfig(config.DownloadCfg))
			if err != nil {
				return nil, err
			}
			result.ExportedFiles = exSummary.SuccessfulFiles()
		}
	}

	if logger != nil {
		logger.InfoContext(ctx, "quick edit finished",
			"project_uuid", projectUUID,
			"edited", len(result.DownloadLinks),
			"exported", len(result.ExportLinks),
		)
	}
	return result, nil
}

// QuickEdit runs the whole editing workflow with a throwaway client.
// It is the shortest path from an API key and a directory of photos to
// edited results; for repeated runs construct a Client once instead.
func QuickEdit(
	ctx context.Context,
	apiKey string,
	profileKey int64,
	imagePaths []string,
	opts ...imagentypes.QuickEditOption,
) (*imagentypes.QuickEditResult, error) {
	client, err := New(apiKey)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	return client.QuickEdit(ctx, profileKey, imagePaths, opts...)
}

// generateProjectName returns a unique default name for unnamed projects.
func generateProjectName() string {
	return "project-" + uuid.NewString()[:8]
}

// linkURLs extracts the presigned URLs from download links.
func linkURLs(links []imagentypes.DownloadLink) []string {
	urls := make([]string, len(links))
	for i, l := range links {
		urls[i] = l.DownloadLink
	}
	return urls
}

// withUploadConfig passes a whole upload configuration through the
// functional options of UploadImages.
func withUploadConfig(cfg imagentypes.UploadConfig) imagentypes.UploadOption {
	return func(c *imagentypes.UploadConfig) {
		*c = cfg
	}
}

// withDownloadConfig passes a whole download configuration through the
// functional options of DownloadFiles.
func withDownloadConfig(cfg imagentypes.DownloadConfig) imagentypes.DownloadOption {
	return func(c *imagentypes.DownloadConfig) {
		*c = cfg
	}
}

// withPollConfig passes a whole poll configuration through the functional
// options of the wait methods.
func withPollConfig(cfg imagentypes.PollConfig) imagentypes.PollOption {
	return func(c *imagentypes.PollConfig) {
		*c = cfg
	}
}
