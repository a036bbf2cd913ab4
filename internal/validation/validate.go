// Package validation provides centralized input validation logic.
// All user inputs are validated before any network call so that
// configuration mistakes fail fast with a complete diagnosis.
package validation

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/imagenai/imagen-ai-sdk/errors"
	"github.com/imagenai/imagen-ai-sdk/imagentypes"
)

// APIKey validates that an API key is present.
func APIKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return errors.ErrMissingAPIKey
	}
	return nil
}

// ProjectUUID validates a project identifier before it is used in a request path.
func ProjectUUID(projectUUID string) error {
	if strings.TrimSpace(projectUUID) == "" {
		return fmt.Errorf("project UUID cannot be empty: %w", errors.ErrInvalidInput)
	}
	return nil
}

// Batch validates the file list of a transfer batch.
func Batch(paths []string) error {
	if len(paths) == 0 {
		return errors.ErrEmptyBatch
	}
	for i, p := range paths {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("file path at index %d is empty: %w", i, errors.ErrInvalidInput)
		}
	}
	return nil
}

// EditOptions checks the mutual-exclusivity rules of the editing tools.
// Every violated rule is collected into a single ValidationError so the
// caller sees the complete diagnosis at once.
func EditOptions(opts *imagentypes.EditOptions) error {
	if opts == nil {
		return nil
	}

	var violations []string

	cropModes := enabledNames(map[string]*bool{
		"crop":          opts.Crop,
		"portrait_crop": opts.PortraitCrop,
		"headshot_crop": opts.HeadshotCrop,
	})
	if len(cropModes) > 1 {
		violations = append(violations,
			fmt.Sprintf("only one crop mode may be enabled, got %s", strings.Join(cropModes, ", ")))
	}

	straightenModes := enabledNames(map[string]*bool{
		"straighten":             opts.Straighten,
		"perspective_correction": opts.PerspectiveCorrection,
	})
	if len(straightenModes) > 1 {
		violations = append(violations,
			fmt.Sprintf("only one straightening mode may be enabled, got %s", strings.Join(straightenModes, ", ")))
	}

	if opts.SkyReplacementTemplateID != nil && !isEnabled(opts.SkyReplacement) {
		violations = append(violations,
			"sky_replacement_template_id requires sky_replacement to be enabled")
	}

	if opts.CropAspectRatio != "" && len(cropModes) == 0 {
		violations = append(violations,
			"crop_aspect_ratio requires a crop mode to be enabled")
	}

	if len(violations) > 0 {
		return errors.NewValidationError(violations...)
	}
	return nil
}

// DestinationPath joins a download destination directory with a remote file
// name, rejecting names that would escape the directory.
func DestinationPath(destDir, fileName string) (string, error) {
	cleaned := filepath.Clean(fileName)
	if cleaned == "." || cleaned == "" {
		return "", fmt.Errorf("file name cannot be empty: %w", errors.ErrInvalidInput)
	}
	if filepath.IsAbs(cleaned) || strings.HasPrefix(cleaned, "..") {
		return "", fmt.Errorf("file name %q escapes the destination directory: %w",
			fileName, errors.ErrInvalidInput)
	}
	return filepath.Join(destDir, cleaned), nil
}

// enabledNames returns the names whose flags are set true, in a fixed order
// so validation messages are deterministic.
func enabledNames(flags map[string]*bool) []string {
	order := []string{"crop", "portrait_crop", "headshot_crop", "straighten", "perspective_correction"}
	var names []string
	for _, name := range order {
		if flag, ok := flags[name]; ok && isEnabled(flag) {
			names = append(names, name)
		}
	}
	return names
}

func isEnabled(flag *bool) bool {
	return flag != nil && *flag
}
