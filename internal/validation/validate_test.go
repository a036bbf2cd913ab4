package validation

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/imagenai/imagen-ai-sdk/errors"
	"github.com/imagenai/imagen-ai-sdk/imagentypes"
)

func TestAPIKey(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		wantError bool
	}{
		{"valid", "sk-abc123", false},
		{"empty", "", true},
		{"whitespace_only", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := APIKey(tt.key)
			if tt.wantError {
				if !errors.IsMissingAPIKey(err) {
					t.Errorf("APIKey(%q) = %v, want ErrMissingAPIKey", tt.key, err)
				}
			} else if err != nil {
				t.Errorf("APIKey(%q) expected no error, got %q", tt.key, err)
			}
		})
	}
}

func TestProjectUUID(t *testing.T) {
	tests := []struct {
		name      string
		uuid      string
		wantError bool
	}{
		{"valid", "8a9f2c4e-1b3d-4f5a-9c7e-2d6b8e0a4c1f", false},
		{"empty", "", true},
		{"whitespace_only", "  ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ProjectUUID(tt.uuid)
			if tt.wantError && err == nil {
				t.Errorf("ProjectUUID(%q) expected error, got nil", tt.uuid)
			}
			if !tt.wantError && err != nil {
				t.Errorf("ProjectUUID(%q) expected no error, got %q", tt.uuid, err)
			}
		})
	}
}

func TestBatch(t *testing.T) {
	tests := []struct {
		name      string
		paths     []string
		wantError bool
		errMsg    string
	}{
		{"valid", []string{"a.dng", "b.dng"}, false, ""},
		{"empty_list", nil, true, "empty file batch"},
		{"empty_path_entry", []string{"a.dng", " "}, true, "file path at index 1 is empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Batch(tt.paths)
			if tt.wantError {
				if err == nil {
					t.Errorf("Batch(%v) expected error, got nil", tt.paths)
				} else if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("Batch(%v) error = %q, want to contain %q", tt.paths, err.Error(), tt.errMsg)
				}
			} else if err != nil {
				t.Errorf("Batch(%v) expected no error, got %q", tt.paths, err)
			}
		})
	}
}

func TestEditOptions(t *testing.T) {
	tests := []struct {
		name           string
		opts           *imagentypes.EditOptions
		wantViolations int
		wantContain    []string
	}{
		{"nil_options", nil, 0, nil},
		{"empty_options", &imagentypes.EditOptions{}, 0, nil},
		{
			"single_crop_mode",
			&imagentypes.EditOptions{Crop: imagentypes.Bool(true), Straighten: imagentypes.Bool(true)},
			0,
			nil,
		},
		{
			"false_flags_do_not_conflict",
			&imagentypes.EditOptions{
				Crop:         imagentypes.Bool(true),
				PortraitCrop: imagentypes.Bool(false),
				HeadshotCrop: imagentypes.Bool(false),
			},
			0,
			nil,
		},
		{
			"two_crop_modes",
			&imagentypes.EditOptions{
				Crop:         imagentypes.Bool(true),
				PortraitCrop: imagentypes.Bool(true),
			},
			1,
			[]string{"only one crop mode", "crop", "portrait_crop"},
		},
		{
			"three_crop_modes",
			&imagentypes.EditOptions{
				Crop:         imagentypes.Bool(true),
				PortraitCrop: imagentypes.Bool(true),
				HeadshotCrop: imagentypes.Bool(true),
			},
			1,
			[]string{"crop, portrait_crop, headshot_crop"},
		},
		{
			"two_straighten_modes",
			&imagentypes.EditOptions{
				Straighten:            imagentypes.Bool(true),
				PerspectiveCorrection: imagentypes.Bool(true),
			},
			1,
			[]string{"only one straightening mode"},
		},
		{
			"all_rules_violated_reported_together",
			&imagentypes.EditOptions{
				Crop:                  imagentypes.Bool(true),
				HeadshotCrop:          imagentypes.Bool(true),
				Straighten:            imagentypes.Bool(true),
				PerspectiveCorrection: imagentypes.Bool(true),
			},
			2,
			[]string{"only one crop mode", "only one straightening mode"},
		},
		{
			"sky_template_without_sky_replacement",
			&imagentypes.EditOptions{SkyReplacementTemplateID: imagentypes.Int64(42)},
			1,
			[]string{"sky_replacement_template_id requires sky_replacement"},
		},
		{
			"sky_template_with_sky_replacement",
			&imagentypes.EditOptions{
				SkyReplacement:           imagentypes.Bool(true),
				SkyReplacementTemplateID: imagentypes.Int64(42),
			},
			0,
			nil,
		},
		{
			"aspect_ratio_without_crop",
			&imagentypes.EditOptions{CropAspectRatio: "16:9"},
			1,
			[]string{"crop_aspect_ratio requires a crop mode"},
		},
		{
			"aspect_ratio_with_portrait_crop",
			&imagentypes.EditOptions{
				PortraitCrop:    imagentypes.Bool(true),
				CropAspectRatio: "4:3",
			},
			0,
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := EditOptions(tt.opts)
			if tt.wantViolations == 0 {
				if err != nil {
					t.Errorf("EditOptions() expected no error, got %q", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("EditOptions() expected %d violations, got nil", tt.wantViolations)
			}
			var ve *errors.ValidationError
			if !stderrors.As(err, &ve) {
				t.Fatalf("EditOptions() error %T is not a ValidationError", err)
			}
			if len(ve.Violations) != tt.wantViolations {
				t.Errorf("EditOptions() violations = %d (%v), want %d", len(ve.Violations), ve.Violations, tt.wantViolations)
			}
			for _, want := range tt.wantContain {
				if !strings.Contains(err.Error(), want) {
					t.Errorf("EditOptions() error = %q, want to contain %q", err.Error(), want)
				}
			}
		})
	}
}

func TestDestinationPath(t *testing.T) {
	tests := []struct {
		name      string
		destDir   string
		fileName  string
		want      string
		wantError bool
	}{
		{"simple_name", "edited", "img1.jpg", "edited/img1.jpg", false},
		{"cleans_redundant_separators", "edited", "./img2.jpg", "edited/img2.jpg", false},
		{"empty_name", "edited", "", "", true},
		{"dot_name", "edited", ".", "", true},
		{"traversal", "edited", "../../etc/passwd", "", true},
		{"absolute_path", "edited", "/etc/passwd", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DestinationPath(tt.destDir, tt.fileName)
			if tt.wantError {
				if err == nil {
					t.Errorf("DestinationPath(%q, %q) expected error, got nil", tt.destDir, tt.fileName)
				}
				return
			}
			if err != nil {
				t.Fatalf("DestinationPath(%q, %q) unexpected error: %v", tt.destDir, tt.fileName, err)
			}
			if got != tt.want {
				t.Errorf("DestinationPath(%q, %q) = %q, want %q", tt.destDir, tt.fileName, got, tt.want)
			}
		})
	}
}
