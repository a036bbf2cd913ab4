// Package imagentypes provides shared type definitions for the Imagen AI SDK.
package imagentypes

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-git/go-billy/v5"
)

// JobKind identifies which remote asynchronous operation a job refers to.
type JobKind string

// Job kinds supported by the remote service
const (
	// JobEdit is the AI editing job started for a project
	JobEdit JobKind = "edit"

	// JobExport is the export/delivery job started after editing
	JobExport JobKind = "export"
)

// JobStatus represents the remote status of an asynchronous job.
type JobStatus string

// Known job statuses. The remote service may introduce new non-terminal
// statuses at any time; unknown values are treated as still in progress.
const (
	// StatusQueued means the job is accepted but not started
	StatusQueued JobStatus = "QUEUED"

	// StatusInProgress means the job is actively running
	StatusInProgress JobStatus = "IN_PROGRESS"

	// StatusCompleted is the successful terminal status
	StatusCompleted JobStatus = "COMPLETED"

	// StatusFailed is the unsuccessful terminal status
	StatusFailed JobStatus = "FAILED"
)

// IsTerminal reports whether the status is one a job can never leave.
func (s JobStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// PhotographyType hints the genre of the uploaded photos so the remote
// service can tune its editing model.
type PhotographyType string

// Predefined photography types
const (
	PhotographyNoType          PhotographyType = "NO_TYPE"
	PhotographyOther           PhotographyType = "OTHER"
	PhotographyPortraits       PhotographyType = "PORTRAITS"
	PhotographyWedding         PhotographyType = "WEDDING"
	PhotographyRealEstate      PhotographyType = "REAL_ESTATE"
	PhotographyLandscapeNature PhotographyType = "LANDSCAPE_NATURE"
	PhotographyEvents          PhotographyType = "EVENTS"
	PhotographyFamilyNewborn   PhotographyType = "FAMILY_NEWBORN"
	PhotographyBoudoir         PhotographyType = "BOUDOIR"
	PhotographySports          PhotographyType = "SPORTS"
)

// Profile describes an AI editing profile available to the account.
type Profile struct {
	// ImageType is the kind of images the profile handles (e.g. "RAW", "JPG")
	ImageType string `json:"image_type"`

	// ProfileKey is the unique identifier passed when starting an edit
	ProfileKey int64 `json:"profile_key"`

	// ProfileName is the human-readable profile name
	ProfileName string `json:"profile_name"`

	// ProfileType is the tier of the profile (e.g. "Talent", "Personal")
	ProfileType string `json:"profile_type"`
}

// EditOptions selects the editing tools applied on top of a profile.
// Fields are pointers so that "unset" is distinguishable from "false";
// only set fields are sent to the service.
//
// Two groups are mutually exclusive and validated before any network call:
// at most one of Crop, PortraitCrop, HeadshotCrop may be enabled, and at
// most one of Straighten, PerspectiveCorrection may be enabled.
type EditOptions struct {
	Crop                     *bool  `json:"crop,omitempty"`
	Straighten               *bool  `json:"straighten,omitempty"`
	HDRMerge                 *bool  `json:"hdr_merge,omitempty"`
	PortraitCrop             *bool  `json:"portrait_crop,omitempty"`
	SmoothSkin               *bool  `json:"smooth_skin,omitempty"`
	HeadshotCrop             *bool  `json:"headshot_crop,omitempty"`
	PerspectiveCorrection    *bool  `json:"perspective_correction,omitempty"`
	SubjectMask              *bool  `json:"subject_mask,omitempty"`
	SkyReplacement           *bool  `json:"sky_replacement,omitempty"`
	SkyReplacementTemplateID *int64 `json:"sky_replacement_template_id,omitempty"`
	WindowPull               *bool  `json:"window_pull,omitempty"`
	CropAspectRatio          string `json:"crop_aspect_ratio,omitempty"`
}

// Bool returns a pointer to b for use in EditOptions literals.
func Bool(b bool) *bool {
	return &b
}

// Int64 returns a pointer to n for use in EditOptions literals.
func Int64(n int64) *int64 {
	return &n
}

// EditParams carries everything the remote service needs to start an edit job.
type EditParams struct {
	// ProfileKey selects the AI profile to edit with
	ProfileKey int64

	// PhotographyType optionally hints the photo genre; empty means unset
	PhotographyType PhotographyType

	// Options optionally selects additional editing tools
	Options *EditOptions
}

// StatusDetails is one observation of a job's remote status.
type StatusDetails struct {
	// Status is the current job status
	Status JobStatus `json:"status"`

	// Progress is the completion percentage (0-100) when reported
	Progress *float64 `json:"progress,omitempty"`

	// Details carries additional remote detail, e.g. a failure reason
	Details string `json:"details,omitempty"`
}

// FileInfo describes one local file when requesting upload destinations.
type FileInfo struct {
	// FileName is the base name the file will have in the project
	FileName string `json:"file_name"`

	// MD5 is the hex content fingerprint used for integrity and dedup
	MD5 string `json:"md5,omitempty"`
}

// PresignedFile is a pre-authorized upload destination for one file.
type PresignedFile struct {
	// FileName is the base name the destination was issued for
	FileName string `json:"file_name"`

	// UploadLink is the presigned URL the file's bytes are PUT to
	UploadLink string `json:"upload_link"`
}

// DownloadLink is a pre-authorized download source for one result file.
type DownloadLink struct {
	// FileName is the base name of the remote file
	FileName string `json:"file_name"`

	// DownloadLink is the presigned URL the file is fetched from
	DownloadLink string `json:"download_link"`
}

// TransferResult records the outcome of one file transfer within a batch.
type TransferResult struct {
	// File is the local path involved: the source for uploads,
	// the destination for downloads
	File string

	// Success reports whether the transfer completed
	Success bool

	// Error is the failure description when Success is false
	Error string
}

// TransferSummary aggregates the outcomes of one transfer batch.
// Results is ordered by submission order regardless of completion order,
// and Total == Successful + Failed == len(Results) always holds.
type TransferSummary struct {
	Total      int
	Successful int
	Failed     int
	Results    []TransferResult
}

// SuccessfulFiles returns the local paths of the successful transfers,
// preserving submission order.
func (s *TransferSummary) SuccessfulFiles() []string {
	files := make([]string, 0, s.Successful)
	for _, r := range s.Results {
		if r.Success {
			files = append(files, r.File)
		}
	}
	return files
}

// QuickEditResult is the final artifact of a QuickEdit workflow run.
// Nil slices mean the corresponding stage was not requested.
type QuickEditResult struct {
	// ProjectUUID identifies the project created for the run
	ProjectUUID string

	// UploadSummary reports the per-file upload outcomes
	UploadSummary *TransferSummary

	// DownloadLinks are the URLs of the edited images
	DownloadLinks []string

	// ExportLinks are the URLs of the exported images, when export was requested
	ExportLinks []string

	// DownloadedFiles are local paths of downloaded edited images,
	// when download was requested
	DownloadedFiles []string

	// ExportedFiles are local paths of downloaded exported images,
	// when both export and download were requested
	ExportedFiles []string
}

// ProgressFunc is invoked exactly once per finished transfer task with the
// number of completed tasks so far, the batch total, and the file involved.
// Invocations are dispatched asynchronously so a slow handler never stalls
// in-flight transfers.
type ProgressFunc func(completed, total int, file string)

// Configuration types for functional options

// ClientConfig holds configuration for the Imagen AI client.
type ClientConfig struct {
	// BaseURL is the API root, e.g. "https://api-beta.imagen-ai.com/v1"
	BaseURL string

	// RequestTimeout bounds each JSON API call. It never applies to
	// presigned uploads or downloads, which are governed by their context.
	RequestTimeout time.Duration

	// HTTPClient overrides the transport used for every request
	HTTPClient *http.Client

	// Filesystem is the filesystem uploads read from and downloads write to
	Filesystem billy.Filesystem

	// Logger receives structured SDK logs; nil disables logging
	Logger *slog.Logger
}

// UploadConfig holds configuration for one upload batch.
type UploadConfig struct {
	// Concurrency bounds the number of files in flight simultaneously
	Concurrency int

	// Progress is invoked once per finished file
	Progress ProgressFunc
}

// DownloadConfig holds configuration for one download batch.
type DownloadConfig struct {
	// Concurrency bounds the number of files in flight simultaneously
	Concurrency int

	// Progress is invoked once per finished file
	Progress ProgressFunc

	// DirPerm is the permission used when creating destination directories
	DirPerm os.FileMode
}

// PollConfig holds the poll interval policy and deadline for job waits.
// Intervals grow by Multiplier after each poll, never exceed MaxInterval,
// and never shrink.
type PollConfig struct {
	// InitialInterval is the delay before the second poll
	InitialInterval time.Duration

	// MaxInterval caps the grown interval
	MaxInterval time.Duration

	// Multiplier grows the interval after each poll; values below 1 are
	// replaced with DefaultPollMultiplier
	Multiplier float64

	// Timeout bounds the whole wait, measured from its start
	Timeout time.Duration
}

// EditConfig holds the optional parameters of a start-editing call.
type EditConfig struct {
	PhotographyType PhotographyType
	Options         *EditOptions
}

// QuickEditConfig holds configuration for the one-call QuickEdit workflow.
type QuickEditConfig struct {
	// ProjectName names the created project; empty generates one
	ProjectName string

	// PhotographyType optionally hints the photo genre
	PhotographyType PhotographyType

	// EditOptions optionally selects additional editing tools
	EditOptions *EditOptions

	// Export also runs the export stage after editing
	Export bool

	// Download fetches edited (and exported) files to DownloadDir
	Download bool

	// DownloadDir is where downloaded files land; exports go to
	// DownloadDir/exported
	DownloadDir string

	// Upload configures the upload batch
	Upload UploadConfig

	// DownloadCfg configures the download batches
	DownloadCfg DownloadConfig

	// Poll configures both job waits
	Poll PollConfig
}

// Default configuration values
const (
	// DefaultBaseURL is the production API root
	DefaultBaseURL = "https://api-beta.imagen-ai.com/v1"

	// DefaultRequestTimeout bounds each JSON API call
	DefaultRequestTimeout = 30 * time.Second

	// DefaultConcurrency bounds transfer batches
	DefaultConcurrency = 5

	// DefaultPollInitialInterval is the delay before the second status poll
	DefaultPollInitialInterval = 2 * time.Second

	// DefaultPollMaxInterval caps the grown poll interval
	DefaultPollMaxInterval = 30 * time.Second

	// DefaultPollMultiplier grows the poll interval after each poll
	DefaultPollMultiplier = 1.5

	// DefaultPollTimeout bounds a whole job wait
	DefaultPollTimeout = 30 * time.Minute

	// DefaultDownloadDir receives downloaded files when none is configured
	DefaultDownloadDir = "edited"

	// DefaultDirPerm is used when creating destination directories
	DefaultDirPerm = 0o755
)

// DefaultPollConfig returns the poll policy used when none is configured.
func DefaultPollConfig() PollConfig {
	return PollConfig{
		InitialInterval: DefaultPollInitialInterval,
		MaxInterval:     DefaultPollMaxInterval,
		Multiplier:      DefaultPollMultiplier,
		Timeout:         DefaultPollTimeout,
	}
}

// DefaultUploadConfig returns the upload batch configuration defaults.
func DefaultUploadConfig() UploadConfig {
	return UploadConfig{Concurrency: DefaultConcurrency}
}

// DefaultDownloadConfig returns the download batch configuration defaults.
func DefaultDownloadConfig() DownloadConfig {
	return DownloadConfig{Concurrency: DefaultConcurrency, DirPerm: DefaultDirPerm}
}

// Option is a functional option for configuring the Imagen AI client.
type (
	Option func(*ClientConfig)
	// UploadOption is a functional option for configuring an upload batch.
	UploadOption func(*UploadConfig)
	// DownloadOption is a functional option for configuring a download batch.
	DownloadOption func(*DownloadConfig)
	// PollOption is a functional option for configuring a job wait.
	PollOption func(*PollConfig)
	// EditOption is a functional option for a start-editing call.
	EditOption func(*EditConfig)
	// QuickEditOption is a functional option for the QuickEdit workflow.
	QuickEditOption func(*QuickEditConfig)
)
