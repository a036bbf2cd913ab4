package imagentypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJobStatus_IsTerminal(t *testing.T) {
	tests := []struct {
		name   string
		status JobStatus
		want   bool
	}{
		{name: "completed is terminal", status: StatusCompleted, want: true},
		{name: "failed is terminal", status: StatusFailed, want: true},
		{name: "queued is not terminal", status: StatusQueued, want: false},
		{name: "in progress is not terminal", status: StatusInProgress, want: false},
		{name: "unknown status is not terminal", status: JobStatus("OPTIMIZING"), want: false},
		{name: "empty status is not terminal", status: JobStatus(""), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.IsTerminal())
		})
	}
}

func TestTransferSummary_SuccessfulFiles(t *testing.T) {
	summary := &TransferSummary{
		Total:      4,
		Successful: 2,
		Failed:     2,
		Results: []TransferResult{
			{File: "a.dng", Success: true},
			{File: "b.dng", Success: false, Error: "presign: 500"},
			{File: "c.dng", Success: true},
			{File: "d.dng", Success: false, Error: "open: not found"},
		},
	}

	assert.Equal(t, []string{"a.dng", "c.dng"}, summary.SuccessfulFiles())
}

func TestTransferSummary_SuccessfulFiles_Empty(t *testing.T) {
	summary := &TransferSummary{Total: 0, Results: nil}

	assert.Empty(t, summary.SuccessfulFiles())
}

func TestDefaultConfigs(t *testing.T) {
	t.Run("poll defaults", func(t *testing.T) {
		cfg := DefaultPollConfig()

		assert.Equal(t, DefaultPollInitialInterval, cfg.InitialInterval)
		assert.Equal(t, DefaultPollMaxInterval, cfg.MaxInterval)
		assert.InEpsilon(t, DefaultPollMultiplier, cfg.Multiplier, 1e-9)
		assert.Equal(t, DefaultPollTimeout, cfg.Timeout)
	})

	t.Run("transfer defaults", func(t *testing.T) {
		assert.Equal(t, DefaultConcurrency, DefaultUploadConfig().Concurrency)
		assert.Equal(t, DefaultConcurrency, DefaultDownloadConfig().Concurrency)
	})
}
