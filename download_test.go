// Package imagen provides tests for the batch download entry point.
package imagen

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imagenai/imagen-ai-sdk/imagentypes"
	"github.com/imagenai/imagen-ai-sdk/internal/testutil"
)

func TestDownloadFiles(t *testing.T) {
	fs := testutil.NewMemFS(t, nil)
	mock := &testutil.MockAPI{
		DownloadFileFunc: func(ctx context.Context, downloadLink string) (io.ReadCloser, int64, error) {
			return io.NopCloser(strings.NewReader("edited-bytes")), 12, nil
		},
	}
	client := NewWithAPI(mock)
	client.SetFilesystem(fs)

	links := []imagentypes.DownloadLink{
		{FileName: "a.jpg", DownloadLink: "https://storage.invalid/a.jpg?sig=x"},
	}

	summary, err := client.DownloadFiles(context.Background(), links, "output")
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Successful)
	assert.Equal(t, []string{"output/a.jpg"}, summary.SuccessfulFiles())
	assert.Equal(t, "edited-bytes", testutil.ReadFile(t, fs, "output/a.jpg"))
}

func TestDownloadFilesDefaultDir(t *testing.T) {
	fs := testutil.NewMemFS(t, nil)
	client := NewWithAPI(&testutil.MockAPI{})
	client.SetFilesystem(fs)

	links := []imagentypes.DownloadLink{
		{FileName: "a.jpg", DownloadLink: "https://storage.invalid/a.jpg"},
	}

	summary, err := client.DownloadFiles(context.Background(), links, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"edited/a.jpg"}, summary.SuccessfulFiles(),
		"empty destination falls back to the default directory")
}
