package transfer

import (
	"context"
	"io"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imagenai/imagen-ai-sdk/imagentypes"
	"github.com/imagenai/imagen-ai-sdk/internal/testutil"
)

func TestUploadBatch(t *testing.T) {
	fs := testutil.NewMemFS(t, map[string]string{
		"photos/a.jpg": "content-a",
		"photos/b.jpg": "content-b",
		"photos/c.jpg": "content-c",
	})

	var mu sync.Mutex
	uploaded := map[string]string{}
	mock := &testutil.MockAPI{
		UploadFileFunc: func(ctx context.Context, uploadLink string, body io.Reader, size int64, contentType, contentMD5 string) error {
			data, err := io.ReadAll(body)
			if err != nil {
				return err
			}
			mu.Lock()
			uploaded[uploadLink] = string(data)
			mu.Unlock()
			return nil
		},
	}

	paths := []string{"photos/a.jpg", "photos/b.jpg", "photos/c.jpg"}
	summary, err := NewUploader(mock, fs, nil).Upload(context.Background(), "proj-1", paths,
		imagentypes.UploadConfig{Concurrency: 2})

	require.NoError(t, err)
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 3, summary.Successful)
	assert.Equal(t, 0, summary.Failed)

	var bodies []string
	for _, data := range uploaded {
		bodies = append(bodies, data)
	}
	sort.Strings(bodies)
	assert.Equal(t, []string{"content-a", "content-b", "content-c"}, bodies)
}

func TestUploadResultsKeepSubmissionOrder(t *testing.T) {
	files := map[string]string{}
	var paths []string
	for _, name := range []string{"e.jpg", "a.jpg", "z.jpg", "m.jpg", "b.jpg", "q.jpg"} {
		files["in/"+name] = "data-" + name
		paths = append(paths, "in/"+name)
	}
	fs := testutil.NewMemFS(t, files)

	for _, concurrency := range []int{1, 2, 8} {
		mock := &testutil.MockAPI{}
		summary, err := NewUploader(mock, fs, nil).Upload(context.Background(), "proj-1", paths,
			imagentypes.UploadConfig{Concurrency: concurrency})

		require.NoError(t, err)
		require.Len(t, summary.Results, len(paths))
		for i, result := range summary.Results {
			assert.Equal(t, paths[i], result.File, "concurrency %d slot %d", concurrency, i)
			assert.True(t, result.Success)
		}
	}
}

func TestUploadSingleFailureDoesNotAbortBatch(t *testing.T) {
	// b.jpg is deliberately missing from the filesystem.
	fs := testutil.NewMemFS(t, map[string]string{
		"a.jpg": "aa",
		"c.jpg": "cc",
		"d.jpg": "dd",
		"e.jpg": "ee",
	})

	var presignCalls atomic.Int32
	mock := &testutil.MockAPI{
		GetUploadLinksFunc: func(ctx context.Context, projectUUID string, files []imagentypes.FileInfo) ([]imagentypes.PresignedFile, error) {
			presignCalls.Add(1)
			assert.Len(t, files, 1, "workers request links one file at a time")
			return []imagentypes.PresignedFile{
				{FileName: files[0].FileName, UploadLink: "https://storage.invalid/" + files[0].FileName},
			}, nil
		},
	}

	paths := []string{"a.jpg", "b.jpg", "c.jpg", "d.jpg", "e.jpg"}
	summary, err := NewUploader(mock, fs, nil).Upload(context.Background(), "proj-1", paths,
		imagentypes.UploadConfig{Concurrency: 3})

	require.NoError(t, err, "per-file failures are not a batch error")
	assert.Equal(t, 5, summary.Total)
	assert.Equal(t, 4, summary.Successful)
	assert.Equal(t, 1, summary.Failed)

	assert.Equal(t, "b.jpg", summary.Results[1].File)
	assert.False(t, summary.Results[1].Success)
	assert.Contains(t, summary.Results[1].Error, "fingerprint:")

	assert.Equal(t, []string{"a.jpg", "c.jpg", "d.jpg", "e.jpg"}, summary.SuccessfulFiles())
	assert.Equal(t, int32(4), presignCalls.Load(), "no link requested for the file that failed fingerprinting")
}

func TestUploadFingerprint(t *testing.T) {
	// JPEG magic bytes followed by filler.
	jpegContent := "\xff\xd8\xff\xe0" + strings.Repeat("x", 600)
	fs := testutil.NewMemFS(t, map[string]string{
		"shoot/photo.jpg": jpegContent,
		"shoot/notes.txt": "abc",
	})

	type sentFile struct {
		info        imagentypes.FileInfo
		size        int64
		contentType string
		contentMD5  string
	}
	var mu sync.Mutex
	sent := map[string]*sentFile{}

	mock := &testutil.MockAPI{
		GetUploadLinksFunc: func(ctx context.Context, projectUUID string, files []imagentypes.FileInfo) ([]imagentypes.PresignedFile, error) {
			mu.Lock()
			sent[files[0].FileName] = &sentFile{info: files[0]}
			mu.Unlock()
			return []imagentypes.PresignedFile{
				{FileName: files[0].FileName, UploadLink: "https://storage.invalid/" + files[0].FileName},
			}, nil
		},
		UploadFileFunc: func(ctx context.Context, uploadLink string, body io.Reader, size int64, contentType, contentMD5 string) error {
			_, _ = io.Copy(io.Discard, body)
			name := uploadLink[strings.LastIndex(uploadLink, "/")+1:]
			mu.Lock()
			sent[name].size = size
			sent[name].contentType = contentType
			sent[name].contentMD5 = contentMD5
			mu.Unlock()
			return nil
		},
	}

	summary, err := NewUploader(mock, fs, nil).Upload(context.Background(), "proj-1",
		[]string{"shoot/photo.jpg", "shoot/notes.txt"}, imagentypes.UploadConfig{})

	require.NoError(t, err)
	require.Equal(t, 2, summary.Successful)

	photo := sent["photo.jpg"]
	require.NotNil(t, photo)
	assert.Equal(t, int64(len(jpegContent)), photo.size)
	assert.Equal(t, "image/jpeg", photo.contentType)

	// md5("abc") is the classic fixture: hex for the link request,
	// base64 of the raw digest for the Content-MD5 header.
	notes := sent["notes.txt"]
	require.NotNil(t, notes)
	assert.Equal(t, "900150983cd24fb0d6963f7d28e17f72", notes.info.MD5)
	assert.Equal(t, "kAFQmDzST7DWlj99KOF/cg==", notes.contentMD5)
	assert.Equal(t, int64(3), notes.size)
}

func TestUploadRespectsConcurrencyBound(t *testing.T) {
	files := map[string]string{}
	var paths []string
	for _, name := range []string{"1", "2", "3", "4", "5", "6", "7", "8"} {
		files[name+".jpg"] = "data"
		paths = append(paths, name+".jpg")
	}
	fs := testutil.NewMemFS(t, files)

	var current, peak atomic.Int32
	mock := &testutil.MockAPI{
		UploadFileFunc: func(ctx context.Context, uploadLink string, body io.Reader, size int64, contentType, contentMD5 string) error {
			n := current.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			current.Add(-1)
			_, _ = io.Copy(io.Discard, body)
			return nil
		},
	}

	summary, err := NewUploader(mock, fs, nil).Upload(context.Background(), "proj-1", paths,
		imagentypes.UploadConfig{Concurrency: 2})

	require.NoError(t, err)
	assert.Equal(t, 8, summary.Successful)
	assert.LessOrEqual(t, peak.Load(), int32(2), "no more than the configured number of uploads in flight")
}

func TestUploadProgressExactlyOncePerFile(t *testing.T) {
	fs := testutil.NewMemFS(t, map[string]string{
		"a.jpg": "aa",
		"c.jpg": "cc",
	})

	recorder := &testutil.ProgressRecorder{}
	mock := &testutil.MockAPI{}

	// b.jpg is missing, so it fails, but still gets its progress callback.
	paths := []string{"a.jpg", "b.jpg", "c.jpg"}
	summary, err := NewUploader(mock, fs, nil).Upload(context.Background(), "proj-1", paths,
		imagentypes.UploadConfig{Concurrency: 2, Progress: recorder.Record})

	require.NoError(t, err)
	assert.Equal(t, 2, summary.Successful)

	updates := recorder.Updates()
	require.Len(t, updates, 3, "one callback per file, success or not")

	seen := map[string]int{}
	for i, u := range updates {
		assert.Equal(t, i+1, u.Completed, "completed count increases by one per callback")
		assert.Equal(t, 3, u.Total)
		seen[u.File]++
	}
	for _, path := range paths {
		assert.Equal(t, 1, seen[path], "exactly one callback for %s", path)
	}
}

func TestUploadCancellation(t *testing.T) {
	fs := testutil.NewMemFS(t, map[string]string{
		"a.jpg": "aa",
		"b.jpg": "bb",
		"c.jpg": "cc",
		"d.jpg": "dd",
	})

	ctx, cancel := context.WithCancel(context.Background())
	mock := &testutil.MockAPI{
		UploadFileFunc: func(ctx context.Context, uploadLink string, body io.Reader, size int64, contentType, contentMD5 string) error {
			cancel()
			<-ctx.Done()
			return ctx.Err()
		},
	}

	paths := []string{"a.jpg", "b.jpg", "c.jpg", "d.jpg"}
	summary, err := NewUploader(mock, fs, nil).Upload(ctx, "proj-1", paths,
		imagentypes.UploadConfig{Concurrency: 1})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)

	require.NotNil(t, summary, "partial summary is returned alongside the cancellation error")
	assert.Equal(t, 4, summary.Total)
	assert.Equal(t, 0, summary.Successful)
	assert.Equal(t, 4, summary.Failed)

	// The in-flight file records its own error; the rest never started.
	assert.Contains(t, summary.Results[0].Error, "upload:")
	for _, result := range summary.Results[1:] {
		assert.Contains(t, result.Error, "cancelled:")
	}
}

func TestUploadEmptyBatch(t *testing.T) {
	fs := testutil.NewMemFS(t, nil)
	mock := &testutil.MockAPI{}

	summary, err := NewUploader(mock, fs, nil).Upload(context.Background(), "proj-1", nil,
		imagentypes.UploadConfig{})

	require.NoError(t, err)
	assert.Equal(t, 0, summary.Total)
	assert.Empty(t, summary.Results)
}

func TestUploadNoLinkReturned(t *testing.T) {
	fs := testutil.NewMemFS(t, map[string]string{"a.jpg": "aa"})
	mock := &testutil.MockAPI{
		GetUploadLinksFunc: func(ctx context.Context, projectUUID string, files []imagentypes.FileInfo) ([]imagentypes.PresignedFile, error) {
			return nil, nil
		},
	}

	summary, err := NewUploader(mock, fs, nil).Upload(context.Background(), "proj-1",
		[]string{"a.jpg"}, imagentypes.UploadConfig{})

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Failed)
	assert.Contains(t, summary.Results[0].Error, "presign:")
}
