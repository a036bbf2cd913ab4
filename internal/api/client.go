package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/imagenai/imagen-ai-sdk/errors"
	"github.com/imagenai/imagen-ai-sdk/imagentypes"
)

// maxErrorBody bounds how much of an error response body is kept for diagnostics.
const maxErrorBody = 512

// Client is the HTTP implementation of the API interface.
//
// JSON API calls go through apiHTTP, which carries the configured request
// timeout. Presigned uploads and downloads go through transferHTTP, which has
// no global timeout: transfers of large files are bounded by their context.
type Client struct {
	baseURL      string
	apiKey       string
	apiHTTP      *http.Client
	transferHTTP *http.Client
	logger       *slog.Logger
}

// New creates a transport client for the given API root and key.
// A non-nil httpClient overrides both internal clients; the caller then owns
// all timeout behavior.
func New(apiKey, baseURL string, requestTimeout time.Duration, httpClient *http.Client, logger *slog.Logger) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		logger:  logger,
	}
	if httpClient != nil {
		c.apiHTTP = httpClient
		c.transferHTTP = httpClient
		return c
	}
	c.apiHTTP = &http.Client{Timeout: requestTimeout}
	c.transferHTTP = &http.Client{}
	return c
}

// CloseIdleConnections releases idle keep-alive connections held by the
// internal HTTP clients.
func (c *Client) CloseIdleConnections() {
	c.apiHTTP.CloseIdleConnections()
	if c.transferHTTP != c.apiHTTP {
		c.transferHTTP.CloseIdleConnections()
	}
}

// Request and response shapes of the remote service. Every API response is
// wrapped in a {"data": ...} envelope.

type createProjectRequest struct {
	Name string `json:"name,omitempty"`
}

type createProjectResponse struct {
	Data struct {
		ProjectUUID string `json:"project_uuid"`
	} `json:"data"`
}

type profilesResponse struct {
	Data struct {
		Profiles []imagentypes.Profile `json:"profiles"`
	} `json:"data"`
}

type uploadLinksRequest struct {
	FilesList []imagentypes.FileInfo `json:"files_list"`
}

type uploadLinksResponse struct {
	Data struct {
		FilesList []imagentypes.PresignedFile `json:"files_list"`
	} `json:"data"`
}

type startEditRequest struct {
	ProfileKey      int64                       `json:"profile_key"`
	PhotographyType imagentypes.PhotographyType `json:"photography_type,omitempty"`
	*imagentypes.EditOptions
}

type statusResponse struct {
	Data imagentypes.StatusDetails `json:"data"`
}

type downloadLinksResponse struct {
	Data struct {
		FilesList []imagentypes.DownloadLink `json:"files_list"`
	} `json:"data"`
}

// CreateProject creates a remote project and returns its UUID.
func (c *Client) CreateProject(ctx context.Context, name string) (string, error) {
	var out createProjectResponse
	if err := c.doJSON(ctx, http.MethodPost, "/projects/", createProjectRequest{Name: name}, &out); err != nil {
		return "", err
	}
	return out.Data.ProjectUUID, nil
}

// GetProfiles lists the AI editing profiles available to the account.
func (c *Client) GetProfiles(ctx context.Context) ([]imagentypes.Profile, error) {
	var out profilesResponse
	if err := c.doJSON(ctx, http.MethodGet, "/profiles", nil, &out); err != nil {
		return nil, err
	}
	return out.Data.Profiles, nil
}

// GetUploadLinks requests presigned upload destinations for the described files.
func (c *Client) GetUploadLinks(
	ctx context.Context,
	projectUUID string,
	files []imagentypes.FileInfo,
) ([]imagentypes.PresignedFile, error) {
	path := fmt.Sprintf("/projects/%s/get_temporary_upload_links", projectUUID)
	var out uploadLinksResponse
	if err := c.doJSON(ctx, http.MethodPost, path, uploadLinksRequest{FilesList: files}, &out); err != nil {
		return nil, err
	}
	return out.Data.FilesList, nil
}

// StartJob starts the edit or export job of a project. Edit jobs carry the
// profile key and editing parameters; export jobs take no body.
func (c *Client) StartJob(
	ctx context.Context,
	projectUUID string,
	kind imagentypes.JobKind,
	params imagentypes.EditParams,
) error {
	path := fmt.Sprintf("/projects/%s/%s", projectUUID, kind)
	if kind == imagentypes.JobEdit {
		body := startEditRequest{
			ProfileKey:      params.ProfileKey,
			PhotographyType: params.PhotographyType,
			EditOptions:     params.Options,
		}
		return c.doJSON(ctx, http.MethodPost, path, body, nil)
	}
	return c.doJSON(ctx, http.MethodPost, path, nil, nil)
}

// JobStatus queries the current status of a project's job.
func (c *Client) JobStatus(
	ctx context.Context,
	projectUUID string,
	kind imagentypes.JobKind,
) (*imagentypes.StatusDetails, error) {
	path := fmt.Sprintf("/projects/%s/%s/status", projectUUID, kind)
	var out statusResponse
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// GetLinks fetches the download links produced by a finished job.
func (c *Client) GetLinks(
	ctx context.Context,
	projectUUID string,
	kind imagentypes.JobKind,
) ([]imagentypes.DownloadLink, error) {
	path := fmt.Sprintf("/projects/%s/%s/get_temporary_download_links", projectUUID, kind)
	var out downloadLinksResponse
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Data.FilesList, nil
}

// UploadFile streams a file's bytes to a presigned upload destination.
// Presigned URLs carry their own authorization, so no API key is attached.
func (c *Client) UploadFile(
	ctx context.Context,
	uploadLink string,
	body io.Reader,
	size int64,
	contentType, contentMD5 string,
) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, uploadLink, body)
	if err != nil {
		return &errors.TransportError{Endpoint: redactLink(uploadLink), Err: err}
	}
	if size >= 0 {
		req.ContentLength = size
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if contentMD5 != "" {
		req.Header.Set("Content-MD5", contentMD5)
	}

	resp, err := c.transferHTTP.Do(req)
	if err != nil {
		return &errors.TransportError{Endpoint: redactLink(uploadLink), Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return c.statusError(redactLink(uploadLink), resp)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// DownloadFile opens a presigned download source for streaming. The caller
// owns the returned ReadCloser. Size is -1 when the server does not report
// a content length.
func (c *Client) DownloadFile(ctx context.Context, downloadLink string) (io.ReadCloser, int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, downloadLink, nil)
	if err != nil {
		return nil, 0, &errors.TransportError{Endpoint: redactLink(downloadLink), Err: err}
	}

	resp, err := c.transferHTTP.Do(req)
	if err != nil {
		return nil, 0, &errors.TransportError{Endpoint: redactLink(downloadLink), Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		defer func() { _ = resp.Body.Close() }()
		return nil, 0, c.statusError(redactLink(downloadLink), resp)
	}
	return resp.Body, resp.ContentLength, nil
}

// doJSON performs an authenticated JSON API call and decodes the response
// envelope into out when out is non-nil.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &errors.TransportError{Endpoint: path, Err: fmt.Errorf("encoding request: %w", err)}
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &errors.TransportError{Endpoint: path, Err: err}
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.apiHTTP.Do(req)
	if err != nil {
		return &errors.TransportError{Endpoint: path, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if c.logger != nil {
		c.logger.DebugContext(ctx, "api call",
			"method", method,
			"path", path,
			"status", resp.StatusCode,
			"duration", time.Since(start))
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return c.statusError(path, resp)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &errors.TransportError{
				StatusCode: resp.StatusCode,
				Endpoint:   path,
				Err:        fmt.Errorf("decoding response: %w", err),
			}
		}
	}
	return nil
}

// statusError converts a non-success response into a TransportError,
// keeping a bounded slice of the body for diagnostics.
func (c *Client) statusError(endpoint string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	underlying := errors.ErrRequestFailed
	if resp.StatusCode == http.StatusNotFound {
		underlying = errors.ErrNotFound
	}
	return &errors.TransportError{
		StatusCode: resp.StatusCode,
		Endpoint:   endpoint,
		Body:       strings.TrimSpace(string(body)),
		Err:        underlying,
	}
}

// redactLink strips the query string from a presigned URL so its signature
// never reaches logs or error messages.
func redactLink(link string) string {
	u, err := url.Parse(link)
	if err != nil {
		return "presigned-url"
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u.String()
}
