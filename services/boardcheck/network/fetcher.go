// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package network fetches music mirror metadata over HTTP for the
// music-download check.
package network

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/AleutianAI/BoardCheck/services/boardcheck/check"
)

// DefaultDriveEndpoint is the Google Drive files API.
const DefaultDriveEndpoint = "https://www.googleapis.com/drive/v3/files/"

const (
	defaultTimeout   = 15 * time.Second
	defaultRate      = 4
	defaultUserAgent = "boardcheck/1.0"
)

var (
	// ErrMalformedDriveLink is returned for Google Drive links without an
	// id parameter.
	ErrMalformedDriveLink = fmt.Errorf("%w: Google Drive links must look like "+
		"https://drive.google.com/u/2/uc?id=<some_id>&export=download", check.ErrMalformedMirrorLink)

	// ErrMissingDriveKey is returned for Google Drive links when no API key
	// is configured.
	ErrMissingDriveKey = fmt.Errorf("%w: Google Drive API key not configured", check.ErrMirrorCredentials)

	// ErrUnexpectedStatus is returned when a mirror answers with a non-2xx
	// status.
	ErrUnexpectedStatus = errors.New("unexpected HTTP status")

	// ErrMissingMetadata is returned when a mirror does not report the
	// archive's size or modification time.
	ErrMissingMetadata = errors.New("mirror did not report archive metadata")
)

// =============================================================================
// HTTP FETCHER
// =============================================================================

// HTTPFetcher implements check.MetadataFetcher.
//
// Description:
//
//	Plain mirrors are queried with a HEAD request and must report
//	Content-Length and Last-Modified. Google Drive links are resolved
//	through the Drive files API, which needs an API key. Requests are
//	rate limited across all mirrors.
//
// Thread Safety: Safe for concurrent use.
type HTTPFetcher struct {
	client        *http.Client
	limiter       *rate.Limiter
	driveKey      string
	driveEndpoint string
	userAgent     string
}

// Option configures the HTTPFetcher.
type Option func(*HTTPFetcher)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(f *HTTPFetcher) {
		if d > 0 {
			f.client.Timeout = d
		}
	}
}

// WithRateLimit sets the request rate across all mirrors. Zero or less
// disables limiting.
func WithRateLimit(perSecond float64) Option {
	return func(f *HTTPFetcher) {
		if perSecond <= 0 {
			f.limiter = rate.NewLimiter(rate.Inf, 0)
			return
		}
		f.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
	}
}

// WithDriveAPIKey sets the Google Drive API key.
func WithDriveAPIKey(key string) Option {
	return func(f *HTTPFetcher) {
		f.driveKey = key
	}
}

// WithDriveEndpoint overrides the Drive files API base URL.
func WithDriveEndpoint(endpoint string) Option {
	return func(f *HTTPFetcher) {
		f.driveEndpoint = endpoint
	}
}

// WithHTTPClient replaces the HTTP client. The client's timeout is kept.
func WithHTTPClient(c *http.Client) Option {
	return func(f *HTTPFetcher) {
		if c != nil {
			f.client = c
		}
	}
}

// NewHTTPFetcher creates a fetcher.
func NewHTTPFetcher(opts ...Option) *HTTPFetcher {
	f := &HTTPFetcher{
		client:        &http.Client{Timeout: defaultTimeout},
		limiter:       rate.NewLimiter(rate.Limit(defaultRate), 1),
		driveEndpoint: DefaultDriveEndpoint,
		userAgent:     defaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

var _ check.MetadataFetcher = (*HTTPFetcher)(nil)

// FetchMetadata returns the size and modification time of the archive at
// mirrorURL.
//
// Inputs:
//
//	ctx - Context for cancellation
//	mirrorURL - The mirror's download URL
//
// Outputs:
//
//	check.MirrorMetadata - Size and modification time
//	error - ErrMissingDriveKey, ErrMalformedDriveLink, ErrUnexpectedStatus,
//	        ErrMissingMetadata, or a transport error
func (f *HTTPFetcher) FetchMetadata(ctx context.Context, mirrorURL string) (check.MirrorMetadata, error) {
	u, err := url.Parse(mirrorURL)
	if err != nil {
		return check.MirrorMetadata{}, fmt.Errorf("%w: %v", check.ErrMalformedMirrorLink, err)
	}
	if isDriveHost(u.Host) {
		return f.fetchDrive(ctx, u)
	}
	return f.fetchHead(ctx, mirrorURL)
}

func isDriveHost(host string) bool {
	return host == "drive.google.com" || strings.HasSuffix(host, ".drive.google.com")
}

func (f *HTTPFetcher) do(ctx context.Context, method, target string, accept string) (*http.Response, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", check.ErrMalformedMirrorLink, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	return f.client.Do(req)
}

// fetchHead reads the metadata of a plain HTTP mirror.
func (f *HTTPFetcher) fetchHead(ctx context.Context, mirrorURL string) (check.MirrorMetadata, error) {
	resp, err := f.do(ctx, http.MethodHead, mirrorURL, "")
	if err != nil {
		return check.MirrorMetadata{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return check.MirrorMetadata{}, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}

	lastModified := resp.Header.Get("Last-Modified")
	if lastModified == "" || resp.ContentLength < 0 {
		return check.MirrorMetadata{}, ErrMissingMetadata
	}
	modified, err := http.ParseTime(lastModified)
	if err != nil {
		return check.MirrorMetadata{}, fmt.Errorf("%w: Last-Modified %q", ErrMissingMetadata, lastModified)
	}
	return check.MirrorMetadata{Size: resp.ContentLength, LastModified: modified}, nil
}

// driveFile is the Drive files API response.
type driveFile struct {
	Size         string `json:"size"`
	ModifiedTime string `json:"modifiedTime"`
	Error        *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// fetchDrive reads the metadata of a Google Drive hosted archive.
func (f *HTTPFetcher) fetchDrive(ctx context.Context, u *url.URL) (check.MirrorMetadata, error) {
	if f.driveKey == "" {
		return check.MirrorMetadata{}, ErrMissingDriveKey
	}
	id := u.Query().Get("id")
	if id == "" {
		return check.MirrorMetadata{}, ErrMalformedDriveLink
	}

	q := url.Values{}
	q.Set("alt", "json")
	q.Set("fields", "size,modifiedTime")
	q.Set("key", f.driveKey)
	target := strings.TrimSuffix(f.driveEndpoint, "/") + "/" + url.PathEscape(id) + "?" + q.Encode()

	resp, err := f.do(ctx, http.MethodGet, target, "application/json")
	if err != nil {
		return check.MirrorMetadata{}, err
	}
	defer resp.Body.Close()

	var file driveFile
	if err := json.NewDecoder(resp.Body).Decode(&file); err != nil {
		return check.MirrorMetadata{}, fmt.Errorf("decode drive response (%s): %w", resp.Status, err)
	}
	if file.Error != nil {
		return check.MirrorMetadata{}, fmt.Errorf("%w: %s (Error from server: %s)", ErrUnexpectedStatus, resp.Status, file.Error.Message)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return check.MirrorMetadata{}, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}

	size, err := strconv.ParseInt(file.Size, 10, 64)
	if err != nil {
		return check.MirrorMetadata{}, fmt.Errorf("%w: size %q", ErrMissingMetadata, file.Size)
	}
	modified, err := time.Parse(time.RFC3339Nano, file.ModifiedTime)
	if err != nil {
		return check.MirrorMetadata{}, fmt.Errorf("%w: modifiedTime %q", ErrMissingMetadata, file.ModifiedTime)
	}
	return check.MirrorMetadata{Size: size, LastModified: modified}, nil
}
