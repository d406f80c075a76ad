// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package check

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/AleutianAI/BoardCheck/services/boardcheck/bundle"
)

// PrimaryMirrorPrefix is the required prefix of the first music mirror.
const PrimaryMirrorPrefix = "https://nikkums.io/cswt/"

// ErrMirrorCredentials is returned by a MetadataFetcher when a mirror needs
// credentials that were not configured.
var ErrMirrorCredentials = errors.New("mirror requires credentials")

// ErrMalformedMirrorLink is returned by a MetadataFetcher when a mirror URL
// cannot be turned into a metadata request.
var ErrMalformedMirrorLink = errors.New("malformed mirror link")

const (
	primaryMirrorError = "The primary download link for custom music must start with `" + PrimaryMirrorPrefix + "`. " +
		"This means it should be listed first, above any other mirrors."
	singleMirrorMessage = "Boards that require downloading custom music should define at least two download mirrors. " +
		"Currently, only one is defined."
	credentialsMessage = "To run the Music Download test against the mirror `%s`, you must supply a valid Google Drive API key."
	malformedLinkError = "The custom music download link `%s` is malformed: %v."
	downloadError      = "The custom music archive at `%s` could not be downloaded. (Error: %v)"
	sizeMismatchError  = "The music files downloaded from each mirror are not the same. " +
		"The archive from %s is %s, but the archive from %s is %s."
	noFetcherMessage = "Music mirror sizes were not compared because mirror lookups are disabled."
)

// MirrorMetadata is what a mirror reports about its music archive.
type MirrorMetadata struct {
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
}

// MetadataFetcher looks up a mirror's archive metadata without downloading
// the archive.
type MetadataFetcher interface {
	FetchMetadata(ctx context.Context, mirrorURL string) (MirrorMetadata, error)
}

// MirrorReport is the per-mirror payload of the music-download check.
type MirrorReport struct {
	URL          string    `json:"url"`
	Host         string    `json:"host"`
	Size         int64     `json:"size,omitempty"`
	LastModified time.Time `json:"last_modified,omitempty"`
	Error        string    `json:"error,omitempty"`
}

// =============================================================================
// MUSIC DOWNLOAD
// =============================================================================

// MusicDownload verifies the descriptor's custom music mirrors.
//
// Description:
//
//	The primary mirror must be hosted at PrimaryMirrorPrefix. With two or
//	more mirrors, each mirror's archive size is fetched and compared with
//	the primary's. Fetch failures become messages: missing credentials
//	are informational, everything else is an error. Mirrors are queried
//	one at a time in declaration order.
type MusicDownload struct {
	// Fetcher may be nil, in which case sizes are not compared.
	Fetcher MetadataFetcher
}

func (MusicDownload) Name() Name { return NameMusicDownload }

func (m MusicDownload) Run(ctx context.Context, b *bundle.Bundle, opts Options) Result {
	var f findings
	if b.Descriptor == nil {
		return f.result(opts, nil)
	}
	mirrors := b.Descriptor.MusicMirrors()
	if len(mirrors) == 0 {
		return f.result(opts, nil)
	}

	if !strings.HasPrefix(mirrors[0], PrimaryMirrorPrefix) {
		f.errorf(primaryMirrorError)
	}
	if len(mirrors) < 2 {
		f.infof(singleMirrorMessage)
		return f.result(opts, nil)
	}
	if m.Fetcher == nil {
		f.infof(noFetcherMessage)
		return f.result(opts, nil)
	}

	reports := make([]MirrorReport, 0, len(mirrors))
	var primary MirrorReport
	for i, mirror := range mirrors {
		report := MirrorReport{URL: mirror, Host: host(mirror)}
		meta, err := m.Fetcher.FetchMetadata(ctx, mirror)
		switch {
		case errors.Is(err, ErrMirrorCredentials):
			report.Error = err.Error()
			f.infof(credentialsMessage, mirror)
		case errors.Is(err, ErrMalformedMirrorLink):
			report.Error = err.Error()
			f.errorf(malformedLinkError, mirror, err)
		case err != nil:
			report.Error = err.Error()
			f.errorf(downloadError, mirror, err)
		default:
			report.Size = meta.Size
			report.LastModified = meta.LastModified
		}
		reports = append(reports, report)

		if report.Error != "" {
			continue
		}
		if i == 0 {
			primary = report
			continue
		}
		if primary.URL != "" && primary.Size != report.Size {
			f.errorf(sizeMismatchError,
				primary.Host, humanize.IBytes(uint64(primary.Size)),
				report.Host, humanize.IBytes(uint64(report.Size)))
		}
	}

	return f.result(opts, reports)
}

// host returns the host part of a mirror URL, or the URL itself when it
// does not parse.
func host(mirror string) string {
	u, err := url.Parse(mirror)
	if err != nil || u.Host == "" {
		return mirror
	}
	return u.Host
}
