// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// AppName is the product name shown in the UI and sent in the User-Agent.
const AppName = "artist-guesser-client"

// AppBuildInfo carries immutable build-time metadata embedded into the binary.
//
// Values are injected by linker flags and shown in the build info window.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo] from the provided build metadata.
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

// BuildVersion returns the semantic version string of the build.
func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

// BuildDate returns the build timestamp string.
func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

// BuildCommit returns the source-control commit hash used for the build.
func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}

// UserAgent returns the default User-Agent header value for this build,
// e.g. "artist-guesser-client/1.2.0". Unversioned builds report "dev".
func (a AppBuildInfo) UserAgent() string {
	version := strings.TrimSpace(a.buildVersion)
	if version == "" || version == "N/A" {
		version = "dev"
	}
	return AppName + "/" + version
}
