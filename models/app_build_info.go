// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppBuildInfo is what "saforia version" prints. The values come from
// -ldflags "-X main.buildVersion=..." and stay empty in development builds.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo bundles the linker-provided values.
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

// BuildVersion is the release tag, e.g. "v1.4.0".
func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

// BuildDate is the build time as set by the release script.
func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

// BuildCommit is the git commit the binary was built from.
func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}
