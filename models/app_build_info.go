// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
)

// BuildValueNA is shown for build metadata that was not injected.
const BuildValueNA = "N/A"

// AppBuildInfo carries build-time metadata injected with -ldflags.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo]. Empty values become
// [BuildValueNA].
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: orNA(buildVersion),
		buildDate:    orNA(buildDate),
		buildCommit:  orNA(buildCommit),
	}
}

func orNA(s string) string {
	if s == "" {
		return BuildValueNA
	}
	return s
}

func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}

// String formats the metadata for --version style output.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s", a.buildVersion, a.buildDate, a.buildCommit)
}

// MarshalJSON exposes the unexported fields to the version endpoint.
func (a AppBuildInfo) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Version string `json:"version"`
		Date    string `json:"buildDate"`
		Commit  string `json:"buildCommit"`
	}{a.buildVersion, a.buildDate, a.buildCommit})
}
