// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-rm-cloud/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString("Application: rmcloud\n")
	b.WriteString("Version: ")
	b.WriteString(valueOrNA(info.BuildVersion()))
	b.WriteString("\n")
	b.WriteString("Date: ")
	b.WriteString(valueOrNA(info.BuildDate()))
	b.WriteString("\n")
	b.WriteString("Commit: ")
	b.WriteString(valueOrNA(info.BuildCommit()))

	return renderPage("ABOUT", b.String(), "esc: back")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
