// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/disiqueira/gotree/v3"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-rm-cloud/internal/index"
	"github.com/MKhiriev/go-rm-cloud/internal/service"
	"github.com/MKhiriev/go-rm-cloud/models"
)

var (
	cardStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	cardTitleStyle = lipgloss.NewStyle().Bold(true)
	cardLabelStyle = lipgloss.NewStyle().Faint(true).Width(12)
)

// renderTree draws everything below path. Folders are descended into;
// records reached twice (a broken parent chain) are drawn once.
func renderTree(idx *index.Index, path string) (string, error) {
	parent := models.RootParent()
	label := "/"
	if components := index.SplitPath(path); len(components) > 0 {
		doc, ok := idx.ResolvePath(components)
		if !ok {
			return "", fmt.Errorf("%w: %s", service.ErrDocumentNotFound, path)
		}
		parent = models.NodeParent(doc.ID)
		label = "/" + strings.Join(components, "/") + "  " + doc.ID.String()
	}

	tree := gotree.New(label)
	addChildren(tree, idx, parent, map[uuid.UUID]bool{})
	return tree.Print(), nil
}

func addChildren(tree gotree.Tree, idx *index.Index, parent models.Parent, seen map[uuid.UUID]bool) {
	for _, doc := range idx.Children(parent) {
		if seen[doc.ID] {
			continue
		}
		seen[doc.ID] = true

		node := tree.Add(displayName(*doc) + "  " + doc.ID.String())
		if doc.IsFolder() {
			addChildren(node, idx, models.NodeParent(doc.ID), seen)
		}
	}
}

// renderInfo draws a card describing doc.
func renderInfo(idx *index.Index, doc *models.Document) string {
	path, _ := idx.PathOf(doc.ID)

	kind := "notebook"
	if doc.IsFolder() {
		kind = "folder"
	}

	parent := doc.Parent.String()
	if doc.Parent.IsRoot() {
		parent = "(root)"
	}

	modified := "-"
	if !doc.ModifiedClient.IsZero() {
		modified = doc.ModifiedClient.Local().Format(time.RFC3339)
	}

	rows := [][2]string{
		{"Path", "/" + strings.Join(path, "/")},
		{"ID", doc.ID.String()},
		{"Type", kind},
		{"Parent", parent},
		{"Version", strconv.Itoa(doc.Version)},
		{"Modified", modified},
		{"Page", strconv.Itoa(doc.CurrentPage)},
		{"Bookmarked", strconv.FormatBool(doc.Bookmarked)},
	}

	var b strings.Builder
	b.WriteString(cardTitleStyle.Render(doc.VisibleName))
	b.WriteString("\n")
	for _, row := range rows {
		b.WriteString("\n")
		b.WriteString(cardLabelStyle.Render(row[0]))
		b.WriteString(row[1])
	}
	return cardStyle.Render(b.String())
}
