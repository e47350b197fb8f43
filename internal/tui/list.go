package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-rm-cloud/models"
)

const nameWidth = 40

func listIcon(doc *models.Document) string {
	if doc.IsFolder() {
		return "[D]"
	}
	return "[N]"
}

func displayName(doc *models.Document) string {
	if doc.IsFolder() {
		return doc.VisibleName + "/"
	}
	return doc.VisibleName
}

// renderList draws one line per document with the cursor row highlighted.
func renderList(items []*models.Document, cursor int) string {
	if len(items) == 0 {
		return "(empty)"
	}

	var b strings.Builder
	for i, doc := range items {
		name := fitText(displayName(doc), nameWidth)
		line := fmt.Sprintf("%s %-*s  %s", listIcon(doc), nameWidth, name, doc.ID)
		if doc.IsFolder() {
			line = folderStyle.Render(line)
		}
		if i == cursor {
			line = cursorStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
