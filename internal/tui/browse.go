package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-rm-cloud/internal/index"
	"github.com/MKhiriev/go-rm-cloud/internal/service"
	"github.com/MKhiriev/go-rm-cloud/models"
)

const browseHotKeys = "enter: open │ backspace: up │ t: trash │ c: copy id │ r: reload │ i: about"

type browseModel struct {
	ctx  context.Context
	docs service.ClientDocumentService
	info models.AppBuildInfo
	copy func(string) error

	idx     *index.Index
	parent  models.Parent
	// trail holds the folders entered from the root, or from the trash when
	// inTrash is set, outermost first.
	trail   []uuid.UUID
	inTrash bool
	items   []*models.Document
	cursor  int

	loading  bool
	spinner  spinner.Model
	status   string
	overlay  *errorOverlayModel
	showInfo bool
}

func newBrowseModel(ctx context.Context, docs service.ClientDocumentService, info models.AppBuildInfo) browseModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return browseModel{
		ctx:     ctx,
		docs:    docs,
		info:    info,
		copy:    clipboard.WriteAll,
		idx:     index.New(),
		parent:  models.RootParent(),
		loading: true,
		spinner: s,
	}
}

func (m browseModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoadIndex())
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case indexLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.overlay = &errorOverlayModel{message: humanizeError(msg.err)}
			return m, nil
		}
		m.idx = msg.idx
		m.restoreTrail()
		m.refresh()
		m.status = fmt.Sprintf("%d documents", m.idx.Len())
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.overlay = &errorOverlayModel{message: "copy failed: " + msg.err.Error()}
			return m, nil
		}
		m.status = "copied " + msg.text
		return m, nil
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.Matches(keyMsg, keys.quit) {
		return m, tea.Quit
	}

	if m.overlay != nil || m.showInfo {
		if key.Matches(keyMsg, keys.esc) || key.Matches(keyMsg, keys.open) {
			m.overlay = nil
			m.showInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, keys.down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, keys.open):
		doc, ok := m.current()
		if !ok {
			return m, nil
		}
		if !doc.IsFolder() {
			m.status = "download it with: rmcloud pull " + m.pathOf(doc.ID)
			return m, nil
		}
		m.trail = append(m.trail, doc.ID)
		m.parent = models.NodeParent(doc.ID)
		m.cursor = 0
		m.refresh()
	case key.Matches(keyMsg, keys.back), key.Matches(keyMsg, keys.esc):
		m.goUp()
	case key.Matches(keyMsg, keys.trash):
		m.trail = nil
		m.inTrash = true
		m.parent = m.trailParent()
		m.cursor = 0
		m.refresh()
	case key.Matches(keyMsg, keys.copy):
		doc, ok := m.current()
		if !ok {
			return m, nil
		}
		return m, m.cmdCopy(doc.ID.String())
	case key.Matches(keyMsg, keys.reload):
		if m.loading {
			return m, nil
		}
		m.loading = true
		m.status = ""
		return m, tea.Batch(m.spinner.Tick, m.cmdLoadIndex())
	case key.Matches(keyMsg, keys.info):
		m.showInfo = true
	}

	return m, nil
}

func (m browseModel) View() string {
	if m.showInfo {
		return renderBuildInfoWindow(m.info)
	}

	var body string
	switch {
	case m.loading:
		body = m.spinner.View() + " loading documents..."
	default:
		body = renderList(m.items, m.cursor)
	}
	if m.status != "" {
		body += "\n\n" + m.status
	}

	page := renderPage(m.title(), body, browseHotKeys)
	if m.overlay != nil {
		page += "\n\n" + m.overlay.View()
	}
	return page
}

func (m browseModel) cmdLoadIndex() tea.Cmd {
	ctx := m.ctx
	docs := m.docs

	return func() tea.Msg {
		idx, err := docs.Index(ctx)
		return indexLoadedMsg{idx: idx, err: err}
	}
}

func (m browseModel) cmdCopy(text string) tea.Cmd {
	copyFn := m.copy
	return func() tea.Msg {
		return copiedMsg{text: text, err: copyFn(text)}
	}
}

func (m browseModel) current() (*models.Document, bool) {
	if len(m.items) == 0 || m.cursor < 0 || m.cursor >= len(m.items) {
		return nil, false
	}
	return m.items[m.cursor], true
}

// refresh reloads the visible items from the index and keeps the cursor in
// range.
func (m *browseModel) refresh() {
	m.items = m.idx.Children(m.parent)
	if m.cursor >= len(m.items) {
		m.cursor = len(m.items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// restoreTrail drops the part of the trail that no longer exists, or was
// moved elsewhere, after a reload.
func (m *browseModel) restoreTrail() {
	for i, id := range m.trail {
		if doc, ok := m.idx.Get(id); !ok || !doc.IsFolder() || doc.Parent != m.baseParent(i) {
			m.trail = m.trail[:i]
			m.cursor = 0
			break
		}
	}
	m.parent = m.trailParent()
}

func (m *browseModel) goUp() {
	if len(m.trail) == 0 {
		if m.inTrash {
			m.inTrash = false
			m.parent = models.RootParent()
			m.cursor = 0
			m.refresh()
		}
		return
	}

	left := m.trail[len(m.trail)-1]
	m.trail = m.trail[:len(m.trail)-1]
	m.parent = m.trailParent()
	m.refresh()

	m.cursor = 0
	for i, doc := range m.items {
		if doc.ID == left {
			m.cursor = i
			break
		}
	}
}

func (m browseModel) trailParent() models.Parent {
	return m.baseParent(len(m.trail))
}

// baseParent is the parent of the folder at trail position i.
func (m browseModel) baseParent(i int) models.Parent {
	switch {
	case i > 0:
		return models.NodeParent(m.trail[i-1])
	case m.inTrash:
		return models.TrashParent()
	default:
		return models.RootParent()
	}
}

func (m browseModel) title() string {
	var prefix string
	if m.inTrash {
		prefix = "TRASH"
	}
	if len(m.trail) == 0 {
		if prefix == "" {
			return "/"
		}
		return prefix
	}
	return prefix + m.pathOf(m.trail[len(m.trail)-1])
}

func (m browseModel) pathOf(id uuid.UUID) string {
	path, ok := m.idx.PathOf(id)
	if !ok {
		return id.String()
	}
	return "/" + strings.Join(path, "/")
}
