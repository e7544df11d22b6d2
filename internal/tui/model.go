package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/janekbaraniewski/priceanatomy/internal/config"
	"github.com/janekbaraniewski/priceanatomy/internal/core"
	"github.com/janekbaraniewski/priceanatomy/internal/geometry"
	"github.com/janekbaraniewski/priceanatomy/internal/logging"
	"github.com/janekbaraniewski/priceanatomy/internal/selection"
	"github.com/samber/lo"
)

type screen int

const (
	screenHome   screen = iota // card grid
	screenDetail               // strip + legend of one car
)

// CatalogReloadedMsg replaces the displayed catalog. The selection is reset
// because layer ids of the new data may differ.
type CatalogReloadedMsg struct {
	Catalog *core.Catalog
}

// CatalogErrorMsg reports a failed reload. The current catalog stays.
type CatalogErrorMsg struct {
	Err error
}

type themePersistedMsg struct {
	err error
}

// Options configures NewModel.
type Options struct {
	Catalog *core.Catalog
	// Source is a short description of where the catalog came from.
	Source string
	UI     config.UIConfig
	// InitialItem opens the detail screen for this id right away.
	InitialItem core.ItemID
	Logger      *log.Logger
	// SaveTheme persists the theme picked with the theme key. Nil disables
	// persistence.
	SaveTheme func(name string) error
}

type Model struct {
	catalog *core.Catalog
	source  string
	ui      config.UIConfig
	logger  *log.Logger
	keys    KeyMap
	help    help.Model

	screen  screen
	cursor  int         // focused card on the home grid
	itemID  core.ItemID // item shown on the detail screen, may be unknown
	sel     *selection.Controller
	hovered core.LayerID // layer under the pointer, "" when none

	showHelp bool
	status   string
	width    int
	height   int

	saveTheme func(string) error
}

func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	cat := opts.Catalog
	if cat == nil {
		cat, _ = core.NewCatalog(nil)
	}

	m := Model{
		catalog:   cat,
		source:    opts.Source,
		ui:        opts.UI.Normalized(),
		logger:    logger,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		sel:       selection.NewController(),
		saveTheme: opts.SaveTheme,
	}
	m.sel.Subscribe(func(prev, next selection.State) {
		logger.Debug("selection changed", "from", prev, "to", next)
	})
	if opts.InitialItem != "" {
		m.openItem(opts.InitialItem)
	}
	return m
}

func (m Model) persistThemeCmd(name string) tea.Cmd {
	if m.saveTheme == nil {
		return nil
	}
	save := m.saveTheme
	logger := m.logger
	return func() tea.Msg {
		err := save(name)
		if err != nil {
			logger.Warn("theme persist failed", "theme", name, "err", err)
		}
		return themePersistedMsg{err: err}
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case CatalogReloadedMsg:
		m.applyCatalog(msg.Catalog)
		return m, nil

	case CatalogErrorMsg:
		m.status = "reload failed, keeping previous catalog"
		return m, nil

	case themePersistedMsg:
		if msg.err != nil {
			m.status = "theme not saved"
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m *Model) applyCatalog(cat *core.Catalog) {
	if cat == nil {
		return
	}
	m.catalog = cat
	m.sel.Reset()
	m.hovered = ""
	if m.cursor >= cat.Len() {
		m.cursor = max(cat.Len()-1, 0)
	}
	m.status = fmt.Sprintf("catalog reloaded (%d cars)", cat.Len())
	m.logger.Info("catalog swapped", "items", cat.Len())
}

func (m Model) currentItem() (core.Item, error) {
	return m.catalog.Lookup(m.itemID)
}

// openItem shows the detail screen for id. The selection always starts idle.
func (m *Model) openItem(id core.ItemID) {
	m.screen = screenDetail
	m.itemID = id
	m.sel.Reset()
	m.hovered = ""
	if i := m.catalog.IndexOf(id); i >= 0 {
		m.cursor = i
	}
}

func (m *Model) goHome() {
	m.screen = screenHome
	m.sel.Reset()
	m.hovered = ""
}

func (m *Model) stepItem(delta int) {
	n := m.catalog.Len()
	if n == 0 {
		return
	}
	i := m.catalog.IndexOf(m.itemID)
	if i < 0 {
		i = 0
	} else {
		i = (i + delta + n) % n
	}
	if it, ok := m.catalog.At(i); ok {
		m.openItem(it.ID)
	}
}

// stepLayer moves the keyboard selection along the strip. Layers without a
// visible segment are skipped.
func (m *Model) stepLayer(it core.Item, delta int) {
	res := geometry.ComputeWidths(it.Layers, m.ui.MinVisiblePercent)
	ids := lo.FilterMap(res.Segments, func(s geometry.Segment, _ int) (core.LayerID, bool) {
		return s.LayerID, s.WidthPercent > 0
	})
	if len(ids) == 0 {
		return
	}
	cur := -1
	if st := m.sel.State(); st.Ok {
		cur = lo.IndexOf(ids, st.ID)
	}
	var next int
	switch {
	case cur < 0 && delta < 0:
		next = len(ids) - 1
	case cur < 0:
		next = 0
	default:
		next = (cur + delta + len(ids)) % len(ids)
	}
	m.sel.Set(ids[next])
}

// pointerAt turns pointer positions into leave/enter pairs: the previous
// target always gets its leave before the new one gets its enter.
func (m *Model) pointerAt(target core.LayerID) {
	if target == m.hovered {
		return
	}
	if m.hovered != "" {
		m.sel.HoverLeave(m.hovered)
	}
	m.hovered = target
	if target != "" {
		m.sel.HoverEnter(target)
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Help) {
		m.showHelp = !m.showHelp
		return m, nil
	}
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}
	if key.Matches(msg, m.keys.Theme) {
		name := CycleTheme()
		return m, m.persistThemeCmd(name)
	}

	if m.screen == screenHome {
		return m.handleHomeKey(msg)
	}
	return m.handleDetailKey(msg)
}

func (m Model) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cols := m.homeColumns()
	switch {
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-cols)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(cols)
	case key.Matches(msg, m.keys.Open):
		if it, ok := m.catalog.At(m.cursor); ok {
			m.openItem(it.ID)
		}
	}
	return m, nil
}

func (m *Model) moveCursor(delta int) {
	n := m.catalog.Len()
	if n == 0 {
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), n-1)
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	it, err := m.currentItem()
	if err != nil {
		if key.Matches(msg, m.keys.Back, m.keys.Clear, m.keys.Open) {
			m.goHome()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Right):
		m.stepLayer(it, 1)
	case key.Matches(msg, m.keys.Left):
		m.stepLayer(it, -1)
	case key.Matches(msg, m.keys.Toggle):
		if st := m.sel.State(); st.Ok {
			m.sel.ToggleClick(st.ID)
		} else {
			m.stepLayer(it, 1)
		}
	case key.Matches(msg, m.keys.Clear):
		if m.sel.AnyActive() {
			m.sel.Clear()
		} else {
			m.goHome()
		}
	case key.Matches(msg, m.keys.Back):
		m.goHome()
	case key.Matches(msg, m.keys.NextItem):
		m.stepItem(1)
	case key.Matches(msg, m.keys.PrevItem):
		m.stepItem(-1)
	}
	return m, nil
}

func isLeftPress(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		if msg.Action == tea.MouseActionPress {
			m.showHelp = false
		}
		return m, nil
	}
	if m.screen == screenHome {
		return m.handleHomeMouse(msg)
	}
	return m.handleDetailMouse(msg)
}

func (m Model) handleHomeMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	i, ok := m.cardAt(msg.X, msg.Y)
	if !ok {
		return m, nil
	}
	switch {
	case msg.Action == tea.MouseActionMotion:
		m.cursor = i
	case isLeftPress(msg):
		if it, found := m.catalog.At(i); found {
			m.openItem(it.ID)
		}
	}
	return m, nil
}

func (m Model) handleDetailMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if isLeftPress(msg) && backHit(msg.X, msg.Y) {
		m.goHome()
		return m, nil
	}
	it, err := m.currentItem()
	if err != nil {
		return m, nil
	}

	lay := m.detailLayout(it)
	switch {
	case msg.Action == tea.MouseActionMotion:
		target, _ := lay.hit(msg.X, msg.Y)
		m.pointerAt(target)
	case isLeftPress(msg):
		if target, ok := lay.hit(msg.X, msg.Y); ok {
			m.sel.ToggleClick(target)
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	if m.showHelp {
		return m.renderHelpOverlay()
	}
	if m.screen == screenHome {
		return m.renderHome()
	}
	return m.renderDetail()
}

func (m Model) renderFooter(k help.KeyMap) string {
	h := m.help
	h.Styles.ShortKey = helpKeyStyle
	h.Styles.ShortDesc = helpDescStyle
	h.Styles.ShortSeparator = helpDescStyle
	h.Styles.FullKey = helpKeyStyle
	h.Styles.FullDesc = helpDescStyle
	h.Styles.FullSeparator = helpDescStyle

	out := h.View(k)
	if m.status != "" {
		out = labelStyle.Render(m.status) + dimStyle.Render("  │  ") + out
	}
	// Full width so the footer replaces anything drawn on its row.
	return padRight(" "+out, m.width)
}
