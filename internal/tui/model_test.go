package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/janekbaraniewski/priceanatomy/internal/config"
	"github.com/janekbaraniewski/priceanatomy/internal/core"
	"github.com/janekbaraniewski/priceanatomy/internal/selection"
	"github.com/shopspring/decimal"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestDetailViewShowsTotals(t *testing.T) {
	m := newTestModel(t, 100, 40, "lixiang-l9")
	view := m.View()
	for _, want := range []string{"Lixiang", "L9 Ultra", "11.39 mln ₽", "Breakdown", "stencil /cars/l9-mask.png", "6.10"} {
		if !strings.Contains(view, want) {
			t.Errorf("detail view missing %q", want)
		}
	}
	if strings.Contains(view, "▸") {
		t.Error("nothing should be highlighted initially")
	}
}

func TestHomeViewShowsCards(t *testing.T) {
	m := newTestModel(t, 100, 40, "")
	view := m.View()
	for _, want := range []string{"~11.4 mln ₽", "~12.5 mln ₽", "L9 Ultra", "009 Grand"} {
		if !strings.Contains(view, want) {
			t.Errorf("home view missing %q", want)
		}
	}
}

func TestMissingStencilShowsPlaceholder(t *testing.T) {
	cat, err := core.NewCatalog([]core.Item{{
		ID: "bare", Brand: "Plain", Model: "Car",
		Layers: []core.CostLayer{{ID: "a", Label: "A", Amount: decimal.NewFromInt(1), ColorToken: "blue-600"}},
	}})
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	m := send(NewModel(Options{Catalog: cat, InitialItem: "bare"}), tea.WindowSizeMsg{Width: 100, Height: 40})
	if !strings.Contains(m.View(), core.StencilPlaceholder) {
		t.Fatal("placeholder missing")
	}
}

func TestUnknownItemShowsNotFound(t *testing.T) {
	m := newTestModel(t, 100, 40, "no-such-car")
	if !strings.Contains(m.View(), notFoundText) {
		t.Fatal("not found screen missing")
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenHome {
		t.Fatalf("screen = %v, want home", m.screen)
	}
}

func TestKeyboardStepsThroughLayers(t *testing.T) {
	m := newTestModel(t, 100, 40, "lixiang-l9")

	m = send(m, tea.KeyMsg{Type: tea.KeyRight})
	if got := m.sel.State(); got != selection.Active("factory") {
		t.Fatalf("right from idle: %v, want active(factory)", got)
	}
	m = send(m, tea.KeyMsg{Type: tea.KeyLeft})
	if got := m.sel.State(); got != selection.Active("margin") {
		t.Fatalf("left wraps: %v, want active(margin)", got)
	}
	m = send(m, tea.KeyMsg{Type: tea.KeySpace})
	if got := m.sel.State(); got != selection.Idle {
		t.Fatalf("toggle: %v, want idle", got)
	}
	m = send(m, tea.KeyMsg{Type: tea.KeyLeft})
	if got := m.sel.State(); got != selection.Active("margin") {
		t.Fatalf("left from idle: %v, want active(margin)", got)
	}
	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.sel.AnyActive() || m.screen != screenDetail {
		t.Fatal("esc should clear the selection first")
	}
	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenHome {
		t.Fatal("second esc should go back home")
	}
}

func TestSwitchingItemResetsSelection(t *testing.T) {
	m := newTestModel(t, 100, 40, "lixiang-l9")
	m = send(m, motion(factoryCol, stripRow))
	if !m.sel.AnyActive() {
		t.Fatal("precondition: factory active")
	}

	m = send(m, keyRunes("n"))
	if m.itemID != "zeekr-009" {
		t.Fatalf("item = %q, want zeekr-009", m.itemID)
	}
	if m.sel.AnyActive() || m.hovered != "" {
		t.Fatalf("selection not reset: %v hovered=%q", m.sel.State(), m.hovered)
	}

	m = send(m, keyRunes("n"))
	if m.itemID != "lixiang-l9" {
		t.Fatalf("item = %q, want wrap to lixiang-l9", m.itemID)
	}
}

func TestHomeKeyboardOpensFocusedCard(t *testing.T) {
	m := newTestModel(t, 100, 40, "")
	m = send(m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenDetail || m.itemID != "zeekr-009" {
		t.Fatalf("screen=%v item=%q, want zeekr detail", m.screen, m.itemID)
	}
}

func TestCatalogReloadResetsSelection(t *testing.T) {
	m := newTestModel(t, 100, 40, "lixiang-l9")
	m = send(m, motion(factoryCol, stripRow))

	cat, err := core.NewCatalog([]core.Item{{
		ID: "lixiang-l9", Brand: "Lixiang", Model: "L9 Max",
		Layers: []core.CostLayer{{ID: "factory", Label: "Factory Price", Amount: decimal.NewFromInt(7000000), ColorToken: "blue-600"}},
	}})
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	m = send(m, CatalogReloadedMsg{Catalog: cat})

	if m.sel.AnyActive() {
		t.Fatal("selection should reset on reload")
	}
	view := m.View()
	if !strings.Contains(view, "L9 Max") || !strings.Contains(view, "7.00 mln ₽") {
		t.Fatal("reloaded data not shown")
	}
	if !strings.Contains(view, "catalog reloaded") {
		t.Fatal("reload status missing")
	}
}

func TestCatalogErrorKeepsCatalog(t *testing.T) {
	m := newTestModel(t, 100, 40, "lixiang-l9")
	m = send(m, CatalogErrorMsg{Err: errors.New("bad json")})
	if m.catalog.Len() != 2 {
		t.Fatalf("catalog len = %d, want 2", m.catalog.Len())
	}
	if !strings.Contains(m.View(), "keeping previous catalog") {
		t.Fatal("error status missing")
	}
}

func TestHelpOverlayToggles(t *testing.T) {
	m := newTestModel(t, 100, 40, "lixiang-l9")
	m = send(m, keyRunes("?"))
	if !strings.Contains(m.View(), "Reading the strip") {
		t.Fatal("help overlay missing")
	}
	m = send(m, motion(factoryCol, stripRow))
	if m.sel.AnyActive() {
		t.Fatal("pointer events must not reach the strip under the help overlay")
	}
	m = send(m, keyRunes("x"))
	if m.showHelp {
		t.Fatal("any key should close help")
	}
}

func TestThemeKeyPersistsChoice(t *testing.T) {
	keepTheme(t)

	var saved string
	m := NewModel(Options{SaveTheme: func(name string) error { saved = name; return nil }})
	updated, cmd := m.Update(keyRunes("t"))
	if cmd == nil {
		t.Fatal("theme change should return a persist command")
	}
	msg := cmd()
	if _, ok := msg.(themePersistedMsg); !ok {
		t.Fatalf("msg = %T, want themePersistedMsg", msg)
	}
	if saved == "" || saved != ActiveTheme().Name {
		t.Fatalf("saved = %q, active = %q", saved, ActiveTheme().Name)
	}
	_ = updated
}

func TestDetailLayoutHit(t *testing.T) {
	m := newTestModel(t, 100, 40, "lixiang-l9")
	lay := m.detailLayout(mustItem(t, m))

	tests := []struct {
		name   string
		x, y   int
		want   core.LayerID
		wantOK bool
	}{
		{"strip factory", factoryCol, rowStrip, "factory", true},
		{"strip last row", customsCol, rowStrip + stripHeight - 1, "customs", true},
		{"above strip", factoryCol, rowTooltip, "", false},
		{"left margin", 0, rowStrip, "", false},
		{"legend top row", 4, legendMargin, "margin", true},
		{"legend bottom row", 4, legendFact, "factory", true},
		{"below legend", 4, legendFact + 1, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := lay.hit(tt.x, tt.y)
			if got != tt.want || ok != tt.wantOK {
				t.Fatalf("hit(%d,%d) = %q,%v want %q,%v", tt.x, tt.y, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestModelUsesConfigUIRules(t *testing.T) {
	ui := config.UIConfig{MinVisiblePercent: 0, SideBySideColumns: 90}
	m := NewModel(Options{UI: ui})
	if m.ui != ui.Normalized() {
		t.Fatalf("ui = %+v, want %+v", m.ui, ui.Normalized())
	}
	if m.ui.MinVisiblePercent != 2.5 || m.ui.SideBySideColumns != 90 {
		t.Fatalf("ui = %+v", m.ui)
	}
}
