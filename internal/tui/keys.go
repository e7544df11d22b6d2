package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every binding of the dashboard.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Open     key.Binding
	Toggle   key.Binding
	Clear    key.Binding
	Back     key.Binding
	NextItem key.Binding
	PrevItem key.Binding
	Theme    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev layer"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next layer"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "toggle layer"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear"),
		),
		Back: key.NewBinding(
			key.WithKeys("backspace", "b"),
			key.WithHelp("b", "back"),
		),
		NextItem: key.NewBinding(
			key.WithKeys("n", "tab"),
			key.WithHelp("n", "next car"),
		),
		PrevItem: key.NewBinding(
			key.WithKeys("p", "shift+tab"),
			key.WithHelp("p", "prev car"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// homeKeys and detailKeys pick the bindings shown in each screen's footer.
type homeKeys struct{ KeyMap }

func (k homeKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.arrows(), k.Open, k.Theme, k.Help, k.Quit}
}

func (k homeKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.arrows(), k.Open}, {k.Theme, k.Help, k.Quit}}
}

func (k homeKeys) arrows() key.Binding {
	return key.NewBinding(
		key.WithKeys("up", "down", "left", "right"),
		key.WithHelp("←↑↓→", "move"),
	)
}

type detailKeys struct{ KeyMap }

func (k detailKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Toggle, k.Clear, k.Back, k.NextItem, k.Quit}
}

func (k detailKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Toggle, k.Clear},
		{k.Back, k.NextItem, k.PrevItem},
		{k.Theme, k.Help, k.Quit},
	}
}
