package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/wippyai/wasm-ir/ir"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	funcStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Browse the demo module interactively",
	Long: `view opens a terminal browser over the demo module: pick a function from
the list and walk its expression tree.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runView(buildDemoModule())
	},
}

type viewState int

const (
	stateListFuncs viewState = iota
	stateViewTree
)

type viewModel struct {
	module *ir.Module
	funcs  []funcEntry

	// visible maps list rows to funcs indices under the current filter.
	visible   []int
	selected  int
	filtering bool
	filter    textinput.Model

	// tree holds the flattened body of the opened function.
	tree     []treeLine
	treeName string
	cursor   int
	top      int

	width  int
	height int
	state  viewState
}

type funcEntry struct {
	f     *ir.Function
	nodes int
}

type treeLine struct {
	text string
	typ  string
}

func newViewModel(m *ir.Module) *viewModel {
	vm := &viewModel{module: m, state: stateListFuncs, height: 24}

	for _, f := range m.Functions {
		entry := funcEntry{f: f}
		if f.Body != nil {
			entry.nodes = countNodes(f.Body)
		}
		vm.funcs = append(vm.funcs, entry)
	}

	ti := textinput.New()
	ti.Placeholder = "function name"
	ti.Prompt = "/ "
	ti.Width = 30
	vm.filter = ti

	vm.applyFilter()
	return vm
}

func countNodes(e ir.Expression) int {
	count := 0
	ir.Walk(e, func(ir.Expression) bool {
		count++
		return true
	})
	return count
}

func (m *viewModel) applyFilter() {
	needle := strings.ToLower(m.filter.Value())
	m.visible = m.visible[:0]
	for i, e := range m.funcs {
		if needle == "" || strings.Contains(strings.ToLower(e.f.Name), needle) {
			m.visible = append(m.visible, i)
		}
	}
	if m.selected >= len(m.visible) {
		m.selected = 0
	}
}

func (m *viewModel) openTree() {
	f := m.funcs[m.visible[m.selected]].f
	if f.Body == nil {
		return
	}
	m.tree = m.tree[:0]
	m.flatten(f.Body, 0)
	m.treeName = f.Name
	m.cursor = 0
	m.top = 0
	m.state = stateViewTree
}

func (m *viewModel) flatten(e ir.Expression, depth int) {
	text := strings.Repeat("  ", depth) + label(e)
	if d := detailsWith(e, fmt.Sprint); d != "" {
		text += " " + d
	}
	m.tree = append(m.tree, treeLine{text: text, typ: e.Type().String()})
	ir.Children(e, func(c ir.Expression) bool {
		m.flatten(c, depth+1)
		return true
	})
}

func (m *viewModel) Init() tea.Cmd {
	return nil
}

func (m *viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit
			case "enter":
				m.filtering = false
				m.filter.Blur()
			case "esc":
				m.filtering = false
				m.filter.Blur()
				m.filter.SetValue("")
				m.applyFilter()
			default:
				var cmd tea.Cmd
				m.filter, cmd = m.filter.Update(msg)
				m.applyFilter()
				return m, cmd
			}
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			switch m.state {
			case stateListFuncs:
				if m.selected > 0 {
					m.selected--
				}
			case stateViewTree:
				if m.cursor > 0 {
					m.cursor--
				}
			}

		case "down", "j":
			switch m.state {
			case stateListFuncs:
				if m.selected < len(m.visible)-1 {
					m.selected++
				}
			case stateViewTree:
				if m.cursor < len(m.tree)-1 {
					m.cursor++
				}
			}

		case "enter":
			if m.state == stateListFuncs && len(m.visible) > 0 {
				m.openTree()
			}

		case "/":
			if m.state == stateListFuncs {
				m.filtering = true
				return m, m.filter.Focus()
			}

		case "esc":
			switch m.state {
			case stateListFuncs:
				m.filter.SetValue("")
				m.applyFilter()
			case stateViewTree:
				m.state = stateListFuncs
			}
		}
	}

	return m, nil
}

func (m *viewModel) View() string {
	switch m.state {
	case stateViewTree:
		return m.treeView()
	default:
		return m.listView()
	}
}

func (m *viewModel) listView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("IR Browser"))
	b.WriteString(" ")
	b.WriteString(m.module.Name)
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf("%d functions | features: %s", len(m.funcs), m.module.Features)))
	b.WriteString("\n\n")

	if m.filtering || m.filter.Value() != "" {
		b.WriteString(m.filter.View())
		b.WriteString("\n\n")
	}

	if len(m.visible) == 0 {
		b.WriteString(errorStyle.Render("no functions match"))
		b.WriteString("\n")
	}
	for row, idx := range m.visible {
		line := m.formatFunc(m.funcs[idx])
		if row == m.selected {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ select • enter open • / filter • q quit"))
	return b.String()
}

func (m *viewModel) formatFunc(e funcEntry) string {
	s := funcStyle.Render("$"+e.f.Name) + " : " + typeStyle.Render(e.f.Sig.String())
	if e.f.Imported() {
		return s + helpStyle.Render(fmt.Sprintf("  import %s.%s", e.f.Module, e.f.Base))
	}
	return s + helpStyle.Render(fmt.Sprintf("  %d nodes", e.nodes))
}

func (m *viewModel) treeView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("IR Browser"))
	b.WriteString(" ")
	b.WriteString(funcStyle.Render("$" + m.treeName))
	b.WriteString("\n\n")

	// Keep the cursor inside the window.
	visible := m.height - 5
	if visible < 1 {
		visible = 1
	}
	if m.cursor < m.top {
		m.top = m.cursor
	}
	if m.cursor >= m.top+visible {
		m.top = m.cursor - visible + 1
	}
	end := m.top + visible
	if end > len(m.tree) {
		end = len(m.tree)
	}

	for i := m.top; i < end; i++ {
		line := m.tree[i].text + " : " + typeStyle.Render(m.tree[i].typ)
		if i == m.cursor {
			line = selectedStyle.Render(m.tree[i].text + " : " + m.tree[i].typ)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ move • esc back • q quit"))
	return b.String()
}

func runView(m *ir.Module) error {
	p := tea.NewProgram(newViewModel(m), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
