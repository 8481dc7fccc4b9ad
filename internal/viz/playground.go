package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/dynvec/internal/trace"
	"github.com/san-kum/dynvec/internal/vector"
)

const slotsPerRow = 16

// Playground drives a vector of ints from the keyboard. Pushed values count
// up from 1 so every element is distinguishable in the slot view.
type Playground struct {
	vec        *vector.Vector[int]
	initialCap int
	next       int
	cursor     int
	steps      []trace.Step
	sizeHist   []float64
	capHist    []float64
	reallocs   int
	lastErr    string
	showHelp   bool
	width      int
	height     int
}

func NewPlayground(initialCapacity int) Playground {
	p := Playground{initialCap: initialCapacity}
	p.reset()
	return p
}

func (p *Playground) reset() {
	p.vec = vector.WithCapacity[int](p.initialCap)
	p.next = 1
	p.cursor = 0
	p.steps = nil
	p.reallocs = 0
	p.lastErr = ""
	p.sizeHist = []float64{0}
	p.capHist = []float64{float64(p.initialCap)}
}

func (p Playground) Vector() *vector.Vector[int] { return p.vec }
func (p Playground) Cursor() int                 { return p.cursor }
func (p Playground) Reallocations() int          { return p.reallocs }
func (p Playground) LastError() string           { return p.lastErr }
func (p Playground) Steps() []trace.Step         { return p.steps }

func (p Playground) Init() tea.Cmd {
	return nil
}

func (p Playground) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return p, tea.Quit
		case "b":
			p.apply(trace.Action{Op: trace.OpPushBack, Arg: p.take()})
		case "f":
			p.apply(trace.Action{Op: trace.OpPushFront, Arg: p.take()})
		case "p":
			p.apply(trace.Action{Op: trace.OpPopBack})
		case "o":
			p.apply(trace.Action{Op: trace.OpPopFront})
		case "x":
			p.apply(trace.Action{Op: trace.OpRemoveAt, Arg: p.cursor})
		case "c":
			p.apply(trace.Action{Op: trace.OpClear})
		case "left", "h":
			if p.cursor > 0 {
				p.cursor--
			}
		case "right", "l":
			if p.cursor < p.vec.Size()-1 {
				p.cursor++
			}
		case "r":
			p.reset()
		case "t":
			NextTheme()
		case "?":
			p.showHelp = !p.showHelp
		}
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
	}
	return p, nil
}

func (p *Playground) take() int {
	n := p.next
	p.next++
	return n
}

func (p *Playground) apply(a trace.Action) {
	s := trace.Apply(p.vec, a)
	s.Index = len(p.steps)
	p.steps = append(p.steps, s)
	p.lastErr = s.Err
	if s.Grew {
		p.reallocs++
	}
	p.sizeHist = append(p.sizeHist, float64(s.Size))
	p.capHist = append(p.capHist, float64(s.Capacity))

	if p.cursor >= p.vec.Size() {
		p.cursor = max(p.vec.Size()-1, 0)
	}
}

func (p Playground) View() string {
	if p.showHelp {
		return p.helpView()
	}

	var b strings.Builder
	b.WriteString(titleStyle().Render("DYNVEC PLAYGROUND"))
	b.WriteString("\n\n")
	b.WriteString(p.slotsView())
	b.WriteString("\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, p.statsView(), "  ", p.chartView()))
	b.WriteString("\n")
	b.WriteString(KeyHint.Render("b/f push  p/o pop  x remove  c clear  ←/→ move  r reset  ? help  q quit"))
	b.WriteString("\n")
	return b.String()
}

func (p Playground) slotsView() string {
	capacity := p.vec.Capacity()
	if capacity == 0 {
		return freeSlot().Render("(no buffer)")
	}

	var rows []string
	var row strings.Builder
	for i := 0; i < capacity; i++ {
		cell := fmt.Sprintf(" %3s ", "·")
		style := freeSlot()
		if i < p.vec.Size() {
			cell = fmt.Sprintf(" %3d ", p.vec.Get(i))
			style = liveSlot()
			if i == p.cursor {
				style = cursorSlot()
			}
		}
		row.WriteString(style.Render(cell))
		if (i+1)%slotsPerRow == 0 || i == capacity-1 {
			rows = append(rows, row.String())
			row.Reset()
		}
	}
	return strings.Join(rows, "\n")
}

func (p Playground) statsView() string {
	size, capacity := p.vec.Size(), p.vec.Capacity()
	util := 0.0
	if capacity > 0 {
		util = float64(size) / float64(capacity)
	}

	lastOp := "-"
	if n := len(p.steps); n > 0 {
		lastOp = string(p.steps[n-1].Op)
	}
	errLine := Subtle.Render("none")
	if p.lastErr != "" {
		errLine = errorText().Render(p.lastErr)
	}

	lines := []string{
		MetricLabel.Render("Size") + MetricValue.Render(fmt.Sprintf("%d", size)),
		MetricLabel.Render("Capacity") + MetricValue.Render(fmt.Sprintf("%d", capacity)),
		MetricLabel.Render("Reallocs") + MetricValue.Render(fmt.Sprintf("%d", p.reallocs)),
		MetricLabel.Render("Usage") + ProgressBar(util, 16),
		MetricLabel.Render("Last op") + lastOp,
		MetricLabel.Render("Error") + errLine,
	}
	return GlassPanel.Render(strings.Join(lines, "\n"))
}

func (p Playground) chartView() string {
	if len(p.capHist) < 2 {
		return Subtle.Render("no history yet")
	}
	width := 40
	if p.width > 0 && p.width/2 < width {
		width = max(p.width/2, 10)
	}
	return asciigraph.PlotMany(
		[][]float64{p.sizeHist, p.capHist},
		asciigraph.Height(6),
		asciigraph.Width(width),
		asciigraph.Caption("size / capacity"),
	)
}

func (p Playground) helpView() string {
	keys := [][2]string{
		{"b", "push back the next value"},
		{"f", "push front the next value"},
		{"p", "pop back"},
		{"o", "pop front"},
		{"x", "remove the element under the cursor"},
		{"c", "clear (capacity is kept)"},
		{"←/→ h/l", "move the cursor"},
		{"r", "reset to the initial capacity"},
		{"t", "cycle theme (" + CurrentTheme.Name + ")"},
		{"?", "close help"},
		{"q", "quit"},
	}
	var b strings.Builder
	b.WriteString(titleStyle().Render("KEYS"))
	b.WriteString("\n\n")
	for _, k := range keys {
		b.WriteString(MetricLabel.Render(k[0]) + k[1] + "\n")
	}
	return GlassPanel.Render(b.String())
}
