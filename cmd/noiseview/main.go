// Command noiseview animates a seeded noise field in the terminal.
//
// The scalar view shades an animated Noise3 time slice with ASCII ramps;
// the curl view draws the CurlNoise2 flow field as direction glyphs.
//
// Keys: tab toggles scalar/curl, s advances the seed, q or ctrl+c quits.
//
// Usage:
//
//	noiseview [-seed 42] [-fps 20] [-zoom 1.0]
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/katalvlaran/noisegrad/field"
	"github.com/katalvlaran/noisegrad/vec"
)

// shadeRamp maps normalized field intensity to terminal brightness.
const shadeRamp = " .:-=+*#%@"

// arrowGlyphs covers the eight compass directions, counter-clockwise from
// +X, for the curl view.
var arrowGlyphs = []rune("→↗↑↖←↙↓↘")

// tickMsg drives the animation clock.
type tickMsg time.Time

type model struct {
	seed uint32
	zoom float64
	fps  int

	t    float64
	curl bool
	w, h int
}

func tick(fps int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Init() tea.Cmd {
	return tick(m.fps)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.w = msg.Width
		m.h = msg.Height - 1 // reserve the status line
		return m, nil

	case tickMsg:
		m.t += 0.04
		return m, tick(m.fps)

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.curl = !m.curl
		case "s":
			m.seed++
		}
		return m, nil
	}

	return m, nil
}

func (m model) View() string {
	if m.w <= 0 || m.h <= 0 {
		return "sizing..."
	}

	opts := field.DefaultOptions()
	opts.Step = 0.15 / m.zoom
	// drift the window with time so the curl view animates too
	opts.Origin = vec.Vec2{X: 0.37 + m.t*0.2, Y: 0.91}

	var b strings.Builder
	if m.curl {
		m.renderCurl(&b, opts)
	} else {
		opts.Time = 0.01 + m.t
		m.renderScalar(&b, opts)
	}

	mode := "scalar"
	if m.curl {
		mode = "curl"
	}
	fmt.Fprintf(&b, "seed=%d  mode=%s  t=%.2f   [tab] mode  [s] seed  [q] quit", m.seed, mode, m.t)

	return b.String()
}

func (m model) renderScalar(b *strings.Builder, opts field.Options) {
	g, err := field.Scalar(m.seed, m.w, m.h, opts)
	if err != nil {
		b.WriteString(err.Error() + "\n")
		return
	}
	for _, row := range g {
		for _, v := range row {
			// field values sit roughly in [-0.9, 0.9]; clamp and shade
			n := (v + 1) / 2
			if n < 0 {
				n = 0
			}
			if n > 1 {
				n = 1
			}
			idx := int(n * float64(len(shadeRamp)-1))
			b.WriteByte(shadeRamp[idx])
		}
		b.WriteByte('\n')
	}
}

func (m model) renderCurl(b *strings.Builder, opts field.Options) {
	g, err := field.Curl(m.seed, m.w, m.h, opts)
	if err != nil {
		b.WriteString(err.Error() + "\n")
		return
	}
	for _, row := range g {
		for _, v := range row {
			if v.Norm() < 0.05 {
				b.WriteByte('.')
				continue
			}
			// quantize the flow angle onto eight compass glyphs
			angle := math.Atan2(v.Y, v.X)
			sector := int(math.Round(angle/(math.Pi/4))) & 7
			b.WriteRune(arrowGlyphs[sector])
		}
		b.WriteByte('\n')
	}
}

func main() {
	seed := flag.Uint("seed", 42, "field seed")
	fps := flag.Int("fps", 20, "animation frames per second")
	zoom := flag.Float64("zoom", 1.0, "magnification factor (>0)")
	flag.Parse()

	if *fps <= 0 || *zoom <= 0 {
		fmt.Fprintln(os.Stderr, "noiseview: fps and zoom must be positive")
		os.Exit(2)
	}

	p := tea.NewProgram(model{
		seed: uint32(*seed),
		zoom: *zoom,
		fps:  *fps,
	}, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "noiseview: %v\n", err)
		os.Exit(1)
	}
}
