package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"portfoliofx/internal/field"
	"portfoliofx/internal/github"
	"portfoliofx/internal/terminal"
)

var (
	backgroundColor = color.RGBA{15, 23, 42, 255}
	panelColor      = color.RGBA{2, 6, 23, 220}
	progressColor   = color.RGBA{37, 99, 235, 255}
	successColor    = color.RGBA{34, 197, 94, 255}
	highlightColor  = color.RGBA{96, 165, 250, 255}
)

// screenSurface draws field frames onto an Ebitengine image.
type screenSurface struct {
	dst *ebiten.Image
}

func (s screenSurface) Clear() {
	s.dst.Fill(backgroundColor)
}

func (s screenSurface) FillCircle(x, y, radius float64, clr color.RGBA, alpha float64) {
	vector.FillCircle(s.dst, float32(x), float32(y), float32(radius), field.Fade(clr, alpha), true)
}

func (s screenSurface) StrokeLine(x0, y0, x1, y1, width float64, clr color.RGBA, alpha float64) {
	vector.StrokeLine(s.dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), field.Fade(clr, alpha), true)
}

// Draw renders the particle field and the overlays for the current phase.
func (g *Game) Draw(screen *ebiten.Image) {
	g.field.Render(screenSurface{dst: screen})

	if !g.boot.Done() {
		g.drawBootScreen(screen)
	} else {
		g.drawHero(screen)
		g.drawTerminal(screen)
		g.drawStats(screen)
	}

	if g.showDebug {
		msg := fmt.Sprintf("FPS: %.1f  TPS: %.1f\nParticles: %d  Connections: %d\nStep: %.3f ms  Frame: %d",
			ebiten.ActualFPS(), ebiten.ActualTPS(), g.field.Len(), g.field.ConnectionCount(),
			g.lastStep.Seconds()*1000, g.loop.Frames())
		ebitenutil.DebugPrintAt(screen, msg, overlayMargin, g.height-4*lineHeight)
	}
}

// drawBootScreen shows the loading bar and the resource being prepared.
func (g *Game) drawBootScreen(screen *ebiten.Image) {
	barW := float32(g.width) / 3
	barH := float32(6)
	x := (float32(g.width) - barW) / 2
	y := float32(g.height) / 2
	vector.FillRect(screen, x, y, barW, barH, panelColor, false)
	vector.FillRect(screen, x, y, barW*float32(g.boot.Progress()/100), barH, progressColor, false)
	label := "Loading " + g.boot.Current() + "..."
	if g.boot.Current() == "" {
		label = "Ready"
	}
	ebitenutil.DebugPrintAt(screen, label, int(x), int(y)-2*lineHeight)
}

func (g *Game) drawHero(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, heroTitle, overlayMargin, overlayMargin)
	ebitenutil.DebugPrintAt(screen, g.subtitle.Visible(), overlayMargin, overlayMargin+lineHeight)
}

// drawTerminal renders the scripted session in a panel on the right half.
func (g *Game) drawTerminal(screen *ebiten.Image) {
	panelW := g.width / 2
	panelH := (terminalMaxLines + 3) * lineHeight
	x := g.width - panelW - overlayMargin
	y := overlayMargin
	vector.FillRect(screen, float32(x), float32(y), float32(panelW), float32(panelH), panelColor, false)

	prompt := "$ " + g.term.Prompt()
	if g.term.Typing() {
		prompt += "_"
	}
	ebitenutil.DebugPrintAt(screen, prompt, x+8, y+8)

	out := g.term.Output()
	if len(out) > terminalMaxLines {
		out = out[len(out)-terminalMaxLines:]
	}
	for i, line := range out {
		ly := y + 8 + (i+1)*lineHeight
		if marker := lineMarker(line.Kind); marker != nil {
			vector.FillRect(screen, float32(x+2), float32(ly+4), 3, 8, marker, false)
		}
		ebitenutil.DebugPrintAt(screen, line.Text, x+8, ly)
	}
}

func lineMarker(kind terminal.LineKind) color.Color {
	switch kind {
	case terminal.Success:
		return successColor
	case terminal.Highlight:
		return highlightColor
	}
	return nil
}

// drawStats renders the GitHub widget and recent activity bottom right.
func (g *Game) drawStats(screen *ebiten.Image) {
	stats := g.stats.Load()
	if stats == nil {
		return
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Repos %s  Commits %s  Stars %s  Followers %s\n",
		stats.Repos, stats.Commits, stats.Stars, stats.Followers)
	if stats.Sample {
		b.WriteString("(sample data)\n")
	}
	b.WriteString("\nRecent Activity\n")
	for _, a := range github.RecentActivity {
		fmt.Fprintf(&b, "%s\n  %s - %s\n", a.Message, a.Repo, a.When)
	}
	lines := strings.Count(b.String(), "\n") + 1
	x := g.width/2 + overlayMargin
	y := g.height - lines*lineHeight - overlayMargin
	vector.FillRect(screen, float32(x-8), float32(y-8), float32(g.width/2-2*overlayMargin+8), float32(lines*lineHeight+8), panelColor, false)
	ebitenutil.DebugPrintAt(screen, b.String(), x, y)
}
