// Package render draws a game session on a terminal with tcell and runs the
// interactive loop for the play command.
package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/barista-pipeline/barista/sim"
	"github.com/barista-pipeline/barista/sim/audio"
	"github.com/barista-pipeline/barista/sim/game"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const (
	hudRows   = 3 // title and progress, stats, levers
	helpRows  = 1
	toastLife = 1.4
	maxDrawn  = 30 // customers drawn before "+N more"
)

var (
	styleText    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDim     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleLabel   = tcell.StyleDefault.Foreground(tcell.ColorSilver).Bold(true)
	styleGood    = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleBad     = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleInfo    = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleWarn    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleToast   = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
	styleModal   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	styleCrowded = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// Terminal draws one game.Session on a tcell screen. It listens to the
// session for notices, which it shows as a short-lived toast.
type Terminal struct {
	game.NopListener

	screen  tcell.Screen
	session *game.Session
	cues    *audio.Cues // nil when sound is unavailable

	width, height int
	toast         string
	toastT        float64
}

// NewTerminal attaches a terminal to the session. cues may be nil.
func NewTerminal(screen tcell.Screen, s *game.Session, cues *audio.Cues) *Terminal {
	t := &Terminal{screen: screen, session: s, cues: cues}
	t.width, t.height = screen.Size()
	s.AddListener(t)
	return t
}

// OnNotice shows msg as the toast.
func (t *Terminal) OnNotice(msg string) {
	t.toast = msg
	t.toastT = toastLife
}

// Toast is the message currently shown, or "" once it has faded.
func (t *Terminal) Toast() string {
	if t.toastT <= 0 {
		return ""
	}
	return t.toast
}

// Frame advances the session by realDt seconds of wall time and ages the
// toast.
func (t *Terminal) Frame(realDt float64) {
	t.session.Frame(realDt)
	if t.toastT > 0 {
		t.toastT -= math.Min(game.MaxFrame, math.Max(0, realDt))
	}
}

// Resize picks up the screen's current size.
func (t *Terminal) Resize() {
	t.width, t.height = t.screen.Size()
	t.screen.Sync()
}

// viewport maps world coordinates onto the cells between the HUD and the
// help row.
type viewport struct {
	top    int
	sx, sy float64
	shake  sim.Point
}

func (t *Terminal) viewport() viewport {
	w := t.session.World
	rows := max(1, t.height-hudRows-helpRows)
	v := viewport{top: hudRows, sx: float64(t.width) / w.W, sy: float64(rows) / w.H}
	if sh := t.session.State.Shake; sh.Intensity() > 0 {
		k := sh.Intensity()
		v.shake = sim.Point{X: sh.Offset.X * k, Y: sh.Offset.Y * k}
	}
	return v
}

func (v viewport) cell(p sim.Point) (x, y int) {
	return int(math.Floor((p.X + v.shake.X) * v.sx)), v.top + int(math.Floor((p.Y+v.shake.Y)*v.sy))
}

// Draw renders the whole frame and shows it.
func (t *Terminal) Draw() {
	t.screen.Clear()
	v := t.viewport()

	t.drawZones(v)
	t.drawPath(v)
	t.drawStations(v)
	t.drawCustomers(v)
	t.drawFlyers(v)
	t.drawBubbles(v)
	t.drawConfetti(v)

	t.drawHUD()
	t.drawHelp()
	if msg := t.Toast(); msg != "" {
		w := runewidth.StringWidth(msg) + 2
		t.text((t.width-w)/2, hudRows, " "+msg+" ", styleToast)
	}
	if r := t.session.Result(); r != nil {
		t.drawResult(*r)
	}

	t.screen.Show()
}

// put sets one cell inside the screen and returns the cell width used.
func (t *Terminal) put(x, y int, r rune, style tcell.Style) int {
	w := runewidth.RuneWidth(r)
	if w == 0 {
		w = 1
	}
	if x < 0 || y < 0 || x+w > t.width || y >= t.height {
		return w
	}
	t.screen.SetContent(x, y, r, nil, style)
	return w
}

// text writes s from (x, y) and returns the column after it.
func (t *Terminal) text(x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		x += t.put(x, y, r, style)
	}
	return x
}

func (t *Terminal) box(x0, y0, x1, y1 int, style tcell.Style) {
	for x := x0 + 1; x < x1; x++ {
		t.put(x, y0, '─', style)
		t.put(x, y1, '─', style)
	}
	for y := y0 + 1; y < y1; y++ {
		t.put(x0, y, '│', style)
		t.put(x1, y, '│', style)
	}
	t.put(x0, y0, '┌', style)
	t.put(x1, y0, '┐', style)
	t.put(x0, y1, '└', style)
	t.put(x1, y1, '┘', style)
}

func (t *Terminal) zone(v viewport, r sim.Rect, label string, style tcell.Style) {
	x0, y0 := v.cell(sim.Point{X: r.X, Y: r.Y})
	x1, y1 := v.cell(sim.Point{X: r.X + r.W, Y: r.Y + r.H})
	if x1 <= x0 || y1 <= y0 {
		return
	}
	t.box(x0, y0, x1, y1, style)
	t.text(x0+2, y0, label, styleLabel)
}

func (t *Terminal) drawZones(v viewport) {
	g := t.session.World.Geometry
	queueStyle := styleDim
	if t.session.State.Queue.Len() > 10 {
		queueStyle = styleCrowded
	}
	t.zone(v, g.Queue, "LINE", queueStyle)
	t.zone(v, g.Counter, "COUNTER", styleDim)
	t.zone(v, g.Bar, "BAR", styleDim)
	t.zone(v, g.Pantry, "PANTRY", styleDim)
	t.zone(v, g.Pickup, "PICKUP", styleGood)
	t.zone(v, g.Remake, "REMAKE", styleBad)
}

func (t *Terminal) drawPath(v viewport) {
	w := t.session.World
	step := math.Min(1/v.sx, 1/v.sy)
	if step <= 0 || math.IsInf(step, 0) {
		return
	}
	for d := 0.0; d <= w.Lens.Total; d += step {
		x, y := v.cell(sim.PointOnPath(w.Path, w.Lens, d))
		t.put(x, y, '·', styleDim)
	}
}

func (t *Terminal) drawStations(v viewport) {
	for i, st := range t.session.State.Stations {
		x, y := v.cell(st.Pos)
		x = t.text(x, y, fmt.Sprintf("%d ", i+1), styleLabel)
		switch st.State() {
		case sim.StationStalled:
			t.text(x, y, "…waiting", styleWarn)
		case sim.StationBusy:
			label := "making"
			if len(st.Batch) > 1 {
				label = fmt.Sprintf("making ×%d", len(st.Batch))
			}
			t.text(x, y, label, styleInfo)
		default:
			t.text(x, y, "ready", styleGood)
		}
	}
}

func patienceStyle(p float64) tcell.Style {
	switch {
	case p >= 0.92:
		return styleText
	case p > 0.5:
		return styleGood
	case p > 0.25:
		return styleInfo
	}
	return styleBad
}

func (t *Terminal) drawCustomers(v viewport) {
	st := t.session.State
	items := st.Queue.Items()
	n := min(len(items), maxDrawn)
	for i, c := range items[:n] {
		x, y := v.cell(c.Pos)
		t.put(x, y, '☺', patienceStyle(c.Patience))
		if c.Archetype == sim.ArchetypeRusher && i < 12 {
			t.put(x+1, y, '!', styleWarn)
		}
		if i < 3 {
			t.put(x, y-1, c.Order.Glyph(), styleText)
		}
	}
	if len(items) > n {
		g := t.session.World.Geometry
		x, y := v.cell(sim.Point{X: g.Queue.X + 14, Y: g.Queue.Y + 62})
		t.text(x, y, fmt.Sprintf("+%d more", len(items)-n), styleLabel)
	}
}

func (t *Terminal) drawFlyers(v viewport) {
	st := t.session.State
	for _, tk := range st.Tokens {
		x, y := v.cell(tk.Pos)
		t.put(x, y, '•', styleInfo)
	}
	for _, cp := range st.Cups {
		x, y := v.cell(cp.Pos)
		style := styleText
		if cp.Bad {
			style = styleBad
		}
		t.put(x, y, cp.Order.Glyph(), style)
	}
	if r := st.Runner; r.Active {
		x, y := v.cell(r.Pos)
		x += t.put(x, y, '🏃', styleText)
		t.put(x, y-1, r.Carrying, styleText)
	}
}

func (t *Terminal) drawBubbles(v viewport) {
	for _, b := range t.session.State.Bubbles {
		// bubbles drift up as they age
		rise := 0.0
		if b.Max > 0 {
			rise = (1 - b.T/b.Max) * 18
		}
		x, y := v.cell(sim.Point{X: b.Pos.X, Y: b.Pos.Y - rise})
		style := styleGood
		if b.Mood == sim.MoodBad {
			style = styleBad
		}
		t.text(x, y, b.Text, style)
	}
}

var confettiStyles = func() []tcell.Style {
	styles := make([]tcell.Style, len(sim.ConfettiColors))
	for i, hex := range sim.ConfettiColors {
		styles[i] = tcell.StyleDefault.Foreground(tcell.GetColor(expandHex(hex)))
	}
	return styles
}()

// expandHex turns "#abc" into "#aabbcc"; tcell only parses the long form.
func expandHex(hex string) string {
	if len(hex) != 4 || hex[0] != '#' {
		return hex
	}
	var b strings.Builder
	b.WriteByte('#')
	for i := 1; i < 4; i++ {
		b.WriteByte(hex[i])
		b.WriteByte(hex[i])
	}
	return b.String()
}

func (t *Terminal) drawConfetti(v viewport) {
	for _, cf := range t.session.State.Confetti {
		x, y := v.cell(cf.Pos)
		style := styleText
		if cf.Color >= 0 && cf.Color < len(confettiStyles) {
			style = confettiStyles[cf.Color]
		}
		t.put(x, y, '▪', style)
	}
}

func (t *Terminal) drawHUD() {
	s := t.session
	st := s.State
	l := s.Level()

	// row 0: title, progress bar, bottleneck
	x := t.text(0, 0, fmt.Sprintf("Level %d: %s ", l.ID, l.Name), styleLabel)
	bn := fmt.Sprintf(" Bottleneck: %s", st.Bottleneck)
	barW := t.width - x - runewidth.StringWidth(bn)
	if barW > 0 {
		pct := math.Min(1, float64(st.Served)/float64(l.Goal))
		fill := int(math.Round(pct * float64(barW)))
		style := styleInfo
		if pct >= 1 {
			style = styleGood
		}
		for i := 0; i < barW; i++ {
			if i < fill {
				t.put(x+i, 0, '█', style)
			} else {
				t.put(x+i, 0, '░', styleDim)
			}
		}
		x += barW
	}
	bnStyle := styleText
	switch st.Bottleneck {
	case sim.BottleneckOK:
		bnStyle = styleGood
	case sim.BottleneckBandwidth:
		bnStyle = styleBad
	case sim.BottleneckCompute:
		bnStyle = styleInfo
	}
	t.text(x, 0, bn, bnStyle)

	// row 1: stats, urgency, streak
	x = t.text(0, 1, StatLine(st, l), styleText)
	if left := st.TimeLeft(); s.Running() && left > 0 && left <= 10 {
		style := styleWarn
		if left <= 5 {
			style = styleBad
		}
		x = t.text(x+2, 1, "⚠ HURRY!", style)
	}
	if streak := StreakText(st.ServeStreak); streak != "" && s.Running() {
		style := styleDim
		switch {
		case st.ServeStreak >= 10:
			style = styleBad
		case st.ServeStreak >= 5:
			style = styleInfo
		}
		t.text(max(x+2, t.width-runewidth.StringWidth(streak)), 1, streak, style)
	}

	// row 2: levers and clock controls
	state := "PAUSED"
	switch {
	case s.Result() != nil:
		state = "DONE"
	case s.Running():
		state = "RUNNING"
	}
	sound := "off"
	if t.cues != nil && t.cues.Enabled() {
		sound = "on"
	}
	t.text(0, 2, fmt.Sprintf("%s   Speed %d×   Sound %s   %s", LeverLine(s.Config(), l), s.Speed(), sound, state), styleDim)
}

const helpText = "space go/pause  s speed  r reset  n next  1-4 level  m sound  esc quit"

func (t *Terminal) drawHelp() {
	t.text(0, t.height-1, helpText, styleDim)
}

func (t *Terminal) drawResult(r game.Result) {
	width := min(t.width-4, 64)
	if width < 10 {
		return
	}
	lines := []string{r.Title}
	if r.Outcome == game.OutcomeCleared {
		lines = append(lines, strings.Repeat("★", r.Stars)+strings.Repeat("☆", 3-r.Stars))
	}
	lines = append(lines, "")
	lines = append(lines, wrapText(r.Text, width-4)...)
	lines = append(lines, "", resultPrompt(r))

	height := min(len(lines)+1, t.height-2)
	x0 := (t.width - width) / 2
	y0 := max(0, (t.height-height-1)/2)
	for y := y0; y <= y0+height; y++ {
		for x := x0; x <= x0+width; x++ {
			t.put(x, y, ' ', styleModal)
		}
	}
	t.box(x0, y0, x0+width, y0+height, styleModal)
	for i, line := range lines {
		if i+1 >= height {
			break
		}
		style := styleModal
		if i == 0 {
			style = styleModal.Bold(true)
		}
		t.text(x0+2, y0+1+i, line, style)
	}
}

func resultPrompt(r game.Result) string {
	switch {
	case r.Outcome == game.OutcomeTimeUp:
		return "[enter] try again"
	case r.Final:
		return "[r] play again"
	}
	return "[enter] next level   [r] replay"
}

// wrapText breaks s into lines at most width cells wide, keeping blank
// lines.
func wrapText(s string, width int) []string {
	var out []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			if runewidth.StringWidth(line)+1+runewidth.StringWidth(w) > width {
				out = append(out, line)
				line = w
				continue
			}
			line += " " + w
		}
		out = append(out, line)
	}
	return out
}
