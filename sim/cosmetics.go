// Cosmetic buffers: flying order tokens and cups, speech bubbles, confetti,
// screen shake and the pantry runner. The stepper appends to them and ages
// them; nothing in the simulation reads them back.

package sim

import (
	"fmt"
	"math"
	"math/rand"
)

var (
	fastMsgs   = []string{"⚡ Fast!", "Wow!", "☕ Yes!", "Speedy!"}
	okMsgs     = []string{"Thanks!", "Nice!", "☕ Yum!", "👍"}
	slowMsgs   = []string{"Finally…", "About time", "Phew!", "😅"}
	remakeMsgs = []string{"Oops!", "Redo!", "Yikes!", "Again?"}
	leaveMsgs  = []string{"Too slow!", "Bye! 😤", "Ugh!", "Nope!", "☕→🚫"}
)

// Mood colors a bubble.
type Mood int

const (
	MoodGood Mood = iota
	MoodBad
)

// Token is an order ticket flying from the line front to a station.
type Token struct {
	Pos, Target Point
	Customer    int64
}

// Cup is a finished drink flying to the pickup or remake zone.
type Cup struct {
	Pos, Target Point
	Order       Order
	Rot         float64
	Bad         bool
}

// Bubble is a short-lived speech bubble.
type Bubble struct {
	Text   string
	Pos    Point
	T, Max float64 // seconds left, initial seconds
	Mood   Mood
}

// Confetto is one confetti particle.
type Confetto struct {
	Pos, Vel Point
	Rot, VR  float64
	T        float64
	Color    int
	W, H     float64
}

// ConfettiColors is the palette indexed by Confetto.Color.
var ConfettiColors = []string{"#fff", "#f8f8f8", "#e5e7eb", "#2563eb", "#1d4ed8", "#059669", "#dc2626", "#6b7280", "#374151"}

// Shake is the decaying screen offset after a remake.
type Shake struct {
	Offset Point
	T, Max float64
}

// Intensity is the remaining fraction of the shake in [0, 1].
func (sh Shake) Intensity() float64 {
	if sh.T <= 0 || sh.Max <= 0 {
		return 0
	}
	return sh.T / sh.Max
}

// Runner is the pantry runner who carries supplies to a stalled station.
type Runner struct {
	Active   bool
	Pos      Point
	Target   Point
	Carrying rune
}

// Cosmetics groups every purely visual buffer.
type Cosmetics struct {
	Tokens   []Token
	Cups     []Cup
	Bubbles  []Bubble
	Confetti []Confetto
	Shake    Shake
	Runner   Runner
}

func (c *Cosmetics) reset(g Geometry) {
	c.Tokens = c.Tokens[:0]
	c.Cups = c.Cups[:0]
	c.Bubbles = c.Bubbles[:0]
	c.Confetti = c.Confetti[:0]
	c.Shake = Shake{}
	home := pantryDoor(g)
	c.Runner = Runner{Pos: home, Target: home, Carrying: '🥛'}
}

func pantryDoor(g Geometry) Point {
	return Point{X: g.Pantry.X + 58, Y: g.Pantry.Y + 78}
}

func pick(rng *rand.Rand, msgs []string) string {
	return msgs[rng.Intn(len(msgs))]
}

func (c *Cosmetics) bubble(text string, at Point, life float64, mood Mood) {
	c.Bubbles = append(c.Bubbles, Bubble{Text: text, Pos: at, T: life, Max: life, Mood: mood})
}

func (c *Cosmetics) serveBubble(rng *rand.Rand, fb Feedback, st *Station) {
	msgs := okMsgs
	switch fb {
	case FeedbackFast:
		msgs = fastMsgs
	case FeedbackSlow:
		msgs = slowMsgs
	}
	c.bubble(pick(rng, msgs), Point{X: st.Pos.X + 100, Y: st.Pos.Y + 20}, 1.2, MoodGood)
}

func (c *Cosmetics) comboBubble(streak int, g Geometry) {
	at := Point{X: g.Pickup.X + g.Pickup.W/2, Y: g.Pickup.Y - 10}
	c.bubble(fmt.Sprintf("🔥 %dx!", streak), at, 1.6, MoodBad)
}

func (c *Cosmetics) remakeFx(rng *rand.Rand, st *Station) {
	c.bubble(pick(rng, remakeMsgs), Point{X: st.Pos.X + 100, Y: st.Pos.Y + 20}, 1.2, MoodBad)
	c.Shake = Shake{
		Offset: Point{X: (rng.Float64() - 0.5) * 8, Y: (rng.Float64() - 0.5) * 6},
		T:      0.12,
		Max:    0.12,
	}
}

func (c *Cosmetics) leaveBubble(rng *rand.Rand, at Point) {
	c.bubble(pick(rng, leaveMsgs), at, 1.4, MoodBad)
}

func (c *Cosmetics) token(from Point, st *Station, customer int64) {
	c.Tokens = append(c.Tokens, Token{
		Pos:      Point{X: from.X + 16, Y: from.Y - 10},
		Target:   Point{X: st.Pos.X + 50, Y: st.Pos.Y + 44},
		Customer: customer,
	})
}

func (c *Cosmetics) cup(rng *rand.Rand, st *Station, order Order, bad bool, g Geometry) {
	zone := g.Pickup
	rot := 0.0
	if bad {
		zone = g.Remake
		rot = rng.Float64()*0.8 - 0.4
	}
	c.Cups = append(c.Cups, Cup{
		Pos:    Point{X: st.Pos.X + 140, Y: st.Pos.Y + 46},
		Target: Point{X: zone.X + 60 + rng.Float64()*120, Y: zone.Y + 70 + rng.Float64()*30},
		Order:  order,
		Rot:    rot,
		Bad:    bad,
	})
}

// dispatchRunner sends the idle runner from the pantry to a stalled station.
func (c *Cosmetics) dispatchRunner(rng *rand.Rand, st *Station, g Geometry) {
	if c.Runner.Active {
		return
	}
	carrying := '🥛'
	if rng.Float64() >= 0.5 {
		carrying = '🫘'
	}
	c.Runner = Runner{
		Active:   true,
		Pos:      pantryDoor(g),
		Target:   Point{X: st.Pos.X + 62, Y: st.Pos.Y + 56},
		Carrying: carrying,
	}
}

// moveToward advances p toward target by at most step and reports arrival.
func moveToward(p *Point, target Point, step float64) bool {
	dx, dy := target.X-p.X, target.Y-p.Y
	d := math.Hypot(dx, dy)
	if d < 1 {
		return true
	}
	s := math.Min(d, step)
	p.X += dx / d * s
	p.Y += dy / d * s
	return false
}

// stepRunner walks the runner to its station and back to the pantry.
// The runner moves at 140 units/s scaled by bandwidth.
func (c *Cosmetics) stepRunner(dt, bw float64, g Geometry) {
	r := &c.Runner
	if !r.Active {
		return
	}
	speed := 140 * bw * dt
	if moveToward(&r.Pos, r.Target, speed) {
		r.Target = pantryDoor(g)
		if moveToward(&r.Pos, r.Target, speed) {
			r.Active = false
		}
	}
}

func lerpToward(p *Point, target Point, rate, dt float64) {
	k := clamp(rate*dt, 0, 1)
	p.X += (target.X - p.X) * k
	p.Y += (target.Y - p.Y) * k
}

// stepFlyers eases tokens and cups toward their targets and drops arrivals.
func (c *Cosmetics) stepFlyers(dt float64) {
	tokens := c.Tokens[:0]
	for _, t := range c.Tokens {
		lerpToward(&t.Pos, t.Target, 6.2, dt)
		if t.Pos.Dist(t.Target) > 10 {
			tokens = append(tokens, t)
		}
	}
	c.Tokens = tokens

	cups := c.Cups[:0]
	for _, cp := range c.Cups {
		lerpToward(&cp.Pos, cp.Target, 4.2, dt)
		if cp.Pos.Dist(cp.Target) > 12 {
			cups = append(cups, cp)
		}
	}
	c.Cups = cups
}

// StepCosmetics ages confetti, shake and bubbles by real (unscaled) elapsed
// time. It runs every frame, including while the simulation is paused.
func (c *Cosmetics) StepCosmetics(dt float64) {
	confetti := c.Confetti[:0]
	for _, cf := range c.Confetti {
		cf.Pos.X += cf.Vel.X * dt
		cf.Pos.Y += cf.Vel.Y * dt
		cf.Vel.Y += 550 * dt
		cf.Rot += cf.VR * dt
		cf.T -= dt
		if cf.T > 0 {
			confetti = append(confetti, cf)
		}
	}
	c.Confetti = confetti

	if c.Shake.T > 0 {
		c.Shake.T -= dt
	}

	bubbles := c.Bubbles[:0]
	for _, b := range c.Bubbles {
		b.T -= dt
		if b.T > 0 {
			bubbles = append(bubbles, b)
		}
	}
	c.Bubbles = bubbles
}

// BurstConfetti spawns count particles at the given point. count <= 0 uses 120.
func (c *Cosmetics) BurstConfetti(rng *rand.Rand, at Point, count int) {
	if count <= 0 {
		count = 120
	}
	for i := 0; i < count; i++ {
		c.Confetti = append(c.Confetti, Confetto{
			Pos:   at,
			Vel:   Point{X: rng.Float64()*520 - 260, Y: rng.Float64()*-520 - 140},
			VR:    rng.Float64()*12 - 6,
			Rot:   rng.Float64() * math.Pi,
			T:     2.2 + rng.Float64(),
			Color: rng.Intn(len(ConfettiColors)),
			W:     4 + rng.Float64()*5,
			H:     6 + rng.Float64()*6,
		})
	}
}
