// Defines the Customer struct that models one person in the coffee line.
// Tracks identity, order, queue position and the patience that drives abandonment.

package sim

import "fmt"

// Archetype is a customer's patience profile, fixed at creation.
type Archetype int

const (
	ArchetypeRegular Archetype = iota
	ArchetypeRusher
	ArchetypeChill
)

// PatienceBase returns the number of seconds a full-patience customer of
// this archetype waits before leaving.
func (a Archetype) PatienceBase() float64 {
	switch a {
	case ArchetypeRusher:
		return 16
	case ArchetypeChill:
		return 42
	default:
		return 28
	}
}

func (a Archetype) String() string {
	switch a {
	case ArchetypeRusher:
		return "rusher"
	case ArchetypeChill:
		return "chill"
	default:
		return "regular"
	}
}

// Order is the drink a customer asked for. Purely cosmetic.
type Order int

const (
	OrderCoffee Order = iota
	OrderTea
	OrderColdBrew
	numOrders
)

func (o Order) String() string {
	switch o {
	case OrderTea:
		return "tea"
	case OrderColdBrew:
		return "cold brew"
	default:
		return "coffee"
	}
}

// Glyph returns the emoji used to draw the order.
func (o Order) Glyph() rune {
	switch o {
	case OrderTea:
		return '🍵'
	case OrderColdBrew:
		return '🥤'
	default:
		return '☕'
	}
}

// Customer is a single person moving through the line.
//
// A customer lives in exactly one place at a time: the queue, or one
// station's batch. A remade customer returns to the tail of the queue with a
// fresh Born timestamp and reduced patience.
type Customer struct {
	ID    int64
	Order Order

	Born float64 // simulated time the customer (re-)entered the line

	Dist       float64 // current distance along the line path
	TargetDist float64 // slot distance the customer walks toward
	Pos        Point   // last sampled position on the path

	Patience     float64 // remaining patience in [0, 1]
	PatienceRate float64 // patience lost per simulated second
	Archetype    Archetype
}

// NewCustomer creates a full-patience customer placed at the given distance.
func NewCustomer(id int64, order Order, archetype Archetype, born, dist float64, pos Point) *Customer {
	return &Customer{
		ID:           id,
		Order:        order,
		Born:         born,
		Dist:         dist,
		TargetDist:   dist,
		Pos:          pos,
		Patience:     1.0,
		PatienceRate: 1.0 / archetype.PatienceBase(),
		Archetype:    archetype,
	}
}

func (c Customer) String() string {
	return fmt.Sprintf("Customer: (ID: %d, Type: %s, Dist: %.1f, Patience: %.2f)", c.ID, c.Archetype, c.Dist, c.Patience)
}
