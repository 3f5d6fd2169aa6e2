// Package cart holds the session cart entity. The cart is pure state: it is
// read from the signed session cookie, mutated here, and written back whole
// (last write wins). There is no server-side copy.
package cart

// Item is one cart line. Quantity is at least 1 for every resident item;
// a line that would drop to 0 is removed instead.
type Item struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Quantity int     `json:"qty"`
	Image    string  `json:"image"`
}

// Cart is an ordered sequence of lines with unique product ids. Append order
// is preserved; no reordering ever happens.
type Cart struct {
	Items []Item `json:"items"`
}

func New() *Cart {
	return &Cart{Items: []Item{}}
}

// Contains reports whether a line with the given product id is resident.
func (c *Cart) Contains(id int) bool {
	return c.indexOf(id) >= 0
}

// Add accumulates quantity for an existing line or appends a new one with
// quantity 1. Repeated adds never duplicate rows.
func (c *Cart) Add(it Item) {
	if i := c.indexOf(it.ID); i >= 0 {
		c.Items[i].Quantity++
		return
	}
	it.Quantity = 1
	c.Items = append(c.Items, it)
}

// Increase bumps the quantity of an existing line. Unknown ids are a no-op.
func (c *Cart) Increase(id int) {
	if i := c.indexOf(id); i >= 0 {
		c.Items[i].Quantity++
	}
}

// Decrease lowers the quantity of an existing line, removing it when the
// quantity would reach 0. Unknown ids are a no-op.
func (c *Cart) Decrease(id int) {
	i := c.indexOf(id)
	if i < 0 {
		return
	}
	c.Items[i].Quantity--
	if c.Items[i].Quantity <= 0 {
		c.removeAt(i)
	}
}

// Remove drops the line entirely, regardless of quantity.
func (c *Cart) Remove(id int) {
	if i := c.indexOf(id); i >= 0 {
		c.removeAt(i)
	}
}

// Select returns the lines whose id is in ids, in cart order.
func (c *Cart) Select(ids []int) []Item {
	wanted := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	out := make([]Item, 0, len(ids))
	for _, it := range c.Items {
		if _, ok := wanted[it.ID]; ok {
			out = append(out, it)
		}
	}
	return out
}

// Total sums price x quantity over the given lines.
func Total(items []Item) float64 {
	sum := 0.0
	for _, it := range items {
		sum += it.Price * float64(it.Quantity)
	}
	return sum
}

// Count is the total number of units across all lines.
func (c *Cart) Count() int {
	n := 0
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

// Sanitize drops malformed lines (bad ids, non-positive quantities) and
// deduplicates ids keeping the first occurrence. Used after decoding the
// cookie so a corrupted session degrades to a smaller cart, never an error.
func (c *Cart) Sanitize() {
	seen := make(map[int]struct{}, len(c.Items))
	clean := c.Items[:0]
	for _, it := range c.Items {
		if it.ID <= 0 || it.Quantity <= 0 {
			continue
		}
		if _, dup := seen[it.ID]; dup {
			continue
		}
		seen[it.ID] = struct{}{}
		clean = append(clean, it)
	}
	c.Items = clean
}

func (c *Cart) indexOf(id int) int {
	for i, it := range c.Items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

func (c *Cart) removeAt(i int) {
	c.Items = append(c.Items[:i], c.Items[i+1:]...)
}
