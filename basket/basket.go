package basket

// Line is one product selection. UnitPrice is captured when the line is
// first added and never refreshed from the catalog afterwards.
type Line struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	ImageURL  string  `json:"image_url,omitempty"`
	Quantity  int     `json:"quantity"`
}

// Basket holds the customer's current selections in insertion order. It is
// owned by a single session and is never persisted; checkout reads it and
// clears it on success.
type Basket struct {
	lines []Line
}

func New() *Basket {
	return &Basket{}
}

// AddItem bumps the quantity of an existing line by one, or appends a new
// line with quantity 1. The unit price only matters on first add.
func (b *Basket) AddItem(productID, name string, unitPrice float64, imageURL string) {
	for i := range b.lines {
		if b.lines[i].ProductID == productID {
			b.lines[i].Quantity++
			return
		}
	}
	b.lines = append(b.lines, Line{
		ProductID: productID,
		Name:      name,
		UnitPrice: unitPrice,
		ImageURL:  imageURL,
		Quantity:  1,
	})
}

// RemoveItem deletes the line for productID. Removing an absent line is a
// no-op.
func (b *Basket) RemoveItem(productID string) {
	for i := range b.lines {
		if b.lines[i].ProductID == productID {
			b.lines = append(b.lines[:i], b.lines[i+1:]...)
			return
		}
	}
}

// UpdateQuantity replaces a line's quantity. A quantity of zero or less
// removes the line instead of storing a non-positive value. Unknown product
// ids are ignored.
func (b *Basket) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		b.RemoveItem(productID)
		return
	}
	for i := range b.lines {
		if b.lines[i].ProductID == productID {
			b.lines[i].Quantity = quantity
			return
		}
	}
}

func (b *Basket) Clear() {
	b.lines = nil
}

func (b *Basket) Len() int {
	return len(b.lines)
}

// Lines returns a copy of the current lines in insertion order.
func (b *Basket) Lines() []Line {
	out := make([]Line, len(b.lines))
	copy(out, b.lines)
	return out
}

// Totals returns the summed item count and price over the current lines.
func (b *Basket) Totals() (totalItems int, totalPrice float64) {
	for _, l := range b.lines {
		totalItems += l.Quantity
		totalPrice += l.UnitPrice * float64(l.Quantity)
	}
	return totalItems, totalPrice
}
