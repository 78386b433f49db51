package cart

// IVARate is the Chilean VAT the views apply on top of the subtotal. It is a
// presentation constant, not part of the stored cart.
const IVARate = 0.19

type Totals struct {
	Count    int
	Subtotal int
	Tax      float64
	Total    float64
}

// Totals derives the figures the cart and checkout views display.
func (s *Store) Totals() Totals {
	sub := s.Subtotal()
	tax := float64(sub) * IVARate
	return Totals{
		Count:    s.Count(),
		Subtotal: sub,
		Tax:      tax,
		Total:    float64(sub) + tax,
	}
}
