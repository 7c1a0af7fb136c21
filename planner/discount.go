package planner

// applyDiscounts returns the discounted total for path and its per-leg breakdown.
//
// For each discounted location (in sorted key order) the path is scanned for
// legs departing that location. Only the LAST such leg counts: its price times
// the rate is subtracted once. Distinct discounted locations add up independently.
//
// Leg prices come from EdgeWeight, which is safe here because consecutive path
// entries were produced from predecessor links and are always adjacent.
func (p *Planner) applyDiscounts(path []string, base float64) (float64, []Leg) {
	legs := make([]Leg, len(path)-1)
	for i := range legs {
		legs[i] = Leg{From: path[i], To: path[i+1], Cost: p.g.EdgeWeight(path[i], path[i+1])}
	}

	total := base
	var last int
	for _, key := range p.keys {
		last = -1
		for i := range legs {
			if legs[i].From == key {
				last = i
			}
		}
		if last < 0 {
			continue
		}
		cut := legs[last].Cost * p.discounts[key]
		legs[last].Discount = cut
		total -= cut
	}

	return total, legs
}
