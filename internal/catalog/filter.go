package catalog

import "sort"

// Filter keeps products whose price falls inside the inclusive range
// and, when brands is non-empty, whose brand is among them. A zero Max
// means no upper bound.
func Filter(ps []Product, pr PriceRange, brands []string) []Product {
	brandSet := map[string]struct{}{}
	for _, b := range brands {
		brandSet[b] = struct{}{}
	}

	out := []Product{}
	for _, p := range ps {
		if p.Price < pr.Min {
			continue
		}
		if pr.Max > 0 && p.Price > pr.Max {
			continue
		}
		if len(brandSet) > 0 {
			if _, ok := brandSet[p.Brand]; !ok {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}

// Sort returns a copy of ps ordered by the given key. Every ordering
// is stable: products the key does not differentiate keep their
// relative catalog order. Unknown keys fall back to SortPopular.
func Sort(ps []Product, key SortKey) []Product {
	out := make([]Product, len(ps))
	copy(out, ps)

	switch key {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortRating:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	case SortNew:
		sort.SliceStable(out, func(i, j int) bool { return out[i].IsNew && !out[j].IsNew })
	default: // popular
		sort.SliceStable(out, func(i, j int) bool { return out[i].IsPopular && !out[j].IsPopular })
	}
	return out
}
