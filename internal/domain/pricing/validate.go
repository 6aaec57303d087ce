package pricing

// Validate checks a normalized request against the catalog and resolves
// the selected definitions in request order.
//
// Checks run fail-fast in a fixed order so identical invalid input always
// yields the identical error: unknown bundles first, then seat minimums,
// then dependency closure. Bundle IDs are checked in request order within
// each stage.
func Validate(catalog *Catalog, req *PricingRequest) ([]*BundleDefinition, error) {
	defs := make([]*BundleDefinition, 0, len(req.BundleIDs))
	for _, id := range req.BundleIDs {
		def, ok := catalog.Get(id)
		if !ok {
			return nil, NewUnknownBundleError(id)
		}
		defs = append(defs, def)
	}

	for _, def := range defs {
		if def.RequiresSeats(req.Seats) {
			return nil, NewMinimumSeatsError(def.ID, def.MinSeats, req.Seats)
		}
	}

	selected := make(map[string]bool, len(defs))
	for _, def := range defs {
		selected[def.ID] = true
	}
	for _, def := range defs {
		var missing []string
		for _, dep := range def.Dependencies {
			if !selected[dep] {
				missing = append(missing, dep)
			}
		}
		if len(missing) > 0 {
			return nil, NewUnmetDependencyError(def.ID, missing)
		}
	}

	return defs, nil
}
