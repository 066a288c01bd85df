// Package usage partitions scene asset lists into shared and exclusive sets.
package usage

import "sort"

// Plan is the result of cross-scene usage analysis. It is computed once
// per pack run and consumed immediately by the orchestrator.
type Plan struct {
	// Shared lists every asset path referenced by two or more distinct
	// scenes, in first-encounter order over the sorted scene scan.
	Shared []string

	// Exclusive maps each scene name to its asset list with shared paths
	// removed, preserving the scene's original relative order. Scenes
	// whose list becomes empty have no key.
	Exclusive map[string][]string

	// Scenes holds the scene names in sorted order. Bin ids are assigned
	// by walking this slice, so the order is part of the output contract.
	Scenes []string
}

// Analyze computes which asset paths are used by more than one scene.
//
// A path listed twice inside one scene counts as a single use; sharing
// requires two or more distinct scenes. Exclusive lists are deduplicated
// (first occurrence wins) so that no asset is ever packed twice. The
// input lists must already be normalized; Analyze compares paths as
// opaque strings.
func Analyze(scenes map[string][]string) Plan {
	names := make([]string, 0, len(scenes))
	for name := range scenes {
		names = append(names, name)
	}
	sort.Strings(names)

	// Count distinct-scene uses per path.
	uses := make(map[string]int)
	for _, name := range names {
		seen := make(map[string]struct{}, len(scenes[name]))
		for _, path := range scenes[name] {
			if _, ok := seen[path]; ok {
				continue
			}
			seen[path] = struct{}{}
			uses[path]++
		}
	}

	plan := Plan{
		Exclusive: make(map[string][]string, len(scenes)),
		Scenes:    names,
	}

	inShared := make(map[string]struct{})
	for _, name := range names {
		seen := make(map[string]struct{}, len(scenes[name]))
		for _, path := range scenes[name] {
			if _, ok := seen[path]; ok {
				continue
			}
			seen[path] = struct{}{}

			if uses[path] >= 2 {
				if _, ok := inShared[path]; !ok {
					inShared[path] = struct{}{}
					plan.Shared = append(plan.Shared, path)
				}
				continue
			}
			plan.Exclusive[name] = append(plan.Exclusive[name], path)
		}
	}

	return plan
}

// AssetCount returns the total number of distinct assets in the plan:
// shared paths plus every scene's exclusive paths.
func (p Plan) AssetCount() int {
	n := len(p.Shared)
	for _, assets := range p.Exclusive {
		n += len(assets)
	}
	return n
}
