// SPDX-License-Identifier: MIT
// Package: schoolnet/builder
//
// plan.go - the staging area shared by all constructors.
//
// core.Network freezes its town set on the first road, so constructors cannot
// write into it directly when several of them are composed. A Plan records
// towns and roads in emission order and BuildNetwork replays them towns-first.
//
// Contract:
//   • AddTown is idempotent: a repeated name keeps its first position.
//   • AddRoad requires both endpoints to be planned and distinct.
//   • A repeated road (either orientation) is ignored.

package builder

import "fmt"

// Plan collects town names and roads before a network is materialized.
// The zero value is not usable; plans are created by BuildNetwork and BuildPlan.
type Plan struct {
	towns []string
	index map[string]int
	roads [][2]int
	seen  map[[2]int]struct{}
}

func newPlan() *Plan {
	return &Plan{
		index: make(map[string]int),
		seen:  make(map[[2]int]struct{}),
	}
}

// AddTown plans a town. Planning an existing name is a no-op.
// Complexity: O(1) amortized.
func (p *Plan) AddTown(name string) error {
	if name == "" {
		return fmt.Errorf("AddTown: empty name: %w", ErrConstructFailed)
	}
	if _, ok := p.index[name]; ok {
		return nil
	}
	p.index[name] = len(p.towns)
	p.towns = append(p.towns, name)

	return nil
}

// AddRoad plans a road between two planned towns.
// Complexity: O(1) amortized.
func (p *Plan) AddRoad(a, b string) error {
	i, ok := p.index[a]
	if !ok {
		return fmt.Errorf("AddRoad(%s,%s): unplanned town %q: %w", a, b, a, ErrConstructFailed)
	}
	j, ok := p.index[b]
	if !ok {
		return fmt.Errorf("AddRoad(%s,%s): unplanned town %q: %w", a, b, b, ErrConstructFailed)
	}
	if i == j {
		return fmt.Errorf("AddRoad(%s,%s): self-loop: %w", a, b, ErrConstructFailed)
	}
	key := [2]int{i, j}
	if j < i {
		key = [2]int{j, i}
	}
	if _, dup := p.seen[key]; dup {
		return nil
	}
	p.seen[key] = struct{}{}
	p.roads = append(p.roads, [2]int{i, j})

	return nil
}

// Towns returns the planned town names in planning order.
func (p *Plan) Towns() []string {
	out := make([]string, len(p.towns))
	copy(out, p.towns)
	return out
}

// Roads returns the planned roads as name pairs in planning order.
func (p *Plan) Roads() [][2]string {
	out := make([][2]string, len(p.roads))
	for k, r := range p.roads {
		out[k] = [2]string{p.towns[r[0]], p.towns[r[1]]}
	}
	return out
}

// TownCount reports the number of planned towns.
func (p *Plan) TownCount() int { return len(p.towns) }

// RoadCount reports the number of planned roads.
func (p *Plan) RoadCount() int { return len(p.roads) }
