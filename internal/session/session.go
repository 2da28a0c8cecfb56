// Package session ties a loaded network to its storage location, the
// process logger and the metrics registry. Every user-facing operation of
// the menu and the command line goes through a Session.
package session

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/katalvlaran/schoolnet/codec"
	"github.com/katalvlaran/schoolnet/core"
	"github.com/katalvlaran/schoolnet/internal/metrics"
	"github.com/katalvlaran/schoolnet/storage"
)

// Operation names used in logs and metrics.
const (
	OpLoad         = "load"
	OpSave         = "save"
	OpSetFacility  = "set_facility"
	OpRemove       = "remove_facility"
	OpFullCoverage = "full_coverage"
	OpSolve        = "solve"
)

// ErrNoLocation indicates a save without a target.
var ErrNoLocation = errors.New("session: no save location")

// Opener resolves a location into a store and key.
type Opener func(ctx context.Context, location string) (storage.Store, string, error)

// Deps are the collaborators of a Session. Zero values are replaced by
// discarding defaults.
type Deps struct {
	Logger  *slog.Logger
	Metrics *metrics.Registry
	// Open resolves locations; storage.Open with S3 when nil.
	Open Opener
	// S3 configures s3:// locations for the default opener.
	S3 storage.S3Config
	// Trace logs every greedy pick at debug level.
	Trace bool
}

func (d Deps) withDefaults() Deps {
	if d.Logger == nil {
		d.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if d.Metrics == nil {
		d.Metrics = metrics.NewRegistry()
	}
	if d.Open == nil {
		s3cfg := d.S3
		d.Open = func(ctx context.Context, location string) (storage.Store, string, error) {
			return storage.Open(ctx, location, s3cfg)
		}
	}
	return d
}

// Session is a single-user editing session over one network.
// It is not safe for concurrent use.
type Session struct {
	deps     Deps
	log      *slog.Logger
	net      *core.Network
	location string
	dirty    bool
}

// New wraps an existing network.
func New(n *core.Network, location string, deps Deps) *Session {
	deps = deps.withDefaults()
	s := &Session{
		deps:     deps,
		log:      deps.Logger.With("location", location),
		net:      n,
		location: location,
	}
	s.syncGauges()
	return s
}

// Load reads the network stored at location.
func Load(ctx context.Context, location string, deps Deps) (*Session, codec.LoadResult, error) {
	deps = deps.withDefaults()
	log := deps.Logger.With("location", location)

	n, res, err := load(ctx, deps, location)
	deps.Metrics.RecordOperation(OpLoad, err)
	if err != nil {
		log.Error("network.load_failed", "op", OpLoad, "err", err)
		return nil, res, err
	}

	if res.FallbackApplied {
		deps.Metrics.FallbacksTotal.Inc()
		log.Warn("network.fallback", "op", OpLoad, "uncovered", res.Uncovered)
	}
	log.Info("network.loaded", "op", OpLoad,
		"towns", n.TownCount(), "roads", n.RoadCount(), "facilities", n.FacilityCount())

	return New(n, location, deps), res, nil
}

func load(ctx context.Context, deps Deps, location string) (*core.Network, codec.LoadResult, error) {
	st, key, err := deps.Open(ctx, location)
	if err != nil {
		return nil, codec.LoadResult{}, err
	}
	rc, err := st.Get(ctx, key)
	if err != nil {
		return nil, codec.LoadResult{}, err
	}
	defer rc.Close()

	return codec.Load(rc)
}

// Network returns the underlying network.
func (s *Session) Network() *core.Network { return s.net }

// Location returns the location the session was loaded from or last saved to.
func (s *Session) Location() string { return s.location }

// Dirty reports whether facilities changed since the last load or save.
func (s *Session) Dirty() bool { return s.dirty }

// Coverage lists facility towns in insertion order.
func (s *Session) Coverage() []string { return s.net.CoverageReport() }

// Roads lists every town with its neighbours.
func (s *Session) Roads() []core.NeighborEntry { return s.net.NeighborsReport() }

// Dump writes the debug listing of the network.
func (s *Session) Dump(w io.Writer) error { return s.net.Dump(w) }

// AddFacility places a facility on name.
func (s *Session) AddFacility(name string) error {
	err := s.net.SetFacility(name)
	s.record(OpSetFacility, name, err)
	return err
}

// RemoveFacility removes the facility of name if accessibility survives.
func (s *Session) RemoveFacility(name string) error {
	err := s.net.RemoveFacility(name)
	s.record(OpRemove, name, err)
	return err
}

// FullCoverage places a facility in every town.
func (s *Session) FullCoverage() {
	start := time.Now()
	s.net.ApplyFullCoverage()
	s.deps.Metrics.RecordSolve(OpFullCoverage, time.Since(start))
	s.record(OpFullCoverage, "", nil)
}

// SolveReport describes one greedy run.
type SolveReport struct {
	Before []string
	After  []string
	Result core.GreedyResult
}

// Solve replaces the facilities with the greedy placement.
func (s *Session) Solve() SolveReport {
	rep := SolveReport{Before: s.net.CoverageReport()}

	var opts []core.GreedyOption
	if s.deps.Trace {
		opts = append(opts, core.WithOnPick(func(p core.Pick) {
			s.log.Debug("solver.pick", "town", p.Town, "degree", p.Degree,
				"score", p.Score, "isolated", p.Isolated)
		}))
	}

	start := time.Now()
	rep.Result = s.net.SolveGreedy(opts...)
	s.deps.Metrics.RecordSolve("greedy", time.Since(start))

	rep.After = s.net.CoverageReport()
	s.record(OpSolve, "", nil)
	s.log.Info("solver.done", "before", len(rep.Before), "after", len(rep.After),
		"rounds", rep.Result.Rounds)

	return rep
}

// Save writes the network to location, or to the session location when
// location is empty. A successful save updates the session location.
func (s *Session) Save(ctx context.Context, location string) error {
	if location == "" {
		location = s.location
	}
	err := s.save(ctx, location)
	s.deps.Metrics.RecordOperation(OpSave, err)
	if err != nil {
		s.log.Error("network.save_failed", "op", OpSave, "target", location, "err", err)
		return err
	}

	if location != s.location {
		s.location = location
		s.log = s.deps.Logger.With("location", location)
	}
	s.dirty = false
	s.log.Info("network.saved", "op", OpSave, "target", location)
	return nil
}

func (s *Session) save(ctx context.Context, location string) error {
	if location == "" {
		return ErrNoLocation
	}
	st, key, err := s.deps.Open(ctx, location)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := codec.Save(&buf, s.net); err != nil {
		return err
	}
	return st.Put(ctx, key, &buf)
}

// record logs and counts a mutation and refreshes the gauges.
func (s *Session) record(op, town string, err error) {
	s.deps.Metrics.RecordOperation(op, err)
	attrs := []any{"op", op}
	if town != "" {
		attrs = append(attrs, "town", town)
	}
	if err != nil {
		s.log.Warn("facility.rejected", append(attrs, "err", err)...)
		return
	}
	s.dirty = true
	s.syncGauges()
	s.log.Info("facility.changed", append(attrs, "facilities", s.net.FacilityCount())...)
}

func (s *Session) syncGauges() {
	s.deps.Metrics.SetNetwork(s.net.TownCount(), s.net.FacilityCount())
}
