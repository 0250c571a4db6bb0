package bench

import (
	"context"
	"encoding/binary"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"lukechampine.com/frand"

	"github.com/IlikeChooros/go-mcts-root/pkg/mcts"
)

/*
Arena benchmark subpackage, runs two root decision configurations over
the same synthetic root snapshots and counts how often they agree.
*/

type AgreementArena struct {
	AgreementStats
	ConfigA    *mcts.Config
	ConfigB    *mcts.Config
	NSnapshots uint
	NThreads   uint
	// Seed of the snapshot generator, the same seed gives the same snapshots
	Seed uint64
}

func NewAgreementArena(configA, configB *mcts.Config) *AgreementArena {
	return &AgreementArena{
		ConfigA:    configA,
		ConfigB:    configB,
		NSnapshots: 1000,
		NThreads:   2,
		Seed:       uint64(mcts.SeedGeneratorFn()),
	}
}

func (aa *AgreementArena) Setup(nSnapshots uint, nThreads uint) *AgreementArena {
	aa.NSnapshots = nSnapshots
	aa.NThreads = max(1, nThreads)
	return aa
}

// Distribute the snapshots equally between the workers and wait for them.
// Listener methods may be called from many goroutines.
// Tallies of a previous Run are cleared.
func (aa *AgreementArena) Run(ctx context.Context, listener ListenerLike) (AgreementSummary, error) {
	if listener == nil {
		listener = DefaultListener{}
	}
	if err := aa.ConfigA.Validate(); err != nil {
		return AgreementSummary{}, fmt.Errorf("config A: %w", err)
	}
	if err := aa.ConfigB.Validate(); err != nil {
		return AgreementSummary{}, fmt.Errorf("config B: %w", err)
	}

	aa.reset()
	group, ctx := errgroup.WithContext(ctx)
	nSnapshots := aa.NSnapshots / aa.NThreads
	rest := aa.NSnapshots % aa.NThreads

	for i := range aa.NThreads {
		delta := uint(0)
		if rest > 0 {
			delta = 1
			rest--
		}

		id, n := int(i), int(nSnapshots+delta)
		group.Go(func() error {
			return aa.worker(ctx, id, n, listener)
		})
	}

	err := group.Wait()
	summary := aa.summary(int(aa.NThreads))
	listener.Summary(summary)
	log.Debug().
		Int("snapshots", summary.TotalSnapshots).
		Float64("agreement", summary.AgreementRate).
		Msg("agreement arena finished")
	return summary, err
}

func (aa *AgreementArena) worker(ctx context.Context, id, nSnapshots int, listener ListenerLike) error {
	rng := newWorkerRNG(aa.Seed, id)
	local := AgreementStats{}

	for range nSnapshots {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		result, err := aa.compare(RandomSnapshot(rng))
		if err != nil {
			return fmt.Errorf("worker %d: %w", id, err)
		}
		aa.add(result)
		local.add(result)
	}

	listener.OnFinishedWork(AgreementWorkerInfo{
		WorkerID:      id,
		NSnapshots:    nSnapshots,
		FinishedTotal: aa.Total(),
		Agreed:        local.Agreed(),
		Disagreed:     local.Disagreed(),
		Skipped:       local.Skipped(),
	})
	return nil
}

// Decide the snapshot's root with both configurations, each on its own tree
func (aa *AgreementArena) compare(snap *mcts.Snapshot) (AgreementResult, error) {
	treeA, err := snap.Tree(aa.ConfigA)
	if err != nil {
		return Skipped, err
	}
	treeB, err := snap.Tree(aa.ConfigB)
	if err != nil {
		return Skipped, err
	}

	a, b := treeA.Decide(), treeB.Decide()
	switch {
	case a.Empty() || b.Empty():
		return Skipped, nil
	case a.Move() == b.Move():
		return Agreed, nil
	}
	return Disagreed, nil
}

func newWorkerRNG(seed uint64, id int) *frand.RNG {
	key := make([]byte, 32)
	binary.LittleEndian.PutUint64(key, seed)
	binary.LittleEndian.PutUint64(key[8:], uint64(id))
	return frand.NewCustom(key, 1024, 12)
}
