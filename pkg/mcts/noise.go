package mcts

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

func (s *Selector[T]) noiseApplicable() bool {
	noise := s.tree.config.Noise
	if noise == nil || s.skipNoise {
		return false
	}

	moveNumber := s.tree.Ply() / 2
	return moveNumber < noise.MoveWindow && s.tree.NoiseModifications() < noise.MaxModifications
}

// Randomly picks one of the children close enough to the most visited one,
// weighted by their visit counts
func (s *Selector[T]) noiseOverride(byCount []rankedChild[T]) *Node[T] {
	cfg := s.tree.config
	if cfg.TieBreak != BestChildMostVisits {
		panic(&ConfigError{Field: "noise", Err: ErrNoiseRequiresMostVisits})
	}

	top := byCount[0].node
	topCount := float64(top.N())
	minCount := topCount - topCount*cfg.Noise.VisitFraction

	weights := make([]float64, 0, len(byCount))
	for _, ranked := range byCount {
		if float64(ranked.node.N()) < minCount {
			break
		}
		weights = append(weights, float64(ranked.node.N()))
	}

	if len(weights) == 1 {
		return top
	}

	index := SampleIndex(weights, cfg.Noise.Temperature, s.tree.uniform())
	chosen := byCount[index].node
	if chosen != top {
		s.tree.noiseModifications.Add(1)
		counters.noiseOverrides.Add(1)
		log.Debug().
			Str("top", fmtMove(top)).
			Str("chosen", fmtMove(chosen)).
			Int("candidates", len(weights)).
			Msg("noise sampling overrode the most visited child")
	}
	return chosen
}

func fmtMove[T MoveLike](node *Node[T]) string {
	if node == nil {
		return "<nil>"
	}
	return fmt.Sprint(node.Move)
}
