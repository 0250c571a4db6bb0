package bench

import "sync/atomic"

type AgreementResult int

const (
	// Both configurations chose the same move
	Agreed AgreementResult = iota
	// The configurations chose different moves
	Disagreed
	// Nothing to choose from, the root had no legal moves
	Skipped
)

type AgreementStats struct {
	agreed    uint32
	disagreed uint32
	skipped   uint32
}

func (as *AgreementStats) Total() int {
	return as.Agreed() + as.Disagreed() + as.Skipped()
}

func (as *AgreementStats) Agreed() int {
	return int(atomic.LoadUint32(&as.agreed))
}

func (as *AgreementStats) Disagreed() int {
	return int(atomic.LoadUint32(&as.disagreed))
}

func (as *AgreementStats) Skipped() int {
	return int(atomic.LoadUint32(&as.skipped))
}

func (as *AgreementStats) reset() {
	atomic.StoreUint32(&as.agreed, 0)
	atomic.StoreUint32(&as.disagreed, 0)
	atomic.StoreUint32(&as.skipped, 0)
}

func (as *AgreementStats) add(result AgreementResult) {
	switch result {
	case Agreed:
		atomic.AddUint32(&as.agreed, 1)
	case Disagreed:
		atomic.AddUint32(&as.disagreed, 1)
	default:
		atomic.AddUint32(&as.skipped, 1)
	}
}

type AgreementWorkerInfo struct {
	WorkerID      int
	NSnapshots    int
	FinishedTotal int
	Agreed        int
	Disagreed     int
	Skipped       int
}

type AgreementSummary struct {
	TotalSnapshots int     `json:"total_snapshots"`
	Agreed         int     `json:"agreed"`
	Disagreed      int     `json:"disagreed"`
	Skipped        int     `json:"skipped"`
	Workers        int     `json:"workers"`
	AgreementRate  float64 `json:"agreement_rate"`
}

func (as *AgreementStats) summary(workers int) AgreementSummary {
	summary := AgreementSummary{
		TotalSnapshots: as.Total(),
		Agreed:         as.Agreed(),
		Disagreed:      as.Disagreed(),
		Skipped:        as.Skipped(),
		Workers:        workers,
	}
	if decided := summary.Agreed + summary.Disagreed; decided > 0 {
		summary.AgreementRate = float64(summary.Agreed) / float64(decided)
	}
	return summary
}
