package bench

type ListenerLike interface {
	// Called by each worker once it processed all of its snapshots
	OnFinishedWork(info AgreementWorkerInfo)
	// Called once, after every worker finished
	Summary(summary AgreementSummary)
}

type DefaultListener struct{}

func (d DefaultListener) OnFinishedWork(info AgreementWorkerInfo) {

}

func (d DefaultListener) Summary(summary AgreementSummary) {

}
