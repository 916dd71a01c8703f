package solver

//Statistics counts the work done by a single solve call.
type Statistics struct {
	DecisionCount    uint64
	PropagationCount uint64
	PureCount        uint64
	ResolventCount   uint64
	EliminationCount uint64
}
