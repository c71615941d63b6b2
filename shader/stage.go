package shader

// Stage identifies the hardware shader stage a program runs as.
type Stage uint32

const (
	StageVertex Stage = iota
	StageTessellationControl
	StageTessellationEval
	StageGeometry
	StageFragment
	StageCompute
)

// NumStages is the number of hardware stages.
const NumStages = 6

// String returns the conventional two-letter stage name.
func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vs"
	case StageTessellationControl:
		return "tc"
	case StageTessellationEval:
		return "te"
	case StageGeometry:
		return "gs"
	case StageFragment:
		return "fs"
	case StageCompute:
		return "cs"
	default:
		return "??"
	}
}
