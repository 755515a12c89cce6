package model

// Stage identifies one of the five pipeline stages. The orchestrator and the
// fallback synthesizer dispatch on this value; natural-language role text is
// only ever payload for a real generation backend.
type Stage string

const (
	StageResearch   Stage = "research"
	StageAutopsy    Stage = "autopsy"
	StageRevival    Stage = "revival"
	StageCopywriter Stage = "copywriter"
	StageRender     Stage = "render"

	// StageUnknown forces the synthesizer to classify by role text alone.
	StageUnknown Stage = ""
)

// StageOrder is the fixed execution order of the pipeline.
var StageOrder = []Stage{StageResearch, StageAutopsy, StageRevival, StageCopywriter, StageRender}
