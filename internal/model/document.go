package model

// ConfidenceMedium is the document's starting data-confidence level. The
// research stage may lower or raise it based on what it finds.
const ConfidenceMedium = "medium"

// Document is the single aggregate threaded through the pipeline. Each stage
// receives the prior version, fills exactly one result slot, and returns a
// new copy. Earlier slots are read-only for later stages; the progress log
// is append-only.
type Document struct {
	Startup Startup `json:"startup"`

	Research *ResearchDossier `json:"research,omitempty"`
	Autopsy  *AutopsyReport   `json:"autopsy,omitempty"`
	Revival  *RevivalPlan     `json:"revival,omitempty"`
	Copy     *CopyDeck        `json:"copywriter_outputs,omitempty"`

	// RenderedPage is the landing-page HTML produced by the final stage.
	RenderedPage string `json:"marketing_html,omitempty"`

	Progress       []string `json:"progress"`
	DataConfidence string   `json:"data_confidence"`
}

// NewDocument constructs the initial document for a pipeline run.
func NewDocument(s Startup) *Document {
	return &Document{
		Startup:        s,
		DataConfidence: ConfidenceMedium,
	}
}

// Clone returns a copy of the document with its own progress slice. Result
// slot pointers are shared; stages must treat prior slots as read-only.
func (d *Document) Clone() *Document {
	out := *d
	out.Progress = make([]string, len(d.Progress), len(d.Progress)+1)
	copy(out.Progress, d.Progress)
	return &out
}

// AppendProgress records a human-readable progress marker.
func (d *Document) AppendProgress(msg string) {
	d.Progress = append(d.Progress, msg)
}

// Complete reports whether all five result slots are populated.
func (d *Document) Complete() bool {
	return d.Research != nil && d.Autopsy != nil && d.Revival != nil &&
		d.Copy != nil && d.RenderedPage != ""
}
