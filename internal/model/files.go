package model

// QueueFile is the ordered index consumed by the cutting queue.
type QueueFile struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// CutFile is one fixed-position parameter file for a single lens.
type CutFile struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// FilePair is one emission run: a queue index plus one cut file per row,
// in position order. Immutable once produced.
type FilePair struct {
	Queue    QueueFile `json:"queFile"`
	CutFiles []CutFile `json:"difFiles"`
	Errors   []string  `json:"errors"`
}

// Group is a set of confirmed rows sharing a material thickness.
type Group struct {
	Thickness    float64
	HasThickness bool
	Rows         []Row
}
