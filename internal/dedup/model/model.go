package model

// Record is one input row. ID stays stable for the whole run; Seq is the
// original input position and drives member ordering inside a group.
type Record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Norm string `json:"norm,omitempty"`
	Seq  int    `json:"-"`
}

// PairScore is a retained edge between two records. A holds the
// lexicographically smaller ID so every pair is stored exactly once.
type PairScore struct {
	A     string `json:"a"`
	B     string `json:"b"`
	Score int    `json:"score"`
}

// Group is one set of records believed to denote the same person.
// Score is the weakest retained edge inside the component; it is the
// conservative confidence for the whole group.
type Group struct {
	Members []string `json:"members"`
	Score   int      `json:"score"`
}

type Options struct {
	Threshold int // inclusive match threshold, 0..100
	Workers   int // pair-scoring goroutines; <=0 means GOMAXPROCS
}

type Result struct {
	Groups   []Group     `json:"groups"`
	Pairs    []PairScore `json:"pairs"`
	Skipped  []string    `json:"skipped,omitempty"` // IDs empty after normalization
	Total    int         `json:"total"`
	Compared int         `json:"compared"`
}
