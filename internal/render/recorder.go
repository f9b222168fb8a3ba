package render

// Block is one header with the values printed beneath it.
type Block struct {
	Header string `json:"header"`
	Values []int  `json:"values"`
}

// Recorder captures display output as blocks.
type Recorder struct {
	Blocks []Block
}

func (r *Recorder) Header(title string) error {
	r.Blocks = append(r.Blocks, Block{Header: title, Values: []int{}})
	return nil
}

// Value appends v to the latest block, opening an untitled block if none
// exists yet.
func (r *Recorder) Value(v int) error {
	if len(r.Blocks) == 0 {
		r.Blocks = append(r.Blocks, Block{Values: []int{}})
	}
	last := &r.Blocks[len(r.Blocks)-1]
	last.Values = append(last.Values, v)
	return nil
}

// Reset drops all recorded blocks.
func (r *Recorder) Reset() {
	r.Blocks = nil
}
