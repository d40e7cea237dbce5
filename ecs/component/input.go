package component

// Pointer is the per-tick input context shared by mouse and touch.
type Pointer struct {
	X      float64
	Y      float64
	StartX float64
	StartY float64
	// DeltaX and DeltaY are the last displacement while down, previous
	// minus current sample. They are kept on the release tick.
	DeltaX   float64
	DeltaY   float64
	Down     bool
	Pressed  bool
	Released bool
	Touch    bool
}

var PointerComponent = NewComponent[Pointer]()
