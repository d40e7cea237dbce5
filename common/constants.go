package common

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// TPS is the fixed simulation rate; every system assumes one tick per frame.
	TPS = 60
)
