package parameter

// Pointer Interpolation
const (
	// PointerSpawnSpacing is the target distance between interpolated spawn points (logical px)
	PointerSpawnSpacing = 5.0

	// PointerMaxSteps caps interpolation steps for a single move event
	PointerMaxSteps = 300
)
