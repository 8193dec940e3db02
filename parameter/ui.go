package parameter

// Terminal Raster
const (
	// CellWidth is the logical pixel width of one terminal cell
	CellWidth = 8.0

	// CellHeight is the logical pixel height of one terminal cell
	CellHeight = 16.0

	// SubpixelRows is the device pixel rows per cell (half-block rendering)
	SubpixelRows = 2
)

// Log Files
const (
	LogDir      = "logs"
	LogFileName = "blueprint.log"
)

// MaxLogSize triggers rotation of the debug log on startup
const MaxLogSize = 10 * 1024 * 1024
