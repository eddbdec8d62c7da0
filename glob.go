package dockwm

var (
	screenWidth  = 1024
	screenHeight = 1024

	// windows holds every registered window back-to-front; the last entry
	// is the frontmost. Closed windows stay in the list so they can be
	// reopened, they are just skipped by hit tests.
	windows      []*windowData
	activeWindow *windowData
	nextWindowID WindowID = 1

	// mainLayout always exists and fills the primary surface. Floating
	// layouts are kept back-to-front like windows.
	mainLayout      *dockingLayout
	floatingLayouts []*dockingLayout
	nextLayoutID    = 1

	// Controller drag channel. Only one interaction may own a frame; the
	// kind encodes which priority level is active.
	drag struct {
		Kind   dragKind
		Win    WindowID
		Layout int
		Node   *dockNode
		Edge   dragType
		Start  point
		Offset point
		Rect   rect
		Real   bool
	}

	// pendingTab arms a ghost-tab drag: pressing a tab selects it, and
	// the ghost channel only opens once the pointer moves past the drag
	// threshold while still held.
	pendingTab struct {
		Active bool
		Win    WindowID
		Layout int
		Start  point
	}

	previewRect   rect
	previewActive bool

	ghostRect   rect
	ghostActive bool

	frameInput pointerState
)

// Init resets all docking state and binds the main layout to a primary
// surface of the given size. Call once before the first Update.
func Init(width, height int) {
	screenWidth = width
	screenHeight = height
	windows = nil
	activeWindow = nil
	nextWindowID = 1
	floatingLayouts = nil
	mainLayout = &dockingLayout{ID: 1, Main: true, Rect: screenRect()}
	nextLayoutID = 2
	drag.Kind = DRAG_NONE
	pendingTab.Active = false
	previewActive = false
	ghostActive = false
	resetSurfaces()
	if currentMetrics == nil {
		currentMetrics = &defaultMetrics
	}
}

// SetScreenSize updates the primary surface bounds used for layout.
func SetScreenSize(w, h int) {
	screenWidth = w
	screenHeight = h
}

// ScreenSize returns the current primary surface size.
func ScreenSize() (int, int) { return screenWidth, screenHeight }

func screenRect() rect {
	return rect{X1: float32(screenWidth), Y1: float32(screenHeight)}
}
