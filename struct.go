package dockwm

// WindowID is a stable handle for a window. Dock nodes reference windows
// only by id and re-resolve through the registry on every access, so a
// window closing mid-frame can never leave a dangling pointer in a tree.
type WindowID int

type point struct {
	X, Y float32
}

type rect struct {
	X0, Y0, X1, Y1 float32
}

type windowData struct {
	ID    WindowID
	Title string

	// Rect is the window's screen-space rectangle. It is authoritative
	// whenever the window is not docked; docked windows have it rewritten
	// from their leaf every frame.
	Rect rect

	NoTitleBar   bool
	NoResize     bool
	NoMove       bool
	NoClose      bool
	NoCollapse   bool
	NoBackground bool

	Open      bool
	Collapsed bool

	// Per-window interaction state. Keeping this on the window rather
	// than in one shared slot lets every surface resolve its own
	// interactions independently.
	Dragging   bool
	Resizing   bool
	ResizeEdge dragType

	startRect rect

	// Docked is derived during reconciliation: true when the window sits
	// in the main layout or in a floating group of two or more windows.
	Docked bool

	// DockLayoutID is a non-owning back-reference to the layout currently
	// holding the window, zero when the window is in no layout.
	DockLayoutID int
}

type splitDir int

const (
	SPLIT_HORIZONTAL splitDir = iota
	SPLIT_VERTICAL
)

type nodeKind int

const (
	NODE_LEAF nodeKind = iota
	NODE_SPLIT
)

// dockNode is a tagged variant: either a Split with exactly two children
// or a Leaf holding an ordered tab list. Operations switch exhaustively on
// Kind; there are no other node kinds.
type dockNode struct {
	Kind nodeKind
	Rect rect

	// Split fields.
	Dir    splitDir
	Ratio  float32
	First  *dockNode
	Second *dockNode

	// Leaf fields.
	Windows   []WindowID
	ActiveTab int
}

type dockZone int

const (
	ZONE_NONE dockZone = iota
	ZONE_CENTER
	ZONE_LEFT
	ZONE_RIGHT
	ZONE_TOP
	ZONE_BOTTOM
)

type dockingLayout struct {
	ID   int
	Main bool

	// Rect is the layout's outer screen rectangle. The main layout always
	// fills the primary surface. A floating layout with a single window
	// mirrors that window's rect; a floating group owns its rect.
	Rect rect

	Root *dockNode
}

type dragType int

const (
	PART_NONE dragType = iota

	PART_BAR
	PART_CLOSE
	PART_COLLAPSE

	PART_TOP
	PART_RIGHT
	PART_BOTTOM
	PART_LEFT

	PART_TOP_RIGHT
	PART_BOTTOM_RIGHT
	PART_BOTTOM_LEFT
	PART_TOP_LEFT
)

type dragKind int

const (
	DRAG_NONE dragKind = iota
	DRAG_GHOST_TAB
	DRAG_WINDOW_MOVE
	DRAG_WINDOW_RESIZE
	DRAG_SPLITTER
	DRAG_GROUP_MOVE
	DRAG_GROUP_RESIZE
)

// pointerState is the once-per-frame snapshot of the global pointer. Every
// hit test within a frame uses the same snapshot so preview and commit can
// never tear.
type pointerState struct {
	Pos          point
	Down         bool
	JustPressed  bool
	JustReleased bool
	Wheel        point
}

// Exported type aliases for library consumers.

type WindowData = windowData

type DockNode = dockNode

type DockingLayout = dockingLayout

type Rect = rect

type Point = point

type SplitDir = splitDir

type NodeKind = nodeKind

type DockZone = dockZone

type DragType = dragType
