package dockwm

const (
	// edgeTolerance defines the padding around window and group edges used
	// to detect resize drags along the sides.
	edgeTolerance = 4
	// cornerTolerance defines the larger area around window and group
	// corners used to detect diagonal resizing.
	cornerTolerance = 12

	// DragThreshold is the cumulative pointer displacement, in pixels,
	// before a press turns into a real drag. Below it a release is a
	// plain click.
	DragThreshold float32 = 5

	// rootEdgeSlack is how closely a leaf edge must coincide with the
	// layout's outer dock edge for a drop to be promoted to a root-level
	// dock.
	rootEdgeSlack float32 = 1

	// splitRatioMin and splitRatioMax bound a split's first-child share.
	splitRatioMin float32 = 0.1
	splitRatioMax float32 = 0.9
)
