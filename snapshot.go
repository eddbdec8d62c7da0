package dockwm

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// NodeSnapshot is the serializable form of a dock node. Windows are
// referenced by title, not id: ids are assigned per-session and mean
// nothing in a file.
type NodeSnapshot struct {
	Kind      string         `yaml:"kind"`
	Dir       string         `yaml:"dir,omitempty"`
	Ratio     float32        `yaml:"ratio,omitempty"`
	First     *NodeSnapshot  `yaml:"first,omitempty"`
	Second    *NodeSnapshot  `yaml:"second,omitempty"`
	Windows   []string       `yaml:"windows,omitempty"`
	ActiveTab int            `yaml:"active_tab,omitempty"`
}

// LayoutSnapshot is the serializable form of one layout.
type LayoutSnapshot struct {
	Main bool          `yaml:"main,omitempty"`
	Rect [4]float32    `yaml:"rect,flow"`
	Root *NodeSnapshot `yaml:"root,omitempty"`
}

// WorkspaceSnapshot captures the whole layout forest.
type WorkspaceSnapshot struct {
	Layouts []LayoutSnapshot `yaml:"layouts"`
}

func snapshotNode(n *dockNode) *NodeSnapshot {
	if n == nil {
		return nil
	}
	if n.Kind == NODE_SPLIT {
		dir := "vertical"
		if n.Dir == SPLIT_HORIZONTAL {
			dir = "horizontal"
		}
		return &NodeSnapshot{
			Kind:   "split",
			Dir:    dir,
			Ratio:  n.Ratio,
			First:  snapshotNode(n.First),
			Second: snapshotNode(n.Second),
		}
	}
	s := &NodeSnapshot{Kind: "leaf", ActiveTab: n.ActiveTab}
	for _, id := range n.Windows {
		if win := findWindow(id); win != nil {
			s.Windows = append(s.Windows, win.Title)
		}
	}
	return s
}

func snapshotLayout(l *dockingLayout) LayoutSnapshot {
	return LayoutSnapshot{
		Main: l.Main,
		Rect: [4]float32{l.Rect.X0, l.Rect.Y0, l.Rect.X1, l.Rect.Y1},
		Root: snapshotNode(l.Root),
	}
}

// Snapshot captures the current layout forest, main layout first.
func Snapshot() WorkspaceSnapshot {
	ws := WorkspaceSnapshot{Layouts: []LayoutSnapshot{snapshotLayout(mainLayout)}}
	for _, l := range floatingLayouts {
		ws.Layouts = append(ws.Layouts, snapshotLayout(l))
	}
	return ws
}

// restoreNode rebuilds a tree from its snapshot, resolving window titles
// against the registry. Unknown titles are skipped; the result is pruned
// so a snapshot full of vanished windows restores to nothing rather than
// a forest of empty leaves.
func restoreNode(s *NodeSnapshot) *dockNode {
	if s == nil {
		return nil
	}
	if s.Kind == "split" {
		first := restoreNode(s.First)
		second := restoreNode(s.Second)
		if first == nil || second == nil {
			if first != nil {
				return first
			}
			return second
		}
		dir := SPLIT_VERTICAL
		if s.Dir == "horizontal" {
			dir = SPLIT_HORIZONTAL
		}
		return newSplit(dir, s.Ratio, first, second)
	}
	n := newLeaf()
	for _, title := range s.Windows {
		if win := FindWindowByTitle(title); win != nil {
			win.Open = true
			n.Windows = append(n.Windows, win.ID)
		}
	}
	if len(n.Windows) == 0 {
		return nil
	}
	n.ActiveTab = s.ActiveTab
	if n.ActiveTab >= len(n.Windows) || n.ActiveTab < 0 {
		n.ActiveTab = 0
	}
	return n
}

// Restore replaces the layout forest from a snapshot. Windows named in
// the snapshot must already be registered; names with no window are
// dropped. Windows not named keep whatever layout reconciliation gives
// them on the next frame.
func Restore(ws WorkspaceSnapshot) {
	for _, win := range windows {
		removeWindowEverywhere(win.ID)
	}
	floatingLayouts = nil
	mainLayout.Root = nil
	for _, ls := range ws.Layouts {
		root := restoreNode(ls.Root)
		if ls.Main {
			mainLayout.Root = root
			continue
		}
		if root == nil {
			continue
		}
		l := &dockingLayout{
			ID:   nextLayoutID,
			Rect: rect{X0: ls.Rect[0], Y0: ls.Rect[1], X1: ls.Rect[2], Y1: ls.Rect[3]},
			Root: root,
		}
		nextLayoutID++
		floatingLayouts = append(floatingLayouts, l)
		if win := l.soleLayoutWindow(); win != nil {
			win.Rect = l.Rect
		}
	}
	refreshDockedFlags()
	updateLayouts()
}

// MarshalSnapshot encodes a snapshot as YAML.
func MarshalSnapshot(ws WorkspaceSnapshot) ([]byte, error) {
	return yaml.Marshal(ws)
}

// UnmarshalSnapshot decodes a YAML snapshot.
func UnmarshalSnapshot(data []byte) (WorkspaceSnapshot, error) {
	var ws WorkspaceSnapshot
	if err := yaml.Unmarshal(data, &ws); err != nil {
		return WorkspaceSnapshot{}, fmt.Errorf("decode layout snapshot: %w", err)
	}
	return ws, nil
}

// SaveLayouts writes the current layout forest to path.
func SaveLayouts(path string) error {
	data, err := MarshalSnapshot(Snapshot())
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// RestoreLayouts reads a layout file written by SaveLayouts and applies
// it. A missing file is not an error; the current layouts stay.
func RestoreLayouts(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	ws, err := UnmarshalSnapshot(data)
	if err != nil {
		return err
	}
	Restore(ws)
	return nil
}
