package dockwm

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DumpLayouts writes the full docking state to the debug directory as
// indented JSON, one object per layout plus the window registry.
func DumpLayouts() error {
	if err := os.MkdirAll("debug", 0755); err != nil {
		return err
	}
	state := struct {
		Screen  [2]int
		Windows []dumpWindow
		Layouts []dumpLayout
	}{
		Screen: [2]int{screenWidth, screenHeight},
	}
	for _, win := range windows {
		state.Windows = append(state.Windows, dumpWindow{
			ID: win.ID, Title: win.Title, Open: win.Open,
			Docked: win.Docked, Layout: win.DockLayoutID,
			Rect: [4]float32{win.Rect.X0, win.Rect.Y0, win.Rect.X1, win.Rect.Y1},
		})
	}
	state.Layouts = append(state.Layouts, dumpOneLayout(mainLayout))
	for _, l := range floatingLayouts {
		state.Layouts = append(state.Layouts, dumpOneLayout(l))
	}
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join("debug", "layouts.json"), data, 0644)
}

type dumpWindow struct {
	ID     WindowID
	Title  string
	Open   bool
	Docked bool
	Layout int
	Rect   [4]float32
}

type dumpLayout struct {
	ID   int
	Main bool
	Rect [4]float32
	Tree string
}

func dumpOneLayout(l *dockingLayout) dumpLayout {
	return dumpLayout{
		ID: l.ID, Main: l.Main,
		Rect: [4]float32{l.Rect.X0, l.Rect.Y0, l.Rect.X1, l.Rect.Y1},
		Tree: treeString(l.Root),
	}
}

// treeString renders a tree one-line for quick eyeballing in the dump.
func treeString(n *dockNode) string {
	if n == nil {
		return "-"
	}
	if n.Kind == NODE_LEAF {
		return fmt.Sprintf("leaf%v", n.Windows)
	}
	dir := "V"
	if n.Dir == SPLIT_HORIZONTAL {
		dir = "H"
	}
	return fmt.Sprintf("split(%s %.2f %s %s)", dir, n.Ratio, treeString(n.First), treeString(n.Second))
}
