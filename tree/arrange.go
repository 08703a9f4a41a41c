package tree

// ArrangeOutput recomputes the geometry of every workspace on o and the
// containers inside them. Workspaces fill the output; children split their
// parent evenly along its layout axis.
func (t *Tree) ArrangeOutput(o *Output) {
	if o == nil {
		return
	}
	for _, ws := range o.workspaces {
		ws.Rect = o.Rect
		arrangeChildren(ws.Rect, LayoutSplitH, ws.tiling)
	}
}

func arrangeChildren(area Rect, layout Layout, children []*Container) {
	count := len(children)
	if count == 0 {
		return
	}

	for i, child := range children {
		rect := area
		if layout == LayoutSplitV {
			step := area.Height / count
			rect.Y = area.Y + i*step
			rect.Height = step
			if i == count-1 {
				rect.Height = area.Height - i*step
			}
		} else {
			step := area.Width / count
			rect.X = area.X + i*step
			rect.Width = step
			if i == count-1 {
				rect.Width = area.Width - i*step
			}
		}
		child.Rect = rect
		arrangeChildren(rect, child.Layout, child.children)
	}
}
