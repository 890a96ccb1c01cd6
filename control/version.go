package control

// EditorVersion is the newest document format this package reads and the
// one it writes.
const EditorVersion = 4

// Migration rewrites a document to a newer format.
type Migration func(Layout) Layout

// Upgrade migrates l one version at a time until it reaches EditorVersion.
// Documents at an unknown version are returned unchanged.
func Upgrade(l Layout) Layout {
	for {
		step, ok := upgrades[l.EditorVersion]
		if !ok {
			return l
		}
		l = step(l)
	}
}

var upgrades = map[int]Migration{
	1: upgrade1To2,
	2: upgrade2To3,
	3: upgrade3To4,
}

// 1 -> 2: position and size percentages gained one more decimal digit.
func upgrade1To2(l Layout) Layout {
	scale := func(d *TextData) {
		d.Position.X *= 10
		d.Position.Y *= 10
		d.ButtonSize.WidthPercentage *= 10
		d.ButtonSize.HeightPercentage *= 10
	}
	l = mapWidgets(l, scale)
	l.EditorVersion = 2
	return l
}

// 2 -> 3: layers can hide while a mouse or gamepad is in use.
func upgrade2To3(l Layout) Layout {
	layers := make([]Layer, len(l.Layers))
	for i, layer := range l.Layers {
		layer.HideWhenMouse = true
		layer.HideWhenGamepad = true
		layers[i] = layer
	}
	l.Layers = layers
	l.EditorVersion = 3
	return l
}

// 3 -> 4: text alignment and font styling.
func upgrade3To4(l Layout) Layout {
	l = mapWidgets(l, func(d *TextData) {
		d.TextAlignment = AlignLeft
		d.TextBold = false
		d.TextItalic = false
		d.TextUnderline = false
	})
	l.EditorVersion = 4
	return l
}

// mapWidgets applies fn to a copy of every widget's common fields.
func mapWidgets(l Layout, fn func(*TextData)) Layout {
	layers := make([]Layer, len(l.Layers))
	for i, layer := range l.Layers {
		buttons := make([]NormalData, len(layer.NormalButtons))
		for j, d := range layer.NormalButtons {
			fn(&d.TextData)
			buttons[j] = d
		}
		texts := make([]TextData, len(layer.TextBoxes))
		for j, d := range layer.TextBoxes {
			fn(&d)
			texts[j] = d
		}
		layer.NormalButtons = buttons
		layer.TextBoxes = texts
		layers[i] = layer
	}
	l.Layers = layers
	return l
}
