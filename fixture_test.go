package layerkit

import "github.com/grindlemire/layerkit/control"

func percentButton(id string, pos control.Position, pct int) control.NormalData {
	d := control.NewNormalData(control.NewTranslatable(id))
	d.UUID = id
	d.Position = pos
	d.ButtonSize = control.ButtonSize{
		Type:             control.SizePercentage,
		WidthPercentage:  pct,
		HeightPercentage: pct,
		WidthReference:   control.ReferenceScreenHeight,
		HeightReference:  control.ReferenceScreenHeight,
	}
	return d
}

func dpText(id string, pos control.Position, w, h float64) control.TextData {
	d := control.NewTextData(control.NewTranslatable(id))
	d.UUID = id
	d.Position = pos
	d.ButtonSize = control.ButtonSize{Type: control.SizeDp, WidthDp: w, HeightDp: h}
	return d
}

// sampleLayout has two layers: "top" with buttons b1, b2 and label t1, and
// "bottom" with button b3. Button b1 uses style s1.
func sampleLayout() control.Layout {
	l := control.EmptyLayout()
	l.Info.Name = control.NewTranslatable("Sample", control.LocalizedString{LanguageTag: "zh-CN", Value: "示例"})
	l.Info.VersionCode = 3
	l.Info.VersionName = "1.2"

	style := control.NewButtonStyle("accent")
	style.UUID = "s1"
	style.DarkStyle.BackgroundColor = 0xFF112233
	l.Styles = []control.ButtonStyle{style}

	top := control.NewLayer("top")
	top.UUID = "top"
	b1 := percentButton("b1", control.Position{X: 0, Y: 0}, 100)
	b1.ButtonStyle = "s1"
	b1.ClickEvents = []control.ClickEvent{{Type: control.EventKey, Key: "GLFW_KEY_W"}}
	b2 := percentButton("b2", control.Position{X: 10000, Y: 10000}, 100)
	top.NormalButtons = []control.NormalData{b1, b2}
	top.TextBoxes = []control.TextData{dpText("t1", control.CenterPosition, 40, 20)}

	bottom := control.NewLayer("bottom")
	bottom.UUID = "bottom"
	bottom.VisibilityType = control.VisibilityInGame
	bottom.NormalButtons = []control.NormalData{percentButton("b3", control.CenterPosition, 500)}

	l.Layers = []control.Layer{top, bottom}
	return l
}
