// Package layerkit edits and arranges on-screen control layouts.
//
// A [control.Layout] is wrapped once into an [ObservableLayout], a mutable
// graph of [State] values and copy-on-write [List]s that editors bind to.
// Pack turns the graph back into an immutable document for saving.
//
// An [Engine] measures and places the widgets of an observable layout inside
// a container, and [Pointers] turns touch input into button presses and
// click events.
//
//	doc, err := control.LoadFromFile("layout.json")
//	if err != nil {
//	    return err
//	}
//	l := layerkit.Wrap(doc)
//	e := layerkit.NewEngine(layerkit.Options{Density: 2.75})
//	for _, p := range e.Arrange(l, layerkit.Size{Width: 2400, Height: 1080}) {
//	    draw(p.Widget, p.Rect)
//	}
package layerkit
