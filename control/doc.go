// Package control holds the immutable control layout document: geometry,
// styles, widgets, layers, and the layout itself, together with the JSON
// codec, version migration, and the checked/unchecked loaders.
//
// Values in this package are plain data. Editing happens on the observable
// mirror in the root layerkit package, which packs back into these types.
package control
