// Package layout holds the pixel geometry used to place control widgets.
//
// Widgets are positioned in basis points of the travel left over once the
// widget's own size is subtracted from its container, and sized either in
// dp, in per-mille of a screen axis, or by their content. [Value] resolves a
// single dimension, [Offset] and [Fraction] convert between basis points and
// pixels, and [Rect] is the result handed to hit testing and painters.
package layout
