package control

import "fmt"

// SizePercentageScale is the divisor applied to ButtonSize percentages.
// It differs from PositionScale; saved layouts depend on it.
const SizePercentageScale = 1000

// SizeType selects how a ButtonSize is resolved.
type SizeType uint8

const (
	SizeDp          SizeType = iota // Absolute width/height in dp
	SizePercentage                  // Percentage of a screen reference axis
	SizeWrapContent                 // Natural size of the content
)

var sizeTypeNames = [...]string{"dp", "percentage", "wrap_content"}

func (t SizeType) String() string {
	if int(t) < len(sizeTypeNames) {
		return sizeTypeNames[t]
	}
	return fmt.Sprintf("SizeType(%d)", t)
}

func (t SizeType) MarshalText() ([]byte, error) {
	if int(t) >= len(sizeTypeNames) {
		return nil, fmt.Errorf("control: invalid size type %d", t)
	}
	return []byte(sizeTypeNames[t]), nil
}

func (t *SizeType) UnmarshalText(b []byte) error {
	return unmarshalEnum(b, sizeTypeNames[:], (*uint8)(t), "size type")
}

// Reference is the screen axis a percentage dimension is measured against.
type Reference uint8

const (
	ReferenceScreenWidth Reference = iota
	ReferenceScreenHeight
)

var referenceNames = [...]string{"screen_width", "screen_height"}

func (r Reference) String() string {
	if int(r) < len(referenceNames) {
		return referenceNames[r]
	}
	return fmt.Sprintf("Reference(%d)", r)
}

func (r Reference) MarshalText() ([]byte, error) {
	if int(r) >= len(referenceNames) {
		return nil, fmt.Errorf("control: invalid reference %d", r)
	}
	return []byte(referenceNames[r]), nil
}

func (r *Reference) UnmarshalText(b []byte) error {
	return unmarshalEnum(b, referenceNames[:], (*uint8)(r), "reference")
}

// ButtonSize describes how large a widget is. Which fields apply depends on
// Type: WidthDp/HeightDp for SizeDp, the percentage and reference fields for
// SizePercentage, nothing for SizeWrapContent.
type ButtonSize struct {
	Type             SizeType  `json:"type"`
	WidthDp          float64   `json:"widthDp"`
	HeightDp         float64   `json:"heightDp"`
	WidthPercentage  int       `json:"widthPercentage"`
	HeightPercentage int       `json:"heightPercentage"`
	WidthReference   Reference `json:"widthReference"`
	HeightReference  Reference `json:"heightReference"`
}

// DefaultButtonSize is the size given to newly created widgets.
var DefaultButtonSize = ButtonSize{
	Type:             SizePercentage,
	WidthDp:          50,
	HeightDp:         50,
	WidthPercentage:  140,
	HeightPercentage: 140,
	WidthReference:   ReferenceScreenHeight,
	HeightReference:  ReferenceScreenHeight,
}

// AdaptiveButtonSize returns a square size whose percentage values make the
// widget targetDp wide on a reference axis of referenceLength pixels.
func AdaptiveButtonSize(referenceLength int, typ SizeType, ref Reference, density, targetDp float64) ButtonSize {
	percentage := 0
	if referenceLength > 0 {
		percentage = int(targetDp * density / float64(referenceLength) * SizePercentageScale)
	}
	return ButtonSize{
		Type:             typ,
		WidthDp:          targetDp,
		HeightDp:         targetDp,
		WidthPercentage:  percentage,
		HeightPercentage: percentage,
		WidthReference:   ref,
		HeightReference:  ref,
	}
}
