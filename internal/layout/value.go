package layout

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitAuto     Unit = iota // Size determined by content
	UnitDp                   // Density-independent pixels
	UnitPerMille             // Thousandths of a reference length
)

// PerMilleScale is the divisor of UnitPerMille amounts.
const PerMilleScale = 1000

// Value represents a single widget dimension.
type Value struct {
	Amount float64
	Unit   Unit
}

// Auto returns a Value that should be computed from content.
func Auto() Value {
	return Value{Unit: UnitAuto}
}

// Dp returns a Value of n density-independent pixels.
func Dp(n float64) Value {
	return Value{Amount: n, Unit: UnitDp}
}

// PerMille returns a Value of p thousandths of a reference length. Amounts
// above 1000 are allowed.
func PerMille(p int) Value {
	return Value{Amount: float64(p), Unit: UnitPerMille}
}

// Resolve computes the pixel length. reference is the screen axis a
// per-mille value is measured against, density converts dp to pixels and
// fallback is returned for UnitAuto.
func (v Value) Resolve(reference int, density float64, fallback int) int {
	switch v.Unit {
	case UnitDp:
		return int(v.Amount * density)
	case UnitPerMille:
		return int(float64(reference) * v.Amount / PerMilleScale)
	case UnitAuto:
		return fallback
	default:
		return fallback
	}
}

// IsAuto returns true if this value should be computed from content.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}
