package value

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

// KindEnum identifies the structural kind of a Value.
type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindNull
	KindBool
	KindNumber
	KindString
	KindSequence
	KindMapping

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// IsScalar returns true for kinds that carry no nested values.
func (k KindEnum) IsScalar() bool {
	switch k {
	default:
		return false
	case KindNull, KindBool, KindNumber, KindString:
		return true
	}
}

// IsValid returns true for every kind except the zero (invalid) value.
func (k KindEnum) IsValid() bool {
	return k > 0 && int(k) < KindTotal
}
