package styles

import (
	"fmt"
	"math"
	"strings"
)

// Basis referensi konversi: lebar kanvas desain & tinggi viewport tipikal.
// 100% lebar ≙ 1200px, 100% tinggi ≙ 800px.
const (
	WidthBasisPx  = 1200
	HeightBasisPx = 800

	MinConvertedPx = 10
)

type Unit string

const (
	UnitPx      Unit = "px"
	UnitPercent Unit = "%"
	UnitAuto    Unit = "auto"
)

// DimensionKind menentukan basis & default "auto" untuk konversi.
type DimensionKind int

const (
	KindWidth DimensionKind = iota
	KindHeight
)

func (k DimensionKind) Basis() int {
	if k == KindHeight {
		return HeightBasisPx
	}
	return WidthBasisPx
}

// Dimension: representasi ber-tag tunggal — unit tampilan diturunkan dari tag,
// tidak pernah disimpan terpisah dari nilainya.
type Dimension struct {
	Unit  Unit `json:"unit"`
	Value int  `json:"value"` // tidak bermakna saat Unit == auto
}

func (d Dimension) String() string {
	switch d.Unit {
	case UnitAuto:
		return "auto"
	case UnitPercent:
		return fmt.Sprintf("%d%%", d.Value)
	default:
		return fmt.Sprintf("%dpx", d.Value)
	}
}

// ParseDimension membaca "120px" / "50%" / "auto"; input tak dikenal → auto.
func ParseDimension(s string) Dimension {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "" || s == "auto":
		return Dimension{Unit: UnitAuto}
	case strings.HasSuffix(s, "%"):
		return Dimension{Unit: UnitPercent, Value: parseUnitNumber(s)}
	default:
		return Dimension{Unit: UnitPx, Value: parseUnitNumber(s)}
	}
}

// ConvertDimension mengonversi nilai dimensi antar px / % / auto.
// Semua kegagalan parse jatuh ke default aman, tidak pernah error.
func ConvertDimension(current string, target Unit, kind DimensionKind) string {
	basis := kind.Basis()
	cur := ParseDimension(current)

	// target auto selalu "auto", apapun sumbernya
	if target == UnitAuto {
		return "auto"
	}

	if cur.Unit == UnitAuto {
		// auto tidak punya angka; pakai default proporsional
		if target == UnitPercent {
			if kind == KindHeight {
				return "60%"
			}
			return "100%"
		}
		if kind == KindHeight {
			return fmt.Sprintf("%dpx", basis*60/100)
		}
		return fmt.Sprintf("%dpx", basis)
	}

	switch {
	case cur.Unit == UnitPercent && target == UnitPx:
		px := int(math.Round(float64(cur.Value) / 100 * float64(basis)))
		if px < MinConvertedPx {
			px = MinConvertedPx
		}
		return fmt.Sprintf("%dpx", px)

	case cur.Unit == UnitPx && target == UnitPercent:
		pct := int(math.Round(float64(cur.Value) / float64(basis) * 100))
		if pct < 1 {
			pct = 1
		}
		if pct > 100 {
			pct = 100
		}
		return fmt.Sprintf("%d%%", pct)

	default:
		// unit sama: lewatkan apa adanya
		return cur.String()
	}
}
