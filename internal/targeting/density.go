package targeting

import (
	"strconv"
	"strings"
)

// DensityAlias is a named screen-density bucket.
type DensityAlias string

const (
	DensityLDPI    DensityAlias = "LDPI"
	DensityMDPI    DensityAlias = "MDPI"
	DensityTVDPI   DensityAlias = "TVDPI"
	DensityHDPI    DensityAlias = "HDPI"
	DensityXHDPI   DensityAlias = "XHDPI"
	DensityXXHDPI  DensityAlias = "XXHDPI"
	DensityXXXHDPI DensityAlias = "XXXHDPI"
	DensityNODPI   DensityAlias = "NODPI"
)

// DensityNoneDpi is the platform DENSITY_NONE sentinel. NODPI resolves to
// it so that it sorts after every positive density.
const DensityNoneDpi = 0xFFFF

// aliasToDpi holds the platform's public density qualifier values.
// Written once here, read-only afterwards.
var aliasToDpi = map[DensityAlias]int{
	DensityLDPI:    120,
	DensityMDPI:    160,
	DensityTVDPI:   213,
	DensityHDPI:    240,
	DensityXHDPI:   320,
	DensityXXHDPI:  480,
	DensityXXXHDPI: 640,
	DensityNODPI:   DensityNoneDpi,
}

// AliasDpi returns the numeric DPI backing a named alias.
func AliasDpi(a DensityAlias) (int, bool) {
	dpi, ok := aliasToDpi[a]
	return dpi, ok
}

// ScreenDensity is either a named alias or a raw integer DPI. Both forms
// survive normalization unchanged; the alias's numeric value is used for
// ordering only.
type ScreenDensity struct {
	Alias DensityAlias // empty when the density is a raw DPI
	Dpi   int
}

// DensityOf builds an alias-form density.
func DensityOf(a DensityAlias) ScreenDensity { return ScreenDensity{Alias: a} }

// DpiOf builds a raw-DPI density.
func DpiOf(dpi int) ScreenDensity { return ScreenDensity{Dpi: dpi} }

// DpiValue resolves the density to its numeric ordering key. Unknown
// aliases have no key and report false.
func (d ScreenDensity) DpiValue() (int, bool) {
	if d.Alias == "" {
		return d.Dpi, true
	}
	dpi, ok := aliasToDpi[d.Alias]
	return dpi, ok
}

func (d ScreenDensity) String() string {
	if d.Alias != "" {
		return string(d.Alias)
	}
	return strconv.Itoa(d.Dpi)
}

// compareDensities interleaves aliases and raw values by numeric DPI,
// ascending. Unknown aliases sort after every resolvable density, by their
// literal name. Ties at the same DPI put the alias form first.
func compareDensities(a, b ScreenDensity) int {
	ka, oka := a.DpiValue()
	kb, okb := b.DpiValue()
	switch {
	case oka && okb:
		if ka != kb {
			return ka - kb
		}
		if (a.Alias != "") != (b.Alias != "") {
			if a.Alias != "" {
				return -1
			}
			return 1
		}
		return strings.Compare(string(a.Alias), string(b.Alias))
	case oka:
		return -1
	case okb:
		return 1
	default:
		return strings.Compare(string(a.Alias), string(b.Alias))
	}
}
