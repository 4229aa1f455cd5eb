package targeting

import "strconv"

// Per-dimension targeting pairs a value set (configurations this artifact
// itself supports) with an alternative set (configurations covered by
// sibling artifacts at the same split level). The two sets are expected to
// be disjoint; matchers reject overlapping pairs.

type AbiTargeting struct {
	Value        []Abi
	Alternatives []Abi
}

type ScreenDensityTargeting struct {
	Value        []ScreenDensity
	Alternatives []ScreenDensity
}

// LanguageTargeting holds two-letter base language codes ("en", not
// "en-US").
type LanguageTargeting struct {
	Value        []string
	Alternatives []string
}

// SdkVersion is an integer API-level floor.
type SdkVersion struct {
	Min int
}

type SdkVersionTargeting struct {
	Value        []SdkVersion
	Alternatives []SdkVersion
}

type TextureCompressionFormatTargeting struct {
	Value        []TextureCompressionFormat
	Alternatives []TextureCompressionFormat
}

type DeviceTierTargeting struct {
	Value        []string
	Alternatives []string
}

type CountrySetTargeting struct {
	Value        []string
	Alternatives []string
}

// SdkRuntimeTargeting is a single flag, not a value/alternative pair: a
// split either requires the SDK runtime or it does not.
type SdkRuntimeTargeting struct {
	RequiresSdkRuntime bool
}

// ApkTargeting is the aggregate targeting of one leaf artifact. A nil
// dimension means the artifact does not discriminate on it.
type ApkTargeting struct {
	Abi                      *AbiTargeting
	ScreenDensity            *ScreenDensityTargeting
	Language                 *LanguageTargeting
	SdkVersion               *SdkVersionTargeting
	TextureCompressionFormat *TextureCompressionFormatTargeting
	DeviceTier               *DeviceTierTargeting
	CountrySet               *CountrySetTargeting
	SdkRuntime               *SdkRuntimeTargeting
}

// VariantTargeting is the aggregate targeting of one top-level variant.
type VariantTargeting struct {
	Abi                      *AbiTargeting
	ScreenDensity            *ScreenDensityTargeting
	SdkVersion               *SdkVersionTargeting
	TextureCompressionFormat *TextureCompressionFormatTargeting
	SdkRuntime               *SdkRuntimeTargeting
}

// AssetsDirectoryTargeting annotates an assets or native-library sub-path
// before it becomes an artifact.
type AssetsDirectoryTargeting struct {
	Abi                      *AbiTargeting
	Language                 *LanguageTargeting
	TextureCompressionFormat *TextureCompressionFormatTargeting
	DeviceTier               *DeviceTierTargeting
	CountrySet               *CountrySetTargeting
}

// AssetsDirectory is one targeted sub-path of an asset or library module.
type AssetsDirectory struct {
	Path      string
	Targeting AssetsDirectoryTargeting
}

func keysOf[T any](vs []T, key func(T) string) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = key(v)
	}
	return out
}

// ValueKeys / AlternativeKeys render each set as canonical strings for
// overlap detection and error messages.

func (t AbiTargeting) ValueKeys() []string {
	return keysOf(t.Value, func(a Abi) string { return string(a) })
}

func (t AbiTargeting) AlternativeKeys() []string {
	return keysOf(t.Alternatives, func(a Abi) string { return string(a) })
}

func (t ScreenDensityTargeting) ValueKeys() []string {
	return keysOf(t.Value, ScreenDensity.String)
}

func (t ScreenDensityTargeting) AlternativeKeys() []string {
	return keysOf(t.Alternatives, ScreenDensity.String)
}

func (t LanguageTargeting) ValueKeys() []string        { return keysOf(t.Value, ident) }
func (t LanguageTargeting) AlternativeKeys() []string  { return keysOf(t.Alternatives, ident) }
func (t DeviceTierTargeting) ValueKeys() []string      { return keysOf(t.Value, ident) }
func (t DeviceTierTargeting) AlternativeKeys() []string { return keysOf(t.Alternatives, ident) }
func (t CountrySetTargeting) ValueKeys() []string      { return keysOf(t.Value, ident) }
func (t CountrySetTargeting) AlternativeKeys() []string { return keysOf(t.Alternatives, ident) }

func (t SdkVersionTargeting) ValueKeys() []string {
	return keysOf(t.Value, func(v SdkVersion) string { return strconv.Itoa(v.Min) })
}

func (t SdkVersionTargeting) AlternativeKeys() []string {
	return keysOf(t.Alternatives, func(v SdkVersion) string { return strconv.Itoa(v.Min) })
}

func (t TextureCompressionFormatTargeting) ValueKeys() []string {
	return keysOf(t.Value, func(f TextureCompressionFormat) string { return string(f) })
}

func (t TextureCompressionFormatTargeting) AlternativeKeys() []string {
	return keysOf(t.Alternatives, func(f TextureCompressionFormat) string { return string(f) })
}

func ident(s string) string { return s }
