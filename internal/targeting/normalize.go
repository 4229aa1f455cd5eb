package targeting

import "slices"

// Canonicalization is driven by one dispatch table per aggregate type,
// keyed by dimension. The test suite asserts each table covers every
// dimension its aggregate declares, so a newly added dimension that is not
// wired into a table fails tests instead of silently surviving
// normalization unsorted.

var apkCanonicalizers = map[Dimension]func(*ApkTargeting){
	DimensionAbi: func(t *ApkTargeting) { t.Abi = canonicalAbiTargeting(t.Abi) },
	DimensionScreenDensity: func(t *ApkTargeting) {
		t.ScreenDensity = canonicalDensityTargeting(t.ScreenDensity)
	},
	DimensionLanguage: func(t *ApkTargeting) { t.Language = canonicalLanguageTargeting(t.Language) },
	DimensionSdkVersion: func(t *ApkTargeting) { t.SdkVersion = canonicalSdkTargeting(t.SdkVersion) },
	DimensionTextureCompressionFormat: func(t *ApkTargeting) {
		t.TextureCompressionFormat = canonicalTextureTargeting(t.TextureCompressionFormat)
	},
	DimensionDeviceTier: func(t *ApkTargeting) { t.DeviceTier = canonicalTierTargeting(t.DeviceTier) },
	DimensionCountrySet: func(t *ApkTargeting) { t.CountrySet = canonicalCountryTargeting(t.CountrySet) },
	DimensionSdkRuntime: func(t *ApkTargeting) { t.SdkRuntime = canonicalSdkRuntimeTargeting(t.SdkRuntime) },
}

var variantCanonicalizers = map[Dimension]func(*VariantTargeting){
	DimensionAbi: func(t *VariantTargeting) { t.Abi = canonicalAbiTargeting(t.Abi) },
	DimensionScreenDensity: func(t *VariantTargeting) {
		t.ScreenDensity = canonicalDensityTargeting(t.ScreenDensity)
	},
	DimensionSdkVersion: func(t *VariantTargeting) { t.SdkVersion = canonicalSdkTargeting(t.SdkVersion) },
	DimensionTextureCompressionFormat: func(t *VariantTargeting) {
		t.TextureCompressionFormat = canonicalTextureTargeting(t.TextureCompressionFormat)
	},
	DimensionSdkRuntime: func(t *VariantTargeting) { t.SdkRuntime = canonicalSdkRuntimeTargeting(t.SdkRuntime) },
}

var assetsDirectoryCanonicalizers = map[Dimension]func(*AssetsDirectoryTargeting){
	DimensionAbi: func(t *AssetsDirectoryTargeting) { t.Abi = canonicalAbiTargeting(t.Abi) },
	DimensionLanguage: func(t *AssetsDirectoryTargeting) {
		t.Language = canonicalLanguageTargeting(t.Language)
	},
	DimensionTextureCompressionFormat: func(t *AssetsDirectoryTargeting) {
		t.TextureCompressionFormat = canonicalTextureTargeting(t.TextureCompressionFormat)
	},
	DimensionDeviceTier: func(t *AssetsDirectoryTargeting) {
		t.DeviceTier = canonicalTierTargeting(t.DeviceTier)
	},
	DimensionCountrySet: func(t *AssetsDirectoryTargeting) {
		t.CountrySet = canonicalCountryTargeting(t.CountrySet)
	},
}

// NormalizeApkTargeting returns a canonical copy of t: within every
// dimension, values and alternatives are independently sorted by that
// dimension's total order and deduplicated. Two aggregates equal under
// reordering of repeated fields normalize to identical output.
func NormalizeApkTargeting(t ApkTargeting) ApkTargeting {
	for _, dim := range ApkTargetingDimensions {
		apkCanonicalizers[dim](&t)
	}
	return t
}

// NormalizeVariantTargeting is NormalizeApkTargeting for the variant-level
// aggregate.
func NormalizeVariantTargeting(t VariantTargeting) VariantTargeting {
	for _, dim := range VariantTargetingDimensions {
		variantCanonicalizers[dim](&t)
	}
	return t
}

// NormalizeAssetsDirectoryTargeting is NormalizeApkTargeting for directory
// targeting attached to asset and native-library sub-paths.
func NormalizeAssetsDirectoryTargeting(t AssetsDirectoryTargeting) AssetsDirectoryTargeting {
	for _, dim := range AssetsDirectoryTargetingDimensions {
		assetsDirectoryCanonicalizers[dim](&t)
	}
	return t
}

// NormalizeAssetsDirectories normalizes the targeting nested under each
// sub-path, preserving directory order.
func NormalizeAssetsDirectories(dirs []AssetsDirectory) []AssetsDirectory {
	out := make([]AssetsDirectory, len(dirs))
	for i, d := range dirs {
		out[i] = AssetsDirectory{Path: d.Path, Targeting: NormalizeAssetsDirectoryTargeting(d.Targeting)}
	}
	return out
}

func canonicalAbiTargeting(t *AbiTargeting) *AbiTargeting {
	if t == nil {
		return nil
	}
	return &AbiTargeting{
		Value:        canonicalSlice(t.Value, compareAbis),
		Alternatives: canonicalSlice(t.Alternatives, compareAbis),
	}
}

func canonicalDensityTargeting(t *ScreenDensityTargeting) *ScreenDensityTargeting {
	if t == nil {
		return nil
	}
	return &ScreenDensityTargeting{
		Value:        canonicalSlice(t.Value, compareDensities),
		Alternatives: canonicalSlice(t.Alternatives, compareDensities),
	}
}

func canonicalLanguageTargeting(t *LanguageTargeting) *LanguageTargeting {
	if t == nil {
		return nil
	}
	return &LanguageTargeting{
		Value:        canonicalStrings(t.Value),
		Alternatives: canonicalStrings(t.Alternatives),
	}
}

func canonicalSdkTargeting(t *SdkVersionTargeting) *SdkVersionTargeting {
	if t == nil {
		return nil
	}
	cmp := func(a, b SdkVersion) int { return a.Min - b.Min }
	return &SdkVersionTargeting{
		Value:        canonicalSlice(t.Value, cmp),
		Alternatives: canonicalSlice(t.Alternatives, cmp),
	}
}

func canonicalTextureTargeting(t *TextureCompressionFormatTargeting) *TextureCompressionFormatTargeting {
	if t == nil {
		return nil
	}
	cmp := func(a, b TextureCompressionFormat) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	}
	return &TextureCompressionFormatTargeting{
		Value:        canonicalSlice(t.Value, cmp),
		Alternatives: canonicalSlice(t.Alternatives, cmp),
	}
}

func canonicalTierTargeting(t *DeviceTierTargeting) *DeviceTierTargeting {
	if t == nil {
		return nil
	}
	return &DeviceTierTargeting{
		Value:        canonicalStrings(t.Value),
		Alternatives: canonicalStrings(t.Alternatives),
	}
}

func canonicalCountryTargeting(t *CountrySetTargeting) *CountrySetTargeting {
	if t == nil {
		return nil
	}
	return &CountrySetTargeting{
		Value:        canonicalStrings(t.Value),
		Alternatives: canonicalStrings(t.Alternatives),
	}
}

// canonicalSdkRuntimeTargeting copies the flag; a bool has no repeated
// fields to order.
func canonicalSdkRuntimeTargeting(t *SdkRuntimeTargeting) *SdkRuntimeTargeting {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

// canonicalSlice sorts a fresh copy by cmp and drops adjacent duplicates.
func canonicalSlice[T comparable](in []T, cmp func(a, b T) int) []T {
	if in == nil {
		return nil
	}
	out := slices.Clone(in)
	slices.SortStableFunc(out, cmp)
	return slices.Compact(out)
}

func canonicalStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := slices.Clone(in)
	slices.Sort(out)
	return slices.Compact(out)
}
