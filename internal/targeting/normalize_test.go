package targeting

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fullApkTargeting populates every dimension an APK aggregate can carry,
// with deliberately unsorted repeated fields.
func fullApkTargeting() ApkTargeting {
	return ApkTargeting{
		Abi: &AbiTargeting{
			Value:        []Abi{AbiX86, AbiArmeabiV7a},
			Alternatives: []Abi{AbiX8664, AbiArm64V8a},
		},
		ScreenDensity: &ScreenDensityTargeting{
			Value:        []ScreenDensity{DensityOf(DensityHDPI), DpiOf(150), DensityOf(DensityLDPI)},
			Alternatives: []ScreenDensity{DensityOf(DensityNODPI), DpiOf(400), DensityOf(DensityXHDPI)},
		},
		Language: &LanguageTargeting{
			Value:        []string{"fr", "en"},
			Alternatives: []string{"ja", "de"},
		},
		SdkVersion: &SdkVersionTargeting{
			Value:        []SdkVersion{{Min: 29}, {Min: 21}},
			Alternatives: []SdkVersion{{Min: 33}, {Min: 31}},
		},
		TextureCompressionFormat: &TextureCompressionFormatTargeting{
			Value:        []TextureCompressionFormat{TextureS3tc, TextureAstc},
			Alternatives: []TextureCompressionFormat{TexturePvrtc, TextureEtc2},
		},
		DeviceTier: &DeviceTierTargeting{
			Value:        []string{"medium", "low"},
			Alternatives: []string{"high"},
		},
		CountrySet: &CountrySetTargeting{
			Value:        []string{"sea", "latam"},
			Alternatives: []string{"rest"},
		},
		SdkRuntime: &SdkRuntimeTargeting{RequiresSdkRuntime: true},
	}
}

func fullVariantTargeting() VariantTargeting {
	apk := fullApkTargeting()
	return VariantTargeting{
		Abi:                      apk.Abi,
		ScreenDensity:            apk.ScreenDensity,
		SdkVersion:               apk.SdkVersion,
		TextureCompressionFormat: apk.TextureCompressionFormat,
		SdkRuntime:               apk.SdkRuntime,
	}
}

func fullAssetsDirectoryTargeting() AssetsDirectoryTargeting {
	apk := fullApkTargeting()
	return AssetsDirectoryTargeting{
		Abi:                      apk.Abi,
		Language:                 apk.Language,
		TextureCompressionFormat: apk.TextureCompressionFormat,
		DeviceTier:               apk.DeviceTier,
		CountrySet:               apk.CountrySet,
	}
}

func shuffledSlice[T any](rng *rand.Rand, in []T) []T {
	out := slices.Clone(in)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

func shuffleApkTargeting(rng *rand.Rand, t ApkTargeting) ApkTargeting {
	t.Abi = &AbiTargeting{
		Value:        shuffledSlice(rng, t.Abi.Value),
		Alternatives: shuffledSlice(rng, t.Abi.Alternatives),
	}
	t.ScreenDensity = &ScreenDensityTargeting{
		Value:        shuffledSlice(rng, t.ScreenDensity.Value),
		Alternatives: shuffledSlice(rng, t.ScreenDensity.Alternatives),
	}
	t.Language = &LanguageTargeting{
		Value:        shuffledSlice(rng, t.Language.Value),
		Alternatives: shuffledSlice(rng, t.Language.Alternatives),
	}
	t.SdkVersion = &SdkVersionTargeting{
		Value:        shuffledSlice(rng, t.SdkVersion.Value),
		Alternatives: shuffledSlice(rng, t.SdkVersion.Alternatives),
	}
	t.TextureCompressionFormat = &TextureCompressionFormatTargeting{
		Value:        shuffledSlice(rng, t.TextureCompressionFormat.Value),
		Alternatives: shuffledSlice(rng, t.TextureCompressionFormat.Alternatives),
	}
	t.DeviceTier = &DeviceTierTargeting{
		Value:        shuffledSlice(rng, t.DeviceTier.Value),
		Alternatives: shuffledSlice(rng, t.DeviceTier.Alternatives),
	}
	t.CountrySet = &CountrySetTargeting{
		Value:        shuffledSlice(rng, t.CountrySet.Value),
		Alternatives: shuffledSlice(rng, t.CountrySet.Alternatives),
	}
	return t
}

func TestNormalizeApkTargeting_DensityCanonicalOrder(t *testing.T) {
	in := ApkTargeting{
		ScreenDensity: &ScreenDensityTargeting{
			Value: []ScreenDensity{
				DensityOf(DensityLDPI), DensityOf(DensityMDPI), DensityOf(DensityHDPI),
				DpiOf(150), DpiOf(200),
			},
			Alternatives: []ScreenDensity{
				DensityOf(DensityXHDPI), DensityOf(DensityXXXHDPI), DensityOf(DensityNODPI),
				DpiOf(400), DpiOf(800),
			},
		},
	}

	got := NormalizeApkTargeting(in)

	assert.Equal(t, []ScreenDensity{
		DensityOf(DensityLDPI), DpiOf(150), DensityOf(DensityMDPI), DpiOf(200), DensityOf(DensityHDPI),
	}, got.ScreenDensity.Value)
	assert.Equal(t, []ScreenDensity{
		DensityOf(DensityXHDPI), DpiOf(400), DensityOf(DensityXXXHDPI), DpiOf(800), DensityOf(DensityNODPI),
	}, got.ScreenDensity.Alternatives)
}

func TestNormalize_OrderIndependence(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	apk := fullApkTargeting()
	want := NormalizeApkTargeting(apk)

	for i := 0; i < 50; i++ {
		shuffledApk := shuffleApkTargeting(rng, fullApkTargeting())
		assert.Equal(t, want, NormalizeApkTargeting(shuffledApk))
	}

	wantVariant := NormalizeVariantTargeting(fullVariantTargeting())
	wantDir := NormalizeAssetsDirectoryTargeting(fullAssetsDirectoryTargeting())
	for i := 0; i < 50; i++ {
		shuffledApk := shuffleApkTargeting(rng, fullApkTargeting())
		assert.Equal(t, wantVariant, NormalizeVariantTargeting(VariantTargeting{
			Abi:                      shuffledApk.Abi,
			ScreenDensity:            shuffledApk.ScreenDensity,
			SdkVersion:               shuffledApk.SdkVersion,
			TextureCompressionFormat: shuffledApk.TextureCompressionFormat,
			SdkRuntime:               shuffledApk.SdkRuntime,
		}))
		assert.Equal(t, wantDir, NormalizeAssetsDirectoryTargeting(AssetsDirectoryTargeting{
			Abi:                      shuffledApk.Abi,
			Language:                 shuffledApk.Language,
			TextureCompressionFormat: shuffledApk.TextureCompressionFormat,
			DeviceTier:               shuffledApk.DeviceTier,
			CountrySet:               shuffledApk.CountrySet,
		}))
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	once := NormalizeApkTargeting(fullApkTargeting())
	assert.Equal(t, once, NormalizeApkTargeting(once))

	onceVariant := NormalizeVariantTargeting(fullVariantTargeting())
	assert.Equal(t, onceVariant, NormalizeVariantTargeting(onceVariant))

	onceDir := NormalizeAssetsDirectoryTargeting(fullAssetsDirectoryTargeting())
	assert.Equal(t, onceDir, NormalizeAssetsDirectoryTargeting(onceDir))
}

func TestNormalize_PureInput(t *testing.T) {
	in := fullApkTargeting()
	before := fullApkTargeting()
	_ = NormalizeApkTargeting(in)
	assert.Equal(t, before, in, "normalization must not mutate its input")
}

func TestNormalize_AbiDeclaredOrder(t *testing.T) {
	got := NormalizeApkTargeting(ApkTargeting{
		Abi: &AbiTargeting{
			Value: []Abi{AbiX8664, AbiArm64V8a, AbiArmeabi, AbiX86},
		},
	})
	assert.Equal(t, []Abi{AbiArmeabi, AbiArm64V8a, AbiX86, AbiX8664}, got.Abi.Value)
}

func TestNormalize_UnknownValuesSortedAsRaw(t *testing.T) {
	got := NormalizeApkTargeting(ApkTargeting{
		Abi: &AbiTargeting{
			Value: []Abi{"sparc", AbiX86, "loong64"},
		},
		ScreenDensity: &ScreenDensityTargeting{
			Value: []ScreenDensity{DensityOf("FOODPI"), DensityOf(DensityNODPI), DpiOf(160)},
		},
	})

	// Unknown members survive normalization, ordered by literal after the
	// known domain.
	assert.Equal(t, []Abi{AbiX86, "loong64", "sparc"}, got.Abi.Value)
	assert.Equal(t, []ScreenDensity{DpiOf(160), DensityOf(DensityNODPI), DensityOf("FOODPI")},
		got.ScreenDensity.Value)
}

func TestNormalize_Deduplicates(t *testing.T) {
	got := NormalizeApkTargeting(ApkTargeting{
		DeviceTier: &DeviceTierTargeting{
			Value:        []string{"low", "low", "medium"},
			Alternatives: []string{"high", "high"},
		},
	})
	assert.Equal(t, []string{"low", "medium"}, got.DeviceTier.Value)
	assert.Equal(t, []string{"high"}, got.DeviceTier.Alternatives)
}

func TestNormalizeAssetsDirectories_Recurses(t *testing.T) {
	dirs := []AssetsDirectory{
		{
			Path: "assets/textures#tcf_astc",
			Targeting: AssetsDirectoryTargeting{
				TextureCompressionFormat: &TextureCompressionFormatTargeting{
					Value: []TextureCompressionFormat{TextureS3tc, TextureAstc},
				},
			},
		},
		{Path: "assets/common"},
	}

	got := NormalizeAssetsDirectories(dirs)

	require.Len(t, got, 2)
	assert.Equal(t, "assets/textures#tcf_astc", got[0].Path)
	assert.Equal(t, []TextureCompressionFormat{TextureAstc, TextureS3tc},
		got[0].Targeting.TextureCompressionFormat.Value)
	assert.Equal(t, AssetsDirectoryTargeting{}, got[1].Targeting)
}

// Every dimension an aggregate declares must have a canonicalizer; a
// dimension silently skipped would let unsorted duplicates through.
func TestCanonicalizerTables_CoverDeclaredDimensions(t *testing.T) {
	tests := []struct {
		name     string
		declared []Dimension
		table    map[Dimension]bool
	}{
		{"apk", ApkTargetingDimensions, tableKeys(apkCanonicalizers)},
		{"variant", VariantTargetingDimensions, tableKeys(variantCanonicalizers)},
		{"assets directory", AssetsDirectoryTargetingDimensions, tableKeys(assetsDirectoryCanonicalizers)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Len(t, tt.table, len(tt.declared))
			for _, dim := range tt.declared {
				assert.True(t, tt.table[dim], "no canonicalizer for %s", dim)
			}
		})
	}
}

func tableKeys[V any](m map[Dimension]V) map[Dimension]bool {
	out := make(map[Dimension]bool, len(m))
	for k := range m {
		out[k] = true
	}
	return out
}
