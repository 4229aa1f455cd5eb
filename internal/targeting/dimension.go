package targeting

import "fmt"

// Dimension identifies one independent axis of device variation used to
// split artifacts.
type Dimension int

const (
	DimensionAbi Dimension = iota
	DimensionScreenDensity
	DimensionLanguage
	DimensionSdkVersion
	DimensionTextureCompressionFormat
	DimensionDeviceTier
	DimensionCountrySet
	DimensionSdkRuntime
)

var dimensionNames = map[Dimension]string{
	DimensionAbi:                      "ABI",
	DimensionScreenDensity:            "SCREEN_DENSITY",
	DimensionLanguage:                 "LANGUAGE",
	DimensionSdkVersion:               "SDK_VERSION",
	DimensionTextureCompressionFormat: "TEXTURE_COMPRESSION_FORMAT",
	DimensionDeviceTier:               "DEVICE_TIER",
	DimensionCountrySet:               "COUNTRY_SET",
	DimensionSdkRuntime:               "SDK_RUNTIME",
}

func (d Dimension) String() string {
	if name, ok := dimensionNames[d]; ok {
		return name
	}
	return fmt.Sprintf("DIMENSION(%d)", int(d))
}

// Dimensions carried by each aggregate type, in canonical iteration order.
// The normalizer dispatch tables are checked for completeness against these
// lists by the test suite.
var (
	ApkTargetingDimensions = []Dimension{
		DimensionAbi,
		DimensionScreenDensity,
		DimensionLanguage,
		DimensionSdkVersion,
		DimensionTextureCompressionFormat,
		DimensionDeviceTier,
		DimensionCountrySet,
		DimensionSdkRuntime,
	}

	VariantTargetingDimensions = []Dimension{
		DimensionAbi,
		DimensionScreenDensity,
		DimensionSdkVersion,
		DimensionTextureCompressionFormat,
		DimensionSdkRuntime,
	}

	AssetsDirectoryTargetingDimensions = []Dimension{
		DimensionAbi,
		DimensionLanguage,
		DimensionTextureCompressionFormat,
		DimensionDeviceTier,
		DimensionCountrySet,
	}
)
