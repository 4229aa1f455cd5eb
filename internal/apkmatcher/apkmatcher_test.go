package apkmatcher

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"split-targeting-engine/internal/devicespec"
	"split-targeting-engine/internal/observability"
	"split-targeting-engine/internal/targeting"
	"split-targeting-engine/internal/variant"
)

func TestMain(m *testing.M) {
	observability.SetupLogging("error")
	os.Exit(m.Run())
}

func arm64Device() devicespec.Spec {
	return devicespec.Spec{
		SdkVersion:       27,
		SupportedAbis:    []string{"arm64-v8a"},
		SupportedLocales: []string{"en-US"},
		ScreenDensity:    240,
	}
}

// testTable mimics a generated build result: a pre-L standalone variant
// and a split variant with ABI, density and tier config splits.
func testTable() []variant.Variant {
	allAlternatives := func(own targeting.DensityAlias) *targeting.ScreenDensityTargeting {
		var alts []targeting.ScreenDensity
		for _, a := range []targeting.DensityAlias{
			targeting.DensityLDPI, targeting.DensityMDPI, targeting.DensityTVDPI,
			targeting.DensityHDPI, targeting.DensityXHDPI, targeting.DensityXXHDPI,
			targeting.DensityXXXHDPI,
		} {
			if a != own {
				alts = append(alts, targeting.DensityOf(a))
			}
		}
		return &targeting.ScreenDensityTargeting{
			Value:        []targeting.ScreenDensity{targeting.DensityOf(own)},
			Alternatives: alts,
		}
	}

	standalone := variant.Variant{
		VariantNumber: 0,
		Targeting: targeting.VariantTargeting{
			SdkVersion: &targeting.SdkVersionTargeting{
				Value:        []targeting.SdkVersion{{Min: 1}},
				Alternatives: []targeting.SdkVersion{{Min: 21}},
			},
		},
		ApkSets: []variant.ApkSet{{
			ModuleName: "base",
			Apks: []variant.ApkDescription{{
				Path:               "standalones/standalone-arm64_v8a_hdpi.apk",
				StandaloneMetadata: &variant.StandaloneApkMetadata{FusedModuleNames: []string{"base"}},
			}},
		}},
	}

	split := variant.Variant{
		VariantNumber: 1,
		Targeting: targeting.VariantTargeting{
			SdkVersion: &targeting.SdkVersionTargeting{
				Value:        []targeting.SdkVersion{{Min: 21}},
				Alternatives: []targeting.SdkVersion{{Min: 1}},
			},
		},
		ApkSets: []variant.ApkSet{{
			ModuleName: "base",
			Apks: []variant.ApkDescription{
				{
					Path:          "splits/base-master.apk",
					SplitMetadata: &variant.SplitApkMetadata{IsMasterSplit: true},
				},
				{
					Path:          "splits/base-arm64_v8a.apk",
					SplitMetadata: &variant.SplitApkMetadata{SplitID: "config.arm64_v8a"},
					Targeting: targeting.ApkTargeting{
						Abi: &targeting.AbiTargeting{
							Value:        []targeting.Abi{targeting.AbiArm64V8a},
							Alternatives: []targeting.Abi{targeting.AbiArmeabiV7a, targeting.AbiX86},
						},
					},
				},
				{
					Path:          "splits/base-x86.apk",
					SplitMetadata: &variant.SplitApkMetadata{SplitID: "config.x86"},
					Targeting: targeting.ApkTargeting{
						Abi: &targeting.AbiTargeting{
							Value:        []targeting.Abi{targeting.AbiX86},
							Alternatives: []targeting.Abi{targeting.AbiArm64V8a, targeting.AbiArmeabiV7a},
						},
					},
				},
				{
					Path:          "splits/base-hdpi.apk",
					SplitMetadata: &variant.SplitApkMetadata{SplitID: "config.hdpi"},
					Targeting: targeting.ApkTargeting{
						ScreenDensity: allAlternatives(targeting.DensityHDPI),
					},
				},
				{
					Path:          "splits/base-xhdpi.apk",
					SplitMetadata: &variant.SplitApkMetadata{SplitID: "config.xhdpi"},
					Targeting: targeting.ApkTargeting{
						ScreenDensity: allAlternatives(targeting.DensityXHDPI),
					},
				},
				{
					Path:          "splits/base-tier_low.apk",
					SplitMetadata: &variant.SplitApkMetadata{SplitID: "config.tier_low"},
					Targeting: targeting.ApkTargeting{
						DeviceTier: &targeting.DeviceTierTargeting{
							Value:        []string{"low"},
							Alternatives: []string{"medium", "high"},
						},
					},
				},
			},
		}},
	}

	return []variant.Variant{standalone, split}
}

func TestMatchingApks(t *testing.T) {
	tests := []struct {
		name      string
		device    devicespec.Spec
		wantPaths []string
	}{
		{
			name:   "modern arm64 device gets split apks",
			device: arm64Device(),
			wantPaths: []string{
				"splits/base-master.apk",
				"splits/base-arm64_v8a.apk",
				"splits/base-hdpi.apk",
			},
		},
		{
			name: "tiered device also gets the tier split",
			device: func() devicespec.Spec {
				d := arm64Device()
				d.DeviceTier = "low"
				return d
			}(),
			wantPaths: []string{
				"splits/base-master.apk",
				"splits/base-arm64_v8a.apk",
				"splits/base-hdpi.apk",
				"splits/base-tier_low.apk",
			},
		},
		{
			name: "pre-L device falls back to the standalone variant",
			device: devicespec.Spec{
				SdkVersion:       19,
				SupportedAbis:    []string{"armeabi-v7a"},
				SupportedLocales: []string{"en-US"},
				ScreenDensity:    240,
			},
			wantPaths: []string{"standalones/standalone-arm64_v8a_hdpi.apk"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(tt.device).MatchingApks(testTable())
			require.NoError(t, err)
			assert.Equal(t, tt.wantPaths, got)
		})
	}
}

func TestMatchingApks_NoMatchingVariant(t *testing.T) {
	m := New(arm64Device())

	_, err := m.MatchingApks(nil)
	assert.Error(t, err)

	tooNew := []variant.Variant{{
		Targeting: targeting.VariantTargeting{
			SdkVersion: &targeting.SdkVersionTargeting{
				Value:        []targeting.SdkVersion{{Min: 33}},
				Alternatives: []targeting.SdkVersion{{Min: 34}},
			},
		},
	}}
	_, err = m.MatchingApks(tooNew)
	assert.Error(t, err)
}

func TestMatchingApks_PropagatesOverlap(t *testing.T) {
	table := testTable()
	bad := &table[1].ApkSets[0].Apks[1]
	bad.Targeting.Abi.Alternatives = append(bad.Targeting.Abi.Alternatives, targeting.AbiArm64V8a)

	_, err := New(arm64Device()).MatchingApks(table)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "overlap")
}

func tierSiblings() []targeting.ApkTargeting {
	return []targeting.ApkTargeting{
		{DeviceTier: &targeting.DeviceTierTargeting{
			Value:        []string{"low"},
			Alternatives: []string{"medium", "high"},
		}},
		{DeviceTier: &targeting.DeviceTierTargeting{
			Value:        []string{"medium"},
			Alternatives: []string{"low", "high"},
		}},
		{DeviceTier: &targeting.DeviceTierTargeting{
			Value:        []string{"high"},
			Alternatives: []string{"low", "medium"},
		}},
	}
}

func TestCheckSiblingConsistency(t *testing.T) {
	assert.NoError(t, CheckSiblingConsistency(tierSiblings()))

	dup := tierSiblings()
	dup[1].DeviceTier.Value = []string{"low"}
	dup[1].DeviceTier.Alternatives = []string{"medium", "high"}
	err := CheckSiblingConsistency(dup)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "both claim")

	stale := tierSiblings()
	stale[0].DeviceTier.Alternatives = []string{"medium"} // forgot "high"
	err = CheckSiblingConsistency(stale)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not acknowledge")
}

func TestCheckCompatibleWithSiblings(t *testing.T) {
	device := arm64Device()
	device.DeviceTier = "low"
	m := New(device)

	assert.NoError(t, m.CheckCompatibleWithSiblings(tierSiblings()))

	stale := []targeting.ApkTargeting{
		{DeviceTier: &targeting.DeviceTierTargeting{
			Value:        []string{"medium"},
			Alternatives: []string{"high"},
		}},
	}
	err := m.CheckCompatibleWithSiblings(stale)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DEVICE_TIER")
}

// Dimensions the device does not resolve are skipped by the audit.
func TestCheckCompatibleWithSiblings_SkipsAbsentDeviceDimensions(t *testing.T) {
	m := New(arm64Device()) // no tier

	stale := []targeting.ApkTargeting{
		{DeviceTier: &targeting.DeviceTierTargeting{
			Value:        []string{"medium"},
			Alternatives: []string{"high"},
		}},
	}
	assert.NoError(t, m.CheckCompatibleWithSiblings(stale))
}

func BenchmarkMatchingApks(b *testing.B) {
	m := New(arm64Device())
	table := testTable()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.MatchingApks(table)
	}
}
