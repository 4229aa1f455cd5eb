// Package variant models the generated build-result table: top-level
// variants, the APK sets they carry, and the shape classification used by
// installers and size calculators.
package variant

import "split-targeting-engine/internal/targeting"

// SplitApkMetadata marks an installable split; instant splits reuse the
// same shape.
type SplitApkMetadata struct {
	SplitID       string
	IsMasterSplit bool
}

// StandaloneApkMetadata marks a single pre-split fat APK.
type StandaloneApkMetadata struct {
	FusedModuleNames []string
}

// SystemApkMetadata marks an APK destined for a pre-installed system
// image.
type SystemApkMetadata struct {
	FusedModuleNames []string
}

// ApkDescription is one generated artifact. Exactly one metadata field is
// set on a well-formed description.
type ApkDescription struct {
	Path      string
	Targeting targeting.ApkTargeting

	SplitMetadata      *SplitApkMetadata
	InstantMetadata    *SplitApkMetadata
	StandaloneMetadata *StandaloneApkMetadata
	SystemMetadata     *SystemApkMetadata
}

// ApkSet groups the APKs generated for one module.
type ApkSet struct {
	ModuleName string
	Apks       []ApkDescription
}

// Variant is one generated group of artifacts sharing a variant-level
// targeting. Created once by the generator, immutable thereafter.
type Variant struct {
	VariantNumber int
	Targeting     targeting.VariantTargeting
	ApkSets       []ApkSet
}

// Normalize returns a copy of v with the variant-level targeting and every
// nested APK targeting canonicalized in one pass.
func Normalize(v Variant) Variant {
	v.Targeting = targeting.NormalizeVariantTargeting(v.Targeting)
	sets := make([]ApkSet, len(v.ApkSets))
	for i, set := range v.ApkSets {
		apks := make([]ApkDescription, len(set.Apks))
		for j, apk := range set.Apks {
			apk.Targeting = targeting.NormalizeApkTargeting(apk.Targeting)
			apks[j] = apk
		}
		sets[i] = ApkSet{ModuleName: set.ModuleName, Apks: apks}
	}
	v.ApkSets = sets
	return v
}
