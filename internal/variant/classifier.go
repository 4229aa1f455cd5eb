package variant

// The four shape predicates are exhaustive and mutually exclusive over
// well-formed variants: every APK in a variant carries the same metadata
// kind, so a variant's shape is the shape of all its APKs. An empty
// variant satisfies none of them.

// IsSplitApkVariant reports whether every APK in v is an installable
// split.
func IsSplitApkVariant(v Variant) bool {
	return allApks(v, func(a ApkDescription) bool { return a.SplitMetadata != nil })
}

// IsInstantApkVariant reports whether every APK in v is an
// instant-experience split.
func IsInstantApkVariant(v Variant) bool {
	return allApks(v, func(a ApkDescription) bool { return a.InstantMetadata != nil })
}

// IsStandaloneApkVariant reports whether every APK in v is a pre-split fat
// APK.
func IsStandaloneApkVariant(v Variant) bool {
	return allApks(v, func(a ApkDescription) bool { return a.StandaloneMetadata != nil })
}

// IsSystemApkVariant reports whether every APK in v belongs to a system
// image.
func IsSystemApkVariant(v Variant) bool {
	return allApks(v, func(a ApkDescription) bool { return a.SystemMetadata != nil })
}

// SplitApkVariants filters the table down to split variants, preserving
// input order.
func SplitApkVariants(table []Variant) []Variant {
	return filterVariants(table, IsSplitApkVariant)
}

func InstantApkVariants(table []Variant) []Variant {
	return filterVariants(table, IsInstantApkVariant)
}

func StandaloneApkVariants(table []Variant) []Variant {
	return filterVariants(table, IsStandaloneApkVariant)
}

func SystemApkVariants(table []Variant) []Variant {
	return filterVariants(table, IsSystemApkVariant)
}

func allApks(v Variant, pred func(ApkDescription) bool) bool {
	any := false
	for _, set := range v.ApkSets {
		for _, apk := range set.Apks {
			if !pred(apk) {
				return false
			}
			any = true
		}
	}
	return any
}

func filterVariants(table []Variant, pred func(Variant) bool) []Variant {
	var out []Variant
	for _, v := range table {
		if pred(v) {
			out = append(out, v)
		}
	}
	return out
}
