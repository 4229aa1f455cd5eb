package targeting

// TextureCompressionFormat is a named GPU texture format an asset pack can
// be encoded in.
type TextureCompressionFormat string

const (
	TextureEtc1Rgb8 TextureCompressionFormat = "ETC1_RGB8"
	TexturePaletted TextureCompressionFormat = "PALETTED"
	TextureThreeDc  TextureCompressionFormat = "THREE_DC"
	TextureAtc      TextureCompressionFormat = "ATC"
	TextureLatc     TextureCompressionFormat = "LATC"
	TextureDxt1     TextureCompressionFormat = "DXT1"
	TextureS3tc     TextureCompressionFormat = "S3TC"
	TexturePvrtc    TextureCompressionFormat = "PVRTC"
	TextureAstc     TextureCompressionFormat = "ASTC"
	TextureEtc2     TextureCompressionFormat = "ETC2"
)

// GlEs30 is the OpenGL ES version that implies ETC2 support; ETC2 has no
// extension string of its own.
const GlEs30 = 0x30000

var glExtensionToFormat = map[string]TextureCompressionFormat{
	"GL_OES_compressed_ETC1_RGB8_texture": TextureEtc1Rgb8,
	"GL_OES_compressed_paletted_texture":  TexturePaletted,
	"GL_AMD_compressed_3DC_texture":       TextureThreeDc,
	"GL_AMD_compressed_ATC_texture":       TextureAtc,
	"GL_EXT_texture_compression_latc":     TextureLatc,
	"GL_EXT_texture_compression_dxt1":     TextureDxt1,
	"GL_EXT_texture_compression_s3tc":     TextureS3tc,
	"GL_IMG_texture_compression_pvrtc":    TexturePvrtc,
	"GL_KHR_texture_compression_astc_ldr": TextureAstc,
}

// TextureFormatForGlExtension maps a GL extension string to the texture
// format it advertises.
func TextureFormatForGlExtension(ext string) (TextureCompressionFormat, bool) {
	f, ok := glExtensionToFormat[ext]
	return f, ok
}
