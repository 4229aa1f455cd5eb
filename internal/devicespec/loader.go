package devicespec

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"split-targeting-engine/internal/targeting"
)

// specSchema rejects malformed device-properties files before decoding.
const specSchema = `{
  "type": "object",
  "required": ["sdkVersion", "supportedAbis", "supportedLocales", "screenDensity"],
  "properties": {
    "sdkVersion": {"type": "integer", "minimum": 1},
    "codename": {"type": "string"},
    "supportedAbis": {"type": "array", "items": {"type": "string"}, "minItems": 1},
    "supportedLocales": {"type": "array", "items": {"type": "string"}, "minItems": 1},
    "screenDensity": {"type": "integer", "minimum": 1},
    "deviceFeatures": {"type": "array", "items": {"type": "string"}},
    "glExtensions": {"type": "array", "items": {"type": "string"}},
    "deviceTier": {"type": "string"},
    "countrySet": {"type": "string"},
    "sdkRuntime": {
      "type": "object",
      "properties": {"supported": {"type": "boolean"}}
    }
  },
  "additionalProperties": false
}`

// Load reads a device-properties file, JSON or YAML by extension,
// validates it against the device-spec schema and decodes it.
func Load(path string) (Spec, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Spec{}, fmt.Errorf("read device spec %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".yaml" || ext == ".yml" {
		raw, err = yamlToJSON(raw)
		if err != nil {
			return Spec{}, fmt.Errorf("decode device spec %s: %w", path, err)
		}
	}

	return Parse(raw)
}

// Parse validates and decodes a JSON device-properties document.
func Parse(raw []byte) (Spec, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(specSchema),
		gojsonschema.NewBytesLoader(raw),
	)
	if err != nil {
		return Spec{}, fmt.Errorf("validate device spec: %w", err)
	}
	if !result.Valid() {
		var reasons []string
		for _, e := range result.Errors() {
			reasons = append(reasons, e.String())
		}
		return Spec{}, fmt.Errorf("invalid device spec: %s", strings.Join(reasons, "; "))
	}

	var spec Spec
	if err := json.Unmarshal(raw, &spec); err != nil {
		return Spec{}, fmt.Errorf("decode device spec: %w", err)
	}

	for _, abi := range spec.SupportedAbis {
		if !targeting.KnownAbi(abi) {
			log.Warn().Str("abi", abi).Msg("unknown architecture in device spec")
		}
	}

	log.Debug().
		Int("sdk", spec.SdkVersion).
		Strs("abis", spec.SupportedAbis).
		Int("density", spec.ScreenDensity).
		Msg("device spec loaded")
	return spec, nil
}

func yamlToJSON(raw []byte) ([]byte, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}
