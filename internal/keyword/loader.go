package keyword

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the YAML layout for keyword overrides:
//
//	version: "1.0"
//	tags:
//	  lantern: ["_WL_Lantern", "SWL_Lantern"]
//	  katana: ["WeapTypeKatana", "AE_WeapTypeKatana"]
type File struct {
	Version string              `yaml:"version"`
	Tags    map[string][]string `yaml:"tags"`
}

// LoadFile reads keyword overrides from a YAML file and builds an Inspector.
// An empty path yields the default inspector.
func LoadFile(path string) (*Inspector, error) {
	if path == "" {
		return NewInspector(nil), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadFileFailed, err)
	}

	return Parse(data)
}

// Parse builds an Inspector from YAML override data.
func Parse(data []byte) (*Inspector, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf(ErrMsgParseFileFailed, err)
	}

	extra := make(map[Tag][]string, len(file.Tags))
	for name, keywords := range file.Tags {
		tag, err := ParseTag(name)
		if err != nil {
			return nil, err
		}
		for _, kw := range keywords {
			if kw == "" {
				return nil, fmt.Errorf(ErrFmtEmptyKeyword, name)
			}
		}
		extra[tag] = keywords
	}

	slog.Debug(LogMsgOverridesLoaded, "version", file.Version, "tags", len(extra))
	return NewInspector(extra), nil
}
