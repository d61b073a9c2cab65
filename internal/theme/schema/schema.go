// Package schema types the theme editor explicitly. The original system
// guessed widget types from value strings, which misclassified anything not
// matching its patterns; here every known key carries a declared type, and a
// deployment can override or extend the set from a YAML file.
package schema

import (
	"sort"
	"strings"

	"github.com/spf13/viper"
)

type FieldType string

const (
	TypeColor  FieldType = "color"
	TypeSize   FieldType = "size"
	TypeRange  FieldType = "range"
	TypeSelect FieldType = "select"
	TypeText   FieldType = "text"
)

// FieldSpec describes the admin editor widget for one theme key.
type FieldSpec struct {
	Key     string    `json:"key"`
	Type    FieldType `json:"type"`
	Options []string  `json:"options,omitempty"`
	Min     float64   `json:"min,omitempty"`
	Max     float64   `json:"max,omitempty"`
	Step    float64   `json:"step,omitempty"`
}

// Schema maps theme keys to their field specs. Keys absent from the schema
// render as free text.
type Schema map[string]FieldSpec

// Builtin returns the schema for the built-in theme keys.
func Builtin() Schema {
	colors := []string{"background", "contentBackground", "primaryColor", "secondaryColor", "fontColor", "borderColor"}
	sizes := []string{"fontSizeHeading", "fontSizeDescription", "fontSizeButton", "borderRadius", "borderWidth", "padding", "margin"}

	s := Schema{}
	for _, key := range colors {
		s[key] = FieldSpec{Key: key, Type: TypeColor}
	}
	for _, key := range sizes {
		s[key] = FieldSpec{Key: key, Type: TypeSize}
	}
	s["opacity"] = FieldSpec{Key: "opacity", Type: TypeRange, Min: 0, Max: 1, Step: 0.05}
	s["fontFamily"] = FieldSpec{
		Key:     "fontFamily",
		Type:    TypeSelect,
		Options: []string{"Inter", "Poppins", "Roboto", "Montserrat"},
	}
	s["fontWeight"] = FieldSpec{
		Key:     "fontWeight",
		Type:    TypeSelect,
		Options: []string{"100", "200", "300", "400", "500", "600", "700", "800", "900"},
	}
	s["boxShadow"] = FieldSpec{Key: "boxShadow", Type: TypeText}
	return s
}

// Load returns the builtin schema with overrides from path applied, when a
// path is configured. Override files list fields as:
//
//	fields:
//	  - key: accentColor
//	    type: color
func Load(path string) (Schema, error) {
	s := Builtin()
	if strings.TrimSpace(path) == "" {
		return s, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var file struct {
		Fields []FieldSpec `mapstructure:"fields"`
	}
	if err := v.Unmarshal(&file); err != nil {
		return nil, err
	}

	for _, field := range file.Fields {
		key := strings.TrimSpace(field.Key)
		if key == "" || !validType(field.Type) {
			continue
		}
		field.Key = key
		s[key] = field
	}
	return s, nil
}

// SpecFor returns the spec for key, defaulting unknown keys to free text.
func (s Schema) SpecFor(key string) FieldSpec {
	if spec, ok := s[key]; ok {
		return spec
	}
	return FieldSpec{Key: key, Type: TypeText}
}

// FieldsFor lists specs for every key in keys, sorted by key for stable
// editor layout.
func (s Schema) FieldsFor(keys []string) []FieldSpec {
	out := make([]FieldSpec, 0, len(keys))
	for _, key := range keys {
		out = append(out, s.SpecFor(key))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

func validType(t FieldType) bool {
	switch t {
	case TypeColor, TypeSize, TypeRange, TypeSelect, TypeText:
		return true
	default:
		return false
	}
}
