package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatText Format = "text"
)

var ErrUnsupportedFormat = errors.New("unsupported format")

// ParseFormat maps a user supplied name to a Format; empty means JSON.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case "":
		return FormatJSON, nil
	case FormatJSON, FormatYAML, FormatText:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// ContentType is the HTTP media type of an encoded document.
func (f Format) ContentType() string {
	switch f {
	case FormatYAML:
		return "application/yaml; charset=utf-8"
	case FormatText:
		return "text/plain; charset=utf-8"
	default:
		return "application/json; charset=utf-8"
	}
}

// ColorDocument is a Color with its rendered forms.
type ColorDocument struct {
	Hue        int    `json:"hue" yaml:"hue"`
	Saturation int    `json:"saturation" yaml:"saturation"`
	Lightness  int    `json:"lightness" yaml:"lightness"`
	CSS        string `json:"css" yaml:"css"`
	Hex        string `json:"hex" yaml:"hex"`
}

func NewColorDocument(c Color) ColorDocument {
	return ColorDocument{
		Hue:        c.Hue,
		Saturation: c.Saturation,
		Lightness:  c.Lightness,
		CSS:        c.String(),
		Hex:        c.Hex(),
	}
}

type PaletteDocument struct {
	Primary    ColorDocument `json:"primary" yaml:"primary"`
	Secondary  ColorDocument `json:"secondary" yaml:"secondary"`
	Background ColorDocument `json:"background" yaml:"background"`
}

func NewPaletteDocument(p Palette) PaletteDocument {
	return PaletteDocument{
		Primary:    NewColorDocument(p.Primary),
		Secondary:  NewColorDocument(p.Secondary),
		Background: NewColorDocument(p.Background),
	}
}

// AvatarDocument is the exported shape of an Avatar.
type AvatarDocument struct {
	Input          string          `json:"input" yaml:"input"`
	Digest         uint32          `json:"digest" yaml:"digest"`
	Placeholder    bool            `json:"placeholder" yaml:"placeholder"`
	Grid           *Grid           `json:"grid" yaml:"grid"`
	FillPercentage float64         `json:"fillPercentage" yaml:"fillPercentage"`
	Attempts       int             `json:"attempts" yaml:"attempts"`
	InBand         bool            `json:"inBand" yaml:"inBand"`
	Palette        PaletteDocument `json:"palette" yaml:"palette"`
}

func NewAvatarDocument(a *Avatar) AvatarDocument {
	doc := AvatarDocument{
		Input:       a.Input,
		Digest:      a.Digest,
		Placeholder: a.Placeholder(),
		Grid:        a.Grid,
		Attempts:    a.Attempts,
		InBand:      a.InBand,
		Palette:     NewPaletteDocument(a.Palette),
	}
	if a.Grid != nil {
		doc.FillPercentage = a.Grid.FillPercentage()
	}
	return doc
}

// Encode renders the avatar in the given format.
func Encode(a *Avatar, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(NewAvatarDocument(a), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode json: %w", err)
		}
		return data, nil
	case FormatYAML:
		data, err := yaml.Marshal(NewAvatarDocument(a))
		if err != nil {
			return nil, fmt.Errorf("failed to encode yaml: %w", err)
		}
		return data, nil
	case FormatText:
		return encodeText(a), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func encodeText(a *Avatar) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "input: %s\n", a.Input)
	fmt.Fprintf(&b, "digest: %d\n", a.Digest)
	if a.Grid == nil {
		b.WriteString("(no grid)\n")
	} else {
		b.WriteString(a.Grid.String())
		b.WriteByte('\n')
	}
	for _, sw := range []struct {
		label string
		color Color
	}{
		{"primary", a.Palette.Primary},
		{"secondary", a.Palette.Secondary},
		{"background", a.Palette.Background},
	} {
		fmt.Fprintf(&b, "%s: %s %s\n", sw.label, sw.color, sw.color.Hex())
	}
	return []byte(b.String())
}
