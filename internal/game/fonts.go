package game

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

type fonts struct {
	title     *text.GoTextFace
	body      *text.GoTextFace
	button    *text.GoTextFace
	small     *text.GoTextFace
	italic    *text.GoTextFace
	smallCaps *text.GoTextFace
}

func loadSource(name string, ttf []byte) (*text.GoTextFaceSource, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s font: %w", name, err)
	}
	return source, nil
}

func loadFonts() (*fonts, error) {
	regular, err := loadSource("regular", goregular.TTF)
	if err != nil {
		return nil, err
	}
	bold, err := loadSource("bold", gobold.TTF)
	if err != nil {
		return nil, err
	}
	italic, err := loadSource("italic", goitalic.TTF)
	if err != nil {
		return nil, err
	}

	return &fonts{
		title:     &text.GoTextFace{Source: bold, Size: 56},
		body:      &text.GoTextFace{Source: regular, Size: 18},
		button:    &text.GoTextFace{Source: bold, Size: 22},
		small:     &text.GoTextFace{Source: regular, Size: 13},
		italic:    &text.GoTextFace{Source: italic, Size: 15},
		smallCaps: &text.GoTextFace{Source: bold, Size: 11},
	}, nil
}

// wrap breaks s into lines no wider than width using face's advances.
func wrap(s string, face text.Face, width float64) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		candidate := line + " " + w
		if text.Advance(candidate, face) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line = candidate
	}
	return append(lines, line)
}
