package main

import (
	"bufio"
	_ "embed"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

//go:embed res/shaders/Basic.shader
var basicShaderSource string

const shaderMarker = "#shader"

var (
	ErrNoMarker       = errors.New("content before first #shader marker")
	ErrUnknownMarker  = errors.New("unknown #shader marker")
	ErrMissingSection = errors.New("missing shader section")
)

type ShaderType int

const (
	ShaderNone ShaderType = iota - 1
	ShaderVertex
	ShaderFragment
)

func (t ShaderType) String() string {
	switch t {
	case ShaderVertex:
		return "vertex"
	case ShaderFragment:
		return "fragment"
	}
	return "none"
}

// ShaderProgramSource holds the two stages split out of a .shader file.
type ShaderProgramSource struct {
	VertexSource   string
	FragmentSource string
}

// ParseShader splits r into its vertex and fragment sections. A line
// containing "#shader" starts a section and is not copied; every other line
// is appended to the current section with a trailing newline.
func ParseShader(r io.Reader) (ShaderProgramSource, error) {
	var (
		sections [2]strings.Builder
		typ      = ShaderNone
		lineno   int
	)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lineno++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.Contains(line, shaderMarker) {
			switch {
			case strings.Contains(line, "vertex"):
				typ = ShaderVertex
			case strings.Contains(line, "fragment"):
				typ = ShaderFragment
			default:
				return ShaderProgramSource{}, errors.Wrapf(ErrUnknownMarker, "line %d: %q", lineno, line)
			}
			continue
		}
		if typ == ShaderNone {
			if strings.TrimSpace(line) == "" {
				continue
			}
			return ShaderProgramSource{}, errors.Wrapf(ErrNoMarker, "line %d", lineno)
		}
		sections[typ].WriteString(line)
		sections[typ].WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return ShaderProgramSource{}, errors.Wrap(err, "read shader")
	}

	for _, t := range []ShaderType{ShaderVertex, ShaderFragment} {
		if strings.TrimSpace(sections[t].String()) == "" {
			return ShaderProgramSource{}, errors.Wrap(ErrMissingSection, t.String())
		}
	}
	return ShaderProgramSource{
		VertexSource:   sections[ShaderVertex].String(),
		FragmentSource: sections[ShaderFragment].String(),
	}, nil
}

// LoadShader parses the shader file at path, or the built-in Basic.shader
// when path is empty.
func LoadShader(path string) (ShaderProgramSource, error) {
	if path == "" {
		src, err := ParseShader(strings.NewReader(basicShaderSource))
		return src, errors.Wrap(err, "builtin Basic.shader")
	}
	f, err := os.Open(path)
	if err != nil {
		return ShaderProgramSource{}, errors.Wrap(err, "load shader")
	}
	defer f.Close()
	src, err := ParseShader(f)
	if err != nil {
		return ShaderProgramSource{}, errors.Wrapf(err, "parse %s", path)
	}
	return src, nil
}
