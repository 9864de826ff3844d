package loaders

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/df07/go-tracer/pkg/core"
	"github.com/df07/go-tracer/pkg/scene"
)

// maxStringLength is the longest string literal a scene file may contain
const maxStringLength = 128

// valueShape is the form a field's value must take
type valueShape int

const (
	shapeNumber valueShape = iota
	shapeVector
)

// objectFields lists the fields each object kind accepts
var objectFields = map[scene.Kind]map[string]valueShape{
	scene.KindCamera: {
		"width":  shapeNumber,
		"height": shapeNumber,
	},
	scene.KindSphere: {
		"radius":   shapeNumber,
		"color":    shapeVector,
		"position": shapeVector,
	},
	scene.KindPlane: {
		"normal":   shapeVector,
		"position": shapeVector,
		"color":    shapeVector,
	},
}

var objectKinds = map[string]scene.Kind{
	"camera": scene.KindCamera,
	"sphere": scene.KindSphere,
	"plane":  scene.KindPlane,
}

// SceneParser reads the JSON-like scene format:
//
//	[ { "type": "camera", "width": 2, "height": 2 },
//	  { "type": "sphere", "radius": 1, "color": [255, 0, 0], "position": [0, 0, 5] } ]
//
// Parsing stops at the first error; there is no recovery.
type SceneParser struct {
	reader *bufio.Reader
	line   int
}

// NewSceneParser creates a parser reading from r
func NewSceneParser(r io.Reader) *SceneParser {
	return &SceneParser{
		reader: bufio.NewReader(r),
		line:   1,
	}
}

// ParseScene parses a complete scene document from an io.Reader
func ParseScene(r io.Reader) (*scene.Scene, error) {
	return NewSceneParser(r).Parse()
}

// LoadScene loads and parses a scene file
func LoadScene(filename string) (*scene.Scene, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCannotOpenSceneFile, err)
	}
	defer file.Close()

	s, err := ParseScene(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return s, nil
}

// Line returns the current line number
func (p *SceneParser) Line() int {
	return p.line
}

// Parse reads the whole document and returns the objects in input order
func (p *SceneParser) Parse() (*scene.Scene, error) {
	result := scene.NewScene()

	if err := p.skipWhitespace(); err != nil {
		return nil, err
	}
	if err := p.expect('['); err != nil {
		return nil, err
	}
	if err := p.skipWhitespace(); err != nil {
		return nil, err
	}

	c, err := p.peek()
	if err != nil {
		return nil, err
	}
	if c == ']' {
		p.next()
	} else {
		for {
			obj, err := p.parseObject()
			if err != nil {
				return nil, err
			}
			result.Add(obj)

			if err := p.skipWhitespace(); err != nil {
				return nil, err
			}
			c, err := p.next()
			if err != nil {
				return nil, err
			}
			if c == ']' {
				break
			}
			if c != ',' {
				return nil, p.errorf(ErrUnexpectedToken, "expected ',' or ']', found %q", c)
			}
			if err := p.skipWhitespace(); err != nil {
				return nil, err
			}
		}
	}

	// Only whitespace may follow the closing bracket
	if err := p.skipWhitespace(); err != nil {
		return nil, err
	}
	if c, err := p.reader.ReadByte(); err == nil {
		return nil, p.errorf(ErrUnexpectedToken, "unexpected %q after end of scene", c)
	} else if !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("reading scene: %w", err)
	}

	return result, nil
}

// parseObject parses one '{ "type": ..., fields }' block
func (p *SceneParser) parseObject() (scene.Object, error) {
	if err := p.expect('{'); err != nil {
		return nil, err
	}
	if err := p.skipWhitespace(); err != nil {
		return nil, err
	}

	key, err := p.parseString()
	if err != nil {
		return nil, err
	}
	if key != "type" {
		return nil, p.errorf(ErrUnexpectedToken, "expected \"type\" key, found %q", key)
	}
	if err := p.expectSeparator(); err != nil {
		return nil, err
	}

	typeName, err := p.parseString()
	if err != nil {
		return nil, err
	}
	kind, ok := objectKinds[typeName]
	if !ok {
		return nil, p.errorf(ErrUnknownObjectType, "%q", typeName)
	}

	b := objectBuilder{kind: kind}
	for {
		if err := p.skipWhitespace(); err != nil {
			return nil, err
		}
		c, err := p.next()
		if err != nil {
			return nil, err
		}
		if c == '}' {
			return b.build(), nil
		}
		if c != ',' {
			return nil, p.errorf(ErrUnexpectedToken, "expected ',' or '}', found %q", c)
		}
		if err := p.skipWhitespace(); err != nil {
			return nil, err
		}
		if err := p.parseField(&b); err != nil {
			return nil, err
		}
	}
}

// parseField parses '"name": value' and stores the value on the builder
func (p *SceneParser) parseField(b *objectBuilder) error {
	name, err := p.parseString()
	if err != nil {
		return err
	}

	shape, ok := objectFields[b.kind][name]
	if !ok {
		if otherKind, known := fieldOwner(name); known {
			return p.errorf(ErrUnknownField, "%q is a %s field, not valid for %s", name, otherKind, b.kind)
		}
		return p.errorf(ErrUnknownField, "%q", name)
	}

	if err := p.expectSeparator(); err != nil {
		return err
	}

	switch shape {
	case shapeNumber:
		value, err := p.parseNumber()
		if err != nil {
			return err
		}
		if value < 0 {
			return p.errorf(ErrValueOutOfDomain, "%s cannot be less than 0, found %g", name, value)
		}
		b.setNumber(name, value)
	case shapeVector:
		value, err := p.parseVector()
		if err != nil {
			return err
		}
		if name == "color" && (value.X < 0 || value.Y < 0 || value.Z < 0) {
			return p.errorf(ErrValueOutOfDomain, "color values cannot be less than 0, found %v", value)
		}
		b.setVector(name, value)
	}
	return nil
}

// fieldOwner reports which kind accepts the named field, if any
func fieldOwner(name string) (scene.Kind, bool) {
	for _, kind := range []scene.Kind{scene.KindCamera, scene.KindSphere, scene.KindPlane} {
		if _, ok := objectFields[kind][name]; ok {
			return kind, true
		}
	}
	return 0, false
}

// parseString reads a double-quoted string with no escapes
func (p *SceneParser) parseString() (string, error) {
	c, err := p.next()
	if err != nil {
		return "", err
	}
	if c != '"' {
		return "", p.errorf(ErrUnexpectedToken, "expected string, found %q", c)
	}

	var sb strings.Builder
	for {
		c, err := p.next()
		if err != nil {
			return "", err
		}
		if c == '"' {
			return sb.String(), nil
		}
		if sb.Len() >= maxStringLength {
			return "", p.errorf(ErrStringTooLong, "strings longer than %d characters are not supported", maxStringLength)
		}
		if c == '\\' {
			return "", p.errorf(ErrUnsupportedEscapeSequence, "strings containing escape codes are not supported")
		}
		if c < 32 || c > 126 {
			return "", p.errorf(ErrNonASCIICharacter, "byte 0x%02x in string", c)
		}
		sb.WriteByte(c)
	}
}

// parseNumber reads a decimal floating point literal
func (p *SceneParser) parseNumber() (float64, error) {
	var sb strings.Builder
	for {
		c, err := p.peek()
		if err != nil {
			if errors.Is(err, ErrUnexpectedEndOfInput) && sb.Len() > 0 {
				break
			}
			return 0, err
		}
		if !isNumberByte(c) {
			break
		}
		p.next()
		sb.WriteByte(c)
	}

	if sb.Len() == 0 {
		c, _ := p.peek()
		return 0, p.errorf(ErrUnexpectedToken, "expected number, found %q", c)
	}
	value, err := strconv.ParseFloat(sb.String(), 64)
	if err != nil {
		return 0, p.errorf(ErrUnexpectedToken, "invalid number %q", sb.String())
	}
	return value, nil
}

// parseVector reads '[x, y, z]'
func (p *SceneParser) parseVector() (core.Vec3, error) {
	var v [3]float64
	if err := p.expect('['); err != nil {
		return core.Vec3{}, err
	}
	for i := range v {
		if err := p.skipWhitespace(); err != nil {
			return core.Vec3{}, err
		}
		n, err := p.parseNumber()
		if err != nil {
			return core.Vec3{}, err
		}
		v[i] = n
		if err := p.skipWhitespace(); err != nil {
			return core.Vec3{}, err
		}
		closer := byte(',')
		if i == len(v)-1 {
			closer = ']'
		}
		if err := p.expect(closer); err != nil {
			return core.Vec3{}, err
		}
	}
	return core.NewVec3(v[0], v[1], v[2]), nil
}

// expectSeparator consumes the ':' between a key and its value
func (p *SceneParser) expectSeparator() error {
	if err := p.skipWhitespace(); err != nil {
		return err
	}
	if err := p.expect(':'); err != nil {
		return err
	}
	return p.skipWhitespace()
}

func (p *SceneParser) expect(want byte) error {
	c, err := p.next()
	if err != nil {
		return err
	}
	if c != want {
		return p.errorf(ErrUnexpectedToken, "expected %q, found %q", want, c)
	}
	return nil
}

// skipWhitespace consumes whitespace. Running out of input here is not an
// error; the next token read reports it.
func (p *SceneParser) skipWhitespace() error {
	for {
		c, err := p.peek()
		if err != nil {
			if errors.Is(err, ErrUnexpectedEndOfInput) {
				return nil
			}
			return err
		}
		if !isSpace(c) {
			return nil
		}
		p.next()
	}
}

// next consumes one byte, tracking line numbers
func (p *SceneParser) next() (byte, error) {
	c, err := p.reader.ReadByte()
	if err != nil {
		return 0, p.readError(err)
	}
	if c == '\n' {
		p.line++
	}
	return c, nil
}

func (p *SceneParser) peek() (byte, error) {
	buf, err := p.reader.Peek(1)
	if err != nil {
		return 0, p.readError(err)
	}
	return buf[0], nil
}

func (p *SceneParser) readError(err error) error {
	if errors.Is(err, io.EOF) {
		return p.errorf(ErrUnexpectedEndOfInput, "")
	}
	return fmt.Errorf("reading scene at line %d: %w", p.line, err)
}

func (p *SceneParser) errorf(kind error, format string, args ...interface{}) error {
	return &ParseError{
		Kind: kind,
		Line: p.line,
		Msg:  fmt.Sprintf(format, args...),
	}
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isNumberByte(c byte) bool {
	return (c >= '0' && c <= '9') || c == '+' || c == '-' || c == '.' || c == 'e' || c == 'E'
}

// objectBuilder collects field values until the closing brace.
// Fields that never appear keep their zero value.
type objectBuilder struct {
	kind     scene.Kind
	width    float64
	height   float64
	radius   float64
	color    core.Vec3
	position core.Vec3
	normal   core.Vec3
}

func (b *objectBuilder) setNumber(name string, value float64) {
	switch name {
	case "width":
		b.width = value
	case "height":
		b.height = value
	case "radius":
		b.radius = value
	}
}

func (b *objectBuilder) setVector(name string, value core.Vec3) {
	switch name {
	case "color":
		b.color = value
	case "position":
		b.position = value
	case "normal":
		b.normal = value
	}
}

func (b *objectBuilder) build() scene.Object {
	switch b.kind {
	case scene.KindCamera:
		return scene.Camera{Width: b.width, Height: b.height}
	case scene.KindSphere:
		return scene.Sphere{Center: b.position, Radius: b.radius, Color: core.ColorFromVec3(b.color)}
	default:
		return scene.Plane{Position: b.position, Normal: b.normal, Color: core.ColorFromVec3(b.color)}
	}
}
