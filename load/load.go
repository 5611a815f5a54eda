package load

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	yaml "github.com/goccy/go-yaml"

	"github.com/jfield/jfield/ir"
)

const readBufferSize = 64 << 10

// File loads path into a document tree. Files named *.yaml or *.yml are
// decoded as YAML, everything else as JSON.
func File(path string) (*ir.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	br := bufio.NewReaderSize(f, readBufferSize)

	var node *ir.Node
	var derr error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var d []byte
		d, derr = io.ReadAll(br)
		if derr == nil {
			node, derr = decodeYAML(d)
		}
	default:
		node, derr = decodeJSON(br)
	}
	if derr != nil {
		return nil, &ParseError{Path: path, Err: derr}
	}
	return node, nil
}

// JSON decodes a JSON document into a tree.
func JSON(d []byte) (*ir.Node, error) {
	return JSONReader(bytes.NewReader(d))
}

// JSONReader decodes a JSON document from r into a tree.
func JSONReader(r io.Reader) (*ir.Node, error) {
	node, err := decodeJSON(r)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	return node, nil
}

// YAML decodes a YAML document into a tree.
func YAML(d []byte) (*ir.Node, error) {
	node, err := decodeYAML(d)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	return node, nil
}

func decodeJSON(r io.Reader) (*ir.Node, error) {
	dec := json.NewDecoder(r)
	// numbers stay lexemes so integer/float subkinds survive
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("trailing data after document")
	}
	return fromAny(v)
}

func decodeYAML(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.Unmarshal(d, &v); err != nil {
		return nil, err
	}
	return fromAny(v)
}

func fromAny(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(x), nil
	case string:
		return ir.FromString(x), nil
	case json.Number:
		return fromNumber(string(x))
	case int:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case uint64:
		return ir.FromUint(x), nil
	case float64:
		return ir.FromFloat(x), nil
	case map[string]any:
		m := make(map[string]*ir.Node, len(x))
		for key, mv := range x {
			node, err := fromAny(mv)
			if err != nil {
				return nil, err
			}
			m[key] = node
		}
		return ir.FromMap(m), nil
	case map[any]any:
		m := make(map[string]*ir.Node, len(x))
		for key, mv := range x {
			ks, ok := key.(string)
			if !ok {
				return nil, fmt.Errorf("object key %v (%T) is not a string", key, key)
			}
			node, err := fromAny(mv)
			if err != nil {
				return nil, err
			}
			m[ks] = node
		}
		return ir.FromMap(m), nil
	case []any:
		vals := make([]*ir.Node, len(x))
		for i, ev := range x {
			node, err := fromAny(ev)
			if err != nil {
				return nil, err
			}
			vals[i] = node
		}
		return ir.FromSlice(vals), nil
	default:
		return nil, fmt.Errorf("cannot represent %T in a document tree", v)
	}
}

// fromNumber keeps integer and float subkinds apart the way the input
// wrote them: a lexeme without '.', 'e' or 'E' is integral.
func fromNumber(lit string) (*ir.Node, error) {
	if strings.ContainsAny(lit, ".eE") {
		f, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return nil, err
		}
		y := ir.FromFloat(f)
		y.Num = lit
		return y, nil
	}
	if i, err := strconv.ParseInt(lit, 10, 64); err == nil {
		y := ir.FromInt(i)
		y.Num = lit
		return y, nil
	}
	if u, err := strconv.ParseUint(lit, 10, 64); err == nil {
		y := ir.FromUint(u)
		y.Num = lit
		return y, nil
	}
	// integral but outside uint64; fall back to float
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return nil, err
	}
	y := ir.FromFloat(f)
	y.Num = lit
	return y, nil
}
