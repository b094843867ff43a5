package ir

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Decode parses JSON text into a node tree, preserving object key order and
// raw number text.
func Decode(d []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	node, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("trailing data after JSON value")
	}
	return node, nil
}

func decodeValue(dec *json.Decoder) (*Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return decodeToken(dec, tok)
}

func decodeToken(dec *json.Decoder, tok json.Token) (*Node, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			res := Object()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("object key is not a string: %v", keyTok)
				}
				val, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				res.SetField(key, val)
			}
			// consume '}'
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return res, nil
		case '[':
			res := Array()
			for dec.More() {
				val, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				res.Append(val)
			}
			// consume ']'
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return res, nil
		default:
			return nil, fmt.Errorf("unexpected delimiter %v", t)
		}
	case string:
		return FromString(t), nil
	case json.Number:
		return fromNumber(t), nil
	case bool:
		return FromBool(t), nil
	case nil:
		return Null(), nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

func fromNumber(n json.Number) *Node {
	res := &Node{Type: NumberType, Number: n.String()}
	if i, err := n.Int64(); err == nil {
		res.Int64 = &i
		return res
	}
	if f, err := n.Float64(); err == nil {
		res.Float64 = &f
	}
	return res
}

// Encode writes the node as compact JSON, keeping object key order and raw
// number text.
func Encode(node *Node, w io.Writer) error {
	buf := bytes.NewBuffer(nil)
	if err := encodeValue(buf, node); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func encodeValue(buf *bytes.Buffer, node *Node) error {
	switch node.Type {
	case ObjectType:
		buf.WriteByte('{')
		for i := range node.Fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeString(buf, node.Fields[i].String)
			buf.WriteByte(':')
			if err := encodeValue(buf, node.Values[i]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil
	case ArrayType:
		buf.WriteByte('[')
		for i, elt := range node.Values {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeValue(buf, elt); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	case StringType:
		writeString(buf, node.String)
		return nil
	case NumberType:
		buf.WriteString(numberText(node))
		return nil
	case BoolType:
		buf.WriteString(strconv.FormatBool(node.Bool))
		return nil
	case NullType:
		buf.WriteString("null")
		return nil
	default:
		return fmt.Errorf("cannot encode type %s", node.Type)
	}
}

func numberText(node *Node) string {
	if node.Number != "" {
		return node.Number
	}
	if node.Int64 != nil {
		return strconv.FormatInt(*node.Int64, 10)
	}
	if node.Float64 != nil {
		return strconv.FormatFloat(*node.Float64, 'g', -1, 64)
	}
	return "0"
}

func writeString(buf *bytes.Buffer, s string) {
	d, err := json.Marshal(s)
	if err != nil {
		panic(err)
	}
	buf.Write(d)
}

// MustString returns the compact JSON text of a node, for messages and
// tests.
func MustString(node *Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}

// ToAny converts a node tree to plain Go values, the shape expected by
// expression environments and external validators. Object key order is
// lost.
func ToAny(node *Node) any {
	switch node.Type {
	case ObjectType:
		n := len(node.Fields)
		res := make(map[string]any, n)
		for i := range n {
			res[node.Fields[i].String] = ToAny(node.Values[i])
		}
		return res
	case ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = ToAny(elt)
		}
		return res
	case StringType:
		return node.String
	case NumberType:
		if node.Int64 != nil {
			return int(*node.Int64)
		}
		if node.Float64 != nil {
			return *node.Float64
		}
		return node.Number
	case BoolType:
		return node.Bool
	case NullType:
		return nil
	default:
		panic("impossible production")
	}
}

// FromAny converts plain Go values to a node tree. Map keys come out in
// sorted order; use Decode for order-preserving input.
func FromAny(v any) (*Node, error) {
	switch t := v.(type) {
	case *Node:
		return t.Clone(), nil
	case nil:
		return Null(), nil
	case bool:
		return FromBool(t), nil
	case string:
		return FromString(t), nil
	case int:
		return FromInt(int64(t)), nil
	case int64:
		return FromInt(t), nil
	case float64:
		return FromFloat(t), nil
	case json.Number:
		return fromNumber(t), nil
	}
	d, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return Decode(d)
}
