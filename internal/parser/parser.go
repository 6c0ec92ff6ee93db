// Package parser is the reference tokenizer front end: it turns raw JSON
// text into the generic node tree consumed by the builder. It streams
// tokens rather than unmarshaling into maps so that object member order
// and the raw text of numbers survive intact.
package parser

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	stderrors "errors" // Standard errors package

	"github.com/mcncl/jsonv/internal/errors"
	"github.com/mcncl/jsonv/internal/node"
)

// Parse reads a single JSON value from the reader and returns it as a
// generic node tree.
func Parse(reader io.Reader) (*node.Node, error) {
	decoder := json.NewDecoder(reader)
	decoder.UseNumber() // Keep numeric text lossless

	token, err := decoder.Token()
	if err != nil {
		if stderrors.Is(err, io.EOF) {
			return nil, errors.NewParsingError("input is empty or contains only whitespace", errors.ErrEmptyInput)
		}
		return nil, syntaxError(err)
	}

	root, err := parseValue(decoder, token, "", false)
	if err != nil {
		return nil, err
	}

	// A second token after the root value means multiple JSON documents.
	if _, err := decoder.Token(); !stderrors.Is(err, io.EOF) {
		if err != nil {
			return nil, errors.NewParsingError("invalid trailing data after first JSON value", err)
		}
		return nil, errors.NewParsingError("multiple JSON values found at the root", errors.ErrMultipleJSON)
	}

	return root, nil
}

// parseValue builds the node for the value introduced by token. For object
// members the key becomes the structural tag, even when the key is the
// empty string ({"":1} is valid JSON); only non-member nodes fall back to
// the node's own type word as their tag.
func parseValue(decoder *json.Decoder, token json.Token, key string, isMember bool) (*node.Node, error) {
	var n *node.Node

	switch t := token.(type) {
	case json.Delim:
		switch t {
		case '[':
			children, err := parseElements(decoder)
			if err != nil {
				return nil, err
			}
			n = &node.Node{Type: node.TypeArray, Children: children}
		case '{':
			children, err := parseMembers(decoder)
			if err != nil {
				return nil, err
			}
			n = &node.Node{Type: node.TypeObject, Children: children}
		default:
			return nil, errors.NewParsingError(fmt.Sprintf("unexpected delimiter %q", t.String()), errors.ErrInvalidJSON)
		}
	case json.Number:
		n = &node.Node{Type: node.TypeNumber, Text: t.String()}
	case string:
		n = &node.Node{Type: node.TypeString, Text: t}
	case bool:
		n = &node.Node{Type: node.TypeBoolean, Text: strconv.FormatBool(t)}
	case nil:
		n = &node.Node{Type: node.TypeNull}
	default:
		return nil, errors.NewParsingError(fmt.Sprintf("unexpected token %v", token), errors.ErrInvalidJSON)
	}

	tag := key
	if !isMember && tag == "" {
		tag = n.Type
	}
	n.Tag = tag
	return n, nil
}

// parseElements consumes array elements up to and including the closing
// bracket.
func parseElements(decoder *json.Decoder) ([]*node.Node, error) {
	var children []*node.Node
	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return nil, syntaxError(err)
		}
		child, err := parseValue(decoder, token, "", false)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	if _, err := decoder.Token(); err != nil { // closing ']'
		return nil, syntaxError(err)
	}
	return children, nil
}

// parseMembers consumes object members up to and including the closing
// brace. Each member node's tag is its key.
func parseMembers(decoder *json.Decoder) ([]*node.Node, error) {
	var children []*node.Node
	for decoder.More() {
		keyToken, err := decoder.Token()
		if err != nil {
			return nil, syntaxError(err)
		}
		key, ok := keyToken.(string)
		if !ok {
			return nil, errors.NewParsingError(fmt.Sprintf("object key is not a string: %v", keyToken), errors.ErrInvalidJSON)
		}
		valueToken, err := decoder.Token()
		if err != nil {
			return nil, syntaxError(err)
		}
		child, err := parseValue(decoder, valueToken, key, true)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	if _, err := decoder.Token(); err != nil { // closing '}'
		return nil, syntaxError(err)
	}
	return children, nil
}

// syntaxError maps decoder failures onto the application error taxonomy.
func syntaxError(err error) error {
	if stderrors.Is(err, io.EOF) || stderrors.Is(err, io.ErrUnexpectedEOF) {
		return errors.NewParsingError("unexpected end of JSON input", errors.ErrInvalidJSON)
	}
	var jsonSyntaxError *json.SyntaxError
	if stderrors.As(err, &jsonSyntaxError) {
		return errors.NewParsingError(
			fmt.Sprintf("JSON syntax error at offset %d", jsonSyntaxError.Offset),
			errors.ErrInvalidJSON,
		)
	}
	return errors.NewParsingError("failed to decode JSON", err)
}

// ParseString parses JSON from a string
func ParseString(jsonString string) (*node.Node, error) {
	// TrimSpace is important here because an empty string reader will give
	// io.EOF to Token, but a string with only spaces might not, depending
	// on the decoder's behavior.
	if strings.TrimSpace(jsonString) == "" {
		return nil, errors.NewInputError("input string is empty", errors.ErrEmptyInput)
	}
	reader := strings.NewReader(jsonString)
	return Parse(reader)
}

// ParseFile parses JSON from a file path
func ParseFile(filePath string) (*node.Node, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, errors.NewInputError("file path is empty", errors.ErrInvalidFilePath)
	}
	file, err := os.Open(filePath)
	if err != nil {
		// Check if the file doesn't exist
		if os.IsNotExist(err) {
			return nil, errors.NewInputError(
				fmt.Sprintf("file '%s' not found", filePath),
				errors.ErrFileNotFound,
			)
		}
		return nil, errors.NewInputError(
			fmt.Sprintf("failed to open file '%s'", filePath),
			err,
		)
	}
	defer func() {
		if err := file.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing file: %v\n", err)
		}
	}()

	// Check for empty file before parsing
	stat, err := file.Stat()
	if err != nil {
		return nil, errors.NewInputError(
			fmt.Sprintf("failed to get file stats for '%s'", filePath),
			err,
		)
	}
	if stat.Size() == 0 {
		return nil, errors.NewInputError(
			fmt.Sprintf("input file '%s' is empty", filePath),
			errors.ErrFileEmpty,
		)
	}

	return Parse(file)
}
