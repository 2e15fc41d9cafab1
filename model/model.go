// Package model decodes a SentencePiece ".model" file (a serialized
// ModelProto protobuf message) into a plain []vocab.Piece.
//
// No protoc-generated bindings available here, so this walks the wire
// format directly with protowire instead of depending on generated
// code this repo can't produce. ModelProto.pieces is field 1
// (repeated, length-delimited); each SentencePiece holds piece text in
// field 1 (string). score (field 2) and type (field 3) are read only
// far enough to be skipped; this decoder only needs the ordered piece
// text.
package model

import (
	"fmt"
	"io"
	"os"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/spmbpe/vocab"
)

const modelProtoPiecesField = 1

const sentencePieceTextField = 1

// DecodeError wraps a failure to load or parse a model file, naming the
// operation that failed. It satisfies Unwrap so callers can test against
// the wrapped cause with errors.Is/errors.As.
type DecodeError struct {
	Op  string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("model: %s: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Load reads and decodes a SentencePiece .model file from path.
func Load(path string) ([]vocab.Piece, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &DecodeError{Op: "read", Err: err}
	}
	return Decode(data)
}

// Decode parses raw ModelProto bytes (as read from a SentencePiece
// .model file, or any io.Reader via DecodeReader) into an ordered piece
// list. Piece order is preserved: index in the returned slice is the
// piece's merge priority, matching vocab.Piece.Index.
func Decode(data []byte) ([]vocab.Piece, error) {
	var pieces []vocab.Piece

	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return nil, &DecodeError{Op: "decode", Err: protowire.ParseError(n)}
		}
		data = data[n:]

		if num != modelProtoPiecesField || typ != protowire.BytesType {
			skip, err := skipField(data, typ)
			if err != nil {
				return nil, &DecodeError{Op: "decode", Err: err}
			}
			data = data[skip:]
			continue
		}

		raw, n := protowire.ConsumeBytes(data)
		if n < 0 {
			return nil, &DecodeError{Op: "decode", Err: protowire.ParseError(n)}
		}
		data = data[n:]

		text, err := decodeSentencePieceText(raw)
		if err != nil {
			return nil, &DecodeError{Op: "decode", Err: err}
		}
		pieces = append(pieces, vocab.Piece{Text: text, Index: len(pieces)})
	}

	return pieces, nil
}

// DecodeReader decodes a ModelProto read in full from r.
func DecodeReader(r io.Reader) ([]vocab.Piece, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &DecodeError{Op: "read", Err: err}
	}
	return Decode(data)
}

func decodeSentencePieceText(data []byte) (string, error) {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return "", protowire.ParseError(n)
		}
		data = data[n:]

		if num == sentencePieceTextField && typ == protowire.BytesType {
			text, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return "", protowire.ParseError(n)
			}
			return string(text), nil
		}

		skip, err := skipField(data, typ)
		if err != nil {
			return "", err
		}
		data = data[skip:]
	}
	return "", fmt.Errorf("sentencepiece message has no piece text (field %d)", sentencePieceTextField)
}

// skipField consumes one value of the given wire type from the front
// of data and returns how many bytes it occupied.
func skipField(data []byte, typ protowire.Type) (int, error) {
	n := protowire.ConsumeFieldValue(0, typ, data)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	return n, nil
}
