// Package payload converts resume files between their binary form and the
// textual representation stored in the database: a base64 string carrying a
// data-URL media-type marker, the format the admin frontend produces.
package payload

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

const (
	// MimePDF is the only accepted upload type.
	MimePDF = "application/pdf"

	dataURLPrefix = "data:application/pdf;base64,"
)

var (
	ErrInvalidType    = errors.New("invalid file type")
	ErrCorruptPayload = errors.New("corrupt payload")
	ErrRead           = errors.New("read failed")
)

// Encode validates the declared media type and produces the stored text
// form: a data-URL marker followed by standard base64 of the raw bytes.
func Encode(mimeType string, data []byte) (string, error) {
	if !strings.EqualFold(strings.TrimSpace(mimeType), MimePDF) {
		return "", ErrInvalidType
	}
	return dataURLPrefix + base64.StdEncoding.EncodeToString(data), nil
}

// Decode strips the optional media-type marker and reverses the base64
// encoding, reconstructing the exact original byte sequence.
func Decode(text string) ([]byte, error) {
	trimmed := strings.TrimPrefix(text, dataURLPrefix)
	raw, err := base64.StdEncoding.DecodeString(trimmed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptPayload, err)
	}
	return raw, nil
}

// HasMarker reports whether text carries the data-URL media-type marker.
func HasMarker(text string) bool {
	return strings.HasPrefix(text, dataURLPrefix)
}
