package jsonify

/*
{-| Turn Go values into JSON text, and JSON text back into Go values.

# Encoding
@docs Encode, EncodeIndent

# Decoding
@docs Decode

-}
*/

import "encoding/json"

// Encode returns the JSON text for v.
func Encode[T any](v T) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// EncodeIndent returns the JSON text for v, indented for human readers.
func EncodeIndent[T any](v T) (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Decode parses JSON text into a value of type T.
func Decode[T any](jsn string) (T, error) {
	var v T
	err := json.Unmarshal([]byte(jsn), &v)
	return v, err
}
