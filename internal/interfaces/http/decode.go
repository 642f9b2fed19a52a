package http

import (
	"bytes"
	"encoding/json"
	"errors"
)

// decodeStrict decodifica un PATCH rechazando campos fuera de la lista permitida del DTO.
func decodeStrict(body []byte, out any) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("cuerpo con más de un documento JSON")
	}
	return nil
}
