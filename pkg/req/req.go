// Package req - разбор тела HTTP запроса
package req

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

const maxBodySize = 1 << 20

// Decode читает JSON из тела запроса в значение типа T.
// Неизвестные поля считаются ошибкой
func Decode[T any](body io.Reader) (T, error) {
	var payload T

	dec := json.NewDecoder(io.LimitReader(body, maxBodySize))
	dec.DisallowUnknownFields()

	if err := dec.Decode(&payload); err != nil {
		if errors.Is(err, io.EOF) {
			return payload, errors.New("empty request body")
		}
		return payload, fmt.Errorf("decode request body: %w", err)
	}

	return payload, nil
}
