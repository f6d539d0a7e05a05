package domain

import (
	"bytes"
	"encoding/json"
	"strings"
)

// FieldError - ошибки валидации одного поля
type FieldError struct {
	Field    string
	Messages []string
}

// ValidationError накапливает ошибки валидации по полям.
// Порядок добавления полей сохраняется при сериализации.
type ValidationError struct {
	fields []FieldError
}

// Add добавляет сообщение об ошибке для поля
func (e *ValidationError) Add(field, message string) {
	for i := range e.fields {
		if e.fields[i].Field == field {
			e.fields[i].Messages = append(e.fields[i].Messages, message)
			return
		}
	}
	e.fields = append(e.fields, FieldError{Field: field, Messages: []string{message}})
}

// Empty сообщает, были ли зафиксированы ошибки
func (e *ValidationError) Empty() bool {
	return len(e.fields) == 0
}

// Fields возвращает ошибки в порядке добавления
func (e *ValidationError) Fields() []FieldError {
	return e.fields
}

func (e *ValidationError) Error() string {
	names := make([]string, len(e.fields))
	for i, f := range e.fields {
		names[i] = f.Field
	}
	return "validation failed: " + strings.Join(names, ", ")
}

// MarshalJSON сериализует ошибки как объект {"поле": ["сообщение", ...]}
func (e *ValidationError) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range e.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Field)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		msgs, err := json.Marshal(f.Messages)
		if err != nil {
			return nil, err
		}
		buf.Write(msgs)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
