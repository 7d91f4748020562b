package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/Bandhan203/Practicum-RMS-sub000/internal/ports"
)

// Проверки соответствия контракту payload.
var (
	_ ports.Payload = JSONPayload{}
	_ ports.Payload = MultipartPayload{}
)

// JSONPayload — структурированное тело запроса (application/json).
type JSONPayload struct {
	Value any
}

// Encode — сериализует значение в JSON.
func (p JSONPayload) Encode() (io.Reader, string, error) {
	raw, err := json.Marshal(p.Value)
	if err != nil {
		return nil, "", fmt.Errorf("encode json payload: %w", err)
	}
	return bytes.NewReader(raw), "application/json", nil
}

// FileAttachment — файл, передаваемый вместе с полями формы
// (например, изображение позиции меню).
type FileAttachment struct {
	Field   string // имя поля формы
	Name    string // имя файла
	Content []byte
}

// MultipartPayload — тело запроса multipart/form-data:
// строковые поля плюс не более одного файла.
type MultipartPayload struct {
	Fields map[string]string
	File   *FileAttachment
}

// Encode — собирает multipart-форму; Content-Type содержит boundary.
func (p MultipartPayload) Encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	for key, value := range p.Fields {
		if err := mw.WriteField(key, value); err != nil {
			return nil, "", fmt.Errorf("encode multipart field %q: %w", key, err)
		}
	}
	if p.File != nil {
		fw, err := mw.CreateFormFile(p.File.Field, p.File.Name)
		if err != nil {
			return nil, "", fmt.Errorf("encode multipart file: %w", err)
		}
		if _, err := fw.Write(p.File.Content); err != nil {
			return nil, "", fmt.Errorf("write multipart file: %w", err)
		}
	}
	if err := mw.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart writer: %w", err)
	}
	return &buf, mw.FormDataContentType(), nil
}
