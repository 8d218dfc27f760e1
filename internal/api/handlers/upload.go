package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
)

const multipartMemory = 8 << 20

var (
	// ErrMissingFile возвращается, когда в форме нет файла
	ErrMissingFile = errors.New("handlers: file is required")

	// ErrFileTooLarge возвращается, когда файл превышает лимит
	ErrFileTooLarge = errors.New("handlers: file is too large")
)

// UploadedFile файл из multipart формы
type UploadedFile struct {
	FileName    string
	ContentType string
	Data        []byte
}

// ParseMultipart разбирает multipart форму с ограничением размера тела
func ParseMultipart(w http.ResponseWriter, r *http.Request, maxBytes int64) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes+multipartMemory)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		return fmt.Errorf("parse multipart: %w", err)
	}
	return nil
}

// ReadFormFile читает файл поля field после ParseMultipart
// Тип содержимого определяется по первым байтам файла, заголовок части используется как запасной вариант
func ReadFormFile(r *http.Request, field string, maxBytes int64) (*UploadedFile, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, ErrMissingFile
		}
		return nil, fmt.Errorf("read form file: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read form file: %w", err)
	}
	if int64(len(data)) > maxBytes {
		return nil, ErrFileTooLarge
	}

	contentType := http.DetectContentType(data)
	if contentType == "application/octet-stream" {
		contentType = header.Header.Get("Content-Type")
	}

	return &UploadedFile{
		FileName:    header.Filename,
		ContentType: contentType,
		Data:        data,
	}, nil
}

// ParseIDList разбирает ID из повторяющихся значений и/или списка через запятую
func ParseIDList(values []string) ([]int64, error) {
	var ids []int64
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.ParseInt(part, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid id %q: %w", part, err)
			}
			ids = append(ids, id)
		}
	}
	return ids, nil
}
