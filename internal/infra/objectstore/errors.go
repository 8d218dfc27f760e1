package objectstore

import "errors"

var (
	// ErrUpload возвращается при ошибке загрузки файла в хранилище
	ErrUpload = errors.New("objectstore: upload failed")

	// ErrBucket возвращается при ошибке подготовки бакета
	ErrBucket = errors.New("objectstore: bucket setup failed")
)
