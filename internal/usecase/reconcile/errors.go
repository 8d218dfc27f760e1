package reconcile

import "errors"

// ErrInternal возвращается при ошибке сверки
var ErrInternal = errors.New("reconcile: internal error")
