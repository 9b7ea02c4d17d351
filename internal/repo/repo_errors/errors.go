package repo_errors

import "errors"

var (
	ErrNotFound      = errors.New("record not found")
	ErrAlreadyExists = errors.New("record already exists")
	ErrReadOnly      = errors.New("write attempted in a read-only view")
	ErrTxDone        = errors.New("transaction has already been committed or rolled back")
)
