package contract

import (
	"io"
)

// IFileStorage abstracts the storage backend for uploaded files.
type IFileStorage interface {
	// Save writes the content under the given file name and returns the
	// public URL of the stored file.
	Save(fileName string, content io.Reader) (string, error)
}
