package controllers

import (
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

// saveUploadedImage stores the request's `image` file (if any) under
// dir and returns the generated filename. (nil, nil) when the request
// carries no file; records store a filename reference only.
func saveUploadedImage(r *http.Request, dir string) (*string, error) {
	file, header, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	name := uuid.NewString() + filepath.Ext(header.Filename)
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return nil, err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return nil, err
	}
	return &name, nil
}
