package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/devfolio/portfolio-api/internal/core/ports"
)

// formUpload extracts an optional multipart file from the request. Returns a
// nil upload when the field was not sent. The closer is safe to call in
// every case.
func formUpload(c echo.Context, field string) (*ports.FileUpload, func(), error) {
	fh, err := c.FormFile(field)
	if err != nil {
		// no file sent, or the request is not multipart
		return nil, func() {}, nil
	}

	f, err := fh.Open()
	if err != nil {
		return nil, func() {}, fmt.Errorf("open upload: %w", err)
	}
	return &ports.FileUpload{Filename: fh.Filename, Reader: f}, func() { _ = f.Close() }, nil
}
