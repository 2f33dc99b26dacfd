package handlers

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

// Uploads above this size are rejected before decoding.
const maxUploadBytes = 10 << 20

func readImageFile(c *gin.Context) ([]byte, error) {
	header, err := c.FormFile("file")
	if err != nil {
		return nil, err
	}

	if header.Size > maxUploadBytes {
		return nil, errors.New("file too large")
	}

	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return io.ReadAll(io.LimitReader(file, maxUploadBytes))
}
