package utils

import (
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

var (
	ErrFileTooLarge    = errors.New("file size exceeds maximum allowed size")
	ErrInvalidFileType = errors.New("invalid file type. Only images are allowed")
)

func ValidateImage(fileHeader *multipart.FileHeader, maxSize int64) error {
	if fileHeader.Size > maxSize {
		return ErrFileTooLarge
	}
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageExtensions[ext] {
		return ErrInvalidFileType
	}
	return nil
}

// SaveUpload stores an image under uploadDir/subDir and returns the path
// relative to uploadDir.
func SaveUpload(c *gin.Context, fileHeader *multipart.FileHeader, uploadDir, subDir string, maxSize int64) (string, error) {
	if err := ValidateImage(fileHeader, maxSize); err != nil {
		return "", err
	}

	uploadPath := filepath.Join(uploadDir, subDir)
	if err := os.MkdirAll(uploadPath, os.ModePerm); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	filename := fmt.Sprintf("%d_%s", time.Now().UnixNano(), strings.ReplaceAll(fileHeader.Filename, " ", "_"))
	if len(filename) > 255 {
		filename = fmt.Sprintf("%d%s", time.Now().UnixNano(), ext)
	}

	if err := c.SaveUploadedFile(fileHeader, filepath.Join(uploadPath, filename)); err != nil {
		return "", err
	}
	return filepath.Join(subDir, filename), nil
}
