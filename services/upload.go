package services

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"

	"law_office_app_go/forms"
)

// FileRefFromMultipart wraps a multipart file header as a form file handle
func FileRefFromMultipart(fh *multipart.FileHeader) *forms.FileRef {
	if fh == nil {
		return nil
	}
	return &forms.FileRef{
		Name:        fh.Filename,
		Size:        fh.Size,
		ContentType: fh.Header.Get("Content-Type"),
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}

var (
	pngMagic  = []byte{0x89, 'P', 'N', 'G'}
	jpegMagic = []byte{0xFF, 0xD8, 0xFF}
)

// ValidateImageContent sniffs the first bytes of an attached image and rejects
// content that is not actually PNG or JPEG, regardless of the file extension
func ValidateImageContent(ref *forms.FileRef) error {
	src, err := ref.Open()
	if err != nil {
		return fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	buffer := make([]byte, 512)
	n, err := src.Read(buffer)
	if err != nil && err != io.EOF {
		return fmt.Errorf("failed to read file content: %w", err)
	}
	buffer = buffer[:n]

	if bytes.HasPrefix(buffer, pngMagic) || bytes.HasPrefix(buffer, jpegMagic) {
		return nil
	}
	return fmt.Errorf("file is not a valid PNG or JPEG image")
}
