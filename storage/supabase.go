package storage

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	storage "github.com/supabase-community/storage-go"
)

// Uploader is the media-store boundary. The recipe service only depends on
// this interface so tests can substitute a fake.
type Uploader interface {
	UploadImage(fileHeader *multipart.FileHeader, fileID string) (string, error)
}

type SupabaseStorage struct {
	url    string
	key    string
	bucket string
}

func NewSupabaseStorage() *SupabaseStorage {
	bucket := os.Getenv("SUPABASE_BUCKET")
	if bucket == "" {
		bucket = "uploads"
	}
	return &SupabaseStorage{
		url:    os.Getenv("SUPABASE_URL"),
		key:    os.Getenv("SUPABASE_KEY"),
		bucket: bucket,
	}
}

// UploadImage stores the payload under recipes/<fileID>.<ext> and returns the
// public URL.
func (s *SupabaseStorage) UploadImage(fileHeader *multipart.FileHeader, fileID string) (string, error) {
	storageClient := storage.NewClient(s.url+"/storage/v1", s.key, nil)

	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	ext := filepath.Ext(fileHeader.Filename)
	objectPath := fmt.Sprintf("recipes/%s%s", fileID, ext)

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file); err != nil {
		return "", err
	}

	contentType := fileHeader.Header.Get("Content-Type")
	options := storage.FileOptions{
		ContentType: &contentType,
	}

	_, err = storageClient.UploadFile(s.bucket, objectPath, &buf, options)
	if err != nil {
		return "", err
	}

	publicURL := fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.url, s.bucket, objectPath)
	return publicURL, nil
}
