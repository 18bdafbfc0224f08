package utils

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	storage "github.com/supabase-community/storage-go"
)

// SaveUpload snima fajl pod zadatim folderom (covers, books, logos) i
// vraća javni URL. Ako je SUPABASE_URL konfigurisan, fajl ide u Supabase
// Storage; inače na lokalni disk pod UPLOAD_DIR.
func SaveUpload(fileHeader *multipart.FileHeader, folder, fileID string) (string, error) {
	if os.Getenv("SUPABASE_URL") != "" {
		return uploadToSupabase(fileHeader, folder, fileID)
	}
	return saveToDisk(fileHeader, folder, fileID)
}

func saveToDisk(fileHeader *multipart.FileHeader, folder, fileID string) (string, error) {
	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}

	ext := filepath.Ext(fileHeader.Filename)
	dir := filepath.Join(uploadDir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dstPath := filepath.Join(dir, fileID+ext)
	dst, err := os.Create(dstPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return fmt.Sprintf("/uploads/%s/%s%s", folder, fileID, ext), nil
}

func uploadToSupabase(fileHeader *multipart.FileHeader, folder, fileID string) (string, error) {
	supabaseURL := os.Getenv("SUPABASE_URL")
	supabaseKey := os.Getenv("SUPABASE_KEY")

	storageClient := storage.NewClient(supabaseURL+"/storage/v1", supabaseKey, nil)

	src, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	ext := filepath.Ext(fileHeader.Filename)
	objectPath := fmt.Sprintf("%s/%s%s", folder, fileID, ext)

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, src); err != nil {
		return "", err
	}

	contentType := fileHeader.Header.Get("Content-Type")
	options := storage.FileOptions{
		ContentType: &contentType,
	}

	if _, err := storageClient.UploadFile("uploads", objectPath, &buf, options); err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/storage/v1/object/public/uploads/%s", supabaseURL, objectPath), nil
}
