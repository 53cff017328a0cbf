// internals/helpers/oss/blob_service.go
package helper

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
)

/*
BlobService adalah facade upload/hapus yang seragam untuk controller.
Backend dipilih dari ENV: Aliyun OSS kalau ALI_OSS_* lengkap,
selain itu fallback ke Supabase Storage (HTTP API).
*/
type BlobService interface {
	UploadSectionImage(ctx context.Context, slot string, fh *multipart.FileHeader) (publicURL string, err error)
	DeleteByPublicURL(ctx context.Context, publicURL string) error
}

func NewBlobServiceFromEnv(prefix string) (BlobService, error) {
	if svc, err := NewOSSServiceFromEnv(prefix); err == nil {
		return &ossBlobService{svc: svc}, nil
	}
	if getEnv("SUPABASE_PROJECT_URL") != "" && getEnv("SUPABASE_SERVICE_ROLE_KEY") != "" {
		log.Println("[BLOB] OSS tidak dikonfigurasi, pakai Supabase Storage")
		return &supabaseBlobService{bucket: getEnv("SUPABASE_STORAGE_BUCKET")}, nil
	}
	return nil, fmt.Errorf("tidak ada backend storage: set ALI_OSS_* atau SUPABASE_*")
}

/* --------------------------------------------------
   Aliyun OSS
-------------------------------------------------- */

type ossBlobService struct {
	svc *OSSService
}

func (b *ossBlobService) UploadSectionImage(ctx context.Context, slot string, fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "File tidak ditemukan")
	}
	url, err := b.svc.UploadAsWebP(ctx, fh, "homepage/"+slot)
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadGateway, "Gagal upload ke OSS")
	}
	return url, nil
}

func (b *ossBlobService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	return b.svc.DeleteByPublicURL(ctx, publicURL)
}

/* --------------------------------------------------
   Supabase Storage (HTTP)
-------------------------------------------------- */

type supabaseBlobService struct {
	bucket string // default "image"
}

func (b *supabaseBlobService) bucketName() string {
	if b.bucket != "" {
		return b.bucket
	}
	return "image"
}

func (b *supabaseBlobService) UploadSectionImage(ctx context.Context, slot string, fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "File tidak ditemukan")
	}
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("gagal membuka file gambar: %w", err)
	}
	defer src.Close()

	all, err := io.ReadAll(src)
	if err != nil {
		return "", fmt.Errorf("baca upload: %w", err)
	}

	data, err := ConvertToWebP(bytes.NewReader(all), fh.Filename)
	if err != nil {
		return "", err
	}

	filename := fmt.Sprintf("homepage/%s/%s", slot, buildWebPName(fh.Filename))
	if err := uploadToSupabase(ctx, b.bucketName(), filename, "image/webp", data); err != nil {
		return "", fmt.Errorf("upload gambar gagal: %w", err)
	}

	// thumbnail listing admin: best-effort, gagal hanya dicatat
	if thumb, terr := MakeThumbnailWebP(all, fh.Filename, ThumbWidthPx, ThumbHeightPx); terr == nil {
		if uerr := uploadToSupabase(ctx, b.bucketName(), thumbKey(filename), "image/webp", thumb); uerr != nil {
			log.Println("[WARN] Upload thumbnail gagal:", uerr)
		}
	} else {
		log.Println("[WARN] Thumbnail tidak dibuat:", terr)
	}

	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s",
		getEnv("SUPABASE_PROJECT_URL"), b.bucketName(), filename), nil
}

func (b *supabaseBlobService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	bucket, objectPath, err := extractSupabasePath(publicURL)
	if err != nil {
		return err
	}
	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", getEnv("SUPABASE_PROJECT_URL"), bucket, objectPath)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+getEnv("SUPABASE_SERVICE_ROLE_KEY"))

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("delete gagal status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

func uploadToSupabase(ctx context.Context, bucket, filename, contentType string, data []byte) error {
	supabaseURL := getEnv("SUPABASE_PROJECT_URL")
	supabaseKey := getEnv("SUPABASE_SERVICE_ROLE_KEY")
	if supabaseURL == "" || supabaseKey == "" {
		return fmt.Errorf("SUPABASE_PROJECT_URL atau SUPABASE_SERVICE_ROLE_KEY belum diset")
	}

	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", supabaseURL, bucket, filename)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("gagal membuat request upload: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+supabaseKey)
	req.Header.Set("Content-Type", contentType)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("gagal mengirim request upload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("upload gagal status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

func extractSupabasePath(fullURL string) (bucket string, objectPath string, err error) {
	u, err := url.Parse(fullURL)
	if err != nil {
		return "", "", err
	}
	parts := strings.SplitN(u.Path, "/object/public/", 2)
	if len(parts) < 2 {
		return "", "", fmt.Errorf("url tidak valid untuk Supabase public object")
	}
	pathParts := strings.SplitN(parts[1], "/", 2)
	if len(pathParts) < 2 {
		return "", "", fmt.Errorf("gagal ekstrak bucket dan path")
	}
	return pathParts[0], pathParts[1], nil
}

func buildWebPName(original string) string {
	base := slugify(strings.TrimSuffix(original, pathExt(original)))
	if base == "" {
		base = "img"
	}
	return fmt.Sprintf("%s-%s.webp", base, randHex(4))
}

func pathExt(s string) string {
	if i := strings.LastIndexByte(s, '.'); i >= 0 {
		return s[i:]
	}
	return ""
}
