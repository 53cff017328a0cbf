// internals/helpers/oss/oss_image.go
package helper

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"strconv"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

/* =======================================================================
   Konfigurasi WebP (ENV-Driven)
======================================================================= */

type WebPOptions struct {
	MaxW    int     // batas lebar (resize keep-aspect)
	MaxH    int     // batas tinggi
	Quality float32 // lossy quality
}

func defaultWebPOptionsFromEnv() WebPOptions {
	return WebPOptions{
		MaxW:    envInt("OSS_WEBP_MAX_W", 1920),
		MaxH:    envInt("OSS_WEBP_MAX_H", 1080),
		Quality: envFloat("OSS_WEBP_QUALITY", 80),
	}
}

func envInt(key string, def int) int {
	if v := getEnv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return def
}

func envFloat(key string, def float32) float32 {
	if v := getEnv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 32); err == nil && f >= 0 {
			return float32(f)
		}
	}
	return def
}

func decodeImage(all []byte, filename string) (image.Image, error) {
	lower := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(lower, ".webp"):
		if img, err := webp.Decode(bytes.NewReader(all)); err == nil {
			return img, nil
		}
	case strings.HasSuffix(lower, ".png"):
		if img, err := png.Decode(bytes.NewReader(all)); err == nil {
			return img, nil
		}
	case strings.HasSuffix(lower, ".jpg"), strings.HasSuffix(lower, ".jpeg"):
		if img, err := jpeg.Decode(bytes.NewReader(all)); err == nil {
			return img, nil
		}
	}
	// sniff generik kalau ekstensi bohong
	img, _, err := image.Decode(bytes.NewReader(all))
	if err != nil {
		return nil, fmt.Errorf("decode gambar: %w", err)
	}
	return img, nil
}

func downscaleIfNeeded(src image.Image, maxW, maxH int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if (maxW <= 0 || w <= maxW) && (maxH <= 0 || h <= maxH) {
		return src
	}
	// skala proporsional mengikuti sisi yang paling melewati batas
	scaleW, scaleH := 1.0, 1.0
	if maxW > 0 && w > maxW {
		scaleW = float64(maxW) / float64(w)
	}
	if maxH > 0 && h > maxH {
		scaleH = float64(maxH) / float64(h)
	}
	scale := scaleW
	if scaleH < scale {
		scale = scaleH
	}
	nw, nh := int(float64(w)*scale), int(float64(h)*scale)
	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

// ConvertToWebP membaca file upload & mengembalikan bytes WebP lossy.
func ConvertToWebP(file io.Reader, filename string) ([]byte, error) {
	return ConvertToWebPWithOptions(file, filename, defaultWebPOptionsFromEnv())
}

func ConvertToWebPWithOptions(file io.Reader, filename string, opt WebPOptions) ([]byte, error) {
	all, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("baca upload: %w", err)
	}
	img, err := decodeImage(all, filename)
	if err != nil {
		return nil, err
	}
	img = downscaleIfNeeded(img, opt.MaxW, opt.MaxH)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Lossless: false, Quality: opt.Quality}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

// Ukuran thumbnail listing admin
const (
	ThumbWidthPx  = 320
	ThumbHeightPx = 200
)

// thumbKey menaruh thumbnail di subfolder thumbs/ sebelah objek utamanya,
// jadi URL thumbnail bisa diturunkan dari URL utama tanpa kolom tambahan.
func thumbKey(key string) string {
	if i := strings.LastIndexByte(key, '/'); i >= 0 {
		return key[:i] + "/thumbs/" + key[i+1:]
	}
	return "thumbs/" + key
}

// MakeThumbnailWebP menghasilkan thumbnail kecil (crop-to-fill) untuk listing admin.
func MakeThumbnailWebP(all []byte, filename string, w, h int) ([]byte, error) {
	img, err := decodeImage(all, filename)
	if err != nil {
		return nil, err
	}
	thumb := imaging.Thumbnail(img, w, h, imaging.Lanczos)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, thumb, &webp.Options{Lossless: false, Quality: 70}); err != nil {
		return nil, fmt.Errorf("encode thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}
