package handler

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/smcs-alumni/alumni-portal/internal/api/metrics"
)

const maxUploadBytes = 5 << 20 // 5 MiB

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// UploadHandler accepts a single image file and returns the URL under which
// it is served. The storage mechanism behind the returned URL is deliberately
// opaque to the rest of the system; entities only keep the URL string.
type UploadHandler struct {
	dir     string
	baseURL string
}

func NewUploadHandler(dir, baseURL string) *UploadHandler {
	return &UploadHandler{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}
}

type uploadResponse struct {
	ImageURL string `json:"imageUrl"`
}

// Upload handles POST /api/admin/upload.
//
// @Summary      Upload an image
// @Tags         admin
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Image file (jpeg/png/gif/webp, max 5 MiB)"
// @Success      201   {object}  uploadResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/admin/upload [post]
func (h *UploadHandler) Upload(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}
	if fh.Size > maxUploadBytes {
		return echo.NewHTTPError(http.StatusBadRequest, "file exceeds 5 MiB")
	}

	src, err := fh.Open()
	if err != nil {
		return fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	// Sniff the real content type; the client-supplied header is not trusted.
	head := make([]byte, 512)
	n, err := io.ReadFull(src, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return fmt.Errorf("read upload: %w", err)
	}
	ext, ok := allowedImageTypes[http.DetectContentType(head[:n])]
	if !ok {
		metrics.UploadsTotal.WithLabelValues("rejected").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, "unsupported file type")
	}

	name := randomName() + ext
	dst, err := os.Create(filepath.Join(h.dir, name))
	if err != nil {
		return fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := dst.Write(head[:n]); err != nil {
		return fmt.Errorf("write upload: %w", err)
	}
	if _, err := io.Copy(dst, io.LimitReader(src, maxUploadBytes)); err != nil {
		return fmt.Errorf("write upload: %w", err)
	}

	metrics.UploadsTotal.WithLabelValues("stored").Inc()
	return c.JSON(http.StatusCreated, uploadResponse{ImageURL: path.Join(h.baseURL, name)})
}

func randomName() string {
	b := make([]byte, 12)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%x", os.Getpid())
	}
	return hex.EncodeToString(b)
}
