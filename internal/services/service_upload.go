package services

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"ripple/internal/utils"
)

const maxImageSize = 2 * 1024 * 1024

var ErrBadImage = errors.New("only jpeg/png images up to 2MB are accepted")

func imageExt(filename, contentType string) (string, bool) {
	switch contentType {
	case "image/jpeg", "image/png":
	default:
		return "", false
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		if contentType == "image/png" {
			ext = ".png"
		} else {
			ext = ".jpg"
		}
	}
	return ext, true
}

// UploadFilename builds the stored name: viewer hex plus a random suffix,
// so the path changes on every upload and stale browser caches miss.
func UploadFilename(uid bson.ObjectID, ext string) string {
	return uid.Hex() + utils.RandomSuffix() + ext
}

// SaveUserImage stores an uploaded profile/banner image for the viewer and
// returns the public path to persist on the user document. Previous files
// for the same viewer and field are deleted after a successful save. A
// missing file field returns ("", nil).
func SaveUserImage(c *fiber.Ctx, uploadDir, field string, uid bson.ObjectID) (string, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return "", nil
	}

	if fh.Size > maxImageSize {
		return "", ErrBadImage
	}
	ext, ok := imageExt(fh.Filename, fh.Header.Get("Content-Type"))
	if !ok {
		return "", ErrBadImage
	}

	dir := filepath.Join(uploadDir, field)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	// the viewer's earlier uploads for this field, to be removed once the
	// new file is in place
	stale, _ := filepath.Glob(filepath.Join(dir, uid.Hex()+"*"))

	name := UploadFilename(uid, ext)
	if err := c.SaveFile(fh, filepath.Join(dir, name)); err != nil {
		return "", err
	}
	for _, f := range stale {
		os.Remove(f)
	}

	return "/uploads/" + field + "/" + name, nil
}
