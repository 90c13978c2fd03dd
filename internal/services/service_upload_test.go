package services

import (
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestImageExt(t *testing.T) {
	ext, ok := imageExt("photo.PNG", "image/png")
	if !ok || ext != ".png" {
		t.Errorf("got (%q, %v), want (.png, true)", ext, ok)
	}

	ext, ok = imageExt("photo.jpeg", "image/jpeg")
	if !ok || ext != ".jpeg" {
		t.Errorf("got (%q, %v), want (.jpeg, true)", ext, ok)
	}

	// no extension in the filename: derive from the content type
	ext, ok = imageExt("blob", "image/jpeg")
	if !ok || ext != ".jpg" {
		t.Errorf("got (%q, %v), want (.jpg, true)", ext, ok)
	}
	ext, ok = imageExt("blob", "image/png")
	if !ok || ext != ".png" {
		t.Errorf("got (%q, %v), want (.png, true)", ext, ok)
	}

	if _, ok := imageExt("movie.gif", "image/gif"); ok {
		t.Error("gif accepted")
	}
	if _, ok := imageExt("notes.txt", "text/plain"); ok {
		t.Error("text file accepted")
	}
}

func TestUploadFilename(t *testing.T) {
	uid := bson.NewObjectID()

	a := UploadFilename(uid, ".png")
	b := UploadFilename(uid, ".png")
	if a == b {
		t.Error("two uploads produced the same filename")
	}
	if !strings.HasPrefix(a, uid.Hex()) {
		t.Errorf("filename %q does not start with the viewer hex", a)
	}
	if !strings.HasSuffix(a, ".png") {
		t.Errorf("filename %q does not keep the extension", a)
	}
}
