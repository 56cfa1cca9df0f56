package editor

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/gabriel-vasile/mimetype"
)

// MaxImageBytes caps the size of an attached photo
const MaxImageBytes = 5 << 20

var acceptedImageTypes = []string{"image/png", "image/jpeg"}

// LoadImage reads a local image and returns it as a data URL
func LoadImage(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", &ImageError{Path: path, Message: "cannot read image", Cause: err}
	}
	if info.Size() > MaxImageBytes {
		return "", &ImageError{Path: path, Message: fmt.Sprintf("image is larger than %d bytes", MaxImageBytes)}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", &ImageError{Path: path, Message: "cannot read image", Cause: err}
	}

	dataURL, err := EncodeImage(data)
	if err != nil {
		if imgErr, ok := err.(*ImageError); ok {
			imgErr.Path = path
		}
		return "", err
	}
	return dataURL, nil
}

// EncodeImage detects the image type of data and encodes it as a data URL.
// Only PNG and JPEG are accepted.
func EncodeImage(data []byte) (string, error) {
	if len(data) == 0 {
		return "", &ImageError{Message: "image is empty"}
	}
	if len(data) > MaxImageBytes {
		return "", &ImageError{Message: fmt.Sprintf("image is larger than %d bytes", MaxImageBytes)}
	}

	mime := mimetype.Detect(data)
	accepted := false
	for _, t := range acceptedImageTypes {
		if mime.Is(t) {
			accepted = true
			break
		}
	}
	if !accepted {
		return "", &ImageError{Message: fmt.Sprintf("unsupported image type %s (want PNG or JPEG)", mime.String())}
	}

	return "data:" + mime.String() + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
