package profile

import (
	"encoding/base64"
	"errors"
	"fmt"
	"html"
	"net/http"
	"strings"
)

const MaxPictureBytes = 2 * 1024 * 1024

var (
	ErrPictureTooLarge = errors.New("picture is larger than 2MB")
	ErrNotAnImage      = errors.New("picture is not an image")
)

// PreviewPicture turns an uploaded picture into the preview markup stored as
// the user's profile picture. An empty content type is sniffed from the data.
func PreviewPicture(contentType string, data []byte) (string, error) {
	if len(data) > MaxPictureBytes {
		return "", ErrPictureTooLarge
	}
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	if !strings.HasPrefix(contentType, "image/") {
		return "", ErrNotAnImage
	}

	src := fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data))
	return fmt.Sprintf(`<img src="%s" alt="Profile Preview">`, html.EscapeString(src)), nil
}
