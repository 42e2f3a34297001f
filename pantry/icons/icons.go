// icons/icons.go
package icons

import (
	"mime"
	"strings"
)

// Font Awesome class sets, each with the trailing space callers append to.
const (
	Image       = "fa fa-image text-warning "
	PDF         = "fa fa-file-pdf text-danger "
	Word        = "fa fa-file-word text-primary "
	Spreadsheet = "fa fa-file-excel text-success "
	Generic     = "fa fa-file-alt "
)

var byMime = map[string]string{
	"image/jpeg":               Image,
	"image/png":                Image,
	"image/gif":                Image,
	"image/svg+xml":            Image,
	"application/pdf":          PDF,
	"application/msword":       Word,
	"application/vnd.ms-excel": Spreadsheet,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": Spreadsheet,
	"text/csv":   Spreadsheet,
	"text/plain": Spreadsheet,
}

// ByMime returns the icon classes for a MIME type with class appended.
// Parameters such as "; charset=utf-8" and letter case are ignored.
// Unknown or malformed types get the generic file icon.
//
//	ByMime("application/pdf", "fa-lg") // "fa fa-file-pdf text-danger fa-lg"
func ByMime(mimeType, class string) string {
	return lookup(mimeType) + class
}

func lookup(mimeType string) string {
	mt, _, err := mime.ParseMediaType(mimeType)
	if err != nil {
		mt = strings.ToLower(strings.TrimSpace(mimeType))
	}
	if icon, ok := byMime[mt]; ok {
		return icon
	}
	return Generic
}
