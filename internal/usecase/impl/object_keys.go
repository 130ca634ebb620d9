package impl

import (
	"path"
	"strconv"
	"strings"
	"time"
)

const (
	galleryKeyPrefix      = "gallery/"
	confirmationKeyPrefix = "confirmations/"
)

// galleryObjectKey names an uploaded gallery photo: gallery/<unix-millis>-<file>.
func galleryObjectKey(at time.Time, fileName string) string {
	return galleryKeyPrefix + strconv.FormatInt(at.UnixMilli(), 10) + "-" + safeFileName(fileName)
}

// confirmationObjectKey names a booking payment confirmation: confirmations/<unix-millis>_<file>.
func confirmationObjectKey(at time.Time, fileName string) string {
	return confirmationKeyPrefix + strconv.FormatInt(at.UnixMilli(), 10) + "_" + safeFileName(fileName)
}

// safeFileName keeps the base name and replaces anything outside [A-Za-z0-9._-].
func safeFileName(name string) string {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	if base == "." || base == "/" || base == ".." {
		return "file"
	}

	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, base)
}
