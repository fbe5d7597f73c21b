package internal

import (
	"fmt"
	"os"
	"time"

	exiftool "github.com/barasher/go-exiftool"
	"github.com/rwcarlsen/goexif/exif"
)

// exifStampFormat is how EXIF stores DateTimeOriginal.
const exifStampFormat = "2006:01:02 15:04:05"

// CaptureDate resolves when a photo was taken: EXIF DateTimeOriginal first,
// the external exiftool binary when requested, file modification time as a
// last resort.
func CaptureDate(path string, useExifTool bool) (time.Time, error) {
	if t, err := exifDateOriginal(path); err == nil {
		return t, nil
	}
	if useExifTool {
		if t, err := exiftoolDate(path); err == nil {
			return t, nil
		}
	}
	return fileModTime(path)
}

// exifDateOriginal extracts DateTimeOriginal from EXIF metadata
func exifDateOriginal(path string) (time.Time, error) {
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, err
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return time.Time{}, err
	}

	tag, err := x.Get(exif.DateTimeOriginal)
	if err != nil {
		return time.Time{}, err
	}

	dateStr, err := tag.StringVal()
	if err != nil {
		return time.Time{}, err
	}

	return time.Parse(exifStampFormat, dateStr)
}

// exiftoolDate shells out to the exiftool binary, which reads formats goexif
// cannot.
func exiftoolDate(path string) (time.Time, error) {
	et, err := exiftool.NewExiftool()
	if err != nil {
		return time.Time{}, err
	}
	defer et.Close()

	metas := et.ExtractMetadata(path)
	if len(metas) == 0 {
		return time.Time{}, fmt.Errorf("no metadata for %s", path)
	}
	if metas[0].Err != nil {
		return time.Time{}, metas[0].Err
	}

	dateStr, err := metas[0].GetString("DateTimeOriginal")
	if err != nil {
		return time.Time{}, err
	}

	return time.Parse(exifStampFormat, dateStr)
}

// fileModTime fallback to file modification time
func fileModTime(path string) (time.Time, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	return fi.ModTime(), nil
}
