package internal

import (
	"os"
	"strings"
)

// ScanImages lists the *.jpg entries of dir, non-recursive. The suffix match
// is case sensitive: photo.JPG is not an upload candidate. Entries read
// before a mid-stream directory failure are kept rather than aborting the
// whole scan.
func ScanImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil && len(entries) == 0 {
		return nil, IOError(dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), ".jpg") {
			files = append(files, entry.Name())
		}
	}
	return files, nil
}
