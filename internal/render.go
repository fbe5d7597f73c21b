package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/flosch/pongo2/v6"
)

// postStampFormat renders the schedule cursor for filenames, matching the
// names already in the post archive (date, space, clock).
const postStampFormat = "2006-01-02 15:04:05"

// PostContext is the set of values bound into the post template for one image.
type PostContext struct {
	Title             string    // image stem, e.g. "10023"
	SignificantDigits string    // stem minus its trailing sequence pair
	UploadAt          time.Time // scheduled publish time
	Description       string    // raw alt text as typed
	Tags              []string  // ordered, filtered keywords
}

// RenderPost fills the built-in template with ctx. The template ships inside
// the binary, so a parse failure means a broken build, but it still surfaces
// as an error rather than a panic.
func RenderPost(ctx PostContext) (string, error) {
	tpl, err := pongo2.FromString(postTemplateText)
	if err != nil {
		return "", TemplateError(err)
	}

	out, err := tpl.Execute(pongo2.Context{
		"title":                   ctx.Title,
		"significant_digit_title": ctx.SignificantDigits,
		"upload_date":             ctx.UploadAt.Unix(),
		"description":             ctx.Description,
		"tags":                    ctx.Tags,
	})
	if err != nil {
		return "", TemplateError(err)
	}
	return out, nil
}

// WritePost stores rendered content as "<stamp>-<title>.md" in dir,
// overwriting any previous stub of the same name. Not atomic: a crash
// mid-write leaves a partial file.
func WritePost(dir string, ctx PostContext, content string) (string, error) {
	name := fmt.Sprintf("%s-%s.md", ctx.UploadAt.Format(postStampFormat), ctx.Title)
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", IOError(path, err)
	}
	return path, nil
}
