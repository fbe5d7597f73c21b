package internal

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// PostRunner generates one markdown stub per image in Dir, prompting for alt
// text on In. The line source is injectable so tests can script the prompts.
type PostRunner struct {
	Dir    string         // directory holding the *.jpg files; stubs land here too
	In     *bufio.Scanner // alt-text line source, usually stdin
	Out    io.Writer      // prompt destination, usually stdout
	Stop   StopWords
	Logger *Logger // optional
}

// Run writes a dated post stub for every *.jpg in Dir, starting the
// Mon/Wed/Fri cadence at start. A failure aborts the remaining files but
// leaves already-written stubs on disk.
func (r *PostRunner) Run(start time.Time) error {
	sched, err := NewSchedule(start)
	if err != nil {
		return err
	}

	files, err := ScanImages(r.Dir)
	if err != nil {
		return err
	}

	for _, file := range files {
		stem := strings.TrimSuffix(file, ".jpg")
		if _, err := strconv.ParseInt(stem, 10, 32); err != nil {
			return InvalidInput("file name must be an integer: %s", file)
		}

		fmt.Fprintf(r.Out, "Enter the alt text for %s: \n", stem)
		desc, err := r.readLine()
		if err != nil {
			return err
		}

		ctx := PostContext{
			Title:             stem,
			SignificantDigits: significantDigits(stem),
			UploadAt:          sched.Current(),
			Description:       desc,
			Tags:              ExtractTags(desc, r.Stop),
		}

		content, err := RenderPost(ctx)
		if err != nil {
			return err
		}
		path, err := WritePost(r.Dir, ctx, content)
		if err != nil {
			return err
		}
		if r.Logger != nil {
			r.Logger.Log("wrote %s (%d tags)", path, len(ctx.Tags))
		}

		sched.Advance()
	}

	return nil
}

// readLine blocks for one line of alt text. A closed or failing source is
// fatal to the run.
func (r *PostRunner) readLine() (string, error) {
	if r.In.Scan() {
		return r.In.Text(), nil
	}
	if err := r.In.Err(); err != nil {
		return "", IOError("stdin", err)
	}
	return "", IOError("stdin", io.EOF)
}

// significantDigits drops the trailing sequence pair from a stem. Stems of
// two characters or fewer have nothing left, giving "".
func significantDigits(stem string) string {
	if len(stem) <= 2 {
		return ""
	}
	return stem[:len(stem)-2]
}
