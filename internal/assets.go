package internal

import (
	_ "embed"
)

// Assets compiled into the binary. None of these are user-configurable.

//go:embed assets/watermark.png
var watermarkPNG []byte

//go:embed assets/post.md
var postTemplateText string

//go:embed assets/stopwords.txt
var stopWordsText string
