package autolink

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// voidElements have no closing tag in HTML and never go on the open-tag stack.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// checkWellFormed verifies that every non-void tag in the fragment is closed
// in order. The generator would rather skip linking a page than let the
// rewrite run over markup the parser has to guess its way through.
func checkWellFormed(content string) error {
	z := html.NewTokenizer(strings.NewReader(content))
	var stack []string

	for {
		switch z.Next() {
		case html.ErrorToken:
			if z.Err() == io.EOF {
				if len(stack) > 0 {
					return &MalformedContentError{
						Message: fmt.Sprintf("unclosed <%s> tag", stack[len(stack)-1]),
					}
				}
				return nil
			}
			return &MalformedContentError{Message: "tokenizer failure", Cause: z.Err()}

		case html.StartTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if !voidElements[tag] {
				stack = append(stack, tag)
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if len(stack) == 0 {
				return &MalformedContentError{Message: fmt.Sprintf("unexpected closing </%s> tag", tag)}
			}
			if stack[len(stack)-1] != tag {
				return &MalformedContentError{
					Message: fmt.Sprintf("mis-nested tags: expected </%s>, found </%s>", stack[len(stack)-1], tag),
				}
			}
			stack = stack[:len(stack)-1]
		}
	}
}
