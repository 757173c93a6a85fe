package service

import (
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	gtext "github.com/yuin/goldmark/text"

	"voicenote/internal/storage"
)

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// formatNote renders the single text block appended to the destination:
// title, plain-text content, and a human-readable sync timestamp.
func formatNote(note *storage.Note, syncedAt time.Time) string {
	var b strings.Builder

	title := strings.TrimSpace(note.Title)
	if title == "" {
		title = "Untitled note"
	}
	b.WriteString(title)
	b.WriteString("\n\n")

	if content := plainText(note.Content); content != "" {
		b.WriteString(content)
		b.WriteString("\n\n")
	}

	b.WriteString("Synced ")
	b.WriteString(syncedAt.Format("Jan 2, 2006 at 3:04 PM"))

	return b.String()
}

// plainText strips markdown structure from note content by walking the
// parsed AST and keeping only text nodes. Notes arrive as markdown but the
// remote block carries plain text.
func plainText(source string) string {
	src := []byte(source)
	doc := markdown.Parser().Parse(gtext.NewReader(src))

	var buf strings.Builder
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch node := n.(type) {
		case *ast.Text:
			if entering {
				buf.Write(node.Segment.Value(src))
				if node.SoftLineBreak() || node.HardLineBreak() {
					buf.WriteByte('\n')
				}
			}
		case *ast.String:
			if entering {
				buf.Write(node.Value)
			}
		default:
			if !entering && n.Type() == ast.TypeBlock && n.Kind() != ast.KindDocument {
				buf.WriteString("\n\n")
			}
		}
		return ast.WalkContinue, nil
	})

	out := buf.String()
	for strings.Contains(out, "\n\n\n") {
		out = strings.ReplaceAll(out, "\n\n\n", "\n\n")
	}
	return strings.TrimSpace(out)
}
