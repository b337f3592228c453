package ui

import (
	"strings"
	"testing"
)

func TestWrapText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		width    int
		expected string
	}{
		{"short text within width", "hello world", 20, "hello world"},
		{"long text needs wrap", "make the primary button larger and rounder", 20, "make the primary\nbutton larger and\nrounder"},
		{"zero width returns original", "hello world", 0, "hello world"},
		{"negative width returns original", "hello world", -1, "hello world"},
		{"empty string", "", 20, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := wrapText(tt.text, tt.width)
			if result != tt.expected {
				t.Errorf("wrapText(%q, %d) = %q, want %q", tt.text, tt.width, result, tt.expected)
			}
		})
	}
}

func TestHangingIndent(t *testing.T) {
	got := hangingIndent("one two three four", 12, 4)
	want := "one two\n    three\n    four"
	if got != want {
		t.Errorf("hangingIndent() = %q, want %q", got, want)
	}
}

func TestRenderMarkdownLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"h1 header", "# Header One", []string{"Header One"}},
		{"h2 header", "## Header Two", []string{"Header Two"}},
		{"h3 header", "### Header Three", []string{"Header Three"}},
		{"horizontal rule dash", "---", []string{"─"}},
		{"horizontal rule asterisk", "***", []string{"─"}},
		{"horizontal rule underscore", "___", []string{"─"}},
		{"blockquote", "> This is a quote", []string{"This is a quote"}},
		{"unordered list dash", "- List item", []string{"•", "List item"}},
		{"unordered list asterisk", "* List item", []string{"•", "List item"}},
		{"numbered list", "1. First item", []string{"1.", "First item"}},
		{"regular text", "This is regular text", []string{"This is regular text"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := stripANSI(renderMarkdownLine(tt.line, 80))
			for _, w := range tt.want {
				if !strings.Contains(result, w) {
					t.Errorf("renderMarkdownLine(%q) = %q, want it to contain %q", tt.line, result, w)
				}
			}
		})
	}
}

func TestRenderMarkdownLine_HeaderMarkersRemoved(t *testing.T) {
	result := stripANSI(renderMarkdownLine("## Variants", 80))
	if strings.Contains(result, "#") {
		t.Errorf("header markers should be stripped, got %q", result)
	}
}

func TestRenderInlineMarkdown(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    string
		notWant string
	}{
		{"bold text", "This is **bold** text", "bold", "**"},
		{"inline code", "Use `variant=\"ghost\"` here", `variant="ghost"`, "`"},
		{"italic", "an _outline_ button", "outline", "_outline_"},
		{"snake_case untouched", "set time_slot_heading", "time_slot_heading", ""},
		{"link", "See [docs](https://example.com)", "docs", "]("},
		{"plain text unchanged", "Just plain text", "Just plain text", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := stripANSI(renderInlineMarkdown(tt.line))
			if !strings.Contains(result, tt.want) {
				t.Errorf("renderInlineMarkdown(%q) = %q, want it to contain %q", tt.line, result, tt.want)
			}
			if tt.notWant != "" && strings.Contains(result, tt.notWant) {
				t.Errorf("renderInlineMarkdown(%q) = %q, should not contain %q", tt.line, result, tt.notWant)
			}
		})
	}
}

func TestRenderMarkdown(t *testing.T) {
	tests := []struct {
		name    string
		content string
		width   int
		want    []string
	}{
		{"simple text", "Hello world", 80, []string{"Hello world"}},
		{"code block", "```go\nfunc main() {}\n```", 80, []string{"main"}},
		{"mixed content", "# Title\n\nSome text\n\n```tsx\n<Button variant=\"ghost\" />\n```\n\nMore text", 80, []string{"Title", "Button", "More text"}},
		{"zero width uses default", "Test content", 0, []string{"Test content"}},
		{"unclosed code block", "```go\nsome code", 80, []string{"code"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := stripANSI(RenderMarkdown(tt.content, tt.width))
			for _, w := range tt.want {
				if !strings.Contains(result, w) {
					t.Errorf("RenderMarkdown(%q) = %q, want it to contain %q", tt.content, result, w)
				}
			}
		})
	}
}

func TestHighlightCode_UnknownLanguage(t *testing.T) {
	result := stripANSI(HighlightCode("plain words", "no-such-language"))
	if result != "plain words" {
		t.Errorf("HighlightCode() = %q, want the code back unchanged", result)
	}
}
