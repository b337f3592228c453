package composer

import (
	"mime"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"

	perrors "github.com/Sefyu24/Componentcn/internal/errors"
	"github.com/Sefyu24/Componentcn/internal/logger"
)

// sniffLen is how many bytes http.DetectContentType looks at.
const sniffLen = 512

// DetectMediaType guesses a MIME type from the file name, falling back to the
// content when the extension is unknown.
func DetectMediaType(name string, data []byte) string {
	if ext := strings.ToLower(filepath.Ext(name)); ext != "" {
		if mt := mime.TypeByExtension(ext); mt != "" {
			if base, _, err := mime.ParseMediaType(mt); err == nil {
				return base
			}
			return mt
		}
	}
	if len(data) > sniffLen {
		data = data[:sniffLen]
	}
	mt := http.DetectContentType(data)
	if base, _, err := mime.ParseMediaType(mt); err == nil {
		return base
	}
	return mt
}

// LoadFile reads path into a Payload.
func LoadFile(path string) (Payload, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Payload{}, perrors.FileReadFailed(path, err)
	}
	if info.IsDir() {
		return Payload{}, perrors.NotAFile(path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Payload{}, perrors.FileReadFailed(path, err)
	}
	name := filepath.Base(path)
	return Payload{
		Name:      name,
		MediaType: DetectMediaType(name, data),
		Data:      data,
	}, nil
}

// LoadFiles reads every path, logging and skipping the ones that fail.
func LoadFiles(paths []string) []Payload {
	payloads := make([]Payload, 0, len(paths))
	for _, p := range paths {
		payload, err := LoadFile(p)
		if err != nil {
			logger.Warn("Intake: skipping %s: %v", p, err)
			continue
		}
		payloads = append(payloads, payload)
	}
	return payloads
}

// ExpandGlob resolves a user-typed pattern (with optional leading ~) to the
// regular files it matches, sorted.
func ExpandGlob(pattern string) ([]string, error) {
	pattern = expandHome(strings.TrimSpace(pattern))
	if pattern == "" {
		return nil, perrors.E(perrors.Op("intake.ExpandGlob"), perrors.KindInvalid, "empty pattern")
	}
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, perrors.E(perrors.Op("intake.ExpandGlob"), perrors.KindInvalid, err)
	}
	files := matches[:0]
	for _, m := range matches {
		if isRegularFile(m) {
			files = append(files, m)
		}
	}
	if len(files) == 0 {
		return nil, perrors.E(perrors.Op("intake.ExpandGlob"), perrors.KindNotFound, "no files match "+pattern)
	}
	sort.Strings(files)
	return files, nil
}

// ParseDroppedPaths recognises a bracketed paste produced by dropping files on
// the terminal. Terminals send the paths space-separated, either quoted or
// with backslash-escaped spaces, sometimes as file:// URIs. The paste counts
// as a drop only if it yields at least one token and every token is an
// existing regular file; otherwise ok is false and the paste is plain text.
func ParseDroppedPaths(content string) (paths []string, ok bool) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, false
	}
	tokens, ok := splitPathList(content)
	if !ok || len(tokens) == 0 {
		return nil, false
	}
	for _, tok := range tokens {
		p := tok
		if strings.HasPrefix(p, "file://") {
			u, err := url.Parse(p)
			if err != nil {
				return nil, false
			}
			p = u.Path
		}
		p = expandHome(p)
		if !isRegularFile(p) {
			return nil, false
		}
		paths = append(paths, p)
	}
	return paths, true
}

// splitPathList splits on unquoted whitespace, honouring single quotes,
// double quotes and backslash escapes. ok is false on an unterminated quote.
func splitPathList(s string) (tokens []string, ok bool) {
	var (
		cur     strings.Builder
		inToken bool
		quote   rune
		escaped bool
	)
	for _, r := range s {
		switch {
		case escaped:
			cur.WriteRune(r)
			escaped = false
			inToken = true
		case r == '\\' && quote != '\'':
			escaped = true
			inToken = true
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				cur.WriteRune(r)
			}
		case r == '\'' || r == '"':
			quote = r
			inToken = true
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			if inToken {
				tokens = append(tokens, cur.String())
				cur.Reset()
				inToken = false
			}
		default:
			cur.WriteRune(r)
			inToken = true
		}
	}
	if quote != 0 || escaped {
		return nil, false
	}
	if inToken {
		tokens = append(tokens, cur.String())
	}
	return tokens, true
}

func expandHome(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return p
}

func isRegularFile(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.Mode().IsRegular()
}
