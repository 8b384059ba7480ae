package decode

import "strings"

// frontmatterDelimiter is the line that opens and closes a frontmatter block.
const frontmatterDelimiter = "---"

// Frontmatter is the metadata block at the head of a Markdown file.
type Frontmatter struct {
	Text   string // text between the delimiter lines
	Body   string // text after the closing delimiter line
	Closed bool   // false when the block never closes
}

// SplitFrontmatter splits a Markdown document into its frontmatter and body.
//
// It reports false unless the first line is a delimiter line ("---", with
// optional trailing whitespace). The block ends at the next delimiter line.
// A block that never closes is still returned: everything after the opening
// line becomes Text, Body is empty and Closed is false. Hook files in the
// wild rely on this.
func SplitFrontmatter(content string) (Frontmatter, bool) {
	content = strings.TrimPrefix(content, "\ufeff")
	first, rest, _ := strings.Cut(content, "\n")
	if !isDelimiter(first) {
		return Frontmatter{}, false
	}

	offset := 0
	for {
		line, after, more := strings.Cut(rest[offset:], "\n")
		if isDelimiter(line) {
			fm := Frontmatter{Text: rest[:offset], Closed: true}
			if more {
				fm.Body = after
			}
			return fm, true
		}
		if !more {
			break
		}
		offset += len(line) + 1
	}
	return Frontmatter{Text: rest}, true
}

func isDelimiter(line string) bool {
	return strings.TrimRight(line, " \t\r") == frontmatterDelimiter
}

// ScanKeys is a line-oriented `key: value` reader for simple frontmatter.
// It returns the first value found for each requested key. Values are
// trimmed and lose one pair of matching surrounding quotes. A key with no
// value maps to "". Everything after the first colon belongs to the value,
// so "allowed-tools: Bash(git:*)" keeps its inner colon.
func ScanKeys(text string, keys ...string) map[string]string {
	wanted := make(map[string]bool, len(keys))
	for _, k := range keys {
		wanted[k] = true
	}

	found := make(map[string]string, len(keys))
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if !wanted[key] {
			continue
		}
		if _, seen := found[key]; seen {
			continue
		}
		found[key] = unquote(strings.TrimSpace(value))
	}
	return found
}

func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
