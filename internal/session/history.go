// Package session summarizes recorded sessions.
//
// Two layouts exist, tried in this order:
//   - history.jsonl: one JSON object per line, each with a "timestamp"
//     that is either a number or a string
//   - session_history.json (legacy): {"sessions": [{"id": "..", "timestamp": ".."}]}
package session

import (
	"bufio"
	"os"
	"strings"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/claude-list/claude-list/internal/component"
	"github.com/claude-list/claude-list/internal/decode"
	"github.com/claude-list/claude-list/internal/locate"
)

// maxLineSize bounds a single history line.
const maxLineSize = 64 * 1024 * 1024

// Fields of the last legacy session tried for LastSession, in order.
var legacyStampKeys = []string{"id", "timestamp", "time"}

// Summary is a rollup of recorded sessions.
type Summary struct {
	Count       int     `json:"count"`
	LastSession *string `json:"last_session"`
}

// Locate finds the session history under root.
func Locate(root string) locate.Source {
	return locate.First(root,
		locate.File(locate.ItemFile, "history.jsonl"),
		locate.File(locate.LegacyFile, "session_history.json"),
	)
}

// Extract summarizes the located history. An unreadable or malformed
// history counts as no sessions.
func Extract(src locate.Source, log *zap.Logger) Summary {
	switch src.Kind {
	case locate.ItemFile:
		return parseHistory(src.Path, log)
	case locate.LegacyFile:
		return parseLegacy(src.Path, log)
	default:
		return Summary{}
	}
}

// parseHistory counts the lines of history.jsonl that are valid JSON and
// keeps the greatest timestamp seen. Blank lines are ignored.
func parseHistory(path string, log *zap.Logger) Summary {
	log = component.Logger(log)
	f, err := os.Open(path)
	if err != nil {
		if !locate.IsNotExist(err) {
			log.Debug("unreadable file skipped", zap.String("path", path), zap.Error(err))
		}
		return Summary{}
	}
	defer f.Close()

	var (
		sum    Summary
		latest *stamp
		lineNo int
	)
	s := bufio.NewScanner(f)
	s.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for s.Scan() {
		lineNo++
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}
		if !gjson.Valid(line) {
			log.Debug("malformed history line skipped", zap.String("path", path), zap.Int("line", lineNo))
			continue
		}
		sum.Count++

		if ts, ok := stampOf(gjson.Get(line, "timestamp")); ok {
			if latest == nil || ts.after(*latest) {
				latest = &ts
			}
		}
	}
	if err := s.Err(); err != nil {
		log.Debug("history read stopped early", zap.String("path", path), zap.Int("line", lineNo), zap.Error(err))
	}

	if latest != nil {
		sum.LastSession = &latest.text
	}
	return sum
}

// parseLegacy reads session_history.json. The count is the length of the
// sessions array; the last entry names the last session.
func parseLegacy(path string, log *zap.Logger) Summary {
	data, ok := component.ReadFile(log, path)
	if !ok {
		return Summary{}
	}
	obj, err := decode.JSONObject(data)
	if err != nil {
		component.Skipped(log, path, err)
		return Summary{}
	}
	sessions, _ := obj.Array("sessions")
	sum := Summary{Count: len(sessions)}
	if len(sessions) == 0 {
		return sum
	}

	last := gjson.ParseBytes(sessions[len(sessions)-1])
	if !last.IsObject() {
		return sum
	}
	// The first key present decides, even when its value is unusable.
	for _, key := range legacyStampKeys {
		v := last.Get(key)
		if !v.Exists() {
			continue
		}
		if ts, ok := stampOf(v); ok {
			sum.LastSession = &ts.text
		}
		break
	}
	return sum
}

// stamp is a timestamp as it appeared in the file. Numbers keep their
// literal text.
type stamp struct {
	text    string
	num     float64
	numeric bool
}

func stampOf(r gjson.Result) (stamp, bool) {
	switch r.Type {
	case gjson.String:
		return stamp{text: r.Str}, true
	case gjson.Number:
		return stamp{text: r.Raw, num: r.Num, numeric: true}, true
	default:
		return stamp{}, false
	}
}

// after orders two numbers numerically and anything else by text. Ties
// keep the earlier line.
func (s stamp) after(o stamp) bool {
	if s.numeric && o.numeric {
		return s.num > o.num
	}
	return s.text > o.text
}
