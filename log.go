package main

import (
	"fmt"
	"log"
	"unicode"
	"unicode/utf8"

	"codeberg.org/anaseto/gruid/ui"
)

// Logs contains the message log information.
type Logs struct {
	Entries []logEntry // all the log entries
	Index   int        // index of next log entry
}

// logEntry describes a log entry.
type logEntry struct {
	Text  string   // text for entry
	MText string   // text for entry with markup
	Index int      // index of entry in log
	Style logStyle // style
	Dups  int      // number of duplicates of current entry
}

func (e logEntry) String() string {
	s := e.dumpString()
	r := e.Style.Rune()
	if r != 0 {
		s = fmt.Sprintf("@%c%s@N", r, s)
	}
	return s
}

func (e logEntry) dumpString() string {
	s := e.Text
	if e.Dups > 0 {
		s += fmt.Sprintf(" (%d×)", e.Dups+1)
	}
	return s
}

// logStyle describes various logging styles.
type logStyle int

const (
	logNormal  logStyle = iota
	logError            // UI or game error
	logNotable          // something worth noticing
)

// Rune returns the markup @rune corresponding to each log style.
func (st logStyle) Rune() rune {
	var r rune
	switch st {
	case logError:
		r = 'R'
	case logNotable:
		r = 'Y'
	default:
		r = 'N'
	}
	return r
}

// UpperFirst returns a string with its first letter in upper case.
func UpperFirst(s string) string {
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[utf8.RuneLen(r):]
}

func (md *model) Log(s string) {
	e := logEntry{Text: UpperFirst(s), Index: md.logs.Index}
	md.LogEntry(e)
}

func (md *model) LogStyled(s string, style logStyle) {
	e := logEntry{Text: UpperFirst(s), Index: md.logs.Index, Style: style}
	md.LogEntry(e)
}

// LogEntry adds a new log entry to the message log. Repeated messages are
// folded into one entry.
func (md *model) LogEntry(e logEntry) {
	if n := len(md.logs.Entries); n > 0 {
		le := md.logs.Entries[n-1]
		if le.Text == e.Text {
			le.Dups++
			le.MText = le.String()
			md.logs.Entries[n-1] = le
			return
		}
	}
	e.MText = e.String()
	if LogGame {
		log.Printf("gamelog:%d: %v", e.Index, e.dumpString())
	}
	md.logs.Entries = append(md.logs.Entries, e)
	md.logs.Index++
	if len(md.logs.Entries) > 10000 {
		md.logs.Entries = md.logs.Entries[1000:]
	}
}

// DrawLog draws 2 compacted lines of log.
func (md *model) DrawLog() ui.StyledText {
	stt := ui.StyledText{}.WithMarkups(Markups)
	for i := len(md.logs.Entries) - 1; i >= 0; i-- {
		s := md.logs.Entries[i].MText
		if stt.Text() != "" {
			s += " "
		}
		if stt.WithText(s+stt.Text()).Format(UIWidth-1).Size().Y > 2 {
			break
		}
		stt = stt.WithText(s + stt.Text()).Format(UIWidth - 1)
	}
	return stt
}
