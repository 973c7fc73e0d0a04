package database

import "strings"

// Kind is the statement shape that decides which bookkeeping a statement refreshes.
type Kind int

const (
	// KindOther statements refresh the affected row count.
	KindOther Kind = iota
	// KindSelect statements produce rows and refresh the row count.
	KindSelect
	// KindInsert statements refresh the insert id and the affected row count.
	KindInsert
	// KindRows are row-producing statements other than SELECT. They report
	// the number of returned rows as affected rows.
	KindRows
)

func (k Kind) String() string {
	switch k {
	case KindSelect:
		return "select"
	case KindInsert:
		return "insert"
	case KindRows:
		return "rows"
	default:
		return "other"
	}
}

// producesRows reports whether the statement is sent on the query path.
func (k Kind) producesRows() bool {
	return k == KindSelect || k == KindRows
}

var rowKeywords = []string{"SHOW", "DESCRIBE", "DESC", "EXPLAIN"}

// Classify returns the shape of a statement from its leading keyword.
//
// The match is a case-insensitive prefix match on the text as submitted and
// needs a character other than a newline right after the keyword. Leading
// whitespace or comments make the statement KindOther. The shape only picks
// the bookkeeping, see returnsRows for how the statement is sent.
func Classify(statement string) Kind {
	upper := strings.ToUpper(statement)

	switch {
	case hasKeyword(upper, "SELECT"):
		return KindSelect
	case hasKeyword(upper, "INSERT"):
		return KindInsert
	}

	for _, keyword := range rowKeywords {
		if hasKeyword(upper, keyword) {
			return KindRows
		}
	}

	return KindOther
}

func hasKeyword(upper, keyword string) bool {
	return len(upper) > len(keyword) &&
		strings.HasPrefix(upper, keyword) &&
		upper[len(keyword)] != '\n'
}

var rowStatements = []string{
	"SELECT", "WITH", "VALUES", "TABLE",
	"SHOW", "DESCRIBE", "DESC", "EXPLAIN",
}

// returnsRows reports whether the statement may produce a result set. Leading
// whitespace, comments and opening parentheses are skipped, so it also holds
// for statements Classify files as KindOther.
func returnsRows(statement string) bool {
	text := skipPreamble(statement)
	if strings.HasPrefix(text, "(") {
		return true
	}

	for _, keyword := range rowStatements {
		if len(text) < len(keyword) || !strings.EqualFold(text[:len(keyword)], keyword) {
			continue
		}
		if len(text) == len(keyword) || !isWordByte(text[len(keyword)]) {
			return true
		}
	}

	return false
}

// skipPreamble drops leading whitespace and SQL comments.
func skipPreamble(text string) string {
	for {
		text = strings.TrimLeft(text, " \t\r\n\f\v")

		switch {
		case strings.HasPrefix(text, "--"), strings.HasPrefix(text, "#"):
			end := strings.IndexByte(text, '\n')
			if end < 0 {
				return ""
			}
			text = text[end+1:]
		case strings.HasPrefix(text, "/*"):
			end := strings.Index(text[2:], "*/")
			if end < 0 {
				return ""
			}
			text = text[end+4:]
		default:
			return text
		}
	}
}

func isWordByte(b byte) bool {
	return b == '_' ||
		('0' <= b && b <= '9') ||
		('a' <= b && b <= 'z') ||
		('A' <= b && b <= 'Z')
}
