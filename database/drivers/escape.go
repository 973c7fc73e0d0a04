package drivers

import "strings"

var quoteDoubling = strings.NewReplacer(`'`, `''`)

// backslashEscaping mirrors the characters the MySQL client library escapes
// in mysql_real_escape_string.
var backslashEscaping = strings.NewReplacer(
	"\x00", `\0`,
	"\n", `\n`,
	"\r", `\r`,
	`\`, `\\`,
	`'`, `\'`,
	`"`, `\"`,
	"\x1a", `\Z`,
)
