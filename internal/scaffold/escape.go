package scaffold

import "strings"

// Catalog strings are interpolated into three kinds of target text. Each kind
// gets exactly one escaping function, applied at render time rather than at
// individual call sites, so a description containing a quote or an ampersand
// can never produce syntactically invalid output.

// csharpStringEscaper escapes text for use inside a C# string literal.
var csharpStringEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// escapeCSharpString escapes text destined for a C# double-quoted literal.
func escapeCSharpString(s string) string {
	return csharpStringEscaper.Replace(s)
}

// escapeCSharpComment neutralizes text destined for a C# line or doc comment
// by stripping newlines, which would otherwise terminate the comment.
func escapeCSharpComment(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", " ")
}

// xmlEscaper escapes text for use in XML element content (.csproj).
var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// escapeXML escapes text destined for .csproj element content.
func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}

// escapeMarkdown passes text through unchanged. Markdown output renders
// catalog text verbatim; the function exists so every kind routes through
// a named escaper.
func escapeMarkdown(s string) string {
	return s
}
