package email_processor

import (
	"io"
	"mime"
	"regexp"
	"strings"

	"github.com/emersion/go-message/charset"

	"github.com/jeff-nasseri/mailharvest/internal/utils"
)

// encodedWordRegexp matches one RFC 2047 encoded word.
var encodedWordRegexp = regexp.MustCompile(`=\?[^?]+\?[BbQq]\?[^?]*\?=`)

// wordDecoder converts every charset go-message knows about. Unknown
// charsets fall through to the raw payload bytes so a bad label never
// fails the whole header.
var wordDecoder = &mime.WordDecoder{
	CharsetReader: func(cs string, input io.Reader) (io.Reader, error) {
		reader, err := charset.Reader(cs, input)
		if err != nil {
			return input, nil
		}
		return reader, nil
	},
}

// DecodeHeader flattens a header value with RFC 2047 encoded words into
// plain UTF-8 text. Decoded words and literal fragments are joined with
// single spaces; a word that cannot be decoded is kept verbatim. Values
// without encoded words pass through unchanged.
func DecodeHeader(raw string) string {
	if raw == "" || !strings.Contains(raw, "=?") {
		return raw
	}

	var fragments []string
	appendLiteral := func(s string) {
		if s = strings.TrimSpace(s); s != "" {
			fragments = append(fragments, s)
		}
	}

	last := 0
	for _, loc := range encodedWordRegexp.FindAllStringIndex(raw, -1) {
		appendLiteral(raw[last:loc[0]])
		fragments = append(fragments, decodeWord(raw[loc[0]:loc[1]]))
		last = loc[1]
	}
	appendLiteral(raw[last:])

	return strings.Join(fragments, " ")
}

func decodeWord(word string) string {
	decoded, err := wordDecoder.Decode(word)
	if err != nil {
		return word
	}
	return utils.SanitizeUTF8(decoded)
}
