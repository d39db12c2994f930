package email_processor

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/jeff-nasseri/mailharvest/internal/utils"
)

var (
	scriptBlockRegexp = regexp.MustCompile(`(?is)<script.*?>.*?</script>`)
	styleBlockRegexp  = regexp.MustCompile(`(?is)<style.*?>.*?</style>`)
	blockTagRegexp    = regexp.MustCompile(`<(div|p|h\d|br|li|tr)[^>]*?>`)
	numericRefRegexp  = regexp.MustCompile(`&#(\d+);`)
	anyTagRegexp      = regexp.MustCompile(`<[^>]*?>`)
	newlineRunRegexp  = regexp.MustCompile(`\n+`)
)

// htmlEntities is applied sequentially, in this order. An earlier
// substitution may expose a later entity, and that double decode is
// intentional.
var htmlEntities = []struct {
	entity string
	text   string
}{
	{"&nbsp;", " "},
	{"&amp;", "&"},
	{"&lt;", "<"},
	{"&gt;", ">"},
	{"&quot;", `"`},
	{"&#39;", "'"},
	{"&apos;", "'"},
	{"&cent;", "¢"},
	{"&pound;", "£"},
	{"&yen;", "¥"},
	{"&euro;", "€"},
	{"&copy;", "©"},
	{"&reg;", "®"},
}

// HTMLToText strips an HTML fragment down to readable text. The
// pipeline is order-sensitive: script and style blocks go first, block
// tags become newlines, entities are substituted, remaining tags are
// dropped, and whitespace is collapsed last. Idempotent on text that
// contains no < or &.
func HTMLToText(input string) string {
	text := scriptBlockRegexp.ReplaceAllString(input, " ")
	text = styleBlockRegexp.ReplaceAllString(text, " ")

	text = blockTagRegexp.ReplaceAllString(text, "\n")

	for _, entity := range htmlEntities {
		text = strings.ReplaceAll(text, entity.entity, entity.text)
	}

	text = numericRefRegexp.ReplaceAllStringFunc(text, func(ref string) string {
		code, err := strconv.Atoi(ref[2 : len(ref)-1])
		if err != nil || code > utf8.MaxRune {
			return ref
		}
		return string(rune(code))
	})

	text = anyTagRegexp.ReplaceAllString(text, "")

	text = newlineRunRegexp.ReplaceAllString(text, "\n")
	return utils.CollapseWhitespace(text)
}
