package locale

import (
	_ "embed"
	"strings"
)

//go:embed data/words.txt
var wordsSrc string

var words []string

func init() {
	words = strings.Fields(wordsSrc)
}
