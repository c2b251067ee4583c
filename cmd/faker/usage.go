package main

import (
	"bytes"
	"flag"
	"fmt"
	"strings"

	"github.com/kr/text"
)

const usageWidth = 80

// genUsage renders a command's help text: the wrapped header followed
// by every flag with its default and description.
func genUsage(header string, flags *flag.FlagSet) string {
	var buf bytes.Buffer

	buf.WriteString(text.Wrap(dedent(header), usageWidth))
	buf.WriteString("\n\nOptions:\n\n")

	flags.VisitAll(func(f *flag.Flag) {
		fmt.Fprintf(&buf, "  -%s", f.Name)
		if f.DefValue != "" {
			fmt.Fprintf(&buf, " (default: %s)", f.DefValue)
		}
		buf.WriteString("\n")
		buf.WriteString(text.Indent(text.Wrap(f.Usage, usageWidth-4), "    "))
		buf.WriteString("\n")
	})

	return buf.String()
}

func dedent(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.Join(lines, "\n")
}
