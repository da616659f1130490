// Copyright 2025 The wotdict Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package wotdict

import (
	"fmt"
	"sort"
	"strings"
)

// StyleSheet is the stylesheet written next to each dictionary. The
// class names match those produced by article rendering so users can
// restyle entries without rebuilding.
const StyleSheet = `.dict-origin {
    font-size: smaller;
    font-style: italic;
    padding-bottom: 1em;
}

.dict-definition {}

.dict-backlinks {
    font-size: smaller;
}

.dict-backlinks > dt {
    font-weight: bold;
}

.dict-backlinks > dd {
    font-style: italic;
}

.dict-internal-link {}

.dict-emphasis {}
`

// article renders the entry as an HTML article referencing the
// dictionary's stylesheet.
func (e *Entry) article(basename string) string {
	defs := make([]string, 0, len(e.Definitions))
	for _, d := range e.Definitions {
		defs = append(defs, fmt.Sprintf(
			"<div class=\"dict-origin\">%s</div>\n<div class=\"dict-definition\">%s</div>\n<hr>\n",
			d.Origin, d.HTML,
		))
	}

	groups := make([]string, 0, len(e.Backlinks))
	for _, group := range e.Backlinks {
		var label string
		if len(e.Backlinks) > 1 {
			label = fmt.Sprintf(" (%s)", group.Book)
		}

		names := make([]string, 0, len(group.Names))
		for name := range group.Names {
			names = append(names, name)
		}
		sort.Strings(names)

		dd := make([]string, 0, len(names))
		for _, name := range names {
			dd = append(dd, fmt.Sprintf(`<dd><a href="bword://%s">%s</a></dd>`, name, name))
		}

		groups = append(groups, fmt.Sprintf(
			"<dl class=\"dict-backlinks\">\n<dt>Backlinks%s:</dt>\n%s\n</dl>\n",
			label, strings.Join(dd, "\n"),
		))
	}

	return fmt.Sprintf(
		"<link rel=\"stylesheet\" type=\"text/css\" href=\"%s.css\"/>\n<div>\n%s\n<div>\n%s\n</div>\n</div>\n",
		basename, strings.Join(defs, "\n"), strings.Join(groups, "\n"),
	)
}
