package describe

import "strings"

// Section is one heading-delimited chunk of a canonical description.
type Section struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

// Split cuts canonical markdown into sections at level-3 heading lines. Text
// before the first heading becomes a section with an empty heading. Input
// with no headings yields a single such section.
func Split(md string) []Section {
	var (
		sections []Section
		heading  string
		body     []string
	)
	flush := func() {
		text := strings.TrimSpace(strings.Join(body, "\n"))
		if heading != "" || text != "" {
			sections = append(sections, Section{Heading: heading, Body: text})
		}
		body = body[:0]
	}
	for _, line := range strings.Split(md, "\n") {
		if strings.Contains(line, "###") {
			flush()
			heading = strings.TrimSpace(strings.ReplaceAll(line, "###", ""))
			continue
		}
		body = append(body, line)
	}
	flush()
	if sections == nil {
		sections = []Section{{Heading: "", Body: strings.TrimSpace(md)}}
	}
	return sections
}
