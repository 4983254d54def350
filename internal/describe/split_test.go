package describe

import (
	"reflect"
	"testing"
)

func TestSplit(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []Section
	}{
		{
			name: "headings delimit sections",
			in:   "### Benefits\n\nHealthcare and PTO.\n\n### Requirements\n\n* Go\n* SQL\n",
			want: []Section{
				{Heading: "Benefits", Body: "Healthcare and PTO."},
				{Heading: "Requirements", Body: "* Go\n* SQL"},
			},
		},
		{
			name: "text before first heading keeps empty heading",
			in:   "We build engines.\n\n### Benefits\n\nHealthcare.\n",
			want: []Section{
				{Heading: "", Body: "We build engines."},
				{Heading: "Benefits", Body: "Healthcare."},
			},
		},
		{
			name: "no headings yields single section",
			in:   "Just one paragraph of text.\n",
			want: []Section{
				{Heading: "", Body: "Just one paragraph of text."},
			},
		},
		{
			name: "consecutive headings keep empty bodies",
			in:   "### Location\n\n### Benefits\n\nHealthcare.\n",
			want: []Section{
				{Heading: "Location", Body: ""},
				{Heading: "Benefits", Body: "Healthcare."},
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Split(tc.in); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Split(%q) = %#v, want %#v", tc.in, got, tc.want)
			}
		})
	}
}
