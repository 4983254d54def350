package parse

import (
	"testing"

	"jobsift-engine/internal/domain"
)

func TestDegrees(t *testing.T) {
	cases := []struct {
		text string
		want domain.DegreeSet
	}{
		{"BS/MS required, PhD preferred", domain.Bachelor | domain.Master | domain.Doctorate},
		{"Bachelor's degree in Computer Science", domain.Bachelor},
		{"bachelors or equivalent experience", domain.Bachelor},
		{"B.S. in Engineering or related field", domain.Bachelor},
		{"Master of Science preferred", domain.Master},
		{"MBA a plus", domain.Master},
		{"Ph.D. in Machine Learning", domain.Doctorate},
		{"Doctorate or doctoral candidacy", domain.Doctorate},
		{"Undergraduate degree required", domain.Bachelor},
		{"undergrad coursework in statistics", domain.Bachelor},
		{"BBA or BFA welcome", domain.Bachelor},
		{"four-year degree from an accredited university", domain.Bachelor},
		{"4-year degree required", domain.Bachelor},
		{"degree in physics or similar", domain.Bachelor},
		{"MPH strongly preferred", domain.Master},
		{"advanced degree preferred", domain.Master},
		{"post-graduate training a plus", domain.Master},
		{"JD or MD required", domain.Doctorate},
		{"EdD, DPhil also considered", domain.Doctorate},
		{"No degree needed, just grit", 0},
		{"", 0},
	}
	for _, tc := range cases {
		if got := Degrees(tc.text); got != tc.want {
			t.Errorf("Degrees(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}
