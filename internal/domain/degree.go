package domain

import "strings"

// DegreeSet is the set of degree levels a posting mentions. A posting may
// claim several levels at once ("BS/MS required, PhD preferred").
type DegreeSet uint8

const (
	Bachelor DegreeSet = 1 << iota
	Master
	Doctorate
)

func (d DegreeSet) Has(level DegreeSet) bool { return d&level != 0 }

func (d DegreeSet) IsEmpty() bool { return d == 0 }

func (d DegreeSet) String() string {
	if d == 0 {
		return "none"
	}
	var parts []string
	if d.Has(Bachelor) {
		parts = append(parts, "bachelor")
	}
	if d.Has(Master) {
		parts = append(parts, "master")
	}
	if d.Has(Doctorate) {
		parts = append(parts, "doctorate")
	}
	return strings.Join(parts, ",")
}
