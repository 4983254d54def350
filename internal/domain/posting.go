package domain

import "time"

// Posting is one scraped job listing as handed to the engine by a collector.
// Raw fields are never mutated; everything the engine computes lives in
// Derived and is recomputed from scratch whenever the raw fields change.
type Posting struct {
	ID           string    `json:"id"`
	Site         string    `json:"site"`
	JobURL       string    `json:"job_url"`
	JobURLDirect string    `json:"job_url_direct"`
	Title        string    `json:"title"`
	Company      string    `json:"company"`
	Location     string    `json:"location"`
	DatePosted   time.Time `json:"date_posted"`
	JobType      string    `json:"job_type"`
	IsRemote     bool      `json:"is_remote"`
	Description  string    `json:"description"`

	// Pass-through fields. The engine stores and returns these unchanged.
	SalaryMin       float64 `json:"salary_min,omitempty"`
	SalaryMax       float64 `json:"salary_max,omitempty"`
	SalaryInterval  string  `json:"salary_interval,omitempty"`
	Currency        string  `json:"currency,omitempty"`
	JobLevel        string  `json:"job_level,omitempty"`
	JobFunction     string  `json:"job_function,omitempty"`
	CompanyURL      string  `json:"company_url,omitempty"`
	CompanyIndustry string  `json:"company_industry,omitempty"`
	CompanyLogo     string  `json:"company_logo,omitempty"`

	Derived *Derived `json:"derived,omitempty"`
}

// Derived holds the fields the engine computes from a posting's raw fields.
// A nil Derived means the posting has not been through the pipeline yet.
type Derived struct {
	City            string    `json:"city"`
	State           string    `json:"state"`
	LocationDisplay string    `json:"location_display"`
	Degrees         DegreeSet `json:"degrees"`
	Description     string    `json:"description"`
}

// HasDerived reports whether derived fields have been computed.
func (p Posting) HasDerived() bool { return p.Derived != nil }

// DateString returns the posting date in the archive's column format.
func (p Posting) DateString() string {
	if p.DatePosted.IsZero() {
		return ""
	}
	return p.DatePosted.UTC().Format(time.RFC3339)
}
