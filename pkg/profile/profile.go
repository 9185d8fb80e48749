// Package profile defines the structured record describing the site
// owner, along with stores for loading it.
//
// Exactly one record is active per conversation session. The record is
// loaded once at session start and is read-only from the engine's
// perspective; mutation belongs to whatever system maintains the
// profile document.
package profile

import "strings"

// Record is the single structured document describing the subject.
//
// Absent sections are represented by zero values (nil slices, nil
// degree pointers, empty strings) and must never cause a caller to
// fail; they simply contribute nothing to retrieval or formatting.
type Record struct {
	// Name is the subject's full display name, e.g. "Alex Doe".
	Name string `json:"name"`

	// Summary and Background are free-text narrative sections.
	Summary    string `json:"summary"`
	Background string `json:"background"`

	// Personality is a free-text description of character and values.
	Personality string `json:"personality,omitempty"`

	Education  Education `json:"education"`
	Experience []Role    `json:"experience"`
	Projects   []Project `json:"major_projects"`
	Skills     Skills    `json:"skills"`

	Certifications []Certification `json:"certifications,omitempty"`
	Achievements   []Award         `json:"achievements,omitempty"`

	Goals []string `json:"goals,omitempty"`

	// Likes feeds the interests answer.
	Likes []string `json:"likes,omitempty"`

	Contact Contact `json:"contact"`

	// ResumeURL is handed out verbatim by the send-resume answer.
	ResumeURL string `json:"resume_url"`

	// SchedulerURL is the self-service booking link mentioned by the
	// schedule-meeting answers.
	SchedulerURL string `json:"scheduler_url"`
}

// Contact is the structured contact block.
type Contact struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Website  string `json:"website,omitempty"`
}

// Education holds up to two degree entries. Either may be nil.
type Education struct {
	Masters   *Degree `json:"masters,omitempty"`
	Bachelors *Degree `json:"bachelors,omitempty"`
}

// Degree is a single education entry.
type Degree struct {
	Degree   string   `json:"degree"`
	School   string   `json:"school"`
	Location string   `json:"location,omitempty"`
	Period   string   `json:"period,omitempty"`
	GPA      string   `json:"gpa,omitempty"`
	Courses  []string `json:"courses,omitempty"`
}

// Role is a single work experience entry, most recent first.
type Role struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Client       string   `json:"client,omitempty"`
	Location     string   `json:"location,omitempty"`
	Period       string   `json:"period,omitempty"`
	Description  string   `json:"description,omitempty"`
	Achievements []string `json:"key_achievements,omitempty"`
}

// Project is a single portfolio project entry.
type Project struct {
	Name         string   `json:"name"`
	Period       string   `json:"period,omitempty"`
	Company      string   `json:"company,omitempty"`
	Description  string   `json:"description"`
	Highlights   []string `json:"highlights,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
}

// Skills groups technology names by the four fixed categories the
// answers render.
type Skills struct {
	AIML        []string `json:"ai_ml,omitempty"`
	Frontend    []string `json:"frontend,omitempty"`
	Backend     []string `json:"backend,omitempty"`
	CloudDevOps []string `json:"cloud_devops,omitempty"`
}

// Certification is a named certification with an optional issuer.
type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer,omitempty"`
}

// Award is a recognition entry.
type Award struct {
	Title       string `json:"title"`
	Event       string `json:"event,omitempty"`
	Description string `json:"description,omitempty"`
}

// FirstName returns the lowercased first token of Name. Retrieval uses
// it as the substitution target when normalizing third-person pronouns
// in queries.
func (r *Record) FirstName() string {
	fields := strings.Fields(r.Name)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[0])
}
