package catalog

// Job is a single job posting as materialized by the acquisition layer.
// All free-text fields may be empty; Priority is 0 when the source did not
// declare one.
type Job struct {
	ID              string `json:"id,omitempty"`
	Title           string `json:"title,omitempty"`
	Location        string `json:"location,omitempty"`
	City            string `json:"city,omitempty"`
	Company         string `json:"company,omitempty"`
	Agency          string `json:"agency,omitempty"`
	FunctionalArea  string `json:"functional_area,omitempty"`
	Clearance       string `json:"clearance,omitempty"`
	DeclaredProgram string `json:"program,omitempty"`
	DomainRelevant  bool   `json:"domain_relevant,omitempty"`
	Priority        int    `json:"priority,omitempty"`
	URL             string `json:"url,omitempty"`
}

type Jobs struct {
	Items []*Job
}

func (j *Jobs) Len() int {
	if j == nil {
		return 0
	}
	return len(j.Items)
}

func (j *Jobs) FindByID(id string) *Job {
	for _, job := range j.Items {
		if job.ID == id {
			return job
		}
	}
	return nil
}
