package catalog

// Program is a funded contract or work effort jobs and contacts can belong to.
// RecompeteDate is kept as the raw source string; consumers parse it and treat
// unparsable values as "no recompete known".
type Program struct {
	ID                 string   `json:"id,omitempty"`
	Name               string   `json:"name,omitempty"`
	Acronym            string   `json:"acronym,omitempty"`
	AgencyOwner        string   `json:"agency_owner,omitempty"`
	PriorityBand       string   `json:"priority_band,omitempty"`
	RequiredClearances []string `json:"required_clearances,omitempty"`
	KeyLocations       string   `json:"key_locations,omitempty"`
	HiringVelocity     string   `json:"hiring_velocity,omitempty"`
	RecompeteDate      string   `json:"recompete_date,omitempty"`
	ProgramType        string   `json:"program_type,omitempty"`
}

type Programs struct {
	Items []*Program
}

func (p *Programs) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Items)
}

func (p *Programs) FindByID(id string) *Program {
	for _, program := range p.Items {
		if program.ID == id {
			return program
		}
	}
	return nil
}

func (p *Programs) FindByName(name string) *Program {
	for _, program := range p.Items {
		if program.Name == name {
			return program
		}
	}
	return nil
}
