package catalog

// Contact is a known person relevant to BD outreach. Tier ranks seniority
// from 1 (most senior) to 6 (least senior); 0 means unknown. NextOutreach is
// the raw source date string.
type Contact struct {
	ID           string `json:"id,omitempty"`
	Name         string `json:"name,omitempty"`
	Title        string `json:"title,omitempty"`
	Company      string `json:"company,omitempty"`
	Program      string `json:"program,omitempty"`
	Tier         int    `json:"tier,omitempty"`
	BDPriority   string `json:"bd_priority,omitempty"`
	Relationship string `json:"relationship,omitempty"`
	NextOutreach string `json:"next_outreach,omitempty"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	LinkedIn     string `json:"linkedin,omitempty"`
}

type Contacts struct {
	Items []*Contact
}

func (c *Contacts) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Items)
}

func (c *Contacts) FindByID(id string) *Contact {
	for _, contact := range c.Items {
		if contact.ID == id {
			return contact
		}
	}
	return nil
}
