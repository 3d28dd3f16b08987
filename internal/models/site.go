package models

// Site holds the non-project content of the home page
type Site struct {
	Profile     Profile      `json:"profile"`
	Highlights  []Highlight  `json:"highlights"`
	Testimonial *Testimonial `json:"testimonial,omitempty"`
	Experience  []Experience `json:"experience"`
}

// Profile is the owner's biography and contact details
type Profile struct {
	Name      string   `json:"name"`
	Initials  string   `json:"initials"`
	Headline  string   `json:"headline"`
	Intro     string   `json:"intro"`
	About     []string `json:"about"`
	Portrait  string   `json:"portrait,omitempty"`
	Email     string   `json:"email"`
	GitHub    string   `json:"github,omitempty"`
	LinkedIn  string   `json:"linkedin,omitempty"`
	Upwork    string   `json:"upwork,omitempty"`
	Copyright string   `json:"copyright"`
}

// Highlight is a freelance badge such as "100% Job Success"
type Highlight struct {
	Value   int    `json:"value,omitempty"`
	Suffix  string `json:"suffix,omitempty"`
	Label   string `json:"label"`
	Caption string `json:"caption"`
}

// Testimonial is a client quote shown under the highlights
type Testimonial struct {
	Quote  string `json:"quote"`
	Author string `json:"author"`
	Rating int    `json:"rating"`
}

// Experience is a single work history entry
type Experience struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	Period      string `json:"period"`
	Description string `json:"description"`
}

// Stars returns a slice sized to the rating, for template ranges
func (t Testimonial) Stars() []struct{} {
	if t.Rating <= 0 {
		return nil
	}
	return make([]struct{}, t.Rating)
}
