// Package roleprovider is the static catalog of open roles. It is the only
// source of truth for valid role slugs and for the role-specific form
// fields an application may carry.
package roleprovider

type FormField struct {
	ID       string   `json:"id"`
	Label    string   `json:"label"`
	Type     string   `json:"type"` // text, textarea, select, radio, file
	Options  []string `json:"options,omitempty"`
	Required bool     `json:"required"`
}

type CareerRole struct {
	ID               string      `json:"id"`
	Slug             string      `json:"slug"`
	Title            string      `json:"title"`
	Type             string      `json:"type"`
	Location         string      `json:"location"`
	Commitment       string      `json:"commitment"`
	ShortDescription string      `json:"shortDescription"`
	About            string      `json:"about"`
	Responsibilities []string    `json:"responsibilities"`
	Requirements     []string    `json:"requirements"`
	Benefits         []string    `json:"benefits"`
	Culture          []string    `json:"culture"`
	FormFields       []FormField `json:"formFields"`
}

type Provider interface {
	List() []CareerRole
	GetBySlug(slug string) (CareerRole, bool)
}

var Instance Provider

func NewHandler() {
	Instance = &impl{roles: roles}
}

type impl struct {
	roles []CareerRole
}

func (i impl) List() []CareerRole {
	return i.roles
}

func (i impl) GetBySlug(slug string) (CareerRole, bool) {
	for _, role := range i.roles {
		if role.Slug == slug {
			return role, true
		}
	}
	return CareerRole{}, false
}
