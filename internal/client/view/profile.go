package view

import (
	"context"
	"fmt"
	"io"

	"github.com/templui/taskboard/internal/model"
)

// Profile shows the current user and an edit form for their names.
type Profile struct {
	api API

	User    *model.PublicUser
	Form    model.ProfileInput
	Error   string
	Success string
}

func NewProfile(api API) *Profile {
	return &Profile{api: api}
}

// Load fetches the user and seeds the form with the current names.
func (p *Profile) Load(ctx context.Context) error {
	user, err := p.api.Profile(ctx)
	if err != nil {
		p.Error = failure("Failed to load profile", err)
		return err
	}
	p.User = user
	p.Form = model.ProfileInput{FirstName: deref(user.FirstName), LastName: deref(user.LastName)}
	p.Error = ""
	return nil
}

func (p *Profile) Save(ctx context.Context) error {
	p.Error = ""
	p.Success = ""

	user, err := p.api.UpdateProfile(ctx, p.Form)
	if err != nil {
		p.Error = failure("Failed to update profile", err)
		return err
	}
	p.User = user
	p.Success = "Profile updated successfully!"
	return nil
}

func (p *Profile) Render(w io.Writer) error {
	if p.Error != "" {
		fmt.Fprintln(w, "error:", p.Error)
	}
	if p.Success != "" {
		fmt.Fprintln(w, p.Success)
	}
	if p.User == nil {
		return nil
	}
	_, err := fmt.Fprintf(w, "Email:      %s\nFirst name: %s\nLast name:  %s\n",
		p.User.Email, deref(p.User.FirstName), deref(p.User.LastName))
	return err
}
