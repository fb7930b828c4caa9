package profile

import (
	"context"

	"github.com/central-adventures/trips/internal/auth"
	"github.com/central-adventures/trips/internal/locations"
	"github.com/central-adventures/trips/internal/models"
	"github.com/central-adventures/trips/internal/storage"
)

const (
	CountySelectID       = "editCounty"
	ConstituencySelectID = "editConstituency"
)

// Form is the edit-profile form, keyed by element id. It has no password control.
type Form struct {
	FirstName    string `json:"editFirstName" required:"false"`
	LastName     string `json:"editLastName" required:"false"`
	Username     string `json:"editUsername" required:"false"`
	Age          string `json:"editAge" required:"false"`
	Email        string `json:"editEmail" required:"false"`
	Bio          string `json:"editBio" required:"false"`
	ContactInfo  string `json:"editContactInfo" required:"false"`
	County       string `json:"editCounty" required:"false"`
	Constituency string `json:"editConstituency" required:"false"`
	ImagePreview string `json:"editImagePreview" required:"false"`
}

// Prefill is the edit page state built from the stored record.
type Prefill struct {
	Found          bool                `json:"found"`
	Form           Form                `json:"form"`
	Counties       *locations.Selector `json:"counties"`
	Constituencies *locations.Selector `json:"constituencies"`
}

type Editor struct {
	dataset *locations.Dataset
}

func NewEditor(dataset *locations.Dataset) *Editor {
	return &Editor{dataset: dataset}
}

// Load copies the stored record into the form. A stored county is selected
// first and the constituency is set once the cascade has rebuilt its options.
func (e *Editor) Load(ctx context.Context, store storage.LocalStorage) (*Prefill, error) {
	cascade := locations.NewCascade(e.dataset, CountySelectID, ConstituencySelectID)
	p := &Prefill{Counties: cascade.Region, Constituencies: cascade.SubRegion}

	user, err := auth.LoadUser(ctx, store)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return p, nil
	}

	p.Found = true
	p.Form = Form{
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Username:     user.Username,
		Age:          user.Age,
		Email:        user.Email,
		Bio:          user.Bio,
		ContactInfo:  user.ContactInfo,
		ImagePreview: user.ProfilePicture,
	}

	if user.County != "" {
		cascade.SelectRegion(user.County)
		p.Form.County = user.County
		if user.Constituency != "" {
			cascade.SubRegion.Select(user.Constituency)
			p.Form.Constituency = user.Constituency
		}
	}

	return p, nil
}

// Save rebuilds the whole record from the form, keeping the stored password.
func (e *Editor) Save(ctx context.Context, store storage.LocalStorage, form Form) (models.Notice, error) {
	var password string
	current, err := auth.LoadUser(ctx, store)
	if err != nil {
		return models.Notice{}, err
	}
	if current != nil {
		password = current.Password
	}

	updated := models.UserRecord{
		FirstName:      form.FirstName,
		LastName:       form.LastName,
		Username:       form.Username,
		Age:            form.Age,
		Email:          form.Email,
		Password:       password,
		County:         form.County,
		Constituency:   form.Constituency,
		Bio:            form.Bio,
		ContactInfo:    form.ContactInfo,
		ProfilePicture: form.ImagePreview,
	}
	if err := auth.SaveUser(ctx, store, updated); err != nil {
		return models.Notice{}, err
	}

	return models.Notice{
		Kind:        models.NoticeSuccess,
		Title:       "Profile Updated!",
		Message:     "Your profile has been updated successfully.",
		ConfirmText: "Continue",
		Redirect:    auth.DestinationsPage,
	}, nil
}
