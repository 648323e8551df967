package models

import "time"

// Role identifies whether an account belongs to a current student or an alumnus.
type Role string

const (
	RoleStudent Role = "student"
	RoleAlumni  Role = "alumni"
)

// Visibility controls who may see a profile or its contact details.
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityCollege Visibility = "college"
	VisibilityFriends Visibility = "friends"
)

// User is a directory account. Collection fields may be nil in records stored
// before the field existed; ApplyDefaults backfills them on load.
type User struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Role       Role      `json:"role"` // student, alumni
	College    string    `json:"college"`
	Department string    `json:"department"`
	Batch      string    `json:"batch"`
	Avatar     string    `json:"avatar,omitempty"`
	Bio        string    `json:"bio,omitempty"`
	IsVerified bool      `json:"isVerified"`
	JoinedAt   time.Time `json:"joinedAt"`

	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	Website  string `json:"website,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Twitter  string `json:"twitter,omitempty"`

	Skills       []string `json:"skills"`
	Interests    []string `json:"interests"`
	Achievements []string `json:"achievements"`
	Languages    []string `json:"languages"`

	CurrentPosition string `json:"currentPosition,omitempty"`
	Company         string `json:"company,omitempty"`
	Experience      string `json:"experience,omitempty"`
	ResumeURL       string `json:"resumeUrl,omitempty"`
	PortfolioURL    string `json:"portfolioUrl,omitempty"`

	Followers []string `json:"followers"`
	Following []string `json:"following"`
	Friends   []string `json:"friends"`

	ProfileVisibility Visibility `json:"profileVisibility"`
	ContactVisibility Visibility `json:"contactVisibility"`
}

// ApplyDefaults backfills fields added to the User shape after a record was
// stored: collection fields become empty slices and visibility fields fall
// back to college-only. A defaulted user is always fully shaped.
func (u *User) ApplyDefaults() {
	if u.Skills == nil {
		u.Skills = []string{}
	}
	if u.Interests == nil {
		u.Interests = []string{}
	}
	if u.Achievements == nil {
		u.Achievements = []string{}
	}
	if u.Languages == nil {
		u.Languages = []string{}
	}
	if u.Followers == nil {
		u.Followers = []string{}
	}
	if u.Following == nil {
		u.Following = []string{}
	}
	if u.Friends == nil {
		u.Friends = []string{}
	}
	if u.ProfileVisibility == "" {
		u.ProfileVisibility = VisibilityCollege
	}
	if u.ContactVisibility == "" {
		u.ContactVisibility = VisibilityCollege
	}
}

// Ref returns the denormalized snapshot other records keep of this user.
func (u *User) Ref() *UserRef {
	return &UserRef{ID: u.ID, Name: u.Name, Avatar: u.Avatar}
}

// SignupRequest defines the fields collected by the signup flow.
type SignupRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Name       string `json:"name" validate:"required,min=2,max=50"`
	Role       Role   `json:"role" validate:"required,oneof=student alumni"`
	College    string `json:"college" validate:"required"`
	Department string `json:"department" validate:"required"`
	Batch      string `json:"batch" validate:"required"`
	Bio        string `json:"bio,omitempty" validate:"omitempty,max=500"`
}

// ProfileUpdate is a partial update merged into the active session. Nil
// fields are left untouched.
type ProfileUpdate struct {
	Name              *string
	Bio               *string
	Avatar            *string
	Phone             *string
	Location          *string
	Website           *string
	LinkedIn          *string
	GitHub            *string
	Twitter           *string
	Skills            *[]string
	Interests         *[]string
	CurrentPosition   *string
	Company           *string
	Experience        *string
	ProfileVisibility *Visibility
	ContactVisibility *Visibility
}

// Merge applies the non-nil fields of p.
func (u *User) Merge(p ProfileUpdate) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Bio != nil {
		u.Bio = *p.Bio
	}
	if p.Avatar != nil {
		u.Avatar = *p.Avatar
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Location != nil {
		u.Location = *p.Location
	}
	if p.Website != nil {
		u.Website = *p.Website
	}
	if p.LinkedIn != nil {
		u.LinkedIn = *p.LinkedIn
	}
	if p.GitHub != nil {
		u.GitHub = *p.GitHub
	}
	if p.Twitter != nil {
		u.Twitter = *p.Twitter
	}
	if p.Skills != nil {
		u.Skills = *p.Skills
	}
	if p.Interests != nil {
		u.Interests = *p.Interests
	}
	if p.CurrentPosition != nil {
		u.CurrentPosition = *p.CurrentPosition
	}
	if p.Company != nil {
		u.Company = *p.Company
	}
	if p.Experience != nil {
		u.Experience = *p.Experience
	}
	if p.ProfileVisibility != nil {
		u.ProfileVisibility = *p.ProfileVisibility
	}
	if p.ContactVisibility != nil {
		u.ContactVisibility = *p.ContactVisibility
	}
}
