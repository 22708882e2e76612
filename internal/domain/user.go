package domain

// UserRecord represents the single registered user of the application.
// At most one record exists at a time; registration overwrites it and
// logout clears it. The password is persisted as plain text as part of
// the stored wire shape; this is a known concern for any real
// deployment.
type UserRecord struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	PhoneExt    string `json:"phoneExt,omitempty"`
	DateOfBirth string `json:"dob,omitempty"`
}

// HasSession reports whether the record denotes a logged-in user.
// Presence of a non-empty email is the sole authentication signal.
func (u *UserRecord) HasSession() bool {
	return u != nil && u.Email != ""
}

// RegistrationFields carries the raw registration input collected by
// the presentation layer before shape checks run.
type RegistrationFields struct {
	FullName        string
	Email           string
	Password        string
	ConfirmPassword string
	PhoneNumber     string
	PhoneExt        string
	DateOfBirth     string
}

// Credentials carries the login input. Only local shape checks apply;
// credentials are never compared against the stored record.
type Credentials struct {
	Email    string
	Password string
}
