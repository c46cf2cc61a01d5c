package models

// FormData is a decoded newsletter subscription form. Both keys must be
// present in the request body; their values are taken as-is.
type FormData struct {
	Email string `form:"email"`
	Name  string `form:"name"`
}

// RequiredFields lists the form keys that must appear in a submission.
var RequiredFields = []string{"email", "name"}
