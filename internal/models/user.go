package models

// UserRecord is the single user kept in a client's local storage under the userData key.
// Every field is the raw form value; age stays a string as submitted.
type UserRecord struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Username       string `json:"username"`
	Age            string `json:"age"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	County         string `json:"county"`
	Constituency   string `json:"constituency"`
	Bio            string `json:"bio"`
	ContactInfo    string `json:"contactInfo"`
	ProfilePicture string `json:"profilePicture"` // preview markup, e.g. <img src="data:...">
}
