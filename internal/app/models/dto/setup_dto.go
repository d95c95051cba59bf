package dto

// SetupStatusResponse reports entity counts for the admin setup screen
type SetupStatusResponse struct {
	Faculties   int64 `json:"faculties"`
	Departments int64 `json:"departments"`
	Users       int64 `json:"users"`
	IsEmpty     bool  `json:"isEmpty"`
}
