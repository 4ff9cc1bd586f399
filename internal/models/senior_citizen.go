package models

import "time"

// SeniorCitizen is the wide, flat registry record. Fields mirror the
// registration form one-to-one; there are no sub-entities.
type SeniorCitizen struct {
	ID         int64  `json:"id"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	MiddleName string `json:"middleName"`
	Suffix     string `json:"suffix"`

	Age         int        `json:"age"`
	Gender      string     `json:"gender"`
	Birthdate   *time.Time `json:"birthdate"`
	CivilStatus string     `json:"civilStatus"`
	Religion    string     `json:"religion"`
	BloodType   string     `json:"bloodType"`

	HouseNumberStreet string `json:"houseNumberStreet"`
	Barangay          string `json:"barangay"`
	Municipality      string `json:"municipality"`
	Province          string `json:"province"`
	ZipCode           string `json:"zipCode"`

	MobileNumber    string `json:"mobileNumber"`
	TelephoneNumber string `json:"telephoneNumber"`
	EmailAddress    string `json:"emailAddress"`

	ValidIDType       string `json:"validIdType"`
	ValidIDNumber     string `json:"validIdNumber"`
	PhilSysID         string `json:"philSysId"`
	SSSNumber         string `json:"sssNumber"`
	GSISNumber        string `json:"gsisNumber"`
	PhilhealthNumber  string `json:"philhealthNumber"`
	TINNumber         string `json:"tinNumber"`

	EmploymentStatus string  `json:"employmentStatus"`
	Occupation       string  `json:"occupation"`
	HighestEducation string  `json:"highestEducation"`
	Classification   string  `json:"classification"`
	MonthlyPension   float64 `json:"monthlyPension"`

	EmergencyContactName         string `json:"emergencyContactName"`
	EmergencyContactRelationship string `json:"emergencyContactRelationship"`
	EmergencyContactNumber       string `json:"emergencyContactNumber"`

	HealthStatus string `json:"healthStatus"`
	HealthNotes  string `json:"healthNotes"`

	CreatedAt time.Time `json:"created_at"`
}
