package models

// Wire types exchanged with the WonderHood backend API. Field names follow
// the backend's camelCase JSON exactly; the frontend never owns these
// records, it only holds transient copies per request.

type Role string

const (
	RoleParent     Role = "parent"
	RoleAdmin      Role = "admin"
	RoleInstructor Role = "instructor"
	RoleVolunteer  Role = "volunteer"
)

type User struct {
	ID          string  `json:"id"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	Email       string  `json:"email"`
	PhoneNumber string  `json:"phoneNumber"`
	Avatar      string  `json:"avatar,omitempty"`
	Address     string  `json:"address"`
	City        string  `json:"city"`
	State       string  `json:"state"`
	ZipCode     string  `json:"zipCode"`
	Role        Role    `json:"role"`
	Children    []Child `json:"children,omitempty"`
}

type Child struct {
	ID                string             `json:"id"`
	FirstName         string             `json:"firstName"`
	LastName          string             `json:"lastName"`
	PreferredName     string             `json:"preferredName,omitempty"`
	Homeschool        bool               `json:"homeschool"`
	Grade             *int               `json:"grade,omitempty"` // -1 Pre-K, 0 Kindergarten
	Birthday          string             `json:"birthday"`        // YYYY-MM-DD
	AllergiesMedical  string             `json:"allergiesMedical,omitempty"`
	Notes             string             `json:"notes,omitempty"`
	PhotoConsent      bool               `json:"photoConsent"`
	Waiver            bool               `json:"waiver"`
	EmergencyContacts []EmergencyContact `json:"emergencyContacts"`
}

type EmergencyContact struct {
	ID           string `json:"id,omitempty"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Relationship string `json:"relationship"`
	PhoneNumber  string `json:"phoneNumber"`
}

type Activity struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Events      []Event `json:"events,omitempty"`
}

type Event struct {
	ID           string   `json:"id"`
	ActivityID   string   `json:"activityId"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Date         string   `json:"date"`
	Image        string   `json:"image"`
	Participants int      `json:"participants"`
	Limit        int      `json:"limit"`
	City         string   `json:"city"`
	State        string   `json:"state"`
	Address      string   `json:"address"`
	ZipCode      string   `json:"zipCode"`
	Latitude     float64  `json:"latitude"`
	Longitude    float64  `json:"longitude"`
	UserIDs      []string `json:"userId"`
	ChildIDs     []string `json:"childIds"`
}

// Venue values accepted by the backend for volunteer opportunities.
var VenueOptions = []string{"Indoors", "Outdoors", "Online"}

type Opportunity struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Venue           []string `json:"venue"`
	Duties          []string `json:"duties"`
	Skills          []string `json:"skills"`
	Time            string   `json:"time"`
	Requirements    []string `json:"requirements"`
	Tags            []string `json:"tags,omitempty"`
	MinAge          int      `json:"minAge"`
	BgCheckRequired bool     `json:"bgCheckRequired"`
	CreatedAt       string   `json:"createdAt,omitempty"`
	UpdatedAt       string   `json:"updatedAt,omitempty"`
}

type VolunteerCreate struct {
	FirstName              string   `json:"firstName"`
	LastName               string   `json:"lastName"`
	Email                  string   `json:"email,omitempty"`
	PhoneNumber            string   `json:"phoneNumber,omitempty"`
	Cities                 []string `json:"cities"`
	DaysAvail              []string `json:"daysAvail"`
	TimesAvail             []string `json:"timesAvail"`
	Skills                 []string `json:"skills"`
	Bio                    string   `json:"bio,omitempty"`
	PhotoConsent           bool     `json:"photoConsent"`
	BackgroundCheckConsent bool     `json:"backgroundCheckConsent"`
}

type VolunteerApp struct {
	ID                      string   `json:"id"`
	FirstName               string   `json:"firstName"`
	LastName                string   `json:"lastName"`
	Email                   string   `json:"email,omitempty"`
	PhoneNumber             string   `json:"phoneNumber,omitempty"`
	Bio                     string   `json:"bio,omitempty"`
	PhotoConsent            bool     `json:"photoConsent,omitempty"`
	BackgroundCheckConsent  bool     `json:"backgroundCheckConsent,omitempty"`
	Cities                  []string `json:"cities,omitempty"`
	DaysAvail               []string `json:"daysAvail,omitempty"`
	TimesAvail              []string `json:"timesAvail,omitempty"`
	Skills                  []string `json:"skills,omitempty"`
	Status                  string   `json:"status,omitempty"`
	VolunteerOpportunityIDs []string `json:"volunteerOpportunityIDs,omitempty"`
	GeneralAppliedAt        string   `json:"generalAppliedAt,omitempty"`
	CreatedAt               string   `json:"createdAt,omitempty"`
}

type Notification struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IsRead      bool   `json:"isRead"`
	Time        string `json:"time"`
}

type SignupPayload struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phoneNumber"`
	Avatar      string `json:"avatar,omitempty"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	ZipCode     string `json:"zipCode"`
	Role        Role   `json:"role"`
}

type ChildPayload struct {
	FirstName         string             `json:"firstName"`
	LastName          string             `json:"lastName"`
	PreferredName     string             `json:"preferredName,omitempty"`
	Homeschool        bool               `json:"homeschool"`
	Grade             *int               `json:"grade,omitempty"`
	Birthday          string             `json:"birthday"`
	AllergiesMedical  string             `json:"allergiesMedical,omitempty"`
	Notes             string             `json:"notes,omitempty"`
	PhotoConsent      bool               `json:"photoConsent"`
	Waiver            bool               `json:"waiver"`
	EmergencyContacts []EmergencyContact `json:"emergencyContacts"`
}

type UserPatch struct {
	FirstName   *string `json:"firstName,omitempty"`
	LastName    *string `json:"lastName,omitempty"`
	Email       *string `json:"email,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	Address     *string `json:"address,omitempty"`
	City        *string `json:"city,omitempty"`
	State       *string `json:"state,omitempty"`
	ZipCode     *string `json:"zipCode,omitempty"`
}
