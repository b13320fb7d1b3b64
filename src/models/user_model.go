package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Student struct {
	Id               primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Email            string               `json:"email" bson:"email"`
	Password         string               `json:"-" bson:"password"`
	FullName         string               `json:"fullName" bson:"fullName"`
	ProfilePicture   string               `json:"profilePicture" bson:"profilePicture"`
	Bio              string               `json:"bio" bson:"bio"`
	Skills           []string             `json:"skills" bson:"skills"`
	Education        Education            `json:"education" bson:"education"`
	Experience       string               `json:"experience" bson:"experience"`
	PreferredJobRole string               `json:"preferredJobRole" bson:"preferredJobRole"`
	ExpectedSalary   string               `json:"expectedSalary" bson:"expectedSalary"`
	Github           string               `json:"github" bson:"github"`
	LinkedIn         string               `json:"linkedIn" bson:"linkedIn"`
	Resume           string               `json:"resume" bson:"resume"`
	Portfolio        string               `json:"portfolio" bson:"portfolio"`
	Location         string               `json:"location" bson:"location"`
	Availability     string               `json:"availability" bson:"availability"`
	Connections      []primitive.ObjectID `json:"connections" bson:"connections"`
	CreatedAt        time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time            `json:"updatedAt" bson:"updatedAt"`
}

type Education struct {
	Degree         string `json:"degree" bson:"degree"`
	Institution    string `json:"institution" bson:"institution"`
	GraduationYear string `json:"graduationYear" bson:"graduationYear"`
	Branch         string `json:"branch" bson:"branch"`
	Year           string `json:"year" bson:"year"`
}

type Recruiter struct {
	Id                 primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Email              string               `json:"email" bson:"email"`
	Password           string               `json:"-" bson:"password"`
	FullName           string               `json:"fullName" bson:"fullName"`
	CompanyName        string               `json:"companyName" bson:"companyName"`
	Designation        string               `json:"designation" bson:"designation"`
	ContactInfo        ContactInfo          `json:"contactInfo" bson:"contactInfo"`
	HiringRequirements string               `json:"hiringRequirements" bson:"hiringRequirements"`
	ProfilePicture     string               `json:"profilePicture" bson:"profilePicture"`
	CompanyLogo        string               `json:"companyLogo" bson:"companyLogo"`
	Bio                string               `json:"bio" bson:"bio"`
	CompanyDescription string               `json:"companyDescription" bson:"companyDescription"`
	Location           string               `json:"location" bson:"location"`
	Connections        []primitive.ObjectID `json:"connections" bson:"connections"`
	CreatedAt          time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt          time.Time            `json:"updatedAt" bson:"updatedAt"`
}

type ContactInfo struct {
	Phone   string `json:"phone" bson:"phone"`
	Email   string `json:"email" bson:"email"`
	Address string `json:"address" bson:"address"`
}

type Mentor struct {
	Id              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Email           string             `json:"email" bson:"email"`
	Password        string             `json:"-" bson:"password"`
	FullName        string             `json:"fullName" bson:"fullName"`
	Company         string             `json:"company" bson:"company"`
	AreaOfExpertise string             `json:"areaOfExpertise" bson:"areaOfExpertise"`
	Experience      string             `json:"experience" bson:"experience"`
	LinkedIn        string             `json:"linkedIn" bson:"linkedIn"`
	ProfilePicture  string             `json:"profilePicture" bson:"profilePicture"`
	Bio             string             `json:"bio" bson:"bio"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// StudentDto is the display-safe projection attached to connection responses.
type StudentDto struct {
	ID             primitive.ObjectID `bson:"_id" json:"id"`
	FullName       string             `bson:"fullName" json:"fullName"`
	ProfilePicture string             `bson:"profilePicture" json:"profilePicture"`
	Skills         []string           `bson:"skills" json:"skills"`
	Bio            string             `bson:"bio" json:"bio,omitempty"`
}

// RecruiterDto is the display-safe projection attached to connection responses.
type RecruiterDto struct {
	ID                 primitive.ObjectID `bson:"_id" json:"id"`
	FullName           string             `bson:"fullName" json:"fullName"`
	CompanyName        string             `bson:"companyName" json:"companyName"`
	ProfilePicture     string             `bson:"profilePicture" json:"profilePicture"`
	CompanyDescription string             `bson:"companyDescription" json:"companyDescription,omitempty"`
}

// Principal is the authenticated identity carried through request locals,
// decoded from a verified token.
type Principal struct {
	ID    primitive.ObjectID
	Email string
	Role  Role
}
