package model

import (
	"github.com/google/uuid"
)

type StateModel struct {
	ID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name string    `gorm:"size:100;not null;unique" json:"name"`
}

func (StateModel) TableName() string { return "states" }

type CityModel struct {
	ID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name string    `gorm:"size:100;not null" json:"name"`
}

func (CityModel) TableName() string { return "cities" }

// CityStateModel links a city to the state it belongs to.
type CityStateModel struct {
	ID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CityID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_city_states_pair" json:"city_id"`
	StateID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_city_states_pair" json:"state_id"`
}

func (CityStateModel) TableName() string { return "city_states" }

type CollegeModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string    `gorm:"size:500;not null;uniqueIndex:uq_college_name_short" json:"name"`
	ShortName string    `gorm:"size:255;not null;uniqueIndex:uq_college_name_short" json:"short_name"`
}

func (CollegeModel) TableName() string { return "colleges" }

type BranchModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	ShortName string    `gorm:"size:255" json:"short_name"`
}

func (BranchModel) TableName() string { return "branches" }

// DegreeModel classifies a student's track. IsTech decides the question
// quota mix for a new assessment.
type DegreeModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name     string    `gorm:"size:100;not null;unique" json:"name"`
	FullName string    `gorm:"size:255" json:"full_name"`
	Category string    `gorm:"size:100" json:"category"`
	IsTech   bool      `gorm:"not null;default:false" json:"is_tech"`
}

func (DegreeModel) TableName() string { return "degrees" }
