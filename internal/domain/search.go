package domain

import (
	"time"

	"github.com/google/uuid"
)

// Ref is a lightweight reference to a related record.
type Ref struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// ClientHit is a client matched by a unified search.
type ClientHit struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	CPF        *string   `json:"cpf,omitempty"`
	CNPJ       *string   `json:"cnpj,omitempty"`
	Phone      *string   `json:"phone,omitempty"`
	Company    *string   `json:"company,omitempty"`
	CasesCount int       `json:"casesCount"`
	CreatedAt  time.Time `json:"createdAt"`
}

// CaseHit is a case matched by a unified search.
type CaseHit struct {
	ID          uuid.UUID `json:"id"`
	Number      *string   `json:"number,omitempty"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	Client      *Ref      `json:"client,omitempty"`
	Lawyer      *Ref      `json:"lawyer,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// DocumentHit is a document matched by a unified search.
type DocumentHit struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	FileName   string    `json:"fileName"`
	MimeType   *string   `json:"mimeType,omitempty"`
	Size       int64     `json:"size"`
	Case       *Ref      `json:"case,omitempty"`
	UploadedBy *Ref      `json:"uploadedBy,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// AppointmentHit is an appointment matched by a unified search.
type AppointmentHit struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Type        string     `json:"type"`
	Status      string     `json:"status"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Location    *string    `json:"location,omitempty"`
	Case        *Ref       `json:"case,omitempty"`
	Lawyer      *Ref       `json:"lawyer,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// Suggestion is one autocomplete item.
type Suggestion struct {
	ID       uuid.UUID `json:"id"`
	Text     string    `json:"text"`
	Type     string    `json:"type"`
	Subtitle string    `json:"subtitle"`
	URL      string    `json:"url"`
}
