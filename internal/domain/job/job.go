package job

import (
	"time"

	"github.com/Samrat25/HireX/internal/common"
)

type Status string

const (
	StatusActive Status = "active"
	StatusClosed Status = "closed"
)

type Job struct {
	ID           common.UUID `json:"id"`
	Title        string      `json:"title"`
	Department   string      `json:"department"`
	Salary       string      `json:"salary"`
	Deadline     string      `json:"deadline"`
	Requirements string      `json:"requirements"`
	Description  string      `json:"description"`
	Status       Status      `json:"status"`
	Applicants   int         `json:"applicants"`
	CreatedAt    time.Time   `json:"created_at"`
}
