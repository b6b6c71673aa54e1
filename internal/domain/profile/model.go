package profile

import (
	"time"

	"github.com/google/uuid"
)

// Profile maps to the profiles table. One optional profile per owner; all
// demographic fields may be absent.
type Profile struct {
	OwnerID       uuid.UUID `db:"owner_id" json:"owner_id"`
	FullName      *string   `db:"full_name" json:"full_name,omitempty"`
	Age           *int      `db:"age" json:"age,omitempty"`
	Sex           *string   `db:"sex" json:"sex,omitempty"`
	Weight        *float64  `db:"weight" json:"weight,omitempty"`
	PhysicianName *string   `db:"physician_name" json:"physician_name,omitempty"`
	Insurer       *string   `db:"insurer" json:"insurer,omitempty"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}
