// Package adminrepo persists operator accounts with GORM.
package adminrepo

import (
	"clinic/internal/core/domain/model/admin"
)

// AdminDTO is the row of the admins table. The e-mail is unique.
type AdminDTO struct {
	ID           int32  `gorm:"primaryKey;autoIncrement"`
	Name         string `gorm:"type:varchar(255);not null;default:''"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_admins_email"`
	PasswordHash string `gorm:"column:password_hash;type:varchar(255);not null"`
}

// TableName overrides GORM's default naming.
func (AdminDTO) TableName() string {
	return "admins"
}

func fromDomain(a *admin.Admin) AdminDTO {
	id, _ := a.ID().Value()
	return AdminDTO{
		ID:           id,
		Name:         a.Name(),
		Email:        a.Email(),
		PasswordHash: a.PasswordHash(),
	}
}

func toDomain(dto AdminDTO) (*admin.Admin, error) {
	return admin.RestoreAdmin(dto.ID, dto.Name, dto.Email, dto.PasswordHash)
}
