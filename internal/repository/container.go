package repository

import (
	"gorm.io/gorm"
)

//go:generate mockgen -destination=mock/repository.go -package=mock . FormRepo,ResponseRepo

type Repos struct {
	Form     FormRepo
	Response ResponseRepo
}

func New(db *gorm.DB) *Repos {
	return &Repos{
		Form:     NewFormRepo(db),
		Response: NewResponseRepo(db),
	}
}
