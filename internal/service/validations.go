package service

import (
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/limbo/momentum/pkg/entity"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("habit_name", func(fl validator.FieldLevel) bool {
			_, ok := entity.HabitByName(fl.Field().String())
			return ok
		})
	})
}
