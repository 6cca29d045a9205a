package importer

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shenikar/road_risk_advisor/internal/models"
)

// NewValidator возвращает валидатор с зарегистрированным тегом domain=<имя домена>.
// Паникует, если тег IncidentRecord ссылается на необъявленный домен.
func NewValidator() *validator.Validate {
	if err := checkDomainTags(reflect.TypeOf(models.IncidentRecord{})); err != nil {
		panic(err)
	}
	v := validator.New()
	// Ошибка возможна только при пустом имени тега или nil-функции
	_ = v.RegisterValidation("domain", validateDomain)
	return v
}

func validateDomain(fl validator.FieldLevel) bool {
	return models.InDomain(fl.Param(), fl.Field().String())
}

// checkDomainTags проверяет, что каждый domain=<имя> в тегах validate объявлен в models
func checkDomainTags(t reflect.Type) error {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		for _, rule := range strings.Split(field.Tag.Get("validate"), ",") {
			name, ok := strings.CutPrefix(rule, "domain=")
			if !ok {
				continue
			}
			if !models.HasDomain(name) {
				return fmt.Errorf("field %s: unknown domain %q", field.Name, name)
			}
		}
	}
	return nil
}
