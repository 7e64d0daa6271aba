package validators

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	hhmmRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

	// (11) 99999-1234, 11999991234 e variações com espaço ou hífen
	brPhoneRe = regexp.MustCompile(`^\(?\d{2}\)?[\s-]?\d{4,5}-?\d{4}$`)
)

func IsHHMM(s string) bool {
	return hhmmRe.MatchString(s)
}

func IsBRPhone(s string) bool {
	return brPhoneRe.MatchString(s)
}

// Register instala as regras customizadas no engine de binding do gin.
func Register() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		return IsHHMM(fl.Field().String())
	})

	_ = v.RegisterValidation("brphone", func(fl validator.FieldLevel) bool {
		return IsBRPhone(fl.Field().String())
	})
}
