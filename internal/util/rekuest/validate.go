package rekuest

import (
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"courtside.dev/backend/internal/constant"
	"courtside.dev/backend/internal/pkg/cserr"
	"courtside.dev/backend/internal/util"
)

var (
	Validate = util.NewValidator()

	translator ut.Translator
)

func init() {
	english := en.New()
	translator, _ = ut.New(english, english).GetTranslator("en")

	if err := enTranslations.RegisterDefaultTranslations(Validate, translator); err != nil {
		log.Warn().Err(err).Str("locale", "en").Msg("could not register translation")
	}

	custom := map[string]string{
		"metric": "{0} must be one of " + joinQuoted(constant.Metrics),
		"chart":  "{0} must be one of " + joinQuoted(constant.Charts),
	}
	for tag, text := range custom {
		text := text
		err := Validate.RegisterTranslation(tag, translator, func(ut ut.Translator) error {
			return ut.Add(tag, text, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(fe.Tag(), fe.Field())
			return t
		})
		if err != nil {
			log.Warn().Err(err).Str("tag", tag).Msg("could not register translation for custom validation")
		}
	}
}

func joinQuoted(values []string) string {
	return strings.Join(lo.Map(values, func(v string, _ int) string { return "'" + v + "'" }), ", ")
}

type ErrorResponse struct {
	Field     string `json:"field,omitempty"`
	Violation string `json:"violation"`
	Message   string `json:"message"`
}

func translate(ve validator.ValidationErrors) []*ErrorResponse {
	trans := make([]*ErrorResponse, 0, len(ve))
	for _, fe := range ve {
		trans = append(trans, &ErrorResponse{
			Field:     fe.Field(),
			Violation: fe.Tag(),
			Message:   fe.Translate(translator),
		})
	}
	return trans
}

func violations(err error) error {
	if err == nil {
		return nil
	}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return cserr.ErrInvalidReq.Msg("invalid request: %s", err)
	}
	return cserr.NewInvalidViolations(translate(ve))
}

// ValidStruct validates dest with the validator singleton and converts violations into an
// INVALID_REQUEST error carrying one translated message per field.
func ValidStruct(dest any) error {
	return violations(Validate.Struct(dest))
}

func ValidVar(field any, tag string) error {
	return violations(Validate.Var(field, tag))
}

// ValidQuery parses the query string into dest and validates it. dest must be a pointer.
func ValidQuery(ctx *fiber.Ctx, dest any) error {
	if err := ctx.QueryParser(dest); err != nil {
		return cserr.ErrInvalidReq.Msg("invalid request: %s", err)
	}
	return ValidStruct(dest)
}
