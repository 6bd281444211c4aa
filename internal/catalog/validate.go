package catalog

import validator "github.com/go-playground/validator/v10"

var validate = validator.New(validator.WithRequiredStructEnabled())
