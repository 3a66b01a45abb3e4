package customer

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail         = errors.New("invalid email format")
	ErrInvalidDriverLicense = errors.New("invalid driver license number")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type DriverLicense struct {
	value string
}

func NewDriverLicense(s string) (DriverLicense, error) {
	s = strings.TrimSpace(s)
	if len(s) < 4 {
		return DriverLicense{}, ErrInvalidDriverLicense
	}
	return DriverLicense{value: s}, nil
}

func (d DriverLicense) Value() string {
	return d.value
}
