package service

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultRegNoPattern matches registration numbers like 21BCE1111.
const DefaultRegNoPattern = `^[0-9]{2}[A-Za-z]{3}[0-9]{4}$`

var (
	alphaRe          = regexp.MustCompile(`^[A-Za-z]+$`)
	defaultValidator = MustNewValidator(DefaultRegNoPattern)
)

// Validator checks sign-up input. The zero value is not usable; build one
// with NewValidator.
type Validator struct {
	regno *regexp.Regexp
}

func NewValidator(regnoPattern string) (*Validator, error) {
	if strings.TrimSpace(regnoPattern) == "" {
		regnoPattern = DefaultRegNoPattern
	}
	re, err := regexp.Compile(regnoPattern)
	if err != nil {
		return nil, fmt.Errorf("compile regno pattern: %w", err)
	}
	return &Validator{regno: re}, nil
}

func MustNewValidator(regnoPattern string) *Validator {
	v, err := NewValidator(regnoPattern)
	if err != nil {
		panic(err)
	}
	return v
}

func (v *Validator) IsRegNo(s string) bool { return v.regno.MatchString(s) }

// ContainsEmpty reports whether any value is empty or only whitespace.
func ContainsEmpty(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}

// IsRegNo checks s against DefaultRegNoPattern.
func IsRegNo(s string) bool { return defaultValidator.IsRegNo(s) }

// IsAlpha reports whether s is one or more ASCII letters.
func IsAlpha(s string) bool { return alphaRe.MatchString(s) }
