package main

import (
	"errors"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	"github.com/goliatone/go-greet/pkg/locale"
)

type greetingAnswers struct {
	Name   string
	Locale string
}

// promptGreeting collects a name and a locale interactively. The locale list
// comes from the active catalog so the selection can never miss.
func promptGreeting(catalog *locale.Catalog) (greetingAnswers, error) {
	locales := catalog.Locales()
	if len(locales) == 0 {
		return greetingAnswers{}, errors.New("catalog declares no locales")
	}

	var answers greetingAnswers

	namePrompt := &survey.Input{
		Message: "Who should be greeted?",
		Help:    "Full name; only the part before the first space appears in the greeting.",
	}
	if err := survey.AskOne(namePrompt, &answers.Name, survey.WithValidator(nonEmpty)); err != nil {
		return greetingAnswers{}, err
	}

	localePrompt := &survey.Select{
		Message: "Which locale?",
		Options: locales,
		Default: locales[0],
	}
	if err := survey.AskOne(localePrompt, &answers.Locale); err != nil {
		return greetingAnswers{}, err
	}

	return answers, nil
}

func nonEmpty(val any) error {
	s, ok := val.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return errors.New("a name is required")
	}
	return nil
}
