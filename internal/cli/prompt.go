package cli

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	"github.com/tacogips/depot/internal/config"
)

// hostPattern accepts a bare host name with an optional port.
const hostPattern = `^[A-Za-z0-9]([A-Za-z0-9.\-]*[A-Za-z0-9])?(:[0-9]+)?$`

var schemeOptions = []string{"https", "ssh", "http", "git"}

// starterAnswers receives the config init prompt results.
type starterAnswers struct {
	Root   string `survey:"root"`
	Scheme string `survey:"scheme"`
	Host   string `survey:"host"`
}

// PromptForStarter interactively asks for the values of a starter
// configuration, offering defaults as the initial answers.
func PromptForStarter(defaults config.StarterOptions, opts ...survey.AskOpt) (config.StarterOptions, error) {
	questions := []*survey.Question{
		{
			Name: "root",
			Prompt: &survey.Input{
				Message: "Root directory for working copies",
				Default: defaults.Root,
				Help:    "Environment variables such as ${HOME} are expanded when depot runs.",
			},
			Validate: survey.ComposeValidators(survey.Required, validateRoot),
		},
		{
			Name: "scheme",
			Prompt: &survey.Select{
				Message: "Default scheme for short addresses",
				Options: schemeOptions,
				Default: defaults.Scheme,
				Help:    "Used when an address such as owner/repo has no scheme of its own.",
			},
		},
		{
			Name: "host",
			Prompt: &survey.Input{
				Message: "Default host for short addresses",
				Default: defaults.Host,
				Help:    "Used when an address such as owner/repo has no host of its own.",
			},
			Validate: survey.ComposeValidators(survey.Required, matchPattern(hostPattern, "host must be a bare host name, e.g. github.com")),
		},
	}

	var answers starterAnswers
	if err := survey.Ask(questions, &answers, opts...); err != nil {
		return config.StarterOptions{}, err
	}

	return config.StarterOptions{
		Root:   strings.TrimSpace(answers.Root),
		Scheme: answers.Scheme,
		Host:   strings.TrimSpace(answers.Host),
	}, nil
}

// validateRoot rejects root templates that cannot name a directory.
func validateRoot(val interface{}) error {
	str, ok := val.(string)
	if !ok {
		return fmt.Errorf("expected string, got %T", val)
	}
	if strings.ContainsAny(str, "\n\"") {
		return fmt.Errorf("root must not contain quotes or newlines")
	}
	return nil
}

// matchPattern creates a survey validator for regex pattern matching.
func matchPattern(pattern string, message string) survey.Validator {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return func(val interface{}) error {
			return fmt.Errorf("invalid pattern: %s", pattern)
		}
	}
	return func(val interface{}) error {
		str, ok := val.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", val)
		}
		if !re.MatchString(str) {
			return fmt.Errorf("%s", message)
		}
		return nil
	}
}
