package prompt

import (
	"bikeshare/domain/entities/filter"
	"bikeshare/utils"
	"bufio"
	"errors"
	"fmt"
	log "github.com/sirupsen/logrus"
	"io"
	"strings"
)

const (
	exitToken      = "x"
	welcomeMessage = "Hello! Let's explore some US bikeshare data!"
	invalidInput   = "Invalid input. Please try again."
	cityPrompt     = "Enter a city (Chicago, New York City, Washington)"
	monthPrompt    = "Enter a month (all, January, February, ..., June)"
	dayPrompt      = "Enter a day (all, Monday, Tuesday, ..., Sunday)"
)

// Prompter reads the user answers line by line
type Prompter struct {
	reader *bufio.Reader
	output io.Writer
}

func NewPrompter(input io.Reader, output io.Writer) *Prompter {
	reader, ok := input.(*bufio.Reader)
	if !ok {
		reader = bufio.NewReader(input)
	}
	return &Prompter{
		reader: reader,
		output: output,
	}
}

// ReadLine prints message and returns the next line typed by the user, without the line break.
// io.EOF is returned only if the input ended before anything was typed.
func (p *Prompter) ReadLine(message string) (string, error) {
	fmt.Fprint(p.output, message)
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Ask asks the user for a value until it belongs to validData. The answer is lowercased and trimmed.
// If the user types the exit token (or the input ends) ErrExit is returned.
func (p *Prompter) Ask(message string, validData []string) (string, error) {
	for {
		answer, err := p.ReadLine(fmt.Sprintf("%s, or '%s' to exit: ", message, exitToken))
		if err != nil {
			if errors.Is(err, io.EOF) {
				log.Debugf("[component: prompt][method: Ask] input closed while waiting for: %s", message)
				return "", ErrExit
			}
			return "", err
		}

		answer = Normalize(answer)
		if answer == exitToken {
			return "", ErrExit
		}

		if utils.ContainsString(answer, validData) {
			return answer, nil
		}

		fmt.Fprintln(p.output, invalidInput)
	}
}

// Confirm prints message and returns true if the user answers exactly the affirmative token (case-insensitive)
func (p *Prompter) Confirm(message string, affirmative string) (bool, error) {
	answer, err := p.ReadLine(message)
	if err != nil {
		return false, err
	}
	return Normalize(answer) == affirmative, nil
}

// CollectFilters asks the user to specify a city, month, and day to analyze
func (p *Prompter) CollectFilters() (filter.Selection, error) {
	fmt.Fprintln(p.output, welcomeMessage)

	cityStr, err := p.Ask(cityPrompt, filter.CityVocabulary())
	if err != nil {
		return filter.Selection{}, err
	}

	monthStr, err := p.Ask(monthPrompt, filter.MonthVocabulary())
	if err != nil {
		return filter.Selection{}, err
	}

	dayStr, err := p.Ask(dayPrompt, filter.DayVocabulary())
	if err != nil {
		return filter.Selection{}, err
	}

	// the vocabularies come from the filter package, so parsing can not fail here
	city, _ := filter.ParseCity(cityStr)
	month, _ := filter.ParseMonth(monthStr)
	day, _ := filter.ParseDay(dayStr)

	utils.PrintHorizontalLine(p.output)
	return filter.NewSelection(city, month, day), nil
}

// Normalize lowercases and trims an answer
func Normalize(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}
