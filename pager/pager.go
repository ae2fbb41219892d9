package pager

import (
	"bikeshare/domain/entities/trip"
	"bikeshare/prompt"
	"errors"
	"fmt"
	log "github.com/sirupsen/logrus"
	"io"
)

const (
	DefaultChunkSize = 5
	stopToken        = "x"
	affirmative      = "y"
	displayQuestion  = "Would you like to see the data? Type 'y' or 'n': "
	continueQuestion = "Press Enter to continue or 'x' to stop: "
)

// Pager displays the raw trips upon request by the user, a chunk of rows at a time
type Pager struct {
	prompter  *prompt.Prompter
	output    io.Writer
	chunkSize int
}

func NewPager(prompter *prompt.Prompter, output io.Writer, chunkSize int) *Pager {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &Pager{
		prompter:  prompter,
		output:    output,
		chunkSize: chunkSize,
	}
}

// Display asks the user whether to see the raw data and prints it chunk by chunk until the
// table ends or the user types the stop token. Returns the amount of rows printed.
func (p *Pager) Display(table *trip.Table) (int, error) {
	display, err := p.prompter.Confirm(displayQuestion, affirmative)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, nil
		}
		return 0, err
	}

	if !display {
		return 0, nil
	}

	rowsPrinted := 0
	for currentLine := 0; currentLine < table.Len(); currentLine += p.chunkSize {
		for _, record := range table.Slice(currentLine, currentLine+p.chunkSize) {
			p.printRecord(record)
			rowsPrinted += 1
		}

		answer, err := p.prompter.ReadLine(continueQuestion)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return rowsPrinted, err
		}

		if prompt.Normalize(answer) == stopToken {
			break
		}
	}

	log.Debugf("[component: pager][method: Display][status: OK] %v of %v rows printed", rowsPrinted, table.Len())
	return rowsPrinted, nil
}

// printRecord prints every field of the record as "column value", with values aligned, followed by a blank line
func (p *Pager) printRecord(record trip.Record) {
	width := 0
	for _, field := range record.Fields {
		if len(field.Column) > width {
			width = len(field.Column)
		}
	}

	for _, field := range record.Fields {
		fmt.Fprintf(p.output, "%-*s    %s\n", width, field.Column, field.Value)
	}
	fmt.Fprint(p.output, "\n\n")
}
