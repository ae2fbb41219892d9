package main

import (
	"bikeshare/domain/business/report"
	"bikeshare/domain/entities/filter"
	"bikeshare/domain/entities/trip"
	"bikeshare/prompt"
	"bikeshare/stats"
	"context"
	"errors"
	"fmt"
	log "github.com/sirupsen/logrus"
	"io"
	"time"
)

const (
	sessionStr      = "session"
	restartQuestion = "\nWould you like to restart? Enter 'y' or 'n'.\n"
	restartToken    = "y"
)

// State of the session loop
type State int

const (
	Running State = iota
	Stopped
)

func (s State) String() string {
	if s == Running {
		return "RUNNING"
	}
	return "STOPPED"
}

type filterCollector interface {
	CollectFilters() (filter.Selection, error)
}

type tableLoader interface {
	Load(selection filter.Selection) (*trip.Table, error)
}

type rawDataPager interface {
	Display(table *trip.Table) (int, error)
}

type reportPublisher interface {
	PublishReport(ctx context.Context, sessionReport *report.SessionReport) error
}

// Session drives the explorer: filters -> load -> statistics -> raw data, until the user does not want to restart
// + publisher: optional, nil if session reports are not published
type Session struct {
	prompter  *prompt.Prompter
	collector filterCollector
	loader    tableLoader
	printer   *stats.Printer
	pager     rawDataPager
	publisher reportPublisher
	state     State
}

func NewSession(prompter *prompt.Prompter, loader tableLoader, printer *stats.Printer, pager rawDataPager, publisher reportPublisher) *Session {
	return &Session{
		prompter:  prompter,
		collector: prompter,
		loader:    loader,
		printer:   printer,
		pager:     pager,
		publisher: publisher,
		state:     Running,
	}
}

func (s *Session) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[component: %s][state: %s][method: %s][status: ERROR] %s: %s", sessionStr, s.state, method, message, err.Error())
	}
	return fmt.Sprintf("[component: %s][state: %s][method: %s][status: OK] %s", sessionStr, s.state, method, message)
}

// GetState returns the current state of the session
func (s *Session) GetState() State {
	return s.state
}

// Run loops until the session is stopped. The user leaving from a filter prompt is not an error.
func (s *Session) Run(ctx context.Context) error {
	for s.state == Running {
		nextState, err := s.runIteration(ctx)
		if err != nil {
			s.state = Stopped
			if errors.Is(err, prompt.ErrExit) {
				log.Debug(s.getLogMessage("Run", "exit requested by user", nil))
				return nil
			}
			log.Error(s.getLogMessage("Run", "session aborted", err))
			return err
		}
		s.state = nextState
	}

	log.Debug(s.getLogMessage("Run", "session finished", nil))
	return nil
}

func (s *Session) runIteration(ctx context.Context) (State, error) {
	selection, err := s.collector.CollectFilters()
	if err != nil {
		return Stopped, err
	}
	log.Debug(s.getLogMessage("runIteration", fmt.Sprintf("filters selected: %s", selection), nil))

	table, err := s.loader.Load(selection)
	if err != nil {
		return Stopped, err
	}

	sessionReport := report.NewSessionReport(selection, table.Len(), time.Now())
	sessionReport.TimeStats = s.printer.PrintTimeStats(table, selection)
	sessionReport.StationStats = s.printer.PrintStationStats(table)
	sessionReport.DurationStats = s.printer.PrintDurationStats(table)
	sessionReport.UserStats = s.printer.PrintUserStats(table)

	if s.publisher != nil {
		err = s.publisher.PublishReport(ctx, sessionReport)
		if err != nil {
			log.Warn(s.getLogMessage("runIteration", "session report not published", err))
		}
	}

	_, err = s.pager.Display(table)
	if err != nil {
		return Stopped, err
	}

	restart, err := s.prompter.Confirm(restartQuestion, restartToken)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Stopped, nil
		}
		return Stopped, err
	}

	if restart {
		return Running, nil
	}
	return Stopped, nil
}
