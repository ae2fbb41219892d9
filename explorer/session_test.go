package main

import (
	"bikeshare/domain/business/report"
	"bikeshare/domain/entities/filter"
	"bikeshare/domain/entities/trip"
	"bikeshare/loader"
	"bikeshare/pager"
	"bikeshare/prompt"
	"bikeshare/stats"
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testChicagoCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year
1,2017-03-03 08:07:57,2017-03-03 08:20:53,10,Canal St,Clark St,Subscriber,Male,1989
2,2017-03-05 17:30:00,2017-03-05 17:40:00,20,Canal St,Elm St,Customer,,
3,2017-01-06 09:00:00,2017-01-06 09:10:00,30,Clark St,Canal St,Subscriber,Female,1975
`

const testWashingtonCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type
0,2017-03-21 08:36:34,2017-03-21 08:44:43,489.066,14th & Belmont St NW,15th & K St NW,Subscriber
`

type countingCollector struct {
	collector filterCollector
	calls     int
}

func (cc *countingCollector) CollectFilters() (filter.Selection, error) {
	cc.calls += 1
	return cc.collector.CollectFilters()
}

type countingLoader struct {
	loader tableLoader
	calls  int
	err    error
}

func (cl *countingLoader) Load(selection filter.Selection) (*trip.Table, error) {
	cl.calls += 1
	if cl.err != nil {
		return nil, cl.err
	}
	return cl.loader.Load(selection)
}

type fakePublisher struct {
	reports []*report.SessionReport
	err     error
}

func (fp *fakePublisher) PublishReport(_ context.Context, sessionReport *report.SessionReport) error {
	fp.reports = append(fp.reports, sessionReport)
	return fp.err
}

type testSession struct {
	session   *Session
	collector *countingCollector
	loader    *countingLoader
	output    *bytes.Buffer
}

func newTestSession(t *testing.T, input string, publisher reportPublisher) *testSession {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "chicago.csv"), []byte(testChicagoCSV), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "washington.csv"), []byte(testWashingtonCSV), 0o644))

	output := &bytes.Buffer{}
	prompter := prompt.NewPrompter(strings.NewReader(input), output)
	cityFiles := map[filter.City]string{
		filter.Chicago:     "chicago.csv",
		filter.NewYorkCity: "new_york_city.csv",
		filter.Washington:  "washington.csv",
	}
	countedLoader := &countingLoader{loader: loader.NewLoader(dir, cityFiles, "", output)}

	session := NewSession(prompter, countedLoader, stats.NewPrinter(output, false), pager.NewPager(prompter, output, pager.DefaultChunkSize), publisher)
	collector := &countingCollector{collector: session.collector}
	session.collector = collector

	return &testSession{
		session:   session,
		collector: collector,
		loader:    countedLoader,
		output:    output,
	}
}

func TestSessionStopsWhenRestartIsDeclined(t *testing.T) {
	for _, answer := range []string{"n", "no", "yes", ""} {
		ts := newTestSession(t, "chicago\nall\nall\nn\n"+answer+"\n", nil)

		err := ts.session.Run(context.Background())
		require.NoError(t, err)

		assert.Equal(t, Stopped, ts.session.GetState())
		assert.Equal(t, 1, ts.collector.calls)
		assert.Equal(t, 1, ts.loader.calls)
	}
}

func TestSessionRunsAggregatorsInOrder(t *testing.T) {
	ts := newTestSession(t, "chicago\nall\nall\nn\nn\n", nil)

	require.NoError(t, ts.session.Run(context.Background()))

	text := ts.output.String()
	timeIdx := strings.Index(text, "Calculating The Most Frequent Times of Travel...")
	stationIdx := strings.Index(text, "Calculating The Most Popular Stations and Trip...")
	durationIdx := strings.Index(text, "Calculating Trip Duration...")
	userIdx := strings.Index(text, "Calculating User Stats...")
	rawDataIdx := strings.Index(text, "Would you like to see the data?")
	restartIdx := strings.Index(text, "Would you like to restart?")

	require.True(t, timeIdx >= 0)
	assert.True(t, timeIdx < stationIdx)
	assert.True(t, stationIdx < durationIdx)
	assert.True(t, durationIdx < userIdx)
	assert.True(t, userIdx < rawDataIdx)
	assert.True(t, rawDataIdx < restartIdx)
	assert.Equal(t, 4, strings.Count(text, "This took "))

	assert.Contains(t, text, "The most common month: March\n")
	assert.Contains(t, text, "Total travel time(seconds):  60\n")
	assert.Contains(t, text, "Mean travel time(seconds):  20.0\n")
	assert.Contains(t, text, "Earliest year of birth:  1975\n")
}

func TestSessionRestart(t *testing.T) {
	input := "chicago\nall\nall\nn\nY\nwashington\nmarch\ntuesday\ny\nx\nn\n"
	ts := newTestSession(t, input, nil)

	require.NoError(t, ts.session.Run(context.Background()))

	assert.Equal(t, 2, ts.collector.calls)
	assert.Equal(t, 2, ts.loader.calls)
	text := ts.output.String()
	assert.Equal(t, 2, strings.Count(text, "Hello! Let's explore some US bikeshare data!"))
	assert.Contains(t, text, "Filter data by month March...")
	assert.Contains(t, text, "Genders count: N/A\n")
	assert.Contains(t, text, "Most common year of birth:  N/A\n")
	assert.Contains(t, text, "14th & Belmont St NW")
}

func TestSessionExitTokenStopsBeforeLoading(t *testing.T) {
	for _, input := range []string{"x\n", "chicago\nX\n", "washington\nall\nx\n"} {
		ts := newTestSession(t, input, nil)

		err := ts.session.Run(context.Background())
		require.NoError(t, err)

		assert.Equal(t, Stopped, ts.session.GetState())
		assert.Zero(t, ts.loader.calls)
		assert.NotContains(t, ts.output.String(), "Calculating")
	}
}

func TestSessionLoadError(t *testing.T) {
	ts := newTestSession(t, "new york city\nall\nall\n", nil)

	err := ts.session.Run(context.Background())
	assert.ErrorIs(t, err, loader.ErrCityFile)
	assert.Equal(t, Stopped, ts.session.GetState())
	assert.NotContains(t, ts.output.String(), "Calculating")
}

func TestSessionPublishesReport(t *testing.T) {
	publisher := &fakePublisher{}
	ts := newTestSession(t, "chicago\nall\nfriday\nn\nn\n", publisher)

	require.NoError(t, ts.session.Run(context.Background()))

	require.Len(t, publisher.reports, 1)
	sessionReport := publisher.reports[0]
	assert.Equal(t, "chicago", sessionReport.City)
	assert.Equal(t, "friday", sessionReport.Day)
	assert.Equal(t, 2, sessionReport.Trips)
	assert.Equal(t, "Canal St", sessionReport.StationStats.MostCommonStartStation)
	assert.Equal(t, int64(40), sessionReport.DurationStats.TotalDuration)
	assert.False(t, sessionReport.TimeStats.DayComputed)
}

func TestSessionContinuesWhenPublishFails(t *testing.T) {
	publisher := &fakePublisher{err: errors.New("broker down")}
	ts := newTestSession(t, "chicago\nall\nall\nn\nn\n", publisher)

	require.NoError(t, ts.session.Run(context.Background()))

	assert.Len(t, publisher.reports, 1)
	assert.Contains(t, ts.output.String(), "Would you like to restart?")
}
