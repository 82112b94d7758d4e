package isp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gosolid/errors"
	"gosolid/logging"
)

// intern 只在测试中声明的新员工
type intern struct{}

func (intern) Work() string { return "Intern fetching coffee..." }
func (intern) Eat() string  { return "Intern eating leftovers..." }

func TestMain(m *testing.M) {
	logging.SetLogger(logging.NewNoopLogger())
	m.Run()
}

func TestRunShift(t *testing.T) {
	out, err := RunShift(context.Background(), HumanWorker{}, RobotWorker{}, intern{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Human working...", "Robot working...", "Intern fetching coffee..."}, out)
}

func TestLunchBreak(t *testing.T) {
	out, err := LunchBreak(context.Background(), HumanWorker{}, intern{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Human eating lunch...", "Intern eating leftovers..."}, out)

	out, err = LunchBreak(context.Background())
	require.NoError(t, err)
	assert.Empty(t, out)
}

// TestRobotWorker_NotEatable 机器人不声明 Eatable，无法传给 LunchBreak
func TestRobotWorker_NotEatable(t *testing.T) {
	var robot Workable = RobotWorker{}
	_, ok := any(robot).(Eatable)
	assert.False(t, ok)

	var human Workable = HumanWorker{}
	_, ok = any(human).(Eatable)
	assert.True(t, ok)
}

func TestWorkerBad_RobotEat(t *testing.T) {
	workers := []WorkerBad{HumanWorkerBad{}, RobotWorkerBad{}}

	assert.NoError(t, workers[0].Eat())
	assert.Equal(t, "Robot working...", workers[1].Work())

	err := workers[1].Eat()
	require.Error(t, err)
	assert.True(t, errors.IsUnsupportedOperation(err))
	assert.Contains(t, err.Error(), "Robots don't eat!")
}

func TestMachines(t *testing.T) {
	mfp := MultiFunctionPrinter{}
	assert.Equal(t, "Printing document...", mfp.Print())
	assert.Equal(t, "Scanning document...", mfp.Scan())
	assert.Equal(t, "Faxing document...", mfp.Fax())

	var basic Printer = BasicPrinter{}
	assert.Equal(t, "Basic print only", basic.Print())
	_, ok := any(basic).(Scanner)
	assert.False(t, ok)
	_, ok = any(basic).(Fax)
	assert.False(t, ok)
}

func TestMachineBad_BasicPrinter(t *testing.T) {
	var m MachineBad = BasicPrinterBad{}
	assert.Equal(t, "Basic print only", m.Print())

	tests := []struct {
		name string
		call func() error
	}{
		{"scan", m.Scan},
		{"fax", m.Fax},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			assert.True(t, errors.IsUnsupportedOperation(err))
		})
	}
}

func TestOffice(t *testing.T) {
	ctx := context.Background()
	mfp := MultiFunctionPrinter{}

	office := NewOffice().
		AddPrinter(mfp, BasicPrinter{}).
		AddScanner(mfp).
		AddFax(mfp)

	printed, err := office.PrintAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Printing document...", "Basic print only"}, printed)

	scanned, err := office.ScanAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Scanning document..."}, scanned)

	faxed, err := office.FaxAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Faxing document..."}, faxed)

	empty, err := NewOffice().FaxAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
