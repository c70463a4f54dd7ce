package ui

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/x/exp/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mantenedor/internal/db"
	"mantenedor/internal/logging"
	"mantenedor/internal/model"
)

func setup(t *testing.T, start model.Screen) *teatest.TestModel {
	t.Helper()

	database, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	seeded, err := db.Seed(database)
	require.NoError(t, err)
	require.True(t, seeded)

	logger, err := logging.NewLogger(logging.Options{Level: "debug"})
	require.NoError(t, err)
	t.Cleanup(func() { logger.Close() })

	m, err := New(database, newCatalog(t, "es"), logger, start)
	require.NoError(t, err)

	return teatest.NewTestModel(t, m, teatest.WithInitialTermSize(160, 40))
}

func waitFor(t *testing.T, tm *teatest.TestModel, text string) {
	t.Helper()

	teatest.WaitFor(
		t, tm.Output(),
		func(b []byte) bool {
			return bytes.Contains(b, []byte(text))
		},
		teatest.WithCheckInterval(time.Millisecond*100),
		teatest.WithDuration(time.Second*5),
	)
}

func sendKeys(tm *teatest.TestModel, keys ...string) {
	for _, k := range keys {
		tm.Send(keyMsg(k))
	}
}

func TestApp_Clients(t *testing.T) {
	tm := setup(t, model.ScreenClients)

	waitFor(t, tm, "9 de 12 registros")

	sendKeys(tm, "x")
	waitFor(t, tm, "Filtros limpiados")

	sendKeys(tm, "q")
	tm.WaitFinished(t, teatest.WithFinalTimeout(time.Second))

	final, ok := tm.FinalModel(t).(Model)
	require.True(t, ok)
	list := final.List(model.ScreenClients)
	require.NotNil(t, list)
	assert.Equal(t, "12 registros", list.Counter())
	assert.Nil(t, final.List(model.ScreenProducts))
}

func TestApp_SwitchScreens(t *testing.T) {
	tm := setup(t, model.ScreenClients)
	waitFor(t, tm, "9 de 12 registros")

	sendKeys(tm, "p")
	waitFor(t, tm, "11 de 14 registros")

	// filters on one screen leave the other alone
	sendKeys(tm, "tab", "h", "esc")
	waitFor(t, tm, "Mostrando 1 a 10 de 14 productos")

	sendKeys(tm, "c")
	waitFor(t, tm, "Mostrando 1 a 9 de 9 clientes")

	sendKeys(tm, "q")
	tm.WaitFinished(t, teatest.WithFinalTimeout(time.Second))

	final := tm.FinalModel(t).(Model)
	assert.Equal(t, "9 de 12 registros", final.List(model.ScreenClients).Counter())
	assert.Equal(t, "14 registros", final.List(model.ScreenProducts).Counter())
}

func TestApp_SearchKeysDoNotQuit(t *testing.T) {
	tm := setup(t, model.ScreenProducts)
	waitFor(t, tm, "11 de 14 registros")

	// q and c are typed into the search box rather than handled as shortcuts
	sendKeys(tm, "/", "q", "c")
	sendKeys(tm, "esc")
	sendKeys(tm, "q")
	tm.WaitFinished(t, teatest.WithFinalTimeout(time.Second))

	final := tm.FinalModel(t).(Model)
	assert.Equal(t, model.ScreenProducts, final.screen)
	assert.Equal(t, "qc", final.List(model.ScreenProducts).State().GlobalSearch)
}

func TestApp_Help(t *testing.T) {
	tm := setup(t, model.ScreenClients)
	waitFor(t, tm, "9 de 12 registros")

	sendKeys(tm, "?")
	waitFor(t, tm, "close help")

	sendKeys(tm, "esc", "q")
	tm.WaitFinished(t, teatest.WithFinalTimeout(time.Second))

	final := tm.FinalModel(t).(Model)
	assert.False(t, final.showingHelp)
}

func TestApp_Logs(t *testing.T) {
	tm := setup(t, model.ScreenClients)
	waitFor(t, tm, "9 de 12 registros")

	sendKeys(tm, "L")
	waitFor(t, tm, "loaded list")

	sendKeys(tm, "q")
	tm.WaitFinished(t, teatest.WithFinalTimeout(time.Second))

	final := tm.FinalModel(t).(Model)
	assert.True(t, final.showingLogs)
}

func TestApp_Update_Messages(t *testing.T) {
	logger, err := logging.NewLogger(logging.Options{Level: "info"})
	require.NoError(t, err)

	m, err := New(nil, newCatalog(t, "en"), logger, model.ScreenProducts)
	require.NoError(t, err)

	updated, _ := m.Update(model.ProductsLoadedMsg{Products: demoProductRows()})
	m = updated.(Model)
	require.NotNil(t, m.List(model.ScreenProducts))
	assert.Equal(t, "11 of 14 records", m.List(model.ScreenProducts).Counter())

	updated, _ = m.Update(infoMsg("done"))
	m = updated.(Model)
	assert.Equal(t, "done", m.info)

	updated, _ = m.Update(model.ErrorMsg{Err: assert.AnError})
	m = updated.(Model)
	assert.Equal(t, assert.AnError.Error(), m.error)
	msgs := logger.Messages()
	require.NotEmpty(t, msgs)
	assert.Equal(t, "command failed", msgs[len(msgs)-1].Message)
}
