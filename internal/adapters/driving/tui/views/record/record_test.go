package record

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/edi-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/edi-cli/internal/core/domain"
)

func TestView_Empty(t *testing.T) {
	v := NewView(nil)

	assert.Nil(t, v.Record())
	assert.Contains(t, v.View(), "No record selected")
}

func TestView_Success(t *testing.T) {
	v := NewView(nil)
	v.SetRecord(domain.ConversionRecord{
		ID: "abc", Command: domain.CommandToStructured, Input: "in.edi",
		Dialect: domain.DialectX12, Version: "004010", MessageType: "310",
		Charset: domain.CharsetUTF8, Stage: domain.StageDone, Success: true, CreatedAt: time.Now(),
	})

	view := v.View()

	assert.Contains(t, view, "abc")
	assert.Contains(t, view, "edi2json")
	assert.Contains(t, view, "004010/310")
	assert.Contains(t, view, "utf-8")
	assert.Contains(t, view, "Succeeded")
}

func TestView_Failure(t *testing.T) {
	v := NewView(nil)
	v.SetRecord(domain.ConversionRecord{
		ID: "def", Command: domain.CommandType, Stage: domain.StageExtractingKey,
		Error: "missing message header (UNH)",
	})

	view := v.View()

	assert.Contains(t, view, "extracting key")
	assert.Contains(t, view, "Failed: missing message header (UNH)")
	assert.NotContains(t, view, "Key:")
}

func TestView_EscGoesBack(t *testing.T) {
	v := NewView(nil)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewHistory}, cmd())
}

func TestView_IgnoresOtherKeys(t *testing.T) {
	v := NewView(nil)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})

	assert.Nil(t, cmd)
}
