package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caresuite/answerkit/core"
)

func TestEntryRoundTrip(t *testing.T) {
	entry := &core.Entry{
		RecordID:       "recAbc123",
		Question:       "保质期多久？",
		StandardAnswer: "常温密封保存12个月。",
		EnableStatus:   "启用",
		Scene:          "售前咨询",
		Tone:           "亲切",
		ProductName:    "每日坚果",
		ProductID:      "-",
	}

	data := MarshalEntry(entry)
	got, err := UnmarshalEntry(data)
	require.NoError(t, err)
	assert.Equal(t, entry, got)
}

func TestEntryRoundTripEmptyFields(t *testing.T) {
	entry := &core.Entry{RecordID: "rec1"}

	got, err := UnmarshalEntry(MarshalEntry(entry))
	require.NoError(t, err)
	assert.Equal(t, entry, got)
}

func TestUnmarshalEntryTruncated(t *testing.T) {
	data := MarshalEntry(&core.Entry{
		RecordID: "rec1",
		Question: "发货时间",
	})

	_, err := UnmarshalEntry(data[:len(data)-2])
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSerializationFailed)
}
