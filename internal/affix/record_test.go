package affix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stash-indexer/internal/itemtype"
)

func TestFingerprint_OrderIndependent(t *testing.T) {
	a := newRecord("1", itemtype.Ring)
	a.add("Life", 30)
	a.add("FireResist", 12)
	a.setFlag("Corrupted", true)
	a.Sockets = "SD"

	b := newRecord("1", itemtype.Ring)
	b.Sockets = "SD"
	b.setFlag("corrupted", true)
	b.add("FIRERESIST", 12)
	b.add("life", 10)
	b.add("life", 20)

	assert.Equal(t, Fingerprint(a), Fingerprint(b))
	assert.Equal(t, Fingerprint(a), Fingerprint(a))
	assert.Len(t, Fingerprint(a), 16)
}

func TestFingerprint_SensitiveToContent(t *testing.T) {
	base := func() *StatRecord {
		r := newRecord("1", itemtype.Ring)
		r.add("Life", 30)
		r.setFlag("Corrupted", false)
		return r
	}
	fp := Fingerprint(base())

	changedValue := base()
	changedValue.set("Life", 31)
	assert.NotEqual(t, fp, Fingerprint(changedValue))

	changedFlag := base()
	changedFlag.setFlag("Corrupted", true)
	assert.NotEqual(t, fp, Fingerprint(changedFlag))

	changedSockets := base()
	changedSockets.Sockets = "S"
	assert.NotEqual(t, fp, Fingerprint(changedSockets))

	extraZero := base()
	extraZero.set("Mana", 0)
	assert.NotEqual(t, fp, Fingerprint(extraZero))

	warned := base()
	warned.warnf("odd requirement")
	assert.Equal(t, fp, Fingerprint(warned))
}

func TestStatRecord_Values(t *testing.T) {
	r := newRecord("1", itemtype.Ring)
	r.add("Life", 30)
	r.setFlag("DoubledInBreach", true)

	assert.Equal(t, map[string]any{"life": int64(30), "doubledinbreach": true}, r.Values())
	assert.True(t, r.Has("LIFE"))
	assert.False(t, r.Has("Mana"))
}

func TestRecordFromValues(t *testing.T) {
	r := newRecord("1", itemtype.BodyArmour)
	r.add("Armour", 500)
	r.setFlag("Corrupted", true)
	r.Sockets = "RGB"
	r.Fingerprint = Fingerprint(r)

	decoded := map[string]any{"armour": float64(500), "corrupted": true}
	back, err := RecordFromValues("1", itemtype.BodyArmour, "RGB", decoded)
	require.NoError(t, err)
	assert.Equal(t, r.Fingerprint, back.Fingerprint)
	assert.Equal(t, int64(500), back.Int("Armour"))

	_, err = RecordFromValues("1", itemtype.BodyArmour, "", map[string]any{"armour": 1.5})
	assert.Error(t, err)
	_, err = RecordFromValues("1", itemtype.BodyArmour, "", map[string]any{"armour": "x"})
	assert.Error(t, err)
}
