package valueobjects

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlanStatus(t *testing.T) {
	t.Run("empty defaults to private", func(t *testing.T) {
		status, err := NewPlanStatus("")
		require.NoError(t, err)
		assert.Equal(t, StatusPrivate, status)
	})

	t.Run("public", func(t *testing.T) {
		status, err := NewPlanStatus("public")
		require.NoError(t, err)
		assert.True(t, status.IsPublic())
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := NewPlanStatus("hidden")
		assert.Error(t, err)
	})
}

func TestParseLocation(t *testing.T) {
	lat := 16.05
	lon := 108.2

	t.Run("from map", func(t *testing.T) {
		loc := ParseLocation(map[string]interface{}{
			"name": "Da Nang",
			"lat":  16.05,
			"lon":  108.2,
		})
		assert.Equal(t, "Da Nang", loc.Name)
		require.NotNil(t, loc.Lat)
		assert.Equal(t, lat, *loc.Lat)
		require.NotNil(t, loc.Lon)
		assert.Equal(t, lon, *loc.Lon)
	})

	t.Run("from serialized string", func(t *testing.T) {
		loc := ParseLocation(`{"name":"Da Nang","lat":16.05,"lon":108.2}`)
		assert.Equal(t, "Da Nang", loc.Name)
		require.NotNil(t, loc.Lat)
		assert.Equal(t, lat, *loc.Lat)
	})

	t.Run("string and map forms are identical", func(t *testing.T) {
		fromMap := ParseLocation(map[string]interface{}{"name": "Hue", "lat": 16.46})
		fromString := ParseLocation(`{"name":"Hue","lat":16.46}`)
		assert.Equal(t, fromMap, fromString)
	})

	t.Run("idempotent", func(t *testing.T) {
		once := ParseLocation(`{"name":"Hoi An","description":"old town","lat":15.88,"lon":108.33}`)
		twice := ParseLocation(once)
		assert.Equal(t, once, twice)
	})

	t.Run("unknown keys survive round trip", func(t *testing.T) {
		loc := ParseLocation(`{"name":"Sapa","altitude":1500}`)
		raw, err := json.Marshal(loc)
		require.NoError(t, err)
		again := ParseLocation(raw)
		assert.Equal(t, loc, again)
		extra := again.Extra()
		assert.Contains(t, extra, "altitude")
	})

	t.Run("garbage falls back to empty", func(t *testing.T) {
		assert.True(t, ParseLocation("not json").IsZero())
		assert.True(t, ParseLocation(nil).IsZero())
		assert.True(t, ParseLocation(42).IsZero())
	})
}

func TestParseExtraData(t *testing.T) {
	t.Run("recognized keys", func(t *testing.T) {
		d := ParseExtraData(`{"tags":["bien","nui"],"name_khong_dau":"da nang 3 ngay"}`)
		assert.Equal(t, []string{"bien", "nui"}, d.Tags)
		assert.Equal(t, "da nang 3 ngay", d.NameKhongDau)
	})

	t.Run("pass-through keys", func(t *testing.T) {
		d := ParseExtraData(map[string]interface{}{"notes": "visit in the morning"})
		v, ok := d.Get("notes")
		require.True(t, ok)
		assert.Equal(t, "visit in the morning", v)
	})

	t.Run("string and map forms are identical", func(t *testing.T) {
		fromMap := ParseExtraData(map[string]interface{}{
			"tags":  []interface{}{"food"},
			"notes": "try mi quang",
		})
		fromString := ParseExtraData(`{"tags":["food"],"notes":"try mi quang"}`)
		assert.Equal(t, fromMap, fromString)
	})

	t.Run("idempotent", func(t *testing.T) {
		once := ParseExtraData(`{"tags":["food"],"name_khong_dau":"sai gon","budget":500000}`)
		twice := ParseExtraData(once)
		assert.Equal(t, once, twice)

		raw, err := json.Marshal(once)
		require.NoError(t, err)
		reparsed := ParseExtraData(raw)
		assert.Equal(t, once.NameKhongDau, reparsed.NameKhongDau)
		assert.Equal(t, once.Tags, reparsed.Tags)
	})

	t.Run("garbage falls back to empty", func(t *testing.T) {
		assert.True(t, ParseExtraData("{broken").IsZero())
		assert.True(t, ParseExtraData(nil).IsZero())
	})

	t.Run("set does not mutate receiver", func(t *testing.T) {
		base := ParseExtraData(`{"notes":"a"}`)
		derived := base.Set("other", "b")
		_, ok := base.Get("other")
		assert.False(t, ok)
		v, ok := derived.Get("other")
		require.True(t, ok)
		assert.Equal(t, "b", v)
	})
}
