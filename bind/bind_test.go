package bind

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/tagly/format/text"
	"github.com/viant/typarse"
)

type settings struct {
	Name    string
	Port    int `format:"name=port"`
	Active  bool
	Ratio   float64
	Started time.Time `timeLayout:"2006-01-02"`
	Tags    []string
	Skipped string `format:"ignore"`
}

func TestBinder_Bind(t *testing.T) {
	parser, err := typarse.New()
	require.NoError(t, err)
	binder := New(parser)

	actual := &settings{Skipped: "untouched"}
	err = binder.Bind(actual, map[string]string{
		"Name":    "endpoint",
		"port":    "8080",
		"active":  "true",
		"Ratio":   "0.5",
		"Started": "2023-04-05",
		"Tags":    "a,b,c",
		"Skipped": "ignored value",
	})
	require.NoError(t, err)
	assert.Equal(t, "endpoint", actual.Name)
	assert.Equal(t, 8080, actual.Port)
	assert.True(t, actual.Active)
	assert.Equal(t, 0.5, actual.Ratio)
	assert.Equal(t, time.Date(2023, 4, 5, 0, 0, 0, 0, time.UTC), actual.Started)
	assert.Equal(t, []string{"a", "b", "c"}, actual.Tags)
	assert.Equal(t, "untouched", actual.Skipped)
}

func TestBinder_BindMissingKeysKeepValues(t *testing.T) {
	parser, err := typarse.New()
	require.NoError(t, err)
	binder := New(parser)

	actual := &settings{Name: "initial", Port: 80}
	err = binder.Bind(actual, map[string]string{"Name": "updated"})
	require.NoError(t, err)
	assert.Equal(t, "updated", actual.Name)
	assert.Equal(t, 80, actual.Port)
}

func TestBinder_BindFailureNamesField(t *testing.T) {
	parser, err := typarse.New()
	require.NoError(t, err)
	binder := New(parser)

	err = binder.Bind(&settings{}, map[string]string{"port": "not a number"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Port")
}

type camelSettings struct {
	UserName string
	MaxCount int
}

func TestBinder_BindCaseFormat(t *testing.T) {
	parser, err := typarse.New()
	require.NoError(t, err)
	binder := New(parser, WithCaseFormat(text.CaseFormatLowerUnderscore))

	actual := &camelSettings{}
	err = binder.Bind(actual, map[string]string{
		"user_name": "bob",
		"max_count": "3",
	})
	require.NoError(t, err)
	assert.Equal(t, "bob", actual.UserName)
	assert.Equal(t, 3, actual.MaxCount)
}

func TestBinder_BindInvalidTarget(t *testing.T) {
	parser, err := typarse.New()
	require.NoError(t, err)
	binder := New(parser)

	err = binder.Bind(settings{}, map[string]string{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "struct pointer")
}
