package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCliParamsDefaults(t *testing.T) {
	p := NewCliParams()
	assert.EqualValues(t, 0, p.MinLogLevel)
	assert.False(t, p.NoColor)
	assert.False(t, p.ShowAll)
	assert.False(t, p.FixPath)
	assert.True(t, p.ExitOnError)
}

func TestVersionInformationDefaults(t *testing.T) {
	assert.NotEmpty(t, VersionInformation.BuildVersion)
	assert.NotEmpty(t, VersionInformation.Commit)
}
