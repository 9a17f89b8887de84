package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeEnvironmentOverlaysAndFillsEmpty(t *testing.T) {
	t.Parallel()

	defaults := map[string]string{"EULA": "TRUE", "VERSION": "latest", "SERVER_JARFILE": "server.jar"}
	overlay := map[string]string{"VERSION": "1.20.1", "SERVER_JARFILE": "", "STARTUP_FILE": "index.js"}

	merged := MergeEnvironment(defaults, overlay)

	assert.Equal(t, map[string]string{
		"EULA":           "TRUE",
		"VERSION":        "1.20.1",
		"SERVER_JARFILE": "server.jar",
		"STARTUP_FILE":   "index.js",
	}, merged)
	assert.Equal(t, "", overlay["SERVER_JARFILE"], "inputs must not be mutated")
}

func TestMergeEnvironmentIsIdempotent(t *testing.T) {
	t.Parallel()

	defaults := DefaultEnvironment()
	for _, offering := range DefaultOfferings() {
		once := MergeEnvironment(defaults, offering.Environment)
		twice := MergeEnvironment(once, offering.Environment)
		assert.Equal(t, once, twice, offering.Key)

		for key, value := range once {
			assert.NotEmpty(t, value, "%s: %s left empty", offering.Key, key)
		}
	}
}

func TestNewCatalogDefaults(t *testing.T) {
	t.Parallel()

	catalog, err := NewCatalog(DefaultOfferings())
	require.NoError(t, err)
	assert.Equal(t, []OfferingKey{"forge", "mariadb", "nodejs", "paper", "python", "sponge"}, catalog.Keys())

	paper, ok := catalog.Get(" Paper ")
	require.True(t, ok)
	assert.Equal(t, 3, paper.EggID)

	_, ok = catalog.Get("bedrock")
	assert.False(t, ok)
}

func TestNewCatalogCopiesEnvironment(t *testing.T) {
	t.Parallel()

	offerings := DefaultOfferings()
	catalog, err := NewCatalog(offerings)
	require.NoError(t, err)

	offerings[0].Environment["EULA"] = "FALSE"
	paper, _ := catalog.Get("paper")
	assert.Equal(t, "TRUE", paper.Environment["EULA"])
}

func TestNewCatalogRejectsMalformedOfferings(t *testing.T) {
	t.Parallel()

	valid := DefaultOfferings()[0]
	tests := []struct {
		name    string
		mutate  func(o *Offering)
		wantErr string
	}{
		{name: "bad key", mutate: func(o *Offering) { o.Key = "Paper Server" }, wantErr: "key"},
		{name: "zero nest", mutate: func(o *Offering) { o.NestID = 0 }, wantErr: "nest id"},
		{name: "zero egg", mutate: func(o *Offering) { o.EggID = -1 }, wantErr: "egg id"},
		{name: "missing image", mutate: func(o *Offering) { o.DockerImage = " " }, wantErr: "docker image"},
		{name: "lowercase placeholder", mutate: func(o *Offering) { o.Startup = "java -jar {{server_jarfile}}" }, wantErr: "malformed"},
		{name: "unbalanced", mutate: func(o *Offering) { o.Startup = "java -jar {{SERVER_JARFILE}" }, wantErr: "unbalanced"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			offering := valid
			tc.mutate(&offering)
			_, err := NewCatalog([]Offering{offering})
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}

	_, err := NewCatalog([]Offering{valid, valid})
	assert.ErrorContains(t, err, "defined twice")
}
