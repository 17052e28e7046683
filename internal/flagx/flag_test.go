package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilterArgs_SeparateValue(t *testing.T) {
	args := []string{"-s", "chat.db", "-x", "nope", "-m", "400"}
	got := FilterArgs(args, []string{"-s", "-m"})
	require.Equal(t, []string{"-s", "chat.db", "-m", "400"}, got)
}

func TestFilterArgs_EqualsForm(t *testing.T) {
	args := []string{"--store=chat.db", "--other=1", "-m=400"}
	got := FilterArgs(args, []string{"--store", "-m"})
	require.Equal(t, []string{"--store=chat.db", "-m=400"}, got)
}

func TestFilterArgs_FlagFollowedByFlag(t *testing.T) {
	// "-s" is allowed but its next argument is another flag, so no value is consumed.
	args := []string{"-s", "-m", "400"}
	got := FilterArgs(args, []string{"-s"})
	require.Equal(t, []string{"-s"}, got)
}

func TestFilterArgs_Empty(t *testing.T) {
	got := FilterArgs(nil, []string{"-s"})
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestJsonConfigFlags(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })

	os.Args = []string{"chat", "-c", "conf.json", "-s", "chat.db"}
	require.Equal(t, "conf.json", JsonConfigFlags())

	os.Args = []string{"chat", "-config=other.json"}
	require.Equal(t, "other.json", JsonConfigFlags())

	os.Args = []string{"chat"}
	require.Equal(t, "", JsonConfigFlags())
}
