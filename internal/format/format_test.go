package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestOverflow(t *testing.T) {
	techs := []string{"React", "Laravel", "MySQL", "Cloudinary", "JWT", "Tailwind CSS"}
	shown, more := Overflow(techs, 3)
	require.Equal(t, []string{"React", "Laravel", "MySQL"}, shown)
	require.Equal(t, 3, more)

	shown, more = Overflow(techs[:2], 3)
	require.Len(t, shown, 2)
	require.Zero(t, more)

	shown, more = Overflow(nil, 3)
	require.Empty(t, shown)
	require.Zero(t, more)

	shown, more = Overflow(techs, -1)
	require.Empty(t, shown)
	require.Equal(t, len(techs), more)
}

func TestYearRange(t *testing.T) {
	now := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	require.Equal(t, "2024-2026", YearRange(2024, now))
	require.Equal(t, "2026", YearRange(2026, now))
	require.Equal(t, "2026", YearRange(0, now))
	require.Equal(t, "2026", YearRange(2030, now))
}

func TestInitials(t *testing.T) {
	require.Equal(t, "MF", Initials("Mokfembam Fabrice"))
	require.Equal(t, "ÉL", Initials("élodie lambert martin"))
	require.Equal(t, "A", Initials("  ada "))
	require.Equal(t, "", Initials(""))
}

func TestPercent(t *testing.T) {
	require.Equal(t, 0, Percent(-5))
	require.Equal(t, 90, Percent(90))
	require.Equal(t, 100, Percent(140))
}
