package astro

import "time"

const (
	// mjdUnixEpoch is the Modified Julian Date of the Unix epoch
	// (1970-01-01 00:00:00 UTC).
	mjdUnixEpoch = 40587.0

	secondsPerDay = 86400.0

	// gpsUTCOffset is the number of leap seconds GPS time is ahead of
	// UTC (constant since 2017-01-01; no leap second has been scheduled
	// since).
	gpsUTCOffset = 18
)

// gpsEpoch is the origin of GPS time, 1980-01-06 00:00:00 UTC.
var gpsEpoch = time.Date(1980, time.January, 6, 0, 0, 0, 0, time.UTC)

// MJDToTime converts a Modified Julian Date to UTC. ZTF alert times are
// published as MJD.
func MJDToTime(mjd float64) time.Time {
	unix := (mjd - mjdUnixEpoch) * secondsPerDay
	sec := int64(unix)
	nsec := int64((unix - float64(sec)) * 1e9)
	return time.Unix(sec, nsec).UTC()
}

// GPSToTime converts GPS seconds to UTC. Gravitational-wave event times
// are published as GPS epochs.
func GPSToTime(gps float64) time.Time {
	sec := int64(gps)
	nsec := int64((gps - float64(sec)) * 1e9)
	return gpsEpoch.Add(time.Duration(sec-gpsUTCOffset)*time.Second +
		time.Duration(nsec)*time.Nanosecond).UTC()
}
