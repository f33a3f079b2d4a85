package progression

import "time"

// kst pins the attendance day boundary to Korea Standard Time. Using a
// fixed offset keeps the boundary identical on hosts without tzdata.
var kst = time.FixedZone("KST", 9*60*60)

// Today formats now as the KST calendar date attendance compares against.
func Today(now time.Time) string {
	return now.In(kst).Format("2006-01-02")
}

// ClaimAttendance validates one daily check-in against the stored date.
func ClaimAttendance(lastAttendanceOn *string, today string) error {
	if lastAttendanceOn != nil && *lastAttendanceOn == today {
		return ErrAlreadyClaimed
	}
	return nil
}
