package utils

import "time"

const ISODateLayout = "2006-01-02"

func ParseISODate(value string) (time.Time, error) {
	return time.Parse(ISODateLayout, value)
}

func IsISODate(value string) bool {
	_, err := time.Parse(ISODateLayout, value)
	return err == nil
}

// AgeAt returns the whole-year age at the given reference date. A missing or
// unparsable date of birth yields 0 so an incomplete profile never blocks
// submission.
func AgeAt(dateOfBirth string, now time.Time) int {
	if dateOfBirth == "" {
		return 0
	}
	dob, err := ParseISODate(dateOfBirth)
	if err != nil {
		return 0
	}

	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}

func Age(dateOfBirth string) int {
	return AgeAt(dateOfBirth, time.Now())
}
