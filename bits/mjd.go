package bits

// mjdEpochOffset is the number of days between the MJD epoch (1858-11-17)
// and the Unix epoch (1970-01-01).
const mjdEpochOffset = 40587

// FromMJD converts a 16-bit Modified Julian Date day count to Unix seconds
// at midnight UTC of that day.
func FromMJD(mjd uint16) int64 {
	return (int64(mjd) - mjdEpochOffset) * 86400
}

// ToMJD converts Unix seconds to a 16-bit Modified Julian Date day count,
// truncating to the containing day.
func ToMJD(unixSecs int64) uint16 {
	days := unixSecs / 86400
	if unixSecs%86400 < 0 {
		days--
	}
	return uint16(days + mjdEpochOffset)
}

// DecodeMJDTime decodes a 5-byte MJD(16) + BCD-time(24) field (as used by
// TDT, TOT, and EIT start times) to Unix seconds.
func DecodeMJDTime(b []byte) int64 {
	mjd := U16(b[0:2])
	return FromMJD(mjd) + int64(BCDTime3(b[2:5]))
}

// EncodeMJDTime encodes Unix seconds into a 5-byte MJD(16) + BCD-time(24)
// field.
func EncodeMJDTime(b []byte, unixSecs int64) {
	days := unixSecs / 86400
	secOfDay := unixSecs % 86400
	if secOfDay < 0 {
		secOfDay += 86400
		days--
	}
	PutU16(b[0:2], uint16(days+mjdEpochOffset))
	PutBCDTime3(b[2:5], int(secOfDay))
}
